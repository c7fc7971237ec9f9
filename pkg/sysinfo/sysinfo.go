package sysinfo

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

const efiFirmwarePath = "/sys/firmware/efi"

// BootMode describes the firmware the machine was booted with.
type BootMode string

const (
	BootModeUEFI BootMode = "uefi"
	BootModeBIOS BootMode = "bios"
)

// DetectBootMode probes the running system's firmware interface.
func DetectBootMode() BootMode {
	if _, err := os.Stat(efiFirmwarePath); err == nil {
		return BootModeUEFI
	}
	return BootModeBIOS
}

// PartitionPath derives the device path of the nth partition on a disk.
// Disks whose identifier ends in a digit (e.g. /dev/nvme0n1) separate the
// partition number with a "p" infix, all others append the number directly.
func PartitionPath(disk string, number int) string {
	if disk == "" {
		return ""
	}

	last := disk[len(disk)-1]
	if last >= '0' && last <= '9' {
		return fmt.Sprintf("%sp%d", disk, number)
	}
	return fmt.Sprintf("%s%d", disk, number)
}

var (
	diskExpr = regexp.MustCompile(`^(/dev/[a-zA-Z]+(?:[0-9]+n[0-9]+)?)p?([0-9]+)$`)
	partExpr = regexp.MustCompile(`[0-9]+$`)
)

// SplitPartition splits a partition device path into the underlying disk
// and the partition number, undoing the PartitionPath naming rule. Only the
// NVMe-style "<digits>n<digits>" disk suffix is recognized before the "p"
// infix; paths like /dev/mmcblk0p2 are rejected, matching what the
// provisioning engine parses.
func SplitPartition(path string) (disk string, number int, err error) {
	matches := diskExpr.FindStringSubmatch(path)
	if matches == nil {
		return "", 0, fmt.Errorf("%q is not a partition device path", path)
	}

	number, err = strconv.Atoi(matches[2])
	if err != nil {
		return "", 0, fmt.Errorf("parsing partition number of %q: %w", path, err)
	}

	return matches[1], number, nil
}

// PartitionNumber extracts just the trailing partition number of a device path.
func PartitionNumber(path string) (int, error) {
	match := partExpr.FindString(path)
	if match == "" {
		return 0, fmt.Errorf("%q carries no partition number", path)
	}
	return strconv.Atoi(match)
}
