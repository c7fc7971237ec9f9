package partition

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/sysinfo"
)

// ManualRequest reuses partitions the user prepared ahead of time. Each
// partition's declared mount target decides how it is set up.
type ManualRequest struct {
	Partitions []install.ManualPartition
	Encrypt    bool
	Password   string
}

// PlanManual walks the manual partitions in their configured order. The "/"
// partition receives the same LVM sequence as auto mode, with the thin pool
// sized from the partition instead of the fixed geometry.
func PlanManual(req ManualRequest) (*Plan, error) {
	if req.Encrypt && req.Password == "" {
		return nil, fmt.Errorf("encryption requested but no password provided")
	}

	plan := &Plan{}

	if err := appendTeardownSteps(plan, req.Partitions); err != nil {
		return nil, err
	}

	for _, part := range req.Partitions {
		disk, number, err := sysinfo.SplitPartition(part.Device)
		if err != nil {
			return nil, fmt.Errorf("locating disk of %q: %w", part.Device, err)
		}

		switch part.Mount {
		case "/":
			appendManualRootSteps(plan, disk, part)
		case "/boot":
			plan.addStep(disk, "format", strconv.Itoa(number), "ext4")
			plan.addMountpoint(part.Device, "/boot", RoleBoot)
			plan.BootDisk = disk
		case "/boot/efi":
			plan.addStep(disk, "format", strconv.Itoa(number), "fat32")
			plan.addStep(disk, "setflag", strconv.Itoa(number), "esp", true)
			plan.addMountpoint(part.Device, "/boot/efi", RoleEFI)
		case "/var":
			if req.Encrypt {
				plan.addStep(disk, "luks-format", strconv.Itoa(number), "btrfs", req.Password)
			} else {
				plan.addStep(disk, "format", strconv.Itoa(number), "btrfs")
			}
			plan.addMountpoint(part.Device, "/var", RoleVar)
		case "swap":
			// Swap needs no formatting prerequisite before first boot, so it
			// is deferred to a post-installation step.
			plan.addPostStep(false, "swapon", part.Device)
		default:
			zap.S().Warnf("Skipping partition %q: no layout role for mount target %q", part.Device, part.Mount)
		}
	}

	return plan, nil
}

// appendTeardownSteps removes LVM metadata referenced by the manual
// partitions, volume groups first (deduplicated) and their physical volumes
// after, each step attributed to the partition's underlying disk.
func appendTeardownSteps(plan *Plan, partitions []install.ManualPartition) error {
	type target struct {
		disk string
		name string
	}
	var (
		vgs     []target
		pvs     []target
		vgsSeen = map[string]bool{}
	)

	for _, part := range partitions {
		if part.VG == "" && part.PV == "" {
			continue
		}

		disk, _, err := sysinfo.SplitPartition(part.Device)
		if err != nil {
			return fmt.Errorf("locating disk of %q: %w", part.Device, err)
		}

		if part.VG != "" && !vgsSeen[part.VG] {
			vgsSeen[part.VG] = true
			vgs = append(vgs, target{disk: disk, name: part.VG})
		}
		if part.PV != "" {
			pvs = append(pvs, target{disk: disk, name: part.PV})
		}
	}

	for _, vg := range vgs {
		plan.addStep(vg.disk, "vgremove", vg.name)
	}
	for _, pv := range pvs {
		plan.addStep(pv.disk, "pvremove", pv.name)
	}

	return nil
}

func appendManualRootSteps(plan *Plan, disk string, part install.ManualPartition) {
	plan.addStep(disk, "pvcreate", part.Device)
	plan.addStep(disk, "vgcreate", RootVG, []any{part.Device})

	plan.addStep(disk, "lvcreate", InitLV, RootVG, "linear", InitLVSize)
	plan.addStep(disk, "lvm-format", qualifyLV(RootVG, InitLV), "ext4")

	poolSize := manualThinPoolSize(part.Size)
	appendThinPoolSteps(plan, disk, poolSize, poolSize)

	plan.addMountpoint(mapperPath(RootVG, RootALV), "/", RoleRootA)
	plan.addMountpoint(mapperPath(RootVG, RootBLV), "/", RoleRootB)
}

// manualThinPoolSize converts the root partition size to MiB and subtracts
// the fixed overhead: pool metadata, the init volume and LVM bookkeeping.
func manualThinPoolSize(sizeBytes int64) int {
	sizeMiB := int(sizeBytes / (1024 * 1024))
	return sizeMiB - ThinMetaSize - InitLVSize - LVMOverhead
}
