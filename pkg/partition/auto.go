package partition

import (
	"fmt"

	"github.com/vanilla-os/recipegen/pkg/sysinfo"
)

// AutoRequest wipes a whole disk and lays out the fixed A/B geometry on it.
type AutoRequest struct {
	Disk string
	// DiskSize is the disk's capacity in bytes. The var volume takes what the
	// fixed partitions leave, and the engine's lvcreate wants that as a
	// number, so the planner has to do the subtraction here.
	DiskSize int64
	// RootSize is accepted for forward compatibility with configurable
	// sizing; the auto layout currently uses the fixed geometry regardless.
	RootSize int
	Encrypt  bool
	Password string
	// RemoveVGs/RemovePVs name LVM metadata currently on the disk. Volume
	// groups are removed before the physical volumes backing them.
	RemoveVGs []string
	RemovePVs []string
	UEFI      bool
}

// PlanAuto produces the full-disk plan: GPT label, boot and EFI partitions,
// two LVM physical volumes hosting the vos-root thin pool (with the A/B root
// volumes) and the vos-var volume.
func PlanAuto(req AutoRequest) (*Plan, error) {
	if req.Disk == "" {
		return nil, fmt.Errorf("no disk provided for automatic partitioning")
	}
	if req.Encrypt && req.Password == "" {
		return nil, fmt.Errorf("encryption requested but no password provided")
	}

	bootEnd := 1 + BootSize
	efiEnd := bootEnd + EFISize
	rootPVEnd := efiEnd + RootPVSize

	diskMiB := int(req.DiskSize / (1024 * 1024))
	varLVSize := diskMiB - rootPVEnd - LVMOverhead
	if varLVSize <= 0 {
		return nil, fmt.Errorf("disk %s (%d MiB) is too small for the automatic layout", req.Disk, diskMiB)
	}

	plan := &Plan{BootDisk: req.Disk}

	// Stale LVM metadata would collide with the new vos-* groups.
	for _, vg := range req.RemoveVGs {
		plan.addStep(req.Disk, "vgremove", vg)
	}
	for _, pv := range req.RemovePVs {
		plan.addStep(req.Disk, "pvremove", pv)
	}

	plan.addStep(req.Disk, "label", "gpt")

	plan.addStep(req.Disk, "mkpart", "boot", "ext4", 1, bootEnd)
	plan.addStep(req.Disk, "mkpart", "EFI", "fat32", bootEnd, efiEnd)
	plan.addStep(req.Disk, "setflag", "2", "esp", true)

	plan.addStep(req.Disk, "mkpart", RootVG, "", efiEnd, rootPVEnd)
	plan.addStep(req.Disk, "mkpart", VarVG, "", rootPVEnd, -1)

	rootPV := sysinfo.PartitionPath(req.Disk, 3)
	varPV := sysinfo.PartitionPath(req.Disk, 4)

	plan.addStep(req.Disk, "pvcreate", rootPV)
	plan.addStep(req.Disk, "pvcreate", varPV)
	plan.addStep(req.Disk, "vgcreate", RootVG, []any{rootPV})
	plan.addStep(req.Disk, "vgcreate", VarVG, []any{varPV})

	// The init volume carries kernel and initramfs images for both slots.
	plan.addStep(req.Disk, "lvcreate", InitLV, RootVG, "linear", InitLVSize)
	plan.addStep(req.Disk, "lvm-format", qualifyLV(RootVG, InitLV), "ext4")

	appendThinPoolSteps(plan, req.Disk, ThinDataSize, ThinRootSize)

	plan.addStep(req.Disk, "lvcreate", VarLV, VarVG, "linear", varLVSize)
	if req.Encrypt {
		plan.addStep(req.Disk, "lvm-luks-format", qualifyLV(VarVG, VarLV), "btrfs", req.Password)
	} else {
		plan.addStep(req.Disk, "lvm-format", qualifyLV(VarVG, VarLV), "btrfs")
	}

	plan.addMountpoint(sysinfo.PartitionPath(req.Disk, 1), "/boot", RoleBoot)
	if req.UEFI {
		plan.addMountpoint(sysinfo.PartitionPath(req.Disk, 2), "/boot/efi", RoleEFI)
	}
	plan.addMountpoint(mapperPath(RootVG, RootALV), "/", RoleRootA)
	plan.addMountpoint(mapperPath(RootVG, RootBLV), "/", RoleRootB)
	plan.addMountpoint(mapperPath(VarVG, VarLV), "/var", RoleVar)

	return plan, nil
}

// appendThinPoolSteps creates the thin pool inside vos-root and carves the
// two equally sized A/B root volumes out of it, formatted btrfs.
func appendThinPoolSteps(plan *Plan, disk string, dataSize, rootSize int) {
	plan.addStep(disk, "lvcreate", ThinDataLV, RootVG, "linear", dataSize)
	plan.addStep(disk, "lvcreate", ThinMetaLV, RootVG, "linear", ThinMetaSize)
	plan.addStep(disk, "make-thin-pool", qualifyLV(RootVG, ThinDataLV), qualifyLV(RootVG, ThinMetaLV))

	for _, lv := range []string{RootALV, RootBLV} {
		plan.addStep(disk, "lvcreate-thin", lv, RootVG, rootSize, ThinDataLV)
		plan.addStep(disk, "lvm-format", qualifyLV(RootVG, lv), "btrfs")
	}
}
