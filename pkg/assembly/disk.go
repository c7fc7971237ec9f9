package assembly

import (
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/sysinfo"
)

const diskComponentName = "disk"

// planDisk derives the partition plan from the disk and encryption answers.
// A definition without a disk answer is valid (image-update-only flows) and
// yields a nil plan.
func planDisk(ctx *install.Context) (*partition.Plan, error) {
	disk := ctx.Definition.Disk()
	if disk == nil {
		return nil, nil
	}

	var (
		encrypt  bool
		password string
	)
	if encryption := ctx.Definition.Encryption(); encryption != nil {
		encrypt = encryption.Enabled
		password = encryption.Password
	}

	if disk.Auto != nil {
		return partition.PlanAuto(partition.AutoRequest{
			Disk:      disk.Auto.Device,
			DiskSize:  disk.Auto.Size,
			RootSize:  ctx.Definition.System.RootSize,
			Encrypt:   encrypt,
			Password:  password,
			RemoveVGs: disk.Auto.RemoveVGs,
			RemovePVs: disk.Auto.RemovePVs,
			UEFI:      ctx.BootMode == sysinfo.BootModeUEFI,
		})
	}

	return partition.PlanManual(partition.ManualRequest{
		Partitions: disk.Manual.Partitions,
		Encrypt:    encrypt,
		Password:   password,
	})
}
