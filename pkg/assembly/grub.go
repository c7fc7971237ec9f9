package assembly

import (
	_ "embed"
	"fmt"

	"github.com/vanilla-os/recipegen/pkg/fileio"
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
	"github.com/vanilla-os/recipegen/pkg/sysinfo"
)

const (
	grubComponentName = "grub"

	grubBootConfigName = "grub.cfg"
	grubSlotConfigName = "abroot.cfg"
)

// Dual-entry configuration installed on the boot partition. Fully static:
// slot selection happens through the device-mapper names, which do not change
// over the lifetime of the installation.
//
//go:embed templates/grub.cfg
var grubBootConfig string

// Per-slot fragment. The $KERNEL_VERSION and $ROOT_A_UUID placeholders are
// emitted literally and expanded by the shell at execution time, once the
// target actually has a kernel and a formatted root to read them from.
//
//go:embed templates/abroot.cfg
var grubSlotConfig string

// configureGrub installs the boot loader twice (outer boot partition first,
// then inside the chroot), regenerates the configuration and overwrites it
// with the fixed A/B menu plus the parameterized slot fragment.
func configureGrub(ctx *install.Context, plan *partition.Plan, builder *recipe.Builder) error {
	bootArtifact := artifactPath(ctx, grubBootConfigName)
	if err := fileio.WriteFile(bootArtifact, []byte(grubBootConfig), fileio.NonExecutablePerms); err != nil {
		return fmt.Errorf("writing %s: %w", grubBootConfigName, err)
	}

	slotArtifact := artifactPath(ctx, grubSlotConfigName)
	if err := fileio.WriteFile(slotArtifact, []byte(grubSlotConfig), fileio.NonExecutablePerms); err != nil {
		return fmt.Errorf("writing %s: %w", grubSlotConfigName, err)
	}

	firmware := "bios"
	if ctx.BootMode == sysinfo.BootModeUEFI {
		firmware = "efi"
	}

	builder.AddPostStep(false, "grub-install", targetPath("/boot"), plan.BootDisk, firmware)
	builder.AddPostStep(true, "grub-install", "/boot", plan.BootDisk, firmware)
	builder.AddPostStep(true, "grub-mkconfig", "/boot/grub/grub.cfg")

	rootA := plan.Mountpoint(partition.RoleRootA)
	slotGrubDir := targetPath("/.system/boot/grub")

	builder.AddPostStep(false, "shell",
		fmt.Sprintf("cp %s %s", bootArtifact, targetPath("/boot/grub/grub.cfg")),
		fmt.Sprintf("mkdir -p %s", slotGrubDir),
		fmt.Sprintf("KERNEL_VERSION=\"$(ls -1 %s | head -n 1)\" ROOT_A_UUID=\"$(lsblk -dno UUID %s)\" "+
			"envsubst '$KERNEL_VERSION $ROOT_A_UUID' < %s > %s/%s",
			targetPath("/.system/usr/lib/modules"), rootA.Partition,
			slotArtifact, slotGrubDir, grubSlotConfigName),
	)

	return nil
}
