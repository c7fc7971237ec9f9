package assembly

import (
	"fmt"

	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const fstabComponentName = "fstab"

// configureFstab rewrites the target's fstab for the A/B layout: the
// image-provided filesystem lines (including the root-B UUID entry) are
// dropped, keeping comments, and replaced by the read-only /.system/usr bind
// plus the var mount. Runs before the /etc overlay is mounted so the result
// lands in the base image itself.
func configureFstab(ctx *install.Context, plan *partition.Plan, builder *recipe.Builder) error {
	fstab := targetPath("/etc/fstab")

	commands := []any{
		fmt.Sprintf("sed -i '/^[^#]/d' %s", fstab),
		fmt.Sprintf("echo '/.system/usr /usr none bind,ro 0 0' >> %s", fstab),
	}

	if varMount := plan.Mountpoint(partition.RoleVar); varMount != nil {
		commands = append(commands, varFstabCommand(ctx, varMount.Partition, fstab))
	}

	builder.AddPostStep(false, "shell", commands...)

	return nil
}

// varFstabCommand renders the var line. The device UUID is only known once
// the volume exists, so it is resolved by the shell at execution time; with
// encryption enabled the entry points at the mapper device the initramfs
// opens, named after the LUKS container UUID.
func varFstabCommand(ctx *install.Context, device, fstab string) string {
	if encryption := ctx.Definition.Encryption(); encryption != nil && encryption.Enabled {
		return fmt.Sprintf("echo \"/dev/mapper/luks-$(lsblk -dno UUID %s) /var btrfs defaults 0 0\" >> %s",
			device, fstab)
	}

	return fmt.Sprintf("echo \"UUID=$(lsblk -dno UUID %s) /var btrfs defaults 0 0\" >> %s",
		device, fstab)
}
