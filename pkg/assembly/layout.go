package assembly

import (
	"fmt"
	"path/filepath"

	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const layoutComponentName = "layout"

// systemDir is where the unpacked base image ends up on each root slot; the
// slot's actual root only carries mountpoints and symlinks into it.
const systemDir = "/.system"

// topLevelDirs are recreated empty at the slot root after the relocation.
var topLevelDirs = []string{
	"boot", "dev", "home", "media", "mnt", "var", "opt",
	"part-future", "proc", "root", "run", "srv", "sys", "tmp",
}

// systemLinks maps slot-root symlink names to their targets inside /.system.
var systemLinks = []struct {
	linkName string
	target   string
}{
	{"usr", "usr"},
	{"etc", "etc"},
	{"bin", "usr/bin"},
	{"lib", "usr/lib"},
	{"lib32", "usr/lib32"},
	{"lib64", "usr/lib64"},
	{"libx32", "usr/libx32"},
	{"sbin", "usr/sbin"},
}

// runtimeDirs are replaced inside /.system by links back to the slot root,
// so the base image shares the runtime mounts of the running system.
var runtimeDirs = []string{"dev", "proc", "run", "srv", "sys", "media"}

// configureLayout emits the restructure converting the freshly unpacked root
// into the dual-root base-image layout: everything moves under /.system, the
// root keeps only mountpoints and symlinks.
func configureLayout(ctx *install.Context, plan *partition.Plan, builder *recipe.Builder) error {
	system := targetPath(systemDir)

	commands := []any{
		fmt.Sprintf("umount -l %s", targetPath("/var")),
	}

	efi := plan.Mountpoint(partition.RoleEFI)
	if efi != nil {
		commands = append(commands, fmt.Sprintf("umount -l %s", targetPath("/boot/efi")))
	}
	commands = append(commands,
		fmt.Sprintf("umount -l %s", targetPath("/boot")),
		fmt.Sprintf("mkdir -p %s", system),
		fmt.Sprintf("mv %s %s/boot", targetPath("/boot"), system),
		fmt.Sprintf("mv %s/* %s/", targetRoot, system),
	)

	for _, dir := range topLevelDirs {
		commands = append(commands, fmt.Sprintf("mkdir -p %s", targetPath(dir)))
	}

	for _, link := range systemLinks {
		commands = append(commands,
			fmt.Sprintf("ln -rs %s/%s %s", system, link.target, targetPath(link.linkName)))
	}

	for _, dir := range runtimeDirs {
		commands = append(commands,
			fmt.Sprintf("rm -rf %s/%s", system, dir),
			fmt.Sprintf("ln -rs %s %s/%s", targetPath(dir), system, dir),
		)
	}

	commands = append(commands, remountCommands(ctx, plan)...)

	builder.AddPostStep(false, "shell", commands...)

	return nil
}

// remountCommands brings var, boot and the EFI partition back after the
// relocation. An encrypted var volume is remounted through the mapper device
// the engine opened, named after the LUKS container UUID.
func remountCommands(ctx *install.Context, plan *partition.Plan) []any {
	var commands []any

	varMount := plan.Mountpoint(partition.RoleVar)
	if varMount != nil {
		device := varMount.Partition
		if encryption := ctx.Definition.Encryption(); encryption != nil && encryption.Enabled {
			device = fmt.Sprintf("/dev/mapper/luks-\"$(lsblk -dno UUID %s)\"", varMount.Partition)
		}
		commands = append(commands, fmt.Sprintf("mount %s %s", device, targetPath("/var")))
	}

	boot := plan.Mountpoint(partition.RoleBoot)
	commands = append(commands, fmt.Sprintf("mount %s %s", boot.Partition, targetPath("/boot")))

	if efi := plan.Mountpoint(partition.RoleEFI); efi != nil {
		commands = append(commands,
			fmt.Sprintf("mkdir -p %s", targetPath("/boot/efi")),
			fmt.Sprintf("mount %s %s", efi.Partition, targetPath("/boot/efi")),
		)
	}

	return commands
}

// artifactPath joins a file name onto the run's artifacts directory.
func artifactPath(ctx *install.Context, name string) string {
	return filepath.Join(ctx.ArtifactsDir, name)
}
