package partition

import (
	"fmt"
	"strings"

	"github.com/vanilla-os/recipegen/pkg/recipe"
)

// Volume group and logical volume names of the A/B layout.
const (
	RootVG = "vos-root"
	VarVG  = "vos-var"

	InitLV     = "init"
	RootALV    = "root-a"
	RootBLV    = "root-b"
	VarLV      = "var"
	ThinDataLV = "root-data"
	ThinMetaLV = "root-meta"
)

// Fixed geometry, in MiB. Auto mode always uses these; manual mode derives
// the thin-pool size from the chosen root partition instead.
const (
	BootSize     = 1024
	EFISize      = 512
	RootPVSize   = 22019
	InitLVSize   = 512
	ThinDataSize = 19456
	ThinMetaSize = 1024
	ThinRootSize = 18432

	// LVMOverhead is the bookkeeping space subtracted whenever a volume size
	// is derived from the bounds of its backing partition.
	LVMOverhead = 1028
)

// Role names a mountpoint's purpose in the A/B layout so later planning
// stages do not have to re-derive it from the mount target order.
type Role string

const (
	RoleBoot  Role = "boot"
	RoleEFI   Role = "efi"
	RoleRootA Role = "root-a"
	RoleRootB Role = "root-b"
	RoleVar   Role = "var"
	RoleOther Role = "other"
)

// Mountpoint pairs a partition (or device-mapper path) with its target.
type Mountpoint struct {
	Partition string
	Target    string
	Role      Role
}

// Plan is the outcome of partition planning: ordered setup steps, the
// mountpoints they produce, post-installation steps deferred to first boot
// (e.g. swapon), and the disk the boot loader must be installed to.
type Plan struct {
	Steps       []recipe.SetupStep
	Mountpoints []Mountpoint
	PostSteps   []recipe.PostStep
	BootDisk    string
}

func (p *Plan) addStep(disk string, operation string, params ...any) {
	if params == nil {
		params = []any{}
	}
	p.Steps = append(p.Steps, recipe.SetupStep{Disk: disk, Operation: operation, Params: params})
}

func (p *Plan) addMountpoint(partition, target string, role Role) {
	p.Mountpoints = append(p.Mountpoints, Mountpoint{Partition: partition, Target: target, Role: role})
}

func (p *Plan) addPostStep(chroot bool, operation string, params ...any) {
	if params == nil {
		params = []any{}
	}
	p.PostSteps = append(p.PostSteps, recipe.PostStep{Chroot: chroot, Operation: operation, Params: params})
}

// Mountpoint returns the planned mountpoint for a role, or nil.
func (p *Plan) Mountpoint(role Role) *Mountpoint {
	for i := range p.Mountpoints {
		if p.Mountpoints[i].Role == role {
			return &p.Mountpoints[i]
		}
	}
	return nil
}

// ApplySetup appends the setup steps and mountpoints onto the recipe
// builder, preserving order. The engine identifies the root slots
// positionally (first "/" entry is slot A), so mountpoints must land in
// creation order.
func (p *Plan) ApplySetup(builder *recipe.Builder) {
	for _, step := range p.Steps {
		builder.AddSetupStep(step.Disk, step.Operation, step.Params...)
	}
	for _, mount := range p.Mountpoints {
		builder.AddMountpoint(mount.Partition, mount.Target)
	}
}

// ApplyPostInstall appends the deferred post-installation steps (e.g.
// swapon) onto the recipe builder.
func (p *Plan) ApplyPostInstall(builder *recipe.Builder) {
	for _, step := range p.PostSteps {
		builder.AddPostStep(step.Chroot, step.Operation, step.Params...)
	}
}

// mapperPath derives the /dev/mapper path of a logical volume, applying the
// device-mapper escaping rule (dashes in names are doubled).
func mapperPath(vg, lv string) string {
	escape := func(name string) string {
		return strings.ReplaceAll(name, "-", "--")
	}
	return fmt.Sprintf("/dev/mapper/%s-%s", escape(vg), escape(lv))
}

// qualifyLV renders the vg_name/lv_name form the engine's LVM operations use.
func qualifyLV(vg, lv string) string {
	return fmt.Sprintf("%s/%s", vg, lv)
}
