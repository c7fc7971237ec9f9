package assembly

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/vanilla-os/recipegen/pkg/fileio"
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/partition"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

const mountUnitsComponentName = "mount-units"

//go:embed templates/home.mount
var homeMountUnit string

//go:embed templates/opt.mount
var optMountUnit string

//go:embed templates/usr-lib-locale.mount
var localeMountUnit string

//go:embed templates/etc.mount
var etcMountUnit string

// mountUnits lists the systemd units enabling the writable portions of the
// A/B layout at boot: the home/opt/locale binds out of /var and the /etc
// overlay. Order here is only the installation order; systemd resolves the
// boot ordering itself.
var mountUnits = []struct {
	name     string
	contents string
}{
	{"home.mount", homeMountUnit},
	{"opt.mount", optMountUnit},
	{"usr-lib-locale.mount", localeMountUnit},
	{"etc.mount", etcMountUnit},
}

// configureMountUnits writes the unit files as planning artifacts and
// appends the step copying each into the target's unit directory, enabled
// under local-fs.target.wants.
func configureMountUnits(ctx *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	unitDir := targetPath("/etc/systemd/system")
	wantsDir := targetPath("/etc/systemd/system/local-fs.target.wants")

	commands := []any{
		fmt.Sprintf("mkdir -p %s", wantsDir),
	}

	for _, unit := range mountUnits {
		artifact := filepath.Join(ctx.ArtifactsDir, unit.name)
		if err := fileio.WriteFile(artifact, []byte(unit.contents), fileio.NonExecutablePerms); err != nil {
			return fmt.Errorf("writing %s: %w", unit.name, err)
		}

		commands = append(commands,
			fmt.Sprintf("cp %s %s/%s", artifact, unitDir, unit.name),
			fmt.Sprintf("ln -sf /etc/systemd/system/%s %s/%s", unit.name, wantsDir, unit.name),
		)
	}

	builder.AddPostStep(false, "shell", commands...)

	return nil
}
