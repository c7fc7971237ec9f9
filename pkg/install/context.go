package install

import (
	"github.com/vanilla-os/recipegen/pkg/sysinfo"
)

type Context struct {
	// BuildDir is the directory collecting the emitted recipe and its log.
	BuildDir string
	// ArtifactsDir is a subdirectory under BuildDir holding the templated
	// text files referenced by shell steps inside the recipe.
	ArtifactsDir string
	// Definition contains the parsed installation definition.
	Definition *Definition
	// BootMode is the firmware mode the planner targets; populated from
	// sysinfo.DetectBootMode unless overridden (tests, cross-planning).
	BootMode sysinfo.BootMode
}
