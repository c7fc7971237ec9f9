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

const (
	packagesComponentName = "packages"
	removeManifestName    = "filesystem.manifest-remove"
	removeCommand         = "apt remove -y"
)

//go:embed templates/filesystem.manifest-remove
var removeManifest string

// configurePackages drops the installer's own packages from the target.
func configurePackages(ctx *install.Context, _ *partition.Plan, builder *recipe.Builder) error {
	manifestPath := filepath.Join(ctx.ArtifactsDir, removeManifestName)

	if err := fileio.WriteFile(manifestPath, []byte(removeManifest), fileio.NonExecutablePerms); err != nil {
		return fmt.Errorf("writing %s: %w", removeManifestName, err)
	}

	builder.AddPostStep(true, "pkgremove", manifestPath, removeCommand)

	return nil
}
