package assembly

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanilla-os/recipegen/pkg/recipe"
)

func TestConfigurePackages(t *testing.T) {
	ctx, teardown := setupContext(t)
	defer teardown()

	builder := recipe.NewBuilder()
	require.NoError(t, configurePackages(ctx, nil, builder))

	result, err := builder.Finalize()
	require.NoError(t, err)

	manifestPath := filepath.Join(ctx.ArtifactsDir, "filesystem.manifest-remove")

	contents, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "vanilla-installer")
	assert.Contains(t, string(contents), "gparted")

	require.Len(t, result.PostInstallation, 1)
	assert.Equal(t, recipe.PostStep{
		Chroot:    true,
		Operation: "pkgremove",
		Params:    []any{manifestPath, "apt remove -y"},
	}, result.PostInstallation[0])
}
