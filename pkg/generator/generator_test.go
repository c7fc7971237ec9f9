package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanilla-os/recipegen/pkg/env"
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/recipe"
	"github.com/vanilla-os/recipegen/pkg/sysinfo"
)

func setupContext(t *testing.T) *install.Context {
	buildDir := t.TempDir()

	artifactsDir := filepath.Join(buildDir, "artifacts")
	require.NoError(t, os.MkdirAll(artifactsDir, os.ModePerm))

	return &install.Context{
		BuildDir:     buildDir,
		ArtifactsDir: artifactsDir,
		Definition: &install.Definition{
			Answers: []install.FinalAnswer{
				{
					Disk: &install.DiskAnswer{
						Auto: &install.AutoDisk{
							Device: "/dev/vda",
							Size:   int64(64) * 1024 * 1024 * 1024,
						},
					},
				},
				{
					Users: &install.UserAnswer{Username: "alex", Fullname: "Alex", Password: "secret"},
				},
			},
			System: install.SystemRecipe{
				Images: map[string]string{
					install.ImageVariantDefault: "registry.vanillaos.org/desktop:latest",
				},
			},
		},
		BootMode: sysinfo.BootModeUEFI,
	}
}

func TestRun(t *testing.T) {
	ctx := setupContext(t)

	path, err := Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, ctx.BuildDir, filepath.Dir(path))

	result, err := recipe.ReadFile(path)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Setup)
	require.Len(t, result.Mountpoints, 5)
	assert.Equal(t, recipe.MethodOCI, result.Installation.Method)
	assert.NotEmpty(t, result.PostInstallation)
}

func TestRun_FakeMode(t *testing.T) {
	t.Setenv(env.FakeEnvVar, "1")

	ctx := setupContext(t)

	path, err := Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(ctx.BuildDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), "recipe-"), "no recipe file expected in fake mode")
	}
}

func TestRun_InvalidDefinition(t *testing.T) {
	ctx := setupContext(t)

	// A default image is required to resolve the installation source
	ctx.Definition.System.Images = map[string]string{}

	_, err := Run(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "assembling recipe")
}

func TestSetupBuildDirectory(t *testing.T) {
	rootDir := t.TempDir()

	buildDir, artifactsDir, err := SetupBuildDirectory(rootDir)
	require.NoError(t, err)

	assert.Equal(t, rootDir, filepath.Dir(buildDir))
	assert.True(t, strings.HasPrefix(filepath.Base(buildDir), "plan-"))
	assert.Equal(t, filepath.Join(buildDir, "artifacts"), artifactsDir)

	info, err := os.Stat(artifactsDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
