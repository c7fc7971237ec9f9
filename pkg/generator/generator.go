package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/vanilla-os/recipegen/pkg/assembly"
	"github.com/vanilla-os/recipegen/pkg/env"
	"github.com/vanilla-os/recipegen/pkg/install"
	"github.com/vanilla-os/recipegen/pkg/log"
	"github.com/vanilla-os/recipegen/pkg/recipe"
)

// Run plans the installation described by the context and writes the recipe
// file, returning its path. In fake mode nothing is written and the returned
// path is empty.
func Run(ctx *install.Context) (string, error) {
	builder := recipe.NewBuilder()

	if err := assembly.Configure(ctx, builder); err != nil {
		return "", fmt.Errorf("assembling recipe: %w", err)
	}

	result, err := builder.Finalize()
	if err != nil {
		return "", fmt.Errorf("finalizing recipe: %w", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshalling recipe: %w", err)
	}
	zap.S().Infof("Planned recipe: %s", data)

	if env.Fake() {
		log.AuditInfof("%s is set, skipping the recipe file. Planned configuration:", env.FakeEnvVar)
		logConfiguration(ctx, result)
		return "", nil
	}

	path, err := recipe.WriteData(data, ctx.BuildDir)
	if err != nil {
		return "", fmt.Errorf("emitting recipe: %w", err)
	}

	return path, nil
}

func logConfiguration(ctx *install.Context, result *recipe.Recipe) {
	log.Auditf("Answers: %d, setup steps: %d, mountpoints: %d, post-install steps: %d",
		len(ctx.Definition.Answers), len(result.Setup), len(result.Mountpoints), len(result.PostInstallation))
	log.Auditf("Installation: %s %s", result.Installation.Method, result.Installation.Source)
}

// SetupBuildDirectory creates a timestamped build directory under rootDir
// with the artifacts directory the assembly components write into.
func SetupBuildDirectory(rootDir string) (buildDir, artifactsDir string, err error) {
	timestamp := time.Now().Format("Jan02_15-04-05")
	buildDir = filepath.Join(rootDir, fmt.Sprintf("plan-%s", timestamp))

	artifactsDir = filepath.Join(buildDir, "artifacts")
	if err = os.MkdirAll(artifactsDir, os.ModePerm); err != nil {
		return "", "", fmt.Errorf("creating an artifacts directory: %w", err)
	}

	return buildDir, artifactsDir, nil
}
