package plan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/vanilla-os/recipegen/pkg/cli/cmd"
	"github.com/vanilla-os/recipegen/pkg/generator"
	"github.com/vanilla-os/recipegen/pkg/install"
	audit "github.com/vanilla-os/recipegen/pkg/log"
	"github.com/vanilla-os/recipegen/pkg/sysinfo"
)

const (
	logFilename     = "recipegen-plan.log"
	checkLogMessage = "Please check the recipegen-plan.log file under the build directory for more information."
)

func Run(_ *cli.Context) error {
	args := &cmd.PlanArgs

	buildDir, artifactsDir, err := generator.SetupBuildDirectory(args.RootBuildDir)
	if err != nil {
		audit.Auditf("The build directory could not be setup under '%s'.", args.RootBuildDir)
		return err
	}

	// This needs to occur as early as possible so that the subsequent calls can use the log
	setupLogging(buildDir)

	definition := parseDefinition(args.DefinitionFile)
	if definition == nil {
		os.Exit(1)
	}

	ctx := planContext(buildDir, artifactsDir, definition)

	if !isDefinitionValid(definition) {
		os.Exit(1)
	}

	recipePath, err := generator.Run(ctx)
	if err != nil {
		audit.Auditf("Planning the recipe failed. %s", checkLogMessage)
		zap.S().Fatalf("An error occurred planning the recipe: %s", err)
	}

	if recipePath != "" {
		audit.AuditInfof("Recipe written to '%s'.", recipePath)
	}

	return nil
}

// Configures the global logger.
func setupLogging(buildDir string) {
	audit.ConfigureGlobalLogger(filepath.Join(buildDir, logFilename))
}

// Attempts to parse the specified definition file, displaying the appropriate messages to the user.
// Returns the parsed definition if successful, nil otherwise.
func parseDefinition(definitionFile string) *install.Definition {
	definitionData, err := os.ReadFile(definitionFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			audit.AuditInfof("The specified definition file '%s' could not be found.", definitionFile)
		} else {
			audit.AuditInfof("The specified definition file '%s' could not be read. %s", definitionFile, checkLogMessage)
			zap.S().Error(err)
		}
		return nil
	}

	definition, err := install.ParseDefinition(definitionData)
	if err != nil {
		audit.AuditInfof("The definition file '%s' could not be parsed. %s", definitionFile, checkLogMessage)
		zap.S().Error(err)
		return nil
	}

	return definition
}

// Runs the definition validation, displaying the appropriate messages to the user in the event
// of a failure. Returns 'true' if the definition is valid, 'false' otherwise.
func isDefinitionValid(definition *install.Definition) bool {
	if err := install.ValidateDefinition(definition); err != nil {
		cmd.LogError(&cmd.Error{
			UserMessage: fmt.Sprintf("Definition validation failed: %s", err),
			LogMessage:  fmt.Sprintf("definition validation failure: %s", err),
		}, checkLogMessage)
		return false
	}

	return true
}

// Assembles the planning context with user-provided values and host probes.
func planContext(buildDir, artifactsDir string, definition *install.Definition) *install.Context {
	return &install.Context{
		BuildDir:     buildDir,
		ArtifactsDir: artifactsDir,
		Definition:   definition,
		BootMode:     sysinfo.DetectBootMode(),
	}
}
