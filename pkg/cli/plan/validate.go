package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/vanilla-os/recipegen/pkg/cli/cmd"
	audit "github.com/vanilla-os/recipegen/pkg/log"
)

const validateLogFile = "recipegen-validate.log"

func Validate(_ *cli.Context) error {
	args := &cmd.PlanArgs

	timestamp := time.Now().Format("Jan02_15-04-05")
	validationDir := filepath.Join(os.TempDir(), fmt.Sprintf("validate-%s", timestamp))
	if err := os.MkdirAll(validationDir, os.ModePerm); err != nil {
		audit.Auditf("The validation directory could not be setup under '%s'.", os.TempDir())
		return err
	}

	// This needs to occur as early as possible so that the subsequent calls can use the log
	audit.ConfigureGlobalLogger(filepath.Join(validationDir, validateLogFile))

	definition := parseDefinition(args.DefinitionFile)
	if definition == nil {
		os.Exit(1)
	}

	if !isDefinitionValid(definition) {
		os.Exit(1)
	}

	audit.AuditInfo("The specified definition is valid.")

	return nil
}
