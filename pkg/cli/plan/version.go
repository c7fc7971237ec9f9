package plan

import (
	"github.com/urfave/cli/v2"

	"github.com/vanilla-os/recipegen/pkg/log"
	"github.com/vanilla-os/recipegen/pkg/version"
)

func Version(_ *cli.Context) error {
	log.Auditf("Recipe Generator Version: %s", version.GetVersion())
	return nil
}
