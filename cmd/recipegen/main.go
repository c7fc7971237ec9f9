package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vanilla-os/recipegen/pkg/cli/cmd"
	"github.com/vanilla-os/recipegen/pkg/cli/plan"
)

func main() {
	app := cmd.NewApp()
	app.Commands = []*cli.Command{
		cmd.NewPlanCommand(plan.Run),
		cmd.NewValidateCommand(plan.Validate),
		cmd.NewVersionCommand(plan.Version),
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
