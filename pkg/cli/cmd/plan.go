package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

type PlanFlags struct {
	DefinitionFile string
	RootBuildDir   string
}

var PlanArgs PlanFlags

func NewPlanCommand(action func(*cli.Context) error) *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "Plan a new installation recipe",
		UsageText: fmt.Sprintf("%s plan [OPTIONS]", appName),
		Action:    action,
		Flags: []cli.Flag{
			DefinitionFileFlag,
			&cli.StringFlag{
				Name:        "build-dir",
				Usage:       "Full path to the directory to store the recipe and its artifacts",
				Value:       "/tmp",
				Destination: &PlanArgs.RootBuildDir,
			},
		},
	}
}
