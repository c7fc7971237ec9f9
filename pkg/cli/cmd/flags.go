package cmd

import "github.com/urfave/cli/v2"

var DefinitionFileFlag = &cli.StringFlag{
	Name:        "definition-file",
	Usage:       "Full path to the installation definition file",
	Required:    true,
	Destination: &PlanArgs.DefinitionFile,
}
