package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"noise-go/internal/fn"
	"noise-go/pkg/log"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "noisegen",
		Usage:   "deterministic noise tables, maps and pipeline tooling",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration file `PATH`",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Path to the store database `PATH` (defaults to noise.db under ~/.noise-go)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			return log.Init(fn.T(c.Bool("verbose"), "debug", "info"), true)
		},
		Commands: []*cli.Command{
			renderCommand,
			tableCommand,
			seedCommand,
			gridCommand,
			pipelineCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}
