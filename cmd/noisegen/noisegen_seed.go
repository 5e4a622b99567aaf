package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"noise-go/pkg/seed"
)

var seedCommand = &cli.Command{
	Name:        "seed",
	Usage:       "derives table seeds from names",
	UsageText:   "noisegen seed [--random] [NAME...]",
	Description: `Prints the seed each given name derives to. The same name always yields the same seed, so maps can be referenced by name instead of number.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "random",
			Aliases: []string{"r"},
			Usage:   "Print a fresh random seed instead",
		},
	},
	Action: seedCmd,
}

func seedCmd(c *cli.Context) error {
	if c.Bool("random") {
		v, err := seed.Random()
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		fmt.Println(v)
		return nil
	}
	if c.NArg() == 0 {
		return cli.Exit("Error: at least one name (or --random) is required.", 1)
	}
	for _, name := range c.Args().Slice() {
		fmt.Printf("%-32s %d\n", name, seed.Derive(name))
	}
	return nil
}
