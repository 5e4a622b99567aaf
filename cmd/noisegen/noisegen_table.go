package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"noise-go/pkg/log"
	"noise-go/pkg/permtable"
	"noise-go/pkg/seed"
	"noise-go/pkg/store"
)

var tableCommand = &cli.Command{
	Name:        "table",
	Usage:       "builds, shows and stores permutation tables",
	UsageText:   "noisegen table [command options] [--save NAME|--list|--delete NAME]",
	Description: `Shows the table for a seed (the default mode), or manages named tables in the local store.`,
	Flags: []cli.Flag{
		&cli.UintFlag{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "Table `SEED`",
		},
		&cli.StringFlag{
			Name:  "seed-name",
			Usage: "Derive the seed from `NAME`",
		},
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "Print the table as a JSON array instead of hex rows",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Write the raw 256-byte table to `FILE`",
		},

		// --- Mode Flags ---
		&cli.StringFlag{
			Name:  "save",
			Usage: "Mode: store the table under `NAME`",
		},
		&cli.BoolFlag{
			Name:  "list",
			Usage: "Mode: list stored tables",
		},
		&cli.StringFlag{
			Name:  "delete",
			Usage: "Mode: delete the stored table `NAME`",
		},
	},
	Action: tableCmd,
}

func tableSeed(c *cli.Context) uint32 {
	if c.IsSet("seed-name") {
		return seed.Derive(c.String("seed-name"))
	}
	return uint32(c.Uint("seed"))
}

func tableCmd(c *cli.Context) error {
	modeCount := 0
	for _, mode := range []bool{c.IsSet("save"), c.Bool("list"), c.IsSet("delete")} {
		if mode {
			modeCount++
		}
	}
	if modeCount > 1 {
		return cli.Exit("Error: Only one mode flag (--save, --list, --delete) can be specified at a time.", 1)
	}

	switch {
	case c.Bool("list"):
		return tableList(c)
	case c.IsSet("delete"):
		return tableDelete(c)
	case c.IsSet("save"):
		return tableSave(c)
	}
	return tableShow(c)
}

func tableShow(c *cli.Context) error {
	sv := tableSeed(c)
	table := permtable.New(sv)

	if c.Bool("json") {
		data, err := json.Marshal(&table)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		fmt.Println(string(data))
		return nil
	}

	raw, err := table.MarshalBinary()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return cli.Exit(fmt.Sprintf("Error writing %s: %v", out, err), 1)
		}
		log.Info().Str("file", out).Msg("table written")
		return nil
	}

	fmt.Printf("seed %d\n", sv)
	for row := 0; row < len(raw); row += 16 {
		fmt.Printf("% x\n", raw[row:row+16])
	}
	return nil
}

func tableSave(c *cli.Context) error {
	sv := tableSeed(c)
	table := permtable.New(sv)

	s, err := store.Open(c.String("db"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error opening store: %v", err), 1)
	}
	defer s.Close()

	name := c.String("save")
	if err := s.SaveTable(c.Context, name, sv, &table); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	log.Info().Str("name", name).Uint32("seed", sv).Msg("table stored")
	return nil
}

func tableList(c *cli.Context) error {
	s, err := store.Open(c.String("db"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error opening store: %v", err), 1)
	}
	defer s.Close()

	infos, err := s.ListTables(c.Context)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	if len(infos) == 0 {
		fmt.Println("no stored tables")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%-24s seed=%-10d created=%s\n",
			info.Name, info.Seed, info.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

func tableDelete(c *cli.Context) error {
	s, err := store.Open(c.String("db"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error opening store: %v", err), 1)
	}
	defer s.Close()

	name := c.String("delete")
	if err := s.DeleteTable(c.Context, name); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	log.Info().Str("name", name).Msg("table deleted")
	return nil
}
