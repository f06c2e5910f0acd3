// Command textkit exposes the toolkit's text processing on the command
// line: tokenizing, sentence splitting, part-of-speech tagging, frequency
// counting, sentiment lookups and file-size listings.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tsawler/textkit/internal/logging"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var cfg Config

func main() {
	app := &cli.App{
		Name:  "textkit",
		Usage: "text processing utilities",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "text or json",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = loadConfig(c.String("config"))
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.Logging.Level = c.String("log-level")
			}
			if c.IsSet("log-format") {
				cfg.Logging.Format = c.String("log-format")
			}
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
		Commands: []*cli.Command{
			wordsCommand(),
			sentencesCommand(),
			tagCommand(),
			freqCommand(),
			sentiCommand(),
			sizeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "textkit: %v\n", err)
		os.Exit(1)
	}
}
