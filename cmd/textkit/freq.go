package main

import (
	"database/sql"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tsawler/textkit/dbutil"
	"github.com/tsawler/textkit/extract"
)

func freqCommand() *cli.Command {
	return &cli.Command{
		Name:      "freq",
		Usage:     "count word frequencies in a text file",
		ArgsUsage: "<file>",
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{
				Name:  "tag",
				Usage: "count only words with these part-of-speech tags (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "no-stopwords",
				Usage: "drop stopwords before counting",
			},
			&cli.StringFlag{
				Name:  "stopword-lang",
				Value: "en",
				Usage: "stopword language code",
			},
			&cli.IntFlag{
				Name:  "top",
				Value: 20,
				Usage: "number of entries to print (0 for all)",
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "also write the counts to this database table",
			},
		}, inputFlags...),
		Action: func(c *cli.Context) error {
			text, err := readInput(c)
			if err != nil {
				return err
			}

			fd, err := extract.TagFreq(text, c.StringSlice("tag"))
			if err != nil {
				return err
			}
			if c.Bool("no-stopwords") {
				fd = fd.WithoutStopwords(c.String("stopword-lang"))
			}

			for _, e := range fd.MostCommon(c.Int("top")) {
				fmt.Fprintf(c.App.Writer, "%6d %s\n", e.Value, e.Key)
			}

			if table := c.String("store"); table != "" {
				if err := storeFreq(table, fd); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// storeFreq writes a frequency distribution to the configured database,
// replacing any previous contents of the table.
func storeFreq(table string, fd extract.FreqDist) error {
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	fields := []string{"word VARCHAR(100)", "count INT"}
	if err := dbutil.CreateTable(db, table, fields, "word", "", true); err != nil {
		return err
	}
	if err := dbutil.Exec(db, "DELETE FROM "+table); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	insert := fmt.Sprintf("INSERT INTO %s (word, count) VALUES ($1, $2)", table)
	if cfg.Database.Driver == "sqlite3" {
		insert = fmt.Sprintf("INSERT INTO %s (word, count) VALUES (?, ?)", table)
	}
	for _, e := range fd.MostCommon(0) {
		if err := dbutil.Exec(tx, insert, e.Key, e.Value); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
