package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tsawler/textkit/swn"
	"github.com/tsawler/textkit/wordnet"
)

func sentiCommand() *cli.Command {
	return &cli.Command{
		Name:      "senti",
		Usage:     "look up SentiWordNet sentiment scores for words",
		ArgsUsage: "<word>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "pos",
				Usage: "restrict lookups to one part of speech (n, v, a or r)",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "show every candidate synset, not just the most frequent",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("missing word arguments")
			}
			lx, err := openLexicon()
			if err != nil {
				return err
			}

			pos := c.String("pos")
			for _, word := range c.Args().Slice() {
				if c.Bool("all") {
					entries, err := lx.PossibleSynsets(word, pos)
					if err != nil {
						return err
					}
					for _, e := range entries {
						printEntry(c, word, e)
					}
					continue
				}

				e, err := lx.MostFrequentSynset(word, pos)
				if errors.Is(err, swn.ErrNoSynsets) {
					fmt.Fprintf(c.App.Writer, "%-20s no synsets\n", word)
					continue
				}
				if err != nil {
					return err
				}
				printEntry(c, word, e)
			}

			if c.NArg() > 1 && !c.Bool("all") {
				score, err := lx.ScoreWords(c.Args().Slice())
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "net sentiment %+.3f over %d matched words\n",
					score.Net(), score.Matched)
			}
			return nil
		},
	}
}

// openLexicon builds the SentiWordNet lexicon on top of the WordNet index,
// both from the configured paths.
func openLexicon() (*swn.Lexicon, error) {
	if cfg.Sentiment.WordNet == "" || cfg.Sentiment.Lexicon == "" {
		return nil, errors.New("sentiment.wordnet and sentiment.lexicon must be set in the config")
	}
	idx, err := wordnet.Load(cfg.Sentiment.WordNet)
	if err != nil {
		return nil, err
	}
	return swn.Load(cfg.Sentiment.Lexicon, idx)
}

func printEntry(c *cli.Context, word string, e swn.Entry) {
	pos, neg, obj := e.Scores()
	fmt.Fprintf(c.App.Writer, "%-20s %s %8d  pos %.3f  neg %.3f  obj %.3f\n",
		word, e.POS, e.Offset, pos, neg, obj)
}
