package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/tsawler/textkit/extract"
)

// inputFlags are shared by every command that reads a text file.
var inputFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "html",
		Usage: "extract readable article text from an HTML file",
	},
	&cli.StringFlag{
		Name:  "url",
		Usage: "page URL used to resolve relative links in HTML input",
	},
}

// readInput returns the text of the command's file argument, running HTML
// input through the readability extractor first.
func readInput(c *cli.Context) (string, error) {
	path := c.Args().First()
	if path == "" {
		return "", errors.New("missing file argument")
	}
	if c.Bool("html") {
		return extract.FromHTML(path, c.String("url"))
	}
	return extract.Text(path)
}

func wordsCommand() *cli.Command {
	return &cli.Command{
		Name:      "words",
		Usage:     "print the word tokens of a text file, one per line",
		ArgsUsage: "<file>",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: "tokenizer language (en or ja)",
			},
		}, inputFlags...),
		Action: func(c *cli.Context) error {
			text, err := readInput(c)
			if err != nil {
				return err
			}

			var words []string
			switch lang := c.String("lang"); lang {
			case "en":
				words, err = extract.Words(text)
			case "ja":
				var tok extract.WordTokenizer
				tok, err = extract.DefaultRegistry.JapaneseTokenizer()
				if err == nil {
					words = tok.Tokenize(text)
				}
			default:
				return fmt.Errorf("unsupported language %q", lang)
			}
			if err != nil {
				return err
			}

			for _, w := range words {
				fmt.Fprintln(c.App.Writer, w)
			}
			return nil
		},
	}
}

func sentencesCommand() *cli.Command {
	return &cli.Command{
		Name:      "sentences",
		Usage:     "print the sentences of a text file, one per line",
		ArgsUsage: "<file>",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "no-realign",
				Usage: "keep trailing quotes and brackets with the following sentence",
			},
		}, inputFlags...),
		Action: func(c *cli.Context) error {
			text, err := readInput(c)
			if err != nil {
				return err
			}
			sents, err := extract.Sentences(text, !c.Bool("no-realign"))
			if err != nil {
				return err
			}
			for _, s := range sents {
				fmt.Fprintln(c.App.Writer, s)
			}
			return nil
		},
	}
}

func tagCommand() *cli.Command {
	return &cli.Command{
		Name:      "tag",
		Usage:     "print each sentence with word/tag annotations",
		ArgsUsage: "<file>",
		Flags:     inputFlags,
		Action: func(c *cli.Context) error {
			text, err := readInput(c)
			if err != nil {
				return err
			}
			tagged, err := extract.TaggedStrings(text, true)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, strings.Join(tagged, "\n"))
			return nil
		},
	}
}
