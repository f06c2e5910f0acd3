package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tsawler/textkit/pathutil"
	"github.com/tsawler/textkit/sortutil"
)

func sizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "size",
		Usage:     "list files and directories ordered by size on disk",
		ArgsUsage: "<path>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "largest first",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("missing path arguments")
			}
			paths, err := sortutil.BySize(c.Args().Slice(), c.Bool("reverse"))
			if err != nil {
				return err
			}
			for _, p := range paths {
				size, err := pathutil.Size(p, nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "%12d %s\n", size, p)
			}
			return nil
		},
	}
}
