package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/saccade/align"
	"github.com/revelaction/saccade/render"
	"github.com/revelaction/saccade/storage/filesystem"
	"github.com/urfave/cli/v2"
)

func alignCommand() *cli.Command {
	return &cli.Command{
		Name:      "align",
		Usage:     "align the AOI tokens of one trial against its doc",
		ArgsUsage: "<trialName>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "trials",
				Value: TrialDirDefault,
				Usage: "directory of trial JSON files",
			},
			&cli.IntFlag{
				Name:  "window",
				Value: align.DefaultMaxWindow,
				Usage: "maximum number of pipeline tokens matched against one AOI token",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: render.Defaultformat,
				Usage: "output format: all, aligned, json",
			},
		},
		Action: func(c *cli.Context) error {
			if !c.Args().Present() {
				return fmt.Errorf("usage: align <trialName>")
			}

			trialStore := filesystem.NewTrialStore(c.String("trials"))
			tr, err := trialStore.Read(c.Args().First())
			if err != nil {
				return err
			}

			pool := &Pool{}
			defer pool.Close()

			repo, err := NewDocRepository(pool, c.String("docs"))
			if err != nil {
				return err
			}

			doc, err := repo.Read(tr.DocId)
			if err != nil {
				return err
			}

			aligner := &align.Aligner{MaxWindow: c.Int("window")}
			docTokens := doc.Texts()
			mapping := aligner.Align(tr.Tokens, docTokens)

			r := render.NewRenderer()
			r.HasColor = !c.Bool("no-color")
			r.Format = c.String("format")
			r.Alignment(aligner, tr.Tokens, docTokens, mapping)

			fmt.Printf("aligned %d/%d\n", mapping.NumAligned(), len(mapping))

			return nil
		},
	}
}

func parseId(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("not a valid id: %s", arg)
	}

	return id, nil
}
