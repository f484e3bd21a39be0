package main

import (
	"github.com/revelaction/saccade/align"
	"github.com/revelaction/saccade/query"
	"github.com/revelaction/saccade/render"
	"github.com/revelaction/saccade/storage"
	"github.com/urfave/cli/v2"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "interactive alignment explorer",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "window",
				Value: align.DefaultMaxWindow,
				Usage: "maximum number of pipeline tokens matched against one AOI token",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: func(c *cli.Context) error {
			pool := &Pool{}
			defer pool.Close()

			repo, err := NewDocRepository(pool, c.String("docs"))
			if err != nil {
				return err
			}

			if pre, ok := repo.(storage.Preloader); ok {
				if err := pre.Preload(nil); err != nil {
					return err
				}
			}

			r := render.NewRenderer()
			r.HasColor = !c.Bool("no-color")

			aligner := &align.Aligner{MaxWindow: c.Int("window")}

			h := query.NewHandler(repo, aligner, r)
			return h.Run()
		},
	}
}
