package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/saccade/storage/filesystem"
	"github.com/revelaction/saccade/storage/sqlite/zombiezen"
	"github.com/urfave/cli/v2"
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "import a directory of JSON docs into a sqlite database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Required: true,
				Usage:    "source directory of JSON docs",
			},
			&cli.StringFlag{
				Name:     "to",
				Required: true,
				Usage:    "target sqlite file",
			},
		},
		Action: func(c *cli.Context) error {
			src, err := filesystem.NewDocStore(c.String("from"))
			if err != nil {
				return err
			}

			pool, err := zombiezen.NewPool(c.String("to"))
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := zombiezen.CreateDocTables(pool); err != nil {
				return fmt.Errorf("failed to create docs table: %w", err)
			}

			dst := zombiezen.NewDocStore(pool)

			fmt.Printf("Reading docs from %s...\n", c.String("from"))
			docs, err := src.List()
			if err != nil {
				return err
			}

			uiprogress.Start()
			bar := uiprogress.AddBar(len(docs))
			bar.AppendCompleted()
			bar.PrependElapsed()

			count := 0
			for _, docMeta := range docs {
				doc, err := src.Read(docMeta.Id)
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
				}

				if err := dst.Write(doc); err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
				}
				count++
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Printf("Successfully imported %d docs from %s to %s\n", count, c.String("from"), c.String("to"))
			return nil
		},
	}
}
