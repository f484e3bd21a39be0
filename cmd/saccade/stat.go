package main

import (
	"fmt"

	"github.com/revelaction/saccade/align"
	"github.com/revelaction/saccade/feature"
	"github.com/revelaction/saccade/stat"
	"github.com/revelaction/saccade/storage/filesystem"
	"github.com/urfave/cli/v2"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "doc counts and alignment coverage",
		ArgsUsage: "[docId]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "trials",
				Value: TrialDirDefault,
				Usage: "directory of trial JSON files",
			},
		},
		Action: func(c *cli.Context) error {
			pool := &Pool{}
			defer pool.Close()

			repo, err := NewDocRepository(pool, c.String("docs"))
			if err != nil {
				return err
			}

			hdl := stat.NewHandler()

			if c.Args().Present() {
				docId, err := parseId(c.Args().First())
				if err != nil {
					return err
				}

				doc, err := repo.Read(docId)
				if err != nil {
					return err
				}

				hdl.AggregateDoc(doc)
			} else {
				docs, err := repo.List()
				if err != nil {
					return err
				}

				for _, meta := range docs {
					doc, err := repo.Read(meta.Id)
					if err != nil {
						return err
					}

					hdl.AggregateDoc(doc)
				}
			}

			// Coverage over all trials of the trial dir, when present.
			trialStore := filesystem.NewTrialStore(c.String("trials"))
			if names, err := trialStore.List(); err == nil {
				extractor := &feature.Extractor{Aligner: align.New()}

				for _, name := range names {
					tr, err := trialStore.Read(name)
					if err != nil {
						continue
					}

					doc, err := repo.Read(tr.DocId)
					if err != nil {
						continue
					}

					hdl.AggregateRows(extractor.Extract(tr, doc))
				}
			}

			stats := hdl.Get()
			fmt.Printf("Num sentences %d, num tokens %d, tokens per sentence %d\n",
				stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)

			if stats.NumRows > 0 {
				fmt.Printf("Alignment: %d/%d AOI tokens (%.1f%%), %d unmatched\n",
					stats.NumAligned, stats.NumRows, stats.Coverage()*100, stats.NumUnaligned)
			}

			return nil
		},
	}
}
