package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/saccade/align"
	"github.com/revelaction/saccade/feature"
	"github.com/revelaction/saccade/stat"
	"github.com/revelaction/saccade/storage"
	"github.com/revelaction/saccade/storage/filesystem"
	"github.com/revelaction/saccade/storage/sqlite/zombiezen"
	"github.com/urfave/cli/v2"
)

func featuresCommand() *cli.Command {
	return &cli.Command{
		Name:  "features",
		Usage: "extract the per-word predictor table from all trials",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "trials",
				Value: TrialDirDefault,
				Usage: "directory of trial JSON files",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: OutPathDefault,
				Usage: "output table: a .csv path or a sqlite file",
			},
			&cli.IntFlag{
				Name:  "window",
				Value: align.DefaultMaxWindow,
				Usage: "maximum number of pipeline tokens matched against one AOI token",
			},
		},
		Action: func(c *cli.Context) error {
			pool := &Pool{}
			defer pool.Close()

			repo, err := NewDocRepository(pool, c.String("docs"))
			if err != nil {
				return err
			}

			trialStore := filesystem.NewTrialStore(c.String("trials"))
			names, err := trialStore.List()
			if err != nil {
				return err
			}

			writer, closeWriter, err := newFeatureWriter(pool, c.String("out"))
			if err != nil {
				return err
			}
			defer closeWriter()

			extractor := &feature.Extractor{
				Aligner: &align.Aligner{MaxWindow: c.Int("window")},
			}
			hdl := stat.NewHandler()

			uiprogress.Start()
			bar := uiprogress.AddBar(len(names))
			bar.AppendCompleted()
			bar.PrependElapsed()

			for _, name := range names {
				tr, err := trialStore.Read(name)
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to read trial %s: %w", name, err)
				}

				doc, err := repo.Read(tr.DocId)
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to read doc %d for trial %s: %w", tr.DocId, name, err)
				}

				rows := extractor.Extract(tr, doc)
				hdl.AggregateRows(rows)

				if err := writer.Write(rows); err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to write rows for trial %s: %w", name, err)
				}

				bar.Incr()
			}
			uiprogress.Stop()

			if err := closeWriter(); err != nil {
				return fmt.Errorf("failed to finalize %s: %w", c.String("out"), err)
			}

			stats := hdl.Get()
			fmt.Printf("Extracted %d rows from %d trials, coverage %.1f%%\n",
				stats.NumRows, len(names), stats.Coverage()*100)

			return nil
		},
	}
}

// newFeatureWriter selects the output backend by path: .csv goes to
// the filesystem table, anything else to sqlite.
func newFeatureWriter(p *Pool, out string) (storage.FeatureWriter, func() error, error) {
	if isCSV(out) {
		store, err := filesystem.NewFeatureStore(out)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	dbPool, err := p.Open(out)
	if err != nil {
		return nil, nil, err
	}

	if err := zombiezen.CreateFeatureTables(dbPool); err != nil {
		return nil, nil, fmt.Errorf("failed to create features table: %w", err)
	}

	return zombiezen.NewFeatureStore(dbPool), func() error { return nil }, nil
}

func isCSV(path string) bool {
	return strings.HasSuffix(path, ".csv")
}
