package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Build information, set by the linker.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

const (
	// DocDirDefault is the default directory of annotated docs
	// (pipeline JSON export).
	DocDirDefault = "./corpus/doc"

	// TrialDirDefault is the default directory of trial files
	// (apparatus AOI export).
	TrialDirDefault = "./corpus/trial"

	// OutPathDefault is the default per-word feature table.
	OutPathDefault = "./data/trt_by_word.csv"
)

func main() {
	app := &cli.App{
		Name:  "saccade",
		Usage: "align AOI reading-time tokens with parsed docs and extract syntactic predictors",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "docs",
				Value: DocDirDefault,
				Usage: "doc repository: a directory of JSON docs or a sqlite file",
			},
		},
		Commands: []*cli.Command{
			docCommand(),
			sentenceCommand(),
			alignCommand(),
			featuresCommand(),
			statCommand(),
			importCommand(),
			postprocessCommand(),
			queryCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "saccade: %v\n", err)
		os.Exit(1)
	}
}
