package main

import (
	"fmt"

	"github.com/revelaction/saccade/trt"
	"github.com/urfave/cli/v2"
)

func postprocessCommand() *cli.Command {
	return &cli.Command{
		Name:  "postprocess",
		Usage: "drop rows with implausible total reading times from the feature table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "table",
				Value: OutPathDefault,
				Usage: "feature table to filter in place",
			},
			&cli.Float64Flag{
				Name:  "min",
				Value: trt.DefaultMin,
				Usage: "minimum plausible total reading time (ms)",
			},
			&cli.Float64Flag{
				Name:  "max",
				Value: trt.DefaultMax,
				Usage: "maximum plausible total reading time (ms)",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.String("table")

			res, err := trt.Filter(path, c.Float64("min"), c.Float64("max"))
			if err != nil {
				return err
			}

			if res.Skipped {
				fmt.Printf("Skipping: nothing to filter in %s\n", path)
				return nil
			}

			fmt.Printf("Filtered TRT: %d -> %d rows (removed %d)\n", res.Before, res.After, res.Removed)
			return nil
		},
	}
}
