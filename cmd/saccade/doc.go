package main

import (
	"fmt"

	"github.com/revelaction/saccade/render"
	sent "github.com/revelaction/saccade/sentence"
	"github.com/revelaction/saccade/syntax"
	"github.com/urfave/cli/v2"
)

func docCommand() *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "list docs, or print the sentences of one doc",
		ArgsUsage: "[docId]",
		Action: func(c *cli.Context) error {
			pool := &Pool{}
			defer pool.Close()

			repo, err := NewDocRepository(pool, c.String("docs"))
			if err != nil {
				return err
			}

			if !c.Args().Present() {
				docs, err := repo.List()
				if err != nil {
					return err
				}

				for _, doc := range docs {
					fmt.Printf("📖 %d %s \n", doc.Id, doc.Title)
				}

				return nil
			}

			docId, err := parseId(c.Args().First())
			if err != nil {
				return err
			}

			doc, err := repo.Read(docId)
			if err != nil {
				return err
			}

			for i, sentence := range doc.Sentences {
				fmt.Printf("✍  %d-%d %s\n", docId, i, sentenceText(sentence))
			}

			return nil
		},
	}
}

func sentenceCommand() *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "print the tokens of one sentence with their dependency metrics",
		ArgsUsage: "<docId> <sentenceId>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("usage: sentence <docId> <sentenceId>")
			}

			docId, err := parseId(c.Args().Get(0))
			if err != nil {
				return err
			}
			sentId, err := parseId(c.Args().Get(1))
			if err != nil {
				return err
			}

			pool := &Pool{}
			defer pool.Close()

			repo, err := NewDocRepository(pool, c.String("docs"))
			if err != nil {
				return err
			}

			doc, err := repo.Read(docId)
			if err != nil {
				return err
			}

			if sentId < 0 || sentId >= len(doc.Sentences) {
				return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(doc.Sentences))
			}

			fmt.Printf("✍  %d-%d %s\n\n", docId, sentId, sentenceText(doc.Sentences[sentId]))

			tree := syntax.NewTree(doc)
			span := doc.Spans()[sentId]

			r := render.NewRenderer()
			r.Sentence(tree, span, "")

			return nil
		},
	}
}

func sentenceText(s sent.Sentence) string {
	text := ""
	for i, tok := range s.Tokens {
		if i > 0 && !tok.IsPunct {
			text += " "
		}
		text += tok.Text
	}

	return text
}
