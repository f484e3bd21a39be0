// Package feature assembles the per-AOI-token predictor table: for
// each AOI token of a trial, the POS tag, dependency distance,
// dependency depth and punctuation flag of its aligned pipeline
// token.
package feature

import (
	"github.com/revelaction/saccade/align"
	sent "github.com/revelaction/saccade/sentence"
	"github.com/revelaction/saccade/syntax"
	"github.com/revelaction/saccade/trial"
)

// Row is one AOI token with its predictors. An unaligned AOI token
// keeps Aligned == false and zero-valued predictors; it propagates as
// a missing predictor downstream, never as an error.
type Row struct {
	Subject  string `json:"subject"`
	Item     string `json:"item"`
	DocId    int    `json:"doc_id"`
	AoiIndex int    `json:"aoi_index"`
	AoiText  string `json:"aoi_text"`

	// Aligned reports whether the AOI token matched a pipeline token.
	Aligned bool `json:"aligned"`

	// TokenId is the doc position of the aligned token, or
	// align.Unaligned.
	TokenId int `json:"token_id"`

	Pos         string `json:"pos"`
	Dep         string `json:"dep"`
	DepDistance int    `json:"dep_distance"`
	DepDepth    int    `json:"dep_depth"`
	IsPunct     bool   `json:"is_punct"`

	TotalReadingTime float64 `json:"total_reading_time"`
}

// Extractor aligns trials against docs and pulls predictors through
// the dependency tree.
type Extractor struct {
	Aligner *align.Aligner
}

func NewExtractor() *Extractor {
	return &Extractor{Aligner: align.New()}
}

// Extract produces one Row per AOI token of the trial. It never
// fails: alignment misses become rows with missing predictors.
func (e *Extractor) Extract(tr trial.Trial, doc sent.Doc) []Row {
	mapping := e.Aligner.Align(tr.Tokens, doc.Texts())
	tree := syntax.NewTree(doc)

	rows := make([]Row, 0, len(tr.Tokens))
	for i, aoiTok := range tr.Tokens {
		row := Row{
			Subject:          tr.Subject,
			Item:             tr.Item,
			DocId:            doc.Id,
			AoiIndex:         i,
			AoiText:          aoiTok,
			TokenId:          mapping[i],
			TotalReadingTime: tr.ReadingTime(i),
		}

		if idx := mapping[i]; idx != align.Unaligned {
			tok := tree.Token(idx)
			row.Aligned = true
			row.Pos = tok.Pos
			row.Dep = tok.Dep
			row.DepDistance = tree.Distance(idx)
			row.DepDepth = tree.Depth(idx)
			row.IsPunct = syntax.IsPunctuation(tok)
		}

		rows = append(rows, row)
	}

	return rows
}
