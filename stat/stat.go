package stat

import (
	"github.com/revelaction/saccade/feature"
	sent "github.com/revelaction/saccade/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int

	// Alignment coverage over aggregated feature rows.
	NumRows      int
	NumAligned   int
	NumUnaligned int
}

// Coverage returns the aligned fraction of aggregated rows, in [0, 1].
func (s Stats) Coverage() float64 {
	if s.NumRows == 0 {
		return 0
	}

	return float64(s.NumAligned) / float64(s.NumRows)
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	return &Handler{}
}

// AggregateDoc adds the sentence and token counts of a doc.
func (h *Handler) AggregateDoc(doc sent.Doc) {
	h.stats.NumSentences += len(doc.Sentences)
	for _, sentence := range doc.Sentences {
		h.stats.NumTokens += len(sentence.Tokens)
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// AggregateRows adds the alignment coverage of extracted feature rows.
func (h *Handler) AggregateRows(rows []feature.Row) {
	for _, row := range rows {
		h.stats.NumRows++
		if row.Aligned {
			h.stats.NumAligned++
		} else {
			h.stats.NumUnaligned++
		}
	}
}
