package stat

import (
	"testing"

	"github.com/revelaction/saccade/feature"
	sent "github.com/revelaction/saccade/sentence"
)

func TestAggregateDoc(t *testing.T) {
	doc := sent.Doc{
		Sentences: []sent.Sentence{
			{Tokens: make([]sent.Token, 4)},
			{Tokens: make([]sent.Token, 6)},
		},
	}

	h := NewHandler()
	h.AggregateDoc(doc)

	stats := h.Get()
	if stats.NumSentences != 2 {
		t.Errorf("NumSentences = %d, want 2", stats.NumSentences)
	}
	if stats.NumTokens != 10 {
		t.Errorf("NumTokens = %d, want 10", stats.NumTokens)
	}
	if stats.TokensPerSentenceMean != 5 {
		t.Errorf("TokensPerSentenceMean = %d, want 5", stats.TokensPerSentenceMean)
	}
}

func TestAggregateRows(t *testing.T) {
	rows := []feature.Row{
		{Aligned: true},
		{Aligned: true},
		{Aligned: false},
		{Aligned: true},
	}

	h := NewHandler()
	h.AggregateRows(rows)

	stats := h.Get()
	if stats.NumRows != 4 || stats.NumAligned != 3 || stats.NumUnaligned != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Coverage() != 0.75 {
		t.Errorf("Coverage() = %v, want 0.75", stats.Coverage())
	}
}

func TestCoverageEmpty(t *testing.T) {
	if got := (Stats{}).Coverage(); got != 0 {
		t.Errorf("Coverage() = %v, want 0", got)
	}
}
