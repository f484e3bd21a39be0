package syntax

import (
	"testing"

	sent "github.com/revelaction/saccade/sentence"
)

// jumpsDoc is "The quick brown fox jumps ." parsed: "jumps" is the
// root, "fox" its subject, the determiner and adjectives attach to
// "fox", the period to "jumps".
func jumpsDoc() sent.Doc {
	return sent.Doc{
		Title: "jumps",
		Sentences: []sent.Sentence{
			{
				Id: 0,
				Tokens: []sent.Token{
					{Id: 0, Head: 3, Text: "The", Pos: "DET"},
					{Id: 1, Head: 3, Text: "quick", Pos: "ADJ"},
					{Id: 2, Head: 3, Text: "brown", Pos: "ADJ"},
					{Id: 3, Head: 4, Text: "fox", Pos: "NOUN"},
					{Id: 4, Head: 4, Text: "jumps", Pos: "VERB"},
					{Id: 5, Head: 4, Text: ".", Pos: "PUNCT", IsPunct: true},
				},
			},
		},
	}
}

// twoSentDoc has two sentences; token 5 ("Second") carries a head
// pointing into the first sentence, a data anomaly.
func twoSentDoc() sent.Doc {
	return sent.Doc{
		Title: "two",
		Sentences: []sent.Sentence{
			{
				Id: 0,
				Tokens: []sent.Token{
					{Id: 0, Head: 1, Text: "First", Pos: "ADJ"},
					{Id: 1, Head: 1, Text: "sentence", Pos: "NOUN"},
					{Id: 2, Head: 1, Text: ".", Pos: "PUNCT", IsPunct: true},
				},
			},
			{
				Id: 1,
				Tokens: []sent.Token{
					{Id: 3, Head: 4, Text: "Second", Pos: "ADJ"},
					{Id: 4, Head: 4, Text: "sentence", Pos: "NOUN"},
					{Id: 5, Head: 1, Text: "follows", Pos: "VERB"},
					{Id: 6, Head: 4, Text: ".", Pos: "PUNCT", IsPunct: true},
				},
			},
		},
	}
}

func TestDistanceRoot(t *testing.T) {
	tree := NewTree(jumpsDoc())

	if got := tree.Distance(4); got != 0 {
		t.Errorf("Distance(root) = %d, want 0", got)
	}
}

func TestDistance(t *testing.T) {
	tree := NewTree(jumpsDoc())

	cases := []struct {
		i    int
		want int
	}{
		{0, 3}, // The -> fox
		{1, 2}, // quick -> fox
		{2, 1}, // brown -> fox
		{3, 1}, // fox -> jumps
		{5, 1}, // . -> jumps
	}

	for _, c := range cases {
		if got := tree.Distance(c.i); got != c.want {
			t.Errorf("Distance(%d) = %d, want %d", c.i, got, c.want)
		}
	}
}

func TestDistanceCrossSentence(t *testing.T) {
	tree := NewTree(twoSentDoc())

	// token 5 has its head in the other sentence
	if got := tree.Distance(5); got != 0 {
		t.Errorf("Distance(cross-sentence) = %d, want 0", got)
	}
}

func TestDistanceOutOfRange(t *testing.T) {
	tree := NewTree(jumpsDoc())

	if got := tree.Distance(-1); got != 0 {
		t.Errorf("Distance(-1) = %d, want 0", got)
	}
	if got := tree.Distance(99); got != 0 {
		t.Errorf("Distance(99) = %d, want 0", got)
	}
}

func TestDepthRoot(t *testing.T) {
	tree := NewTree(jumpsDoc())

	if got := tree.Depth(4); got != 0 {
		t.Errorf("Depth(root) = %d, want 0", got)
	}
}

func TestDepth(t *testing.T) {
	tree := NewTree(jumpsDoc())

	cases := []struct {
		i    int
		want int
	}{
		{0, 2}, // The -> fox -> jumps
		{3, 1}, // fox -> jumps
		{5, 1}, // . -> jumps
	}

	for _, c := range cases {
		if got := tree.Depth(c.i); got != c.want {
			t.Errorf("Depth(%d) = %d, want %d", c.i, got, c.want)
		}
	}
}

func TestDepthCrossSentenceBoundary(t *testing.T) {
	tree := NewTree(twoSentDoc())

	// The hop out of the sentence is not taken and not counted.
	if got := tree.Depth(5); got != 0 {
		t.Errorf("Depth(cross-sentence head) = %d, want 0", got)
	}
}

func TestDepthCyclicCapped(t *testing.T) {
	doc := sent.Doc{
		Sentences: []sent.Sentence{
			{
				Id: 0,
				Tokens: []sent.Token{
					{Id: 0, Head: 1, Text: "a"},
					{Id: 1, Head: 0, Text: "b"},
				},
			},
		},
	}

	tree := NewTree(doc)

	if got := tree.Depth(0); got != maxWalkSteps {
		t.Errorf("Depth(cyclic) = %d, want %d", got, maxWalkSteps)
	}
}

func TestDepthMalformedHeadIndex(t *testing.T) {
	doc := sent.Doc{
		Sentences: []sent.Sentence{
			{
				Id:     0,
				Tokens: []sent.Token{{Id: 0, Head: 42, Text: "stray"}},
			},
		},
	}

	tree := NewTree(doc)

	if got := tree.Depth(0); got != 0 {
		t.Errorf("Depth(out-of-range head) = %d, want 0", got)
	}
	if got := tree.Distance(0); got != 0 {
		t.Errorf("Distance(out-of-range head) = %d, want 0", got)
	}
}

func TestIsPunctuation(t *testing.T) {
	cases := []struct {
		tok  sent.Token
		want bool
	}{
		{sent.Token{Text: ",", Pos: "PUNCT", IsPunct: true}, true},
		{sent.Token{Text: ".", Pos: "PUNCT"}, true},
		{sent.Token{Text: "%", Pos: "SYM", IsPunct: true}, true},
		{sent.Token{Text: "word", Pos: "NOUN"}, false},
	}

	for _, c := range cases {
		if got := IsPunctuation(c.tok); got != c.want {
			t.Errorf("IsPunctuation(%q) = %t, want %t", c.tok.Text, got, c.want)
		}
	}
}
