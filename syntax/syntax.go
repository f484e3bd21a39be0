// Package syntax computes sentence-local dependency tree metrics over
// an annotated doc: linear distance to the syntactic head and depth in
// the dependency tree.
//
// Head relations are followed as indices into the flattened doc, never
// as references, and every walk is bounded, so malformed or cyclic
// head data degrades to a defined value instead of failing.
package syntax

import (
	sent "github.com/revelaction/saccade/sentence"
)

// maxWalkSteps bounds the head walk in Depth against cyclic or
// malformed head data.
const maxWalkSteps = 50

// Tree is the per-doc dependency structure: the flat token arena and
// the sentence spans. It is a pure derived structure, built once per
// doc and never mutated.
type Tree struct {
	tokens []sent.Token
	spans  []sent.Span
}

func NewTree(doc sent.Doc) *Tree {
	return &Tree{
		tokens: doc.Flatten(),
		spans:  doc.Spans(),
	}
}

// Len returns the number of tokens in the doc.
func (t *Tree) Len() int {
	return len(t.tokens)
}

// Token returns the token at doc position i.
func (t *Tree) Token(i int) sent.Token {
	return t.tokens[i]
}

// spanOf returns the sentence span containing doc position i.
// Linear scan; sentences are short.
func (t *Tree) spanOf(i int) (sent.Span, bool) {
	for _, s := range t.spans {
		if s.Contains(i) {
			return s, true
		}
	}

	return sent.Span{}, false
}

// Distance returns the linear distance between the token at doc
// position i and its syntactic head, sentence-local.
//
// A sentence root has distance 0. A head outside the token's own
// sentence is a data anomaly and also yields 0, for consistency.
func (t *Tree) Distance(i int) int {
	if i < 0 || i >= len(t.tokens) {
		return 0
	}

	head := t.tokens[i].Head
	if head == i {
		return 0
	}

	tokenSpan, tokOk := t.spanOf(i)
	headSpan, headOk := t.spanOf(head)

	if tokOk != headOk || tokenSpan != headSpan {
		return 0
	}

	if head > i {
		return head - i
	}
	return i - head
}

// Depth returns the number of head-following steps from the token at
// doc position i up to its sentence root. Roots have depth 0.
//
// The walk never leaves the token's own sentence: a head outside the
// span acts as a root boundary and the step to it is not counted. The
// walk is capped at 50 steps so cyclic head data terminates.
func (t *Tree) Depth(i int) int {
	if i < 0 || i >= len(t.tokens) {
		return 0
	}

	tokenSpan, hasSpan := t.spanOf(i)

	depth := 0
	cur := i

	for t.tokens[cur].Head != cur {
		next := t.tokens[cur].Head

		if next < 0 || next >= len(t.tokens) {
			break
		}

		if hasSpan && !tokenSpan.Contains(next) {
			break
		}

		depth++
		cur = next

		if depth >= maxWalkSteps {
			break
		}
	}

	return depth
}

// IsPunctuation reports whether a token counts as punctuation for
// predictor exclusion. The POS tag and the pipeline flag can disagree
// on edge cases such as symbols; either signal suffices.
func IsPunctuation(tok sent.Token) bool {
	return tok.Pos == "PUNCT" || tok.IsPunct
}
