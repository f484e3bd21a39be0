// Package align maps AOI tokens to pipeline tokens.
//
// The measurement apparatus and the pipeline tokenizer segment the
// same text differently: the pipeline splits contractions ("won't" ->
// "wo", "n't") and hyphenated compounds, the apparatus keeps them as
// one area of interest. The aligner bridges the two by matching one
// AOI token against a window of 1..MaxWindow consecutive pipeline
// tokens, comparing normalized forms.
package align

import (
	"strings"

	"github.com/revelaction/saccade/norm"
)

// Unaligned marks an AOI token that could not be matched to any
// pipeline token. It is a value, not an error: downstream feature
// extraction turns it into missing predictors.
const Unaligned = -1

// DefaultMaxWindow is the default number of consecutive pipeline
// tokens concatenated to match a single AOI token.
const DefaultMaxWindow = 4

// Mapping holds one pipeline token position (or Unaligned) per AOI
// token. Aligned positions are strictly increasing in AOI order and
// each pipeline token is claimed by at most one AOI token.
type Mapping []int

// NumAligned returns the number of aligned entries.
func (m Mapping) NumAligned() int {
	n := 0
	for _, idx := range m {
		if idx != Unaligned {
			n++
		}
	}

	return n
}

// Aligner aligns AOI token sequences against pipeline token sequences.
// The zero value is not usable; use New.
type Aligner struct {
	// MaxWindow is the maximum number of consecutive pipeline tokens
	// concatenated to match one AOI token.
	MaxWindow int
}

func New() *Aligner {
	return &Aligner{MaxWindow: DefaultMaxWindow}
}

// Align maps each AOI token to the position of its first matching
// pipeline token, greedy and strictly left to right. The returned
// mapping has one entry per AOI token. Align never fails: an AOI
// token without a match is Unaligned.
func (a *Aligner) Align(aoiTokens, docTokens []string) Mapping {
	mapping := make(Mapping, len(aoiTokens))
	for i := range mapping {
		mapping[i] = Unaligned
	}

	j := 0
	n := len(docTokens)

	for i, aoiTok := range aoiTokens {
		raw := strings.TrimSpace(aoiTok)
		tgtPass1 := norm.Pass1(aoiTok)
		tgtPass2 := norm.Pass2(aoiTok)

		// A pure punctuation AOI normalizes to nothing. Never window
		// match it against empty strings; find it by literal text.
		if tgtPass1 == "" && raw != "" {
			k := j
			for k < n && strings.TrimSpace(docTokens[k]) != raw {
				k++
			}

			// Commit the cursor only on success.
			if k < n {
				mapping[i] = k
				j = k + 1
			}
			continue
		}

		if tgtPass1 == "" {
			// Empty after normalization and empty raw; skip
			continue
		}

		matched := false
		k := j

		for k < n && !matched {
			for w := 1; w <= a.MaxWindow; w++ {
				if k+w > n {
					break
				}

				// Pass1 first: it preserves apostrophes/hyphens and
				// avoids spuriously equating distinct words.
				if concat(docTokens[k:k+w], norm.Pass1) == tgtPass1 {
					mapping[i] = k
					j = k + w
					matched = true
					break
				}

				if concat(docTokens[k:k+w], norm.Pass2) == tgtPass2 {
					mapping[i] = k
					j = k + w
					matched = true
					break
				}
			}

			if !matched {
				k++
			}
		}

		// Advance by one on total failure to guarantee forward
		// progress. This can skip a pipeline token that was never
		// tried as a match start for a later AOI token.
		if !matched {
			j = min(j+1, n)
		}
	}

	return mapping
}

// WindowWidth re-derives how many pipeline tokens starting at start
// the AOI token was matched against. Used for presentation only; the
// mapping itself records just the start position. Returns 1 when no
// width matches (the literal punctuation branch always consumes one).
func (a *Aligner) WindowWidth(aoiTok string, docTokens []string, start int) int {
	tgtPass1 := norm.Pass1(aoiTok)
	tgtPass2 := norm.Pass2(aoiTok)

	for w := 1; w <= a.MaxWindow; w++ {
		if start+w > len(docTokens) {
			break
		}

		if concat(docTokens[start:start+w], norm.Pass1) == tgtPass1 {
			return w
		}
		if concat(docTokens[start:start+w], norm.Pass2) == tgtPass2 {
			return w
		}
	}

	return 1
}

func concat(tokens []string, normalize func(string) string) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(normalize(t))
	}

	return b.String()
}
