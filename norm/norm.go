// Package norm normalizes token text for cross-tokenizer comparison.
//
// The AOI segmentation of the measurement apparatus and the pipeline
// tokenizer disagree on case and surrounding punctuation. Two passes
// are used: Pass1 keeps apostrophes and hyphens so that "won't" stays
// distinct from "wont", Pass2 also strips them as a fallback when the
// tokenizers disagree on whether they are part of the token.
//
// The normalized forms are only compared, never stored as token text.
package norm

import (
	"regexp"
	"strings"
)

var (
	// pass1Re matches everything that is not a letter, digit,
	// underscore, apostrophe or hyphen.
	pass1Re = regexp.MustCompile(`[^\p{L}\p{N}_'\-]+`)

	// pass2Re matches apostrophes and hyphens.
	pass2Re = regexp.MustCompile(`['\-]`)
)

// Pass1 lowercases s and strips punctuation, keeping apostrophes and
// hyphens. It is total: punctuation-only input yields "".
func Pass1(s string) string {
	return pass1Re.ReplaceAllString(strings.ToLower(s), "")
}

// Pass2 applies Pass1 and additionally strips apostrophes and hyphens.
func Pass2(s string) string {
	return pass2Re.ReplaceAllString(Pass1(s), "")
}
