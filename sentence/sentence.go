package sentence

// Doc is one annotated text as exported by the parsing pipeline
// (spacy, stanza): a list of sentences, each a list of tokens.
type Doc struct {
	Id int

	Title string

	Labels    []string
	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence is one segmented sentence of a Doc.
type Sentence struct {
	Id    int `json:"id"`
	DocId int `json:"-"`

	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// Id is the index of the token in the whole doc, starting at 0.
	Id int `json:"id"`

	// Head is the doc index of the syntactic head of this token.
	// A sentence root is its own head (Head == Id).
	// Head is an index into the flattened doc, never a reference.
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// IsPunct is the pipeline's own punctuation flag. It can disagree
	// with Pos == "PUNCT" on edge cases like symbols.
	IsPunct bool `json:"is_punct"`
}

// Span is a half-open range [Start, End) of doc token positions
// covering exactly one sentence.
type Span struct {
	Start int
	End   int
}

// Contains reports whether the doc position i falls inside the span.
func (s Span) Contains(i int) bool {
	return s.Start <= i && i < s.End
}

// Flatten returns all tokens of the doc in document order, one flat
// arena indexed by doc position.
func (d Doc) Flatten() []Token {
	n := 0
	for _, s := range d.Sentences {
		n += len(s.Tokens)
	}

	tokens := make([]Token, 0, n)
	for _, s := range d.Sentences {
		tokens = append(tokens, s.Tokens...)
	}

	return tokens
}

// Spans derives the sentence spans of the doc, in document order.
// The spans cover the flattened doc contiguously and without gaps.
func (d Doc) Spans() []Span {
	spans := make([]Span, 0, len(d.Sentences))

	start := 0
	for _, s := range d.Sentences {
		spans = append(spans, Span{Start: start, End: start + len(s.Tokens)})
		start += len(s.Tokens)
	}

	return spans
}

// Texts returns the raw token texts of the doc in document order.
// This is the sequence the aligner consumes.
func (d Doc) Texts() []string {
	texts := []string{}
	for _, s := range d.Sentences {
		for _, t := range s.Tokens {
			texts = append(texts, t.Text)
		}
	}

	return texts
}
