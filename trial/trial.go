// Package trial holds the reading-time side of the data: the AOI
// token sequence recorded by the measurement apparatus for one
// stimulus item read by one subject.
package trial

// Trial is one stimulus/subject record of the apparatus.
type Trial struct {
	// Subject identifies the reader.
	Subject string `json:"subject"`

	// Item identifies the stimulus text.
	Item string `json:"item"`

	// DocId references the annotated doc of the same text.
	DocId int `json:"doc_id"`

	// Tokens are the raw AOI strings, in reading order. They may be
	// pure punctuation or carry internal apostrophes and hyphens the
	// apparatus kept as part of the token.
	Tokens []string `json:"tokens"`

	// ReadingTimes are per-AOI total reading times in ms, parallel to
	// Tokens. Empty when the apparatus export carries none.
	ReadingTimes []float64 `json:"reading_times,omitempty"`
}

// Library is a collection of trials
type Library []Trial

// ReadingTime returns the total reading time of AOI token i, or 0
// when the trial carries no reading times.
func (t Trial) ReadingTime(i int) float64 {
	if i < 0 || i >= len(t.ReadingTimes) {
		return 0
	}

	return t.ReadingTimes[i]
}
