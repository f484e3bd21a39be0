package storage

import (
	"github.com/revelaction/saccade/feature"
	sent "github.com/revelaction/saccade/sentence"
	"github.com/revelaction/saccade/trial"
)

// DocReader defines read operations for annotated doc storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of docs.
	// Content (Sentences) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a doc by ID, content included
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for annotated doc storage
type DocWriter interface {
	// Write persists a doc and its sentences to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// TrialReader defines read operations for trial storage
type TrialReader interface {
	// List returns the names of all stored trials
	List() ([]string, error)

	// Read returns a trial by name
	Read(name string) (trial.Trial, error)
}

// FeatureWriter persists extracted feature rows
type FeatureWriter interface {
	Write(rows []feature.Row) error
}

// Preloader defines an optional capability for repositories that
// require or support eager loading of data into memory.
type Preloader interface {
	Preload(cb func(current, total int, name string)) error
}
