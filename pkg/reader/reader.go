// Package reader defines the contract between the pretext CLI and the
// dataset readers it hosts, plus the shared bookkeeping those readers
// build on.
package reader

// Record is the unit of output: the text extracted from one input plus a
// flat metadata map, passed downstream in the conversion pipeline.
type Record struct {
	Content string            `json:"content" yaml:"content"`
	Meta    map[string]string `json:"meta" yaml:"meta"`
}

// Reader produces pretraining records from a configured input source.
// Callers drive it as: Initialize, then Read until HasFinished reports
// true, then a final Finalize.
type Reader interface {
	// Name returns the reader's command-line name.
	Name() string

	// Description returns a one-line description for help output.
	Description() string

	// Initialize resolves the configured inputs. It fails when the
	// configuration yields nothing to read.
	Initialize() error

	// Read consumes the next input and returns the records produced
	// from it. Calling Read after HasFinished reports true is an error.
	Read() ([]Record, error)

	// HasFinished reports whether all inputs have been consumed.
	HasFinished() bool

	// Finalize closes out the input currently being processed. It is a
	// no-op when nothing is in flight.
	Finalize() error
}
