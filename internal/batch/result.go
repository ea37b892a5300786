package batch

import (
	"errors"
	"fmt"

	"github.com/ironsheep/sprite-cutout/internal/background"
	"github.com/ironsheep/sprite-cutout/internal/imaging"
)

// ErrSourceMissing is recorded for jobs whose source file does not exist.
var ErrSourceMissing = errors.New("file not found")

// Stage names the step of a job that failed.
type Stage string

const (
	StageLoad     Stage = "load"
	StageClassify Stage = "classify"
	StageSave     Stage = "save"
)

// ProcessingError describes one failed attempt at one image.
type ProcessingError struct {
	Stage    Stage
	Path     string
	Strategy background.Strategy
	Err      error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s %s (%s): %v", e.Stage, e.Path, e.Strategy, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Status is the outcome of a job.
type Status int

const (
	StatusProcessed Status = iota
	StatusFailed
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusFailed:
		return "failed"
	case StatusMissing:
		return "missing"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the typed outcome of one job.
type Result struct {
	Job    Job
	Source string
	Dest   string
	Status Status

	// Strategy and Reference are set when Status is StatusProcessed.
	Strategy  background.Strategy
	Reference imaging.RGBColor

	// Width and Height of the written image, when processed.
	Width  int
	Height int

	// Attempts holds one error per failed strategy, in the order tried.
	// A missing source records ErrSourceMissing here.
	Attempts []error
}

// OK reports whether the job produced an output file.
func (r Result) OK() bool {
	return r.Status == StatusProcessed
}

// Err joins every recorded attempt error, or returns nil on success.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return errors.Join(r.Attempts...)
}

// Summary aggregates every Result of a run.
type Summary struct {
	RunID     string
	Total     int
	Processed int
	Results   []Result
}

// Failed returns the results that did not produce an output file.
func (s Summary) Failed() []Result {
	var out []Result
	for _, r := range s.Results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}

func (s Summary) String() string {
	return fmt.Sprintf("Processed %d/%d images.", s.Processed, s.Total)
}
