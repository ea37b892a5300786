package batch

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ironsheep/sprite-cutout/internal/background"
	"github.com/ironsheep/sprite-cutout/internal/imaging"
	"github.com/segmentio/ksuid"
)

// Runner processes the jobs of one Config.
type Runner struct {
	cfg    Config
	logger *log.Logger
	debug  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger directs progress lines to l. The default logger discards them.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithDebug enables per-image band statistics in the log.
func WithDebug(debug bool) Option {
	return func(r *Runner) {
		r.debug = debug
	}
}

// NewRunner creates a runner for cfg. An empty strategy chain is replaced by
// DefaultStrategies.
func NewRunner(cfg Config, opts ...Option) *Runner {
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = DefaultStrategies()
	}
	r := &Runner{
		cfg:    cfg,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes every job in order and returns the aggregate outcome.
// It never fails as a whole: every problem is reported through the
// Summary's per-job results.
func (r *Runner) Run() Summary {
	summary := Summary{
		RunID:   ksuid.New().String(),
		Total:   len(r.cfg.Jobs),
		Results: make([]Result, 0, len(r.cfg.Jobs)),
	}

	r.logger.Printf("Starting background removal process... (run %s)", summary.RunID)

	var dirErr error
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		r.logger.Printf("✗ Cannot create output directory %s: %v", r.cfg.OutputDir, err)
		dirErr = err
	}

	for _, job := range r.cfg.Jobs {
		res := r.process(job, dirErr)
		if res.OK() {
			summary.Processed++
		}
		summary.Results = append(summary.Results, res)
	}

	r.logger.Printf("Background removal complete! %s", summary)
	return summary
}

func (r *Runner) process(job Job, dirErr error) Result {
	res := Result{
		Job:    job,
		Source: filepath.Join(r.cfg.InputDir, job.Source),
		Dest:   filepath.Join(r.cfg.OutputDir, job.Dest),
		Status: StatusFailed,
	}

	if !imaging.Exists(res.Source) {
		r.logger.Printf("✗ File not found: %s", res.Source)
		res.Status = StatusMissing
		res.Attempts = append(res.Attempts, ErrSourceMissing)
		return res
	}

	for _, s := range r.cfg.Strategies {
		var err error
		if dirErr != nil {
			err = &ProcessingError{Stage: StageSave, Path: res.Dest, Strategy: s, Err: dirErr}
		} else {
			err = r.attempt(&res, s)
		}
		if err == nil {
			res.Status = StatusProcessed
			r.logger.Printf("✓ Processed (%s method): %s -> %s", s, res.Source, res.Dest)
			return res
		}
		r.logger.Printf("✗ Error processing %s: %v", res.Source, err)
		res.Attempts = append(res.Attempts, err)
	}

	r.logger.Printf("✗ Not processed: %s", res.Source)
	return res
}

// attempt runs one strategy end to end. The image is reloaded for every
// attempt so a failed strategy cannot leak state into the next.
func (r *Runner) attempt(res *Result, s background.Strategy) error {
	img, err := imaging.Load(res.Source)
	if err != nil {
		return &ProcessingError{Stage: StageLoad, Path: res.Source, Strategy: s, Err: err}
	}

	out, err := background.Classify(img, s)
	if err != nil {
		return &ProcessingError{Stage: StageClassify, Path: res.Source, Strategy: s, Err: err}
	}

	if err := imaging.Save(res.Dest, out.Image); err != nil {
		return &ProcessingError{Stage: StageSave, Path: res.Dest, Strategy: s, Err: err}
	}

	dims := imaging.GetDimensions(out.Image)
	res.Strategy = s
	res.Reference = out.Reference
	res.Width, res.Height = dims.Width, dims.Height

	if r.debug {
		r.logger.Printf("  %s %dx%d reference %s bands %v unmatched %d",
			res.Job.Dest, dims.Width, dims.Height, out.Reference, out.Stats.Bands, out.Stats.Unmatched)
	}
	return nil
}
