package countdown

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"time"
)

// TargetRepository persists the target string. LoadTarget returns "" when
// nothing has been stored.
type TargetRepository interface {
	LoadTarget() (string, error)
	SaveTarget(string) error
}

// RecordRepository persists the whole record log on every append.
type RecordRepository interface {
	LoadRecords() ([]Record, error)
	SaveRecords([]Record) error
}

// Notifier plays the zero-crossing sound.
type Notifier interface {
	Notify() error
}

type nopNotifier struct{}

func (nopNotifier) Notify() error { return nil }

// Engine owns the countdown state and drives the storage and sound ports.
// It is not safe for concurrent use; the caller's event loop serializes
// ticks and edits.
type Engine struct {
	targets  TargetRepository
	records  RecordRepository
	notifier Notifier
	logger   *log.Logger

	defaultTarget TargetTime
	state         State
}

type Option func(*Engine)

func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithDefaultTarget(t TargetTime) Option {
	return func(e *Engine) {
		if t.Valid() {
			e.defaultTarget = t
		}
	}
}

func WithCelebration(d time.Duration) Option {
	return func(e *Engine) {
		e.state.CelebrationLength = d
	}
}

// New loads the target and record log and returns a ready engine. Storage
// problems are logged and the engine falls back to defaults.
func New(targets TargetRepository, records RecordRepository, opts ...Option) *Engine {
	e := &Engine{
		targets:       targets,
		records:       records,
		notifier:      nopNotifier{},
		logger:        log.New(io.Discard, "", 0),
		defaultTarget: DefaultTarget,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state.Target = e.loadTarget()
	e.state.Records = e.loadRecords()
	return e
}

func (e *Engine) loadTarget() TargetTime {
	raw, err := e.targets.LoadTarget()
	if err != nil {
		e.logger.Printf("load target: %v", err)
		return e.defaultTarget
	}
	if raw == "" {
		return e.defaultTarget
	}
	t, err := ParseTarget(raw)
	if err != nil {
		e.logger.Printf("stored target ignored: %v", err)
		return e.defaultTarget
	}
	return t
}

func (e *Engine) loadRecords() []Record {
	recs, err := e.records.LoadRecords()
	if err != nil {
		e.logger.Printf("load records: %v", err)
		return nil
	}
	return recs
}

// State returns a snapshot safe to hand to a renderer.
func (e *Engine) State() State {
	s := e.state
	s.Records = slices.Clone(s.Records)
	return s
}

// Target returns the current target time.
func (e *Engine) Target() TargetTime { return e.state.Target }

// Records returns a copy of the record log, oldest first.
func (e *Engine) Records() []Record { return slices.Clone(e.state.Records) }

// Tick advances the engine to now. On a zero-crossing it plays the sound and
// persists a new record. The returned error is the persistence failure, if
// any; in-memory state stays authoritative either way.
func (e *Engine) Tick(now time.Time) (Outcome, error) {
	var out Outcome
	e.state, out = e.state.Tick(now)

	if out.Crossed {
		if err := e.notifier.Notify(); err != nil {
			e.logger.Printf("notify: %v", err)
		}
	}
	if !out.Appended {
		return out, nil
	}
	e.logger.Printf("off work on %s at %s", out.Record.Date, out.Record.Time)
	if err := e.records.SaveRecords(slices.Clone(e.state.Records)); err != nil {
		e.logger.Printf("save records: %v", err)
		return out, fmt.Errorf("save records: %w", err)
	}
	return out, nil
}

// SetTarget parses raw, adopts it and persists the canonical form. Invalid
// input leaves both memory and storage untouched.
func (e *Engine) SetTarget(raw string, now time.Time) error {
	t, err := ParseTarget(raw)
	if err != nil {
		return err
	}
	e.state = e.state.WithTarget(t, now)
	if err := e.targets.SaveTarget(t.String()); err != nil {
		e.logger.Printf("save target: %v", err)
		return fmt.Errorf("save target: %w", err)
	}
	return nil
}

// EndCelebration ends the celebration identified by gen.
func (e *Engine) EndCelebration(gen int) {
	e.state.Celebration = e.state.Celebration.End(gen)
}

// IsStorageError reports whether err came from a repository rather than from
// validating user input.
func IsStorageError(err error) bool {
	return err != nil && !errors.Is(err, ErrInvalidTarget)
}
