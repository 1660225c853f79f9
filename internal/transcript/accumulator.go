package transcript

import (
	"errors"
	"strings"
)

// State is the accumulator lifecycle state.
type State int

const (
	StateEmpty State = iota
	StateAccumulating
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAccumulating:
		return "accumulating"
	case StateFinalized:
		return "finalized"
	}
	return "unknown"
}

var (
	// ErrFinalized is returned when a delta arrives after Finalize.
	ErrFinalized = errors.New("transcript already finalized")
	// ErrEmpty is returned when Finalize is called with no speech seen.
	ErrEmpty = errors.New("no speech detected")
)

// Accumulator assembles intermediate transcripts from a streaming speech
// recognizer. Recognizers can spuriously shrink their partial output when
// their internal buffer resets; instead of discarding history, the
// accumulator keeps the longest-seen text and appends the shrunken partial
// as a new delta. This is a best-effort heuristic, not a correctness
// guarantee.
//
// An Accumulator belongs to a single listening session and is not safe for
// concurrent use.
type Accumulator struct {
	state State
	text  string
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{state: StateEmpty}
}

// State returns the current lifecycle state.
func (a *Accumulator) State() State {
	return a.state
}

// Text returns the best transcript assembled so far.
func (a *Accumulator) Text() string {
	return a.text
}

// ApplyDelta folds one intermediate partial transcript into the session.
// A partial at least as long as the current text replaces it (the normal
// streaming growth case). A strictly shorter partial is treated as a
// recognizer buffer reset and appended to the kept history.
func (a *Accumulator) ApplyDelta(partial string) error {
	if a.state == StateFinalized {
		return ErrFinalized
	}

	partial = strings.TrimSpace(partial)
	if partial == "" {
		return nil
	}

	switch {
	case a.text == "":
		a.text = partial
	case len(partial) >= len(a.text):
		a.text = partial
	default:
		a.text = a.text + " " + partial
	}

	a.state = StateAccumulating
	return nil
}

// Finalize closes the session and returns the assembled transcript.
func (a *Accumulator) Finalize() (string, error) {
	if a.state == StateFinalized {
		return "", ErrFinalized
	}
	if a.text == "" {
		return "", ErrEmpty
	}

	a.state = StateFinalized
	return a.text, nil
}

// Abort drops the in-flight session. No partial transcript survives; the
// accumulator is reusable afterwards.
func (a *Accumulator) Abort() {
	a.state = StateEmpty
	a.text = ""
}
