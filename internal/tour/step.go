// File: internal/tour/step.go
//
// Package tour implements the guided-tour engine: highlight decorations,
// walkthrough scripts as ordered step sequences, and the sequencer that
// executes them strictly in order.
package tour

import (
	"context"
	"time"

	"github.com/smartlink-labs/tourguide/internal/dom"
)

// StepKind discriminates the two step variants.
type StepKind int

const (
	// StepHighlight decorates a located element with a popup and waits out
	// its display duration.
	StepHighlight StepKind = iota
	// StepAction runs an arbitrary asynchronous action.
	StepAction
)

// ActionFunc is the body of an action step. Errors are absorbed by the
// sequencer: a failed action is logged and the sequence proceeds.
type ActionFunc func(ctx context.Context) error

// Step is one unit of a walkthrough. A step is exactly one kind; the
// constructors enforce the mutual exclusivity, so a step can never carry both
// a highlight target and an action.
type Step struct {
	kind     StepKind
	name     string
	target   dom.Target
	text     string
	duration time.Duration
	action   ActionFunc
	delay    time.Duration
	hasDelay bool
}

// StepOption customizes a step at construction time.
type StepOption func(*Step)

// WithDelay overrides the sequencer's default inter-step delay after this step.
func WithDelay(d time.Duration) StepOption {
	return func(s *Step) {
		s.delay = d
		s.hasDelay = true
	}
}

// Highlight creates a highlight step: locate target, show the popup with the
// given text, and hold the sequencer for duration (plus the completion
// buffer). A duration of 0 leaves the decoration up until the user clicks it
// away.
func Highlight(target dom.Target, text string, duration time.Duration, opts ...StepOption) Step {
	s := Step{
		kind:     StepHighlight,
		name:     target.String(),
		target:   target,
		text:     text,
		duration: duration,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Action creates an action step with a name for the logs.
func Action(name string, fn ActionFunc, opts ...StepOption) Step {
	s := Step{
		kind:   StepAction,
		name:   name,
		action: fn,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Kind returns the step variant.
func (s Step) Kind() StepKind { return s.kind }

// Name identifies the step in logs.
func (s Step) Name() string { return s.name }

// Target returns the highlight target; meaningful only for highlight steps.
func (s Step) Target() dom.Target { return s.target }

// Text returns the popup message; meaningful only for highlight steps.
func (s Step) Text() string { return s.text }

// Duration returns the popup display duration.
func (s Step) Duration() time.Duration { return s.duration }

// Invoke runs the step's action. It is a no-op for highlight steps.
func (s Step) Invoke(ctx context.Context) error {
	if s.kind != StepAction || s.action == nil {
		return nil
	}
	return s.action(ctx)
}

// DelayOr returns the step's explicit trailing delay, or fallback when none
// was set.
func (s Step) DelayOr(fallback time.Duration) time.Duration {
	if s.hasDelay {
		return s.delay
	}
	return fallback
}

// Walkthrough is a fixed, ordered sequence of steps guiding a user through a
// product feature. Key is the opaque trigger value that selects it.
type Walkthrough struct {
	Key   string
	Name  string
	Steps []Step
}
