// File: internal/interact/interact.go
//
// Package interact synthesizes user interactions (clicks, typed text,
// scrolling) against elements of the target page. All three capabilities
// share the locator's poll-with-timeout policy: a missing element is logged
// and skipped, never fatal.
package interact

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/dom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrWrongElementType reports that a type-text target is not an
// input-capable element.
var ErrWrongElementType = errors.New("interact: target is not a text input element")

// Timings groups the fixed delays of the synthesizers.
type Timings struct {
	// CharDelay is the pause between synthesized keystrokes.
	CharDelay time.Duration
	// DefaultMaxWait bounds element lookups when the caller does not say otherwise.
	DefaultMaxWait time.Duration
	// SmoothScrollSettle and InstantScrollSettle let scroll animation finish
	// before the next operation.
	SmoothScrollSettle  time.Duration
	InstantScrollSettle time.Duration
}

// DefaultTimings matches the cadence of the original walkthroughs.
func DefaultTimings() Timings {
	return Timings{
		CharDelay:           80 * time.Millisecond,
		DefaultMaxWait:      5 * time.Second,
		SmoothScrollSettle:  500 * time.Millisecond,
		InstantScrollSettle: 100 * time.Millisecond,
	}
}

// Synthesizer drives synthetic interactions through the page scripter.
type Synthesizer struct {
	js      dom.Scripter
	locator *dom.Locator
	logger  *zap.Logger
	timings Timings
}

// New creates a Synthesizer.
func New(js dom.Scripter, locator *dom.Locator, logger *zap.Logger, timings Timings) *Synthesizer {
	return &Synthesizer{
		js:      js,
		locator: locator,
		logger:  logger.Named("interact"),
		timings: timings,
	}
}

const clickJS = `(selector) => {
	const el = document.querySelector(selector);
	if (!el) {
		return JSON.stringify({ ok: false });
	}
	el.click();
	return JSON.stringify({ ok: true });
}`

type okResult struct {
	OK bool `json:"ok"`
}

// Click locates the target, polling up to maxWait (0 means the default), and
// invokes its native activation. A missing element logs a warning and returns
// ErrNotFound; the caller decides whether that ends anything.
func (s *Synthesizer) Click(ctx context.Context, target dom.Target, maxWait time.Duration) error {
	handle, err := s.waitFor(ctx, target, maxWait)
	if err != nil {
		return err
	}

	var payload string
	if err := s.js.Eval(ctx, clickJS, &payload, handle.Selector()); err != nil {
		return fmt.Errorf("interact: click %s: %w", target, err)
	}
	var res okResult
	if err := json.UnmarshalFromString(payload, &res); err != nil {
		return fmt.Errorf("interact: decode click result: %w", err)
	}
	if !res.OK {
		// The element vanished between location and activation.
		s.logger.Warn("Click target disappeared before activation", zap.Stringer("target", target))
		return dom.ErrNotFound
	}
	s.logger.Debug("Clicked element", zap.Stringer("target", target))
	return nil
}

func (s *Synthesizer) waitFor(ctx context.Context, target dom.Target, maxWait time.Duration) (*dom.Handle, error) {
	if maxWait <= 0 {
		maxWait = s.timings.DefaultMaxWait
	}
	return s.locator.WaitFor(ctx, target, maxWait)
}
