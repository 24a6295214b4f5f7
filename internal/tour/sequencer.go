// File: internal/tour/sequencer.go
package tour

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/dom"
)

// Sequencer executes a walkthrough's steps strictly in order, one at a time.
// Individual step failures are absorbed: the sequence always proceeds to the
// next step, and only context cancellation ends a run early.
type Sequencer struct {
	locator   *dom.Locator
	presenter *Presenter
	logger    *zap.Logger

	// defaultDelay is the inter-step pause when a step carries no override.
	defaultDelay time.Duration
	// maxWait bounds the element lookup of each highlight step.
	maxWait time.Duration
}

// NewSequencer creates a Sequencer.
func NewSequencer(locator *dom.Locator, presenter *Presenter, logger *zap.Logger, defaultDelay, maxWait time.Duration) *Sequencer {
	return &Sequencer{
		locator:      locator,
		presenter:    presenter,
		logger:       logger.Named("sequencer"),
		defaultDelay: defaultDelay,
		maxWait:      maxWait,
	}
}

// Run executes the walkthrough end to end. There is no retry of failed steps
// and no rollback; the terminal condition is simply an exhausted sequence.
func (s *Sequencer) Run(ctx context.Context, w Walkthrough) error {
	log := s.logger.With(zap.String("walkthrough", w.Name))
	log.Info("Starting walkthrough", zap.Int("steps", len(w.Steps)))

	for i, step := range w.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		log.Info("Executing step",
			zap.Int("step", i+1),
			zap.Int("of", len(w.Steps)),
			zap.String("name", step.Name()))

		if err := s.runStep(ctx, step); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Failures are local: the user-visible outcome is that this
			// step silently did nothing.
			log.Warn("Step failed, continuing",
				zap.Int("step", i+1),
				zap.String("name", step.Name()),
				zap.Error(err))
		}

		if i < len(w.Steps)-1 {
			if err := dom.Sleep(ctx, step.DelayOr(s.defaultDelay)); err != nil {
				return err
			}
		}
	}

	log.Info("Walkthrough complete")
	return nil
}

func (s *Sequencer) runStep(ctx context.Context, step Step) error {
	switch step.Kind() {
	case StepHighlight:
		handle, err := s.locator.WaitFor(ctx, step.Target(), s.maxWait)
		if err != nil {
			return err
		}
		return s.presenter.ShowAndWait(ctx, handle, step.Text(), step.Duration())
	case StepAction:
		return step.Invoke(ctx)
	default:
		return nil
	}
}
