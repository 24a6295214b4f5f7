// File: internal/interact/scroll.go
package interact

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/dom"
)

// ScrollBehavior selects the scroll animation mode.
type ScrollBehavior string

const (
	ScrollSmooth  ScrollBehavior = "smooth"
	ScrollInstant ScrollBehavior = "auto"
)

// ScrollAlignment selects the vertical alignment of the scrolled element.
type ScrollAlignment string

const (
	AlignStart  ScrollAlignment = "start"
	AlignCenter ScrollAlignment = "center"
	AlignEnd    ScrollAlignment = "end"
)

const scrollIntoViewJS = `(selector, behavior, block) => {
	const el = document.querySelector(selector);
	if (!el) {
		return JSON.stringify({ ok: false });
	}
	el.scrollIntoView({ behavior: behavior, block: block });
	return JSON.stringify({ ok: true });
}`

// ScrollIntoView locates the target and scrolls it into the viewport, then
// waits a fixed settle delay (longer for smooth scrolling) so the animation
// finishes before the caller proceeds.
func (s *Synthesizer) ScrollIntoView(ctx context.Context, target dom.Target, behavior ScrollBehavior, block ScrollAlignment, maxWait time.Duration) error {
	handle, err := s.waitFor(ctx, target, maxWait)
	if err != nil {
		return err
	}

	if behavior == "" {
		behavior = ScrollSmooth
	}
	if block == "" {
		block = AlignCenter
	}

	if err := s.evalOK(ctx, scrollIntoViewJS, handle.Selector(), string(behavior), string(block)); err != nil {
		return fmt.Errorf("interact: scroll to %s: %w", target, err)
	}

	settle := s.timings.InstantScrollSettle
	if behavior == ScrollSmooth {
		settle = s.timings.SmoothScrollSettle
	}
	s.logger.Debug("Scrolled element into view",
		zap.Stringer("target", target),
		zap.String("behavior", string(behavior)))
	return dom.Sleep(ctx, settle)
}
