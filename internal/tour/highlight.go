// File: internal/tour/highlight.go
package tour

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/dom"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Class names of the injected decoration; styled by the overlay stylesheet.
const (
	markerClass = "smartlink-highlight"
	popupClass  = "smartlink-popup"
)

// dismissTimeout bounds the cleanup evaluation when the auto-removal timer
// fires outside any step context.
const dismissTimeout = 5 * time.Second

// showPopupJS decorates the element and creates the adjacent popup in page
// coordinates. The one-shot click listener is the user's early-dismissal
// path; removal is written to be safe no matter how many times it runs.
const showPopupJS = `(selector, popupId, message, offsetPx, marker, popupCls) => {
	const el = document.querySelector(selector);
	if (!el) {
		return JSON.stringify({ ok: false });
	}
	el.classList.add(marker);
	const rect = el.getBoundingClientRect();
	const popup = document.createElement('div');
	popup.id = popupId;
	popup.className = popupCls;
	popup.textContent = message;
	popup.style.position = 'absolute';
	popup.style.top = (rect.top + window.scrollY) + 'px';
	popup.style.left = (rect.right + window.scrollX + offsetPx) + 'px';
	document.body.appendChild(popup);
	el.addEventListener('click', () => {
		el.classList.remove(marker);
		const p = document.getElementById(popupId);
		if (p && p.parentNode) {
			p.parentNode.removeChild(p);
		}
	}, { once: true });
	return JSON.stringify({ ok: true });
}`

// dismissPopupJS removes the marker class and the popup node. Removing an
// already-removed class or node is a no-op, which keeps the click/timer race
// harmless.
const dismissPopupJS = `(selector, popupId, marker) => {
	const el = document.querySelector(selector);
	if (el) {
		el.classList.remove(marker);
	}
	const p = document.getElementById(popupId);
	if (p && p.parentNode) {
		p.parentNode.removeChild(p);
	}
	return JSON.stringify({ ok: true });
}`

type okResult struct {
	OK bool `json:"ok"`
}

// Presenter applies highlight decorations to located elements.
type Presenter struct {
	js       dom.Scripter
	logger   *zap.Logger
	offsetPx int
	buffer   time.Duration
}

// NewPresenter creates a Presenter. offsetPx is the horizontal popup gap;
// buffer is added to a highlight's duration before ShowAndWait returns.
func NewPresenter(js dom.Scripter, logger *zap.Logger, offsetPx int, buffer time.Duration) *Presenter {
	return &Presenter{
		js:       js,
		logger:   logger.Named("presenter"),
		offsetPx: offsetPx,
		buffer:   buffer,
	}
}

// Decoration is the ephemeral visual state attached to a highlighted element.
// Its lifetime ends with the auto-removal timer, a user click, or an explicit
// Dismiss, whichever fires first; the losers become no-ops.
type Decoration struct {
	presenter *Presenter
	selector  string
	popupID   string

	once  sync.Once
	timer *time.Timer
}

// Show decorates the element and schedules auto-removal when duration is
// positive. With duration 0 the decoration persists until a click or page
// unload.
func (p *Presenter) Show(ctx context.Context, handle *dom.Handle, text string, duration time.Duration) (*Decoration, error) {
	popupID := "smartlink-popup-" + uuid.NewString()
	selector := handle.Selector()

	var payload string
	err := p.js.Eval(ctx, showPopupJS, &payload,
		selector, popupID, text, p.offsetPx, markerClass, popupClass)
	if err != nil {
		return nil, fmt.Errorf("tour: show popup: %w", err)
	}
	var res okResult
	if err := json.UnmarshalFromString(payload, &res); err != nil {
		return nil, fmt.Errorf("tour: decode show result: %w", err)
	}
	if !res.OK {
		return nil, dom.ErrNotFound
	}

	d := &Decoration{
		presenter: p,
		selector:  selector,
		popupID:   popupID,
	}
	if duration > 0 {
		d.timer = time.AfterFunc(duration, func() {
			cleanupCtx, cancel := context.WithTimeout(context.Background(), dismissTimeout)
			defer cancel()
			d.Dismiss(cleanupCtx)
		})
	}
	p.logger.Debug("Decoration shown",
		zap.String("selector", selector),
		zap.Duration("duration", duration))
	return d, nil
}

// Dismiss removes the decoration. It is idempotent: the timer, a user click
// in the page, and explicit calls all funnel into one cleanup that runs at
// most once from the Go side, over a removal script that is itself a no-op
// when nothing is left to remove.
func (d *Decoration) Dismiss(ctx context.Context) {
	d.once.Do(func() {
		if d.timer != nil {
			d.timer.Stop()
		}
		var payload string
		err := d.presenter.js.Eval(ctx, dismissPopupJS, &payload,
			d.selector, d.popupID, markerClass)
		if err != nil {
			d.presenter.logger.Warn("Decoration cleanup failed",
				zap.String("selector", d.selector), zap.Error(err))
		}
	})
}

// ShowAndWait shows the decoration and blocks for duration plus the
// completion buffer, giving the sequencer a pacing signal independent of the
// click-dismissal path. Positive durations are cleaned up before returning;
// duration 0 leaves the decoration for the user to click away.
func (p *Presenter) ShowAndWait(ctx context.Context, handle *dom.Handle, text string, duration time.Duration) error {
	d, err := p.Show(ctx, handle, text, duration)
	if err != nil {
		return err
	}
	if err := dom.Sleep(ctx, duration+p.buffer); err != nil {
		d.Dismiss(context.WithoutCancel(ctx))
		return err
	}
	if duration > 0 {
		d.Dismiss(ctx)
	}
	return nil
}
