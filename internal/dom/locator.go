// File: internal/dom/locator.go
package dom

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound reports that no element matched the target within the wait budget.
var ErrNotFound = errors.New("dom: element not found")

// handleAttr is the transient attribute stamped onto a located element so
// later evaluations can address it without repeating the search.
const handleAttr = "data-tour-id"

// Target describes how to find an element: either a CSS selector (Query) or a
// tag name plus visible text (Tag/Text, exact or substring match).
type Target struct {
	Query string
	Tag   string
	Text  string
	Exact bool
}

// Selector targets the first element matching a CSS selector.
func Selector(query string) Target {
	return Target{Query: query}
}

// ByText targets the first element of the given tag whose text content
// contains text.
func ByText(tag, text string) Target {
	return Target{Tag: tag, Text: text}
}

// ByExactText targets the first element of the given tag whose trimmed text
// content equals text.
func ByExactText(tag, text string) Target {
	return Target{Tag: tag, Text: text, Exact: true}
}

func (t Target) String() string {
	if t.Query != "" {
		return t.Query
	}
	if t.Exact {
		return fmt.Sprintf("<%s> =%q", t.Tag, t.Text)
	}
	return fmt.Sprintf("<%s> ~%q", t.Tag, t.Text)
}

// Handle is a transient reference to a located element. It is valid only for
// the duration of one action and is never cached across steps.
type Handle struct {
	id string
}

// Selector returns the attribute selector addressing the located element.
func (h *Handle) Selector() string {
	return fmt.Sprintf("[%s=%q]", handleAttr, h.id)
}

// locateJS finds the first element matching the descriptor, stamps it with the
// handle attribute, and reports whether anything matched. Text search scans
// elements of the tag in document order.
const locateJS = `(query, tag, text, exact, handleId, attr) => {
	const mark = (el) => {
		el.setAttribute(attr, handleId);
		return JSON.stringify({ found: true });
	};
	if (query) {
		const el = document.querySelector(query);
		return el ? mark(el) : JSON.stringify({ found: false });
	}
	const els = document.getElementsByTagName(tag);
	for (const el of els) {
		const content = (el.textContent || '').trim();
		if (exact ? content === text : content.includes(text)) {
			return mark(el);
		}
	}
	return JSON.stringify({ found: false });
}`

type locateResult struct {
	Found bool `json:"found"`
}

// Locator resolves Targets against the live page.
type Locator struct {
	js       Scripter
	logger   *zap.Logger
	interval time.Duration
}

// NewLocator creates a Locator polling at the given fixed interval.
func NewLocator(js Scripter, logger *zap.Logger, interval time.Duration) *Locator {
	return &Locator{
		js:       js,
		logger:   logger.Named("locator"),
		interval: interval,
	}
}

// Find performs a single lookup. It returns ErrNotFound when nothing matches;
// any other error means the page itself could not be queried.
func (l *Locator) Find(ctx context.Context, target Target) (*Handle, error) {
	id := uuid.NewString()

	var payload string
	err := l.js.Eval(ctx, locateJS, &payload,
		target.Query, target.Tag, target.Text, target.Exact, id, handleAttr)
	if err != nil {
		return nil, fmt.Errorf("dom: locate %s: %w", target, err)
	}

	var res locateResult
	if err := json.UnmarshalFromString(payload, &res); err != nil {
		return nil, fmt.Errorf("dom: decode locate result for %s: %w", target, err)
	}
	if !res.Found {
		return nil, ErrNotFound
	}
	return &Handle{id: id}, nil
}

// WaitFor polls for the target until it appears or maxWait elapses. The
// not-found outcome is non-fatal by contract; callers log and skip.
func (l *Locator) WaitFor(ctx context.Context, target Target, maxWait time.Duration) (*Handle, error) {
	var handle *Handle

	err := Poll(ctx, l.interval, maxWait, func(ctx context.Context) (bool, error) {
		h, err := l.Find(ctx, target)
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		handle = h
		return true, nil
	})
	if errors.Is(err, ErrTimeout) {
		l.logger.Warn("Element not found within wait budget",
			zap.Stringer("target", target),
			zap.Duration("max_wait", maxWait))
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return handle, nil
}
