// File: internal/interact/typetext.go
package interact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/dom"
)

// inspectInputJS reports whether the element exists and can receive typed text.
const inspectInputJS = `(selector) => {
	const el = document.querySelector(selector);
	if (!el) {
		return JSON.stringify({ exists: false, editable: false, tag: '' });
	}
	const tag = el.tagName;
	const editable = tag === 'TEXTAREA' ||
		(tag === 'INPUT' && !['checkbox', 'radio', 'button', 'submit', 'file'].includes(el.type));
	return JSON.stringify({ exists: true, editable: editable, tag: tag });
}`

// clearValueJS empties the field without dispatching events; the subsequent
// keystrokes produce the input notifications.
const clearValueJS = `(selector) => {
	const el = document.querySelector(selector);
	if (!el) {
		return JSON.stringify({ ok: false });
	}
	el.value = '';
	return JSON.stringify({ ok: true });
}`

// typeCharJS appends one character to the field value and dispatches a
// bubbling input event, the way frameworks observe real typing.
const typeCharJS = `(selector, ch) => {
	const el = document.querySelector(selector);
	if (!el) {
		return JSON.stringify({ ok: false });
	}
	el.value += ch;
	el.dispatchEvent(new Event('input', { bubbles: true }));
	return JSON.stringify({ ok: true });
}`

// commitTypingJS dispatches the single trailing change event.
const commitTypingJS = `(selector) => {
	const el = document.querySelector(selector);
	if (!el) {
		return JSON.stringify({ ok: false });
	}
	el.dispatchEvent(new Event('change', { bubbles: true }));
	return JSON.stringify({ ok: true });
}`

type inspectResult struct {
	Exists   bool   `json:"exists"`
	Editable bool   `json:"editable"`
	Tag      string `json:"tag"`
}

// TypeText locates the target and enters text character by character,
// dispatching one input event per character and a single change event after
// the loop, with a fixed per-character delay simulating human cadence.
// clearExisting empties the field first. A non-input target yields
// ErrWrongElementType; a missing one yields ErrNotFound.
func (s *Synthesizer) TypeText(ctx context.Context, target dom.Target, text string, clearExisting bool, maxWait time.Duration) error {
	handle, err := s.waitFor(ctx, target, maxWait)
	if err != nil {
		return err
	}
	selector := handle.Selector()

	var payload string
	if err := s.js.Eval(ctx, inspectInputJS, &payload, selector); err != nil {
		return fmt.Errorf("interact: inspect %s: %w", target, err)
	}
	var info inspectResult
	if err := json.UnmarshalFromString(payload, &info); err != nil {
		return fmt.Errorf("interact: decode inspect result: %w", err)
	}
	if !info.Exists {
		s.logger.Warn("Typing target disappeared before input", zap.Stringer("target", target))
		return dom.ErrNotFound
	}
	if !info.Editable {
		s.logger.Warn("Typing target cannot receive text",
			zap.Stringer("target", target),
			zap.String("tag", strings.ToLower(info.Tag)))
		return ErrWrongElementType
	}

	if clearExisting {
		if err := s.evalOK(ctx, clearValueJS, selector); err != nil {
			return fmt.Errorf("interact: clear %s: %w", target, err)
		}
	}

	runes := []rune(text)
	for i, r := range runes {
		if err := s.evalOK(ctx, typeCharJS, selector, string(r)); err != nil {
			return fmt.Errorf("interact: type char %d/%d into %s: %w", i+1, len(runes), target, err)
		}
		if i < len(runes)-1 {
			if err := dom.Sleep(ctx, s.timings.CharDelay); err != nil {
				return err
			}
		}
	}

	if err := s.evalOK(ctx, commitTypingJS, selector); err != nil {
		return fmt.Errorf("interact: commit typing into %s: %w", target, err)
	}

	s.logger.Debug("Typed text into element",
		zap.Stringer("target", target),
		zap.Int("chars", len(runes)))
	return nil
}

// evalOK runs a script returning {ok} and converts ok=false into ErrNotFound.
func (s *Synthesizer) evalOK(ctx context.Context, script string, args ...any) error {
	var payload string
	if err := s.js.Eval(ctx, script, &payload, args...); err != nil {
		return err
	}
	var res okResult
	if err := json.UnmarshalFromString(payload, &res); err != nil {
		return err
	}
	if !res.OK {
		return dom.ErrNotFound
	}
	return nil
}
