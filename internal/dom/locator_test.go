// File: internal/dom/locator_test.go
package dom

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeScripter answers Eval calls from a handler function and records them.
type fakeScripter struct {
	mu      sync.Mutex
	calls   int
	handler func(call int, fn string, args []any) (string, error)
}

func (f *fakeScripter) Eval(ctx context.Context, fn string, out any, args ...any) error {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()

	payload, err := f.handler(call, fn, args)
	if err != nil {
		return err
	}
	if sp, ok := out.(*string); ok {
		*sp = payload
	}
	return nil
}

func (f *fakeScripter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestLocator(js Scripter) *Locator {
	return NewLocator(js, zap.NewNop(), 10*time.Millisecond)
}

func TestLocatorFind(t *testing.T) {
	t.Run("selector lookup returns a handle addressing the marked element", func(t *testing.T) {
		var gotArgs []any
		js := &fakeScripter{handler: func(_ int, fn string, args []any) (string, error) {
			gotArgs = args
			return `{"found":true}`, nil
		}}

		handle, err := newTestLocator(js).Find(context.Background(), Selector("#signup"))
		require.NoError(t, err)
		require.Len(t, gotArgs, 6)
		assert.Equal(t, "#signup", gotArgs[0])

		// The handle selector addresses the stamped attribute with the id
		// that was passed to the page.
		id, ok := gotArgs[4].(string)
		require.True(t, ok)
		assert.Equal(t, `[data-tour-id="`+id+`"]`, handle.Selector())
	})

	t.Run("text lookup passes tag, text and exactness", func(t *testing.T) {
		var gotArgs []any
		js := &fakeScripter{handler: func(_ int, fn string, args []any) (string, error) {
			gotArgs = args
			return `{"found":true}`, nil
		}}

		_, err := newTestLocator(js).Find(context.Background(), ByExactText("button", "Run"))
		require.NoError(t, err)
		assert.Equal(t, "", gotArgs[0])
		assert.Equal(t, "button", gotArgs[1])
		assert.Equal(t, "Run", gotArgs[2])
		assert.Equal(t, true, gotArgs[3])
	})

	t.Run("no match yields ErrNotFound", func(t *testing.T) {
		js := &fakeScripter{handler: func(_ int, fn string, args []any) (string, error) {
			return `{"found":false}`, nil
		}}
		_, err := newTestLocator(js).Find(context.Background(), Selector(".missing"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("evaluation failures are wrapped, not swallowed", func(t *testing.T) {
		boom := errors.New("page went away")
		js := &fakeScripter{handler: func(_ int, fn string, args []any) (string, error) {
			return "", boom
		}}
		_, err := newTestLocator(js).Find(context.Background(), Selector("#x"))
		require.ErrorIs(t, err, boom)
	})
}

func TestLocatorWaitFor(t *testing.T) {
	t.Run("resolves once the element appears", func(t *testing.T) {
		js := &fakeScripter{handler: func(call int, fn string, args []any) (string, error) {
			if call < 3 {
				return `{"found":false}`, nil
			}
			return `{"found":true}`, nil
		}}

		handle, err := newTestLocator(js).WaitFor(context.Background(), Selector(".late"), time.Second)
		require.NoError(t, err)
		assert.NotNil(t, handle)
		assert.Equal(t, 3, js.callCount())
	})

	t.Run("exhausted budget yields ErrNotFound after at least the budget", func(t *testing.T) {
		js := &fakeScripter{handler: func(_ int, fn string, args []any) (string, error) {
			return `{"found":false}`, nil
		}}

		start := time.Now()
		_, err := newTestLocator(js).WaitFor(context.Background(), Selector(".never"), 80*time.Millisecond)
		require.ErrorIs(t, err, ErrNotFound)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
		assert.Greater(t, js.callCount(), 1, "lookup should have been retried")
	})
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, ".plan-card", Selector(".plan-card").String())
	assert.True(t, strings.Contains(ByText("a", "Billing").String(), "Billing"))
	assert.True(t, strings.Contains(ByExactText("button", "Run").String(), "="))
}
