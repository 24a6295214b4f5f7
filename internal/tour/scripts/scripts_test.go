// File: internal/tour/scripts/scripts_test.go
package scripts

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/dom"
	"github.com/smartlink-labs/tourguide/internal/interact"
	"github.com/smartlink-labs/tourguide/internal/tour"
)

// appPage simulates the target application: every element the walkthroughs
// reference exists, and the playground textarea accepts text.
type appPage struct {
	mu sync.Mutex

	clicks       int
	scrolls      int
	value        string
	inputEvents  int
	changeEvents int
}

func (p *appPage) Eval(ctx context.Context, fn string, out any, args ...any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	payload := `{"ok":true}`
	switch {
	case strings.Contains(fn, "setAttribute"): // element search
		payload = `{"found":true}`
	case strings.Contains(fn, "TEXTAREA"): // input inspection
		payload = `{"exists":true,"editable":true,"tag":"TEXTAREA"}`
	case strings.Contains(fn, "el.value +="):
		p.value += args[1].(string)
		p.inputEvents++
	case strings.Contains(fn, "el.value = ''"):
		p.value = ""
	case strings.Contains(fn, "new Event('change'"):
		p.changeEvents++
	case strings.Contains(fn, "el.click()"):
		p.clicks++
	case strings.Contains(fn, "scrollIntoView"):
		p.scrolls++
	}

	if sp, ok := out.(*string); ok {
		*sp = payload
	}
	return nil
}

func newAppSynthesizer(page *appPage) *interact.Synthesizer {
	logger := zap.NewNop()
	locator := dom.NewLocator(page, logger, 5*time.Millisecond)
	timings := interact.DefaultTimings()
	timings.CharDelay = 0
	timings.SmoothScrollSettle = 0
	timings.InstantScrollSettle = 0
	return interact.New(page, locator, logger, timings)
}

func kinds(w tour.Walkthrough) []tour.StepKind {
	out := make([]tour.StepKind, len(w.Steps))
	for i, s := range w.Steps {
		out[i] = s.Kind()
	}
	return out
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry(nil)

	upgrade, ok := r.Lookup(KeyUpgradeAndProductionKey)
	require.True(t, ok)
	assert.Equal(t, "upgrade-and-production-key", upgrade.Name)

	playground, ok := r.Lookup(KeyAPIPlayground)
	require.True(t, ok)
	assert.Equal(t, "api-playground", playground.Name)

	_, ok = r.Lookup("0000")
	assert.False(t, ok, "unknown trigger values select nothing")
}

func TestUpgradeAndProductionKeyShape(t *testing.T) {
	w := UpgradeAndProductionKey(newAppSynthesizer(&appPage{}))

	assert.Equal(t, KeyUpgradeAndProductionKey, w.Key)
	require.Len(t, w.Steps, 10)
	assert.Equal(t, []tour.StepKind{
		tour.StepHighlight, tour.StepAction,
		tour.StepHighlight, tour.StepAction,
		tour.StepHighlight, tour.StepAction,
		tour.StepHighlight, tour.StepAction,
		tour.StepHighlight, tour.StepHighlight,
	}, kinds(w))
}

func TestUpgradeAndProductionKeyActions(t *testing.T) {
	page := &appPage{}
	w := UpgradeAndProductionKey(newAppSynthesizer(page))

	for _, step := range w.Steps {
		require.NoError(t, step.Invoke(context.Background()), "step %q", step.Name())
	}
	assert.Equal(t, 3, page.clicks)
	assert.Equal(t, 1, page.scrolls)
}

func TestAPIPlaygroundShape(t *testing.T) {
	w := APIPlayground(newAppSynthesizer(&appPage{}))

	assert.Equal(t, KeyAPIPlayground, w.Key)
	require.Len(t, w.Steps, 8)
	assert.Equal(t, []tour.StepKind{
		tour.StepHighlight, tour.StepAction, tour.StepAction,
		tour.StepHighlight, tour.StepAction,
		tour.StepHighlight, tour.StepAction,
		tour.StepHighlight,
	}, kinds(w))
}

func TestAPIPlaygroundTypesThePrompt(t *testing.T) {
	page := &appPage{value: "leftover draft"}
	w := APIPlayground(newAppSynthesizer(page))

	for _, step := range w.Steps {
		require.NoError(t, step.Invoke(context.Background()), "step %q", step.Name())
	}

	assert.Equal(t, PlaygroundPrompt, page.value, "the field must end up with exactly the demo prompt")
	assert.Equal(t, len([]rune(PlaygroundPrompt)), page.inputEvents, "one input event per typed character")
	assert.Equal(t, 1, page.changeEvents, "a single change event after the loop")
	assert.Equal(t, 2, page.clicks)
	assert.Equal(t, 1, page.scrolls)
}
