// File: internal/tour/scripts/scripts.go
//
// Package scripts holds the authored walkthroughs. Selectors and visible
// text strings belong to the target application's UI and are brittle by
// construction: when its markup drifts, the affected step no-ops with a
// logged warning and the tour moves on.
package scripts

import (
	"context"
	"time"

	"github.com/smartlink-labs/tourguide/internal/dom"
	"github.com/smartlink-labs/tourguide/internal/interact"
	"github.com/smartlink-labs/tourguide/internal/tour"
)

// Trigger values carried in the smartlink query parameter.
const (
	KeyUpgradeAndProductionKey = "4276"
	KeyAPIPlayground           = "2743"
)

// PlaygroundPrompt is the demo question typed into the playground textarea.
const PlaygroundPrompt = "What is the capital of France?"

// DefaultRegistry returns the registry of shipped walkthroughs wired to the
// given synthesizer.
func DefaultRegistry(ix *interact.Synthesizer) *tour.Registry {
	r := tour.NewRegistry()
	r.Register(UpgradeAndProductionKey(ix))
	r.Register(APIPlayground(ix))
	return r
}

// UpgradeAndProductionKey walks the visitor from the billing page through the
// plan upgrade to revealing their production API key.
func UpgradeAndProductionKey(ix *interact.Synthesizer) tour.Walkthrough {
	return tour.Walkthrough{
		Key:  KeyUpgradeAndProductionKey,
		Name: "upgrade-and-production-key",
		Steps: []tour.Step{
			tour.Highlight(dom.ByText("a", "Billing"),
				"Everything about your plan lives under Billing. Let's head there.",
				4*time.Second),
			tour.Action("open billing page", func(ctx context.Context) error {
				return ix.Click(ctx, dom.ByText("a", "Billing"), 0)
			}, tour.WithDelay(time.Second)),
			tour.Highlight(dom.Selector(".plan-card.plan-card--pro"),
				"The Pro plan unlocks production traffic and higher rate limits.",
				4*time.Second),
			tour.Action("scroll to upgrade button", func(ctx context.Context) error {
				return ix.ScrollIntoView(ctx, dom.Selector(".plan-card.plan-card--pro .upgrade-btn"),
					interact.ScrollSmooth, interact.AlignCenter, 0)
			}),
			tour.Highlight(dom.Selector(".plan-card.plan-card--pro .upgrade-btn"),
				"One click to upgrade. Billing starts on your next cycle.",
				4*time.Second),
			tour.Action("click upgrade", func(ctx context.Context) error {
				return ix.Click(ctx, dom.Selector(".plan-card.plan-card--pro .upgrade-btn"), 0)
			}, tour.WithDelay(time.Second)),
			tour.Highlight(dom.Selector(".modal-dialog .confirm-upgrade"),
				"Confirm here and you're on Pro.",
				3*time.Second),
			tour.Action("open api keys page", func(ctx context.Context) error {
				return ix.Click(ctx, dom.ByText("a", "API Keys"), 0)
			}, tour.WithDelay(time.Second)),
			tour.Highlight(dom.Selector(".api-key-row--production"),
				"Your production key. Keep it server-side; it carries live quota.",
				5*time.Second),
			tour.Highlight(dom.Selector(".api-key-row--production .copy-key-btn"),
				"Copy it from here whenever you rotate credentials.",
				3*time.Second),
		},
	}
}

// APIPlayground walks the visitor through firing their first request from the
// playground, typing a demo question into the prompt box.
func APIPlayground(ix *interact.Synthesizer) tour.Walkthrough {
	return tour.Walkthrough{
		Key:  KeyAPIPlayground,
		Name: "api-playground",
		Steps: []tour.Step{
			tour.Highlight(dom.ByText("a", "Playground"),
				"Try the API without writing any code - open the Playground.",
				3*time.Second),
			tour.Action("open playground", func(ctx context.Context) error {
				return ix.Click(ctx, dom.ByText("a", "Playground"), 0)
			}, tour.WithDelay(time.Second)),
			tour.Action("scroll to prompt", func(ctx context.Context) error {
				return ix.ScrollIntoView(ctx, dom.Selector(".playground-prompt textarea"),
					interact.ScrollSmooth, interact.AlignCenter, 0)
			}),
			tour.Highlight(dom.Selector(".playground-prompt textarea"),
				"Type any prompt here. We'll enter one for you.",
				3*time.Second),
			tour.Action("type demo prompt", func(ctx context.Context) error {
				return ix.TypeText(ctx, dom.Selector(".playground-prompt textarea"),
					PlaygroundPrompt, true, 0)
			}),
			tour.Highlight(dom.ByExactText("button", "Run"),
				"Hit Run to send the request with your sandbox key.",
				3*time.Second),
			tour.Action("run request", func(ctx context.Context) error {
				return ix.Click(ctx, dom.ByExactText("button", "Run"), 0)
			}, tour.WithDelay(time.Second)),
			tour.Highlight(dom.Selector(".playground-response"),
				"The full response, with token usage and latency, lands here.",
				6*time.Second),
		},
	}
}
