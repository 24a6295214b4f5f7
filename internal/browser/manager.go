// File: internal/browser/manager.go
//
// Package browser owns the Chrome process lifecycle and exposes a Session
// that evaluates JavaScript in the target page. Everything above this
// package talks to the page through the dom.Scripter seam.
package browser

import (
	"context"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/config"
)

// Manager handles the browser allocator lifecycle and session creation.
type Manager struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	logger      *zap.Logger
	cfg         config.BrowserConfig
}

// NewManager creates the exec allocator for the configured browser. The
// browser process itself starts lazily with the first session.
func NewManager(ctx context.Context, cfg config.BrowserConfig, logger *zap.Logger) *Manager {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !cfg.Headless {
		opts = append(opts,
			chromedp.Flag("headless", false),
			chromedp.Flag("hide-scrollbars", false),
			chromedp.Flag("mute-audio", false),
		)
	}
	if cfg.IgnoreTLSErrors {
		opts = append(opts, chromedp.Flag("ignore-certificate-errors", true))
	}
	for _, arg := range cfg.Args {
		opts = append(opts, chromedp.Flag(arg, true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	return &Manager{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		logger:      logger.Named("browser"),
		cfg:         cfg,
	}
}

// NewSession opens a new tab context and starts the browser if it is not
// running yet.
func (m *Manager) NewSession(ctx context.Context) (*Session, error) {
	return newSession(m.allocCtx, m.cfg, m.logger)
}

// Shutdown tears down the allocator and every session derived from it.
func (m *Manager) Shutdown() {
	m.logger.Debug("Shutting down browser manager")
	m.allocCancel()
}
