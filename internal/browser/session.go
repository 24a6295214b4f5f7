// File: internal/browser/session.go
package browser

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/config"
	"github.com/smartlink-labs/tourguide/internal/dom"
)

// Session represents one browser tab. It implements dom.Scripter, which is
// how the locator, presenter, and synthesizers reach the page.
type Session struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger
	cfg    config.BrowserConfig

	mu       sync.Mutex
	isClosed bool
}

var _ dom.Scripter = (*Session)(nil)

func newSession(allocCtx context.Context, cfg config.BrowserConfig, logger *zap.Logger) (*Session, error) {
	sessionID := uuid.New().String()

	var opts []chromedp.ContextOption
	if cfg.Debug {
		log := logger.Sugar()
		opts = append(opts, chromedp.WithDebugf(log.Debugf), chromedp.WithErrorf(log.Errorf))
	}

	tabCtx, cancel := chromedp.NewContext(allocCtx, opts...)

	// An empty Run launches the browser process and attaches the tab.
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("browser: failed to start session: %w", err)
	}

	s := &Session{
		id:     sessionID,
		ctx:    tabCtx,
		cancel: cancel,
		logger: logger.With(zap.String("session_id", sessionID)),
		cfg:    cfg,
	}
	s.logger.Info("Browser session started")
	return s, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Navigate loads the given URL and waits for the load event, bounded by the
// configured navigation timeout.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	navCtx, cancel := context.WithTimeout(s.ctx, s.cfg.NavigationTimeout)
	defer cancel()

	s.logger.Info("Navigating", zap.String("url", url))
	if err := chromedp.Run(navCtx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("browser: navigate to %s: %w", url, err)
	}
	return nil
}

// Eval evaluates a JavaScript function expression in the page, awaiting any
// returned promise, and decodes the result into out.
func (s *Session) Eval(ctx context.Context, fn string, out any, args ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	closed := s.isClosed
	s.mu.Unlock()
	if closed {
		return fmt.Errorf("browser: session %s is closed", s.id)
	}

	action := chromedp.CallFunctionOn(fn, out,
		func(p *runtime.CallFunctionOnParams) *runtime.CallFunctionOnParams {
			return p.WithAwaitPromise(true)
		},
		args...,
	)
	if err := chromedp.Run(s.ctx, action); err != nil {
		return fmt.Errorf("browser: script evaluation failed: %w", err)
	}
	return nil
}

// Close tears down the tab. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isClosed {
		return
	}
	s.isClosed = true
	s.cancel()
	s.logger.Info("Browser session closed")
}
