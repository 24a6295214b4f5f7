// File: internal/tour/overlay.go
package tour

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/dom"
)

// ensureOverlayJS appends the tour stylesheet and the "Smart Link Active"
// banner to the host page exactly once. The page owns document.body; we only
// append id-guarded nodes and never touch anything else.
const ensureOverlayJS = `(styleId, bannerId, css, bannerText) => {
	let injected = false;
	if (!document.getElementById(styleId)) {
		const style = document.createElement('style');
		style.id = styleId;
		style.textContent = css;
		document.head.appendChild(style);
		injected = true;
	}
	if (!document.getElementById(bannerId)) {
		const banner = document.createElement('div');
		banner.id = bannerId;
		banner.className = 'smartlink-banner';
		banner.textContent = bannerText;
		document.body.appendChild(banner);
		injected = true;
	}
	return JSON.stringify({ ok: true, injected: injected });
}`

const (
	overlayStyleID = "smartlink-tour-style"
	bannerID       = "smartlink-tour-banner"
	bannerText     = "Smart Link Active"
)

// overlayCSS styles the decoration classes and the banner. Kept deliberately
// high-contrast so the highlight reads over arbitrary host styling.
const overlayCSS = `
.smartlink-highlight {
	outline: 3px solid #7c3aed !important;
	outline-offset: 2px;
	border-radius: 4px;
	transition: outline-color 0.2s ease;
}
.smartlink-popup {
	z-index: 2147483647;
	max-width: 280px;
	padding: 10px 14px;
	background: #1f2937;
	color: #f9fafb;
	font: 14px/1.4 -apple-system, 'Segoe UI', sans-serif;
	border-radius: 8px;
	box-shadow: 0 4px 16px rgba(0, 0, 0, 0.35);
	pointer-events: none;
}
.smartlink-banner {
	position: fixed;
	top: 12px;
	right: 12px;
	z-index: 2147483647;
	padding: 6px 12px;
	background: #7c3aed;
	color: #ffffff;
	font: 12px/1.2 -apple-system, 'Segoe UI', sans-serif;
	border-radius: 9999px;
	box-shadow: 0 2px 8px rgba(0, 0, 0, 0.25);
}
`

type overlayResult struct {
	OK       bool `json:"ok"`
	Injected bool `json:"injected"`
}

// EnsureOverlay injects the stylesheet and banner into the page. Safe to call
// more than once per page load.
func EnsureOverlay(ctx context.Context, js dom.Scripter, logger *zap.Logger) error {
	var payload string
	err := js.Eval(ctx, ensureOverlayJS, &payload,
		overlayStyleID, bannerID, overlayCSS, bannerText)
	if err != nil {
		return fmt.Errorf("tour: inject overlay: %w", err)
	}
	var res overlayResult
	if err := json.UnmarshalFromString(payload, &res); err != nil {
		return fmt.Errorf("tour: decode overlay result: %w", err)
	}
	if res.Injected {
		logger.Debug("Tour overlay injected")
	}
	return nil
}
