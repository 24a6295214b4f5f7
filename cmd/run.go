// File: cmd/run.go
package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartlink-labs/tourguide/internal/browser"
	"github.com/smartlink-labs/tourguide/internal/dom"
	"github.com/smartlink-labs/tourguide/internal/interact"
	"github.com/smartlink-labs/tourguide/internal/observability"
	"github.com/smartlink-labs/tourguide/internal/tour"
	"github.com/smartlink-labs/tourguide/internal/tour/scripts"
)

var (
	runURL     string
	runTrigger string
	runVisible bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the target page and run the walkthrough its trigger selects.",
	Long: `Run navigates a browser to the given URL, injects the tour overlay, and
executes the walkthrough selected by the trigger query parameter (or the
--trigger override). An unrecognized or absent trigger leaves the page
untouched apart from the banner.`,
	RunE: runTour,
}

func init() {
	runCmd.Flags().StringVar(&runURL, "url", "", "URL of the target page (required)")
	runCmd.Flags().StringVar(&runTrigger, "trigger", "", "walkthrough trigger value, overriding the URL query parameter")
	runCmd.Flags().BoolVar(&runVisible, "visible", false, "run the browser with a visible window")
	_ = runCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(runCmd)
}

func runTour(cmd *cobra.Command, args []string) error {
	logger := observability.GetLogger()

	if runVisible {
		cfg.Browser.Headless = false
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Browser startup failures are the only errors surfaced to the caller.
	mgr := browser.NewManager(ctx, cfg.Browser, logger)
	defer mgr.Shutdown()

	session, err := mgr.NewSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to start browser session: %w", err)
	}
	defer session.Close()

	if err := session.Navigate(ctx, runURL); err != nil {
		return fmt.Errorf("failed to open target page: %w", err)
	}

	// Let the target application finish its initial render.
	if err := dom.Sleep(ctx, cfg.Tour.SettleDelay); err != nil {
		return err
	}

	if err := tour.EnsureOverlay(ctx, session, logger); err != nil {
		return fmt.Errorf("failed to inject tour overlay: %w", err)
	}

	trigger := runTrigger
	if trigger == "" {
		trigger = tour.TriggerFromURL(runURL, cfg.Tour.TriggerParam)
	}

	locator := dom.NewLocator(session, logger, cfg.Tour.PollInterval)
	presenter := tour.NewPresenter(session, logger, cfg.Tour.PopupOffsetPx, cfg.Tour.CompletionBuffer)
	timings := interact.DefaultTimings()
	timings.CharDelay = cfg.Tour.TypeCharDelay
	timings.DefaultMaxWait = cfg.Tour.DefaultMaxWait
	synth := interact.New(session, locator, logger, timings)
	sequencer := tour.NewSequencer(locator, presenter, logger, cfg.Tour.StepDelay, cfg.Tour.DefaultMaxWait)

	registry := scripts.DefaultRegistry(synth)
	walkthrough, ok := registry.Lookup(trigger)
	if !ok {
		logger.Info("No walkthrough matches the trigger; leaving the page as is",
			zap.String("trigger", trigger))
		return nil
	}

	// Walkthrough failures stay in the logs. The page remains usable no
	// matter the tour's outcome, so the process still exits cleanly.
	if err := sequencer.Run(ctx, walkthrough); err != nil {
		logger.Error("Walkthrough aborted",
			zap.String("walkthrough", walkthrough.Name),
			zap.Error(err))
	}
	return nil
}
