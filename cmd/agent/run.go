package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/detector"
	"github.com/Yashcodes04/codementor-project/internal/navwatch"
	"github.com/Yashcodes04/codementor-project/internal/widget"
	"github.com/Yashcodes04/codementor-project/internal/worker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch a problem site and surface staged hints",
	Long: `run opens a headless browser on the configured start url, watches for
navigation and, on every problem page, detects the problem and renders
the hint panel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w, _, cfg, err := newWorker(ctx)
		if err != nil {
			return err
		}

		source, err := detector.NewChromeSource(ctx, cfg.Headless)
		if err != nil {
			return fmt.Errorf("cannot start browser, %w", err)
		}
		defer source.Close()

		if err := source.Navigate(ctx, cfg.StartURL); err != nil {
			return fmt.Errorf("cannot open start url, %w", err)
		}

		go w.Keepalive(ctx, cfg.KeepaliveInterval())

		det := detector.New(source)
		det.SelectorWait = cfg.SelectorWait()

		inject := func(ctx context.Context, url string) error {
			return showPanel(ctx, w, det, url, cfg.HintDelayMs)
		}

		watcher := navwatch.New(source, func(ctx context.Context, url string) {
			w.OnTabCompleted(ctx, url, inject)
		})
		watcher.PollInterval = cfg.PollInterval()
		watcher.SettleDelay = cfg.SettleDelay()

		log.WithField("url", cfg.StartURL).Info("agent running, ctrl-c to stop")
		if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

// showPanel runs one full initialization: detect the problem, report the
// sighting and walk the panel through all hint levels.
func showPanel(ctx context.Context, w *worker.Worker, det *detector.Detector, url string, hintDelayMs int) error {
	record, err := det.Detect(ctx, url)
	if err != nil {
		return err
	}

	w.HandleMessage(ctx, worker.Message{
		Action: worker.ActionTrackEvent,
		EventData: map[string]any{
			"event_type": "page_detected",
			"problem_id": record.ID,
			"platform":   record.Platform,
		},
	})

	panel := widget.NewPanel(record, widget.StaticProvider{})
	panel.LoadingDelay = time.Duration(hintDelayMs) * time.Millisecond

	for level := 1; level <= widget.MaxHintLevels; level++ {
		if _, err := panel.RequestHint(ctx, level); err != nil {
			return err
		}
	}

	for _, line := range panel.RenderLines() {
		fmt.Println(line)
	}
	return nil
}
