package main

import (
	"fmt"

	"github.com/Yashcodes04/codementor-project/internal/worker"
	"github.com/spf13/cobra"
)

var trackProblemID string

var trackCmd = &cobra.Command{
	Use:   "track <event-type>",
	Short: "Send one analytics event to the backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w, _, _, err := newWorker(ctx)
		if err != nil {
			return err
		}

		eventData := map[string]any{
			"event_type": args[0],
		}
		if trackProblemID != "" {
			eventData["problem_id"] = trackProblemID
		}

		resp := w.HandleMessage(ctx, worker.Message{
			Action:    worker.ActionTrackEvent,
			EventData: eventData,
		})
		if !resp.Success {
			return fmt.Errorf("tracking failed: %s", resp.Error)
		}
		fmt.Println("tracked")
		return nil
	},
}

func init() {
	trackCmd.Flags().StringVar(&trackProblemID, "problem", "", "problem id to attach to the event")
}
