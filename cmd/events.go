package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasquez/ppmon/internal/adapters/render/report"
)

func newEventsCmd(app *app) *cobra.Command {
	var window time.Duration
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the classified connection timeline, including rapid reconnections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if window <= 0 {
				window = app.cfg.DefaultWindow
			}

			result, err := pollDisconnections(cmd, app, window)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result.Events)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.RenderEvents(result.Events))
			return err
		},
	}

	cmd.Flags().DurationVar(&window, "window", 0, "Log window to inspect, e.g. 15m, 1h, 24h (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
