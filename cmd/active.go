package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avasquez/ppmon/internal/adapters/render/report"
	"github.com/avasquez/ppmon/internal/application"
	"github.com/avasquez/ppmon/internal/domain"
)

func newActiveCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "active",
		Short: "Show active PPPoE clients and who reconnected since the last check",
		Long:  "active fetches the device's current PPP session table, reports which recently-disconnected clients are back online, and clears the recently-disconnected set. Each reconnection is therefore reported at most once.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var result application.ActiveReport

			poll := func(ctx context.Context) error {
				var err error
				result, err = app.service.ReconcileActive(ctx)
				return err
			}

			if err := runPollSpinner(cmd.Context(), cmd.ErrOrStderr(), "Querying active sessions...", poll); err != nil {
				if errors.Is(err, domain.ErrTransportUnavailable) {
					slog.Warn("device unreachable", "error", err)
				}
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.RenderActive(result))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
