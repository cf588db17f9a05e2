package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasquez/ppmon/internal/adapters/render/report"
	"github.com/avasquez/ppmon/internal/application"
	"github.com/avasquez/ppmon/internal/domain"
)

func newDisconnectsCmd(app *app) *cobra.Command {
	var window time.Duration
	var exportPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "disconnects",
		Short: "Fetch recent device logs and report PPPoE disconnections",
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
				if err := enc.Encode(result.Records); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), report.RenderDisconnections(result.Records)); err != nil {
					return err
				}
			}

			if exportPath != "" {
				if err := exportRecords(exportPath, result.Records); err != nil {
					return fmt.Errorf("export records: %w", err)
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(result.Records), exportPath); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().DurationVar(&window, "window", 0, "Log window to inspect, e.g. 15m, 1h, 24h (default from config)")
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the reported records to a CSV file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func pollDisconnections(cmd *cobra.Command, app *app, window time.Duration) (application.MonitorReport, error) {
	var result application.MonitorReport

	poll := func(ctx context.Context) error {
		var err error
		result, err = app.service.FindRecentDisconnections(ctx, window)
		return err
	}

	if err := runPollSpinner(cmd.Context(), cmd.ErrOrStderr(), "Querying device logs...", poll); err != nil {
		if errors.Is(err, domain.ErrTransportUnavailable) {
			slog.Warn("device unreachable", "error", err)
		}
		return application.MonitorReport{}, err
	}

	return result, nil
}

func exportRecords(path string, records []domain.DisconnectionRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Timestamp", "Client", "IP", "Message"}); err != nil {
		return err
	}
	for _, record := range records {
		if err := writer.Write([]string{record.Time, string(record.Client), record.IP, record.Message}); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return file.Close()
}
