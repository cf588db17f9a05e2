// Package report renders classification and reconciliation results for
// the terminal.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avasquez/ppmon/internal/application"
	"github.com/avasquez/ppmon/internal/domain"
)

// RenderDisconnections renders the legacy disconnection records as a
// table, newest first by the device's display time.
func RenderDisconnections(records []domain.DisconnectionRecord) string {
	s := newStyles()

	lines := []string{
		s.title.Render("PPPoE disconnections"),
		s.header.Render(fmt.Sprintf("records: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No disconnections detected."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	sorted := make([]domain.DisconnectionRecord, len(records))
	copy(sorted, records)
	// Device timestamps are display strings; a lexicographic sort is
	// the best ordering available without parsing them.
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time > sorted[j].Time })

	rows := make([][]string, 0, len(sorted))
	for _, record := range sorted {
		rows = append(rows, []string{record.Time, string(record.Client), record.IP, record.Message})
	}

	lines = append(lines, renderTable([]string{"Time", "Client", "IP", "Message"}, rows, s))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderEvents renders the connection timeline in stream order, with
// rapid reconnections highlighted.
func RenderEvents(events []domain.ConnectionEvent) string {
	s := newStyles()

	lines := []string{
		s.title.Render("PPPoE connection timeline"),
		s.header.Render(fmt.Sprintf("events: %d", len(events))),
	}

	if len(events) == 0 {
		lines = append(lines, s.empty.Render("No connection events detected."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, event := range events {
		lines = append(lines, renderEvent(event, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderActive renders the active-session snapshot and the clients that
// reconnected since the last check.
func RenderActive(report application.ActiveReport) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Active PPPoE clients"),
		s.header.Render(fmt.Sprintf("clients: %d", len(report.Clients))),
	}

	if len(report.Clients) == 0 {
		lines = append(lines, s.empty.Render("No active clients."))
	} else {
		names := make([]domain.ClientName, 0, len(report.Clients))
		for name := range report.Clients {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			client := report.Clients[name]
			rows = append(rows, []string{string(name), client.IP, client.Uptime, client.CallerID, client.Service})
		}

		lines = append(lines, renderTable([]string{"Client", "IP", "Uptime", "Caller ID", "Service"}, rows, s))
	}

	if len(report.Reconnected) > 0 {
		labels := make([]string, 0, len(report.Reconnected))
		for _, name := range report.Reconnected {
			labels = append(labels, string(name))
		}
		lines = append(lines, s.banner.Render(fmt.Sprintf("Reconnected since last check: %s", strings.Join(labels, ", "))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderEvent(event domain.ConnectionEvent, s styles) string {
	var kindStyle lipgloss.Style
	var label string

	switch event.Kind {
	case domain.EventDisconnect:
		kindStyle, label = s.disconnect, "DISCONNECT"
	case domain.EventRapidReconnect:
		kindStyle, label = s.reconnect, "RAPID RECONNECT"
	default:
		kindStyle, label = s.connect, "CONNECT"
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.cell.Render(event.Time),
		"  ",
		kindStyle.Render(fmt.Sprintf("%-15s", label)),
		"  ",
		s.cell.Render(string(event.Client)),
		"  ",
		s.header.Render(event.Message),
	)
}

func renderTable(headers []string, rows [][]string, s styles) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, s.tableHeader.Render(formatRow(headers, widths)))
	for _, row := range rows {
		lines = append(lines, s.cell.Render(formatRow(row, widths)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}

	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
