// Package csvlog implements the durable disconnection log as a flat
// CSV file: a header row when the file is created, then one row per
// record, appended and never rewritten.
package csvlog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/avasquez/ppmon/internal/domain"
	"github.com/avasquez/ppmon/internal/ports"
)

const (
	logFileMode = 0o600
	logDirMode  = 0o700
)

var header = []string{"Timestamp", "Client", "IP", "Message"}

type Log struct {
	logPath string
	mu      *sync.Mutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.Mutex{}
)

var _ ports.DisconnectionLog = (*Log)(nil)

func NewLog(path string) (*Log, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Log{logPath: absPath, mu: lockForPath(absPath)}, nil
}

// Append writes one row per record, creating the file with a header row
// if it does not exist yet. Re-appending identical records duplicates
// rows; deduplication is not this layer's job.
func (l *Log) Append(ctx context.Context, records []domain.DisconnectionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.logPath), logDirMode); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	writeHeader := false
	if _, err := os.Stat(l.logPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat disconnection log: %w", err)
		}
		writeHeader = true
	}

	file, err := os.OpenFile(l.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		return fmt.Errorf("open disconnection log: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("write disconnection log header: %w", err)
		}
	}

	for _, record := range records {
		row := []string{record.Time, string(record.Client), record.IP, record.Message}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write disconnection record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush disconnection log: %w", err)
	}

	return file.Close()
}

// Read returns the logged records in file order. A missing file is an
// empty log, not an error.
func (l *Log) Read(ctx context.Context) ([]domain.DisconnectionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.logPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open disconnection log: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(header)

	var records []domain.DisconnectionRecord
	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read disconnection log: %w", err)
		}
		if first {
			first = false
			continue
		}

		records = append(records, domain.DisconnectionRecord{
			Time:    row[0],
			Client:  domain.ClientName(row[1]),
			IP:      row[2],
			Message: row[3],
		})
	}

	return records, nil
}

// Clear deletes the log file. Clearing an absent log is a no-op.
func (l *Log) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.Remove(l.logPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove disconnection log: %w", err)
	}

	return nil
}

func lockForPath(path string) *sync.Mutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.Mutex{}
	pathLockMap[path] = mu
	return mu
}
