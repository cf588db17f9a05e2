package csvlog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasquez/ppmon/internal/domain"
)

func testRecords() []domain.DisconnectionRecord {
	return []domain.DisconnectionRecord{
		{Time: "jan/02 15:04:05", Client: "bob", IP: domain.NotAvailable, Message: "pppoe bob disconnected"},
		{Time: "jan/02 15:05:10", Client: "alice", IP: "10.0.0.5", Message: "user alice disconnected from 10.0.0.5"},
	}
}

func TestAppendCreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	log, err := NewLog(path)
	require.NoError(t, err)

	require.NoError(t, log.Append(context.Background(), testRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Timestamp,Client,IP,Message", lines[0])
	assert.Contains(t, lines[1], "bob")
	assert.Contains(t, lines[2], "10.0.0.5")
}

func TestAppendTwiceDuplicatesRowsWithSingleHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	log, err := NewLog(path)
	require.NoError(t, err)

	require.NoError(t, log.Append(context.Background(), testRecords()))
	require.NoError(t, log.Append(context.Background(), testRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Equal(t, 1, strings.Count(content, "Timestamp,Client,IP,Message"))

	records, err := log.Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestAppendNothingDoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	log, err := NewLog(path)
	require.NoError(t, err)

	require.NoError(t, log.Append(context.Background(), nil))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	log, err := NewLog(path)
	require.NoError(t, err)

	require.NoError(t, log.Append(context.Background(), testRecords()))

	records, err := log.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.ClientName("bob"), records[0].Client)
	assert.Equal(t, "10.0.0.5", records[1].IP)
	assert.Equal(t, "user alice disconnected from 10.0.0.5", records[1].Message)
}

func TestReadMissingFileIsEmptyLog(t *testing.T) {
	log, err := NewLog(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)

	records, err := log.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadHandlesQuotedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	log, err := NewLog(path)
	require.NoError(t, err)

	records := []domain.DisconnectionRecord{
		{Time: "t", Client: "casa, norte", IP: domain.NotAvailable, Message: `pppoe "casa, norte" disconnected`},
	}
	require.NoError(t, log.Append(context.Background(), records))

	got, err := log.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ClientName("casa, norte"), got[0].Client)
	assert.Equal(t, `pppoe "casa, norte" disconnected`, got[0].Message)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	log, err := NewLog(path)
	require.NoError(t, err)

	require.NoError(t, log.Append(context.Background(), testRecords()))
	require.NoError(t, log.Clear(context.Background()))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Clearing an absent log is fine.
	require.NoError(t, log.Clear(context.Background()))
}
