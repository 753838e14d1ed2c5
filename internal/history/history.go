// Package history persists an append-only log of past announcements.
package history

import (
	"bufio"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/banglasoft/shomoy/internal/clip"
)

// SchemaVersion is the current log schema version.
const SchemaVersion = 1

// Entry records one completed announcement.
type Entry struct {
	ID        string   `json:"id"`
	Timestamp int64    `json:"timestamp"`
	Clips     []string `json:"clips"`
	Skipped   []string `json:"skipped,omitempty"`
}

// Time returns the announcement instant.
func (e Entry) Time() time.Time {
	return time.Unix(e.Timestamp, 0)
}

// schemaHeader is the first line of the JSONL file.
type schemaHeader struct {
	ShomoySchemaVersion int   `json:"shomoy_schema_version"`
	CreatedAt           int64 `json:"created_at"`
}

// NewEntry builds an entry for an announcement made at the given instant.
func NewEntry(at time.Time, played, skipped []clip.ID) (Entry, error) {
	id, err := ulid.New(ulid.Timestamp(at), rand.Reader)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to generate ULID: %w", err)
	}

	return Entry{
		ID:        id.String(),
		Timestamp: at.Unix(),
		Clips:     clipNames(played),
		Skipped:   clipNames(skipped),
	}, nil
}

func clipNames(ids []clip.ID) []string {
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}

// Log is an append-only JSONL announcement log.
type Log struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// Open opens the log at path for appending, creating the file and parent
// directories if needed. A new file gets a schema-version header line.
func Open(path string) (*Log, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	l := &Log{path: path, file: file}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	if info.Size() == 0 {
		if err := l.writeHeader(); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	return l, nil
}

func (l *Log) writeHeader() error {
	header := schemaHeader{
		ShomoySchemaVersion: SchemaVersion,
		CreatedAt:           time.Now().Unix(),
	}

	data, err := json.Marshal(header)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(l.file, "%s\n", data)
	return err
}

// Append writes an entry to the log.
func (l *Log) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	if _, err := fmt.Fprintf(l.file, "%s\n", data); err != nil {
		return fmt.Errorf("failed to append entry: %w", err)
	}

	return l.file.Sync()
}

// Entries reads all entries from the log in file order (oldest first).
// The header line and malformed lines are skipped.
func (l *Log) Entries() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", l.path, err)
	}
	defer func() { _ = f.Close() }()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var e Entry
		if err := json.Unmarshal(line, &e); err != nil || e.ID == "" {
			// Header or malformed line
			continue
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	return entries, nil
}

// Close releases the underlying file handle.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
