package votelog

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/tidwall/wal"
)

// Log is a write-ahead log holding the highest generation this node has
// voted for or adopted, one 8-byte big-endian entry per change. Only the
// last entry matters for recovery; earlier entries are kept for truncation
// simplicity and audit.
type Log struct {
	wal *wal.Log
}

func Open(dir string) (*Log, error) {
	w, err := wal.Open(dir, wal.DefaultOptions)
	if err != nil {
		return nil, fmt.Errorf("open vote log %s: %w", dir, err)
	}
	return &Log{wal: w}, nil
}

// HighestGeneration returns the most recently persisted generation, or 0
// for a fresh log.
func (l *Log) HighestGeneration() (uint64, error) {
	last, err := l.wal.LastIndex()
	if err != nil {
		return 0, fmt.Errorf("vote log last index: %w", err)
	}
	if last == 0 {
		return 0, nil
	}
	data, err := l.wal.Read(last)
	if err != nil {
		return 0, fmt.Errorf("vote log read %d: %w", last, err)
	}
	if len(data) != 8 {
		return 0, fmt.Errorf("vote log entry %d: malformed length %d", last, len(data))
	}
	return binary.BigEndian.Uint64(data), nil
}

// SaveGeneration durably appends a generation. The write is synced before
// return; callers rely on this ordering to never grant two votes in one
// generation across a restart.
func (l *Log) SaveGeneration(generation uint64) error {
	last, err := l.wal.LastIndex()
	if err != nil {
		return fmt.Errorf("vote log last index: %w", err)
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, generation)
	if err := l.wal.Write(last+1, buf); err != nil {
		return fmt.Errorf("vote log write generation %d: %w", generation, err)
	}
	slog.Debug("persisted generation", "generation", generation)
	return nil
}

func (l *Log) Close() error {
	return l.wal.Close()
}
