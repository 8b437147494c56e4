// Package picklist persists pick-list snapshots as one JSON file per
// competition code. The file is the source of truth for polling clients;
// the database row is a secondary copy written only when a caller opts in.
package picklist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
)

var ErrNoSnapshot = errors.New("no pick list snapshot for competition")

// Snapshot is the on-disk layout: the tier lists wrapped with the epoch-ms
// write time used by the polling protocol.
type Snapshot struct {
	Timestamp int64            `json:"timestamp"`
	Data      domain.TierLists `json:"data"`
}

type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create pick list dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Write persists the tiers with a fresh timestamp and returns it. The write
// goes through a temp file and rename so a poll never sees a half-written
// snapshot. Concurrent writers for the same competition are last-write-wins
// by policy; no locking.
func (s *FileStore) Write(compCode string, tiers domain.TierLists) (int64, error) {
	snap := Snapshot{
		Timestamp: time.Now().UnixMilli(),
		Data:      tiers,
	}

	encoded, err := json.Marshal(snap)
	if err != nil {
		return 0, fmt.Errorf("encode pick list: %w", err)
	}

	path := s.path(compCode)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return 0, fmt.Errorf("write pick list: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return 0, fmt.Errorf("replace pick list: %w", err)
	}

	return snap.Timestamp, nil
}

// Read loads the snapshot for a competition. Files written before the
// timestamp wrapper existed hold a bare array of tier lists; those are
// accepted and stamped as written now.
func (s *FileStore) Read(compCode string) (*Snapshot, error) {
	raw, err := os.ReadFile(s.path(compCode))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read pick list: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err == nil && snap.Data != nil {
		return &snap, nil
	}

	// Legacy bare-list shape.
	var tiers domain.TierLists
	if err := json.Unmarshal(raw, &tiers); err != nil {
		return nil, fmt.Errorf("decode pick list: %w", err)
	}
	return &Snapshot{Timestamp: time.Now().UnixMilli(), Data: tiers}, nil
}

// path maps a competition code to its file, stripping anything that could
// escape the store directory.
func (s *FileStore) path(compCode string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, compCode)
	return filepath.Join(s.dir, safe+".json")
}
