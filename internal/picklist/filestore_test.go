package picklist_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/picklist"
)

func testTiers() domain.TierLists {
	return domain.TierLists{
		{254, 1678},
		{2073, 973},
		{8033},
		{},
		{9999},
	}
}

func TestFileStore_WriteRead(t *testing.T) {
	store, err := picklist.NewFileStore(t.TempDir())
	require.NoError(t, err)

	before := time.Now().UnixMilli()
	timestamp, err := store.Write("2025cc", testTiers())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, timestamp, before)

	snap, err := store.Read("2025cc")
	require.NoError(t, err)
	assert.Equal(t, timestamp, snap.Timestamp)
	assert.Equal(t, testTiers(), snap.Data)
}

func TestFileStore_ReadMissing(t *testing.T) {
	store, err := picklist.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Read("2025cc")
	assert.ErrorIs(t, err, picklist.ErrNoSnapshot)
}

func TestFileStore_RewriteBumpsTimestamp(t *testing.T) {
	store, err := picklist.NewFileStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Write("2025cc", testTiers())
	require.NoError(t, err)

	second, err := store.Write("2025cc", testTiers())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, second, first)

	snap, err := store.Read("2025cc")
	require.NoError(t, err)
	assert.Equal(t, second, snap.Timestamp)
}

func TestFileStore_LegacyBareList(t *testing.T) {
	dir := t.TempDir()
	store, err := picklist.NewFileStore(dir)
	require.NoError(t, err)

	// Files written before the timestamp wrapper were a bare array.
	legacy, err := json.Marshal(testTiers())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2025cc.json"), legacy, 0o644))

	before := time.Now().UnixMilli()
	snap, err := store.Read("2025cc")
	require.NoError(t, err)
	assert.Equal(t, testTiers(), snap.Data)
	assert.GreaterOrEqual(t, snap.Timestamp, before)
}

func TestFileStore_SanitizesCompCode(t *testing.T) {
	dir := t.TempDir()
	store, err := picklist.NewFileStore(dir)
	require.NoError(t, err)

	_, err = store.Write("../escape", testTiers())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "___escape.json", entries[0].Name())
}
