package bench

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTrip(t *testing.T) {
	arena := newNimArena(5,
		Agent{Name: "left", Simulations: 100},
		Agent{Name: "right", Simulations: 100},
	)
	arena.Setup(6, 3)
	arena.Start(nil)
	arena.Wait()

	records := arena.Records()
	rows := ArchiveRows(records)
	require.Len(t, rows, 6)

	path := filepath.Join(t.TempDir(), "out", "games.parquet")
	require.NoError(t, WriteArchive(path, rows))

	back, err := ReadArchive(path)
	require.NoError(t, err)
	require.Len(t, back, 6)

	byID := make(map[string]ArchiveRow, len(back))
	for _, row := range back {
		byID[row.GameID] = row
	}
	for _, rec := range records {
		row, ok := byID[rec.ID]
		require.True(t, ok, "game %s missing from the archive", rec.ID)
		require.Equal(t, int32(len(rec.Moves)), row.Plies)
		require.Equal(t, rec.Winner, row.Winner)
		require.Equal(t, rec.First, row.First)
		require.Len(t, strings.Fields(row.Moves), int(row.Plies))
	}
}

func TestArchiveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteArchive(path, nil))

	back, err := ReadArchive(path)
	require.NoError(t, err)
	require.Empty(t, back)
}
