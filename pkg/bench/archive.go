package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/mctree/mctree/pkg/mcts"
)

// ArchiveRow is one finished game flattened for long-term storage.
// Moves are kept in their text form, space separated.
type ArchiveRow struct {
	GameID     string `parquet:"game_id,dict"`
	Game       int32  `parquet:"game"`
	Worker     int32  `parquet:"worker"`
	First      string `parquet:"first,dict"`
	Second     string `parquet:"second,dict"`
	Winner     string `parquet:"winner,dict"`
	Result     int32  `parquet:"result"`
	Plies      int32  `parquet:"plies"`
	Moves      string `parquet:"moves"`
	DurationMs int64  `parquet:"duration_ms"`
	PlayedAtMs int64  `parquet:"played_at_ms"`
	Aborted    bool   `parquet:"aborted"`
}

// ArchiveRows flattens game records into storable rows.
func ArchiveRows[A mcts.ActionLike](records []GameRecord[A]) []ArchiveRow {
	rows := make([]ArchiveRow, 0, len(records))
	for _, rec := range records {
		moves := make([]string, len(rec.Moves))
		for i, m := range rec.Moves {
			moves[i] = fmt.Sprint(m)
		}

		rows = append(rows, ArchiveRow{
			GameID:     rec.ID,
			Game:       int32(rec.Game),
			Worker:     int32(rec.Worker),
			First:      rec.First,
			Second:     rec.Second,
			Winner:     rec.Winner,
			Result:     int32(rec.Result),
			Plies:      int32(len(rec.Moves)),
			Moves:      strings.Join(moves, " "),
			DurationMs: rec.Duration.Milliseconds(),
			PlayedAtMs: rec.PlayedAt.UnixMilli(),
			Aborted:    rec.Aborted,
		})
	}
	return rows
}

// WriteArchive stores rows as a zstd compressed parquet file. The data
// goes to a temp file first and is renamed into place, so readers never
// observe a partial write.
func WriteArchive(outPath string, rows []ArchiveRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "arena_game_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadArchive loads rows written by WriteArchive.
func ReadArchive(path string) ([]ArchiveRow, error) {
	rows, err := parquet.ReadFile[ArchiveRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}
