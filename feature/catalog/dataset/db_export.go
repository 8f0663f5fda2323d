package dataset

import (
	"context"
	"fmt"
	"strings"

	"release-manager/core/utils"
	"release-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// songsTable is the table name used by the SQLite song database export.
const songsTable = "songs"

// LoadFromDB reads the "complete" dataset from a song database export. The
// export schema is loose (columns vary between tool versions), so rows are
// scanned into maps and coerced field by field, with list columns stored as
// comma-separated strings.
func LoadFromDB(ctx context.Context, db *gorm.DB) ([]models.RawSongRecord, error) {
	if db == nil {
		return nil, fmt.Errorf("no database export connection")
	}

	rows, err := db.WithContext(ctx).Raw("SELECT * FROM " + songsTable).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", songsTable, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var records []models.RawSongRecord
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		records = append(records, recordFromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return records, nil
}

func recordFromRow(row map[string]any) models.RawSongRecord {
	rec := models.RawSongRecord{
		ID:       utils.ToString(rowVal(row, "id")),
		FileName: utils.ToString(rowVal(row, "file_name", "fileName")),
		Title:    utils.ToString(rowVal(row, "title")),
	}

	rec.Duration = rowFloat(row, "duration")
	rec.Tempo = rowFloat(row, "tempo")
	rec.Key = rowString(row, "key")
	rec.TimeSignature = rowString(row, "time_signature")

	rec.Energy = rowFloat(row, "energy")
	rec.Danceability = rowFloat(row, "danceability")
	rec.Valence = rowFloat(row, "valence")
	rec.Acousticness = rowFloat(row, "acousticness")
	rec.Instrumentalness = rowFloat(row, "instrumentalness")
	rec.Loudness = rowFloat(row, "loudness")
	rec.Speechiness = rowFloat(row, "speechiness")
	rec.Liveness = rowFloat(row, "liveness")

	rec.Genre = rowList(row, "genre")
	rec.Mood = rowList(row, "mood")

	rec.Lyrics = rowString(row, "lyrics")
	rec.StoredAudioURL = rowString(row, "stored_audio_url")

	return rec
}

func rowVal(row map[string]any, names ...string) any {
	for _, n := range names {
		if v, ok := row[n]; ok && v != nil {
			return v
		}
	}
	return nil
}

func rowFloat(row map[string]any, names ...string) *float64 {
	v := rowVal(row, names...)
	if v == nil {
		return nil
	}
	f := utils.ToFloat(v)
	return &f
}

func rowString(row map[string]any, names ...string) *string {
	v := rowVal(row, names...)
	if v == nil {
		return nil
	}
	s := utils.ToString(v)
	return &s
}

// rowList splits a comma-separated column into a slice. An empty string is an
// explicit empty list, matching how the export writes "no genres".
func rowList(row map[string]any, names ...string) []string {
	v := rowVal(row, names...)
	if v == nil {
		return nil
	}
	s := utils.ToString(v)
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
