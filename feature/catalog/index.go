package catalog

import (
	"release-manager/feature/catalog/models"
)

// Index holds the lookup maps for one dataset. Indices are plain values built
// per reconciliation run and passed into the merge, never package-level state,
// so the pipeline can be re-run with different inputs in one process.
type Index struct {
	byTitle map[string]*models.RawSongRecord
	byFile  map[string]*models.RawSongRecord
	byID    map[string]*models.RawSongRecord
}

// NewIndex builds the lookup maps for a dataset. The first record to claim a
// key keeps it.
func NewIndex(records []models.RawSongRecord) *Index {
	ix := &Index{
		byTitle: make(map[string]*models.RawSongRecord, len(records)),
		byFile:  make(map[string]*models.RawSongRecord, len(records)),
		byID:    make(map[string]*models.RawSongRecord, len(records)),
	}
	for i := range records {
		rec := &records[i]
		if rec.Title != "" {
			key := NormalizeTitle(rec.Title)
			if _, taken := ix.byTitle[key]; !taken {
				ix.byTitle[key] = rec
			}
		}
		if rec.FileName != "" {
			key := NormalizeFileKey(rec.FileName)
			if _, taken := ix.byFile[key]; !taken {
				ix.byFile[key] = rec
			}
		}
		if rec.ID != "" {
			if _, taken := ix.byID[rec.ID]; !taken {
				ix.byID[rec.ID] = rec
			}
		}
	}
	return ix
}

// Match locates the record for a manifest entry. Lookup order: exact
// normalized title, exact normalized file name (extension stripped), explicit
// id. Exact matching only; near-miss variants stay unmatched.
func (ix *Index) Match(entry models.ManifestEntry) *models.RawSongRecord {
	if ix == nil {
		return nil
	}
	titleKey := NormalizeTitle(entry.StorageTitle)
	if rec, ok := ix.byTitle[titleKey]; ok {
		return rec
	}
	fileKey := NormalizeFileKey(ManifestFileName(entry))
	if rec, ok := ix.byFile[fileKey]; ok {
		return rec
	}
	if rec, ok := ix.byID[entry.StorageTitle]; ok {
		return rec
	}
	return nil
}

// Len reports how many distinct titles the index covers.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.byTitle)
}
