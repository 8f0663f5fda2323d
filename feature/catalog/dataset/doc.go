// Package dataset normalizes the heterogeneous enrichment exports into one
// canonical record shape.
//
// Each export ("complete", "analysis", "lyrics", "transcription") names the
// same concepts differently and nests them differently. An Adapter per dataset
// maps its raw shape into models.RawSongRecord before merging, keeping the
// merge logic dataset-shape-agnostic.
//
// # Presence Semantics
//
// Adapters preserve the absent-vs-empty distinction: a missing or null field
// becomes a nil pointer / nil slice, while an explicit empty string or empty
// array survives as a real value. The merge relies on this to avoid
// overriding an authoritative "explicitly empty" with lower-priority data.
//
// # Sources
//
//   - Parse/LoadFile/LoadObject: JSON exports with a {"songs": [...]} envelope,
//     from disk or object storage.
//   - LoadFromDB: the same "complete" data read from a SQLite database export.
package dataset
