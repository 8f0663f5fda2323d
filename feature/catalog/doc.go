// Package catalog implements the release catalog feature: the reconciliation
// pipeline that merges the storage manifest with the enrichment datasets into
// the 365-day release calendar.
//
// # Pipeline
//
// A build walks the manifest in calendar order and, for every slot, looks up
// the matching record in each loaded dataset by normalized title, then by
// stored file name, then by record ID. Field values fall back through the
// datasets in a fixed priority order, so a richer dataset always wins over a
// sparser one without ever discarding a manifest slot.
//
// The "complete" dataset is mandatory and may come from a JSON export or a
// read-only SQLite export of the production library. The analysis, lyrics and
// transcription datasets are optional; a missing or unparseable one only
// degrades the fields it would have contributed.
//
// # Components
//
//   - Service: Loads sources, runs the merge, holds the built catalog and
//     writes/uploads the JSON artifact.
//   - Handler: Exposes the catalog over HTTP.
//   - Loader: Registers the feature with the application.
//   - dataset: Per-source adapters normalizing raw exports into records.
//   - timeline: Playback-time lookups over timed lyric words.
//
// # HTTP Endpoints
//
//   - GET  /catalog                      : Full catalog artifact.
//   - GET  /catalog/releases             : All merged releases.
//   - GET  /catalog/releases/:day        : Release for an absolute day (1-365).
//   - GET  /catalog/releases/:day/lyrics : Lyric state at a playback time.
//   - GET  /catalog/stats                : Aggregate stats.
//   - POST /catalog/rebuild              : Re-run the pipeline in place.
package catalog
