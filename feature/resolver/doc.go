// Package resolver finds playable asset URLs for releases.
//
// A release's audio may live in several places: a pre-published URL recorded
// in the library export, the storage bucket under any supported extension, or
// the local audio tree. Resolution probes these candidates strictly in order
// with a short per-candidate timeout and serves the first one that answers.
// Cover art works the same way but ends in a deterministic generated SVG
// placeholder instead of an error, so the player always has an image.
//
// Runs are serialized per asset slot through a generation counter: when the
// player skips to another day mid-probe, the superseded run discards its
// result instead of racing the new one.
//
// # HTTP Endpoints
//
//   - GET /resolve/audio/:day : First available audio source for a day.
//   - GET /resolve/cover/:day : First available cover, or a placeholder.
package resolver
