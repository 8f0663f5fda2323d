package resolver

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"release-manager/core/storage"
	"release-manager/feature/catalog"
	"release-manager/feature/catalog/models"
)

// Kind identifies how a candidate is probed and served.
type Kind string

const (
	// KindStored is a pre-published URL from the complete export, trusted
	// without probing.
	KindStored Kind = "stored"
	// KindBucket is an object in the storage bucket, probed via stat.
	KindBucket Kind = "bucket"
	// KindLocal is a file on the local disk, probed via stat.
	KindLocal Kind = "local"
	// KindPlaceholder is a generated inline asset that always succeeds.
	KindPlaceholder Kind = "placeholder"
)

// Candidate is one potential source for an asset.
type Candidate struct {
	// URL is the playable location handed to the client on success.
	URL string `json:"url"`
	// Kind tells the prober how to check this candidate.
	Kind Kind `json:"kind"`
	// Object is the bucket object key, set for bucket candidates.
	Object string `json:"-"`
	// Path is the local file path, set for local candidates.
	Path string `json:"-"`
	// Ext is the file extension this candidate would serve.
	Ext string `json:"ext,omitempty"`
}

// AudioCandidates builds the ordered audio source list for a release:
// the stored URL from the complete export, then the manifest's recorded
// object, then every supported extension in the bucket, then the same chain
// on local disk. Day numbering maps to month folders through the fixed
// 365-day calendar.
func AudioCandidates(cfg Config, store storage.Config, rel *models.Release) ([]Candidate, error) {
	month, relDay, err := catalog.MonthForDay(rel.Day)
	if err != nil {
		return nil, err
	}

	var out []Candidate

	if rel.StoredAudioURL != "" {
		out = append(out, Candidate{URL: rel.StoredAudioURL, Kind: KindStored})
	}

	if rel.ManifestAudioPath != "" {
		out = append(out, Candidate{
			URL:    bucketURL(store, rel.ManifestAudioPath),
			Kind:   KindBucket,
			Object: rel.ManifestAudioPath,
			Ext:    strings.TrimPrefix(filepath.Ext(rel.ManifestAudioPath), "."),
		})
	}

	title := storageTitle(rel)
	for _, ext := range catalog.AudioExtensions() {
		object := assetObject("audio", month, relDay, title, ext)
		if rel.ManifestAudioPath == object {
			continue
		}
		out = append(out, Candidate{
			URL:    bucketURL(store, object),
			Kind:   KindBucket,
			Object: object,
			Ext:    ext,
		})
	}

	for _, ext := range catalog.AudioExtensions() {
		name := fmt.Sprintf("%02d - %s.%s", relDay, title, ext)
		out = append(out, Candidate{
			URL:  filepath.ToSlash(filepath.Join(cfg.LocalAudioDir, month, name)),
			Kind: KindLocal,
			Path: filepath.Join(cfg.LocalAudioDir, month, name),
			Ext:  ext,
		})
	}

	return out, nil
}

// CoverCandidates builds the ordered cover art source list: every supported
// image extension in the bucket, then local disk. The caller appends the
// generated placeholder when the chain is exhausted.
func CoverCandidates(cfg Config, store storage.Config, rel *models.Release) ([]Candidate, error) {
	month, relDay, err := catalog.MonthForDay(rel.Day)
	if err != nil {
		return nil, err
	}

	title := storageTitle(rel)
	var out []Candidate
	for _, ext := range catalog.CoverExtensions() {
		object := assetObject("covers", month, relDay, title, ext)
		out = append(out, Candidate{
			URL:    bucketURL(store, object),
			Kind:   KindBucket,
			Object: object,
			Ext:    ext,
		})
	}
	for _, ext := range catalog.CoverExtensions() {
		name := fmt.Sprintf("%02d - %s.%s", relDay, title, ext)
		out = append(out, Candidate{
			URL:  filepath.ToSlash(filepath.Join(cfg.LocalCoverDir, month, name)),
			Kind: KindLocal,
			Path: filepath.Join(cfg.LocalCoverDir, month, name),
			Ext:  ext,
		})
	}
	return out, nil
}

func storageTitle(rel *models.Release) string {
	if rel.StorageTitle != "" {
		return rel.StorageTitle
	}
	return rel.Title
}

func assetObject(kind, month string, relDay int, title, ext string) string {
	return fmt.Sprintf("%s/%s/%02d - %s.%s", kind, month, relDay, title, ext)
}

// bucketURL builds the public URL for a bucket object, escaping each path
// segment so titles with spaces stay valid.
func bucketURL(store storage.Config, object string) string {
	segments := strings.Split(object, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/%s/%s",
		strings.TrimSuffix(store.PublicURL, "/"),
		store.Bucket,
		strings.Join(segments, "/"),
	)
}
