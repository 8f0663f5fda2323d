package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"release-manager/core/storage"
	"release-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
)

// audioExtensions are the audio file types manifest scanning recognizes, in
// storage priority order.
var audioExtensions = []string{"wav", "mp3", "flac", "m4a", "ogg", "aac"}

// coverExtensions are the cover image types, in resolution priority order.
var coverExtensions = []string{"png", "jpg", "jpeg", "gif"}

// assetNameRe matches stored asset names: "NN - Title.ext".
var assetNameRe = regexp.MustCompile(`^(\d{2}) - (.+)\.([A-Za-z0-9]+)$`)

// ManifestVersion is the current manifest schema version.
const ManifestVersion = 1

// ScanDir walks the local audio tree (audioDir/<month>/NN - Title.ext) and
// builds the ordered manifest. Cover art is matched by base name under
// coverDir/<month>/.
func ScanDir(audioDir, coverDir string) (*models.Manifest, error) {
	if _, err := os.Stat(audioDir); err != nil {
		return nil, fmt.Errorf("audio directory not readable: %w", err)
	}

	var items []models.ManifestEntry
	for _, month := range MonthNames() {
		monthDir := filepath.Join(audioDir, month)
		entries, err := os.ReadDir(monthDir)
		if err != nil {
			// Months without a directory simply contribute no slots.
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			item, ok := parseAssetName(month, e.Name())
			if !ok || !isAudioExt(item.Ext) {
				continue
			}
			item.AudioPath = filepath.ToSlash(filepath.Join("audio", month, e.Name()))
			item.CoverPath = findCover(coverDir, month, item.Index, item.StorageTitle)
			items = append(items, item)
		}
	}

	sortManifestItems(items)

	return &models.Manifest{
		Version:     ManifestVersion,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Items:       items,
	}, nil
}

// ScanBucket lists the audio/ prefix of the storage bucket and builds the
// ordered manifest from object keys of the form audio/<month>/NN - Title.ext.
func ScanBucket(ctx context.Context, client storage.Client, bucket string) (*models.Manifest, error) {
	var items []models.ManifestEntry
	covers := make(map[string]string)

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket objects: %w", obj.Err)
		}
		parts := strings.SplitN(obj.Key, "/", 3)
		if len(parts) != 3 {
			continue
		}
		kind, month, name := parts[0], parts[1], parts[2]
		if _, ok := MonthIndex(month); !ok {
			continue
		}
		switch kind {
		case "audio":
			if item, ok := parseAssetName(month, name); ok && isAudioExt(item.Ext) {
				item.AudioPath = obj.Key
				items = append(items, item)
			}
		case "covers":
			if item, ok := parseAssetName(month, name); ok && isCoverExt(item.Ext) {
				covers[fmt.Sprintf("%s/%02d", month, item.Index)] = obj.Key
			}
		}
	}

	for i := range items {
		items[i].CoverPath = covers[fmt.Sprintf("%s/%02d", items[i].Month, items[i].Index)]
	}

	sortManifestItems(items)

	return &models.Manifest{
		Version:     ManifestVersion,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Items:       items,
	}, nil
}

// parseAssetName splits "NN - Title.ext" into a manifest entry, rejecting
// names that don't follow the layout or use an unknown audio extension.
func parseAssetName(month, name string) (models.ManifestEntry, bool) {
	m := assetNameRe.FindStringSubmatch(name)
	if m == nil {
		return models.ManifestEntry{}, false
	}
	index, err := strconv.Atoi(m[1])
	if err != nil || index < 1 || index > 31 {
		return models.ManifestEntry{}, false
	}
	ext := strings.ToLower(m[3])
	if !isAudioExt(ext) && !isCoverExt(ext) {
		return models.ManifestEntry{}, false
	}
	return models.ManifestEntry{
		Month:        month,
		Index:        index,
		StorageTitle: m[2],
		Ext:          ext,
	}, true
}

func findCover(coverDir, month string, index int, title string) string {
	if coverDir == "" {
		return ""
	}
	for _, ext := range coverExtensions {
		name := fmt.Sprintf("%02d - %s.%s", index, title, ext)
		p := filepath.Join(coverDir, month, name)
		if _, err := os.Stat(p); err == nil {
			return filepath.ToSlash(filepath.Join("covers", month, name))
		}
	}
	return ""
}

func sortManifestItems(items []models.ManifestEntry) {
	sort.SliceStable(items, func(i, j int) bool {
		mi, _ := MonthIndex(items[i].Month)
		mj, _ := MonthIndex(items[j].Month)
		if mi != mj {
			return mi < mj
		}
		return items[i].Index < items[j].Index
	})
}

func isAudioExt(ext string) bool {
	for _, e := range audioExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

func isCoverExt(ext string) bool {
	for _, e := range coverExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// AudioExtensions returns the supported audio extensions in priority order.
func AudioExtensions() []string {
	out := make([]string, len(audioExtensions))
	copy(out, audioExtensions)
	return out
}

// CoverExtensions returns the supported cover extensions in priority order.
func CoverExtensions() []string {
	out := make([]string, len(coverExtensions))
	copy(out, coverExtensions)
	return out
}
