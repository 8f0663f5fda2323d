package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"release-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeAsset(t *testing.T, root, month, name string) {
	t.Helper()
	dir := filepath.Join(root, month)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestScanDir(t *testing.T) {
	audioDir := t.TempDir()
	coverDir := t.TempDir()

	writeAsset(t, audioDir, "january", "02 - Second.mp3")
	writeAsset(t, audioDir, "january", "01 - First.wav")
	writeAsset(t, audioDir, "february", "01 - Later Month.flac")
	writeAsset(t, audioDir, "january", "notes.txt")
	writeAsset(t, audioDir, "january", "99 - Out Of Range.wav")
	writeAsset(t, coverDir, "january", "01 - First.png")

	manifest, err := ScanDir(audioDir, coverDir)
	require.NoError(t, err)

	assert.Equal(t, ManifestVersion, manifest.Version)
	assert.NotEmpty(t, manifest.GeneratedAt)
	require.Len(t, manifest.Items, 3, "non-asset and out-of-range files are skipped")

	first := manifest.Items[0]
	assert.Equal(t, "january", first.Month)
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "First", first.StorageTitle)
	assert.Equal(t, "wav", first.Ext)
	assert.Equal(t, "audio/january/01 - First.wav", first.AudioPath)
	assert.Equal(t, "covers/january/01 - First.png", first.CoverPath)

	assert.Equal(t, "Second", manifest.Items[1].StorageTitle)
	assert.Empty(t, manifest.Items[1].CoverPath)

	assert.Equal(t, "february", manifest.Items[2].Month, "months sort in calendar order")
}

// An image dropped into the audio tree must not claim a calendar slot; one
// accepted stray would shift the day of every release after it.
func TestScanDir_ImageInAudioTree(t *testing.T) {
	audioDir := t.TempDir()
	writeAsset(t, audioDir, "january", "01 - Real.wav")
	writeAsset(t, audioDir, "january", "02 - Stray.png")

	manifest, err := ScanDir(audioDir, "")
	require.NoError(t, err)
	require.Len(t, manifest.Items, 1)
	assert.Equal(t, "Real", manifest.Items[0].StorageTitle)
	assert.Equal(t, "wav", manifest.Items[0].Ext)
}

func listChan(objs ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objs))
	for _, o := range objs {
		ch <- o
	}
	close(ch)
	return ch
}

func TestScanBucket_ImageUnderAudioPrefix(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "releases", mock.Anything).Return(listChan(
		minio.ObjectInfo{Key: "audio/january/01 - Real.wav"},
		minio.ObjectInfo{Key: "audio/january/02 - Stray.png"},
		minio.ObjectInfo{Key: "covers/january/01 - Real.png"},
	))

	manifest, err := ScanBucket(context.Background(), client, "releases")
	require.NoError(t, err)
	require.Len(t, manifest.Items, 1, "only real audio objects become slots")
	assert.Equal(t, "Real", manifest.Items[0].StorageTitle)
	assert.Equal(t, "covers/january/01 - Real.png", manifest.Items[0].CoverPath)
}

func TestScanDir_MissingRoot(t *testing.T) {
	_, err := ScanDir(filepath.Join(t.TempDir(), "nope"), "")
	assert.Error(t, err)
}

func TestParseAssetName(t *testing.T) {
	item, ok := parseAssetName("march", "15 - Night Drive.WAV")
	require.True(t, ok)
	assert.Equal(t, 15, item.Index)
	assert.Equal(t, "Night Drive", item.StorageTitle)
	assert.Equal(t, "wav", item.Ext, "extension is lowercased")

	_, ok = parseAssetName("march", "Night Drive.wav")
	assert.False(t, ok, "day index prefix is required")

	_, ok = parseAssetName("march", "15 - Night Drive.xyz")
	assert.False(t, ok, "unknown extension")

	_, ok = parseAssetName("march", "00 - Zero.wav")
	assert.False(t, ok, "index below 1")
}
