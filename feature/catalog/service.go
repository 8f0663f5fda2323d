package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"release-manager/core/server"
	"release-manager/core/storage"
	"release-manager/feature/catalog/dataset"
	"release-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ArtifactObjectName is the bucket object the built catalog is uploaded to.
const ArtifactObjectName = "catalog/releases.json"

// Service orchestrates the reconciliation pipeline and holds the built
// catalog in memory for the HTTP layer.
type Service struct {
	cfg    Config
	srvCfg server.Config
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger

	mu      sync.RWMutex
	catalog *models.Catalog
}

// NewService creates a new catalog service.
func NewService(cfg Config, srvCfg server.Config, client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		srvCfg: srvCfg,
		client: client,
		bucket: bucket,
		db:     db,
		logger: logger,
	}
}

// Build runs the full reconciliation pipeline: load the manifest, load every
// available dataset, merge, compute stats, and assemble the artifact envelope.
// The manifest and the "complete" dataset are mandatory; every other dataset
// is optional and degrades gracefully when absent or unparseable.
func (s *Service) Build(ctx context.Context) (*models.Catalog, error) {
	start, err := s.srvCfg.ParseStartDate()
	if err != nil {
		return nil, fmt.Errorf("invalid project start date: %w", err)
	}

	manifest, err := s.loadManifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}

	complete, err := s.loadComplete(ctx)
	if err != nil {
		return nil, err
	}

	src := Sources{
		Complete:      NewIndex(complete),
		Analysis:      s.loadOptional(ctx, dataset.NewAnalysis()),
		Lyrics:        s.loadOptional(ctx, dataset.NewLyrics()),
		Transcription: s.loadOptional(ctx, dataset.NewTranscription()),
	}

	releases := Merge(manifest, src, start)
	stats := ComputeStats(releases)

	cat := &models.Catalog{
		Project: models.Project{
			Name:      s.srvCfg.ProjectName,
			Artist:    s.srvCfg.Artist,
			StartDate: s.srvCfg.StartDate,
			TotalDays: DaysInYear,
		},
		Socials:            s.socials(),
		Releases:           releases,
		Stats:              stats,
		Announcements:      []string{},
		UpcomingMilestones: []string{},
		MonthThemes:        monthThemes(manifest),
	}

	s.mu.Lock()
	s.catalog = cat
	s.mu.Unlock()

	s.logger.Info("Catalog built",
		zap.Int("releases", stats.TotalReleases),
		zap.Int("light", stats.LightTracks),
		zap.Int("dark", stats.DarkTracks),
		zap.Int("error_logs", stats.ErrorLogs),
	)

	return cat, nil
}

// Catalog returns the in-memory catalog, if one has been built.
func (s *Service) Catalog() (*models.Catalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog, s.catalog != nil
}

// ReleaseByDay returns the release for an absolute day.
func (s *Service) ReleaseByDay(day int) (*models.Release, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, false
	}
	for i := range s.catalog.Releases {
		if s.catalog.Releases[i].Day == day {
			return &s.catalog.Releases[i], true
		}
	}
	return nil, false
}

// Stats returns the aggregate stats of the built catalog.
func (s *Service) Stats() (models.Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return models.Stats{}, false
	}
	return s.catalog.Stats, true
}

// WriteArtifact serializes the built catalog to the given path.
func (s *Service) WriteArtifact(path string) error {
	cat, ok := s.Catalog()
	if !ok {
		return fmt.Errorf("no catalog built")
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog artifact: %w", err)
	}
	return nil
}

// UploadArtifact publishes the built catalog to the storage bucket.
func (s *Service) UploadArtifact(ctx context.Context) error {
	cat, ok := s.Catalog()
	if !ok {
		return fmt.Errorf("no catalog built")
	}
	data, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, ArtifactObjectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload catalog artifact: %w", err)
	}
	return nil
}

func (s *Service) loadManifest(ctx context.Context) (*models.Manifest, error) {
	var data []byte
	var err error
	if s.cfg.FromBucket {
		data, err = s.readObject(ctx, s.cfg.ManifestPath)
	} else {
		data, err = os.ReadFile(s.cfg.ManifestPath)
	}
	if err != nil {
		return nil, err
	}
	var manifest models.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &manifest, nil
}

// loadComplete loads the mandatory complete dataset, preferring the JSON
// export and falling back to the database export when one is connected.
func (s *Service) loadComplete(ctx context.Context) ([]models.RawSongRecord, error) {
	adapter := dataset.NewComplete()
	records, jsonErr := s.loadDataset(ctx, adapter)
	if jsonErr == nil {
		return records, nil
	}

	if s.db != nil {
		s.logger.Warn("Complete JSON export unavailable, reading database export", zap.Error(jsonErr))
		records, dbErr := dataset.LoadFromDB(ctx, s.db)
		if dbErr == nil {
			return records, nil
		}
		return nil, fmt.Errorf("complete dataset unavailable: json: %v; db: %w", jsonErr, dbErr)
	}

	return nil, fmt.Errorf("complete dataset unavailable: %w", jsonErr)
}

// loadOptional loads an enrichment dataset, degrading to an absent source on
// any failure.
func (s *Service) loadOptional(ctx context.Context, adapter dataset.Adapter) *Index {
	records, err := s.loadDataset(ctx, adapter)
	if err != nil {
		s.logger.Warn("Optional dataset unavailable",
			zap.String("dataset", adapter.Name()),
			zap.Error(err),
		)
		return nil
	}
	return NewIndex(records)
}

func (s *Service) loadDataset(ctx context.Context, adapter dataset.Adapter) ([]models.RawSongRecord, error) {
	if s.cfg.FromBucket {
		object := s.cfg.DataDir + "/" + adapter.FileName()
		return dataset.LoadObject(ctx, s.client, s.bucket, object, adapter)
	}
	return dataset.LoadFile(filepath.Join(s.cfg.DataDir, adapter.FileName()), adapter)
}

func (s *Service) readObject(ctx context.Context, objectName string) ([]byte, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func (s *Service) socials() map[string]string {
	socials := make(map[string]string)
	if s.cfg.Website != "" {
		socials["website"] = s.cfg.Website
	}
	if s.cfg.Instagram != "" {
		socials["instagram"] = s.cfg.Instagram
	}
	if s.cfg.YouTube != "" {
		socials["youtube"] = s.cfg.YouTube
	}
	return socials
}

// monthThemes lists the months that actually have manifest slots.
func monthThemes(manifest *models.Manifest) []models.MonthTheme {
	seen := make(map[string]struct{})
	var themes []models.MonthTheme
	for _, month := range MonthNames() {
		for _, item := range manifest.Items {
			if item.Month == month {
				if _, ok := seen[month]; !ok {
					seen[month] = struct{}{}
					themes = append(themes, models.MonthTheme{Month: month})
				}
				break
			}
		}
	}
	if themes == nil {
		themes = []models.MonthTheme{}
	}
	return themes
}
