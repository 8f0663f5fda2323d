package resolver

import (
	"context"
	"fmt"
	"os"

	"release-manager/core/storage"
	"release-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ReleaseSource looks up releases by absolute day. The catalog service
// implements it.
type ReleaseSource interface {
	ReleaseByDay(day int) (*models.Release, bool)
}

// Service resolves playable asset URLs for releases by probing candidate
// sources in order.
type Service struct {
	cfg      Config
	storeCfg storage.Config
	client   storage.Client
	catalog  ReleaseSource
	logger   *zap.Logger

	audio Session
	cover Session
}

// NewService creates a new resolver service.
func NewService(cfg Config, storeCfg storage.Config, client storage.Client, cat ReleaseSource, logger *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		storeCfg: storeCfg,
		client:   client,
		catalog:  cat,
		logger:   logger,
	}
}

// Resolution is the outcome of an audio resolution run.
type Resolution struct {
	Day       int       `json:"day"`
	Candidate Candidate `json:"candidate"`
}

// CoverResolution is the outcome of a cover resolution run. When every real
// source fails, URL carries the generated placeholder data URL.
type CoverResolution struct {
	Day         int    `json:"day"`
	URL         string `json:"url"`
	Kind        Kind   `json:"kind"`
	Placeholder bool   `json:"placeholder"`
}

// ResolveAudio finds the first available audio source for a day. A newer call
// for any day supersedes runs still in flight.
func (s *Service) ResolveAudio(ctx context.Context, day int) (*Resolution, error) {
	rel, ok := s.catalog.ReleaseByDay(day)
	if !ok {
		return nil, fmt.Errorf("no release for day %d", day)
	}

	candidates, err := AudioCandidates(s.cfg, s.storeCfg, rel)
	if err != nil {
		return nil, err
	}

	runCtx, gen := s.audio.Begin(ctx)
	defer s.audio.End(gen)
	found, err := Resolve(runCtx, candidates, s.probe, s.cfg.Timeout())
	if !s.audio.Current(gen) {
		return nil, ErrSuperseded
	}
	if err != nil {
		s.logger.Warn("Audio resolution exhausted",
			zap.Int("day", day),
			zap.Int("candidates", len(candidates)),
		)
		return nil, err
	}

	return &Resolution{Day: day, Candidate: found}, nil
}

// ResolveCover finds the first available cover source for a day, falling back
// to the deterministic generated placeholder when every source fails.
func (s *Service) ResolveCover(ctx context.Context, day int) (*CoverResolution, error) {
	rel, ok := s.catalog.ReleaseByDay(day)
	if !ok {
		return nil, fmt.Errorf("no release for day %d", day)
	}

	candidates, err := CoverCandidates(s.cfg, s.storeCfg, rel)
	if err != nil {
		return nil, err
	}

	runCtx, gen := s.cover.Begin(ctx)
	defer s.cover.End(gen)
	found, err := Resolve(runCtx, candidates, s.probe, s.cfg.Timeout())
	if !s.cover.Current(gen) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return &CoverResolution{
			Day:         day,
			URL:         PlaceholderDataURL(day, coverTitle(rel)),
			Kind:        KindPlaceholder,
			Placeholder: true,
		}, nil
	}

	return &CoverResolution{Day: day, URL: found.URL, Kind: found.Kind}, nil
}

// Probe checks a single candidate without going through a session, used by
// the offline resolve command to report per-candidate availability.
func (s *Service) Probe(ctx context.Context, c Candidate) error {
	return s.probe(ctx, c)
}

// Candidates exposes the ordered audio candidate list for a release.
func (s *Service) Candidates(rel *models.Release) ([]Candidate, error) {
	return AudioCandidates(s.cfg, s.storeCfg, rel)
}

func (s *Service) probe(ctx context.Context, c Candidate) error {
	switch c.Kind {
	case KindStored, KindPlaceholder:
		return nil
	case KindBucket:
		if s.client == nil {
			return fmt.Errorf("no storage client")
		}
		_, err := s.client.StatObject(ctx, s.storeCfg.Bucket, c.Object, minio.StatObjectOptions{})
		return err
	case KindLocal:
		_, err := os.Stat(c.Path)
		return err
	default:
		return fmt.Errorf("unknown candidate kind %q", c.Kind)
	}
}

func coverTitle(rel *models.Release) string {
	if rel.Title != "" {
		return rel.Title
	}
	return rel.StorageTitle
}
