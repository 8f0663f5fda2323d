package newsletter

import (
	"fmt"
	"net/mail"

	"go.uber.org/zap"
)

// Service handles newsletter signups.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new newsletter service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Subscribe validates and records a signup. Duplicate signups succeed quietly.
func (s *Service) Subscribe(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}

	added, err := s.store.Add(email)
	if err != nil {
		return err
	}
	if added {
		s.logger.Info("New newsletter subscriber", zap.Int("total", s.store.Count()))
	}
	return nil
}

// Count returns the current subscriber count.
func (s *Service) Count() int {
	return s.store.Count()
}
