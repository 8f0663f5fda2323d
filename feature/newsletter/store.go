package newsletter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Subscriber is one newsletter signup.
type Subscriber struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribedAt"`
}

// Store persists subscribers to a JSON file. Writes go through a mutex and a
// full-file rewrite; signup volume is nowhere near the point where that
// matters.
type Store struct {
	path string

	mu   sync.Mutex
	subs []Subscriber
}

// NewStore opens the subscriber store, loading any existing file.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read subscriber store: %w", err)
	}
	if err := json.Unmarshal(data, &s.subs); err != nil {
		return nil, fmt.Errorf("failed to parse subscriber store: %w", err)
	}
	return s, nil
}

// Add records a new subscriber. Emails are normalized to lower case and
// deduplicated; re-subscribing is not an error.
func (s *Store) Add(email string) (added bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subs {
		if sub.Email == email {
			return false, nil
		}
	}

	s.subs = append(s.subs, Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		SubscribedAt: time.Now().Format(time.RFC3339),
	})
	if err := s.flushLocked(); err != nil {
		s.subs = s.subs[:len(s.subs)-1]
		return false, err
	}
	return true, nil
}

// Count returns the number of subscribers.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.subs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode subscribers: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write subscriber store: %w", err)
	}
	return nil
}
