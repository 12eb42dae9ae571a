package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ATHLETEHUB_BACK-END/internal/models"
)

// MemoryStore is an in-process AthleteStore used by tests and local runs
// without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	athletes map[uuid.UUID]models.Athlete
	now      func() time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		athletes: make(map[uuid.UUID]models.Athlete),
		now:      time.Now,
	}
}

func (s *MemoryStore) FindByID(_ context.Context, id uuid.UUID) (models.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.athletes[id]
	if !ok {
		return models.Athlete{}, ErrNotFound
	}
	return clone(a), nil
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (models.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.athletes {
		if a.Email == email {
			return clone(a), nil
		}
	}
	return models.Athlete{}, ErrNotFound
}

func (s *MemoryStore) Create(_ context.Context, a models.Athlete) (models.Athlete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkUnique(a); err != nil {
		return models.Athlete{}, err
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := s.now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	a.Videos = models.CloneVideos(a.Videos)
	s.athletes[a.ID] = a
	return clone(a), nil
}

func (s *MemoryStore) Save(_ context.Context, a models.Athlete) (models.Athlete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.athletes[a.ID]
	if !ok {
		return models.Athlete{}, ErrNotFound
	}
	if err := s.checkUnique(a); err != nil {
		return models.Athlete{}, err
	}
	a.PublicID = existing.PublicID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = s.now().UTC()
	a.Videos = models.CloneVideos(a.Videos)
	s.athletes[a.ID] = a
	return clone(a), nil
}

// checkUnique must be called with mu held.
func (s *MemoryStore) checkUnique(a models.Athlete) error {
	for id, other := range s.athletes {
		if id == a.ID {
			continue
		}
		if other.Email == a.Email {
			return ErrDuplicateEmail
		}
		if other.PublicID == a.PublicID {
			return ErrDuplicatePublicID
		}
	}
	return nil
}

func (s *MemoryStore) Search(_ context.Context, f SearchFilter) ([]models.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Athlete{}
	for _, a := range s.athletes {
		if containsFold(a.Name, f.Name) && containsFold(a.Sport, f.Sport) && containsFold(a.Position, f.Position) {
			out = append(out, clone(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) CountAthletes(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.athletes)), nil
}

func (s *MemoryStore) CountVideos(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, a := range s.athletes {
		total += int64(len(a.Videos))
	}
	return total, nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func containsFold(value, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

func clone(a models.Athlete) models.Athlete {
	a.Videos = models.CloneVideos(a.Videos)
	return a
}
