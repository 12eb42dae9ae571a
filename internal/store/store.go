// Package store persists athlete records.
//
// Implementations enforce uniqueness of email and public id and keep
// created/updated timestamps. They never hash passwords; callers hand them
// a finished record.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ATHLETEHUB_BACK-END/internal/models"
)

// Sentinel errors returned by every AthleteStore implementation.
var (
	ErrNotFound          = errors.New("athlete not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicatePublicID = errors.New("public id already assigned")
	ErrUnavailable       = errors.New("store unavailable")
)

// SearchFilter selects athletes by case-insensitive substring. Empty terms
// are ignored and the rest are ANDed.
type SearchFilter struct {
	Name     string
	Sport    string
	Position string
}

// AthleteStore is the document store collaborator of the profile service
type AthleteStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.Athlete, error)
	FindByEmail(ctx context.Context, email string) (models.Athlete, error)
	// Create inserts a new record and sets its timestamps.
	Create(ctx context.Context, a models.Athlete) (models.Athlete, error)
	// Save overwrites the mutable fields of an existing record. PublicID and
	// CreatedAt are never written.
	Save(ctx context.Context, a models.Athlete) (models.Athlete, error)
	Search(ctx context.Context, f SearchFilter) ([]models.Athlete, error)
	CountAthletes(ctx context.Context) (int64, error)
	CountVideos(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}
