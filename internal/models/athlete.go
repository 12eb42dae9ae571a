package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// PublicIDPrefix prefixes every human-facing athlete identifier
const PublicIDPrefix = "ATH-"

// Platform is the hosting service of a linked video
type Platform string

const (
	PlatformYouTube     Platform = "youtube"
	PlatformGoogleDrive Platform = "google_drive"
)

// Valid reports whether p is one of the supported video platforms
func (p Platform) Valid() bool {
	switch p {
	case PlatformYouTube, PlatformGoogleDrive:
		return true
	}
	return false
}

// Video is a linked video reference embedded in an athlete record
type Video struct {
	ID       uuid.UUID `json:"_id"`
	URL      string    `json:"url"`
	Platform Platform  `json:"platform"`
	Title    string    `json:"title"`
}

// Athlete represents an athlete account and profile
type Athlete struct {
	ID              uuid.UUID `json:"_id" db:"id"`
	PublicID        string    `json:"athleteID" db:"public_id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	PasswordHash    string    `json:"-" db:"password_hash"` // Hidden from JSON responses
	Age             int       `json:"age" db:"age"`
	Sport           string    `json:"sport" db:"sport"`
	Position        string    `json:"position" db:"position"`
	Location        string    `json:"location" db:"location"`
	Achievements    string    `json:"achievements" db:"achievements"`
	Contact         string    `json:"contact" db:"contact"`
	ProfilePhotoURL string    `json:"profilePhoto" db:"profile_photo_url"`
	Videos          []Video   `json:"videos" db:"videos"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// NewPublicID draws a fresh "ATH-" identifier with a 6 digit suffix in
// [100000, 999999]. Uniqueness is left to the store.
func NewPublicID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate public id: %w", err)
	}
	return fmt.Sprintf("%s%06d", PublicIDPrefix, n.Int64()+100000), nil
}

// Sanitized returns a copy without the password hash. Videos are copied so
// callers can't mutate the stored slice through the projection.
func (a Athlete) Sanitized() Athlete {
	a.PasswordHash = ""
	a.Videos = CloneVideos(a.Videos)
	return a
}

// CloneVideos returns a copy of videos that is never nil.
func CloneVideos(videos []Video) []Video {
	out := make([]Video, len(videos))
	copy(out, videos)
	return out
}
