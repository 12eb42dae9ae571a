package dto

import (
	"time"

	"ATHLETEHUB_BACK-END/internal/models"
)

// AthleteResponse is the outward projection of an athlete. It never carries
// the password hash.
type AthleteResponse struct {
	ID           string         `json:"_id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	AthleteID    string         `json:"athleteID"`
	Age          int            `json:"age"`
	Sport        string         `json:"sport"`
	Position     string         `json:"position"`
	Location     string         `json:"location"`
	Achievements string         `json:"achievements"`
	Contact      string         `json:"contact"`
	ProfilePhoto string         `json:"profilePhoto"`
	Videos       []models.Video `json:"videos"`
	CreatedAt    string         `json:"createdAt"` // RFC3339
	UpdatedAt    string         `json:"updatedAt"` // RFC3339
}

// NewAthleteResponse maps an athlete record to its response shape
func NewAthleteResponse(a models.Athlete) AthleteResponse {
	return AthleteResponse{
		ID:           a.ID.String(),
		Name:         a.Name,
		Email:        a.Email,
		AthleteID:    a.PublicID,
		Age:          a.Age,
		Sport:        a.Sport,
		Position:     a.Position,
		Location:     a.Location,
		Achievements: a.Achievements,
		Contact:      a.Contact,
		ProfilePhoto: a.ProfilePhotoURL,
		Videos:       models.CloneVideos(a.Videos),
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAthleteListResponse maps a slice of athletes, never returning nil
func NewAthleteListResponse(athletes []models.Athlete) []AthleteResponse {
	out := make([]AthleteResponse, 0, len(athletes))
	for _, a := range athletes {
		out = append(out, NewAthleteResponse(a))
	}
	return out
}

// ProfileUpdateRequest carries the fields of a partial profile update.
// Nil means the field was not sent.
type ProfileUpdateRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	Age          *int    `json:"age"`
	Sport        *string `json:"sport"`
	Position     *string `json:"position"`
	Location     *string `json:"location"`
	Achievements *string `json:"achievements"`
	Contact      *string `json:"contact"`
}

// ProfileUpdateResponse echoes the caller's token back with the updated record
type ProfileUpdateResponse struct {
	AthleteResponse
	Token string `json:"token"`
}

// AddVideoRequest represents the payload for linking a new video
type AddVideoRequest struct {
	URL      string `json:"url"`
	Platform string `json:"platform"`
	Title    string `json:"title"`
}

// StatsResponse is the public platform aggregate
type StatsResponse struct {
	Athletes int64 `json:"athletes"`
	Videos   int64 `json:"videos"`
}
