// Package service implements registration, login and owner-scoped profile
// mutation for athletes.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"ATHLETEHUB_BACK-END/internal/logger"
	"ATHLETEHUB_BACK-END/internal/metrics"
	"ATHLETEHUB_BACK-END/internal/models"
	"ATHLETEHUB_BACK-END/internal/store"
)

// maxPublicIDAttempts bounds retries when a generated public id collides.
const maxPublicIDAttempts = 5

// Hasher hashes and verifies passwords
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer mints bearer tokens for an athlete id
type TokenIssuer interface {
	Issue(athleteID uuid.UUID) (string, error)
}

// MediaIngestor uploads a photo buffer and returns its URL
type MediaIngestor interface {
	Ingest(ctx context.Context, buf []byte) (string, error)
}

// ProfileService orchestrates every athlete operation
type ProfileService struct {
	store  store.AthleteStore
	hasher Hasher
	tokens TokenIssuer
	media  MediaIngestor
	log    logger.Logger

	newPublicID func() (string, error)

	dummyOnce sync.Once
	dummyHash string
}

// Option configures a ProfileService
type Option func(*ProfileService)

// WithLogger sets the service logger.
func WithLogger(l logger.Logger) Option {
	return func(s *ProfileService) { s.log = l }
}

// WithPublicIDGenerator replaces the public id source.
func WithPublicIDGenerator(gen func() (string, error)) Option {
	return func(s *ProfileService) { s.newPublicID = gen }
}

// NewProfileService creates a ProfileService
func NewProfileService(st store.AthleteStore, hasher Hasher, tokens TokenIssuer, ingestor MediaIngestor, opts ...Option) *ProfileService {
	s := &ProfileService{
		store:       st,
		hasher:      hasher,
		tokens:      tokens,
		media:       ingestor,
		log:         logger.Nop(),
		newPublicID: models.NewPublicID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterInput carries a new athlete's fields
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Age          int
	Sport        string
	Position     string
	Location     string
	Achievements string
	Contact      string
	Photo        []byte
}

func (in RegisterInput) validate() error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", in.Name}, {"email", in.Email}, {"password", in.Password},
		{"sport", in.Sport}, {"position", in.Position}, {"location", in.Location},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if in.Age <= 0 {
		missing = append(missing, "age")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// AuthResult is a sanitized athlete with a freshly minted token
type AuthResult struct {
	Athlete models.Athlete
	Token   string
}

// Register creates an athlete account and issues a token
func (s *ProfileService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	if err := in.validate(); err != nil {
		return AuthResult{}, err
	}

	_, err := s.store.FindByEmail(ctx, in.Email)
	if err == nil {
		return AuthResult{}, ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		return AuthResult{}, s.storeFault(ctx, "find by email", err)
	}

	// Photo goes first so a failed upload leaves nothing behind.
	var photoURL string
	if len(in.Photo) > 0 {
		if photoURL, err = s.ingest(ctx, in.Photo); err != nil {
			return AuthResult{}, err
		}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("register: %w", err)
	}

	created, err := s.create(ctx, models.Athlete{
		ID:              uuid.New(),
		Name:            in.Name,
		Email:           in.Email,
		PasswordHash:    hash,
		Age:             in.Age,
		Sport:           in.Sport,
		Position:        in.Position,
		Location:        in.Location,
		Achievements:    in.Achievements,
		Contact:         in.Contact,
		ProfilePhotoURL: photoURL,
		Videos:          []models.Video{},
	})
	if err != nil {
		return AuthResult{}, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("register: %w", err)
	}

	metrics.RecordRegistration()
	s.log.Info(ctx, "athlete registered", logger.String("athlete_id", created.ID.String()), logger.String("public_id", created.PublicID))
	return AuthResult{Athlete: created.Sanitized(), Token: token}, nil
}

// create inserts a with a fresh public id, drawing again on collision.
func (s *ProfileService) create(ctx context.Context, a models.Athlete) (models.Athlete, error) {
	for attempt := 1; ; attempt++ {
		publicID, err := s.newPublicID()
		if err != nil {
			return models.Athlete{}, fmt.Errorf("register: %w", err)
		}
		a.PublicID = publicID

		created, err := s.store.Create(ctx, a)
		switch {
		case err == nil:
			return created, nil
		case errors.Is(err, store.ErrDuplicatePublicID) && attempt < maxPublicIDAttempts:
			s.log.Warn(ctx, "public id collision, retrying", logger.String("public_id", publicID), logger.Int("attempt", attempt))
			continue
		case errors.Is(err, store.ErrDuplicateEmail):
			return models.Athlete{}, ErrDuplicateEmail
		default:
			return models.Athlete{}, s.storeFault(ctx, "create", err)
		}
	}
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password produce the same error.
func (s *ProfileService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	athlete, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, s.storeFault(ctx, "find by email", err)
		}
		// Burn a comparison so unknown emails cost the same as wrong passwords.
		s.hasher.Verify(password, s.placeholderHash())
		metrics.RecordAuthFailure("invalid_credentials")
		return AuthResult{}, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, athlete.PasswordHash) {
		metrics.RecordAuthFailure("invalid_credentials")
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(athlete.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("login: %w", err)
	}
	return AuthResult{Athlete: athlete.Sanitized(), Token: token}, nil
}

func (s *ProfileService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		if h, err := s.hasher.Hash(uuid.NewString()); err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}

// GetMyProfile returns the caller's own record
func (s *ProfileService) GetMyProfile(ctx context.Context, id uuid.UUID) (models.Athlete, error) {
	return s.find(ctx, id)
}

// GetAthlete returns any athlete by internal id. A malformed id is reported
// as not found.
func (s *ProfileService) GetAthlete(ctx context.Context, rawID string) (models.Athlete, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.Athlete{}, ErrNotFound
	}
	return s.find(ctx, id)
}

func (s *ProfileService) find(ctx context.Context, id uuid.UUID) (models.Athlete, error) {
	athlete, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Athlete{}, ErrNotFound
		}
		return models.Athlete{}, s.storeFault(ctx, "find by id", err)
	}
	return athlete.Sanitized(), nil
}

// ProfileUpdate carries a partial update. Nil fields were not sent.
type ProfileUpdate struct {
	Name         *string
	Email        *string
	Password     *string
	Age          *int
	Sport        *string
	Position     *string
	Location     *string
	Achievements *string
	Contact      *string
	Photo        []byte
}

// merge applies present fields. Empty strings and a zero age keep the
// existing value, matching the legacy clients' expectations.
func (u ProfileUpdate) merge(a *models.Athlete) {
	setString := func(dst *string, src *string) {
		if src != nil && *src != "" {
			*dst = *src
		}
	}
	setString(&a.Name, u.Name)
	setString(&a.Email, u.Email)
	setString(&a.Sport, u.Sport)
	setString(&a.Position, u.Position)
	setString(&a.Location, u.Location)
	setString(&a.Achievements, u.Achievements)
	setString(&a.Contact, u.Contact)
	if u.Age != nil && *u.Age != 0 {
		a.Age = *u.Age
	}
}

// UpdateProfile merges u into the caller's record. The photo is ingested
// before anything is merged, and the password is hashed only when sent.
func (s *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, u ProfileUpdate) (models.Athlete, error) {
	athlete, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Athlete{}, ErrNotFound
		}
		return models.Athlete{}, s.storeFault(ctx, "find by id", err)
	}

	var photoURL string
	if len(u.Photo) > 0 {
		if photoURL, err = s.ingest(ctx, u.Photo); err != nil {
			return models.Athlete{}, err
		}
	}

	u.merge(&athlete)
	if photoURL != "" {
		athlete.ProfilePhotoURL = photoURL
	}
	if u.Password != nil && *u.Password != "" {
		hash, err := s.hasher.Hash(*u.Password)
		if err != nil {
			return models.Athlete{}, fmt.Errorf("update profile: %w", err)
		}
		athlete.PasswordHash = hash
	}

	saved, err := s.save(ctx, athlete)
	if err != nil {
		return models.Athlete{}, err
	}
	return saved.Sanitized(), nil
}

// VideoInput describes a video link to add
type VideoInput struct {
	URL      string
	Platform string
	Title    string
}

// AddVideo appends a video to the caller's list and returns the full list
func (s *ProfileService) AddVideo(ctx context.Context, id uuid.UUID, in VideoInput) ([]models.Video, error) {
	if id == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	platform := models.Platform(in.Platform)
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrInvalidVideo, in.Platform)
	}

	athlete, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.storeFault(ctx, "find by id", err)
	}

	athlete.Videos = append(athlete.Videos, models.Video{
		ID:       uuid.New(),
		URL:      in.URL,
		Platform: platform,
		Title:    in.Title,
	})

	saved, err := s.save(ctx, athlete)
	if err != nil {
		return nil, err
	}
	return models.CloneVideos(saved.Videos), nil
}

// RemoveVideo drops the video with videoID from the caller's list. An
// unknown id leaves the list unchanged.
func (s *ProfileService) RemoveVideo(ctx context.Context, id uuid.UUID, videoID string) ([]models.Video, error) {
	if id == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	athlete, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.storeFault(ctx, "find by id", err)
	}

	kept := make([]models.Video, 0, len(athlete.Videos))
	for _, v := range athlete.Videos {
		if v.ID.String() != videoID {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(athlete.Videos) {
		return kept, nil
	}

	athlete.Videos = kept
	saved, err := s.save(ctx, athlete)
	if err != nil {
		return nil, err
	}
	return models.CloneVideos(saved.Videos), nil
}

// ResetPassword sets a new password for the athlete holding email, provided
// publicID matches the record.
func (s *ProfileService) ResetPassword(ctx context.Context, email, publicID, newPassword string) error {
	athlete, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return s.storeFault(ctx, "find by email", err)
	}
	if athlete.PublicID != publicID {
		metrics.RecordAuthFailure("invalid_public_id")
		return ErrInvalidPublicID
	}
	if newPassword == "" {
		return fmt.Errorf("%w: missing newPassword", ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	athlete.PasswordHash = hash

	_, err = s.save(ctx, athlete)
	return err
}

// Stats is the public platform aggregate
type Stats struct {
	Athletes int64
	Videos   int64
}

// GetStats counts athletes and linked videos
func (s *ProfileService) GetStats(ctx context.Context) (Stats, error) {
	athletes, err := s.store.CountAthletes(ctx)
	if err != nil {
		return Stats{}, s.storeFault(ctx, "count athletes", err)
	}
	videos, err := s.store.CountVideos(ctx)
	if err != nil {
		return Stats{}, s.storeFault(ctx, "count videos", err)
	}
	return Stats{Athletes: athletes, Videos: videos}, nil
}

// SearchFilter narrows athlete listings. Terms are matched as
// case-insensitive substrings and ANDed.
type SearchFilter struct {
	Search   string
	Sport    string
	Position string
}

// Search lists sanitized athletes matching f
func (s *ProfileService) Search(ctx context.Context, f SearchFilter) ([]models.Athlete, error) {
	found, err := s.store.Search(ctx, store.SearchFilter{Name: f.Search, Sport: f.Sport, Position: f.Position})
	if err != nil {
		return nil, s.storeFault(ctx, "search", err)
	}
	out := make([]models.Athlete, 0, len(found))
	for _, a := range found {
		out = append(out, a.Sanitized())
	}
	return out, nil
}

// ---------- helpers ----------

func (s *ProfileService) save(ctx context.Context, a models.Athlete) (models.Athlete, error) {
	saved, err := s.store.Save(ctx, a)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			return models.Athlete{}, ErrDuplicateEmail
		case errors.Is(err, store.ErrNotFound):
			return models.Athlete{}, ErrNotFound
		}
		return models.Athlete{}, s.storeFault(ctx, "save", err)
	}
	return saved, nil
}

func (s *ProfileService) ingest(ctx context.Context, buf []byte) (string, error) {
	url, err := s.media.Ingest(ctx, buf)
	if err != nil {
		metrics.RecordMediaUpload("failed")
		s.log.Warn(ctx, "photo upload failed", logger.Error(err))
		return "", fmt.Errorf("%w: %w", ErrMediaUploadFailed, err)
	}
	metrics.RecordMediaUpload("ok")
	return url, nil
}

func (s *ProfileService) storeFault(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, "store operation failed", logger.String("op", op), logger.Error(err))
	return fmt.Errorf("%s: %w", op, translate(err))
}
