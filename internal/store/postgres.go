package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ATHLETEHUB_BACK-END/internal/models"
	"ATHLETEHUB_BACK-END/internal/store/migrations"
)

const (
	pgUniqueViolation = "23505"

	constraintEmail    = "athletes_email_key"
	constraintPublicID = "athletes_public_id_key"
)

const athleteColumns = `
	id::text, public_id, name, email, password_hash, age, sport, position,
	location, achievements, contact, profile_photo_url, videos::text,
	created_at, updated_at`

// PostgresStore implements AthleteStore over a pgx pool
type PostgresStore struct {
	pool *pgxpool.Pool

	migrateMu sync.Mutex
	migrated  atomic.Bool
}

// NewPostgresStore wraps an existing pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate applies the embedded schema files in name order. Every file is
// idempotent so running it on each boot is safe.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	s.migrateMu.Lock()
	defer s.migrateMu.Unlock()
	if s.migrated.Load() {
		return nil
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := s.pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, wrapErr(err))
		}
	}
	s.migrated.Store(true)
	return nil
}

// ensureSchema migrates on first use when the database was down at boot.
func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	if s.migrated.Load() {
		return nil
	}
	return s.Migrate(ctx)
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (models.Athlete, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return models.Athlete{}, err
	}
	row := s.pool.QueryRow(ctx, `select `+athleteColumns+` from athletes where id = $1 limit 1`, id.String())
	return scanAthlete(row)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (models.Athlete, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return models.Athlete{}, err
	}
	row := s.pool.QueryRow(ctx, `select `+athleteColumns+` from athletes where email = $1 limit 1`, email)
	return scanAthlete(row)
}

func (s *PostgresStore) Create(ctx context.Context, a models.Athlete) (models.Athlete, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return models.Athlete{}, err
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	videos, err := encodeVideos(a.Videos)
	if err != nil {
		return models.Athlete{}, err
	}

	const q = `
insert into athletes (
	id, public_id, name, email, password_hash, age, sport, position, location,
	achievements, contact, profile_photo_url, videos, created_at, updated_at
) values (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::jsonb, now(), now()
)
returning ` + athleteColumns

	row := s.pool.QueryRow(ctx, q,
		a.ID.String(), a.PublicID, a.Name, a.Email, a.PasswordHash, a.Age,
		a.Sport, a.Position, a.Location, a.Achievements, a.Contact,
		a.ProfilePhotoURL, videos,
	)
	return scanAthlete(row)
}

func (s *PostgresStore) Save(ctx context.Context, a models.Athlete) (models.Athlete, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return models.Athlete{}, err
	}
	videos, err := encodeVideos(a.Videos)
	if err != nil {
		return models.Athlete{}, err
	}

	// public_id and created_at are deliberately absent from the SET list.
	const q = `
update athletes set
	name = $2, email = $3, password_hash = $4, age = $5, sport = $6,
	position = $7, location = $8, achievements = $9, contact = $10,
	profile_photo_url = $11, videos = $12::jsonb, updated_at = now()
where id = $1
returning ` + athleteColumns

	row := s.pool.QueryRow(ctx, q,
		a.ID.String(), a.Name, a.Email, a.PasswordHash, a.Age, a.Sport,
		a.Position, a.Location, a.Achievements, a.Contact, a.ProfilePhotoURL,
		videos,
	)
	return scanAthlete(row)
}

func (s *PostgresStore) Search(ctx context.Context, f SearchFilter) ([]models.Athlete, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	where := []string{}
	args := []any{}
	add := func(col, term string) {
		if term == "" {
			return
		}
		args = append(args, "%"+escapeLike(term)+"%")
		where = append(where, fmt.Sprintf(`%s ilike $%d escape '\'`, col, len(args)))
	}
	add("name", f.Name)
	add("sport", f.Sport)
	add("position", f.Position)

	q := `select ` + athleteColumns + ` from athletes`
	if len(where) > 0 {
		q += ` where ` + strings.Join(where, " and ")
	}
	q += ` order by created_at`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	out := []models.Athlete{}
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

func (s *PostgresStore) CountAthletes(ctx context.Context) (int64, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return 0, err
	}
	var n int64
	if err := s.pool.QueryRow(ctx, `select count(*) from athletes`).Scan(&n); err != nil {
		return 0, wrapErr(err)
	}
	return n, nil
}

func (s *PostgresStore) CountVideos(ctx context.Context) (int64, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return 0, err
	}
	var n int64
	err := s.pool.QueryRow(ctx,
		`select coalesce(sum(jsonb_array_length(videos)), 0)::bigint from athletes`).Scan(&n)
	if err != nil {
		return 0, wrapErr(err)
	}
	return n, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return wrapErr(err)
	}
	return nil
}

// ---------- helpers ----------

func scanAthlete(row pgx.Row) (models.Athlete, error) {
	var (
		a      models.Athlete
		id     string
		videos string
	)
	err := row.Scan(
		&id, &a.PublicID, &a.Name, &a.Email, &a.PasswordHash, &a.Age,
		&a.Sport, &a.Position, &a.Location, &a.Achievements, &a.Contact,
		&a.ProfilePhotoURL, &videos, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return models.Athlete{}, wrapErr(err)
	}
	if a.ID, err = uuid.Parse(id); err != nil {
		return models.Athlete{}, fmt.Errorf("parse athlete id: %w", err)
	}
	if err := json.Unmarshal([]byte(videos), &a.Videos); err != nil {
		return models.Athlete{}, fmt.Errorf("decode videos: %w", err)
	}
	if a.Videos == nil {
		a.Videos = []models.Video{}
	}
	return a, nil
}

func encodeVideos(videos []models.Video) (string, error) {
	if videos == nil {
		videos = []models.Video{}
	}
	b, err := json.Marshal(videos)
	if err != nil {
		return "", fmt.Errorf("encode videos: %w", err)
	}
	return string(b), nil
}

// wrapErr maps driver errors onto the package sentinels.
func wrapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case constraintEmail:
			return ErrDuplicateEmail
		case constraintPublicID:
			return ErrDuplicatePublicID
		}
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
