package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps database access helpers.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const ensureSchemaSQL = `
    CREATE TABLE IF NOT EXISTS reminders (
        id          uuid PRIMARY KEY,
        created_at  timestamptz NOT NULL DEFAULT now(),
        name        text NOT NULL,
        phone       text NOT NULL,
        category    text NOT NULL,
        event_id    integer,
        event_name  text,
        next_date   text,
        hindu_month text,
        tithi_name  text,
        paksha      text,
        frequency   text,
        consent     boolean NOT NULL
    )
`

// EnsureSchema creates the reminders table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, ensureSchemaSQL)
	return err
}

// Reminder is one accepted reminder submission.
type Reminder struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Category   string    `json:"category"`
	EventID    *int      `json:"event_id,omitempty"`
	EventName  string    `json:"event_name,omitempty"`
	NextDate   string    `json:"next_date,omitempty"`
	HinduMonth string    `json:"hindu_month,omitempty"`
	TithiName  string    `json:"tithi_name,omitempty"`
	Paksha     string    `json:"paksha,omitempty"`
	Frequency  string    `json:"frequency,omitempty"`
	Consent    bool      `json:"consent"`
}

const insertReminderSQL = `
    INSERT INTO reminders (
        id, created_at, name, phone, category, event_id, event_name,
        next_date, hindu_month, tithi_name, paksha, frequency, consent
    )
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

// InsertReminder persists one reminder row, assigning id/created_at when
// unset, and returns the stored record.
func (s *Store) InsertReminder(ctx context.Context, r Reminder) (Reminder, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx, insertReminderSQL,
		r.ID,
		r.CreatedAt,
		r.Name,
		r.Phone,
		r.Category,
		r.EventID,
		r.EventName,
		r.NextDate,
		r.HinduMonth,
		r.TithiName,
		r.Paksha,
		r.Frequency,
		r.Consent,
	)
	if err != nil {
		return Reminder{}, err
	}
	return r, nil
}

const listRemindersSQL = `
    SELECT id, created_at, name, phone, category, event_id, event_name,
           next_date, hindu_month, tithi_name, paksha, frequency, consent
    FROM reminders
    ORDER BY created_at DESC
    LIMIT $1
`

// ListReminders returns the most recent reminder submissions.
func (s *Store) ListReminders(ctx context.Context, limit int) ([]Reminder, error) {
	rows, err := s.pool.Query(ctx, listRemindersSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]Reminder, 0)
	for rows.Next() {
		var r Reminder
		if err := rows.Scan(
			&r.ID,
			&r.CreatedAt,
			&r.Name,
			&r.Phone,
			&r.Category,
			&r.EventID,
			&r.EventName,
			&r.NextDate,
			&r.HinduMonth,
			&r.TithiName,
			&r.Paksha,
			&r.Frequency,
			&r.Consent,
		); err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}
