// Package pgstore serves the season from a document table in PostgreSQL.
// Each row holds one day document shaped like the season file:
// {"date": "YYYY-MM-DD", "events": [{"time", "away", "home"}]}.
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
)

// BackendName names the document store in logs and metrics.
const BackendName = "postgres"

// Schema is the DDL for one season table. %s is the quoted table name. The
// generated date column keeps at most one document per date.
const Schema = `CREATE TABLE IF NOT EXISTS %s (
	date text GENERATED ALWAYS AS (doc->>'date') STORED PRIMARY KEY,
	doc  jsonb NOT NULL
)`

const (
	daySQL = `SELECT doc FROM %s WHERE date = $1`

	teamSQL = `SELECT doc FROM %s
WHERE EXISTS (
	SELECT 1 FROM jsonb_array_elements(doc->'events') AS e
	WHERE e->>'away' = $1
	   OR e->>'home' = $1
	   OR regexp_replace(e->>'away', '^.* ', '') = $1
	   OR regexp_replace(e->>'home', '^.* ', '') = $1
)
ORDER BY date`

	datesSQL = `SELECT date FROM %s
WHERE jsonb_array_length(doc->'events') > 0
  AND ($1::text = '' OR date >= $1::text)
  AND ($2::text = '' OR date <= $2::text)
ORDER BY date`
)

var seasonPattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,32}$`)

// Querier is the part of a pgx pool or connection the store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Config locates the document store.
type Config struct {
	URL    string
	Season string
	// MaxConns caps the pool; zero keeps the pgx default.
	MaxConns int
}

// Store implements schedule.Store over a season table.
type Store struct {
	db      Querier
	table   string
	release func()
	once    sync.Once
}

// TableName returns the quoted table name that holds season's documents.
func TableName(season string) (string, error) {
	if !seasonPattern.MatchString(season) {
		return "", fmt.Errorf("invalid season %q", season)
	}
	return pgx.Identifier{"season_" + season}.Sanitize(), nil
}

// Open connects a pool, verifies it with a ping, and returns a Store that
// owns the pool. Callers must Close the store when done.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URL == "" {
		return nil, errors.New("document store url required")
	}
	table, err := TableName(cfg.Season)
	if err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse document store url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, schedule.BackendError("create pool", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, schedule.BackendError("ping", err)
	}
	return &Store{db: pool, table: table, release: pool.Close}, nil
}

// New wraps an existing querier. The caller keeps ownership of db; Close on
// the returned store does not release it.
func New(db Querier, season string) (*Store, error) {
	if db == nil {
		return nil, errors.New("querier required")
	}
	table, err := TableName(season)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, table: table}, nil
}

// DaySchedule fetches the document for date.
func (s *Store) DaySchedule(ctx context.Context, date string) (schedule.Day, bool, error) {
	key, err := schedule.NormalizeDate(date)
	if err != nil {
		return schedule.Day{}, false, err
	}

	var raw []byte
	err = s.db.QueryRow(ctx, fmt.Sprintf(daySQL, s.table), key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.Day{}, false, nil
	}
	if err != nil {
		return schedule.Day{}, false, schedule.BackendError("query day schedule", err)
	}

	day, err := decodeDay(raw)
	if err != nil {
		return schedule.Day{}, false, err
	}
	return day, true, nil
}

// TeamSchedule fetches every day the team plays and flattens it into entries.
// The query narrows candidate days; EventIncludesTeam decides per event so
// both backends agree on matching.
func (s *Store) TeamSchedule(ctx context.Context, team string) ([]schedule.TeamScheduleEntry, error) {
	rows, err := s.db.Query(ctx, fmt.Sprintf(teamSQL, s.table), team)
	if err != nil {
		return nil, schedule.BackendError("query team schedule", err)
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, schedule.BackendError("read team schedule", err)
	}

	days := make([]schedule.Day, 0, len(docs))
	for _, raw := range docs {
		day, err := decodeDay(raw)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	schedule.SortDays(days)
	entries := schedule.FilterTeam(days, team)
	schedule.SortEntries(entries)
	return entries, nil
}

// ScheduledDates lists dates with at least one event inside r.
func (s *Store) ScheduledDates(ctx context.Context, r schedule.DateRange) ([]string, error) {
	r, err := r.Normalize()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(ctx, fmt.Sprintf(datesSQL, s.table), r.Start, r.End)
	if err != nil {
		return nil, schedule.BackendError("query scheduled dates", err)
	}
	dates, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, schedule.BackendError("read scheduled dates", err)
	}
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

// Close releases the pool opened by Open. Later calls are no-ops.
func (s *Store) Close() error {
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
	return nil
}

func decodeDay(raw []byte) (schedule.Day, error) {
	var day schedule.Day
	if err := json.Unmarshal(raw, &day); err != nil {
		return schedule.Day{}, schedule.BackendError("decode day document", err)
	}
	if day.Events == nil {
		day.Events = []schedule.Event{}
	}
	return day, nil
}
