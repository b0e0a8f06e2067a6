package pgstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/owl-schedule-service/internal/dataset"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/teams"
	"github.com/preston-bernstein/owl-schedule-service/internal/store"
)

const testDatabaseEnv = "OWL_TEST_DATABASE_URL"

// seedSeason creates a throwaway season table holding days and drops it when
// the test ends.
func seedSeason(t *testing.T, ctx context.Context, url string, days []schedule.Day) string {
	t.Helper()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	season := fmt.Sprintf("it_%d", time.Now().UnixNano())
	table, err := TableName(season)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, fmt.Sprintf(Schema, table))
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DROP TABLE IF EXISTS "+table)
	})

	batch := &pgx.Batch{}
	for _, day := range days {
		raw, err := json.Marshal(day)
		require.NoError(t, err)
		batch.Queue(fmt.Sprintf("INSERT INTO %s (doc) VALUES ($1)", table), raw)
	}
	require.NoError(t, pool.SendBatch(ctx, batch).Close())
	return season
}

func TestDocumentStoreMatchesFileStore(t *testing.T) {
	url := os.Getenv(testDatabaseEnv)
	if url == "" {
		t.Skipf("%s not set", testDatabaseEnv)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	days, err := dataset.LoadBundled()
	require.NoError(t, err)
	season := seedSeason(t, ctx, url, days)

	doc, err := Open(ctx, Config{URL: url, Season: season})
	require.NoError(t, err)
	defer doc.Close()
	file := store.NewFileStoreFromDays(days)

	for _, team := range teams.All() {
		for _, arg := range []string{team.Name, team.ShortName()} {
			want, err := file.TeamSchedule(ctx, arg)
			require.NoError(t, err)
			got, err := doc.TeamSchedule(ctx, arg)
			require.NoError(t, err)
			assert.Equal(t, want, got, arg)
		}
	}

	for _, date := range []string{"2019-01-05", "2019-01-07", "2019-01-27"} {
		wantDay, wantOK, err := file.DaySchedule(ctx, date)
		require.NoError(t, err)
		gotDay, gotOK, err := doc.DaySchedule(ctx, date)
		require.NoError(t, err)
		assert.Equal(t, wantOK, gotOK, date)
		assert.Equal(t, wantDay, gotDay, date)
	}

	for _, r := range []schedule.DateRange{
		{},
		{Start: "2019-01-10"},
		{Start: "2019-01-10", End: "2019-01-20"},
		{Start: "2099-01-01"},
	} {
		want, err := file.ScheduledDates(ctx, r)
		require.NoError(t, err)
		got, err := doc.ScheduledDates(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%+v", r)
	}
}
