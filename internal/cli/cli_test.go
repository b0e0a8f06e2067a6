package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appteams "github.com/preston-bernstein/owl-schedule-service/internal/app/teams"
	"github.com/preston-bernstein/owl-schedule-service/internal/args"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/store"
	"github.com/preston-bernstein/owl-schedule-service/internal/teststubs"
	"github.com/preston-bernstein/owl-schedule-service/internal/testutil"
)

type countingStore struct {
	schedule.Store
	closes int
}

func (c *countingStore) Close() error {
	c.closes++
	return c.Store.Close()
}

type harness struct {
	deps  Deps
	opens int
	store *countingStore
}

func newHarness() *harness {
	h := &harness{store: &countingStore{Store: store.NewFileStoreFromDays(testutil.SampleSeason())}}
	h.deps = Deps{
		OpenStore: func(ctx context.Context) (schedule.Store, error) {
			h.opens++
			return h.store, nil
		},
		Roster:       appteams.NewService("logos"),
		QueryTimeout: time.Second,
		Now:          testutil.NowAt(time.Date(2019, time.January, 12, 20, 0, 0, 0, time.UTC)),
	}
	return h
}

func execute(deps Deps, argv ...string) (string, error) {
	cmd := NewRootCommand(deps)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(argv)
	err := cmd.Execute()
	return out.String(), err
}

func TestListPrintsRosterWithoutOpeningStore(t *testing.T) {
	h := newHarness()

	for _, argv := range [][]string{{"list"}, {"LIST"}, {"outlaws", "ls"}} {
		out, err := execute(h.deps, argv...)
		require.NoError(t, err, argv)
		assert.True(t, strings.HasPrefix(out, "**0)** `Atlanta Reign`\n"), out)
		assert.Contains(t, out, "**19)** `Washington Justice`")
	}
	assert.Zero(t, h.opens)
}

func TestListJSON(t *testing.T) {
	out, err := execute(newHarness().deps, "list", "-o", "json")
	require.NoError(t, err)

	var roster []appteams.RosterEntry
	require.NoError(t, json.Unmarshal([]byte(out), &roster))
	require.Len(t, roster, 20)
	assert.Equal(t, "Houston Outlaws", roster[7].Name)
}

func TestTeamScheduleDefaultsToScheduleInstruction(t *testing.T) {
	h := newHarness()

	out, err := execute(h.deps, "Houston Outlaws")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Houston Outlaws", lines[0])
	assert.Equal(t, "2019-01-05  4:00 PM  Dallas Fuel @ Houston Outlaws", lines[1])
	assert.Equal(t, "2019-01-12  4:00 PM  Houston Outlaws @ Paris Eternal", lines[2])
	assert.Equal(t, 1, h.opens)
	assert.Equal(t, 1, h.store.closes)
}

func TestTeamScheduleAcceptsIndexAndAlias(t *testing.T) {
	out, err := execute(newHarness().deps, "7", "sched")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Houston Outlaws\n"))
}

func TestTeamScheduleWithoutEvents(t *testing.T) {
	out, err := execute(newHarness().deps, "defiant", "schedule")
	require.NoError(t, err)
	assert.Equal(t, "Toronto Defiant has no scheduled events.\n", out)
}

func TestTeamScheduleJSON(t *testing.T) {
	out, err := execute(newHarness().deps, "--output", "json", "outlaws")
	require.NoError(t, err)

	var resp schedule.TeamScheduleResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Houston Outlaws", resp.Team)
	assert.Len(t, resp.Entries, 2)
}

func TestInvalidArguments(t *testing.T) {
	h := newHarness()

	_, err := execute(h.deps, "Nonexistent Team")
	assert.ErrorIs(t, err, args.ErrInvalidTeamArgument)

	_, err = execute(h.deps, "20")
	assert.ErrorIs(t, err, args.ErrInvalidTeamArgument)

	_, err = execute(h.deps, "outlaws", "dance")
	assert.ErrorIs(t, err, args.ErrInvalidInstructionArgument)

	_, err = execute(h.deps)
	assert.Error(t, err)

	assert.Zero(t, h.opens)
}

func TestReminderIsUnsupported(t *testing.T) {
	_, err := execute(newHarness().deps, "outlaws", "remind")
	assert.ErrorIs(t, err, ErrRemindersUnsupported)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := execute(newHarness().deps, "list", "-o", "yaml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestDay(t *testing.T) {
	out, err := execute(newHarness().deps, "day", "2019-01-06")
	require.NoError(t, err)
	assert.Equal(t, "2019-01-06\n4:00 PM  San Francisco Shock @ Vancouver Titans\n", out)
}

func TestDayDefaultsToToday(t *testing.T) {
	h := newHarness()

	for _, argv := range [][]string{{"day"}, {"day", "today"}} {
		out, err := execute(h.deps, argv...)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "2019-01-12\n"), out)
	}
}

func TestDayTodayUsesLocation(t *testing.T) {
	h := newHarness()
	h.deps.Now = testutil.NowAt(time.Date(2019, time.January, 6, 3, 0, 0, 0, time.UTC))
	h.deps.Location = time.FixedZone("PST", -8*60*60)

	out, err := execute(h.deps, "day")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2019-01-05\n"), out)
}

func TestDayErrors(t *testing.T) {
	h := newHarness()

	_, err := execute(h.deps, "day", "2019-01-07")
	assert.ErrorIs(t, err, schedule.ErrDateNotFound)

	_, err = execute(h.deps, "day", "Jan 7")
	assert.ErrorIs(t, err, schedule.ErrDateConversion)

	assert.Equal(t, h.opens, h.store.closes)
}

func TestDates(t *testing.T) {
	out, err := execute(newHarness().deps, "dates", "--start", "2019-01-06")
	require.NoError(t, err)
	assert.Equal(t, "2019-01-06\n2019-01-12\n", out)
}

func TestDatesJSON(t *testing.T) {
	out, err := execute(newHarness().deps, "dates", "--end", "2019-01-05", "-o", "json")
	require.NoError(t, err)

	var resp schedule.DatesResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "2019-01-05", resp.End)
	assert.Equal(t, []string{"2019-01-05"}, resp.Dates)
}

func TestStoreErrorsPropagateAndStoreIsClosed(t *testing.T) {
	stub := &teststubs.StubStore{Err: schedule.BackendError("query", errors.New("down"))}
	deps := newHarness().deps
	deps.OpenStore = func(ctx context.Context) (schedule.Store, error) { return stub, nil }

	_, err := execute(deps, "dates")
	assert.ErrorIs(t, err, schedule.ErrBackendUnavailable)
	assert.Equal(t, 1, stub.CloseCalls)
}

func TestCloseErrorSurfacesWhenCommandSucceeds(t *testing.T) {
	stub := &teststubs.StubStore{Dates: []string{"2019-01-05"}, CloseErr: errors.New("close failed")}
	deps := newHarness().deps
	deps.OpenStore = func(ctx context.Context) (schedule.Store, error) { return stub, nil }

	_, err := execute(deps, "dates")
	assert.ErrorContains(t, err, "close failed")
}

func TestOpenStoreFailure(t *testing.T) {
	deps := newHarness().deps
	deps.OpenStore = func(ctx context.Context) (schedule.Store, error) {
		return nil, schedule.BackendError("ping", errors.New("refused"))
	}

	_, err := execute(deps, "outlaws")
	assert.ErrorIs(t, err, schedule.ErrBackendUnavailable)
}

func TestCommandErrorsAreLeftToReport(t *testing.T) {
	stub := &teststubs.StubStore{Err: schedule.BackendError("query", errors.New("pq: password authentication failed"))}
	deps := newHarness().deps
	deps.OpenStore = func(ctx context.Context) (schedule.Store, error) { return stub, nil }

	cmd := NewRootCommand(deps)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"dates"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Empty(t, errOut.String())

	logger, logs := testutil.NewBufferLogger()
	var report bytes.Buffer
	Report(&report, logger, err)
	assert.Equal(t, "Error: schedule data unavailable\n", report.String())
	assert.Contains(t, logs.String(), "password authentication failed")
}

func TestUserMessage(t *testing.T) {
	h := newHarness()
	run := func(argv ...string) error {
		_, err := execute(h.deps, argv...)
		require.Error(t, err, argv)
		return err
	}

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"invalid team", run("Nonexistent Team"), "Please provide a valid team name, including their city, or `list` to list available team names."},
		{"malformed date", run("day", "Jan 7"), msgInvalidDate},
		{"empty date", run("day", "2019-01-07"), msgDateNotFound},
		{"reminder", run("outlaws", "remind"), ErrRemindersUnsupported.Error()},
		{"timeout", fmt.Errorf("query: %w", context.DeadlineExceeded), msgTimeout},
		{"close failure", markStoreFailure(errors.New("close failed")), msgUnavailable},
		{"open failure", markStoreFailure(schedule.BackendError("ping", errors.New("dial tcp 10.0.0.1:5432"))), msgUnavailable},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, UserMessage(tc.err), tc.name)
	}
	assert.Contains(t, UserMessage(run("dates", "--bogus")), "unknown flag")
}

func TestMarkStoreFailureKeepsLookupOutcomes(t *testing.T) {
	assert.NoError(t, markStoreFailure(nil))

	for _, err := range []error{
		schedule.ErrDateConversion,
		fmt.Errorf("%w: 2019-01-07", schedule.ErrDateNotFound),
		context.DeadlineExceeded,
	} {
		var sf *storeFailure
		assert.False(t, errors.As(markStoreFailure(err), &sf), err.Error())
	}

	once := markStoreFailure(errors.New("down"))
	assert.Same(t, once, markStoreFailure(once))
}

func TestCompletionOffersTeamsThenInstructions(t *testing.T) {
	deps := newHarness().deps

	out, err := execute(deps, cobra.ShellCompRequestCmd, "")
	require.NoError(t, err)
	assert.Contains(t, out, "list\n")
	assert.Contains(t, out, "Houston Outlaws\n")

	out, err = execute(deps, cobra.ShellCompRequestCmd, "outlaws", "")
	require.NoError(t, err)
	for _, spelling := range args.ValidInstructionArgs() {
		assert.Contains(t, out, spelling+"\n")
	}
	assert.NotContains(t, out, "Houston Outlaws")
}
