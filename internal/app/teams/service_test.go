package teams

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/owl-schedule-service/internal/args"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/teams"
)

func TestRosterCarriesIndexesAndLogos(t *testing.T) {
	svc := NewService("logos")

	roster := svc.Roster()
	if len(roster) != 20 {
		t.Fatalf("expected 20 teams, got %d", len(roster))
	}
	for i, entry := range roster {
		if entry.Index != i {
			t.Fatalf("expected index %d, got %d", i, entry.Index)
		}
	}
	outlaws := roster[7]
	if outlaws.Name != "Houston Outlaws" || outlaws.Key != "outlaws" {
		t.Fatalf("unexpected entry %+v", outlaws)
	}
	if outlaws.Logo != filepath.Join("logos", "Houston_Outlaws.png") {
		t.Fatalf("unexpected logo path %s", outlaws.Logo)
	}
}

func TestRosterText(t *testing.T) {
	text := NewService("").RosterText()
	if !strings.HasPrefix(text, "**0)** `Atlanta Reign`\n") {
		t.Fatalf("unexpected roster text prefix: %q", text[:40])
	}
	if got := strings.Count(text, "\n"); got != 20 {
		t.Fatalf("expected 20 lines, got %d", got)
	}
}

func TestResolve(t *testing.T) {
	svc := NewService("")

	cases := []struct {
		arg  string
		want string
		list bool
	}{
		{arg: "7", want: "Houston Outlaws"},
		{arg: "outlaws", want: "Houston Outlaws"},
		{arg: "Houston Outlaws", want: "Houston Outlaws"},
		{arg: "LIST", list: true},
	}
	for _, tc := range cases {
		got, err := svc.Resolve(tc.arg)
		if err != nil {
			t.Fatalf("Resolve(%q) unexpected error: %v", tc.arg, err)
		}
		if got.List != tc.list || got.Team.Name != tc.want {
			t.Fatalf("Resolve(%q) = %+v", tc.arg, got)
		}
	}

	if _, err := svc.Resolve("Nonexistent Team"); !errors.Is(err, args.ErrInvalidTeamArgument) {
		t.Fatalf("expected invalid team error, got %v", err)
	}
}

func TestLogo(t *testing.T) {
	svc := NewService("assets")
	roster := svc.Roster()
	if roster[2].Logo != filepath.Join("assets", "Chengdu_Hunters.png") {
		t.Fatalf("unexpected logo %s", roster[2].Logo)
	}
	for _, entry := range roster {
		team, ok := teams.ByKey(entry.Key)
		if !ok {
			t.Fatalf("roster key %s missing from directory", entry.Key)
		}
		if got := svc.Logo(team); got != entry.Logo {
			t.Fatalf("expected Logo(%s) = %s, got %s", entry.Key, entry.Logo, got)
		}
	}
}
