package teams

import (
	"path/filepath"
	"testing"
)

func TestShortIdentifier(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Houston Outlaws", "Outlaws"},
		{"New York Excelsior", "Excelsior"},
		{"Los Angeles Valiant", "Valiant"},
		{"Shock", "Shock"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ShortIdentifier(tc.in); got != tc.want {
			t.Fatalf("ShortIdentifier(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEveryTeamMapsBackToItsKey(t *testing.T) {
	for _, team := range All() {
		key := KeyFor(team.Name)
		if key != team.Key {
			t.Fatalf("expected key %q for %q, got %q", team.Key, team.Name, key)
		}
		got, ok := ByKey(key)
		if !ok || got.Name != team.Name {
			t.Fatalf("expected ByKey(%q) to return %q, got %+v", key, team.Name, got)
		}
	}
}

func TestRosterInvariants(t *testing.T) {
	if Count() != 20 {
		t.Fatalf("expected 20 teams, got %d", Count())
	}
	keys := map[string]bool{}
	names := map[string]bool{}
	for _, team := range All() {
		if keys[team.Key] {
			t.Fatalf("duplicate key %q", team.Key)
		}
		if names[team.Name] {
			t.Fatalf("duplicate name %q", team.Name)
		}
		keys[team.Key] = true
		names[team.Name] = true
	}
}

func TestNamesFollowRosterOrder(t *testing.T) {
	names := Names()
	if names[0] != "Atlanta Reign" || names[7] != "Houston Outlaws" || names[19] != "Washington Justice" {
		t.Fatalf("unexpected roster order: %v", names)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	if got, _ := At(0); got.Name != "Atlanta Reign" {
		t.Fatalf("expected roster to remain unchanged, got %s", got.Name)
	}
	names := Names()
	names[1] = "mutated"
	if Names()[1] != "Boston Uprising" {
		t.Fatalf("expected names copy")
	}
}

func TestAtBounds(t *testing.T) {
	if _, ok := At(-1); ok {
		t.Fatalf("expected -1 to be out of range")
	}
	if _, ok := At(Count()); ok {
		t.Fatalf("expected %d to be out of range", Count())
	}
	if team, ok := At(7); !ok || team.Name != "Houston Outlaws" {
		t.Fatalf("expected Houston Outlaws at 7, got %+v", team)
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("houston outlaws"); ok {
		t.Fatalf("expected ByName to be case-sensitive")
	}
	if team, ok := ByName("Houston Outlaws"); !ok || team.Key != "outlaws" {
		t.Fatalf("expected outlaws, got %+v", team)
	}
}

func TestLogoPath(t *testing.T) {
	team, _ := ByKey("hunters")
	want := filepath.Join("assets", "img", "logos", "Chengdu_Hunters.png")
	if got := LogoPath(filepath.Join("assets", "img", "logos"), team); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got := LogoPath("x", Team{}); got != "" {
		t.Fatalf("expected empty path for team without logo, got %s", got)
	}
	if team.ShortName() != "Hunters" {
		t.Fatalf("expected short name Hunters, got %s", team.ShortName())
	}
}
