package teams

import (
	"path/filepath"
	"strings"
)

// roster is ordered; numeric team arguments index into it.
var roster = []Team{
	{Key: "reign", Name: "Atlanta Reign", Logo: "Atlanta_Reign.png"},
	{Key: "uprising", Name: "Boston Uprising", Logo: "Boston_Uprising.png"},
	{Key: "hunters", Name: "Chengdu Hunters", Logo: "Chengdu_Hunters.png"},
	{Key: "fuel", Name: "Dallas Fuel", Logo: "Dallas_Fuel.png"},
	{Key: "mayhem", Name: "Florida Mayhem", Logo: "Florida_Mayhem.png"},
	{Key: "charge", Name: "Guangzhou Charge", Logo: "Guangzhou_Charge.png"},
	{Key: "spark", Name: "Hangzhou Spark", Logo: "Hangzhou_Spark.png"},
	{Key: "outlaws", Name: "Houston Outlaws", Logo: "Houston_Outlaws.png"},
	{Key: "spitfire", Name: "London Spitfire", Logo: "London_Spitfire.png"},
	{Key: "gladiators", Name: "Los Angeles Gladiators", Logo: "Los_Angeles_Gladiators.png"},
	{Key: "valiant", Name: "Los Angeles Valiant", Logo: "Los_Angeles_Valiant.png"},
	{Key: "excelsior", Name: "New York Excelsior", Logo: "New_York_Excelsior.png"},
	{Key: "eternal", Name: "Paris Eternal", Logo: "Paris_Eternal.png"},
	{Key: "fusion", Name: "Philadelphia Fusion", Logo: "Philadelphia_Fusion.png"},
	{Key: "shock", Name: "San Francisco Shock", Logo: "San_Francisco_Shock.png"},
	{Key: "dynasty", Name: "Seoul Dynasty", Logo: "Seoul_Dynasty.png"},
	{Key: "dragons", Name: "Shanghai Dragons", Logo: "Shanghai_Dragons.png"},
	{Key: "defiant", Name: "Toronto Defiant", Logo: "Toronto_Defiant.png"},
	{Key: "titans", Name: "Vancouver Titans", Logo: "Vancouver_Titans.png"},
	{Key: "justice", Name: "Washington Justice", Logo: "Washington_Justice.png"},
}

var (
	byKey  = make(map[string]Team, len(roster))
	byName = make(map[string]Team, len(roster))
)

func init() {
	for _, t := range roster {
		byKey[t.Key] = t
		byName[t.Name] = t
	}
}

// ShortIdentifier returns the part of a full team name after its last space,
// so "New York Excelsior" becomes "Excelsior". Case is preserved.
func ShortIdentifier(fullName string) string {
	return fullName[strings.LastIndex(fullName, " ")+1:]
}

// KeyFor returns the directory key derived from a full team name.
func KeyFor(fullName string) string {
	return strings.ToLower(ShortIdentifier(fullName))
}

// Count returns the roster size.
func Count() int {
	return len(roster)
}

// All returns a copy of the roster in canonical order.
func All() []Team {
	out := make([]Team, len(roster))
	copy(out, roster)
	return out
}

// Names returns the canonical full names in roster order.
func Names() []string {
	out := make([]string, len(roster))
	for i, t := range roster {
		out[i] = t.Name
	}
	return out
}

// At returns the team at the given roster index.
func At(index int) (Team, bool) {
	if index < 0 || index >= len(roster) {
		return Team{}, false
	}
	return roster[index], true
}

// ByKey looks up a team by its lower-case short identifier.
func ByKey(key string) (Team, bool) {
	t, ok := byKey[key]
	return t, ok
}

// ByName looks up a team by its exact canonical full name.
func ByName(name string) (Team, bool) {
	t, ok := byName[name]
	return t, ok
}

// LogoPath joins the logos directory with the team's logo file name.
func LogoPath(dir string, t Team) string {
	if t.Logo == "" {
		return ""
	}
	return filepath.Join(dir, t.Logo)
}
