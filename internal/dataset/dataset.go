package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
)

// BundledSeason names the season shipped with the binary.
const BundledSeason = "2019"

//go:embed 2019-01_Schedule.json
var bundled []byte

// LoadBundled decodes the season embedded in the binary.
func LoadBundled() ([]schedule.Day, error) {
	return Decode(bytes.NewReader(bundled))
}

// Load reads a season file from disk. An empty path loads the bundled season.
// Files hold an ordered JSON array of {date, events: [{time, away, home}]}.
func Load(path string) ([]schedule.Day, error) {
	if path == "" {
		return LoadBundled()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	days, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load season %s: %w", path, err)
	}
	return days, nil
}

// Decode parses and validates a season document. Every date must be a
// zero-padded YYYY-MM-DD value and appear at most once.
func Decode(r io.Reader) ([]schedule.Day, error) {
	if r == nil {
		return nil, errors.New("season reader required")
	}
	var days []schedule.Day
	if err := json.NewDecoder(r).Decode(&days); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(days))
	for i, day := range days {
		date, err := schedule.NormalizeDate(day.Date)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", i, err)
		}
		if _, dup := seen[date]; dup {
			return nil, fmt.Errorf("day %d: duplicate date %s", i, date)
		}
		seen[date] = struct{}{}
		days[i].Date = date
		if days[i].Events == nil {
			days[i].Events = []schedule.Event{}
		}
	}
	return days, nil
}
