package teams

// Team is a member of the league roster.
type Team struct {
	// Key is the lower-cased short identifier, e.g. "outlaws".
	Key string `json:"key"`
	// Name is the canonical full name, e.g. "Houston Outlaws".
	Name string `json:"name"`
	// Logo is the PNG file name of the team's logo inside the logos directory.
	Logo string `json:"logo"`
}

// ShortName returns the display form of the short identifier ("Outlaws").
func (t Team) ShortName() string {
	return ShortIdentifier(t.Name)
}
