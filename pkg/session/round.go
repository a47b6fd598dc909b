package session

// CourtAssignment is one court's player group for a single round. In
// round-robin mode the group's positions {0,1} and {2,3} are the two
// fixed partner pairs.
type CourtAssignment struct {
	Court   int   `yaml:"court"`
	Players []int `yaml:"players,flow"`
}

// Round is the full state of one game: the occupied courts in the same
// order as the session's court list, plus everyone sitting out.
type Round struct {
	Number int               `yaml:"round"`
	Courts []CourtAssignment `yaml:"courts"`
	Byes   []int             `yaml:"byes,omitempty,flow"`
}
