package players

// Fantasy-relevant positions. Roster dumps carry long snappers and practice
// squad spots; only these positions survive normalization.
const (
	PositionQB  = "QB"
	PositionRB  = "RB"
	PositionWR  = "WR"
	PositionTE  = "TE"
	PositionK   = "K"
	PositionDEF = "DEF"
)

// FreeAgentTeam is the team code recorded for players without a roster spot.
const FreeAgentTeam = "FA"

// Player represents the normalized player shape (Sleeper-aligned).
type Player struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Position string     `json:"position"`
	Team     string     `json:"team"`
	Meta     PlayerMeta `json:"meta"`
}

// PlayerMeta holds upstream metadata that rides along but never drives
// matching.
type PlayerMeta struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Status    string `json:"status,omitempty"`
	Age       int    `json:"age,omitempty"`
	YearsExp  int    `json:"yearsExp,omitempty"`
	College   string `json:"college,omitempty"`
}

// IsFantasyPosition reports whether pos is drafted in standard leagues.
func IsFantasyPosition(pos string) bool {
	switch pos {
	case PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDEF:
		return true
	default:
		return false
	}
}
