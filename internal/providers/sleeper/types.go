package sleeper

// SourceName labels sleeper in logs, metrics and degradation notes.
const SourceName = "sleeper"

// playerResponse mirrors one entry of the /players/nfl dump. The dump keys
// entries by player ID and carries far more fields than these; the rest are
// ignored on decode.
type playerResponse struct {
	PlayerID         string   `json:"player_id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	FullName         string   `json:"full_name"`
	Position         string   `json:"position"`
	FantasyPositions []string `json:"fantasy_positions"`
	Team             string   `json:"team"`
	Status           string   `json:"status"`
	Age              int      `json:"age"`
	YearsExp         int      `json:"years_exp"`
	College          string   `json:"college"`
}
