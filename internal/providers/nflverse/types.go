package nflverse

// SourceName labels nflverse in logs, metrics and degradation notes.
const SourceName = "nflverse"

// Column names as published in the nflverse player_stats release files.
const (
	colPlayerID      = "player_id"
	colPlayerName    = "player_name"
	colDisplayName   = "player_display_name"
	colPosition      = "position"
	colRecentTeam    = "recent_team"
	colSeason        = "season"
	colWeek          = "week"
	colPassingYards  = "passing_yards"
	colPassingTDs    = "passing_tds"
	colInterceptions = "interceptions"
	colRushingYards  = "rushing_yards"
	colRushingTDs    = "rushing_tds"
	colReceptions    = "receptions"
	colReceivingYds  = "receiving_yards"
	colReceivingTDs  = "receiving_tds"
)
