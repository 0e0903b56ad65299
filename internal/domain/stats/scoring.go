package stats

import (
	"math"

	"draftline/internal/domain/formats"
)

// Standard scoring weights. PPR variants differ only in the per-reception
// bonus, applied on top of the standard score.
const (
	pointsPerPassYd  = 0.04
	pointsPerPassTD  = 4
	pointsPerInt     = -2
	pointsPerRushYd  = 0.1
	pointsPerRecYd   = 0.1
	pointsPerScrimTD = 6
)

// Points carries one stat line's fantasy value in every supported format.
type Points struct {
	Standard float64 `json:"standard"`
	HalfPPR  float64 `json:"halfPpr"`
	PPR      float64 `json:"ppr"`
}

// Score computes the fantasy point total of a stat line under one format,
// rounded to two decimals.
func Score(line StatLine, f formats.Format) float64 {
	points := line.PassYds*pointsPerPassYd +
		line.PassTDs*pointsPerPassTD +
		line.Interceptions*pointsPerInt +
		(line.RushYds+line.RecYds)*pointsPerRushYd +
		(line.RushTDs+line.RecTDs)*pointsPerScrimTD +
		line.Receptions*f.ReceptionWeight()
	return round2(points)
}

// PointsFor scores a stat line under all supported formats.
func PointsFor(line StatLine) Points {
	return Points{
		Standard: Score(line, formats.Standard),
		HalfPPR:  Score(line, formats.HalfPPR),
		PPR:      Score(line, formats.PPR),
	}
}

// PerGame divides the points by games played, rounded to two decimals.
// Zero games yields zero points rather than a division blowup.
func (p Points) PerGame(games int) Points {
	if games <= 0 {
		return Points{}
	}
	n := float64(games)
	return Points{
		Standard: round2(p.Standard / n),
		HalfPPR:  round2(p.HalfPPR / n),
		PPR:      round2(p.PPR / n),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
