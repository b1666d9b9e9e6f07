package game

// Pitch geometry. The origin is the top-left corner; team1 attacks toward
// the high-x end zone and team2 toward the low-x end zone.
const (
	PitchWidth  = 26
	PitchHeight = 15

	// End-zone thresholds: team1 scores at x >= Team1ScoringX, team2 at
	// x <= Team2ScoringX.
	Team1ScoringX = 23
	Team2ScoringX = 2
)

// BallStartPosition is where the ball is placed at kickoff and after a score.
func BallStartPosition() Position { return Position{X: 13, Y: 7} }

// Position is an integer grid coordinate on the 26x15 pitch.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds reports whether the position lies on the pitch.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < PitchWidth && p.Y >= 0 && p.Y < PitchHeight
}

// DistanceTo returns the Manhattan distance, used for pass range bands.
func (p Position) DistanceTo(other Position) int {
	return absInt(p.X-other.X) + absInt(p.Y-other.Y)
}

// IsAdjacent reports whether other is one of the eight neighboring squares.
func (p Position) IsAdjacent(other Position) bool {
	return absInt(p.X-other.X) <= 1 && absInt(p.Y-other.Y) <= 1 && p != other
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
