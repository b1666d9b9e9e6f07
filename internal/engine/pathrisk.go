package engine

import (
	"fmt"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// SquareRisk is the advisory risk report for one square of a candidate
// path.
type SquareRisk struct {
	Position            game.Position   `json:"position"`
	RequiresDodge       bool            `json:"requires_dodge"`
	TackleZonesLeaving  int             `json:"tackle_zones_leaving"`
	TackleZonesEntering int             `json:"tackle_zones_entering"`
	DodgeTarget         *int            `json:"dodge_target,omitempty"`
	DodgeModifiers      []game.Modifier `json:"dodge_modifiers,omitempty"`
	SuccessProbability  *float64        `json:"success_probability,omitempty"`
	IsRushSquare        bool            `json:"is_rush_square"`
	IsOccupied          bool            `json:"is_occupied"`
	OutOfBounds         bool            `json:"out_of_bounds"`
}

// PathSuggestion is a complete advisory path with per-square and aggregate
// risk. It never reflects actual dice: the executor's movement resolution
// is authoritative.
type PathSuggestion struct {
	PlayerID        string          `json:"player_id"`
	FromPosition    game.Position   `json:"from_position"`
	TargetPosition  game.Position   `json:"target_position"`
	Path            []game.Position `json:"path"`
	MovementCost    int             `json:"movement_cost"`
	RequiresRushing bool            `json:"requires_rushing"`
	RushSquares     int             `json:"rush_squares"`
	TotalRiskScore  float64         `json:"total_risk_score"` // 0 safe .. 1 very risky
	Risks           []SquareRisk    `json:"risks"`
	IsValid         bool            `json:"is_valid"`
	ErrorMessage    string          `json:"error_message,omitempty"`
}

// PathFinder builds straight-line paths and scores their risk. Read-only:
// it never mutates game state and rolls no dice.
type PathFinder struct {
	movement *Movement
}

// NewPathFinder creates a path assessor over the movement engine.
func NewPathFinder(movement *Movement) *PathFinder {
	return &PathFinder{movement: movement}
}

// StraightLinePath walks one step toward the target on both axes per
// iteration (a diagonal-preferring walk) and returns the squares visited,
// excluding the start.
func (f *PathFinder) StraightLinePath(from, to game.Position) []game.Position {
	if from == to {
		return nil
	}

	var path []game.Position
	x, y := from.X, from.Y

	dx := sign(to.X - x)
	dy := sign(to.Y - y)

	for x != to.X || y != to.Y {
		if x != to.X {
			x += dx
		}
		if y != to.Y {
			y += dy
		}
		path = append(path, game.Position{X: x, Y: y})
	}
	return path
}

// AssessSquareRisk scores a single step. When a dodge is needed the
// success probability is (7 - effective target)/6 with the effective
// target clamped to [2,6]; a rush square multiplies in the 5/6 rush
// probability.
func (f *PathFinder) AssessSquareRisk(g *game.GameState, player *game.Player, from, to game.Position, isRushSquare bool) SquareRisk {
	risk := SquareRisk{Position: to, IsRushSquare: isRushSquare}

	risk.OutOfBounds = !to.InBounds()
	if risk.OutOfBounds {
		return risk
	}

	risk.IsOccupied = g.Pitch.IsOccupied(to)
	risk.TackleZonesLeaving = f.movement.TackleZones(g, player.TeamID, from)
	risk.TackleZonesEntering = f.movement.TackleZones(g, player.TeamID, to)
	risk.RequiresDodge = risk.TackleZonesLeaving > 0

	if risk.RequiresDodge {
		target := player.Archetype.AG
		risk.DodgeTarget = &target
		risk.DodgeModifiers = f.movement.DodgeModifiers(g, player, from, to)

		effective := target - game.ModifierTotal(risk.DodgeModifiers)
		effective = clamp(effective, 2, 6)
		prob := float64(7-effective) / 6
		risk.SuccessProbability = &prob
	}

	if isRushSquare {
		rushSuccess := 5.0 / 6.0
		if risk.SuccessProbability != nil {
			combined := *risk.SuccessProbability * rushSuccess
			risk.SuccessProbability = &combined
		} else {
			risk.SuccessProbability = &rushSuccess
		}
	}

	return risk
}

// SuggestPath builds the straight-line path to the target and scores it:
// rush squares beyond remaining movement (more than two invalidates the
// path outright), early termination on the first blocked or off-pitch
// square, and an aggregate risk score equal to the mean failure chance
// over the assessed squares, clamped to [0,1].
func (f *PathFinder) SuggestPath(g *game.GameState, playerID string, target game.Position) (PathSuggestion, error) {
	player, err := g.Player(playerID)
	if err != nil {
		return PathSuggestion{}, err
	}
	current, ok := g.Pitch.PositionOf(playerID)
	if !ok {
		return PathSuggestion{
			PlayerID:       playerID,
			TargetPosition: target,
			TotalRiskScore: 1.0,
			IsValid:        false,
			ErrorMessage:   "player not on pitch",
		}, nil
	}

	suggestion := PathSuggestion{
		PlayerID:       playerID,
		FromPosition:   current,
		TargetPosition: target,
		IsValid:        true,
	}

	path := f.StraightLinePath(current, target)
	if len(path) == 0 {
		return suggestion, nil
	}
	suggestion.Path = path
	suggestion.MovementCost = len(path)

	normalMovement := len(path)
	if remaining := player.MovementRemaining(); normalMovement > remaining {
		normalMovement = remaining
	}
	suggestion.RushSquares = len(path) - normalMovement
	suggestion.RequiresRushing = suggestion.RushSquares > 0

	if suggestion.RushSquares > maxRushSquares {
		suggestion.TotalRiskScore = 1.0
		suggestion.IsValid = false
		suggestion.ErrorMessage = fmt.Sprintf("path requires %d rush squares (max %d)", suggestion.RushSquares, maxRushSquares)
		return suggestion, nil
	}

	from := current
	totalRisk := 0.0
	for i, to := range path {
		risk := f.AssessSquareRisk(g, player, from, to, i >= normalMovement)
		suggestion.Risks = append(suggestion.Risks, risk)

		if risk.OutOfBounds {
			suggestion.IsValid = false
			suggestion.ErrorMessage = fmt.Sprintf("square (%d,%d) is out of bounds", to.X, to.Y)
			break
		}
		if risk.IsOccupied {
			suggestion.IsValid = false
			suggestion.ErrorMessage = fmt.Sprintf("square (%d,%d) is occupied", to.X, to.Y)
			break
		}
		if risk.SuccessProbability != nil {
			totalRisk += 1.0 - *risk.SuccessProbability
		}
		from = to
	}

	if len(suggestion.Risks) > 0 {
		score := totalRisk / float64(len(suggestion.Risks))
		if score > 1.0 {
			score = 1.0
		}
		suggestion.TotalRiskScore = score
	}

	return suggestion, nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
