package engine

import (
	"fmt"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// standing up from prone consumes 3 squares of movement allowance
const standUpCost = 3

// maximum extra squares beyond movement allowance, each needing a 2+ roll
const maxRushSquares = 2

const rushTarget = 2

// Movement resolves player movement: tackle zones, dodges, and rushing.
type Movement struct {
	dice *Roller
}

// NewMovement creates a movement engine over the given dice roller.
func NewMovement(dice *Roller) *Movement {
	return &Movement{dice: dice}
}

// TackleZones counts standing opposing players adjacent to pos. Prone,
// stunned and removed players project no tackle zone.
func (m *Movement) TackleZones(g *game.GameState, teamID string, pos game.Position) int {
	opposingID := g.OpposingTeamID(teamID)
	count := 0
	for _, adjID := range g.Pitch.AdjacentPlayers(pos) {
		p, err := g.Player(adjID)
		if err != nil {
			continue
		}
		if p.TeamID == opposingID && p.IsStanding() {
			count++
		}
	}
	return count
}

// RequiresDodge reports whether moving out of from needs a dodge roll:
// leaving any enemy tackle zone does, regardless of the destination.
func (m *Movement) RequiresDodge(g *game.GameState, player *game.Player, from, to game.Position) bool {
	return m.TackleZones(g, player.TeamID, from) > 0
}

// DodgeModifiers builds the named modifier list for a dodge into to:
// -1 per enemy tackle zone at the destination, +1 for a dodging skill.
func (m *Movement) DodgeModifiers(g *game.GameState, player *game.Player, from, to game.Position) []game.Modifier {
	var mods []game.Modifier
	if zones := m.TackleZones(g, player.TeamID, to); zones > 0 {
		mods = append(mods, game.Modifier{Cause: "tackle_zones", Value: -zones})
	}
	if player.HasSkill(game.SkillBlink) || player.HasSkill(game.SkillSidestep) {
		mods = append(mods, game.Modifier{Cause: "dodge_skill", Value: 1})
	}
	return mods
}

// AttemptDodge rolls a dodge against the player's agility target.
func (m *Movement) AttemptDodge(g *game.GameState, player *game.Player, from, to game.Position) game.DiceRoll {
	mods := m.DodgeModifiers(g, player, from, to)
	return m.dice.RollTarget(player.Archetype.AG, game.RollDodge, mods)
}

// CanMoveTo checks the static legality of entering a square.
func (m *Movement) CanMoveTo(g *game.GameState, player *game.Player, target game.Position) (bool, string) {
	if !player.IsActive() {
		return false, fmt.Sprintf("player is %s", player.State)
	}
	if !player.IsStanding() {
		return false, "player must be standing to move"
	}
	if !target.InBounds() {
		return false, "position is outside pitch bounds"
	}
	if g.Pitch.IsOccupied(target) {
		return false, "position is occupied"
	}
	return true, ""
}

// MovePlayer walks the player square by square along path. Squares beyond
// the remaining movement allowance, up to two, are rush squares each
// needing an independent 2+ roll. A failed dodge or rush stops traversal
// immediately and knocks the player prone; movement already completed is
// kept. Returns the dice rolled in order and a reason when the move did
// not complete.
func (m *Movement) MovePlayer(g *game.GameState, playerID string, path []game.Position, allowRush bool) (bool, []game.DiceRoll, string) {
	var rolls []game.DiceRoll

	player, err := g.Player(playerID)
	if err != nil {
		return false, rolls, err.Error()
	}
	if len(path) == 0 {
		return false, rolls, "no path provided"
	}
	current, ok := g.Pitch.PositionOf(playerID)
	if !ok {
		return false, rolls, "player not on pitch"
	}

	normalMovement := len(path)
	if remaining := player.MovementRemaining(); normalMovement > remaining {
		normalMovement = remaining
	}
	rushNeeded := len(path) - normalMovement
	if rushNeeded > 0 {
		if !allowRush {
			return false, rolls, "rushing not allowed for this action"
		}
		if rushNeeded > maxRushSquares {
			return false, rolls, fmt.Sprintf("can only rush up to %d squares", maxRushSquares)
		}
	}

	for i, target := range path {
		if ok, reason := m.CanMoveTo(g, player, target); !ok {
			return false, rolls, reason
		}
		if !current.IsAdjacent(target) {
			return false, rolls, "can only move to adjacent squares"
		}

		if m.RequiresDodge(g, player, current, target) {
			dodge := m.AttemptDodge(g, player, current, target)
			rolls = append(rolls, dodge)
			if !dodge.Success {
				player.KnockDown()
				return false, rolls, "dodge failed"
			}
		}

		if i >= normalMovement {
			rush := m.dice.RollTarget(rushTarget, game.RollRush, nil)
			rolls = append(rolls, rush)
			if !rush.Success {
				player.KnockDown()
				return false, rolls, "rush failed"
			}
		}

		if err := g.Pitch.MovePlayer(playerID, target); err != nil {
			return false, rolls, err.Error()
		}
		current = target
		player.UseMovement(1)
	}

	return true, rolls, ""
}

// StandUp raises a prone player, consuming 3 movement. Fails without dice
// when the player is not prone or lacks the movement.
func (m *Movement) StandUp(player *game.Player) (bool, string) {
	if player.State != game.StateProne {
		return false, "player is not prone"
	}
	if player.MovementRemaining() < standUpCost {
		return false, fmt.Sprintf("not enough movement to stand up (requires %d)", standUpCost)
	}
	player.State = game.StateStanding
	player.UseMovement(standUpCost)
	return true, ""
}
