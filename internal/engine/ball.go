package engine

import (
	"fmt"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// PassRange bands for the hurl modifier, by Manhattan distance.
const (
	RangeQuick    = "quick"     // <= 3, +1
	RangeShort    = "short"     // <= 6, +0
	RangeLong     = "long"      // <= 12, -1
	RangeLongBomb = "long_bomb" // beyond, -2
)

// Ball resolves pickup, catching, passing, scatter and hand-offs.
type Ball struct {
	dice     *Roller
	movement *Movement
}

// NewBall creates a ball engine sharing the movement engine's tackle-zone
// counting.
func NewBall(dice *Roller, movement *Movement) *Ball {
	return &Ball{dice: dice, movement: movement}
}

// AttemptPickup rolls the player's agility to scoop a loose ball at its
// square. Failure scatters the ball and leaves it loose.
func (b *Ball) AttemptPickup(g *game.GameState, player *game.Player) (bool, game.DiceRoll, error) {
	pos, ok := g.Pitch.PositionOf(player.ID)
	if !ok {
		return false, game.DiceRoll{}, fmt.Errorf("player %s not on pitch", player.ID)
	}

	var mods []game.Modifier
	if zones := b.movement.TackleZones(g, player.TeamID, pos); zones > 0 {
		mods = append(mods, game.Modifier{Cause: "tackle_zones", Value: -zones})
	}
	if player.HasSkill(game.SkillChainOfCustody) {
		mods = append(mods, game.Modifier{Cause: "sure_hands", Value: 1})
	}

	roll := b.dice.RollTarget(player.Archetype.AG, game.RollPickup, mods)
	if roll.Success {
		if err := g.Pitch.PickUpBall(player.ID); err != nil {
			return false, roll, err
		}
		return true, roll, nil
	}
	b.ScatterBall(g)
	return false, roll, nil
}

// AttemptCatch rolls the player's agility to catch a ball arriving at its
// square. Failure scatters the ball.
func (b *Ball) AttemptCatch(g *game.GameState, player *game.Player) (bool, game.DiceRoll) {
	var mods []game.Modifier
	if pos, ok := g.Pitch.PositionOf(player.ID); ok {
		if zones := b.movement.TackleZones(g, player.TeamID, pos); zones > 0 {
			mods = append(mods, game.Modifier{Cause: "tackle_zones", Value: -zones})
		}
	}
	if player.HasSkill(game.SkillQuickGrab) {
		mods = append(mods, game.Modifier{Cause: "catch_skill", Value: 1})
	}

	roll := b.dice.RollTarget(player.Archetype.AG, game.RollCatch, mods)
	if roll.Success {
		if err := g.Pitch.PickUpBall(player.ID); err == nil {
			return true, roll
		}
		return false, roll
	}
	b.ScatterBall(g)
	return false, roll
}

// ScatterBall bounces a loose ball one square in a random direction,
// clamped to the pitch so it is never thrown off-grid.
func (b *Ball) ScatterBall(g *game.GameState) game.Position {
	old := *g.Pitch.BallPosition
	dx, dy := b.dice.Scatter()

	newPos := game.Position{X: clamp(old.X+dx, 0, game.PitchWidth-1), Y: clamp(old.Y+dy, 0, game.PitchHeight-1)}
	g.Pitch.PlaceBall(newPos)
	g.AddEvent(fmt.Sprintf("Ball scattered from (%d,%d) to (%d,%d)", old.X, old.Y, newPos.X, newPos.Y))
	return newPos
}

// PassRange classifies the throw distance.
func (b *Ball) PassRange(from, to game.Position) string {
	distance := from.DistanceTo(to)
	switch {
	case distance <= 3:
		return RangeQuick
	case distance <= 6:
		return RangeShort
	case distance <= 12:
		return RangeLong
	default:
		return RangeLongBomb
	}
}

// PassModifiers builds the modifier list for a hurl: range band, enemy
// tackle zones at the passer's square, and the passing skill.
func (b *Ball) PassModifiers(g *game.GameState, passer *game.Player, from, to game.Position) []game.Modifier {
	rangeValues := map[string]int{
		RangeQuick:    1,
		RangeShort:    0,
		RangeLong:     -1,
		RangeLongBomb: -2,
	}
	mods := []game.Modifier{{Cause: "range", Value: rangeValues[b.PassRange(from, to)]}}

	if zones := b.movement.TackleZones(g, passer.TeamID, from); zones > 0 {
		mods = append(mods, game.Modifier{Cause: "tackle_zones", Value: -zones})
	}
	if passer.HasSkill(game.SkillPigeonPost) {
		mods = append(mods, game.Modifier{Cause: "pass_skill", Value: 1})
	}
	return mods
}

// AttemptPass throws the ball at a target square. The ball leaves the
// passer's possession before the roll is evaluated. The modified total
// decides the accuracy band:
//
//	total 1                     fumble: ball scatters once from the passer
//	total below target          wildly inaccurate: three scatters from the target
//	total below target+3        inaccurate: one scatter from the target
//	otherwise                   accurate: ball lands on the target square
//
// Catch resolution is the caller's responsibility once the ball lands.
func (b *Ball) AttemptPass(g *game.GameState, passer *game.Player, target game.Position) (game.PassResult, game.Position, []game.DiceRoll, error) {
	var rolls []game.DiceRoll

	passerPos, ok := g.Pitch.PositionOf(passer.ID)
	if !ok {
		return "", game.Position{}, rolls, fmt.Errorf("passer %s not on pitch", passer.ID)
	}
	if g.Pitch.BallCarrier != passer.ID {
		return "", game.Position{}, rolls, fmt.Errorf("passer does not have the ball")
	}

	mods := b.PassModifiers(g, passer, passerPos, target)
	roll := b.dice.RollTarget(passer.Archetype.PA, game.RollPass, mods)
	rolls = append(rolls, roll)

	// The ball is in the air now, whatever happens next.
	g.Pitch.DropBall()

	total := roll.Result + game.ModifierTotal(mods)
	passTarget := passer.Archetype.PA

	var result game.PassResult
	var final game.Position
	switch {
	case total == 1:
		result = game.PassFumble
		g.Pitch.PlaceBall(passerPos)
		final = b.ScatterBall(g)
	case total < passTarget:
		result = game.PassWildlyInaccurate
		g.Pitch.PlaceBall(target)
		for i := 0; i < 3; i++ {
			final = b.ScatterBall(g)
		}
	case total < passTarget+3:
		result = game.PassInaccurate
		g.Pitch.PlaceBall(target)
		final = b.ScatterBall(g)
	default:
		result = game.PassAccurate
		g.Pitch.PlaceBall(target)
		final = target
	}

	return result, final, rolls, nil
}

// HandOff gives the ball to an adjacent teammate. No dice are involved;
// failures return a reason, not an error.
func (b *Ball) HandOff(g *game.GameState, giver, receiver *game.Player) (bool, string) {
	if g.Pitch.BallCarrier != giver.ID {
		return false, "giver does not have the ball"
	}
	giverPos, ok1 := g.Pitch.PositionOf(giver.ID)
	receiverPos, ok2 := g.Pitch.PositionOf(receiver.ID)
	if !ok1 || !ok2 {
		return false, "players not on pitch"
	}
	if !giverPos.IsAdjacent(receiverPos) {
		return false, "players must be adjacent for hand-off"
	}
	if giver.TeamID != receiver.TeamID {
		return false, "cannot hand off to opposing team"
	}

	g.Pitch.DropBall()
	g.Pitch.PlaceBall(receiverPos)
	if err := g.Pitch.PickUpBall(receiver.ID); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
