// Package engine implements the Ankh-Morpork Scramble rules: dice, movement
// and dodging, ball handling, combat, path risk assessment, and the action
// executor that ties them together. The engine mutates a single GameState
// passed explicitly; it holds no global state and no internal concurrency.
package engine

import (
	"math/rand"
	"time"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// Roller produces every random outcome in the engine. Construct with a seed
// for reproducible matches; NewRoller uses a time-based source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller returns a non-deterministic roller.
func NewRoller() *Roller {
	return &Roller{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRoller returns a roller with a fixed seed for tests and replays.
func NewSeededRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// D6 rolls a single six-sided die.
func (r *Roller) D6() int { return r.rng.Intn(6) + 1 }

// TwoD6 rolls 2d6.
func (r *Roller) TwoD6() int { return r.D6() + r.D6() }

// D16 rolls the casualty-table die.
func (r *Roller) D16() int { return r.rng.Intn(16) + 1 }

// RollTarget rolls one d6 against a target number: the roll plus the sum of
// modifiers succeeds when it reaches the target.
func (r *Roller) RollTarget(target int, rollType game.RollType, mods []game.Modifier) game.DiceRoll {
	result := r.D6()
	final := result + game.ModifierTotal(mods)
	t := target
	return game.DiceRoll{
		Type:      rollType,
		Result:    result,
		Target:    &t,
		Success:   final >= target,
		Modifiers: mods,
	}
}

// RollArmor rolls 2d6 against an armor target. Success means the armor
// breaks.
func (r *Roller) RollArmor(armorTarget int) game.DiceRoll {
	result := r.TwoD6()
	t := armorTarget
	return game.DiceRoll{
		Type:    game.RollArmor,
		Result:  result,
		Target:  &t,
		Success: result >= armorTarget,
	}
}

// RollInjury rolls 2d6 on the injury table: 7 or less stunned, 8-9 knocked
// out, 10 or more a casualty.
func (r *Roller) RollInjury() (game.DiceRoll, game.InjuryResult) {
	result := r.TwoD6()
	var injury game.InjuryResult
	switch {
	case result <= 7:
		injury = game.InjuryStunned
	case result <= 9:
		injury = game.InjuryKnockedOut
	default:
		injury = game.InjuryCasualty
	}
	return game.DiceRoll{Type: game.RollInjury, Result: result, Success: true}, injury
}

// RollCasualty rolls the d16 casualty-table index. The index is recorded
// for downstream collaborators but not interpreted by the engine.
func (r *Roller) RollCasualty() int { return r.D16() }

// Scatter rolls a one-square scatter direction. A single d6 covers six
// compass directions; the sixth face rolls a second d6 to pick among the
// remaining three, giving all eight neighbors.
func (r *Roller) Scatter() (dx, dy int) {
	switch r.D6() {
	case 1:
		return 0, -1 // N
	case 2:
		return 1, -1 // NE
	case 3:
		return 1, 0 // E
	case 4:
		return 1, 1 // SE
	case 5:
		return 0, 1 // S
	default:
		second := r.D6()
		switch {
		case second <= 2:
			return -1, 1 // SW
		case second <= 4:
			return -1, 0 // W
		default:
			return -1, -1 // NW
		}
	}
}
