package engine

import (
	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// Combat resolves blocks, armor and injury rolls, and fouls.
type Combat struct {
	dice *Roller
}

// NewCombat creates a combat engine over the given dice roller.
func NewCombat(dice *Roller) *Combat {
	return &Combat{dice: dice}
}

// CanBlock checks the four block preconditions: attacker standing, both on
// pitch and adjacent, opposing teams, defender still in play.
func (c *Combat) CanBlock(g *game.GameState, attacker, defender *game.Player) (bool, string) {
	if !attacker.IsStanding() {
		return false, "attacker must be standing"
	}
	attackerPos, ok1 := g.Pitch.PositionOf(attacker.ID)
	defenderPos, ok2 := g.Pitch.PositionOf(defender.ID)
	if !ok1 || !ok2 {
		return false, "players not on pitch"
	}
	if !attackerPos.IsAdjacent(defenderPos) {
		return false, "players must be adjacent to block"
	}
	if attacker.TeamID == defender.TeamID {
		return false, "cannot block teammate"
	}
	if defender.State == game.StateKnockedOut || defender.State == game.StateCasualty {
		return false, "defender is not active"
	}
	return true, ""
}

// BlockDiceCount compares effective strengths (base ST plus assists plus
// skill bonuses) and returns how many block dice are rolled and whether the
// attacker picks the result. At equal strength one die is rolled and the
// attacker chooses: the rules leave the choice joint, and deferring to the
// attacker is the deterministic policy adopted here.
func (c *Combat) BlockDiceCount(attacker, defender *game.Player, attackerAssists, defenderAssists int) (int, bool) {
	attackerStrength := attacker.Archetype.ST + attackerAssists
	defenderStrength := defender.Archetype.ST + defenderAssists

	if attacker.HasSkill(game.SkillStoneThick) {
		attackerStrength++
	}

	switch {
	case attackerStrength > defenderStrength*2:
		return 3, true
	case attackerStrength > defenderStrength:
		return 2, true
	case attackerStrength == defenderStrength:
		return 1, true
	case defenderStrength > attackerStrength*2:
		return 3, false
	default:
		return 2, false
	}
}

// RollBlockDice rolls count block dice, mapping each d6 face to its result:
// 1 attacker down, 2 both down, 3-4 push, 5 defender stumbles, 6 defender
// down.
func (c *Combat) RollBlockDice(count int) []game.BlockResult {
	results := make([]game.BlockResult, 0, count)
	for i := 0; i < count; i++ {
		switch c.dice.D6() {
		case 1:
			results = append(results, game.AttackerDown)
		case 2:
			results = append(results, game.BothDown)
		case 3, 4:
			results = append(results, game.Push)
		case 5:
			results = append(results, game.DefenderStumbles)
		default:
			results = append(results, game.DefenderDown)
		}
	}
	return results
}

// ChooseBlockResult picks the most favorable rolled result for the choosing
// side. BothDown is only worth taking with the blocking skill; without it
// the chooser falls back to Push when available.
func (c *Combat) ChooseBlockResult(results []game.BlockResult, attackerChooses bool, attacker, defender *game.Player) game.BlockResult {
	if len(results) == 1 {
		return results[0]
	}

	contains := func(want game.BlockResult) bool {
		for _, r := range results {
			if r == want {
				return true
			}
		}
		return false
	}

	if attackerChooses {
		switch {
		case contains(game.DefenderDown):
			return game.DefenderDown
		case contains(game.DefenderStumbles):
			return game.DefenderStumbles
		case contains(game.Push):
			return game.Push
		case contains(game.BothDown):
			if attacker.HasSkill(game.SkillDrillHardened) {
				return game.BothDown
			}
			return results[0]
		default:
			return results[0]
		}
	}

	switch {
	case contains(game.AttackerDown):
		return game.AttackerDown
	case contains(game.BothDown):
		if defender.HasSkill(game.SkillDrillHardened) {
			return game.BothDown
		}
		if contains(game.Push) {
			return game.Push
		}
		return results[0]
	case contains(game.Push):
		return game.Push
	default:
		return results[0]
	}
}

// BlockOutcome bundles everything ExecuteBlock resolved. BallDropped is set
// whichever side's carrier went down; AttackerDroppedBall narrows it to the
// blocking side losing possession, which is what turns the block into a
// turnover for the acting team.
type BlockOutcome struct {
	Result              game.BlockResult
	DiceRolls           []game.DiceRoll
	DefenderKnockedDown bool
	AttackerKnockedDown bool
	DefenderInjury      game.InjuryResult
	AttackerInjury      game.InjuryResult
	BallDropped         bool
	AttackerDroppedBall bool
}

// ExecuteBlock rolls and applies a block. Knocked-down players resolve
// armor and injury; a side holding the blocking skill shrugs off its own
// knockdown on AttackerDown/BothDown. A downed ball carrier drops the ball
// at its square. Push repositioning is the caller's responsibility.
func (c *Combat) ExecuteBlock(g *game.GameState, attacker, defender *game.Player) BlockOutcome {
	out := BlockOutcome{}

	diceCount, attackerChooses := c.BlockDiceCount(attacker, defender, 0, 0)
	rolled := c.RollBlockDice(diceCount)
	chosen := c.ChooseBlockResult(rolled, attackerChooses, attacker, defender)
	out.Result = chosen

	out.DiceRolls = append(out.DiceRolls, game.DiceRoll{
		Type:    game.RollBlock,
		Result:  diceCount,
		Success: true,
		Modifiers: []game.Modifier{
			{Cause: "chosen_" + string(chosen), Value: 0},
		},
	})

	switch chosen {
	case game.DefenderDown, game.DefenderStumbles:
		defender.KnockDown()
		out.DefenderKnockedDown = true
		rolls, injury, _ := c.ResolveInjury(defender)
		out.DiceRolls = append(out.DiceRolls, rolls...)
		out.DefenderInjury = injury

	case game.AttackerDown:
		if !attacker.HasSkill(game.SkillDrillHardened) {
			attacker.KnockDown()
			out.AttackerKnockedDown = true
			rolls, injury, _ := c.ResolveInjury(attacker)
			out.DiceRolls = append(out.DiceRolls, rolls...)
			out.AttackerInjury = injury
		}

	case game.BothDown:
		if !attacker.HasSkill(game.SkillDrillHardened) {
			attacker.KnockDown()
			out.AttackerKnockedDown = true
			rolls, injury, _ := c.ResolveInjury(attacker)
			out.DiceRolls = append(out.DiceRolls, rolls...)
			out.AttackerInjury = injury
		}
		if !defender.HasSkill(game.SkillDrillHardened) {
			defender.KnockDown()
			out.DefenderKnockedDown = true
			rolls, injury, _ := c.ResolveInjury(defender)
			out.DiceRolls = append(out.DiceRolls, rolls...)
			out.DefenderInjury = injury
		}
	}

	if out.DefenderKnockedDown && g.Pitch.BallCarrier == defender.ID {
		g.Pitch.DropBall()
		out.BallDropped = true
	}
	if out.AttackerKnockedDown && g.Pitch.BallCarrier == attacker.ID {
		g.Pitch.DropBall()
		out.BallDropped = true
		out.AttackerDroppedBall = true
	}

	return out
}

// ResolveInjury rolls armor for a downed player; broken armor escalates to
// an injury roll and, for casualties, the d16 table index. Armor holding
// leaves the player merely prone. Returns the rolls, the injury (empty when
// armor held), and the casualty index (0 when not a casualty).
func (c *Combat) ResolveInjury(player *game.Player) ([]game.DiceRoll, game.InjuryResult, int) {
	var rolls []game.DiceRoll

	armor := c.dice.RollArmor(player.Archetype.AV)
	rolls = append(rolls, armor)
	if !armor.Success {
		return rolls, "", 0
	}

	injuryRoll, injury := c.dice.RollInjury()
	rolls = append(rolls, injuryRoll)

	switch injury {
	case game.InjuryStunned:
		player.Stun()
	case game.InjuryKnockedOut:
		player.KnockOut()
	case game.InjuryCasualty:
		player.Casualty()
		index := c.dice.RollCasualty()
		rolls = append(rolls, game.DiceRoll{Type: game.RollCasualty, Result: index, Success: true})
		return rolls, injury, index
	}
	return rolls, injury, 0
}

// AttemptFoul kicks a prone adjacent opponent: no roll to land it, straight
// to armor and injury.
func (c *Combat) AttemptFoul(g *game.GameState, attacker, target *game.Player) (bool, []game.DiceRoll, game.InjuryResult, int, string) {
	if target.State != game.StateProne {
		return false, nil, "", 0, "target must be prone to foul"
	}
	attackerPos, ok1 := g.Pitch.PositionOf(attacker.ID)
	targetPos, ok2 := g.Pitch.PositionOf(target.ID)
	if !ok1 || !ok2 {
		return false, nil, "", 0, "players not on pitch"
	}
	if !attackerPos.IsAdjacent(targetPos) {
		return false, nil, "", 0, "must be adjacent to foul"
	}

	rolls, injury, casualtyIndex := c.ResolveInjury(target)
	return true, rolls, injury, casualtyIndex, ""
}
