package engine

import (
	"fmt"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// Executor dispatches action requests to the movement, ball, and combat
// engines and reports the consequences, including turnovers. It validates
// each action's required fields before any dice are rolled.
type Executor struct {
	dice     *Roller
	movement *Movement
	ball     *Ball
	combat   *Combat
	path     *PathFinder
}

// NewExecutor builds the full engine stack over one dice roller.
func NewExecutor(dice *Roller) *Executor {
	if dice == nil {
		dice = NewRoller()
	}
	movement := NewMovement(dice)
	return &Executor{
		dice:     dice,
		movement: movement,
		ball:     NewBall(dice, movement),
		combat:   NewCombat(dice),
		path:     NewPathFinder(movement),
	}
}

// Movement exposes the movement engine for read-only consultation.
func (e *Executor) Movement() *Movement { return e.movement }

// PathFinder exposes the advisory path assessor.
func (e *Executor) PathFinder() *PathFinder { return e.path }

// Combat exposes the combat engine for read-only consultation.
func (e *Executor) Combat() *Combat { return e.combat }

// Execute runs a single action against the game state. Rule denials come
// back as failed results; unknown player ids come back as errors.
func (e *Executor) Execute(g *game.GameState, req game.ActionRequest) (game.ActionResult, error) {
	switch req.ActionType {
	case game.ActionMove:
		return e.executeMove(g, req)
	case game.ActionStandUp:
		return e.executeStandUp(g, req)
	case game.ActionScuffle:
		return e.executeScuffle(g, req)
	case game.ActionCharge:
		return e.executeCharge(g, req)
	case game.ActionHurl:
		return e.executeHurl(g, req)
	case game.ActionQuickPass:
		return e.executeQuickPass(g, req)
	case game.ActionBoot:
		return e.executeBoot(g, req)
	default:
		return game.ActionResult{
			Success: false,
			Message: fmt.Sprintf("unknown action type: %s", req.ActionType),
		}, nil
	}
}

func (e *Executor) executeMove(g *game.GameState, req game.ActionRequest) (game.ActionResult, error) {
	if len(req.Path) == 0 {
		return game.ActionResult{Success: false, Message: "no path provided for move"}, nil
	}

	player, err := g.Player(req.PlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}

	// Remember whether the path ends on a loose ball before moving.
	final := req.Path[len(req.Path)-1]
	ballAtDestination := g.Pitch.BallCarrier == "" &&
		g.Pitch.BallPosition != nil && *g.Pitch.BallPosition == final

	success, rolls, reason := e.movement.MovePlayer(g, req.PlayerID, req.Path, true)
	if !success {
		return game.ActionResult{
			Success:   false,
			Message:   failureMessage(reason, "movement failed"),
			DiceRolls: rolls,
			Turnover:  true,
		}, nil
	}

	result := game.ActionResult{
		Success:     true,
		Message:     fmt.Sprintf("player moved to (%d,%d)", final.X, final.Y),
		DiceRolls:   rolls,
		PlayerMoved: req.PlayerID,
		NewPosition: &final,
	}

	if ballAtDestination {
		pickedUp, pickupRoll, err := e.ball.AttemptPickup(g, player)
		if err != nil {
			return game.ActionResult{}, err
		}
		result.DiceRolls = append(result.DiceRolls, pickupRoll)
		if pickedUp {
			result.BallPickedUp = true
			result.Message += " and picked up the ball"
		} else {
			result.Turnover = true
			result.BallDropped = true
			result.Message += " but failed to pick up the ball"
		}
	}

	player.HasActed = true
	g.AddEvent(result.Message)
	return result, nil
}

func (e *Executor) executeStandUp(g *game.GameState, req game.ActionRequest) (game.ActionResult, error) {
	player, err := g.Player(req.PlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}

	success, reason := e.movement.StandUp(player)
	if !success {
		return game.ActionResult{Success: false, Message: reason}, nil
	}

	g.AddEvent(fmt.Sprintf("%s stood up", player.DisplayName()))
	return game.ActionResult{Success: true, Message: "player stood up"}, nil
}

func (e *Executor) executeScuffle(g *game.GameState, req game.ActionRequest) (game.ActionResult, error) {
	if req.TargetPlayerID == "" {
		return game.ActionResult{Success: false, Message: "no target player specified"}, nil
	}

	attacker, err := g.Player(req.PlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}
	defender, err := g.Player(req.TargetPlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}

	if ok, reason := e.combat.CanBlock(g, attacker, defender); !ok {
		return game.ActionResult{Success: false, Message: reason}, nil
	}

	outcome := e.combat.ExecuteBlock(g, attacker, defender)
	result := blockActionResult(outcome, fmt.Sprintf("block result: %s", outcome.Result))

	if outcome.BallDropped {
		result.Turnover = true
		result.Message += " - ball carrier knocked down!"
	}

	attacker.HasActed = true
	g.AddEvent(result.Message)
	return result, nil
}

func (e *Executor) executeCharge(g *game.GameState, req game.ActionRequest) (game.ActionResult, error) {
	if g.Turn == nil {
		return game.ActionResult{Success: false, Message: "no active turn"}, nil
	}
	if g.Turn.ChargeUsed {
		return game.ActionResult{Success: false, Message: "charge already used this turn"}, nil
	}
	if req.TargetPlayerID == "" {
		return game.ActionResult{Success: false, Message: "no target player for charge"}, nil
	}

	attacker, err := g.Player(req.PlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}
	defender, err := g.Player(req.TargetPlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}

	var allRolls []game.DiceRoll
	if len(req.Path) > 0 {
		success, rolls, reason := e.movement.MovePlayer(g, req.PlayerID, req.Path, true)
		allRolls = append(allRolls, rolls...)
		if !success {
			return game.ActionResult{
				Success:   false,
				Message:   fmt.Sprintf("charge movement failed: %s", reason),
				DiceRolls: allRolls,
				Turnover:  true,
			}, nil
		}
	}

	if ok, reason := e.combat.CanBlock(g, attacker, defender); !ok {
		return game.ActionResult{
			Success:   false,
			Message:   fmt.Sprintf("cannot block: %s", reason),
			DiceRolls: allRolls,
		}, nil
	}

	outcome := e.combat.ExecuteBlock(g, attacker, defender)
	result := blockActionResult(outcome, fmt.Sprintf("charge! block result: %s", outcome.Result))
	result.DiceRolls = append(allRolls, result.DiceRolls...)

	// Losing the ball as the charging side ends the turn; knocking it out
	// of the defender's hands does not.
	if outcome.AttackerDroppedBall {
		result.Turnover = true
	}

	g.Turn.ChargeUsed = true
	attacker.HasActed = true
	g.AddEvent(result.Message)
	return result, nil
}

func (e *Executor) executeHurl(g *game.GameState, req game.ActionRequest) (game.ActionResult, error) {
	if g.Turn == nil {
		return game.ActionResult{Success: false, Message: "no active turn"}, nil
	}
	if g.Turn.HurlUsed {
		return game.ActionResult{Success: false, Message: "hurl already used this turn"}, nil
	}
	if req.TargetPosition == nil {
		return game.ActionResult{Success: false, Message: "no target position for pass"}, nil
	}

	passer, err := g.Player(req.PlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}
	if g.Pitch.BallCarrier != passer.ID {
		return game.ActionResult{Success: false, Message: "passer does not have the ball"}, nil
	}

	passResult, ballPos, rolls, err := e.ball.AttemptPass(g, passer, *req.TargetPosition)
	if err != nil {
		return game.ActionResult{}, err
	}

	result := game.ActionResult{
		Success:    true,
		Message:    fmt.Sprintf("pass result: %s", passResult),
		DiceRolls:  rolls,
		PassResult: passResult,
	}

	if passResult == game.PassFumble {
		result.Turnover = true
		result.BallDropped = true
	} else if receiverID := g.Pitch.PlayerAt(ballPos); receiverID != "" {
		receiver, err := g.Player(receiverID)
		if err != nil {
			return game.ActionResult{}, err
		}
		caught, catchRoll := e.ball.AttemptCatch(g, receiver)
		result.DiceRolls = append(result.DiceRolls, catchRoll)

		if caught {
			result.BallCaught = true
			result.Message += fmt.Sprintf(" - caught by %s!", receiver.DisplayName())
			if receiver.TeamID != passer.TeamID {
				// Interception: possession changes sides.
				result.Turnover = true
			}
		} else {
			// The ball is loose again, whichever side dropped it.
			result.BallDropped = true
			result.Turnover = true
		}
	} else {
		// Nobody there to catch it: possession is lost.
		result.Turnover = true
	}

	g.Turn.HurlUsed = true
	passer.HasActed = true
	g.AddEvent(result.Message)
	return result, nil
}

func (e *Executor) executeQuickPass(g *game.GameState, req game.ActionRequest) (game.ActionResult, error) {
	if g.Turn == nil {
		return game.ActionResult{Success: false, Message: "no active turn"}, nil
	}
	if g.Turn.QuickPassUsed {
		return game.ActionResult{Success: false, Message: "quick pass already used this turn"}, nil
	}
	if req.TargetReceiverID == "" {
		return game.ActionResult{Success: false, Message: "no receiver specified"}, nil
	}

	giver, err := g.Player(req.PlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}
	receiver, err := g.Player(req.TargetReceiverID)
	if err != nil {
		return game.ActionResult{}, err
	}

	success, reason := e.ball.HandOff(g, giver, receiver)
	if !success {
		return game.ActionResult{Success: false, Message: failureMessage(reason, "hand-off failed")}, nil
	}

	result := game.ActionResult{
		Success:    true,
		Message:    fmt.Sprintf("ball handed off to %s", receiver.DisplayName()),
		BallCaught: true,
	}

	g.Turn.QuickPassUsed = true
	giver.HasActed = true
	g.AddEvent(result.Message)
	return result, nil
}

func (e *Executor) executeBoot(g *game.GameState, req game.ActionRequest) (game.ActionResult, error) {
	if g.Turn == nil {
		return game.ActionResult{Success: false, Message: "no active turn"}, nil
	}
	if g.Turn.BootUsed {
		return game.ActionResult{Success: false, Message: "boot already used this turn"}, nil
	}
	if req.TargetPlayerID == "" {
		return game.ActionResult{Success: false, Message: "no target player specified"}, nil
	}

	attacker, err := g.Player(req.PlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}
	target, err := g.Player(req.TargetPlayerID)
	if err != nil {
		return game.ActionResult{}, err
	}

	success, rolls, injury, casualtyIndex, reason := e.combat.AttemptFoul(g, attacker, target)
	if !success {
		return game.ActionResult{Success: false, Message: reason, DiceRolls: rolls}, nil
	}

	result := game.ActionResult{
		Success:      true,
		DiceRolls:    rolls,
		InjuryResult: injury,
		CasualtyRoll: casualtyIndex,
		ArmorBroken:  injury != "",
	}
	if injury != "" {
		result.Message = fmt.Sprintf("boot! injury: %s", injury)
	} else {
		result.Message = "boot! armor held"
	}

	g.Turn.BootUsed = true
	attacker.HasActed = true
	g.AddEvent(result.Message)
	return result, nil
}

// blockActionResult converts a combat outcome into the common parts of an
// action result.
func blockActionResult(outcome BlockOutcome, message string) game.ActionResult {
	result := game.ActionResult{
		Success:             true,
		Message:             message,
		DiceRolls:           outcome.DiceRolls,
		BlockResult:         outcome.Result,
		DefenderKnockedDown: outcome.DefenderKnockedDown,
		AttackerKnockedDown: outcome.AttackerKnockedDown,
	}
	if outcome.BallDropped {
		result.BallDropped = true
	}
	if outcome.DefenderInjury != "" {
		result.InjuryResult = outcome.DefenderInjury
		result.ArmorBroken = true
	}
	return result
}

func failureMessage(reason, fallback string) string {
	if reason == "" {
		return fallback
	}
	return reason
}
