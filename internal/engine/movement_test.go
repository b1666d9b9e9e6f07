package engine

import (
	"testing"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// testState builds a started match with no players placed.
func testState(t *testing.T) *game.GameState {
	t.Helper()
	g := game.NewGameState("g1",
		game.NewTeam("team1", "Watch", game.TeamCityWatch),
		game.NewTeam("team2", "Wizards", game.TeamUnseenUniversity),
	)
	g.Team1Joined = true
	g.Team2Joined = true
	if err := g.StartMatch(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.BeginPlay(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func addPlayer(t *testing.T, g *game.GameState, id, teamID string, arch game.Archetype, pos game.Position) *game.Player {
	t.Helper()
	p := game.NewPlayer(id, teamID, arch, len(g.Players)+1)
	g.Players[id] = p
	if err := g.Pitch.PlaceOnPitch(id, pos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

// sureArch always succeeds agility rolls without negative modifiers.
var sureArch = game.Archetype{Role: "Constable", MA: 6, ST: 3, AG: 1, PA: 4, AV: 9}

// clumsyArch can never pass an unmodified agility roll.
var clumsyArch = game.Archetype{Role: "Constable", MA: 6, ST: 3, AG: 7, PA: 4, AV: 9}

func TestTackleZones_OnlyStandingOpponents(t *testing.T) {
	g := testState(t)
	m := NewMovement(NewSeededRoller(1))
	addPlayer(t, g, "mover", "team1", sureArch, game.Position{X: 5, Y: 5})
	enemy := addPlayer(t, g, "enemy", "team2", sureArch, game.Position{X: 6, Y: 5})
	addPlayer(t, g, "mate", "team1", sureArch, game.Position{X: 5, Y: 6})

	if zones := m.TackleZones(g, "team1", game.Position{X: 5, Y: 5}); zones != 1 {
		t.Fatalf("expected 1 tackle zone, got %d", zones)
	}
	enemy.KnockDown()
	if zones := m.TackleZones(g, "team1", game.Position{X: 5, Y: 5}); zones != 0 {
		t.Fatalf("prone players project no tackle zones, got %d", zones)
	}
}

func TestDodgeModifiers_DestinationZonesAndSkill(t *testing.T) {
	g := testState(t)
	m := NewMovement(NewSeededRoller(1))
	mover := addPlayer(t, g, "mover", "team1", sureArch, game.Position{X: 5, Y: 5})
	addPlayer(t, g, "e1", "team2", sureArch, game.Position{X: 6, Y: 5})
	addPlayer(t, g, "e2", "team2", sureArch, game.Position{X: 7, Y: 7})

	// Moving to (6,6): adjacent enemies at (6,5) and (7,7).
	mods := m.DodgeModifiers(g, mover, game.Position{X: 5, Y: 5}, game.Position{X: 6, Y: 6})
	if total := game.ModifierTotal(mods); total != -2 {
		t.Fatalf("expected -2 from destination tackle zones, got %d (%v)", total, mods)
	}

	mover.Skills = append(mover.Skills, game.SkillSidestep)
	mods = m.DodgeModifiers(g, mover, game.Position{X: 5, Y: 5}, game.Position{X: 6, Y: 6})
	if total := game.ModifierTotal(mods); total != -1 {
		t.Fatalf("expected -1 with the dodge skill, got %d (%v)", total, mods)
	}
}

func TestMovePlayer_SimplePathNoDice(t *testing.T) {
	g := testState(t)
	m := NewMovement(NewSeededRoller(1))
	mover := addPlayer(t, g, "mover", "team1", sureArch, game.Position{X: 5, Y: 5})

	path := []game.Position{{X: 6, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5}}
	ok, rolls, reason := m.MovePlayer(g, "mover", path, true)
	if !ok {
		t.Fatalf("move failed: %s", reason)
	}
	if len(rolls) != 0 {
		t.Fatalf("open-field movement must roll no dice, got %d rolls", len(rolls))
	}
	if pos, _ := g.Pitch.PositionOf("mover"); pos != (game.Position{X: 8, Y: 5}) {
		t.Fatalf("expected (8,5), got %v", pos)
	}
	if mover.MovementRemaining() != 3 {
		t.Fatalf("expected 3 movement left, got %d", mover.MovementRemaining())
	}
}

func TestMovePlayer_DodgeRequiredWhenLeavingTackleZone(t *testing.T) {
	g := testState(t)
	m := NewMovement(NewSeededRoller(1))
	addPlayer(t, g, "mover", "team1", sureArch, game.Position{X: 5, Y: 5})
	addPlayer(t, g, "enemy", "team2", sureArch, game.Position{X: 6, Y: 5})

	// Moving away to (4,5): destination has no enemies, so AG 1 always
	// clears the dodge.
	ok, rolls, reason := m.MovePlayer(g, "mover", []game.Position{{X: 4, Y: 5}}, true)
	if !ok {
		t.Fatalf("move failed: %s", reason)
	}
	if len(rolls) != 1 || rolls[0].Type != game.RollDodge {
		t.Fatalf("expected exactly one dodge roll, got %v", rolls)
	}
}

func TestMovePlayer_FailedDodgeKnocksProneAndKeepsProgress(t *testing.T) {
	g := testState(t)
	m := NewMovement(NewSeededRoller(1))
	mover := addPlayer(t, g, "mover", "team1", clumsyArch, game.Position{X: 5, Y: 5})
	addPlayer(t, g, "enemy", "team2", sureArch, game.Position{X: 5, Y: 4})

	// The enemy at (5,4) is adjacent to (5,5), so leaving needs a dodge
	// that AG 7 can never make.
	ok, rolls, reason := m.MovePlayer(g, "mover", []game.Position{{X: 6, Y: 5}}, true)
	if ok {
		t.Fatal("expected the dodge to fail")
	}
	if reason != "dodge failed" {
		t.Fatalf("unexpected reason: %s", reason)
	}
	if len(rolls) != 1 || rolls[0].Success {
		t.Fatalf("expected one failed dodge roll, got %v", rolls)
	}
	if mover.State != game.StateProne {
		t.Fatalf("failed dodge must knock prone, got %s", mover.State)
	}
	if pos, _ := g.Pitch.PositionOf("mover"); pos != (game.Position{X: 5, Y: 5}) {
		t.Fatalf("player must stay on the last completed square, got %v", pos)
	}
}

func TestMovePlayer_RushLimits(t *testing.T) {
	g := testState(t)
	m := NewMovement(NewSeededRoller(1))
	arch := sureArch
	arch.MA = 2
	addPlayer(t, g, "mover", "team1", arch, game.Position{X: 5, Y: 5})

	// MA 2 plus three extra squares is rejected before any dice.
	path := []game.Position{{X: 6, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5}, {X: 9, Y: 5}, {X: 10, Y: 5}}
	ok, rolls, reason := m.MovePlayer(g, "mover", path, true)
	if ok {
		t.Fatal("expected rejection of a 3-square rush")
	}
	if len(rolls) != 0 {
		t.Fatalf("over-limit rush must roll no dice, got %v", rolls)
	}
	if reason != "can only rush up to 2 squares" {
		t.Fatalf("unexpected reason: %s", reason)
	}
}

func TestMovePlayer_TwoRushSquaresRollDice(t *testing.T) {
	g := testState(t)
	m := NewMovement(NewSeededRoller(1))
	arch := sureArch
	arch.MA = 2
	mover := addPlayer(t, g, "mover", "team1", arch, game.Position{X: 5, Y: 5})

	path := []game.Position{{X: 6, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5}, {X: 9, Y: 5}}
	ok, rolls, _ := m.MovePlayer(g, "mover", path, true)
	if ok {
		if len(rolls) != 2 {
			t.Fatalf("expected two rush rolls on success, got %v", rolls)
		}
		if pos, _ := g.Pitch.PositionOf("mover"); pos != (game.Position{X: 9, Y: 5}) {
			t.Fatalf("expected (9,5), got %v", pos)
		}
	} else {
		// A rush roll of 1 stops the move and knocks the runner prone.
		if mover.State != game.StateProne {
			t.Fatalf("failed rush must knock prone, got %s", mover.State)
		}
	}
	for _, roll := range rolls {
		if roll.Type != game.RollRush {
			t.Fatalf("expected rush rolls only, got %v", rolls)
		}
	}
}

func TestMovePlayer_RushDisallowedForAction(t *testing.T) {
	g := testState(t)
	m := NewMovement(NewSeededRoller(1))
	arch := sureArch
	arch.MA = 1
	addPlayer(t, g, "mover", "team1", arch, game.Position{X: 5, Y: 5})

	ok, _, reason := m.MovePlayer(g, "mover", []game.Position{{X: 6, Y: 5}, {X: 7, Y: 5}}, false)
	if ok || reason != "rushing not allowed for this action" {
		t.Fatalf("expected rush rejection, got ok=%v reason=%q", ok, reason)
	}
}

func TestMovePlayer_RejectsNonAdjacentStep(t *testing.T) {
	g := testState(t)
	m := NewMovement(NewSeededRoller(1))
	addPlayer(t, g, "mover", "team1", sureArch, game.Position{X: 5, Y: 5})

	ok, _, reason := m.MovePlayer(g, "mover", []game.Position{{X: 7, Y: 5}}, true)
	if ok || reason != "can only move to adjacent squares" {
		t.Fatalf("expected adjacency rejection, got ok=%v reason=%q", ok, reason)
	}
}

func TestStandUp(t *testing.T) {
	m := NewMovement(NewSeededRoller(1))
	p := game.NewPlayer("p", "team1", sureArch, 1)

	if ok, _ := m.StandUp(p); ok {
		t.Fatal("standing player must not stand up again")
	}

	p.KnockDown()
	if ok, reason := m.StandUp(p); !ok {
		t.Fatalf("stand up failed: %s", reason)
	}
	if !p.IsStanding() {
		t.Fatalf("expected standing, got %s", p.State)
	}
	if p.MovementRemaining() != sureArch.MA-3 {
		t.Fatalf("standing up should cost 3 movement, got %d left", p.MovementRemaining())
	}

	// Not enough movement left.
	p.KnockDown()
	p.MovementUsed = sureArch.MA - 2
	if ok, _ := m.StandUp(p); ok {
		t.Fatal("expected stand up to fail with 2 movement left")
	}
	if p.State != game.StateProne {
		t.Fatalf("failed stand up must leave the player prone, got %s", p.State)
	}
}
