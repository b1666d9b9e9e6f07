package game

import "testing"

func startedGame(t *testing.T) *GameState {
	t.Helper()
	g := NewGameState("g1",
		NewTeam("team1", "Watch", TeamCityWatch),
		NewTeam("team2", "Wizards", TeamUnseenUniversity),
	)
	g.Team1Joined = true
	g.Team2Joined = true
	if err := g.StartMatch(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestStartMatch_RequiresBothTeams(t *testing.T) {
	g := NewGameState("g1",
		NewTeam("team1", "Watch", TeamCityWatch),
		NewTeam("team2", "Wizards", TeamUnseenUniversity),
	)
	g.Team1Joined = true
	if err := g.StartMatch(); err == nil {
		t.Fatal("expected error starting with one team joined")
	}
	g.Team2Joined = true
	if err := g.StartMatch(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Phase != PhaseOpeningScramble {
		t.Fatalf("expected opening scramble, got %s", g.Phase)
	}
	if g.Turn == nil || g.Turn.ActiveTeamID != "team1" || g.Turn.Half != 1 {
		t.Fatalf("unexpected turn state: %+v", g.Turn)
	}
	if g.Pitch.BallPosition == nil || *g.Pitch.BallPosition != BallStartPosition() {
		t.Fatalf("ball should start at the pitch center, got %v", g.Pitch.BallPosition)
	}
}

func TestSwitchTurn_AlternatesAndCountsFullRounds(t *testing.T) {
	g := startedGame(t)

	if err := g.SwitchTurn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Turn.ActiveTeamID != "team2" {
		t.Fatalf("expected team2 active, got %s", g.Turn.ActiveTeamID)
	}
	if g.Turn.TeamTurn != 0 {
		t.Fatalf("counter must not advance mid-round, got %d", g.Turn.TeamTurn)
	}

	if err := g.SwitchTurn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Turn.ActiveTeamID != "team1" {
		t.Fatalf("expected team1 active, got %s", g.Turn.ActiveTeamID)
	}
	if g.Turn.TeamTurn != 1 {
		t.Fatalf("counter should advance when control returns to team1, got %d", g.Turn.TeamTurn)
	}
}

func TestSwitchTurn_ResetsOutgoingTeamAndFlags(t *testing.T) {
	g := startedGame(t)
	p := NewPlayer("team1_player_0", "team1", Archetype{Role: "Constable", MA: 6, ST: 3, AG: 3, PA: 4, AV: 9}, 1)
	p.MovementUsed = 4
	p.HasActed = true
	p.Stun()
	g.Players[p.ID] = p

	g.Turn.ChargeUsed = true
	g.Turn.HurlUsed = true
	g.Turn.QuickPassUsed = true
	g.Turn.BootUsed = true
	g.Team1.RerollsTotal = 2
	g.Team1.RerollsUsed = 2

	if err := g.SwitchTurn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.MovementUsed != 0 || p.HasActed {
		t.Fatalf("outgoing players should be reset, got used=%d acted=%v", p.MovementUsed, p.HasActed)
	}
	if p.State != StateProne {
		t.Fatalf("stunned player should recover to prone, got %s", p.State)
	}
	if g.Turn.ChargeUsed || g.Turn.HurlUsed || g.Turn.QuickPassUsed || g.Turn.BootUsed {
		t.Fatalf("once-per-turn flags should clear, got %+v", g.Turn)
	}
	if g.Team1.RerollsRemaining() != 2 {
		t.Fatalf("outgoing team reroll pool should be restored, got %d", g.Team1.RerollsRemaining())
	}
}

func TestSwitchTurn_FullHalvesEndTheMatch(t *testing.T) {
	g := startedGame(t)
	if err := g.BeginPlay(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Eight full rounds: sixteen switches reach the intermission.
	for i := 0; i < 16; i++ {
		if err := g.SwitchTurn(); err != nil {
			t.Fatalf("switch %d: unexpected error: %v", i, err)
		}
	}
	if g.Phase != PhaseIntermission {
		t.Fatalf("expected intermission after 8 full rounds, got %s", g.Phase)
	}
	if g.Turn.Half != 2 || g.Turn.TeamTurn != 0 {
		t.Fatalf("unexpected turn state at intermission: %+v", g.Turn)
	}

	if err := g.BeginSecondHalf(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Phase != PhaseActivePlay {
		t.Fatalf("expected active play in the second half, got %s", g.Phase)
	}

	for i := 0; i < 16; i++ {
		if err := g.SwitchTurn(); err != nil {
			t.Fatalf("switch %d: unexpected error: %v", i, err)
		}
	}
	if g.Phase != PhaseConcluded {
		t.Fatalf("expected concluded after the second half, got %s", g.Phase)
	}
}

func TestBeginSecondHalf_OnlyFromIntermission(t *testing.T) {
	g := startedGame(t)
	if err := g.BeginSecondHalf(); err == nil {
		t.Fatal("expected error outside the intermission")
	}
}

func TestCheckScoring_Team1EndZone(t *testing.T) {
	g := startedGame(t)
	p := NewPlayer("team1_player_0", "team1", Archetype{Role: "Constable", MA: 6, ST: 3, AG: 3, PA: 4, AV: 9}, 1)
	g.Players[p.ID] = p
	if err := g.Pitch.PlaceOnPitch(p.ID, Position{Team1ScoringX, 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Pitch.PlaceBall(Position{Team1ScoringX, 7})
	if err := g.Pitch.PickUpBall(p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scorer := g.CheckScoring()
	if scorer != "team1" {
		t.Fatalf("expected team1 to score, got %q", scorer)
	}
	if g.Team1.Score != 1 {
		t.Fatalf("expected score 1, got %d", g.Team1.Score)
	}
	if g.Pitch.BallCarrier != "" {
		t.Fatal("carrier should be cleared after a score")
	}
	if g.Pitch.BallPosition == nil || *g.Pitch.BallPosition != BallStartPosition() {
		t.Fatalf("ball should reset to the center, got %v", g.Pitch.BallPosition)
	}
}

func TestCheckScoring_NoCarrierNoScore(t *testing.T) {
	g := startedGame(t)
	g.Pitch.PlaceBall(Position{Team1ScoringX, 7})
	if scorer := g.CheckScoring(); scorer != "" {
		t.Fatalf("loose ball must not score, got %q", scorer)
	}
}

func TestCheckScoring_WrongEndZone(t *testing.T) {
	g := startedGame(t)
	p := NewPlayer("team2_player_0", "team2", Archetype{Role: "Apprentice Wizard", MA: 6, ST: 2, AG: 3, PA: 4, AV: 8}, 1)
	g.Players[p.ID] = p
	// Team2 standing in team1's scoring zone must not score.
	if err := g.Pitch.PlaceOnPitch(p.ID, Position{Team1ScoringX, 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Pitch.PlaceBall(Position{Team1ScoringX, 7})
	if err := g.Pitch.PickUpBall(p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scorer := g.CheckScoring(); scorer != "" {
		t.Fatalf("team2 must not score at high x, got %q", scorer)
	}
}
