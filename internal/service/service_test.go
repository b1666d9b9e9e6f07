package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
)

// mockStore is an in-memory GameStore without persistence or locking, good
// enough for the single-goroutine service tests.
type mockStore struct {
	games    map[string]*game.GameState
	recorded []*game.GameState
}

func newMockStore() *mockStore {
	return &mockStore{games: map[string]*game.GameState{}}
}

func (m *mockStore) CreateGame(g *game.GameState) error {
	if _, ok := m.games[g.GameID]; ok {
		return fmt.Errorf("game %s already exists", g.GameID)
	}
	m.games[g.GameID] = g
	return nil
}

func (m *mockStore) UpdateGame(id string, fn func(*game.GameState) error) error {
	gs, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	return fn(gs)
}

func (m *mockStore) ViewGame(id string, fn func(*game.GameState) error) error {
	return m.UpdateGame(id, fn)
}

func (m *mockStore) RecordMatchResult(g *game.GameState) error {
	m.recorded = append(m.recorded, g)
	return nil
}

func TestCreateGame(t *testing.T) {
	store := newMockStore()

	gs, err := CreateGame(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.GameID == "" {
		t.Fatal("expected a generated game id")
	}
	if gs.Phase != game.PhaseDeployment {
		t.Fatalf("new games start in deployment, got %s", gs.Phase)
	}
	if _, ok := store.games[gs.GameID]; !ok {
		t.Fatal("game was not stored")
	}
}

func TestJoinTeam(t *testing.T) {
	store := newMockStore()
	gs, _ := CreateGame(store)

	if err := JoinTeam(store, gs.GameID, "team1", "The Night Watch"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gs.Team1Joined || gs.Team2Joined {
		t.Fatal("only team1 should be joined")
	}
	if gs.Team1.Name != "The Night Watch" {
		t.Fatalf("team name not applied: %s", gs.Team1.Name)
	}

	if err := JoinTeam(store, gs.GameID, "team3", ""); !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
	if err := JoinTeam(store, "missing", "team1", ""); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestSetupTeam_BudgetAndCaps(t *testing.T) {
	store := newMockStore()
	rosters := game.DefaultRosters()
	gs, _ := CreateGame(store)

	err := SetupTeam(store, rosters, gs.GameID, "team1", game.TeamCityWatch, map[string]int{
		"constable":    6,
		"clerk_runner": 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(gs.Team1.PlayerIDs); got != 7 {
		t.Fatalf("expected 7 players, got %d", got)
	}
	wantSpent := 6*50000 + 80000
	if gs.Team1.BudgetSpent != wantSpent {
		t.Fatalf("expected %d spent, got %d", wantSpent, gs.Team1.BudgetSpent)
	}

	// Clerk-runners cap at 2; asking for 3 more must fail.
	err = SetupTeam(store, rosters, gs.GameID, "team1", game.TeamCityWatch, map[string]int{"clerk_runner": 3})
	if !errors.Is(err, ErrPositionLimitHit) {
		t.Fatalf("expected ErrPositionLimitHit, got %v", err)
	}

	err = SetupTeam(store, rosters, gs.GameID, "team1", game.TeamCityWatch, map[string]int{"ballista": 1})
	if !errors.Is(err, ErrUnknownPosition) {
		t.Fatalf("expected ErrUnknownPosition, got %v", err)
	}
	err = SetupTeam(store, rosters, gs.GameID, "team1", "ramtop_clans", nil)
	if !errors.Is(err, ErrUnknownRoster) {
		t.Fatalf("expected ErrUnknownRoster, got %v", err)
	}
}

func TestBuyPlayer(t *testing.T) {
	store := newMockStore()
	rosters := game.DefaultRosters()
	gs, _ := CreateGame(store)

	p, err := BuyPlayer(store, rosters, gs.GameID, "team1", "constable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Archetype.Role != "Constable" || p.Number != 1 {
		t.Fatalf("unexpected player: %+v", p)
	}
	if gs.Team1.BudgetSpent != 50000 {
		t.Fatalf("expected 50000 spent, got %d", gs.Team1.BudgetSpent)
	}

	// Exhaust the treasury; the next purchase must be refused cleanly.
	gs.Team1.BudgetSpent = gs.Team1.BudgetInitial
	if _, err := BuyPlayer(store, rosters, gs.GameID, "team1", "constable"); err == nil {
		t.Fatal("expected an insufficient-funds error")
	}
	if got := len(gs.Team1.PlayerIDs); got != 1 {
		t.Fatalf("refused purchase must not add players, got %d", got)
	}
}

func TestBuyPlayer_OutsideDeployment(t *testing.T) {
	store := newMockStore()
	rosters := game.DefaultRosters()
	gs, _ := CreateGame(store)
	gs.Team1Joined = true
	gs.Team2Joined = true
	if err := StartMatch(store, gs.GameID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := BuyPlayer(store, rosters, gs.GameID, "team1", "constable"); !errors.Is(err, ErrNotDeployment) {
		t.Fatalf("expected ErrNotDeployment, got %v", err)
	}
}

func TestBuyReroll_Cap(t *testing.T) {
	store := newMockStore()
	rosters := game.DefaultRosters()
	gs, _ := CreateGame(store)

	max := rosters[game.TeamCityWatch].MaxRerolls
	for i := 0; i < max; i++ {
		if err := BuyReroll(store, rosters, gs.GameID, "team1"); err != nil {
			t.Fatalf("reroll %d: unexpected error: %v", i, err)
		}
	}
	if err := BuyReroll(store, rosters, gs.GameID, "team1"); err == nil {
		t.Fatal("expected the reroll cap to refuse the purchase")
	}
	if gs.Team1.RerollsTotal != max {
		t.Fatalf("expected %d rerolls, got %d", max, gs.Team1.RerollsTotal)
	}
}

func TestTeamBudgetAndPositions(t *testing.T) {
	store := newMockStore()
	rosters := game.DefaultRosters()
	gs, _ := CreateGame(store)

	if _, err := BuyPlayer(store, rosters, gs.GameID, "team1", "constable"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, err := TeamBudget(store, gs.GameID, "team1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Spent != 50000 || status.Remaining != game.DefaultBudget-50000 {
		t.Fatalf("unexpected budget: %+v", status)
	}
	if len(status.Purchases) != 1 {
		t.Fatalf("expected 1 recorded purchase, got %v", status.Purchases)
	}

	listings, err := AvailablePositions(store, rosters, gs.GameID, "team1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != len(rosters[game.TeamCityWatch].Positions) {
		t.Fatalf("expected the full catalog, got %d entries", len(listings))
	}
	for i := 1; i < len(listings); i++ {
		if listings[i-1].Cost > listings[i].Cost {
			t.Fatal("listings must be sorted by cost")
		}
	}
	for _, l := range listings {
		if l.Key == "constable" && l.Owned != 1 {
			t.Fatalf("expected 1 constable owned, got %d", l.Owned)
		}
	}
}

// deployedGame builds a two-player match ready for kickoff.
func deployedGame(t *testing.T, store *mockStore) *game.GameState {
	t.Helper()
	rosters := game.DefaultRosters()
	gs, err := CreateGame(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, teamID := range []string{"team1", "team2"} {
		if err := JoinTeam(store, gs.GameID, teamID, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := SetupTeam(store, rosters, gs.GameID, "team1", game.TeamCityWatch, map[string]int{"constable": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SetupTeam(store, rosters, gs.GameID, "team2", game.TeamUnseenUniversity, map[string]int{"apprentice_wizard": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := PlacePlayers(store, gs.GameID, "team1", map[string]game.Position{
		"team1_player_0": {X: 10, Y: 7},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := PlacePlayers(store, gs.GameID, "team2", map[string]game.Position{
		"team2_player_0": {X: 16, Y: 7},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := StartMatch(store, gs.GameID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return gs
}

func TestPlacePlayers_Validation(t *testing.T) {
	store := newMockStore()
	rosters := game.DefaultRosters()
	gs, _ := CreateGame(store)
	if err := SetupTeam(store, rosters, gs.GameID, "team1", game.TeamCityWatch, map[string]int{"constable": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := PlacePlayers(store, gs.GameID, "team2", map[string]game.Position{"team1_player_0": {X: 5, Y: 5}})
	if err == nil {
		t.Fatal("placing another team's player must fail")
	}
	err = PlacePlayers(store, gs.GameID, "team1", map[string]game.Position{"team1_player_0": {X: 99, Y: 5}})
	if err == nil {
		t.Fatal("out-of-bounds placement must fail")
	}
}

func TestStartMatch(t *testing.T) {
	store := newMockStore()
	gs := deployedGame(t, store)

	if gs.Phase != game.PhaseOpeningScramble {
		t.Fatalf("expected opening scramble, got %s", gs.Phase)
	}
	if gs.Turn == nil || gs.Turn.ActiveTeamID != "team1" {
		t.Fatalf("team1 opens the match: %+v", gs.Turn)
	}
	if gs.Pitch.BallPosition == nil || *gs.Pitch.BallPosition != game.BallStartPosition() {
		t.Fatalf("ball must start at the center, got %v", gs.Pitch.BallPosition)
	}
}

// beginActivePlay moves a freshly started match into active play the way
// the first submitted action would.
func beginActivePlay(t *testing.T, store GameStore, gameID string) {
	t.Helper()
	err := store.UpdateGame(gameID, func(gs *game.GameState) error {
		return gs.BeginPlay()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEndTurn(t *testing.T) {
	store := newMockStore()
	gs := deployedGame(t, store)
	beginActivePlay(t, store, gs.GameID)

	if err := EndTurn(store, gs.GameID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.Turn.ActiveTeamID != "team2" {
		t.Fatalf("expected team2 active, got %s", gs.Turn.ActiveTeamID)
	}
	if err := EndTurn(store, "missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestResetGame(t *testing.T) {
	store := newMockStore()
	gs := deployedGame(t, store)

	if err := ResetGame(store, gs.GameID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.Phase != game.PhaseDeployment {
		t.Fatalf("expected deployment after reset, got %s", gs.Phase)
	}
	if !gs.Team1Joined || !gs.Team2Joined {
		t.Fatal("reset must keep join status")
	}
}

func TestGetGame_DetachedSnapshot(t *testing.T) {
	store := newMockStore()
	gs := deployedGame(t, store)

	snapshot, err := GetGame(store, gs.GameID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snapshot.Team1.Name = "Mutated"
	if gs.Team1.Name == "Mutated" {
		t.Fatal("snapshot must not share memory with the live state")
	}
}

func TestEventLog_Limit(t *testing.T) {
	store := newMockStore()
	gs := deployedGame(t, store)
	store.UpdateGame(gs.GameID, func(g *game.GameState) error {
		for i := 0; i < 10; i++ {
			g.AddEvent(fmt.Sprintf("event %d", i))
		}
		return nil
	})

	events, err := EventLog(store, gs.GameID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 3 || events[2] != "event 9" {
		t.Fatalf("expected the 3 newest events, got %v", events)
	}
}
