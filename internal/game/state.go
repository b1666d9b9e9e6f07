package game

import "fmt"

// half length in full rounds
const turnsPerHalf = 8

// TurnState tracks whose turn it is and which once-per-turn actions have
// been spent.
type TurnState struct {
	Half         int    `json:"half"`      // 1 or 2
	TeamTurn     int    `json:"team_turn"` // full rounds completed this half (0-8)
	ActiveTeamID string `json:"active_team_id"`

	ChargeUsed    bool `json:"charge_used"`
	HurlUsed      bool `json:"hurl_used"`
	QuickPassUsed bool `json:"quick_pass_used"`
	BootUsed      bool `json:"boot_used"`
}

// GameState is the complete state of one match. A single instance must only
// be mutated by one caller at a time; the store serializes access.
type GameState struct {
	GameID string    `json:"game_id"`
	Phase  GamePhase `json:"phase"`

	Team1 *Team `json:"team1"`
	Team2 *Team `json:"team2"`

	Team1Joined bool `json:"team1_joined"`
	Team2Joined bool `json:"team2_joined"`
	Started     bool `json:"started"`

	Players map[string]*Player `json:"players"`
	Pitch   *Pitch             `json:"pitch"`
	Turn    *TurnState         `json:"turn,omitempty"`

	EventLog []string `json:"event_log"`
}

// NewGameState creates a match in the deployment phase with two empty teams.
func NewGameState(gameID string, team1, team2 *Team) *GameState {
	return &GameState{
		GameID:  gameID,
		Phase:   PhaseDeployment,
		Team1:   team1,
		Team2:   team2,
		Players: make(map[string]*Player),
		Pitch:   NewPitch(),
	}
}

// PlayersReady reports whether both teams have joined.
func (g *GameState) PlayersReady() bool {
	return g.Team1Joined && g.Team2Joined
}

// Player looks up a player by id. An unknown id is caller misuse, not a
// game-rule denial, so it is returned as an error.
func (g *GameState) Player(id string) (*Player, error) {
	p, ok := g.Players[id]
	if !ok {
		return nil, fmt.Errorf("player not found: %s", id)
	}
	return p, nil
}

// TeamByID looks up a team by id.
func (g *GameState) TeamByID(id string) (*Team, error) {
	switch id {
	case g.Team1.ID:
		return g.Team1, nil
	case g.Team2.ID:
		return g.Team2, nil
	}
	return nil, fmt.Errorf("team not found: %s", id)
}

// OpposingTeamID returns the id of the other team.
func (g *GameState) OpposingTeamID(teamID string) string {
	if teamID == g.Team1.ID {
		return g.Team2.ID
	}
	return g.Team1.ID
}

// ActiveTeam returns the team whose turn it is.
func (g *GameState) ActiveTeam() (*Team, error) {
	if g.Turn == nil {
		return nil, fmt.Errorf("no active turn")
	}
	return g.TeamByID(g.Turn.ActiveTeamID)
}

// TeamPlayers returns all players belonging to a team.
func (g *GameState) TeamPlayers(teamID string) []*Player {
	var players []*Player
	for _, p := range g.Players {
		if p.TeamID == teamID {
			players = append(players, p)
		}
	}
	return players
}

// IsOnActiveTeam reports whether the player belongs to the team whose turn
// it is.
func (g *GameState) IsOnActiveTeam(playerID string) bool {
	if g.Turn == nil {
		return false
	}
	p, ok := g.Players[playerID]
	return ok && p.TeamID == g.Turn.ActiveTeamID
}

// AddEvent appends to the match's human-readable play-by-play log.
func (g *GameState) AddEvent(event string) {
	g.EventLog = append(g.EventLog, event)
}

// StartMatch moves Deployment -> OpeningScramble: both teams must have
// joined. Initializes the turn state for team1 and places the ball at the
// pitch center.
func (g *GameState) StartMatch() error {
	if !g.PlayersReady() {
		return fmt.Errorf("both teams must join before starting")
	}
	if g.Phase != PhaseDeployment {
		return fmt.Errorf("match must be in deployment phase to start")
	}
	g.Phase = PhaseOpeningScramble
	g.Started = true
	g.Turn = &TurnState{Half: 1, TeamTurn: 0, ActiveTeamID: g.Team1.ID}
	g.Pitch.PlaceBall(BallStartPosition())
	g.AddEvent("The Opening Scramble begins!")
	return nil
}

// BeginPlay moves OpeningScramble -> ActivePlay once the kickoff is done.
func (g *GameState) BeginPlay() error {
	if g.Phase != PhaseOpeningScramble {
		return fmt.Errorf("match is not at the opening scramble")
	}
	g.Phase = PhaseActivePlay
	return nil
}

// BeginSecondHalf resumes play after the intermission. This is the only
// backward transition in the phase machine.
func (g *GameState) BeginSecondHalf() error {
	if g.Phase != PhaseIntermission {
		return fmt.Errorf("match is not at the intermission")
	}
	g.Phase = PhaseActivePlay
	g.AddEvent("Second half begins!")
	return nil
}

// SwitchTurn hands control to the other team: resets the outgoing team's
// per-turn player state (stunned players recover to prone), clears the four
// once-per-turn action flags, restores the outgoing team's reroll pool, and
// advances the round counter when control returns to team1. Reaching the
// full round count ends the half.
func (g *GameState) SwitchTurn() error {
	if g.Turn == nil {
		return fmt.Errorf("no active turn")
	}

	outgoing, err := g.ActiveTeam()
	if err != nil {
		return err
	}
	for _, p := range g.TeamPlayers(outgoing.ID) {
		p.ResetTurn()
	}
	outgoing.ResetRerolls()

	g.Turn.ChargeUsed = false
	g.Turn.HurlUsed = false
	g.Turn.QuickPassUsed = false
	g.Turn.BootUsed = false

	if g.Turn.ActiveTeamID == g.Team1.ID {
		g.Turn.ActiveTeamID = g.Team2.ID
	} else {
		g.Turn.ActiveTeamID = g.Team1.ID
		// The counter advances once per full round, not once per switch.
		g.Turn.TeamTurn++
	}

	if g.Turn.TeamTurn >= turnsPerHalf {
		g.endHalf()
	}
	return nil
}

func (g *GameState) endHalf() {
	if g.Turn.Half == 1 {
		g.Turn.Half = 2
		g.Turn.TeamTurn = 0
		g.Phase = PhaseIntermission
		g.AddEvent("Intermission!")
	} else {
		g.Phase = PhaseConcluded
		g.AddEvent("Match concluded!")
	}
}

// CheckScoring awards a point when the ball carrier has reached the
// opposing end zone. Returns the scoring team's id, or "" when no score
// occurred. After a score the carrier is cleared and the ball returns to
// the pitch center for the next drive.
func (g *GameState) CheckScoring() string {
	if g.Pitch.BallCarrier == "" {
		return ""
	}
	carrier, ok := g.Players[g.Pitch.BallCarrier]
	if !ok {
		return ""
	}
	pos, ok := g.Pitch.PositionOf(carrier.ID)
	if !ok {
		return ""
	}

	var scored *Team
	if carrier.TeamID == g.Team1.ID && pos.X >= Team1ScoringX {
		scored = g.Team1
	} else if carrier.TeamID == g.Team2.ID && pos.X <= Team2ScoringX {
		scored = g.Team2
	}
	if scored == nil {
		return ""
	}

	scored.AddScore()
	g.AddEvent(fmt.Sprintf("%s scored!", scored.Name))
	g.Pitch.BallCarrier = ""
	g.Pitch.PlaceBall(BallStartPosition())
	return scored.ID
}

// ResetToDeployment clears the pitch and players for a fresh setup while
// keeping join status and the event log.
func (g *GameState) ResetToDeployment() {
	g.Pitch = NewPitch()
	g.Players = make(map[string]*Player)
	g.Phase = PhaseDeployment
	g.Started = false
	g.Turn = nil
	g.AddEvent("Game reset to deployment phase")
}
