package game

import "fmt"

// Pitch tracks player occupancy and the ball. Occupancy is a bijection from
// player id to square: no two players may ever share a square, and every
// mutation below preserves that. The ball, once placed, always has exactly
// one location: either loose at BallPosition or held by BallCarrier (whose
// square it follows).
type Pitch struct {
	// PlayerPositions maps player id to the square it occupies.
	PlayerPositions map[string]Position `json:"player_positions"`

	BallPosition *Position `json:"ball_position,omitempty"`
	BallCarrier  string    `json:"ball_carrier,omitempty"`
}

// NewPitch returns an empty pitch with no ball placed.
func NewPitch() *Pitch {
	return &Pitch{PlayerPositions: make(map[string]Position)}
}

// PlayerAt returns the id of the player occupying pos, or "" if the square
// is empty.
func (p *Pitch) PlayerAt(pos Position) string {
	for id, playerPos := range p.PlayerPositions {
		if playerPos == pos {
			return id
		}
	}
	return ""
}

// IsOccupied reports whether any player occupies pos.
func (p *Pitch) IsOccupied(pos Position) bool {
	return p.PlayerAt(pos) != ""
}

// AdjacentPlayers returns the ids of all players on squares adjacent to pos.
func (p *Pitch) AdjacentPlayers(pos Position) []string {
	var adjacent []string
	for id, playerPos := range p.PlayerPositions {
		if playerPos.IsAdjacent(pos) {
			adjacent = append(adjacent, id)
		}
	}
	return adjacent
}

// PositionOf returns the square occupied by the player and whether the
// player is on the pitch at all.
func (p *Pitch) PositionOf(playerID string) (Position, bool) {
	pos, ok := p.PlayerPositions[playerID]
	return pos, ok
}

// MovePlayer relocates a player to an empty square. If the player carries
// the ball, the ball moves with it in the same step.
func (p *Pitch) MovePlayer(playerID string, to Position) error {
	if _, ok := p.PlayerPositions[playerID]; !ok {
		return fmt.Errorf("player %s not on pitch", playerID)
	}
	if p.IsOccupied(to) {
		return fmt.Errorf("square (%d,%d) is already occupied", to.X, to.Y)
	}
	p.PlayerPositions[playerID] = to
	if p.BallCarrier == playerID {
		ball := to
		p.BallPosition = &ball
	}
	return nil
}

// PlaceOnPitch puts a player on a square during deployment. The square must
// be free.
func (p *Pitch) PlaceOnPitch(playerID string, pos Position) error {
	if occupant := p.PlayerAt(pos); occupant != "" && occupant != playerID {
		return fmt.Errorf("square (%d,%d) is already occupied by %s", pos.X, pos.Y, occupant)
	}
	p.PlayerPositions[playerID] = pos
	return nil
}

// PlaceBall puts the ball loose on a square, clearing any carrier.
func (p *Pitch) PlaceBall(pos Position) {
	ball := pos
	p.BallPosition = &ball
	p.BallCarrier = ""
}

// PickUpBall assigns the ball to a player standing on its square.
func (p *Pitch) PickUpBall(playerID string) error {
	pos, ok := p.PlayerPositions[playerID]
	if !ok {
		return fmt.Errorf("player %s not on pitch", playerID)
	}
	if p.BallPosition == nil || *p.BallPosition != pos {
		return fmt.Errorf("ball is not at player position")
	}
	p.BallCarrier = playerID
	ball := pos
	p.BallPosition = &ball
	return nil
}

// DropBall releases the ball at the carrier's square. No-op when the ball
// is not held.
func (p *Pitch) DropBall() {
	if p.BallCarrier == "" {
		return
	}
	if pos, ok := p.PlayerPositions[p.BallCarrier]; ok {
		ball := pos
		p.BallPosition = &ball
	}
	p.BallCarrier = ""
}
