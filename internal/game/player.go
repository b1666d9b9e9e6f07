package game

import "fmt"

// Archetype is a roster slot definition: the statline and skills shared by
// every player bought from that slot. Targets (AG, PA, AV) are the minimum
// d6/2d6 result needed, so AG 3 reads as "3+".
type Archetype struct {
	Role        string      `json:"role"`
	Cost        int         `json:"cost"`
	MaxQuantity int         `json:"max_quantity"`
	MA          int         `json:"ma"` // movement allowance in squares
	ST          int         `json:"st"` // strength
	AG          int         `json:"ag"` // agility target
	PA          int         `json:"pa"` // passing target
	AV          int         `json:"av"` // armor target (2d6)
	Skills      []SkillType `json:"skills"`
}

// Player is one participant on the pitch. Created during team setup and
// never destroyed: a casualty keeps its record for history and statistics.
type Player struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Archetype Archetype `json:"archetype"`
	Number    int       `json:"number"` // jersey number for display and logs

	State        PlayerState `json:"state"`
	MovementUsed int         `json:"movement_used"`
	HasActed     bool        `json:"has_acted"`

	Skills []SkillType `json:"skills"`
}

// NewPlayer creates a standing player from an archetype, copying the
// archetype's skills onto the instance.
func NewPlayer(id, teamID string, arch Archetype, number int) *Player {
	return &Player{
		ID:        id,
		TeamID:    teamID,
		Archetype: arch,
		Number:    number,
		State:     StateStanding,
		Skills:    append([]SkillType(nil), arch.Skills...),
	}
}

// DisplayName combines the roster role and jersey number for logs.
func (p *Player) DisplayName() string {
	return fmt.Sprintf("%s #%d", p.Archetype.Role, p.Number)
}

// IsActive reports whether the player is still part of play (standing or
// prone). Stunned, knocked-out and casualty players cannot act.
func (p *Player) IsActive() bool {
	return p.State == StateStanding || p.State == StateProne
}

// IsStanding reports whether the player may take actions.
func (p *Player) IsStanding() bool {
	return p.State == StateStanding
}

// MovementRemaining returns the squares of normal movement left this turn.
func (p *Player) MovementRemaining() int {
	remaining := p.Archetype.MA - p.MovementUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// UseMovement consumes movement allowance.
func (p *Player) UseMovement(squares int) {
	p.MovementUsed += squares
}

// ResetTurn clears per-turn tracking at the start of the owner's turn.
// Stunned players recover to prone here, not via standing up.
func (p *Player) ResetTurn() {
	p.MovementUsed = 0
	p.HasActed = false
	if p.State == StateStunned {
		p.State = StateProne
	}
}

// KnockDown puts a standing player prone. Players already down are left
// unchanged.
func (p *Player) KnockDown() {
	if p.State == StateStanding {
		p.State = StateProne
	}
}

// Stun marks the player stunned until its team's next turn reset.
func (p *Player) Stun() { p.State = StateStunned }

// KnockOut removes the player from play for the rest of the drive.
func (p *Player) KnockOut() { p.State = StateKnockedOut }

// Casualty permanently removes the player from the match.
func (p *Player) Casualty() { p.State = StateCasualty }

// HasSkill reports whether the player carries the given skill.
func (p *Player) HasSkill(skill SkillType) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
