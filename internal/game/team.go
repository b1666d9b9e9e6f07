package game

import "fmt"

// standard team treasury at the start of deployment
const DefaultBudget = 1_000_000

// Team is one side of the match. Owned by the game instance for its whole
// lifetime.
type Team struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	TeamType TeamType `json:"team_type"`

	// Budget tracking for deployment purchases.
	BudgetInitial   int      `json:"budget_initial"`
	BudgetSpent     int      `json:"budget_spent"`
	PurchaseHistory []string `json:"purchase_history"`

	// Reroll pool; used count resets on every turn switch.
	RerollsTotal int `json:"rerolls_total"`
	RerollsUsed  int `json:"rerolls_used"`

	Score int `json:"score"`

	PlayerIDs []string `json:"player_ids"`
}

// NewTeam returns a team with the standard treasury and no players.
func NewTeam(id, name string, teamType TeamType) *Team {
	return &Team{
		ID:            id,
		Name:          name,
		TeamType:      teamType,
		BudgetInitial: DefaultBudget,
	}
}

// BudgetRemaining returns the unspent treasury.
func (t *Team) BudgetRemaining() int {
	remaining := t.BudgetInitial - t.BudgetSpent
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanAfford reports whether the team can pay cost.
func (t *Team) CanAfford(cost int) bool {
	return t.BudgetRemaining() >= cost
}

// PurchaseItem debits the treasury and records the purchase.
func (t *Team) PurchaseItem(name string, cost int) error {
	if !t.CanAfford(cost) {
		return fmt.Errorf("insufficient funds: need %d, have %d", cost, t.BudgetRemaining())
	}
	t.BudgetSpent += cost
	t.PurchaseHistory = append(t.PurchaseHistory, fmt.Sprintf("%s (%dg)", name, cost))
	return nil
}

// PurchaseReroll buys one team reroll, respecting the roster cap.
func (t *Team) PurchaseReroll(cost, maxRerolls int) error {
	if t.RerollsTotal >= maxRerolls {
		return fmt.Errorf("cannot exceed maximum of %d rerolls", maxRerolls)
	}
	if err := t.PurchaseItem("Team Reroll", cost); err != nil {
		return err
	}
	t.RerollsTotal++
	return nil
}

// RerollsRemaining returns the rerolls available this turn.
func (t *Team) RerollsRemaining() int {
	remaining := t.RerollsTotal - t.RerollsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// UseReroll spends a reroll from this turn's pool.
func (t *Team) UseReroll() error {
	if t.RerollsRemaining() == 0 {
		return fmt.Errorf("no team rerolls remaining")
	}
	t.RerollsUsed++
	return nil
}

// ResetRerolls restores the per-turn reroll pool.
func (t *Team) ResetRerolls() { t.RerollsUsed = 0 }

// AddScore credits one point.
func (t *Team) AddScore() { t.Score++ }
