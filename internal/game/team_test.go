package game

import "testing"

func TestTeam_BudgetTracking(t *testing.T) {
	tm := NewTeam("team1", "Watch", TeamCityWatch)
	if tm.BudgetRemaining() != DefaultBudget {
		t.Fatalf("expected full treasury, got %d", tm.BudgetRemaining())
	}
	if err := tm.PurchaseItem("Constable", 50000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.BudgetRemaining() != DefaultBudget-50000 {
		t.Fatalf("expected %d remaining, got %d", DefaultBudget-50000, tm.BudgetRemaining())
	}
	if err := tm.PurchaseItem("Gold Statue", DefaultBudget); err == nil {
		t.Fatal("expected error purchasing beyond the treasury")
	}
	if len(tm.PurchaseHistory) != 1 {
		t.Fatalf("failed purchases must not be recorded, got %v", tm.PurchaseHistory)
	}
}

func TestTeam_RerollPurchaseCap(t *testing.T) {
	tm := NewTeam("team1", "Watch", TeamCityWatch)
	for i := 0; i < 3; i++ {
		if err := tm.PurchaseReroll(50000, 3); err != nil {
			t.Fatalf("purchase %d: unexpected error: %v", i, err)
		}
	}
	if err := tm.PurchaseReroll(50000, 3); err == nil {
		t.Fatal("expected error purchasing beyond the reroll cap")
	}
	if tm.RerollsTotal != 3 {
		t.Fatalf("expected 3 rerolls, got %d", tm.RerollsTotal)
	}
}

func TestTeam_UseAndResetRerolls(t *testing.T) {
	tm := NewTeam("team1", "Watch", TeamCityWatch)
	tm.RerollsTotal = 2
	if err := tm.UseReroll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tm.UseReroll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tm.UseReroll(); err == nil {
		t.Fatal("expected error with no rerolls left this turn")
	}
	tm.ResetRerolls()
	if tm.RerollsRemaining() != 2 {
		t.Fatalf("expected pool restored to 2, got %d", tm.RerollsRemaining())
	}
}

func TestPlayer_StateTransitions(t *testing.T) {
	p := NewPlayer("p1", "team1", Archetype{Role: "Constable", MA: 6, ST: 3, AG: 3, PA: 4, AV: 9}, 1)
	if !p.IsStanding() || !p.IsActive() {
		t.Fatal("new player should be standing and active")
	}

	p.KnockDown()
	if p.State != StateProne {
		t.Fatalf("expected prone, got %s", p.State)
	}
	// Knockdown on an already-down player does nothing.
	p.Stun()
	p.KnockDown()
	if p.State != StateStunned {
		t.Fatalf("knockdown must not change a stunned player, got %s", p.State)
	}

	p.ResetTurn()
	if p.State != StateProne {
		t.Fatalf("stunned should recover to prone on turn reset, got %s", p.State)
	}

	p.KnockOut()
	if p.IsActive() {
		t.Fatal("knocked-out player must not be active")
	}
}
