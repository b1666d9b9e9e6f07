package game

import "testing"

func TestPitch_OccupancyIsExclusive(t *testing.T) {
	p := NewPitch()
	if err := p.PlaceOnPitch("a", Position{3, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.PlaceOnPitch("b", Position{3, 3}); err == nil {
		t.Fatal("expected error placing a second player on an occupied square")
	}
	if err := p.PlaceOnPitch("b", Position{4, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.MovePlayer("b", Position{3, 3}); err == nil {
		t.Fatal("expected error moving onto an occupied square")
	}
}

func TestPitch_BallFollowsCarrier(t *testing.T) {
	p := NewPitch()
	if err := p.PlaceOnPitch("a", Position{3, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.PlaceBall(Position{3, 3})
	if err := p.PickUpBall("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.MovePlayer("a", Position{4, 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BallPosition == nil || *p.BallPosition != (Position{4, 4}) {
		t.Fatalf("ball should move with its carrier, got %v", p.BallPosition)
	}
	if p.BallCarrier != "a" {
		t.Fatalf("carrier should be unchanged, got %q", p.BallCarrier)
	}
}

func TestPitch_PickUpBallRequiresSameSquare(t *testing.T) {
	p := NewPitch()
	if err := p.PlaceOnPitch("a", Position{3, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.PlaceBall(Position{5, 5})
	if err := p.PickUpBall("a"); err == nil {
		t.Fatal("expected error picking up a ball on a different square")
	}
}

func TestPitch_DropBallLeavesItAtCarrierSquare(t *testing.T) {
	p := NewPitch()
	if err := p.PlaceOnPitch("a", Position{6, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.PlaceBall(Position{6, 2})
	if err := p.PickUpBall("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.DropBall()
	if p.BallCarrier != "" {
		t.Fatalf("expected no carrier after drop, got %q", p.BallCarrier)
	}
	if p.BallPosition == nil || *p.BallPosition != (Position{6, 2}) {
		t.Fatalf("ball should stay at the carrier's square, got %v", p.BallPosition)
	}
}
