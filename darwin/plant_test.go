package darwin

import "testing"

func TestPlantDecreaseClampsAtZero(t *testing.T) {
	var p Plant
	p.Decrease()
	if got := p.Amount(); got != 0 {
		t.Fatalf("Decrease on empty plant: amount = %d, want 0", got)
	}

	p.Increase()
	p.Increase()
	p.Decrease()
	if got := p.Amount(); got != 1 {
		t.Fatalf("amount = %d, want 1", got)
	}
	p.Decrease()
	p.Decrease()
	if got := p.Amount(); got != 0 {
		t.Fatalf("amount = %d, want 0", got)
	}
}

func TestPlantIncreaseUnbounded(t *testing.T) {
	var p Plant
	for i := 0; i < 1000; i++ {
		p.Increase()
	}
	if got := p.Amount(); got != 1000 {
		t.Fatalf("amount = %d, want 1000", got)
	}
}
