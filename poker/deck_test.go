package poker

import (
	"testing"

	"github.com/lox/holdem-engine/internal/randutil"
)

func TestDeckDealsAllCardsOnce(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(1))
	seen := make(map[Card]bool)
	for d.Remaining() > 0 {
		cards := d.Deal(1)
		if seen[cards[0]] {
			t.Fatalf("card %v dealt twice", cards[0])
		}
		seen[cards[0]] = true
	}
	if len(seen) != 52 {
		t.Errorf("dealt %d distinct cards, want 52", len(seen))
	}
	if d.Deal(1) != nil {
		t.Error("deal from empty deck should return nil")
	}
}

func TestDeckDeterministicBySeed(t *testing.T) {
	t.Parallel()

	a := NewDeck(randutil.New(42)).Deal(10)
	b := NewDeck(randutil.New(42)).Deal(10)
	c := NewDeck(randutil.New(43)).Deal(10)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at card %d: %v vs %v", i, a[i], b[i])
		}
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical first 10 cards")
	}
}

func TestShuffleRemainingPreservesDealt(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(7))
	dealt := d.Deal(5)

	remaining := d.Remaining()
	d.ShuffleRemaining()
	if d.Remaining() != remaining {
		t.Fatalf("remaining changed: %d -> %d", remaining, d.Remaining())
	}

	// Dealt cards must not reappear.
	seen := make(map[Card]bool)
	for _, c := range dealt {
		seen[c] = true
	}
	for d.Remaining() > 0 {
		c := d.Deal(1)[0]
		if seen[c] {
			t.Fatalf("dealt card %v reappeared after reshuffle", c)
		}
		seen[c] = true
	}
}

func TestCloneKeepsRemainingOrder(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(9))
	d.Deal(6)

	clone := d.Clone(randutil.New(10), false)
	for d.Remaining() > 0 {
		if a, b := d.Deal(1)[0], clone.Deal(1)[0]; a != b {
			t.Fatalf("clone diverged: %v vs %v", a, b)
		}
	}
}

func TestCloneReshuffleDivergesButConserves(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(11))
	d.Deal(6)

	orig := append([]Card(nil), d.Deal(d.Remaining())...)
	d = NewDeck(randutil.New(11))
	d.Deal(6)

	clone := d.Clone(randutil.New(12), true)
	shuffled := clone.Deal(clone.Remaining())
	if len(shuffled) != len(orig) {
		t.Fatalf("remaining count changed: %d vs %d", len(shuffled), len(orig))
	}

	// Same card population, in some order.
	counts := make(map[Card]int)
	for _, c := range orig {
		counts[c]++
	}
	for _, c := range shuffled {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %v count off by %d after reshuffle", c, n)
		}
	}
}
