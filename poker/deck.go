package poker

import (
	rand "math/rand/v2"
)

// Deck represents a standard 52-card deck.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck drawing randomness from rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for i := range d.cards {
		d.cards[i] = Card(i)
	}
	d.Shuffle()
	return d
}

// Shuffle rewinds the deck and shuffles all 52 cards using Fisher-Yates.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// ShuffleRemaining reshuffles only the undealt portion of the deck, leaving
// already-dealt cards untouched.
func (d *Deck) ShuffleRemaining() {
	for i := len(d.cards) - 1; i > d.next; i-- {
		j := d.next + d.rng.IntN(i-d.next+1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck. Returns nil if fewer than n remain.
// The returned slice is independent of the deck's internal state.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Clone returns a copy of the deck with the same remaining card order. The
// clone draws future randomness from rng; when reshuffleRemaining is set the
// undealt cards are reshuffled so the clone's future deals diverge.
func (d *Deck) Clone(rng *rand.Rand, reshuffleRemaining bool) *Deck {
	nd := &Deck{cards: d.cards, next: d.next, rng: rng}
	if reshuffleRemaining {
		nd.ShuffleRemaining()
	}
	return nd
}
