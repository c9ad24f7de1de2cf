package holdem

import (
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/poker"
)

// CardSource supplies shuffled cards for each hand. Implementations own their
// randomness. Reset starts a fresh shuffled deck; Clone produces an
// independent copy, optionally reshuffling the not-yet-drawn cards while
// preserving everything already dealt.
type CardSource interface {
	Draw(n int) []poker.Card
	Reset()
	Clone(reshuffleRemaining bool) CardSource
}

// Ranker orders showdown hands. Implementations must be pure: the same hole
// cards and board always produce the same rank.
type Ranker interface {
	Rank(hole, board []poker.Card) poker.HandRank
}

// RankerFunc adapts a function to the Ranker interface.
type RankerFunc func(hole, board []poker.Card) poker.HandRank

// Rank implements Ranker.
func (f RankerFunc) Rank(hole, board []poker.Card) poker.HandRank {
	return f(hole, board)
}

func defaultRanker() Ranker {
	return RankerFunc(func(hole, board []poker.Card) poker.HandRank {
		cards := make([]poker.Card, 0, len(hole)+len(board))
		cards = append(cards, hole...)
		cards = append(cards, board...)
		return poker.Evaluate7(cards)
	})
}

// deckSource is the default CardSource: a 52-card deck seeded via randutil.
type deckSource struct {
	deck   *poker.Deck
	seed   int64
	clones int64
}

func newDeckSource(seed int64) *deckSource {
	return &deckSource{deck: poker.NewDeck(randutil.New(seed)), seed: seed}
}

func (s *deckSource) Draw(n int) []poker.Card {
	return s.deck.Deal(n)
}

func (s *deckSource) Reset() {
	s.deck.Shuffle()
}

func (s *deckSource) Clone(reshuffleRemaining bool) CardSource {
	s.clones++
	seed := randutil.Derive(s.seed, s.clones)
	return &deckSource{deck: s.deck.Clone(randutil.New(seed), reshuffleRemaining), seed: seed}
}

// scriptedSource replays a fixed card sequence, used when reconstructing a
// game from a recorded hand history.
type scriptedSource struct {
	cards []poker.Card
	next  int
}

func (s *scriptedSource) Draw(n int) []poker.Card {
	if s.next+n > len(s.cards) {
		return nil
	}
	cards := s.cards[s.next : s.next+n]
	s.next += n
	return cards
}

func (s *scriptedSource) Reset() {
	s.next = 0
}

func (s *scriptedSource) Clone(bool) CardSource {
	return &scriptedSource{cards: s.cards, next: s.next}
}
