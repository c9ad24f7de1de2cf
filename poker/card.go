package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter suit notation used in hand histories.
func (s Suit) String() string {
	return [...]string{"c", "d", "h", "s"}[s]
}

// Rank represents a card rank. Two is the lowest, Ace the highest.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-letter rank notation.
func (r Rank) String() string {
	return [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}[r]
}

// Card identifies one of the 52 playing cards. The encoding is rank*4+suit so
// cards sort by rank.
type Card uint8

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(rank)*4 + Card(suit)
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(c / 4)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(c % 4)
}

// String returns the two-letter notation, e.g. "As" or "2c".
func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses two-letter notation like "As" or "td" (case-insensitive
// rank, lowercase suit expected but uppercase tolerated).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("poker: invalid card %q", s)
	}
	rank := strings.IndexByte("23456789TJQKA", upper(s[0]))
	suit := strings.IndexByte("cdhs", lower(s[1]))
	if rank < 0 || suit < 0 {
		return 0, fmt.Errorf("poker: invalid card %q", s)
	}
	return NewCard(Rank(rank), Suit(suit)), nil
}

// ParseCards parses a space-separated list of cards, e.g. "As Kh 2c".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards renders cards as space-separated two-letter notation.
func FormatCards(cards []Card) string {
	var b strings.Builder
	for i, c := range cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
