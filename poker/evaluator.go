package poker

import (
	"math/bits"
)

// HandRank represents the strength of a poker hand. Higher values are stronger.
type HandRank uint32

// HandType enumerates the categories of poker hands ordered from weakest to
// strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the category name.
func (t HandType) String() string {
	return [...]string{
		"high card", "pair", "two pair", "three of a kind", "straight",
		"flush", "full house", "four of a kind", "straight flush",
	}[t]
}

// Type returns the category of the hand.
func (hr HandRank) Type() HandType {
	return HandType(hr >> 20)
}

// CompareHands orders two hand ranks: positive if a is stronger, negative if
// b is stronger, zero on a tie.
func CompareHands(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Evaluate5 ranks exactly five cards.
func Evaluate5(cards []Card) HandRank {
	var counts [13]uint8
	var suits [4]uint8
	var mask uint16
	for _, c := range cards {
		counts[c.Rank()]++
		suits[c.Suit()]++
		mask |= 1 << c.Rank()
	}

	flush := suits[0] == 5 || suits[1] == 5 || suits[2] == 5 || suits[3] == 5
	straight := straightHigh(mask)

	if flush && straight >= 0 {
		return pack(StraightFlush, straight)
	}

	// Order distinct ranks by count then rank, strongest first.
	var quad, trip = -1, -1
	var pairs, singles []int
	for r := 12; r >= 0; r-- {
		switch counts[r] {
		case 4:
			quad = r
		case 3:
			trip = r
		case 2:
			pairs = append(pairs, r)
		case 1:
			singles = append(singles, r)
		}
	}

	switch {
	case quad >= 0:
		return pack(FourOfAKind, quad, singles[0])
	case trip >= 0 && len(pairs) > 0:
		return pack(FullHouse, trip, pairs[0])
	case flush:
		return pack(Flush, singles[0], singles[1], singles[2], singles[3], singles[4])
	case straight >= 0:
		return pack(Straight, straight)
	case trip >= 0:
		return pack(ThreeOfAKind, trip, singles[0], singles[1])
	case len(pairs) == 2:
		return pack(TwoPair, pairs[0], pairs[1], singles[0])
	case len(pairs) == 1:
		return pack(Pair, pairs[0], singles[0], singles[1], singles[2])
	default:
		return pack(HighCard, singles[0], singles[1], singles[2], singles[3], singles[4])
	}
}

// Evaluate7 ranks the best five-card hand from five to seven cards.
func Evaluate7(cards []Card) HandRank {
	if len(cards) == 5 {
		return Evaluate5(cards)
	}

	var best HandRank
	var pick [5]Card
	n := len(cards)
	for m := uint(0); m < 1<<n; m++ {
		if bits.OnesCount(m) != 5 {
			continue
		}
		k := 0
		for i := 0; i < n; i++ {
			if m&(1<<i) != 0 {
				pick[k] = cards[i]
				k++
			}
		}
		if r := Evaluate5(pick[:]); r > best {
			best = r
		}
	}
	return best
}

// straightHigh returns the high-card rank index of a straight contained in
// the rank mask, or -1. The wheel (A-2-3-4-5) reports Five as its high card.
func straightHigh(mask uint16) int {
	for high := 12; high >= 4; high-- {
		if mask>>(high-4)&0x1f == 0x1f {
			return high
		}
	}
	// Ace plays low in the wheel.
	if mask&0x100f == 0x100f {
		return int(Five)
	}
	return -1
}

// pack encodes a category and its tiebreak ranks, most significant first,
// into a single comparable value.
func pack(t HandType, ranks ...int) HandRank {
	v := HandRank(t) << 20
	shift := 16
	for _, r := range ranks {
		v |= HandRank(r) << shift
		shift -= 4
	}
	return v
}
