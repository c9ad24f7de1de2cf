package phh

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdem-engine/holdem"
	"github.com/lox/holdem-engine/poker"
)

// Encode writes the hand to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *Hand) error {
	if hand == nil {
		return fmt.Errorf("phh: hand is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *Hand) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// FromHistory converts a completed hand history into a PHH hand. Seats map
// one-to-one to PHH players: seat 0 is p1. The day fields are filled from
// the provided timestamp when it is non-zero.
func FromHistory(hist *holdem.HandHistory, table string, at time.Time) (*Hand, error) {
	if hist == nil || hist.Prehand == nil {
		return nil, fmt.Errorf("phh: history has no prehand record")
	}
	ph := hist.Prehand
	n := len(ph.PlayerChips)

	hand := &Hand{
		Variant:           "NT",
		Table:             table,
		SeatCount:         n,
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            ph.BigBlind,
		StartingStacks:    ph.PlayerChips,
	}
	// Players are numbered by seat (seat 0 is p1), so the blind amounts are
	// recorded seat-indexed as well.
	sb := sbSeat(hist)
	hand.BlindsOrStraddles[sb] = ph.SmallBlind
	hand.BlindsOrStraddles[bbSeat(hist, sb)] = ph.BigBlind
	if !at.IsZero() {
		hand.Year, hand.Month, hand.Day = at.Year(), int(at.Month()), at.Day()
	}

	for seat := 0; seat < n; seat++ {
		if cards, ok := ph.HoleCards[seat]; ok {
			hand.Actions = append(hand.Actions, fmt.Sprintf("d dh p%d %s", seat+1, cardString(cards)))
		}
	}
	for _, r := range hist.Rounds {
		if len(r.NewCards) > 0 {
			hand.Actions = append(hand.Actions, fmt.Sprintf("d db %s", cardString(r.NewCards)))
		}
		for _, e := range r.Entries {
			hand.Actions = append(hand.Actions, formatAction(e))
		}
	}
	if hist.Settle != nil {
		if len(hist.Settle.NewCards) > 0 {
			hand.Actions = append(hand.Actions, fmt.Sprintf("d db %s", cardString(hist.Settle.NewCards)))
		}
		hand.FinishingStacks = hist.Settle.FinalChips
	}
	return hand, nil
}

func formatAction(e holdem.HistoryEntry) string {
	player := fmt.Sprintf("p%d", e.Seat+1)
	switch e.Action {
	case holdem.Fold:
		return fmt.Sprintf("%s f", player)
	case holdem.Check, holdem.Call:
		return fmt.Sprintf("%s cc", player)
	case holdem.Raise:
		return fmt.Sprintf("%s cbr %d", player, e.Total)
	}
	return fmt.Sprintf("# %s %s", player, e.Action)
}

func cardString(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// sbSeat derives the small blind seat from the prehand record: the first
// dealt-in seat clockwise from the button, or the button itself heads-up.
func sbSeat(hist *holdem.HandHistory) int {
	ph := hist.Prehand
	n := len(ph.PlayerChips)
	if len(ph.HoleCards) == 2 {
		if _, ok := ph.HoleCards[ph.BtnLoc]; ok {
			return ph.BtnLoc
		}
	}
	for i := 1; i <= n; i++ {
		seat := (ph.BtnLoc + i) % n
		if _, ok := ph.HoleCards[seat]; ok {
			return seat
		}
	}
	return ph.BtnLoc
}

func bbSeat(hist *holdem.HandHistory, sb int) int {
	ph := hist.Prehand
	n := len(ph.PlayerChips)
	for i := 1; i <= n; i++ {
		seat := (sb + i) % n
		if _, ok := ph.HoleCards[seat]; ok {
			return seat
		}
	}
	return sb
}
