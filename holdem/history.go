package holdem

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lox/holdem-engine/poker"
)

// HistoryEntry records one applied action. Total carries the street total for
// raises and is zero otherwise. Actions are recorded post-translation: an
// all-in submission appears as the call or raise it resolved to.
type HistoryEntry struct {
	Phase  HandPhase
	Seat   int
	Action ActionType
	Total  int
	Time   time.Time
}

// PrehandHistory captures the table state when blinds were posted.
type PrehandHistory struct {
	BtnLoc      int
	SmallBlind  int
	BigBlind    int
	PlayerChips []int
	HoleCards   map[int][]poker.Card
}

// RoundHistory is the ordered action log for one betting phase, plus the
// board cards dealt entering it.
type RoundHistory struct {
	Phase    HandPhase
	NewCards []poker.Card
	Entries  []HistoryEntry
}

// PotWin records one pot award at settlement.
type PotWin struct {
	Pot    int
	Seat   int
	Amount int
}

// SettleHistory captures settlement: any board runout dealt for an all-in
// race plus the per-pot awards.
type SettleHistory struct {
	NewCards   []poker.Card
	Wins       []PotWin
	FinalChips []int
}

// HandHistory is the ordered per-phase log of a single hand. Appends are
// purely additive and each entry is fully built before it is stored; the
// engine's single-writer contract means a reader never observes a partial
// record.
type HandHistory struct {
	Prehand *PrehandHistory
	Rounds  []*RoundHistory
	Settle  *SettleHistory
}

func newHandHistory() *HandHistory {
	return &HandHistory{}
}

func (h *HandHistory) startRound(phase HandPhase, cards []poker.Card) {
	h.Rounds = append(h.Rounds, &RoundHistory{Phase: phase, NewCards: cards})
}

func (h *HandHistory) append(e HistoryEntry) {
	round := h.Rounds[len(h.Rounds)-1]
	round.Entries = append(round.Entries, e)
}

// Round returns the action log for a betting phase, or nil if the hand never
// reached it.
func (h *HandHistory) Round(phase HandPhase) *RoundHistory {
	for _, r := range h.Rounds {
		if r.Phase == phase {
			return r
		}
	}
	return nil
}

// Combined returns the hand-wide flattened action sequence in phase order.
func (h *HandHistory) Combined() []HistoryEntry {
	var entries []HistoryEntry
	for _, r := range h.Rounds {
		entries = append(entries, r.Entries...)
	}
	return entries
}

// String renders the history in a line-oriented notation, one record per
// action. Timestamps are omitted so structurally identical hands render
// identically.
func (h *HandHistory) String() string {
	var b strings.Builder
	if h.Prehand != nil {
		fmt.Fprintf(&b, "prehand btn=%d blinds=%d/%d\n", h.Prehand.BtnLoc, h.Prehand.SmallBlind, h.Prehand.BigBlind)
		fmt.Fprintf(&b, "chips %s\n", joinInts(h.Prehand.PlayerChips))
		seats := make([]int, 0, len(h.Prehand.HoleCards))
		for seat := range h.Prehand.HoleCards {
			seats = append(seats, seat)
		}
		sort.Ints(seats)
		for _, seat := range seats {
			fmt.Fprintf(&b, "deal p%d %s\n", seat, poker.FormatCards(h.Prehand.HoleCards[seat]))
		}
	}
	for _, r := range h.Rounds {
		if len(r.NewCards) > 0 {
			fmt.Fprintf(&b, "%s %s\n", r.Phase, poker.FormatCards(r.NewCards))
		} else {
			fmt.Fprintf(&b, "%s\n", r.Phase)
		}
		for _, e := range r.Entries {
			if e.Action == Raise {
				fmt.Fprintf(&b, "p%d raise %d\n", e.Seat, e.Total)
			} else {
				fmt.Fprintf(&b, "p%d %s\n", e.Seat, e.Action)
			}
		}
	}
	if h.Settle != nil {
		if len(h.Settle.NewCards) > 0 {
			fmt.Fprintf(&b, "settle %s\n", poker.FormatCards(h.Settle.NewCards))
		} else {
			fmt.Fprintf(&b, "settle\n")
		}
		for _, w := range h.Settle.Wins {
			fmt.Fprintf(&b, "win pot%d p%d %d\n", w.Pot, w.Seat, w.Amount)
		}
		fmt.Fprintf(&b, "stacks %s\n", joinInts(h.Settle.FinalChips))
	}
	return b.String()
}

// Clone returns an independent deep copy of the history.
func (h *HandHistory) Clone() *HandHistory {
	nh := newHandHistory()
	if h.Prehand != nil {
		ph := *h.Prehand
		ph.PlayerChips = append([]int(nil), h.Prehand.PlayerChips...)
		ph.HoleCards = make(map[int][]poker.Card, len(h.Prehand.HoleCards))
		for seat, cards := range h.Prehand.HoleCards {
			ph.HoleCards[seat] = append([]poker.Card(nil), cards...)
		}
		nh.Prehand = &ph
	}
	for _, r := range h.Rounds {
		nr := &RoundHistory{
			Phase:    r.Phase,
			NewCards: append([]poker.Card(nil), r.NewCards...),
			Entries:  append([]HistoryEntry(nil), r.Entries...),
		}
		nh.Rounds = append(nh.Rounds, nr)
	}
	if h.Settle != nil {
		sh := *h.Settle
		sh.NewCards = append([]poker.Card(nil), h.Settle.NewCards...)
		sh.Wins = append([]PotWin(nil), h.Settle.Wins...)
		sh.FinalChips = append([]int(nil), h.Settle.FinalChips...)
		nh.Settle = &sh
	}
	return nh
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
