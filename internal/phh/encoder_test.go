package phh

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/holdem"
)

func playRecordedHand(t *testing.T) *holdem.HandHistory {
	t.Helper()
	g, err := holdem.New(3, 1000, 5, 10, holdem.WithSeed(7), holdem.WithButton(0))
	require.NoError(t, err)
	require.NoError(t, g.StartHand())

	require.NoError(t, g.TakeAction(holdem.Raise, 30)) // button
	require.NoError(t, g.TakeAction(holdem.Fold, 0))   // small blind
	require.NoError(t, g.TakeAction(holdem.Call, 0))   // big blind
	for g.IsHandRunning() {
		require.NoError(t, g.TakeAction(holdem.Check, 0))
	}
	return g.History()
}

func TestFromHistory(t *testing.T) {
	t.Parallel()

	hist := playRecordedHand(t)
	hand, err := FromHistory(hist, "table-1", time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, "NT", hand.Variant)
	require.Equal(t, "table-1", hand.Table)
	require.Equal(t, 3, hand.SeatCount)
	require.Equal(t, []int{0, 0, 0}, hand.Antes)
	require.Equal(t, []int{0, 5, 10}, hand.BlindsOrStraddles)
	require.Equal(t, 10, hand.MinBet)
	require.Equal(t, []int{1000, 1000, 1000}, hand.StartingStacks)
	require.Equal(t, hist.Settle.FinalChips, hand.FinishingStacks)
	require.Equal(t, 2026, hand.Year)
	require.Equal(t, 3, hand.Month)
	require.Equal(t, 9, hand.Day)

	// Three hole deals, the betting actions, and four board deals.
	require.Len(t, hand.Actions, 3+3+3+2+2+2)
	require.True(t, strings.HasPrefix(hand.Actions[0], "d dh p1 "))
	require.Contains(t, hand.Actions, "p1 cbr 30")
	require.Contains(t, hand.Actions, "p2 f")
	require.Contains(t, hand.Actions, "p3 cc")
}

func TestFromHistoryDealOrderAndBoards(t *testing.T) {
	t.Parallel()

	hist := playRecordedHand(t)
	hand, err := FromHistory(hist, "", time.Time{})
	require.NoError(t, err)

	var holeDeals, boardDeals int
	for _, a := range hand.Actions {
		switch {
		case strings.HasPrefix(a, "d dh "):
			holeDeals++
			require.Zero(t, boardDeals, "hole cards must precede board cards")
		case strings.HasPrefix(a, "d db "):
			boardDeals++
		}
	}
	require.Equal(t, 3, holeDeals)
	require.Equal(t, 3, boardDeals) // flop, turn, river
	require.Zero(t, hand.Year)
}

func TestFromHistoryRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := FromHistory(nil, "", time.Time{})
	require.Error(t, err)

	_, err = FromHistory(&holdem.HandHistory{}, "", time.Time{})
	require.Error(t, err)
}

func TestEncodeRendersTOML(t *testing.T) {
	t.Parallel()

	hist := playRecordedHand(t)
	hand, err := FromHistory(hist, "table-1", time.Time{})
	require.NoError(t, err)

	data, err := EncodeToBytes(hand)
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, `variant = "NT"`)
	require.Contains(t, out, `table = "table-1"`)
	require.Contains(t, out, "starting_stacks = [1000, 1000, 1000]")
	require.Contains(t, out, `"p1 cbr 30"`)

	require.Error(t, Encode(&strings.Builder{}, nil))
}
