package holdem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, seats int, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithSeed(1)}, opts...)
	g, err := New(seats, 1000, 5, 10, opts...)
	require.NoError(t, err)
	return g
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(1, 1000, 5, 10)
	require.Error(t, err)

	_, err = New(6, 1000, 0, 10)
	require.Error(t, err)

	_, err = New(6, 1000, 10, 5)
	require.Error(t, err)

	_, err = New(6, -1, 5, 10)
	require.Error(t, err)
}

func TestStartHandPositions(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 6)
	require.NoError(t, g.StartHand())

	// The button starts at seat 0 and the blinds follow it.
	require.Equal(t, 0, g.BtnLoc())
	require.Equal(t, 1, g.SBLoc())
	require.Equal(t, 2, g.BBLoc())
	require.Equal(t, 3, g.CurrentPlayer())
	require.Equal(t, Preflop, g.Phase())
	require.True(t, g.IsGameRunning())
	require.True(t, g.IsHandRunning())
}

func TestStartHandBlindsAndStates(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 6)
	require.NoError(t, g.StartHand())

	players := g.Players()
	require.Equal(t, 995, players[g.SBLoc()].Chips)
	require.Equal(t, 990, players[g.BBLoc()].Chips)

	// The small blind owes the difference, the big blind is settled, everyone
	// else owes the full blind.
	require.Equal(t, StateToCall, players[g.SBLoc()].State)
	require.Equal(t, StateIn, players[g.BBLoc()].State)
	require.Equal(t, 5, g.ChipsToCall(g.SBLoc()))
	require.Equal(t, 0, g.ChipsToCall(g.BBLoc()))
	for _, p := range players {
		if p.Seat != g.SBLoc() && p.Seat != g.BBLoc() {
			require.Equal(t, StateToCall, p.State, "seat %d", p.Seat)
			require.Equal(t, 10, g.ChipsToCall(p.Seat), "seat %d", p.Seat)
			require.Equal(t, 1000, p.Chips, "seat %d", p.Seat)
		}
	}

	require.Equal(t, 10, g.MinRaise())
	require.Len(t, g.Pots(), 1)
	require.Equal(t, 10, g.Pots()[0].Raised())
	require.Equal(t, 15, g.Pots()[0].Total())
	require.Empty(t, g.Board())
}

func TestStartHandDealsHoleCards(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 6)
	require.NoError(t, g.StartHand())

	seen := make(map[string]bool)
	for _, p := range g.Players() {
		require.Len(t, p.HoleCards, 2, "seat %d", p.Seat)
		for _, c := range p.HoleCards {
			require.False(t, seen[c.String()], "card %s dealt twice", c)
			seen[c.String()] = true
		}
	}
}

func TestStartHandHeadsUpButtonIsSmallBlind(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 2)
	require.NoError(t, g.StartHand())

	require.Equal(t, g.BtnLoc(), g.SBLoc())
	require.NotEqual(t, g.SBLoc(), g.BBLoc())
	// The small blind acts first preflop heads-up.
	require.Equal(t, g.SBLoc(), g.CurrentPlayer())
}

func TestButtonAdvancesEachHand(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 3)
	require.NoError(t, g.StartHand())
	first := g.BtnLoc()
	playCheckdown(t, g)

	require.NoError(t, g.StartHand())
	require.Equal(t, (first+1)%3, g.BtnLoc())
}

func TestButtonSkipsBustedSeat(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 4, WithChips([]int{1000, 0, 1000, 1000}), WithButton(0))
	require.NoError(t, g.StartHand())
	require.Equal(t, 0, g.BtnLoc())
	require.Equal(t, StateSkip, g.Players()[1].State)
	// Seat 1 is skipped for the blinds.
	require.Equal(t, 2, g.SBLoc())
	require.Equal(t, 3, g.BBLoc())
	playCheckdown(t, g)

	require.NoError(t, g.StartHand())
	require.Equal(t, 2, g.BtnLoc())
}

func TestStartHandNeedsTwoFundedPlayers(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 3, WithChips([]int{1000, 0, 0}))
	err := g.StartHand()
	require.ErrorIs(t, err, ErrGameNotRunning)
	require.False(t, g.IsGameRunning())

	require.ErrorIs(t, g.TakeAction(Check, 0), ErrGameNotRunning)
}

func TestTakeActionOutsideBettingPhase(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 3)
	require.NoError(t, g.StartHand())
	playCheckdown(t, g)

	err := g.TakeAction(Check, 0)
	require.ErrorIs(t, err, ErrHandNotRunning)
}

// playCheckdown calls and checks every decision until the hand settles.
func playCheckdown(t *testing.T, g *Game) {
	t.Helper()
	for g.IsHandRunning() {
		ms := g.AvailableMoves()
		switch {
		case ms.Check:
			require.NoError(t, g.TakeAction(Check, 0))
		case ms.Call:
			require.NoError(t, g.TakeAction(Call, 0))
		case ms.AllIn:
			require.NoError(t, g.TakeAction(AllIn, 0))
		default:
			t.Fatalf("no passive move available: %+v", ms)
		}
	}
	require.Equal(t, Prehand, g.Phase())
}

func TestChipConservationAcrossHands(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 4)
	for hand := 0; hand < 5; hand++ {
		require.NoError(t, g.StartHand())
		playCheckdown(t, g)

		total := 0
		for _, p := range g.Players() {
			total += p.Chips
			require.GreaterOrEqual(t, p.Chips, 0)
		}
		require.Equal(t, 4000, total, "hand %d", hand)
	}
}

func TestGameNotRunningErrors(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, 2)
	require.False(t, g.IsGameRunning())
	require.True(t, errors.Is(g.TakeAction(Fold, 0), ErrGameNotRunning))
	require.Error(t, g.ValidateMove(Fold, 0))
	require.Empty(t, g.AvailableMoves().Actions())
}
