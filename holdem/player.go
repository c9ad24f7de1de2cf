package holdem

import (
	"github.com/lox/holdem-engine/poker"
)

// Player represents one seat at the table.
type Player struct {
	Seat  int
	Chips int
	State PlayerState

	// LastPot is the index of the highest pot this player may still contest.
	// An all-in player's LastPot stays at the pot where they were capped.
	LastPot int

	HoleCards []poker.Card
}

// CanAct reports whether the player can take a betting action.
func (p *Player) CanAct() bool {
	return p.State == StateIn || p.State == StateToCall
}

// InHand reports whether the player still contests the hand.
func (p *Player) InHand() bool {
	switch p.State {
	case StateIn, StateToCall, StateAllIn:
		return true
	case StateSkip, StateOut:
		return false
	}
	return false
}

func (p *Player) clone() *Player {
	np := *p
	if p.HoleCards != nil {
		np.HoleCards = append([]poker.Card(nil), p.HoleCards...)
	}
	return &np
}
