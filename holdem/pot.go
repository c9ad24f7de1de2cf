package holdem

import (
	"sort"
)

// Pot is the ledger for one betting pot. amount holds chips collected from
// completed betting rounds; playerAmounts holds the current round's per-seat
// contributions against the raised level. Pot 0 is the main pot; later pots
// are side pots split off when an all-in caps contribution.
type Pot struct {
	amount        int
	raised        int
	playerAmounts map[int]int
}

func newPot() *Pot {
	return &Pot{playerAmounts: make(map[int]int)}
}

// Raised returns the per-player target contribution level for the current
// betting round.
func (p *Pot) Raised() int {
	return p.raised
}

// PlayerAmount returns a player's contribution to this pot in the current
// betting round.
func (p *Pot) PlayerAmount(seat int) int {
	return p.playerAmounts[seat]
}

// ChipsToCall returns what a player owes this pot to reach the raised level.
func (p *Pot) ChipsToCall(seat int) int {
	return p.raised - p.playerAmounts[seat]
}

// Total returns collected chips plus the current round's contributions.
func (p *Pot) Total() int {
	total := p.amount
	for _, amt := range p.playerAmounts {
		total += amt
	}
	return total
}

// Contributors returns the seats with a recorded contribution this round,
// in seat order.
func (p *Pot) Contributors() []int {
	seats := make([]int, 0, len(p.playerAmounts))
	for seat := range p.playerAmounts {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	return seats
}

// playerPost records a contribution, raising the pot's level if it is
// exceeded.
func (p *Pot) playerPost(seat, amount int) {
	p.playerAmounts[seat] += amount
	if p.playerAmounts[seat] > p.raised {
		p.raised = p.playerAmounts[seat]
	}
}

// collect folds the round's contributions into the collected amount and
// resets the betting level for the next round.
func (p *Pot) collect() {
	for seat, amt := range p.playerAmounts {
		p.amount += amt
		delete(p.playerAmounts, seat)
	}
	p.raised = 0
}

// split carves off contributions above level into a new side pot, capping
// this pot at level. Returns nil when there is nothing above the level.
// Chips collected from earlier rounds stay in this pot: any earlier-round
// shortfall was already split when it occurred.
func (p *Pot) split(level int) *Pot {
	if p.raised <= level {
		return nil
	}
	over := newPot()
	over.raised = p.raised - level
	p.raised = level
	for seat, amt := range p.playerAmounts {
		if amt > level {
			over.playerAmounts[seat] = amt - level
			p.playerAmounts[seat] = level
		}
	}
	return over
}

func (p *Pot) clone() *Pot {
	np := &Pot{amount: p.amount, raised: p.raised, playerAmounts: make(map[int]int, len(p.playerAmounts))}
	for seat, amt := range p.playerAmounts {
		np.playerAmounts[seat] = amt
	}
	return np
}
