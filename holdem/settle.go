package holdem

import "github.com/lox/holdem-engine/poker"

// settle awards every pot and closes the hand. Each pot is awarded
// independently to the best hand among the players eligible for it; a pot
// with a single eligible player is returned to them without a showdown,
// which is how an uncalled over-bet finds its way home.
func (g *Game) settle() {
	g.handPhase = Settle
	g.currentPlayer = -1

	settle := &SettleHistory{}

	// If the showdown is contested but the board is short, run it out.
	if g.contestingCount() > 1 {
		for len(g.board) < 5 {
			n := 1
			if len(g.board) == 0 {
				n = 3
			}
			cards := g.cards.Draw(n)
			g.board = append(g.board, cards...)
			settle.NewCards = append(settle.NewCards, cards...)
		}
	}

	ranks := make(map[int]poker.HandRank)
	for _, p := range g.players {
		if p.InHand() && g.contestingCount() > 1 {
			ranks[p.Seat] = g.ranker.Rank(p.HoleCards, g.board)
		}
	}

	for i, pot := range g.pots {
		amount := pot.Total()
		if amount == 0 {
			continue
		}
		eligible := g.eligibleSeats(i)
		if len(eligible) == 0 {
			continue
		}

		winners := eligible
		if len(eligible) > 1 {
			winners = bestSeats(eligible, ranks)
		}

		// Even split; odd chips go to the earliest winners clockwise from
		// the button.
		share := amount / len(winners)
		odd := amount % len(winners)
		for _, seat := range g.clockwiseFromButton(winners) {
			win := share
			if odd > 0 {
				win++
				odd--
			}
			g.players[seat].Chips += win
			settle.Wins = append(settle.Wins, PotWin{Pot: i, Seat: seat, Amount: win})
			g.logger.Debug("pot awarded", "pot", i, "seat", seat, "amount", win)
		}
	}

	chips := make([]int, len(g.players))
	for i, p := range g.players {
		chips[i] = p.Chips
	}
	settle.FinalChips = chips
	g.history.Settle = settle

	g.handPhase = Prehand
	if g.fundedCount() < 2 {
		g.running = false
	}
}

// eligibleSeats returns the seats still in the hand that contributed through
// pot i, in seat order.
func (g *Game) eligibleSeats(i int) []int {
	var seats []int
	for _, p := range g.players {
		if p.InHand() && p.LastPot >= i {
			seats = append(seats, p.Seat)
		}
	}
	return seats
}

// bestSeats returns the seats holding the strongest rank among the given
// seats.
func bestSeats(seats []int, ranks map[int]poker.HandRank) []int {
	var best poker.HandRank
	for _, seat := range seats {
		if ranks[seat] > best {
			best = ranks[seat]
		}
	}
	var winners []int
	for _, seat := range seats {
		if ranks[seat] == best {
			winners = append(winners, seat)
		}
	}
	return winners
}

// clockwiseFromButton reorders seats to start at the first seat after the
// button.
func (g *Game) clockwiseFromButton(seats []int) []int {
	n := len(g.players)
	ordered := make([]int, 0, len(seats))
	for i := 1; i <= n; i++ {
		seat := (g.btnLoc + i) % n
		for _, s := range seats {
			if s == seat {
				ordered = append(ordered, seat)
				break
			}
		}
	}
	return ordered
}
