package holdem

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

// Copy returns a deep, independent copy of the game. Mutating either game
// never affects the other. With shuffle set, the copy's undealt cards are
// reshuffled under an independently derived seed, so speculative lines
// explored on the copy see a different hidden future while everything
// already dealt is preserved.
func (g *Game) Copy(shuffle bool) *Game {
	ng := &Game{
		smallBlind:    g.smallBlind,
		bigBlind:      g.bigBlind,
		btnLoc:        g.btnLoc,
		sbLoc:         g.sbLoc,
		bbLoc:         g.bbLoc,
		currentPlayer: g.currentPlayer,
		handPhase:     g.handPhase,
		board:         append([]poker.Card(nil), g.board...),
		lastRaise:     g.lastRaise,
		acted:         append([]bool(nil), g.acted...),
		history:       g.history.Clone(),
		cards:         g.cards.Clone(shuffle),
		ranker:        g.ranker,
		logger:        g.logger,
		clock:         g.clock,
		running:       g.running,
		seed:          g.seed,
	}
	for _, p := range g.players {
		ng.players = append(ng.players, p.clone())
	}
	for _, pot := range g.pots {
		ng.pots = append(ng.pots, pot.clone())
	}
	return ng
}

// ReplayHand reconstructs a game from a recorded hand history and replays it
// action by action. The returned game has completed the hand; its history
// and final stacks match the recording when the recording is consistent.
func ReplayHand(hist *HandHistory, opts ...Option) (*Game, error) {
	if hist == nil || hist.Prehand == nil {
		return nil, fmt.Errorf("holdem: history has no prehand record")
	}
	ph := hist.Prehand

	numSeats := len(ph.PlayerChips)
	script := &scriptedSource{cards: scriptCards(hist, numSeats)}

	opts = append([]Option{
		WithChips(ph.PlayerChips),
		WithButton(ph.BtnLoc),
		WithCardSource(script),
	}, opts...)
	g, err := New(numSeats, 0, ph.SmallBlind, ph.BigBlind, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.StartHand(); err != nil {
		return nil, err
	}
	for i, e := range hist.Combined() {
		if err := g.TakeAction(e.Action, e.Total); err != nil {
			return nil, fmt.Errorf("holdem: replay action %d (p%d %s): %w", i, e.Seat, e.Action, err)
		}
	}
	if g.IsHandRunning() {
		return nil, fmt.Errorf("holdem: history ended mid-hand in %s", g.handPhase)
	}
	return g, nil
}

// scriptCards flattens a history's cards into deal order: hole cards
// clockwise from the button, then each street's board cards, then any
// settlement runout.
func scriptCards(hist *HandHistory, numSeats int) []poker.Card {
	var cards []poker.Card
	for i := 1; i <= numSeats; i++ {
		seat := (hist.Prehand.BtnLoc + i) % numSeats
		cards = append(cards, hist.Prehand.HoleCards[seat]...)
	}
	for _, r := range hist.Rounds {
		cards = append(cards, r.NewCards...)
	}
	if hist.Settle != nil {
		cards = append(cards, hist.Settle.NewCards...)
	}
	return cards
}
