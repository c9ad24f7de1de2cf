package holdem

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/poker"
)

// Game is a single-table Texas Hold'em rules engine. It is a synchronous
// state machine: the caller drives it one action at a time and every call
// returns once fully applied. The engine performs no internal locking;
// concurrent callers must serialize mutating calls themselves and use
// Copy for speculative exploration.
type Game struct {
	players    []*Player
	smallBlind int
	bigBlind   int

	btnLoc        int
	sbLoc         int
	bbLoc         int
	currentPlayer int

	handPhase HandPhase
	board     []poker.Card
	pots      []*Pot

	// lastRaise is the size of the most recent full raise increment this
	// betting round; the minimum raise is max(bigBlind, lastRaise).
	lastRaise int

	// acted tracks which seats have acted since the last full raise. A seat
	// with its flag set has lost the raise option for this round.
	acted []bool

	history *HandHistory
	cards   CardSource
	ranker  Ranker
	logger  *log.Logger
	clock   quartz.Clock

	running   bool
	btnPinned bool
	seed      int64
	copies    int64
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds the default card source deterministically.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithChips sets individual starting stacks instead of a uniform buy-in.
func WithChips(chips []int) Option {
	return func(g *Game) {
		for i, c := range chips {
			if i < len(g.players) {
				g.players[i].Chips = c
			}
		}
	}
}

// WithButton places the button for the first hand instead of letting it
// advance from the last seat.
func WithButton(seat int) Option {
	return func(g *Game) {
		g.btnLoc = seat
		g.btnPinned = true
	}
}

// WithCardSource replaces the default seeded deck.
func WithCardSource(cs CardSource) Option {
	return func(g *Game) { g.cards = cs }
}

// WithRanker replaces the default showdown evaluator.
func WithRanker(r Ranker) Option {
	return func(g *Game) { g.ranker = r }
}

// WithLogger attaches a structured logger. Logging is discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClock replaces the wall clock used for history timestamps.
func WithClock(c quartz.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// New creates a game with numSeats players each holding buyIn chips.
func New(numSeats, buyIn, smallBlind, bigBlind int, opts ...Option) (*Game, error) {
	if numSeats < 2 {
		return nil, fmt.Errorf("holdem: need at least 2 seats, got %d", numSeats)
	}
	if smallBlind <= 0 || bigBlind < smallBlind {
		return nil, fmt.Errorf("holdem: invalid blinds %d/%d", smallBlind, bigBlind)
	}
	if buyIn < 0 {
		return nil, fmt.Errorf("holdem: negative buy-in %d", buyIn)
	}

	g := &Game{
		smallBlind:    smallBlind,
		bigBlind:      bigBlind,
		btnLoc:        numSeats - 1,
		currentPlayer: -1,
		handPhase:     Prehand,
		acted:         make([]bool, numSeats),
		history:       newHandHistory(),
		ranker:        defaultRanker(),
		logger:        log.New(io.Discard),
		clock:         quartz.NewReal(),
		seed:          time.Now().UnixNano(),
	}
	for seat := 0; seat < numSeats; seat++ {
		g.players = append(g.players, &Player{Seat: seat, Chips: buyIn, State: StateSkip})
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.cards == nil {
		g.cards = newDeckSource(g.seed)
	}
	return g, nil
}

// StartHand runs the prehand phase: moves the button, posts blinds, deals
// hole cards and opens preflop betting. It fails with ErrGameNotRunning when
// fewer than two players are funded.
func (g *Game) StartHand() error {
	if g.fundedCount() < 2 {
		g.running = false
		return fmt.Errorf("%w: need at least two funded players", ErrGameNotRunning)
	}
	g.running = true

	// Reset per-hand state.
	g.board = nil
	g.pots = []*Pot{newPot()}
	g.lastRaise = 0
	g.history = newHandHistory()
	for i := range g.acted {
		g.acted[i] = false
	}
	for _, p := range g.players {
		p.LastPot = 0
		p.HoleCards = nil
		if p.Chips == 0 {
			p.State = StateSkip
		} else {
			p.State = StateToCall
		}
	}

	// Button moves to the next active seat; a pinned button holds for the
	// first hand unless that seat is sitting out.
	if g.btnPinned {
		g.btnPinned = false
		if g.players[g.btnLoc].State == StateSkip {
			g.btnLoc = g.nextActive(g.btnLoc)
		}
	} else {
		g.btnLoc = g.nextActive(g.btnLoc)
	}

	// In exactly two active players the button posts the small blind.
	if g.activeCount() == 2 {
		g.sbLoc = g.btnLoc
	} else {
		g.sbLoc = g.nextActive(g.btnLoc)
	}
	g.bbLoc = g.nextActive(g.sbLoc)

	chips := make([]int, len(g.players))
	for i, p := range g.players {
		chips[i] = p.Chips
	}
	g.history.Prehand = &PrehandHistory{
		BtnLoc:      g.btnLoc,
		SmallBlind:  g.smallBlind,
		BigBlind:    g.bigBlind,
		PlayerChips: chips,
		HoleCards:   make(map[int][]poker.Card),
	}

	// Deal two concealed cards to each active seat, clockwise from the
	// small blind.
	g.cards.Reset()
	for _, seat := range g.activeSeats(g.btnLoc) {
		g.players[seat].HoleCards = g.cards.Draw(2)
		g.history.Prehand.HoleCards[seat] = g.players[seat].HoleCards
	}

	// Post blinds. A short stack posts what it has and is all-in.
	sbPosted := g.post(g.sbLoc, g.smallBlind)
	bbPosted := g.post(g.bbLoc, g.bigBlind)
	if sb := g.players[g.sbLoc]; sb.State != StateAllIn {
		if sbPosted < bbPosted {
			sb.State = StateToCall
		} else {
			sb.State = StateIn
		}
	}
	if bb := g.players[g.bbLoc]; bb.State != StateAllIn {
		bb.State = StateIn
	}
	g.lastRaise = bbPosted
	g.splitForAllIns()

	g.handPhase = Preflop
	g.history.startRound(Preflop, nil)
	g.currentPlayer = g.nextCanAct(g.bbLoc)

	g.logger.Debug("hand started",
		"btn", g.btnLoc, "sb", g.sbLoc, "bb", g.bbLoc,
		"sb_posted", sbPosted, "bb_posted", bbPosted, "first_to_act", g.currentPlayer)

	// Blinds may already have everyone but one player all-in; run the board
	// out and settle immediately.
	if g.isHandOver() {
		g.endRound()
	}
	return nil
}

// TakeAction validates and applies an action for the player to act, records
// it, and advances the turn or the hand phase. A rejected action leaves the
// game exactly as it was.
func (g *Game) TakeAction(action ActionType, total int) error {
	if !g.running {
		return ErrGameNotRunning
	}
	if !g.handPhase.IsBetting() {
		return ErrHandNotRunning
	}
	action, total = g.translateAllIn(action, total)
	seat := g.currentPlayer
	if err := g.validate(seat, action, total); err != nil {
		return err
	}

	p := g.players[seat]
	switch action {
	case Fold:
		p.State = StateOut
	case Check:
		// Nothing owed; the seat keeps its matched state.
	case Call:
		g.post(seat, g.ChipsToCall(seat))
		if p.State != StateAllIn {
			p.State = StateIn
		}
	case Raise:
		minRaise := g.MinRaise()
		increment := total - (g.PlayerBetAmount(seat) + g.ChipsToCall(seat))
		g.post(seat, total-g.PlayerBetAmount(seat))
		if p.State != StateAllIn {
			p.State = StateIn
		}
		if increment >= minRaise {
			// A full raise reopens the action for everyone else. A short
			// all-in raise does not: earlier actors may call or fold only,
			// and the minimum raise is unchanged.
			g.lastRaise = increment
			for i := range g.acted {
				g.acted[i] = false
			}
		}
		for _, o := range g.players {
			if o.Seat != seat && o.State == StateIn && g.ChipsToCall(o.Seat) > 0 {
				o.State = StateToCall
			}
		}
	}
	g.acted[seat] = true
	g.splitForAllIns()

	g.history.append(HistoryEntry{
		Phase:  g.handPhase,
		Seat:   seat,
		Action: action,
		Total:  raiseTotal(action, total),
		Time:   g.clock.Now(),
	})
	g.logger.Debug("action applied",
		"phase", g.handPhase, "seat", seat, "action", action, "total", total)

	if g.contestingCount() <= 1 || g.bettingDone() {
		g.endRound()
	} else {
		g.currentPlayer = g.nextCanAct(seat)
	}
	return nil
}

func raiseTotal(action ActionType, total int) int {
	if action == Raise {
		return total
	}
	return 0
}

// endRound collects bets and advances the hand: next street, an all-in board
// runout, or settlement.
func (g *Game) endRound() {
	for _, pot := range g.pots {
		pot.collect()
	}
	g.lastRaise = 0
	for i := range g.acted {
		g.acted[i] = false
	}

	if g.contestingCount() <= 1 {
		g.settle()
		return
	}
	for {
		if g.handPhase == River {
			g.settle()
			return
		}
		g.handPhase++
		cards := g.cards.Draw(g.handPhase.NewCards())
		g.board = append(g.board, cards...)
		g.history.startRound(g.handPhase, cards)
		g.logger.Debug("street dealt", "phase", g.handPhase, "board", poker.FormatCards(g.board))

		if !g.isHandOver() {
			g.currentPlayer = g.nextCanAct(g.btnLoc)
			return
		}
		// All-in race: no one can act, keep dealing.
	}
}

// post moves up to amount chips from a player's stack into the pots they are
// eligible for, filling earlier pots to their raised levels first. Marks the
// player all-in when the stack empties.
func (g *Game) post(seat, amount int) int {
	p := g.players[seat]
	amount = min(amount, p.Chips)
	remaining := amount
	for i := 0; i < p.LastPot && remaining > 0; i++ {
		owe := min(g.pots[i].ChipsToCall(seat), remaining)
		if owe > 0 {
			g.pots[i].playerPost(seat, owe)
			remaining -= owe
		}
	}
	if remaining > 0 {
		g.pots[p.LastPot].playerPost(seat, remaining)
	}
	p.Chips -= amount
	if p.Chips == 0 {
		p.State = StateAllIn
	}
	return amount
}

// splitForAllIns walks the pots and splits off a side pot wherever an all-in
// player is capped below the pot's raised level. Cascades through newly
// created pots so every all-in player's contribution exactly reaches the
// raised level of each pot through their LastPot.
func (g *Game) splitForAllIns() {
	for i := 0; i < len(g.pots); i++ {
		level := -1
		for _, p := range g.players {
			if p.State == StateAllIn && p.LastPot == i {
				if amt := g.pots[i].PlayerAmount(p.Seat); amt < g.pots[i].Raised() && (level < 0 || amt < level) {
					level = amt
				}
			}
		}
		if level >= 0 {
			g.splitPot(i, level)
		}
	}
}

func (g *Game) splitPot(idx, level int) {
	over := g.pots[idx].split(level)
	if over == nil {
		return
	}
	g.pots = append(g.pots, nil)
	copy(g.pots[idx+2:], g.pots[idx+1:])
	g.pots[idx+1] = over

	for _, p := range g.players {
		switch {
		case p.LastPot > idx:
			p.LastPot++
		case p.LastPot == idx:
			switch p.State {
			case StateAllIn:
				// Capped players stay; only excess carries forward.
				if over.PlayerAmount(p.Seat) > 0 {
					p.LastPot = idx + 1
				}
			case StateIn, StateToCall:
				p.LastPot = idx + 1
			}
		}
	}
}

// bettingDone reports whether the current betting round is complete: no seat
// owes chips and every seat that can act has acted since the last full raise.
func (g *Game) bettingDone() bool {
	for _, p := range g.players {
		switch p.State {
		case StateToCall:
			return false
		case StateIn:
			if !g.acted[p.Seat] {
				return false
			}
		}
	}
	return true
}

// isHandOver reports whether no further betting is possible this hand: no
// seat owes chips and at most one non-all-in player remains.
func (g *Game) isHandOver() bool {
	in := 0
	for _, p := range g.players {
		switch p.State {
		case StateToCall:
			return false
		case StateIn:
			in++
		}
	}
	return in <= 1
}

// ChipsToCall returns the chips a player must add, across every pot they are
// eligible for, to reach called status. All-in players owe nothing.
func (g *Game) ChipsToCall(seat int) int {
	p := g.players[seat]
	if p.State == StateAllIn {
		return 0
	}
	owed := 0
	for i := 0; i <= p.LastPot; i++ {
		owed += g.pots[i].ChipsToCall(seat)
	}
	return owed
}

// PlayerBetAmount returns a player's total contribution across all pots in
// the current betting round.
func (g *Game) PlayerBetAmount(seat int) int {
	total := 0
	for _, pot := range g.pots {
		total += pot.PlayerAmount(seat)
	}
	return total
}

// MinRaise returns the minimum raise increment: the big blind or the last
// full raise, whichever is larger. It never decreases within a betting round.
func (g *Game) MinRaise() int {
	return max(g.bigBlind, g.lastRaise)
}

// ValueToTotal converts a raise increment over the call level into the final
// total commitment for a seat this round.
func (g *Game) ValueToTotal(value, seat int) int {
	return value + g.ChipsToCall(seat) + g.PlayerBetAmount(seat)
}

// RaiseOption reports whether the player to act may still raise. The option
// lapses once a seat has acted and no full raise has intervened; a short
// all-in below the minimum raise does not restore it.
func (g *Game) RaiseOption() bool {
	if g.currentPlayer < 0 {
		return false
	}
	return !g.acted[g.currentPlayer]
}

// IsGameRunning reports whether at least two funded players were present at
// the last StartHand.
func (g *Game) IsGameRunning() bool {
	return g.running
}

// IsHandRunning reports whether a betting phase is in progress.
func (g *Game) IsHandRunning() bool {
	return g.handPhase.IsBetting()
}

// Players returns the seats in order. Treat as read-only.
func (g *Game) Players() []*Player {
	return g.players
}

// Pots returns the ordered pot sequence, main pot first. Treat as read-only.
func (g *Game) Pots() []*Pot {
	return g.pots
}

// Board returns the community cards dealt so far.
func (g *Game) Board() []poker.Card {
	return g.board
}

// Phase returns the current hand phase.
func (g *Game) Phase() HandPhase {
	return g.handPhase
}

// CurrentPlayer returns the seat of the player to act, or -1.
func (g *Game) CurrentPlayer() int {
	return g.currentPlayer
}

// BtnLoc returns the button seat.
func (g *Game) BtnLoc() int { return g.btnLoc }

// SBLoc returns the small blind seat.
func (g *Game) SBLoc() int { return g.sbLoc }

// BBLoc returns the big blind seat.
func (g *Game) BBLoc() int { return g.bbLoc }

// SmallBlind returns the small blind amount.
func (g *Game) SmallBlind() int { return g.smallBlind }

// BigBlind returns the big blind amount.
func (g *Game) BigBlind() int { return g.bigBlind }

// LastRaise returns the size of the most recent full raise increment this
// betting round.
func (g *Game) LastRaise() int { return g.lastRaise }

// History returns the current hand's history.
func (g *Game) History() *HandHistory {
	return g.history
}

// Seat iteration helpers. "Active" means dealt into the hand (not sitting
// out, not folded).

func (g *Game) nextSeat(from int, pred func(*Player) bool) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if pred(g.players[seat]) {
			return seat
		}
	}
	return -1
}

func (g *Game) nextActive(from int) int {
	return g.nextSeat(from, func(p *Player) bool {
		return p.State != StateSkip && p.State != StateOut
	})
}

func (g *Game) nextCanAct(from int) int {
	return g.nextSeat(from, (*Player).CanAct)
}

// activeSeats returns active seats clockwise starting after from.
func (g *Game) activeSeats(from int) []int {
	var seats []int
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if p := g.players[seat]; p.State != StateSkip && p.State != StateOut {
			seats = append(seats, seat)
		}
	}
	return seats
}

func (g *Game) activeCount() int {
	count := 0
	for _, p := range g.players {
		if p.State != StateSkip && p.State != StateOut {
			count++
		}
	}
	return count
}

func (g *Game) contestingCount() int {
	count := 0
	for _, p := range g.players {
		if p.InHand() {
			count++
		}
	}
	return count
}

func (g *Game) fundedCount() int {
	count := 0
	for _, p := range g.players {
		if p.Chips > 0 {
			count++
		}
	}
	return count
}
