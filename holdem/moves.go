package holdem

// MoveSet is the set of legal moves for the player to act. Raise totals are a
// closed inclusive range rather than an enumerated list. Exactly one of Check
// and Call is present; AllIn appears in place of Call when the stack cannot
// cover the call amount.
type MoveSet struct {
	Fold  bool
	Check bool

	Call       bool
	CallAmount int // chips to add to reach the call level

	AllIn      bool
	AllInTotal int // street total committed by the all-in call

	Raise    bool
	RaiseMin int // minimum legal raise total, inclusive
	RaiseMax int // full stack commitment, inclusive
}

// Contains reports whether the action type is in the set.
func (m MoveSet) Contains(action ActionType) bool {
	switch action {
	case Fold:
		return m.Fold
	case Check:
		return m.Check
	case Call:
		return m.Call
	case AllIn:
		return m.AllIn
	case Raise:
		return m.Raise
	}
	return false
}

// ContainsTotal reports whether the action with the given raise total is in
// the set. The total is ignored for non-raise actions.
func (m MoveSet) ContainsTotal(action ActionType, total int) bool {
	if action == Raise {
		return m.Raise && total >= m.RaiseMin && total <= m.RaiseMax
	}
	return m.Contains(action)
}

// Actions returns the action types present, in declaration order.
func (m MoveSet) Actions() []ActionType {
	var actions []ActionType
	for _, a := range []ActionType{Fold, Check, Call, Raise, AllIn} {
		if m.Contains(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// AvailableMoves returns the legal moves for the player to act. The set is
// empty outside a betting phase.
func (g *Game) AvailableMoves() MoveSet {
	var ms MoveSet
	if !g.running || !g.handPhase.IsBetting() {
		return ms
	}

	seat := g.currentPlayer
	p := g.players[seat]
	toCall := g.ChipsToCall(seat)

	ms.Fold = true
	switch {
	case toCall == 0:
		ms.Check = true
	case p.Chips > toCall:
		ms.Call = true
		ms.CallAmount = toCall
	default:
		// Calling would consume the whole stack: surface it as an all-in.
		ms.AllIn = true
		ms.AllInTotal = g.PlayerBetAmount(seat) + p.Chips
	}

	if g.RaiseOption() && p.Chips > 0 {
		minTotal, maxTotal := g.raiseBounds(seat)
		switch {
		case minTotal <= maxTotal:
			ms.Raise = true
			ms.RaiseMin = minTotal
			ms.RaiseMax = maxTotal
		case toCall < p.Chips:
			// Stack too short for a standard minimum raise but shoving still
			// exceeds the call level: raise pinned to the full stack.
			ms.Raise = true
			ms.RaiseMin = maxTotal
			ms.RaiseMax = maxTotal
		}
	}
	return ms
}

// ValidateMove reports whether the proposed action is legal for the player to
// act. A nil return means legal; otherwise the error wraps ErrInvalidMove
// (or a running-state sentinel) and names the violated constraint.
func (g *Game) ValidateMove(action ActionType, total int) error {
	if !g.running {
		return ErrGameNotRunning
	}
	if !g.handPhase.IsBetting() {
		return ErrHandNotRunning
	}
	action, total = g.translateAllIn(action, total)
	return g.validate(g.currentPlayer, action, total)
}

// translateAllIn resolves an all-in submission into the call or raise it
// amounts to for the current player.
func (g *Game) translateAllIn(action ActionType, total int) (ActionType, int) {
	if action != AllIn {
		return action, total
	}
	seat := g.currentPlayer
	p := g.players[seat]
	if p.Chips <= g.ChipsToCall(seat) {
		return Call, 0
	}
	return Raise, g.PlayerBetAmount(seat) + p.Chips
}

func (g *Game) validate(seat int, action ActionType, total int) error {
	p := g.players[seat]
	switch action {
	case Fold:
		if !p.CanAct() {
			return invalidMovef("player %d cannot act (%s)", seat, p.State)
		}
	case Check:
		if toCall := g.ChipsToCall(seat); toCall != 0 {
			return invalidMovef("cannot check facing %d to call", toCall)
		}
	case Call:
		if g.ChipsToCall(seat) == 0 {
			return invalidMovef("nothing to call")
		}
		if p.Chips == 0 {
			return invalidMovef("player %d has no chips", seat)
		}
	case Raise:
		if p.Chips == 0 {
			return invalidMovef("player %d has no chips", seat)
		}
		if !g.RaiseOption() {
			return invalidMovef("raise option no longer available")
		}
		minTotal, maxTotal := g.raiseBounds(seat)
		callLevel := g.PlayerBetAmount(seat) + g.ChipsToCall(seat)
		if total > maxTotal {
			return invalidMovef("raise to %d exceeds stack commitment %d", total, maxTotal)
		}
		if total <= callLevel {
			return invalidMovef("raise to %d does not exceed call total %d", total, callLevel)
		}
		// An all-in for the whole stack may fall below the standard minimum.
		if total < minTotal && total != maxTotal {
			return invalidMovef("raise to %d below minimum %d", total, minTotal)
		}
	default:
		return invalidMovef("unknown action %d", action)
	}
	return nil
}

// raiseBounds returns the minimum and maximum legal raise totals for a seat.
// The minimum is the call amount plus one full minimum-raise increment; the
// maximum is the player's full stack commitment.
func (g *Game) raiseBounds(seat int) (minTotal, maxTotal int) {
	minTotal = g.ValueToTotal(g.MinRaise(), seat)
	maxTotal = g.PlayerBetAmount(seat) + g.players[seat].Chips
	return minTotal, maxTotal
}
