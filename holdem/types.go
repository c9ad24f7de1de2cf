package holdem

// ActionType represents a betting action.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Raise
	AllIn
)

// String returns the string representation of an action.
func (a ActionType) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// ParseAction parses the string form produced by String.
func ParseAction(s string) (ActionType, bool) {
	for a := Fold; a <= AllIn; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return 0, false
}

// HandPhase represents a stage of a hand. Prehand and Settle bracket the four
// betting phases.
type HandPhase int

const (
	Prehand HandPhase = iota
	Preflop
	Flop
	Turn
	River
	Settle
)

// String returns the string representation of a hand phase.
func (p HandPhase) String() string {
	return [...]string{"prehand", "preflop", "flop", "turn", "river", "settle"}[p]
}

// IsBetting reports whether the phase is one of the four betting rounds.
func (p HandPhase) IsBetting() bool {
	return p >= Preflop && p <= River
}

// NewCards returns how many board cards are dealt entering this phase.
func (p HandPhase) NewCards() int {
	switch p {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

// PlayerState represents a player's participation state within a hand.
type PlayerState int

const (
	// StateSkip marks a player sitting out the hand (no chips at hand start).
	StateSkip PlayerState = iota
	// StateOut marks a player who folded.
	StateOut
	// StateIn marks a player who has matched the current betting level.
	StateIn
	// StateToCall marks a player who owes chips to stay in.
	StateToCall
	// StateAllIn marks a player with their entire stack committed.
	StateAllIn
)

// String returns the string representation of a player state.
func (s PlayerState) String() string {
	return [...]string{"skip", "out", "in", "to_call", "all_in"}[s]
}
