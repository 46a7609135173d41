package domain

// Round represents the current round of a game
type Round string

const (
	RoundMain  Round = "main"  // Board play, clues selected one at a time
	RoundFinal Round = "final" // Single untimed clue with private wagers
)

// String returns the string representation of the round
func (r Round) String() string {
	return string(r)
}

// CanTransitionTo checks if a transition from the current round to target is valid
func (r Round) CanTransitionTo(target Round) bool {
	validTransitions := map[Round][]Round{
		RoundMain: {RoundFinal},
	}

	allowed, ok := validTransitions[r]
	if !ok {
		return false
	}

	for _, round := range allowed {
		if round == target {
			return true
		}
	}
	return false
}
