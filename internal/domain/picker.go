package domain

import "math/rand"

// Picker chooses which contestant opens the board
//
//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go jeopardy/internal/domain Picker
type Picker interface {
	// Pick returns an index in [0, n)
	Pick(n int) int
}

// RandomPicker picks uniformly at random
type RandomPicker struct{}

// Pick returns a random index in [0, n)
func (RandomPicker) Pick(n int) int {
	return rand.Intn(n)
}
