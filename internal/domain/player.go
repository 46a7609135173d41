package domain

import (
	"strings"

	"github.com/google/uuid"
)

// PlayerID identifies a contestant
type PlayerID string

// Player represents a contestant in the game
type Player struct {
	ID            PlayerID `json:"id"`
	Name          string   `json:"name"`
	Score         int      `json:"score"`
	CanSelectClue bool     `json:"canSelectClue"`
	HasResponded  bool     `json:"hasResponded"`
}

// NewPlayer creates a contestant with a zero score.
// The name is trimmed here and nowhere else.
func NewPlayer(name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPlayerName
	}

	return &Player{
		ID:   PlayerID(uuid.NewString()),
		Name: name,
	}, nil
}

// ResetForNewClue clears the per-clue response flag
func (p *Player) ResetForNewClue() {
	p.HasResponded = false
}

// award adds or deducts amount depending on correctness
func (p *Player) award(amount int, correct bool) {
	if correct {
		p.Score += amount
	} else {
		p.Score -= amount
	}
}
