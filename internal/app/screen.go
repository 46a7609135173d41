package app

import (
	"jeopardy/internal/clueset"
	"jeopardy/internal/domain"
)

// ScreenKind names the screen the console is showing
type ScreenKind string

const (
	ScreenSetup ScreenKind = "setup"
	ScreenGame  ScreenKind = "game"
)

// Screen is what the controller is currently showing: either game setup or a
// game in progress. Only the types in this package implement it.
type Screen interface {
	Kind() ScreenKind
	screen()
}

// SetupScreen collects a clue set and a roster before a game starts
type SetupScreen struct {
	ClueSet  *clueset.ClueSet
	Filename string
	Roster   []*domain.Player
}

// Kind returns ScreenSetup
func (*SetupScreen) Kind() ScreenKind { return ScreenSetup }
func (*SetupScreen) screen()          {}

// GameScreen holds a game in progress and the setup it was started from
type GameScreen struct {
	Game  *domain.Game
	setup *SetupScreen
}

// Kind returns ScreenGame
func (*GameScreen) Kind() ScreenKind { return ScreenGame }
func (*GameScreen) screen()          {}

func (s *SetupScreen) findPlayer(id domain.PlayerID) int {
	for i, p := range s.Roster {
		if p.ID == id {
			return i
		}
	}
	return -1
}
