package app

import (
	"errors"

	"jeopardy/internal/clueset"
	"jeopardy/internal/domain"
)

// Controller errors
var (
	ErrNoClueSet        = errors.New("no clue set loaded")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrRosterFull       = errors.New("roster is full")
	ErrNoGame           = errors.New("no game in progress")
	ErrGameInProgress   = errors.New("game in progress")
	ErrPlayerNotFound   = errors.New("player not found")
)

// Error codes sent to the console
const (
	CodeMalformedClueSet = "MALFORMED_CLUE_SET"
	CodeNoClueSet        = "NO_CLUE_SET"
	CodeNotEnoughPlayers = "NOT_ENOUGH_PLAYERS"
	CodeRosterFull       = "ROSTER_FULL"
	CodeNoGame           = "NO_GAME"
	CodeGameInProgress   = "GAME_IN_PROGRESS"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeEmptyPlayerName  = "EMPTY_PLAYER_NAME"
	CodeInternal         = "INTERNAL_ERROR"
)

var sentinelCodes = []struct {
	err  error
	code string
}{
	{ErrNoClueSet, CodeNoClueSet},
	{ErrNotEnoughPlayers, CodeNotEnoughPlayers},
	{ErrRosterFull, CodeRosterFull},
	{ErrNoGame, CodeNoGame},
	{ErrGameInProgress, CodeGameInProgress},
	{ErrPlayerNotFound, CodePlayerNotFound},
	{domain.ErrEmptyPlayerName, CodeEmptyPlayerName},
}

// ErrorCode maps an error returned by the controller to a stable code
func ErrorCode(err error) string {
	var verr *clueset.ValidationError
	if errors.As(err, &verr) {
		return string(verr.Kind)
	}
	if errors.Is(err, clueset.ErrMalformed) {
		return CodeMalformedClueSet
	}

	var werr *domain.WagerError
	if errors.As(err, &werr) {
		return string(werr.Kind)
	}

	for _, sc := range sentinelCodes {
		if errors.Is(err, sc.err) {
			return sc.code
		}
	}
	return CodeInternal
}
