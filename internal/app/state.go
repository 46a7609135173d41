package app

import "jeopardy/internal/domain"

// State is the projection of the controller sent to the console
type State struct {
	Screen     ScreenKind `json:"screen"`
	Filename   string     `json:"filename,omitempty"`
	HasClueSet bool       `json:"hasClueSet"`
	MinPlayers int        `json:"minPlayers"`
	MaxPlayers int        `json:"maxPlayers"`
	Rules      Rules      `json:"rules"`

	// Setup screen only
	Roster   []domain.Player `json:"roster,omitempty"`
	CanStart bool            `json:"canStart"`

	// Game screen only
	Game *GameState `json:"game,omitempty"`
}

// Rules are the fixed board and wager limits, sent so the console can show
// them before a command is rejected
type Rules struct {
	CategoryCount              int   `json:"categoryCount"`
	CluesPerCategory           int   `json:"cluesPerCategory"`
	DailyDoubleCount           int   `json:"dailyDoubleCount"`
	MinDailyDoubleWager        int   `json:"minDailyDoubleWager"`
	DefaultMaxDailyDoubleWager int   `json:"defaultMaxDailyDoubleWager"`
	ForbiddenWagers            []int `json:"forbiddenWagers"`
}

func currentRules() Rules {
	return Rules{
		CategoryCount:              domain.CategoryCount,
		CluesPerCategory:           domain.CluesPerCategory,
		DailyDoubleCount:           domain.DailyDoubleCount,
		MinDailyDoubleWager:        domain.MinDailyDoubleWager,
		DefaultMaxDailyDoubleWager: domain.DefaultMaxDailyDoubleWager,
		ForbiddenWagers:            domain.ForbiddenWagers(),
	}
}

// GameState is the host's view of a game in progress
type GameState struct {
	Round        domain.Round       `json:"round"`
	Categories   []CategoryState    `json:"categories"`
	FinalClue    domain.FinalClue   `json:"finalClue"`
	Players      []PlayerState      `json:"players"`
	SelectedClue *SelectedClueState `json:"selectedClue,omitempty"`
	IsOver       bool               `json:"isOver"`
	Leaders      []domain.PlayerID  `json:"leaders,omitempty"`
}

// CategoryState is one board column
type CategoryState struct {
	Title  string      `json:"title"`
	IsDone bool        `json:"isDone"`
	Clues  []ClueState `json:"clues"`
}

// ClueState is one board cell. Clue text stays hidden until it is selected.
type ClueState struct {
	ID         domain.ClueID `json:"id"`
	PointValue int           `json:"pointValue"`
	IsDone     bool          `json:"isDone"`
	IsSelected bool          `json:"isSelected"`
}

// SelectedClueState is the clue in play
type SelectedClueState struct {
	domain.Clue
	CategoryTitle string `json:"categoryTitle"`
	IsResolved    bool   `json:"isResolved"`
	Wager         *int   `json:"wager,omitempty"`
	MinWager      int    `json:"minWager,omitempty"`
	MaxWager      int    `json:"maxWager,omitempty"`
}

// PlayerState is a contestant plus whether a response from them would count
type PlayerState struct {
	domain.Player
	CanRespond bool `json:"canRespond"`
}

func (c *Controller) stateLocked() State {
	state := State{
		Screen:     c.screen.Kind(),
		MinPlayers: c.minPlayers,
		MaxPlayers: c.maxPlayers,
		Rules:      currentRules(),
	}

	switch s := c.screen.(type) {
	case *SetupScreen:
		state.Filename = s.Filename
		state.HasClueSet = s.ClueSet != nil
		state.Roster = make([]domain.Player, 0, len(s.Roster))
		for _, p := range s.Roster {
			state.Roster = append(state.Roster, *p)
		}
		state.CanStart = s.ClueSet != nil && len(s.Roster) >= c.minPlayers && len(s.Roster) <= c.maxPlayers
	case *GameScreen:
		state.Filename = s.setup.Filename
		state.HasClueSet = true
		state.Game = gameState(s.Game)
	}
	return state
}

func gameState(g *domain.Game) *GameState {
	selected, hasSelected := g.SelectedClue()

	gs := &GameState{
		Round:  g.Round(),
		IsOver: g.IsOver(),
	}

	for _, category := range g.Board().Categories {
		cs := CategoryState{
			Title:  category.Title,
			IsDone: category.IsDone(),
			Clues:  make([]ClueState, 0, len(category.Clues)),
		}
		for _, clue := range category.Clues {
			isSelected := hasSelected && clue.ID == selected.ID
			cs.Clues = append(cs.Clues, ClueState{
				ID:         clue.ID,
				PointValue: clue.PointValue,
				IsDone:     clue.IsDone,
				IsSelected: isSelected,
			})
			if isSelected {
				gs.SelectedClue = selectedClueState(g, selected, category.Title)
			}
		}
		gs.Categories = append(gs.Categories, cs)
	}

	final := g.FinalClue()
	if g.Round() == domain.RoundFinal {
		gs.FinalClue = final
	} else {
		gs.FinalClue = domain.FinalClue{CategoryTitle: final.CategoryTitle}
	}

	for _, p := range g.Players() {
		gs.Players = append(gs.Players, PlayerState{Player: p, CanRespond: g.CanRespond(p.ID)})
	}

	if gs.IsOver {
		for _, p := range g.Leaders() {
			gs.Leaders = append(gs.Leaders, p.ID)
		}
	}
	return gs
}

func selectedClueState(g *domain.Game, clue domain.Clue, categoryTitle string) *SelectedClueState {
	sc := &SelectedClueState{
		Clue:          clue,
		CategoryTitle: categoryTitle,
		IsResolved:    g.IsSelectedClueResolved(),
	}
	if !clue.IsDailyDouble {
		return sc
	}

	if wager, ok := g.DailyDoubleWager(); ok {
		sc.Wager = &wager
	}
	score := 0
	if p, ok := g.SelectingPlayer(); ok {
		score = p.Score
	}
	sc.MinWager = domain.MinDailyDoubleWager
	sc.MaxWager = domain.MaxDailyDoubleWager(score)
	return sc
}
