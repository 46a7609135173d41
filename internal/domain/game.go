package domain

// Game is the state of one played session: the board, the final clue, the
// contestants and whichever clue is currently in play.
//
// Commands whose preconditions do not hold are silent no-ops and report
// false; only wager commands return errors. Game is not safe for concurrent
// use; callers serialize access.
type Game struct {
	board     *Board
	finalClue FinalClue
	players   []*Player
	round     Round

	clues    map[ClueID]*Clue
	selected *Clue
	wager    *int
	// resolved is set once the selected clue has been answered correctly,
	// or once its Daily Double wager has been settled.
	resolved bool
}

// NewGame creates a game from a validated board and final clue. The board is
// copied; every player starts at zero and picker chooses who opens the board.
func NewGame(board *Board, finalClue FinalClue, players []*Player, picker Picker) (*Game, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if picker == nil {
		picker = RandomPicker{}
	}

	g := &Game{
		board:     board.Clone(),
		finalClue: finalClue,
		players:   make([]*Player, 0, len(players)),
		round:     RoundMain,
		clues:     make(map[ClueID]*Clue),
	}

	for _, category := range g.board.Categories {
		for _, clue := range category.Clues {
			g.clues[clue.ID] = clue
		}
	}

	for _, p := range players {
		g.players = append(g.players, &Player{ID: p.ID, Name: p.Name})
	}

	first := picker.Pick(len(g.players))
	if first < 0 || first >= len(g.players) {
		first = 0
	}
	g.players[first].CanSelectClue = true

	return g, nil
}

// SelectClue puts a clue in play.
// No-op in the final round, while another clue is selected, or if the clue
// is unknown or already done.
func (g *Game) SelectClue(id ClueID) bool {
	if g.round != RoundMain || g.selected != nil {
		return false
	}

	clue, ok := g.clues[id]
	if !ok || clue.IsDone {
		return false
	}

	g.selected = clue
	g.wager = nil
	g.resolved = false
	for _, p := range g.players {
		p.ResetForNewClue()
	}
	return true
}

// SetDailyDoubleWager records the wager of the contestant holding the
// selection privilege. No-op unless an unresolved Daily Double is selected.
// A rejected wager leaves any earlier wager in place.
func (g *Game) SetDailyDoubleWager(amount int) (bool, error) {
	if g.selected == nil || !g.selected.IsDailyDouble || g.resolved {
		return false, nil
	}

	selector := g.selectingPlayer()
	if selector == nil {
		return false, nil
	}

	if err := ValidateDailyDoubleWager(amount, selector.Score); err != nil {
		return false, err
	}

	g.wager = &amount
	return true, nil
}

// RespondToSelectedClue rules on a contestant's response to the selected clue.
//
// On a regular clue the point value is added or deducted; a correct response
// hands that contestant the selection privilege and closes the clue, an
// incorrect one leaves it open for the others. On a Daily Double only the
// selecting contestant may respond, and only after wagering; the wager is
// settled and the contestant keeps the privilege either way.
func (g *Game) RespondToSelectedClue(playerID PlayerID, correct bool) bool {
	if g.round != RoundMain || g.selected == nil || g.resolved {
		return false
	}

	p := g.findPlayer(playerID)
	if p == nil || p.HasResponded {
		return false
	}

	if g.selected.IsDailyDouble {
		if !p.CanSelectClue || g.wager == nil {
			return false
		}
		p.award(*g.wager, correct)
		p.HasResponded = true
		g.wager = nil
		g.resolved = true
		g.grantSelection(p)
		return true
	}

	p.award(g.selected.PointValue, correct)
	p.HasResponded = true
	if correct {
		g.grantSelection(p)
		g.resolved = true
	}
	return true
}

// MarkSelectedClueAsDone retires the selected clue. When it was the last clue
// on the board the game moves to the final round and only contestants with a
// positive score stay in.
func (g *Game) MarkSelectedClueAsDone() bool {
	if g.round != RoundMain || g.selected == nil {
		return false
	}

	g.selected.IsDone = true
	g.selected = nil
	g.wager = nil
	g.resolved = false
	for _, p := range g.players {
		p.ResetForNewClue()
	}

	if g.board.RemainingClueCount() == 0 {
		g.startFinalRound()
	}
	return true
}

// RespondToFinalClue settles a contestant's final wager.
// No-op outside the final round or if the contestant already responded.
func (g *Game) RespondToFinalClue(playerID PlayerID, wager int, correct bool) (bool, error) {
	if g.round != RoundFinal {
		return false, nil
	}

	p := g.findPlayer(playerID)
	if p == nil || p.HasResponded {
		return false, nil
	}

	if err := ValidateFinalWager(wager, p.Score); err != nil {
		return false, err
	}

	p.award(wager, correct)
	p.HasResponded = true
	return true, nil
}

// SetScore overrides a contestant's score. No-op for an unknown contestant.
func (g *Game) SetScore(playerID PlayerID, score int) bool {
	p := g.findPlayer(playerID)
	if p == nil {
		return false
	}
	p.Score = score
	return true
}

// Round returns the current round
func (g *Game) Round() Round {
	return g.round
}

// Board returns a copy of the board
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// FinalClue returns the final clue
func (g *Game) FinalClue() FinalClue {
	return g.finalClue
}

// Players returns copies of the contestants in roster order
func (g *Game) Players() []Player {
	players := make([]Player, 0, len(g.players))
	for _, p := range g.players {
		players = append(players, *p)
	}
	return players
}

// Player returns a copy of the contestant with the given ID
func (g *Game) Player(id PlayerID) (Player, bool) {
	if p := g.findPlayer(id); p != nil {
		return *p, true
	}
	return Player{}, false
}

// SelectedClue returns a copy of the clue in play
func (g *Game) SelectedClue() (Clue, bool) {
	if g.selected == nil {
		return Clue{}, false
	}
	return *g.selected, true
}

// IsSelectedClueResolved reports whether the clue in play can take no more responses
func (g *Game) IsSelectedClueResolved() bool {
	return g.selected != nil && g.resolved
}

// DailyDoubleWager returns the pending Daily Double wager
func (g *Game) DailyDoubleWager() (int, bool) {
	if g.wager == nil {
		return 0, false
	}
	return *g.wager, true
}

// SelectingPlayer returns the contestant holding the selection privilege
func (g *Game) SelectingPlayer() (Player, bool) {
	if p := g.selectingPlayer(); p != nil {
		return *p, true
	}
	return Player{}, false
}

// CanRespond reports whether a response from the contestant would be ruled on
func (g *Game) CanRespond(playerID PlayerID) bool {
	p := g.findPlayer(playerID)
	if p == nil || p.HasResponded {
		return false
	}

	switch g.round {
	case RoundFinal:
		return true
	case RoundMain:
		if g.selected == nil || g.resolved {
			return false
		}
		if g.selected.IsDailyDouble {
			return p.CanSelectClue && g.wager != nil
		}
		return true
	}
	return false
}

// IsOver reports whether every finalist has responded to the final clue
func (g *Game) IsOver() bool {
	if g.round != RoundFinal {
		return false
	}
	for _, p := range g.players {
		if !p.HasResponded {
			return false
		}
	}
	return true
}

// Leaders returns the contestants sharing the highest score
func (g *Game) Leaders() []Player {
	leaders := make([]Player, 0, 1)
	for _, p := range g.players {
		switch {
		case len(leaders) == 0 || p.Score > leaders[0].Score:
			leaders = append(leaders[:0], *p)
		case p.Score == leaders[0].Score:
			leaders = append(leaders, *p)
		}
	}
	return leaders
}

func (g *Game) startFinalRound() {
	if !g.round.CanTransitionTo(RoundFinal) {
		return
	}
	g.round = RoundFinal

	finalists := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if p.Score > 0 {
			p.ResetForNewClue()
			finalists = append(finalists, p)
		}
	}
	g.players = finalists
}

func (g *Game) grantSelection(player *Player) {
	for _, p := range g.players {
		p.CanSelectClue = p.ID == player.ID
	}
}

func (g *Game) selectingPlayer() *Player {
	for _, p := range g.players {
		if p.CanSelectClue {
			return p
		}
	}
	return nil
}

func (g *Game) findPlayer(id PlayerID) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
