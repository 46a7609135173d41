package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"jeopardy/internal/clueset"
	"jeopardy/internal/domain"
)

// Roster limits used when Options leaves them unset
const (
	DefaultMinPlayers = 3
	DefaultMaxPlayers = 8
)

// ClientConnection represents a connected console
type ClientConnection interface {
	Send(message any) error
	ID() string
	Close() error
}

// Options configures a Controller
type Options struct {
	MinPlayers int
	MaxPlayers int
	// Picker chooses who opens the board; random when nil
	Picker domain.Picker
	Logger *slog.Logger
}

// Controller owns the current screen and serializes every command against it.
// Each state change is broadcast to registered consoles as a GameEvent whose
// payload is the new State.
type Controller struct {
	mu         sync.RWMutex
	screen     Screen
	minPlayers int
	maxPlayers int
	picker     domain.Picker

	clients   map[string]ClientConnection
	clientsMu sync.RWMutex
	logger    *slog.Logger

	events chan *domain.GameEvent
	done   chan struct{}
}

// NewController creates a controller showing an empty setup screen
func NewController(opts Options) *Controller {
	if opts.MinPlayers <= 0 {
		opts.MinPlayers = DefaultMinPlayers
	}
	if opts.MaxPlayers < opts.MinPlayers {
		opts.MaxPlayers = max(DefaultMaxPlayers, opts.MinPlayers)
	}
	if opts.Picker == nil {
		opts.Picker = domain.RandomPicker{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Controller{
		screen:     &SetupScreen{},
		minPlayers: opts.MinPlayers,
		maxPlayers: opts.MaxPlayers,
		picker:     opts.Picker,
		clients:    make(map[string]ClientConnection),
		logger:     opts.Logger,
		events:     make(chan *domain.GameEvent, 100),
		done:       make(chan struct{}),
	}

	go c.eventLoop()

	return c
}

// State returns the current projection
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stateLocked()
}

// ScreenKind returns which screen is showing
func (c *Controller) ScreenKind() ScreenKind {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.screen.Kind()
}

// RegisterClient registers a console connection
func (c *Controller) RegisterClient(client ClientConnection) {
	c.clientsMu.Lock()
	defer c.clientsMu.Unlock()
	c.clients[client.ID()] = client
}

// UnregisterClient removes a console connection
func (c *Controller) UnregisterClient(id string) {
	c.clientsMu.Lock()
	defer c.clientsMu.Unlock()
	delete(c.clients, id)
}

// ClientCount returns the number of registered consoles
func (c *Controller) ClientCount() int {
	c.clientsMu.RLock()
	defer c.clientsMu.RUnlock()
	return len(c.clients)
}

// LoadClueSet validates data and makes it the clue set for the next game.
// While a game is showing it fails with ErrGameInProgress before validating.
// On failure the setup screen is left unchanged.
func (c *Controller) LoadClueSet(filename string, data []byte) error {
	if c.ScreenKind() != ScreenSetup {
		return ErrGameInProgress
	}
	set, err := clueset.Load(data)
	if err != nil {
		c.logger.Info("clue set rejected", "filename", filename, "error", err)
		return err
	}
	return c.useClueSet(filename, set)
}

// LoadClueSetFile loads the clue set at path
func (c *Controller) LoadClueSetFile(path string) error {
	if c.ScreenKind() != ScreenSetup {
		return ErrGameInProgress
	}
	set, err := clueset.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return c.useClueSet(filepath.Base(path), set)
}

// LoadSampleClueSet loads the built-in clue set
func (c *Controller) LoadSampleClueSet() error {
	set, err := clueset.Sample()
	if err != nil {
		return fmt.Errorf("load sample: %w", err)
	}
	return c.useClueSet(clueset.SampleFilename, set)
}

func (c *Controller) useClueSet(filename string, set *clueset.ClueSet) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	setup, ok := c.screen.(*SetupScreen)
	if !ok {
		return ErrGameInProgress
	}
	setup.ClueSet = set
	setup.Filename = filename

	c.logger.Info("clue set loaded", "filename", filename)
	c.queueEvent(domain.EventClueSetLoaded)
	return nil
}

// AddPlayer adds a contestant to the roster
func (c *Controller) AddPlayer(name string) (domain.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	setup, ok := c.screen.(*SetupScreen)
	if !ok {
		return domain.Player{}, ErrGameInProgress
	}
	if len(setup.Roster) >= c.maxPlayers {
		return domain.Player{}, ErrRosterFull
	}

	player, err := domain.NewPlayer(name)
	if err != nil {
		return domain.Player{}, err
	}
	setup.Roster = append(setup.Roster, player)

	c.logger.Debug("player added", "playerID", player.ID, "name", player.Name)
	c.queueEvent(domain.EventRosterChanged)
	return *player, nil
}

// RemovePlayer removes a contestant from the roster
func (c *Controller) RemovePlayer(id domain.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	setup, ok := c.screen.(*SetupScreen)
	if !ok {
		return ErrGameInProgress
	}
	i := setup.findPlayer(id)
	if i < 0 {
		return ErrPlayerNotFound
	}
	setup.Roster = append(setup.Roster[:i], setup.Roster[i+1:]...)

	c.logger.Debug("player removed", "playerID", id)
	c.queueEvent(domain.EventRosterChanged)
	return nil
}

// StartGame starts a game with the loaded clue set and the current roster
func (c *Controller) StartGame() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	setup, ok := c.screen.(*SetupScreen)
	if !ok {
		return ErrGameInProgress
	}
	if setup.ClueSet == nil {
		return ErrNoClueSet
	}
	if len(setup.Roster) < c.minPlayers {
		return ErrNotEnoughPlayers
	}
	if len(setup.Roster) > c.maxPlayers {
		return ErrRosterFull
	}

	game, err := domain.NewGame(setup.ClueSet.Board, setup.ClueSet.FinalClue, setup.Roster, c.picker)
	if err != nil {
		return err
	}
	c.screen = &GameScreen{Game: game, setup: setup}

	c.logger.Info("game started", "filename", setup.Filename, "players", len(setup.Roster))
	c.queueEvent(domain.EventGameStarted)
	return nil
}

// EndGame discards the game and returns to setup with the same clue set and roster
func (c *Controller) EndGame() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	gs, ok := c.screen.(*GameScreen)
	if !ok {
		return ErrNoGame
	}
	c.screen = gs.setup

	c.logger.Info("game ended")
	c.queueEvent(domain.EventGameEnded)
	return nil
}

// SelectClue puts a clue in play
func (c *Controller) SelectClue(id domain.ClueID) error {
	return c.withGame(domain.EventClueSelected, func(g *domain.Game) (bool, error) {
		return g.SelectClue(id), nil
	})
}

// SetDailyDoubleWager records the selecting contestant's Daily Double wager
func (c *Controller) SetDailyDoubleWager(amount int) error {
	return c.withGame(domain.EventWagerSet, func(g *domain.Game) (bool, error) {
		return g.SetDailyDoubleWager(amount)
	})
}

// Respond rules on a contestant's response to the clue in play
func (c *Controller) Respond(playerID domain.PlayerID, correct bool) error {
	return c.withGame(domain.EventResponseRuled, func(g *domain.Game) (bool, error) {
		return g.RespondToSelectedClue(playerID, correct), nil
	})
}

// MarkDone retires the clue in play, starting the final round after the last one
func (c *Controller) MarkDone() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	gs, ok := c.screen.(*GameScreen)
	if !ok {
		return ErrNoGame
	}

	before := gs.Game.Round()
	if !gs.Game.MarkSelectedClueAsDone() {
		c.logger.Debug("game command ignored", "event", domain.EventClueDone)
		return nil
	}
	if before != domain.RoundFinal && gs.Game.Round() == domain.RoundFinal {
		c.logger.Info("final round started", "finalists", len(gs.Game.Players()))
		c.queueEvent(domain.EventFinalRoundStarted)
		return nil
	}

	c.queueEvent(domain.EventClueDone)
	return nil
}

// RespondFinal rules on a finalist's wager and response
func (c *Controller) RespondFinal(playerID domain.PlayerID, wager int, correct bool) error {
	return c.withGame(domain.EventFinalResponseRuled, func(g *domain.Game) (bool, error) {
		return g.RespondToFinalClue(playerID, wager, correct)
	})
}

// SetScore overrides a contestant's score
func (c *Controller) SetScore(playerID domain.PlayerID, score int) error {
	return c.withGame(domain.EventScoreSet, func(g *domain.Game) (bool, error) {
		return g.SetScore(playerID, score), nil
	})
}

// withGame runs fn against the game in play. The event is queued only when
// fn reports that the command changed the game.
func (c *Controller) withGame(eventType domain.EventType, fn func(g *domain.Game) (bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	gs, ok := c.screen.(*GameScreen)
	if !ok {
		return ErrNoGame
	}
	applied, err := fn(gs.Game)
	if err != nil {
		return err
	}
	if !applied {
		c.logger.Debug("game command ignored", "event", eventType)
		return nil
	}

	c.logger.Debug("game command applied", "event", eventType)
	c.queueEvent(eventType)
	return nil
}

// queueEvent snapshots the state into an event for the broadcast queue.
// Caller must hold mu.
func (c *Controller) queueEvent(eventType domain.EventType) {
	event := domain.NewEvent(eventType, c.stateLocked())
	select {
	case c.events <- event:
	default:
		c.logger.Warn("event queue full, dropping event", "type", event.Type)
	}
}

// eventLoop processes events and broadcasts to clients
func (c *Controller) eventLoop() {
	for {
		select {
		case <-c.done:
			return
		case event := <-c.events:
			c.broadcastEvent(event)
		}
	}
}

func (c *Controller) broadcastEvent(event *domain.GameEvent) {
	c.clientsMu.RLock()
	defer c.clientsMu.RUnlock()

	for id, client := range c.clients {
		if err := client.Send(event); err != nil {
			c.logger.Debug("failed to send to client", "clientID", id, "error", err)
		}
	}
}

// Close stops the event loop and closes every console connection
func (c *Controller) Close() {
	select {
	case <-c.done:
		return
	default:
		close(c.done)
	}

	c.clientsMu.Lock()
	for _, client := range c.clients {
		client.Close()
	}
	c.clients = make(map[string]ClientConnection)
	c.clientsMu.Unlock()
}
