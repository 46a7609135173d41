package app_test

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"jeopardy/internal/app"
	"jeopardy/internal/clueset"
	"jeopardy/internal/domain"
	"jeopardy/internal/domain/mocks"
)

type fakeClient struct {
	id     string
	mu     sync.Mutex
	events []*domain.GameEvent
	closed bool
}

func (f *fakeClient) ID() string { return f.id }

func (f *fakeClient) Send(message any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := message.(*domain.GameEvent)
	if !ok {
		return errors.New("unexpected message")
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeClient) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeClient) last() *domain.GameEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return nil
	}
	return f.events[len(f.events)-1]
}

func (f *fakeClient) eventTypes() []domain.EventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]domain.EventType, 0, len(f.events))
	for _, event := range f.events {
		types = append(types, event.Type)
	}
	return types
}

type ControllerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	picker     *mocks.MockPicker
	controller *app.Controller
	client     *fakeClient
}

func (s *ControllerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.picker = mocks.NewMockPicker(s.ctrl)
	s.controller = app.NewController(app.Options{
		MinPlayers: 3,
		MaxPlayers: 4,
		Picker:     s.picker,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.client = &fakeClient{id: "console"}
	s.controller.RegisterClient(s.client)
}

func (s *ControllerTestSuite) TearDownTest() {
	s.controller.Close()
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) addPlayers(names ...string) []domain.Player {
	players := make([]domain.Player, 0, len(names))
	for _, name := range names {
		p, err := s.controller.AddPlayer(name)
		s.Require().NoError(err)
		players = append(players, p)
	}
	return players
}

func (s *ControllerTestSuite) startGame() []domain.Player {
	s.Require().NoError(s.controller.LoadSampleClueSet())
	players := s.addPlayers("Alice", "Bob", "Carol")
	s.picker.EXPECT().Pick(3).Return(0)
	s.Require().NoError(s.controller.StartGame())
	return players
}

func (s *ControllerTestSuite) waitForEvent(eventType domain.EventType) *domain.GameEvent {
	var event *domain.GameEvent
	s.Require().Eventually(func() bool {
		event = s.client.last()
		return event != nil && event.Type == eventType
	}, time.Second, 5*time.Millisecond)
	return event
}

func (s *ControllerTestSuite) TestStartsOnSetupScreen() {
	state := s.controller.State()
	s.Equal(app.ScreenSetup, state.Screen)
	s.False(state.HasClueSet)
	s.False(state.CanStart)
	s.Nil(state.Game)
}

func (s *ControllerTestSuite) TestLoadClueSetBroadcasts() {
	s.Require().NoError(s.controller.LoadSampleClueSet())

	event := s.waitForEvent(domain.EventClueSetLoaded)
	state, ok := event.Payload.(app.State)
	s.Require().True(ok)
	s.True(state.HasClueSet)
	s.Equal(clueset.SampleFilename, state.Filename)
}

func (s *ControllerTestSuite) TestLoadInvalidClueSetKeepsPrevious() {
	s.Require().NoError(s.controller.LoadSampleClueSet())

	err := s.controller.LoadClueSet("broken.json", []byte(`{"categories": []}`))
	s.ErrorIs(err, clueset.ErrWrongCategoryCount)
	s.Equal(app.CodeMalformedClueSet, app.ErrorCode(clueset.ErrMalformed))
	s.Equal(string(clueset.KindWrongCategoryCount), app.ErrorCode(err))

	state := s.controller.State()
	s.True(state.HasClueSet)
	s.Equal(clueset.SampleFilename, state.Filename)
}

func (s *ControllerTestSuite) TestRosterEditing() {
	players := s.addPlayers("Alice", "Bob")
	s.Require().NoError(s.controller.RemovePlayer(players[0].ID))

	state := s.controller.State()
	s.Require().Len(state.Roster, 1)
	s.Equal("Bob", state.Roster[0].Name)

	s.ErrorIs(s.controller.RemovePlayer(players[0].ID), app.ErrPlayerNotFound)

	_, err := s.controller.AddPlayer("  ")
	s.ErrorIs(err, domain.ErrEmptyPlayerName)
}

func (s *ControllerTestSuite) TestRosterFull() {
	s.addPlayers("A", "B", "C", "D")
	_, err := s.controller.AddPlayer("E")
	s.ErrorIs(err, app.ErrRosterFull)
}

func (s *ControllerTestSuite) TestStartGameRequirements() {
	s.ErrorIs(s.controller.StartGame(), app.ErrNoClueSet)

	s.Require().NoError(s.controller.LoadSampleClueSet())
	s.addPlayers("Alice", "Bob")
	s.ErrorIs(s.controller.StartGame(), app.ErrNotEnoughPlayers)
	s.False(s.controller.State().CanStart)

	s.addPlayers("Carol")
	s.True(s.controller.State().CanStart)
}

func (s *ControllerTestSuite) TestStartGame() {
	s.startGame()

	event := s.waitForEvent(domain.EventGameStarted)
	state := event.Payload.(app.State)
	s.Equal(app.ScreenGame, state.Screen)
	s.Require().NotNil(state.Game)
	s.Equal(domain.RoundMain, state.Game.Round)
	s.Len(state.Game.Categories, domain.CategoryCount)
	s.Len(state.Game.Players, 3)
	s.True(state.Game.Players[0].CanSelectClue)
	s.Empty(state.Game.FinalClue.Answer)
	s.NotEmpty(state.Game.FinalClue.CategoryTitle)
}

func (s *ControllerTestSuite) TestRosterLockedDuringGame() {
	players := s.startGame()

	_, err := s.controller.AddPlayer("Dave")
	s.ErrorIs(err, app.ErrGameInProgress)
	s.ErrorIs(s.controller.RemovePlayer(players[0].ID), app.ErrGameInProgress)
	s.ErrorIs(s.controller.LoadSampleClueSet(), app.ErrGameInProgress)
	s.ErrorIs(s.controller.StartGame(), app.ErrGameInProgress)
}

func (s *ControllerTestSuite) TestLoadClueSetDuringGameConflictsBeforeValidating() {
	s.startGame()

	err := s.controller.LoadClueSet("broken.json", []byte(`{"categories": []}`))
	s.ErrorIs(err, app.ErrGameInProgress)
	s.Equal(app.CodeGameInProgress, app.ErrorCode(err))
	s.Equal(app.ScreenGame, s.controller.ScreenKind())
}

func (s *ControllerTestSuite) TestStateCarriesRules() {
	rules := s.controller.State().Rules
	s.Equal(domain.CategoryCount, rules.CategoryCount)
	s.Equal(domain.CluesPerCategory, rules.CluesPerCategory)
	s.Equal(domain.DailyDoubleCount, rules.DailyDoubleCount)
	s.Equal(domain.MinDailyDoubleWager, rules.MinDailyDoubleWager)
	s.Equal(domain.DefaultMaxDailyDoubleWager, rules.DefaultMaxDailyDoubleWager)
	s.Equal([]int{69, 420, 666, 1488}, rules.ForbiddenWagers)
}

func (s *ControllerTestSuite) TestIgnoredCommandsBroadcastNothing() {
	players := s.startGame()
	s.waitForEvent(domain.EventGameStarted)

	s.Require().NoError(s.controller.MarkDone())
	s.Require().NoError(s.controller.Respond(players[1].ID, true))
	s.Require().NoError(s.controller.SelectClue("no-such-clue"))
	s.Require().NoError(s.controller.SetDailyDoubleWager(500))
	s.Require().NoError(s.controller.RespondFinal(players[0].ID, 0, true))
	s.Require().NoError(s.controller.SetScore("nobody", 100))

	// events are delivered in order, so nothing else was queued before this one
	s.Require().NoError(s.controller.SetScore(players[0].ID, 100))
	s.waitForEvent(domain.EventScoreSet)

	s.Equal([]domain.EventType{
		domain.EventClueSetLoaded,
		domain.EventRosterChanged,
		domain.EventRosterChanged,
		domain.EventRosterChanged,
		domain.EventGameStarted,
		domain.EventScoreSet,
	}, s.client.eventTypes())

	state := s.controller.State()
	s.Nil(state.Game.SelectedClue)
	s.Zero(state.Game.Players[1].Score)
}

func (s *ControllerTestSuite) TestGameCommandsNeedGame() {
	s.ErrorIs(s.controller.SelectClue("x"), app.ErrNoGame)
	s.ErrorIs(s.controller.SetDailyDoubleWager(5), app.ErrNoGame)
	s.ErrorIs(s.controller.Respond("p", true), app.ErrNoGame)
	s.ErrorIs(s.controller.MarkDone(), app.ErrNoGame)
	s.ErrorIs(s.controller.RespondFinal("p", 0, true), app.ErrNoGame)
	s.ErrorIs(s.controller.SetScore("p", 100), app.ErrNoGame)
	s.ErrorIs(s.controller.EndGame(), app.ErrNoGame)
	s.Equal(app.CodeNoGame, app.ErrorCode(app.ErrNoGame))
}

func (s *ControllerTestSuite) TestPlayRegularClue() {
	players := s.startGame()
	state := s.controller.State()

	var clue app.ClueState
	for _, category := range state.Game.Categories {
		for _, c := range category.Clues {
			if c.PointValue == 200 {
				clue = c
				break
			}
		}
		if clue.ID != "" {
			break
		}
	}
	s.Require().NotEmpty(clue.ID)

	s.Require().NoError(s.controller.SelectClue(clue.ID))
	selected := s.waitForEvent(domain.EventClueSelected).Payload.(app.State).Game.SelectedClue
	s.Require().NotNil(selected)
	s.Equal(clue.ID, selected.ID)
	s.NotEmpty(selected.Answer)
	s.NotEmpty(selected.CategoryTitle)

	s.Require().NoError(s.controller.Respond(players[1].ID, true))
	state = s.waitForEvent(domain.EventResponseRuled).Payload.(app.State)
	s.Equal(200, state.Game.Players[1].Score)
	s.True(state.Game.Players[1].CanSelectClue)
	s.True(state.Game.SelectedClue.IsResolved)

	s.Require().NoError(s.controller.MarkDone())
	state = s.waitForEvent(domain.EventClueDone).Payload.(app.State)
	s.Nil(state.Game.SelectedClue)
}

func (s *ControllerTestSuite) TestDailyDoubleWagerError() {
	s.startGame()
	state := s.controller.State()

	var dd domain.ClueID
	for _, category := range state.Game.Categories {
		for _, c := range category.Clues {
			s.Require().NoError(s.controller.SelectClue(c.ID))
			if sel := s.controller.State().Game.SelectedClue; sel.IsDailyDouble {
				dd = c.ID
				s.Equal(domain.MinDailyDoubleWager, sel.MinWager)
				s.Equal(domain.DefaultMaxDailyDoubleWager, sel.MaxWager)
				break
			}
			s.Require().NoError(s.controller.MarkDone())
		}
		if dd != "" {
			break
		}
	}
	s.Require().NotEmpty(dd)

	err := s.controller.SetDailyDoubleWager(666)
	s.ErrorIs(err, domain.ErrForbiddenWager)
	s.Equal(string(domain.WagerForbidden), app.ErrorCode(err))

	s.Require().NoError(s.controller.SetDailyDoubleWager(500))
	sel := s.controller.State().Game.SelectedClue
	s.Require().NotNil(sel.Wager)
	s.Equal(500, *sel.Wager)
}

func (s *ControllerTestSuite) TestFinalRoundAndEndGame() {
	players := s.startGame()
	state := s.controller.State()

	s.Require().NoError(s.controller.SetScore(players[0].ID, 1500))
	for _, category := range state.Game.Categories {
		for _, c := range category.Clues {
			s.Require().NoError(s.controller.SelectClue(c.ID))
			s.Require().NoError(s.controller.MarkDone())
		}
	}

	state = s.waitForEvent(domain.EventFinalRoundStarted).Payload.(app.State)
	s.Equal(domain.RoundFinal, state.Game.Round)
	s.Require().Len(state.Game.Players, 1)
	s.Equal(players[0].ID, state.Game.Players[0].ID)
	s.NotEmpty(state.Game.FinalClue.Answer)
	s.NotEmpty(state.Game.FinalClue.CorrectResponse)

	err := s.controller.RespondFinal(players[0].ID, 2000, true)
	s.ErrorIs(err, domain.ErrWagerOutOfRange)

	s.Require().NoError(s.controller.RespondFinal(players[0].ID, 1000, true))
	state = s.waitForEvent(domain.EventFinalResponseRuled).Payload.(app.State)
	s.True(state.Game.IsOver)
	s.Equal([]domain.PlayerID{players[0].ID}, state.Game.Leaders)
	s.Equal(2500, state.Game.Players[0].Score)

	s.Require().NoError(s.controller.EndGame())
	state = s.waitForEvent(domain.EventGameEnded).Payload.(app.State)
	s.Equal(app.ScreenSetup, state.Screen)
	s.True(state.HasClueSet)
	s.Require().Len(state.Roster, 3)
	s.Equal("Alice", state.Roster[0].Name)
	s.Zero(state.Roster[0].Score)
}

func (s *ControllerTestSuite) TestCloseClosesClients() {
	s.controller.Close()
	s.controller.Close()

	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	s.True(s.client.closed)
	s.Zero(s.controller.ClientCount())
}

func TestNewControllerDefaults(t *testing.T) {
	c := app.NewController(app.Options{})
	defer c.Close()

	state := c.State()
	require.Equal(t, app.DefaultMinPlayers, state.MinPlayers)
	require.Equal(t, app.DefaultMaxPlayers, state.MaxPlayers)
}
