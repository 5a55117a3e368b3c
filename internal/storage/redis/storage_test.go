package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// testSession builds a small but fully populated session for round-tripping
func testSession(id model.GameID) *model.GameSession {
	board := model.NewBoard(24)
	board.Point(24).Add(model.ColorWhite, 2)
	board.Point(13).Add(model.ColorWhite, 5)
	board.Point(1).Add(model.ColorBlack, 2)
	board.Point(12).Add(model.ColorBlack, 5)
	board.Bar[model.ColorBlack] = 1
	board.Checkers[model.ColorWhite] = 7
	board.Checkers[model.ColorBlack] = 8
	board.CurrentPlayer = model.ColorWhite
	board.Dice = [2]int{6, 3}
	board.RemainingDice = []int{6, 3}
	board.Turn = 1
	board.State = model.TurnStateDiceActive

	rules := &model.RuleConfig{
		Name:   "standard",
		Points: 24,
		Direction: map[model.Color]int{
			model.ColorWhite: -1,
			model.ColorBlack: 1,
		},
		Hitting:     model.HittingRules{CanHit: true},
		DoublesUses: 4,
		Combined:    model.CombinedRules{Normal: true},
		BearingOff:  model.BearingOffRules{Enabled: true, AllInOuterBoard: true},
		ForcedMoves: model.ForcedMoveRules{MustUseAllDice: true, MustUseHigherIfOnlyOne: true},
	}

	now := time.Now()
	return &model.GameSession{
		ID:        id,
		Variant:   "standard",
		Board:     board,
		Rules:     rules,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := testSession("GAME1")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Variant, retrieved.Variant)
	s.WithinDuration(session.CreatedAt, retrieved.CreatedAt, time.Second)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestRoundTripPreservesBoardState() {
	session := testSession("GAME1")
	session.Board.Point(13).Pinned = model.ColorBlack

	_ = s.storage.SaveSession(s.ctx, session)

	retrieved, err := s.storage.GetSession(s.ctx, "GAME1")
	s.Require().NoError(err)

	board := retrieved.Board
	s.Equal(24, board.NumPoints)
	s.Equal(2, board.Point(24).Count(model.ColorWhite))
	s.Equal(5, board.Point(12).Count(model.ColorBlack))
	s.Equal(model.ColorBlack, board.Point(13).Pinned)
	s.Equal(1, board.Bar[model.ColorBlack])
	s.Equal([2]int{6, 3}, board.Dice)
	s.Equal([]int{6, 3}, board.RemainingDice)
	s.Equal(model.TurnStateDiceActive, board.State)
	s.Equal(model.ColorWhite, board.CurrentPlayer)
}

func (s *StorageSuite) TestRoundTripPreservesRules() {
	session := testSession("GAME1")
	_ = s.storage.SaveSession(s.ctx, session)

	retrieved, err := s.storage.GetSession(s.ctx, "GAME1")
	s.Require().NoError(err)

	rules := retrieved.Rules
	s.Equal(-1, rules.Direction[model.ColorWhite])
	s.Equal(1, rules.Direction[model.ColorBlack])
	s.True(rules.Hitting.CanHit)
	s.True(rules.ForcedMoves.MustUseHigherIfOnlyOne)
	s.Equal(4, rules.DoublesUses)
}

func (s *StorageSuite) TestSaveSessionOverwrites() {
	session := testSession("GAME1")
	_ = s.storage.SaveSession(s.ctx, session)

	session.Board.CurrentPlayer = model.ColorBlack
	session.Board.Turn = 2
	_ = s.storage.SaveSession(s.ctx, session)

	retrieved, err := s.storage.GetSession(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Equal(model.ColorBlack, retrieved.Board.CurrentPlayer)
	s.Equal(2, retrieved.Board.Turn)
}

func (s *StorageSuite) TestDeleteSession() {
	session := testSession("GAME1")
	_ = s.storage.SaveSession(s.ctx, session)

	err := s.storage.DeleteSession(s.ctx, "GAME1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "GAME1")
	s.ErrorIs(err, model.ErrGameNotFound)

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *StorageSuite) TestListSessions() {
	_ = s.storage.SaveSession(s.ctx, testSession("GAME1"))
	_ = s.storage.SaveSession(s.ctx, testSession("GAME2"))
	_ = s.storage.SaveSession(s.ctx, testSession("GAME3"))

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Len(sessions, 3)

	ids := make([]model.GameID, 0, len(sessions))
	for _, session := range sessions {
		ids = append(ids, session.ID)
	}
	s.ElementsMatch([]model.GameID{"GAME1", "GAME2", "GAME3"}, ids)
}

func (s *StorageSuite) TestListSessionsEmpty() {
	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *StorageSuite) TestListSessionsPrunesExpired() {
	_ = s.storage.SaveSession(s.ctx, testSession("OLD"))

	// Let the first session expire, then add a fresh one
	s.mini.FastForward(2 * time.Hour)
	_ = s.storage.SaveSession(s.ctx, testSession("FRESH"))

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal(model.GameID("FRESH"), sessions[0].ID)

	// The stale index entry is gone, so a second list sees the same
	sessions, err = s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Len(sessions, 1)
}

func (s *StorageSuite) TestSessionTTL() {
	_ = s.storage.SaveSession(s.ctx, testSession("GAME1"))

	ttl := s.mini.TTL(sessionKey("GAME1"))
	s.True(ttl > 0, "Session should have TTL")
}
