package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/ghostgame/internal/model"
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
	cfg.MatchTTL = time.Hour

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

// Match tests

func (s *StorageSuite) TestSaveAndGetMatch() {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	match := &model.Match{
		ID:       "match-1",
		Status:   model.MatchStatusAwaitingHuman,
		Fragment: "ca",
		Strategy: model.BotStrategyGhost,
		Moves: []model.Move{
			{Player: model.PlayerHuman, Letter: "c", Fragment: "c"},
			{Player: model.PlayerComputer, Letter: "a", Fragment: "ca"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(match.Status, retrieved.Status)
	s.Equal(match.Fragment, retrieved.Fragment)
	s.Equal(match.Moves, retrieved.Moves)
	s.True(match.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestMatchHasTTL() {
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1"})

	ttl := s.mini.TTL(matchKey("match-1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestMatchExpires() {
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1"})

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestDeleteMatch() {
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1"})

	err := s.storage.DeleteMatch(s.ctx, "match-1")
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Dictionary tests

func (s *StorageSuite) TestDictionaryNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetDictionaryKeepsOrder() {
	words := []string{"zebra", "apple", "mango"}
	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestSaveDictionaryReplacesPrevious() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"old", "words"})
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"new"})

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new"}, retrieved)
}

func (s *StorageSuite) TestSaveLargeDictionaryInChunks() {
	words := make([]string, 2500)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}
