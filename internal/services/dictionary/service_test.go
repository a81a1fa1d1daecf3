package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/ghostgame/internal/model"
	"github.com/mcoot/ghostgame/internal/storage/memory"
	"github.com/mcoot/ghostgame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())

	_, err := s.service.Words()
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadWords() {
	err := s.service.LoadWords([]string{"apple", "banana", "cherry"})
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
	words, err := s.service.Words()
	s.Require().NoError(err)
	s.Equal([]string{"apple", "banana", "cherry"}, words)
}

func (s *ServiceSuite) TestLoadWordsNormalizes() {
	_ = s.service.LoadWords([]string{"Apple", "BANANA", "apple", "pear2", "x-ray"})

	words, _ := s.service.Words()
	s.Equal([]string{"apple", "banana"}, words)
	s.True(s.service.Contains("APPLE"))
	s.False(s.service.Contains("pear2"))
}

func (s *ServiceSuite) TestLoadWordsRejectsEmpty() {
	err := s.service.LoadWords([]string{"123", "!!"})
	s.ErrorIs(err, model.ErrDictionaryEmpty)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadFromReaderSplitsOnAnyWhitespace() {
	input := "cat cats  car\n\tgo goat\r\nox"
	err := s.service.LoadFromReader(s.ctx, strings.NewReader(input))
	s.Require().NoError(err)

	words, _ := s.service.Words()
	s.Equal([]string{"cat", "cats", "car", "go", "goat", "ox"}, words)

	// Saved to storage as well
	stored, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, stored)
}

func (s *ServiceSuite) TestLoadFromFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("test word example\n"), 0o600))

	err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(3, s.service.WordCount())
	s.True(s.service.Contains("word"))
}

func (s *ServiceSuite) TestLoadFromMissingFile() {
	path := filepath.Join(s.T().TempDir(), "missing.txt")

	err := s.service.LoadFromFile(s.ctx, path)
	s.Require().Error(err)
	s.ErrorIs(err, os.ErrNotExist)
	s.Contains(err.Error(), path)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadFromStorage() {
	err := s.storage.SaveDictionaryWords(s.ctx, []string{"test", "word", "example"})
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())
	s.True(s.service.Contains("test"))
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestParseCountsSkippedTokens() {
	words, skipped, err := Parse(strings.NewReader("ab AB c3 dé ef"))
	s.Require().NoError(err)
	s.Equal([]string{"ab", "ef"}, words)
	s.Equal(2, skipped)
}
