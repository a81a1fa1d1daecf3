package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/ghostgame/internal/model"
	"github.com/mcoot/ghostgame/internal/storage"
)

// Service holds the word list matches are played over
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  []string
	set    map[string]struct{}
	loaded bool
}

// New creates a new dictionary Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary")),
		set:     make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads whitespace-separated words from a file and saves them to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer file.Close()

	if err := s.LoadFromReader(ctx, file); err != nil {
		return fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return nil
}

// LoadFromReader parses whitespace-separated words from r and saves them to storage
func (s *Service) LoadFromReader(ctx context.Context, r io.Reader) error {
	words, skipped, err := Parse(r)
	if err != nil {
		return err
	}
	if skipped > 0 {
		s.logger.Warn("skipped dictionary tokens", slog.Int("count", skipped))
	}

	if err := s.loadWords(words); err != nil {
		return err
	}

	// Save to storage so other instances can load without the file
	return s.storage.SaveDictionaryWords(ctx, words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	normalized, _ := normalize(words)
	return s.loadWords(normalized)
}

// Parse reads every whitespace-separated token from r. Tokens are
// lowercased; tokens with characters outside a-z and repeats are dropped.
// It returns the kept words in input order and the number of dropped tokens.
func Parse(r io.Reader) ([]string, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}

	words, skipped := normalize(tokens)
	return words, skipped, nil
}

func normalize(tokens []string) ([]string, int) {
	seen := make(map[string]struct{}, len(tokens))
	words := make([]string, 0, len(tokens))
	skipped := 0
	for _, token := range tokens {
		word := strings.ToLower(token)
		if !model.IsWord(word) {
			skipped++
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words, skipped
}

func (s *Service) loadWords(words []string) error {
	if len(words) == 0 {
		return model.ErrDictionaryEmpty
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = words
	s.set = set
	s.loaded = true

	s.logger.Info("dictionary loaded", slog.Int("word_count", len(words)))
	return nil
}

// Words returns the loaded word list in load order.
// The slice is shared and must not be modified.
func (s *Service) Words() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, model.ErrDictionaryNotLoaded
	}
	return s.words, nil
}

// Contains checks if a word exists in the dictionary
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.set[strings.ToLower(word)]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// ServiceInterface is the dictionary surface other components depend on
type ServiceInterface interface {
	Words() ([]string, error)
	Contains(word string) bool
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadFromReader(ctx context.Context, r io.Reader) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
