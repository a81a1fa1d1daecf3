package match

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/ghostgame/internal/dependencies/clock"
	"github.com/mcoot/ghostgame/internal/dependencies/random"
	"github.com/mcoot/ghostgame/internal/model"
	"github.com/mcoot/ghostgame/internal/services/bot"
	"github.com/mcoot/ghostgame/internal/services/engine"
	"github.com/mcoot/ghostgame/internal/storage"
)

const (
	// MatchIDAlphabet is the character set for generating match IDs
	MatchIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// MatchIDLength is the length of generated match IDs
	MatchIDLength = 12
)

// WordSource supplies the dictionary a match is played over
type WordSource interface {
	Words() ([]string, error)
}

// TurnResult describes one exchange: the human's letter and, if the match
// survived it, the computer's reply
type TurnResult struct {
	Match          *model.Match
	HumanLetter    rune
	ComputerLetter rune // 0 if the computer did not move
	Outcome        model.Outcome
}

// ComputerMoved returns true if the computer replied in this exchange
func (r *TurnResult) ComputerMoved() bool {
	return r.ComputerLetter != 0
}

// Controller manages match lifecycle and turn flow
type Controller struct {
	storage    storage.Storage
	words      WordSource
	botService *bot.Service
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger

	defaultStrategy string

	// mu serializes moves; engines caches the live engine per match
	mu      sync.Mutex
	engines map[model.MatchID]*engine.Engine
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	words WordSource,
	botService *bot.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		words:      words,
		botService: botService,
		clock:      clock,
		random:     random,
		logger:     logger.With(slog.String("component", "match-controller")),
		engines:    make(map[model.MatchID]*engine.Engine),

		defaultStrategy: model.DefaultBotStrategy,
	}
}

// SetDefaultStrategy changes the strategy used when CreateMatch is given none
func (c *Controller) SetDefaultStrategy(strategy string) error {
	if err := c.botService.ValidateStrategy(strategy); err != nil {
		return err
	}
	c.defaultStrategy = strategy
	return nil
}

// CreateMatch starts a new match with the human to move first.
// An empty strategy selects the default.
func (c *Controller) CreateMatch(ctx context.Context, strategy string) (*model.Match, error) {
	if strategy == "" {
		strategy = c.defaultStrategy
	}
	if err := c.botService.ValidateStrategy(strategy); err != nil {
		return nil, err
	}

	words, err := c.words.Words()
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	match := &model.Match{
		ID:        model.MatchID(c.random.String(MatchIDLength, MatchIDAlphabet)),
		Status:    model.MatchStatusAwaitingHuman,
		Strategy:  strategy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.mu.Lock()
	c.engines[match.ID] = engine.New(words)
	c.mu.Unlock()

	c.logger.Info("match created",
		slog.String("match_id", string(match.ID)),
		slog.String("strategy", strategy),
	)

	return match, nil
}

// GetMatch retrieves a match by ID
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, id)
}

// PlayLetter applies the human's letter and, if the match continues, the
// computer's reply. Both moves complete before the result is returned.
func (c *Controller) PlayLetter(ctx context.Context, id model.MatchID, letter rune) (*TurnResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if match.IsComplete() {
		return nil, model.ErrMatchComplete
	}

	e, err := c.engineFor(match)
	if err != nil {
		return nil, err
	}

	outcome, err := e.Play(model.PlayerHuman, letter)
	if err != nil {
		return nil, err
	}
	result := &TurnResult{HumanLetter: letter, Outcome: outcome}
	c.record(match, model.PlayerHuman, letter, e)

	if outcome == model.OutcomeContinue {
		action, err := c.botService.Respond(e, match.Strategy)
		if err != nil {
			delete(c.engines, id)
			return nil, err
		}
		result.ComputerLetter = action.Letter
		result.Outcome = action.Outcome
		c.record(match, model.PlayerComputer, action.Letter, e)
	}

	match.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveMatch(ctx, match); err != nil {
		// The cached engine is ahead of storage now; drop it so the next
		// call replays from the stored moves
		delete(c.engines, id)
		return nil, err
	}

	if match.IsComplete() {
		c.logger.Info("match finished",
			slog.String("match_id", string(id)),
			slog.String("fragment", match.Fragment),
			slog.String("winner", string(match.Winner())),
			slog.Int("moves", len(match.Moves)),
		)
	}

	result.Match = match
	return result, nil
}

// Rematch clears a finished match so it can be played again from scratch
func (c *Controller) Rematch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !match.IsComplete() {
		return nil, model.ErrMatchInProgress
	}

	words, err := c.words.Words()
	if err != nil {
		return nil, err
	}

	match.Status = model.MatchStatusAwaitingHuman
	match.Fragment = ""
	match.Moves = nil
	match.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}
	c.engines[id] = engine.New(words)

	c.logger.Info("match restarted", slog.String("match_id", string(id)))
	return match, nil
}

// AbandonMatch removes a match
func (c *Controller) AbandonMatch(ctx context.Context, id model.MatchID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.storage.GetMatch(ctx, id); err != nil {
		return err
	}
	delete(c.engines, id)

	c.logger.Info("match abandoned", slog.String("match_id", string(id)))
	return c.storage.DeleteMatch(ctx, id)
}

// engineFor returns the cached engine if it agrees with the stored match,
// otherwise replays the stored moves. Must be called with mu held.
func (c *Controller) engineFor(match *model.Match) (*engine.Engine, error) {
	if e, ok := c.engines[match.ID]; ok &&
		e.Fragment() == match.Fragment && e.Status() == match.Status {
		return e, nil
	}

	words, err := c.words.Words()
	if err != nil {
		return nil, err
	}
	e, err := engine.Resume(words, match.Moves)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("match engine rebuilt",
		slog.String("match_id", string(match.ID)),
		slog.Int("moves", len(match.Moves)),
	)
	c.engines[match.ID] = e
	return e, nil
}

// record appends a move and mirrors the engine's position onto the match
func (c *Controller) record(match *model.Match, player model.Player, letter rune, e *engine.Engine) {
	match.Moves = append(match.Moves, model.Move{
		Player:   player,
		Letter:   string(letter),
		Fragment: e.Fragment(),
	})
	match.Fragment = e.Fragment()
	match.Status = e.Status()
}

// ControllerInterface is the match surface used by the API and console
type ControllerInterface interface {
	CreateMatch(ctx context.Context, strategy string) (*model.Match, error)
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	PlayLetter(ctx context.Context, id model.MatchID, letter rune) (*TurnResult, error)
	Rematch(ctx context.Context, id model.MatchID) (*model.Match, error)
	AbandonMatch(ctx context.Context, id model.MatchID) error
}

var _ ControllerInterface = (*Controller)(nil)
