package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/ghostgame/internal/model"
	"github.com/mcoot/ghostgame/internal/services/engine"
)

// BotAction is the move the computer made in response to the human
type BotAction struct {
	Letter  rune
	Outcome model.Outcome
}

// Service plays the computer's side of a match
type Service struct {
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// ValidateStrategy returns ErrUnknownStrategy for unregistered names
func (s *Service) ValidateStrategy(name string) error {
	if _, ok := s.strategies[name]; !ok {
		return fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
	return nil
}

// Respond chooses and plays the computer's letter on the engine
func (s *Service) Respond(e *engine.Engine, strategy string) (BotAction, error) {
	if e.ToMove() != model.PlayerComputer {
		if e.Status().IsTerminal() {
			return BotAction{}, model.ErrMatchComplete
		}
		return BotAction{}, model.ErrNotPlayerTurn
	}

	state := e.State()
	letter := s.strategyFor(strategy).ChooseLetter(state)
	outcome, err := e.Play(model.PlayerComputer, letter)
	if err != nil {
		return BotAction{}, err
	}

	s.logger.Debug("computer moved",
		slog.String("strategy", strategy),
		slog.Int("ply", state.Ply),
		slog.String("letter", string(letter)),
		slog.String("outcome", outcome.String()),
	)

	return BotAction{Letter: letter, Outcome: outcome}, nil
}

// strategyFor returns the named strategy, falling back to the default
func (s *Service) strategyFor(name string) Strategy {
	if st, ok := s.strategies[name]; ok {
		return st
	}
	return s.strategies[model.DefaultBotStrategy]
}
