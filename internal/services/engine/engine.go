package engine

import (
	"fmt"

	"github.com/mcoot/ghostgame/internal/model"
	"github.com/mcoot/ghostgame/internal/services/wordindex"
)

// State is a read-only snapshot of a match position
type State struct {
	Fragment string
	Ply      int
	Index    *wordindex.Index
	Status   model.MatchStatus
}

// Engine runs the turn state machine for a single match.
// It is not safe for concurrent use; callers own one engine per match.
type Engine struct {
	words []string

	fragment string
	ply      int
	index    *wordindex.Index
	status   model.MatchStatus
}

// New creates an engine at the start of a match over the given dictionary
func New(words []string) *Engine {
	e := &Engine{words: words}
	e.Reset()
	return e
}

// Resume rebuilds an engine by replaying a recorded move list
func Resume(words []string, moves []model.Move) (*Engine, error) {
	e := New(words)
	for i, m := range moves {
		letter, err := model.NormalizeLetter(m.Letter)
		if err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i, err)
		}
		if _, err := e.Play(m.Player, letter); err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i, err)
		}
	}
	return e, nil
}

// Reset returns the engine to an empty fragment with the human to move
func (e *Engine) Reset() {
	e.fragment = ""
	e.ply = 0
	e.index = wordindex.Build(e.words, 0)
	e.status = model.MatchStatusAwaitingHuman
}

// State returns a snapshot of the current position
func (e *Engine) State() State {
	return State{
		Fragment: e.fragment,
		Ply:      e.ply,
		Index:    e.index,
		Status:   e.status,
	}
}

// Fragment returns the letters played so far
func (e *Engine) Fragment() string {
	return e.fragment
}

// Ply returns the index of the next letter to be placed
func (e *Engine) Ply() int {
	return e.ply
}

// Status returns the current state machine status
func (e *Engine) Status() model.MatchStatus {
	return e.status
}

// ToMove returns the player expected to move next, or the empty string once
// the match is over
func (e *Engine) ToMove() model.Player {
	switch e.status {
	case model.MatchStatusAwaitingHuman:
		return model.PlayerHuman
	case model.MatchStatusAwaitingComputer:
		return model.PlayerComputer
	default:
		return ""
	}
}

// Play applies a letter for the given player.
//
// The mover loses when no live word has the letter at this position, or when
// the letter completes a live word exactly. Otherwise the index is rebuilt
// for the next ply from the bucket just played and the turn passes over.
// Errors are returned only for misuse: a finished match, the wrong player,
// or a rune outside the alphabet.
func (e *Engine) Play(player model.Player, letter rune) (model.Outcome, error) {
	if e.status.IsTerminal() {
		return model.OutcomeContinue, model.ErrMatchComplete
	}
	if player != e.ToMove() {
		return model.OutcomeContinue, model.ErrNotPlayerTurn
	}
	if _, ok := model.LetterIndex(letter); !ok {
		return model.OutcomeContinue, model.ErrInvalidLetter
	}

	bucket := e.index.Bucket(letter)
	if len(bucket) == 0 {
		return e.lose(player), nil
	}

	e.fragment += string(letter)
	if e.index.Contains(letter, e.fragment) {
		return e.lose(player), nil
	}

	e.ply++
	e.index = wordindex.Build(bucket, e.ply)
	if player == model.PlayerHuman {
		e.status = model.MatchStatusAwaitingComputer
	} else {
		e.status = model.MatchStatusAwaitingHuman
	}
	return model.OutcomeContinue, nil
}

func (e *Engine) lose(player model.Player) model.Outcome {
	outcome := model.LossFor(player)
	e.status = outcome.Status()
	return outcome
}
