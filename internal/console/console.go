// Package console runs Ghost matches over a line-oriented text protocol,
// typically stdin and stdout.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mcoot/ghostgame/internal/model"
	"github.com/mcoot/ghostgame/internal/services/match"
)

const (
	banner = "\n####Ghost####\n" +
		"About:\nGhost is a word game. You take turns entering letters with the computer.\n" +
		"If a word is created, the player who created it loses.\n" +
		"Also, if no word can be made after a player enters a letter, that player loses.\n"

	letterPrompt   = "Prompt >> "
	continuePrompt = "Would you like to continue? (Y/N) >> "

	badLetterMsg = "please enter one letter(a-z)"
	badAnswerMsg = "please enter Y or N"

	computerWonMsg = "Computer has won the game!"
	humanWonMsg    = "You have won the game!"
)

// errInputClosed signals that the input stream ended
var errInputClosed = errors.New("input closed")

// Shell plays matches against the computer over a reader and writer
type Shell struct {
	controller match.ControllerInterface
	strategy   string
	in         *bufio.Scanner
	out        io.Writer
	logger     *slog.Logger
}

// New creates a Shell. An empty strategy selects the default.
func New(controller match.ControllerInterface, strategy string, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	return &Shell{
		controller: controller,
		strategy:   strategy,
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger.With(slog.String("component", "console")),
	}
}

// Run plays matches until the human declines a rematch or input ends.
// The end of input is a clean exit, not an error.
func (s *Shell) Run(ctx context.Context) error {
	m, err := s.controller.CreateMatch(ctx, s.strategy)
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	defer func() {
		if err := s.controller.AbandonMatch(context.WithoutCancel(ctx), m.ID); err != nil {
			s.logger.Warn("failed to discard match",
				slog.String("match_id", string(m.ID)),
				slog.String("error", err.Error()),
			)
		}
	}()

	for {
		s.println(banner)

		finished, err := s.playMatch(ctx, m.ID)
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		if finished.Winner() == model.PlayerComputer {
			s.println(computerWonMsg)
		} else {
			s.println(humanWonMsg)
		}

		again, err := s.askContinue()
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}

		if _, err := s.controller.Rematch(ctx, m.ID); err != nil {
			return fmt.Errorf("rematch: %w", err)
		}
	}
}

// playMatch exchanges moves until the match is decided
func (s *Shell) playMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		letter, err := s.readLetter()
		if err != nil {
			return nil, err
		}

		result, err := s.controller.PlayLetter(ctx, id, letter)
		if err != nil {
			return nil, fmt.Errorf("play letter: %w", err)
		}

		moves := result.Match.Moves
		if result.ComputerMoved() {
			s.println("word is now: " + moves[len(moves)-2].Fragment)
			s.println(fmt.Sprintf("Computer >> %c", result.ComputerLetter))
		}
		s.println("word is now: " + result.Match.Fragment)

		if result.Match.IsComplete() {
			return result.Match, nil
		}
	}
}

// readLetter prompts until the human enters a single letter
func (s *Shell) readLetter() (rune, error) {
	for {
		s.print("\n" + letterPrompt)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		letter, err := model.NormalizeLetter(line)
		if err == nil {
			return letter, nil
		}
		s.println("\n" + badLetterMsg)
	}
}

// askContinue prompts until the human answers Y or N
func (s *Shell) askContinue() (bool, error) {
	for {
		s.print(continuePrompt)
		line, err := s.readLine()
		if err != nil {
			return false, err
		}

		switch line {
		case "Y", "y":
			return true, nil
		case "N", "n":
			return false, nil
		}
		s.println("\n" + badAnswerMsg)
	}
}

func (s *Shell) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) print(text string) {
	_, _ = fmt.Fprint(s.out, text)
}

func (s *Shell) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}
