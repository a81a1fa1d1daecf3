package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/ghostgame/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Match:
		o.printMatch(v)
	case MoveResult:
		o.printMoveResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Move response type (matches API)
type Move struct {
	Player   string `json:"player"`
	Letter   string `json:"letter"`
	Fragment string `json:"fragment"`
}

// Match response type
type Match struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Fragment string `json:"fragment"`
	Strategy string `json:"strategy"`
	Winner   string `json:"winner,omitempty"`
	Moves    []Move `json:"moves"`
}

// MoveResult response type
type MoveResult struct {
	Match          Match  `json:"match"`
	HumanLetter    string `json:"human_letter"`
	ComputerLetter string `json:"computer_letter,omitempty"`
	Outcome        string `json:"outcome"`
}

// HealthResult response type
type HealthResult struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printMatch(m Match) {
	o.printf("Match: %s\n", m.ID)
	o.printf("Status: %s\n", m.Status)
	o.printf("Strategy: %s\n", model.BotStrategyDisplayName(m.Strategy))
	o.printf("Word: %s\n", m.Fragment)
	if len(m.Moves) > 0 {
		letters := make([]string, len(m.Moves))
		for i, mv := range m.Moves {
			letters[i] = fmt.Sprintf("%s:%s", mv.Player, mv.Letter)
		}
		o.printf("Moves: %s\n", strings.Join(letters, " "))
	}
	if m.Winner != "" {
		o.printf("Winner: %s\n", m.Winner)
	}
}

func (o *Output) printMoveResult(r MoveResult) {
	o.printf("You >> %s\n", r.HumanLetter)
	if r.ComputerLetter != "" {
		o.printf("Computer >> %s\n", r.ComputerLetter)
	}
	o.printf("word is now: %s\n", r.Match.Fragment)

	switch r.Outcome {
	case "human_lost":
		o.printf("Computer has won the game!\n")
	case "computer_lost":
		o.printf("You have won the game!\n")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	o.printf("Status: %s\n", h.Status)
	o.printf("Dictionary words: %d\n", h.DictionaryWords)
}
