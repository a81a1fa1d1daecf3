package response

import (
	"time"

	"github.com/mcoot/ghostgame/internal/model"
	"github.com/mcoot/ghostgame/internal/services/match"
)

// Move represents a single move in API responses
type Move struct {
	Player   string `json:"player"`
	Letter   string `json:"letter"`
	Fragment string `json:"fragment"`
}

// Match represents a match in API responses
type Match struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Fragment  string    `json:"fragment"`
	Strategy  string    `json:"strategy"`
	Winner    string    `json:"winner,omitempty"`
	Moves     []Move    `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MatchFromModel converts a model.Match to a response Match
func MatchFromModel(m *model.Match) Match {
	moves := make([]Move, len(m.Moves))
	for i, mv := range m.Moves {
		moves[i] = Move{
			Player:   string(mv.Player),
			Letter:   mv.Letter,
			Fragment: mv.Fragment,
		}
	}
	return Match{
		ID:        string(m.ID),
		Status:    string(m.Status),
		Fragment:  m.Fragment,
		Strategy:  m.Strategy,
		Winner:    string(m.Winner()),
		Moves:     moves,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MoveResponse is the response for playing a letter
type MoveResponse struct {
	Match          Match  `json:"match"`
	HumanLetter    string `json:"human_letter"`
	ComputerLetter string `json:"computer_letter,omitempty"`
	Outcome        string `json:"outcome"`
}

// MoveResponseFromResult converts a match.TurnResult
func MoveResponseFromResult(r *match.TurnResult) MoveResponse {
	resp := MoveResponse{
		Match:       MatchFromModel(r.Match),
		HumanLetter: string(r.HumanLetter),
		Outcome:     r.Outcome.String(),
	}
	if r.ComputerMoved() {
		resp.ComputerLetter = string(r.ComputerLetter)
	}
	return resp
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
}
