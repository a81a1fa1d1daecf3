package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchStatus represents the current phase of a match
type MatchStatus string

const (
	MatchStatusAwaitingHuman    MatchStatus = "awaiting_human"    // Human to play next
	MatchStatusAwaitingComputer MatchStatus = "awaiting_computer" // Computer to play next
	MatchStatusHumanLost        MatchStatus = "human_lost"        // Computer won
	MatchStatusComputerLost     MatchStatus = "computer_lost"     // Human won
)

// IsTerminal returns true once a side has lost
func (s MatchStatus) IsTerminal() bool {
	return s == MatchStatusHumanLost || s == MatchStatusComputerLost
}

// Outcome is the result of applying a single move
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeHumanLost
	OutcomeComputerLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHumanLost:
		return "human_lost"
	case OutcomeComputerLost:
		return "computer_lost"
	default:
		return "continue"
	}
}

// LossFor returns the outcome in which the given player loses
func LossFor(p Player) Outcome {
	if p == PlayerHuman {
		return OutcomeHumanLost
	}
	return OutcomeComputerLost
}

// Status returns the terminal match status for a losing outcome.
// OutcomeContinue has no terminal status and returns the empty string.
func (o Outcome) Status() MatchStatus {
	switch o {
	case OutcomeHumanLost:
		return MatchStatusHumanLost
	case OutcomeComputerLost:
		return MatchStatusComputerLost
	default:
		return ""
	}
}

// Move records a single letter placement
type Move struct {
	Player   Player
	Letter   string
	Fragment string // Fragment after the move
}

// Match is the stored record of one game between the human and the computer
type Match struct {
	ID       MatchID
	Status   MatchStatus
	Fragment string
	Strategy string
	Moves    []Move

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ply returns the index of the next letter to be placed
func (m *Match) Ply() int {
	return len(m.Fragment)
}

// IsComplete returns true if a side has lost
func (m *Match) IsComplete() bool {
	return m.Status.IsTerminal()
}

// Winner returns the winning side, or the empty string while the match is live
func (m *Match) Winner() Player {
	switch m.Status {
	case MatchStatusHumanLost:
		return PlayerComputer
	case MatchStatusComputerLost:
		return PlayerHuman
	default:
		return ""
	}
}
