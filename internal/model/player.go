package model

// Player identifies which side of a match made a move
type Player string

const (
	PlayerHuman    Player = "human"
	PlayerComputer Player = "computer"
)

// Opponent returns the other side
func (p Player) Opponent() Player {
	if p == PlayerHuman {
		return PlayerComputer
	}
	return PlayerHuman
}
