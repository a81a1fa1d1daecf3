package bot

import (
	"github.com/mcoot/ghostgame/internal/dependencies/random"
	"github.com/mcoot/ghostgame/internal/services/engine"
)

// RandomStrategy picks uniformly among the letters that keep some word alive.
// It never looks ahead, so it happily completes words.
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseLetter returns a random letter with a non-empty bucket, or any letter
// if every bucket is empty
func (s *RandomStrategy) ChooseLetter(state engine.State) rune {
	letters := state.Index.Letters()
	if len(letters) == 0 {
		return randomLetter(s.random)
	}
	return letters[s.random.Intn(len(letters))]
}
