package bot

import (
	"github.com/mcoot/ghostgame/internal/dependencies/random"
	"github.com/mcoot/ghostgame/internal/model"
	"github.com/mcoot/ghostgame/internal/services/engine"
)

// Strategy decides the computer's next letter
type Strategy interface {
	// ChooseLetter selects a letter for the position. It is called only when
	// the computer is to move and the index was built for the current ply.
	ChooseLetter(state engine.State) rune
}

// NewStrategies returns every registered strategy keyed by name
func NewStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyGhost:  NewGhostStrategy(rnd),
		model.BotStrategyRandom: NewRandomStrategy(rnd),
	}
}

// randomLetter picks uniformly from the full alphabet
func randomLetter(rnd random.Random) rune {
	return model.LetterAt(rnd.Intn(model.AlphabetSize))
}
