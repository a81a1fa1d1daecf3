package bot

import (
	"github.com/mcoot/ghostgame/internal/dependencies/random"
	"github.com/mcoot/ghostgame/internal/services/engine"
	"github.com/mcoot/ghostgame/internal/services/wordindex"
)

// GhostStrategy looks one ply ahead.
//
// Win-seeking: a letter whose bucket holds a word exactly two letters longer
// than the fragment leaves the opponent to complete it, so such letters are
// played first. Loss-avoidance: when some letter would complete a word now,
// those letters are avoided and the largest remaining bucket is preferred.
// Otherwise a letter is sampled from the live words at this position.
type GhostStrategy struct {
	random random.Random
}

// NewGhostStrategy creates a new GhostStrategy
func NewGhostStrategy(rnd random.Random) *GhostStrategy {
	return &GhostStrategy{random: rnd}
}

// ChooseLetter implements Strategy
func (s *GhostStrategy) ChooseLetter(state engine.State) rune {
	if letter, ok := s.seekWin(state.Index, state.Ply); ok {
		return letter
	}
	if letter, ok := s.avoidLoss(state.Index, state.Ply); ok {
		return letter
	}
	return s.sampleLive(state.Index, state.Ply)
}

// SetupLetters returns the letters whose bucket holds a word of length ply+2
func SetupLetters(idx *wordindex.Index, ply int) []rune {
	return lettersWithWordLength(idx, ply+2)
}

// CompletingLetters returns the letters whose bucket holds a word of length
// ply+1, i.e. playing them now completes a word
func CompletingLetters(idx *wordindex.Index, ply int) []rune {
	return lettersWithWordLength(idx, ply+1)
}

// ExtendingLetters returns the non-empty, non-completing letters with the
// largest bucket
func ExtendingLetters(idx *wordindex.Index, ply int) []rune {
	avoid := make(map[rune]bool)
	for _, l := range CompletingLetters(idx, ply) {
		avoid[l] = true
	}

	var best []rune
	bestSize := 0
	for _, l := range idx.Letters() {
		if avoid[l] {
			continue
		}
		size := idx.Size(l)
		switch {
		case size > bestSize:
			bestSize = size
			best = []rune{l}
		case size == bestSize:
			best = append(best, l)
		}
	}
	return best
}

func (s *GhostStrategy) seekWin(idx *wordindex.Index, ply int) (rune, bool) {
	candidates := SetupLetters(idx, ply)
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[s.random.Intn(len(candidates))], true
}

// avoidLoss only engages when some letter would complete a word. If every
// live letter completes one the loss is unavoidable and any letter is played.
func (s *GhostStrategy) avoidLoss(idx *wordindex.Index, ply int) (rune, bool) {
	if len(CompletingLetters(idx, ply)) == 0 {
		return 0, false
	}
	candidates := ExtendingLetters(idx, ply)
	if len(candidates) == 0 {
		return randomLetter(s.random), true
	}
	return candidates[s.random.Intn(len(candidates))], true
}

// sampleLive draws the character at ply from a uniformly chosen live word,
// which weights each letter by its bucket size
func (s *GhostStrategy) sampleLive(idx *wordindex.Index, ply int) rune {
	words := idx.Words()
	if len(words) == 0 {
		return randomLetter(s.random)
	}
	return rune(words[s.random.Intn(len(words))][ply])
}

func lettersWithWordLength(idx *wordindex.Index, length int) []rune {
	var letters []rune
	for _, l := range idx.Letters() {
		for _, w := range idx.Bucket(l) {
			if len(w) == length {
				letters = append(letters, l)
				break
			}
		}
	}
	return letters
}

var _ Strategy = (*GhostStrategy)(nil)
var _ Strategy = (*RandomStrategy)(nil)
