package wordindex

import "github.com/mcoot/ghostgame/internal/model"

// Index partitions a word collection by the letter found at one position.
// It is rebuilt from scratch every ply from the bucket of the letter just
// played, so there is no incremental mutation.
type Index struct {
	position int
	buckets  [model.AlphabetSize][]string
}

// Build returns the index of words keyed by their character at pos.
// Words of length <= pos are skipped, as are characters outside the alphabet.
// Bucket order preserves the order of words.
func Build(words []string, pos int) *Index {
	idx := &Index{position: pos}
	if pos < 0 {
		return idx
	}
	for _, word := range words {
		if len(word) <= pos {
			continue
		}
		i, ok := model.LetterIndex(rune(word[pos]))
		if !ok {
			continue
		}
		idx.buckets[i] = append(idx.buckets[i], word)
	}
	return idx
}

// Position returns the zero-based character position the index was built for
func (idx *Index) Position() int {
	return idx.position
}

// Bucket returns the words with the given letter at Position.
// Letters outside the alphabet have an empty bucket.
func (idx *Index) Bucket(letter rune) []string {
	i, ok := model.LetterIndex(letter)
	if !ok {
		return nil
	}
	return idx.buckets[i]
}

// Size returns the number of words in a letter's bucket
func (idx *Index) Size(letter rune) int {
	return len(idx.Bucket(letter))
}

// Contains reports whether the letter's bucket holds exactly word
func (idx *Index) Contains(letter rune, word string) bool {
	for _, w := range idx.Bucket(letter) {
		if w == word {
			return true
		}
	}
	return false
}

// Letters returns the letters with a non-empty bucket, in alphabet order
func (idx *Index) Letters() []rune {
	var letters []rune
	for i, bucket := range idx.buckets {
		if len(bucket) > 0 {
			letters = append(letters, model.LetterAt(i))
		}
	}
	return letters
}

// Words returns every indexed word, bucket by bucket in alphabet order
func (idx *Index) Words() []string {
	var words []string
	for _, bucket := range idx.buckets {
		words = append(words, bucket...)
	}
	return words
}

// Len returns the total number of indexed words
func (idx *Index) Len() int {
	n := 0
	for _, bucket := range idx.buckets {
		n += len(bucket)
	}
	return n
}
