package model

import "unicode"

// Alphabet is the ordered set of letters a fragment may be built from
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// AlphabetSize is the number of letters in Alphabet
const AlphabetSize = len(Alphabet)

// LetterIndex returns the zero-based position of a lowercase letter in Alphabet
func LetterIndex(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}

// LetterAt returns the letter at position i of Alphabet
func LetterAt(i int) rune {
	return rune(Alphabet[i])
}

// NormalizeLetter accepts exactly one alphabetic character in either case
// and returns it lowercased
func NormalizeLetter(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, ErrInvalidLetter
	}
	r := unicode.ToLower(runes[0])
	if _, ok := LetterIndex(r); !ok {
		return 0, ErrInvalidLetter
	}
	return r, nil
}

// IsWord reports whether s is non-empty and made only of Alphabet letters
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := LetterIndex(r); !ok {
			return false
		}
	}
	return true
}
