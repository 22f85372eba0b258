// Package puzzle holds the answer checks for the house's puzzles. Every
// check is a pure function of the player's input.
package puzzle

import (
	"strconv"
	"strings"
)

const (
	whiteboardAnswer = "1"
	poemAnswer       = "reason"
	pianoSequence    = "dafa"
	diaryAnswer      = "emotion"
	deviceCode       = "1967"
	deviceAnswer     = "morality"
)

// HintThreshold is the number of wrong whiteboard answers after which a hint
// is offered.
const HintThreshold = 3

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Whiteboard checks the answer to the whiteboard question.
func Whiteboard(answer string) bool {
	return strings.TrimSpace(answer) == whiteboardAnswer
}

// Poem checks the missing word of the library poem. Case-insensitive.
func Poem(answer string) bool {
	return normalize(answer) == poemAnswer
}

// Diary checks the missing word of the diary. Case-insensitive.
func Diary(answer string) bool {
	return normalize(answer) == diaryAnswer
}

// PianoSequence checks a note sequence. Case, spaces and dashes are ignored,
// so "D-A-F-A" and "d a f a" both match.
func PianoSequence(sequence string) bool {
	s := normalize(sequence)
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	return s == pianoSequence
}

// SafePassword compares the combination exactly, including case.
func SafePassword(input, secret string) bool {
	return secret != "" && strings.TrimSpace(input) == secret
}

// DeviceCode checks the four-digit authorisation code. Exact match.
func DeviceCode(code string) bool {
	return strings.TrimSpace(code) == deviceCode
}

// DeviceFinal checks the final confirmation word. Case-insensitive.
func DeviceFinal(answer string) bool {
	return normalize(answer) == deviceAnswer
}

// Shelf is the outcome of pulling a book from the bookshelf.
type Shelf int

const (
	ShelfInvalid Shelf = iota // input was not two integers
	ShelfMiss
	ShelfPoem
	ShelfNote
)

// Bookshelf parses "row col" and reports which book was pulled.
func Bookshelf(input string) Shelf {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return ShelfInvalid
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return ShelfInvalid
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return ShelfInvalid
	}
	switch {
	case row == 9 && col == 5:
		return ShelfPoem
	case row == 4 && col == 20:
		return ShelfNote
	default:
		return ShelfMiss
	}
}

// Attempts counts wrong answers to a puzzle that escalates to a hint.
type Attempts struct {
	Misses int
}

// Miss records a wrong answer.
func (a *Attempts) Miss() {
	a.Misses++
}

// HintAvailable reports whether enough answers were wrong to offer a hint.
func (a Attempts) HintAvailable() bool {
	return a.Misses >= HintThreshold
}
