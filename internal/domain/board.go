package domain

import (
	"log/slog"
)

const (
	// BoardSize is the number of cards dealt for a daily puzzle.
	BoardSize = 12
	// TargetSets is the exact number of sets a daily board must contain.
	// FallbackGeneration must be kept consistent with it.
	TargetSets = 6
	// MaxAttempts bounds the number of boards tried before falling back.
	MaxAttempts = 5000
)

// Generation is a board together with every set on it.
type Generation struct {
	Board []Card
	// Sets is in canonical order (see SortSets).
	Sets []Set
	// Attempts is the number of boards dealt, including the accepted one.
	Attempts int
	// Fallback is true when the search budget ran out.
	Fallback bool
}

// positions maps each card on board to its index.
func positions(board []Card) map[Card]int {
	pos := make(map[Card]int, len(board))
	for i, c := range board {
		pos[c] = i
	}
	return pos
}

// eachSet calls fn once per set on board. For a set at positions i<j<k only
// the pair (i, j) finds its third card at a later index, so nothing is
// visited twice.
func eachSet(board []Card, fn func(a, b, c Card)) {
	pos := positions(board)
	for i := 0; i < len(board); i++ {
		for j := i + 1; j < len(board); j++ {
			third := ThirdCard(board[i], board[j])
			if k, ok := pos[third]; ok && k > j {
				fn(board[i], board[j], third)
			}
		}
	}
}

// CountSets returns the number of sets among the cards on board.
// The cards must be distinct.
func CountSets(board []Card) int {
	n := 0
	eachSet(board, func(_, _, _ Card) { n++ })
	return n
}

// FindSets returns every set on board in canonical order.
func FindSets(board []Card) []Set {
	var sets []Set
	eachSet(board, func(a, b, c Card) {
		sets = append(sets, NewSet(a, b, c))
	})
	SortSets(sets)
	return sets
}

// GenerateBoard deals boards from freshly shuffled decks until one holds
// exactly TargetSets sets. Every attempt keeps drawing from src, so a
// deterministic source yields a deterministic result. When MaxAttempts boards
// have been rejected it logs a warning and returns FallbackGeneration.
// A nil logger means slog.Default.
func GenerateBoard(src Source, logger *slog.Logger) Generation {
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		deck := FullDeck()
		Shuffle(deck, src)
		board := deck[:BoardSize:BoardSize]
		if CountSets(board) != TargetSets {
			continue
		}
		return Generation{
			Board:    board,
			Sets:     FindSets(board),
			Attempts: attempt,
		}
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("board search exhausted, using fallback board",
		"target_sets", TargetSets,
		"max_attempts", MaxAttempts,
	)
	return FallbackGeneration()
}
