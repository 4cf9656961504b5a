package domain

import "slices"

// Puzzle is the board for one calendar day.
type Puzzle struct {
	Day string
	Generation
}

// Has reports whether card is on the puzzle's board.
func (p Puzzle) Has(card Card) bool {
	return slices.Contains(p.Board, card)
}

// Contains reports whether s is one of the puzzle's sets.
func (p Puzzle) Contains(s Set) bool {
	return slices.Contains(p.Sets, s)
}

// CheckResult is the verdict on a player's selection of three cards.
type CheckResult struct {
	Set Set
	// IsSet is true when the cards satisfy the set rule.
	IsSet bool
	// Found is true when the set is one of the puzzle's sets.
	Found bool
}
