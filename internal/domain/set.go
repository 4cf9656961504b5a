package domain

import (
	"slices"
	"strings"
)

// Set is a valid triple in canonical form: members sorted by identifier.
type Set [3]Card

// NewSet returns the canonical form of the triple {a, b, c}.
func NewSet(a, b, c Card) Set {
	s := Set{a, b, c}
	slices.SortFunc(s[:], CompareCards)
	return s
}

// Cards returns the members as a slice.
func (s Set) Cards() []Card {
	return s[:]
}

// String joins the member identifiers with "|".
func (s Set) String() string {
	return strings.Join(FormatCards(s[:]), "|")
}

// CompareSets orders sets lexicographically by member identifiers.
func CompareSets(a, b Set) int {
	for i := range a {
		if c := CompareCards(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// SortSets puts sets into canonical order.
func SortSets(sets []Set) {
	slices.SortFunc(sets, CompareSets)
}
