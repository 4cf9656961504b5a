package domain

import (
	"cmp"
	"fmt"
)

const (
	// Attributes is the number of independent properties on a card.
	Attributes = 4
	// Values is the number of values each attribute can take.
	Values = 3
	// DeckSize is the number of distinct cards, Values^Attributes.
	DeckSize = 81
)

// Card is an immutable tuple of attribute values, each in [0, Values).
// Attribute order is color, shape, shading, count.
type Card [Attributes]uint8

// String returns the canonical identifier: one digit per attribute, e.g. "0120".
func (c Card) String() string {
	var b [Attributes]byte
	for i, v := range c {
		b[i] = '0' + v
	}
	return string(b[:])
}

// ParseCard decodes a canonical identifier.
func ParseCard(id string) (Card, error) {
	var c Card
	if len(id) != Attributes {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
	}
	for i := range Attributes {
		ch := id[i]
		if ch < '0' || ch >= '0'+Values {
			return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
		}
		c[i] = ch - '0'
	}
	return c, nil
}

// MustParseCard is ParseCard for identifiers known to be valid.
func MustParseCard(id string) Card {
	c, err := ParseCard(id)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards decodes every identifier in ids, stopping at the first bad one.
func ParseCards(ids []string) ([]Card, error) {
	cards := make([]Card, len(ids))
	for i, id := range ids {
		c, err := ParseCard(id)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

// FormatCards returns the identifiers of cards, in order.
func FormatCards(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.String()
	}
	return ids
}

// CompareCards orders cards the way their identifiers sort. It returns -1, 0 or +1.
func CompareCards(a, b Card) int {
	for i := range Attributes {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
