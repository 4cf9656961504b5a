package domain

// Source abstracts uniform random draws so shuffles can be replayed.
// A *math/rand/v2.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// FullDeck returns all 81 cards with the first attribute varying slowest.
func FullDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for a := range uint8(Values) {
		for b := range uint8(Values) {
			for c := range uint8(Values) {
				for d := range uint8(Values) {
					deck = append(deck, Card{a, b, c, d})
				}
			}
		}
	}
	return deck
}

// Shuffle permutes deck in place with Fisher-Yates, drawing once from src
// for every index from the last down to 1.
func Shuffle(deck []Card, src Source) {
	for i := len(deck) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		deck[i], deck[j] = deck[j], deck[i]
	}
}
