package domain

// IsSet reports whether a, b and c form a set: on every attribute the three
// values are all equal or all different, i.e. they sum to 0 mod 3.
//
// Three identical cards satisfy the rule. Callers that accept player input
// reject repeated cards before asking.
func IsSet(a, b, c Card) bool {
	for i := range Attributes {
		if (a[i]+b[i]+c[i])%Values != 0 {
			return false
		}
	}
	return true
}

// ThirdCard returns the unique card that completes a set with a and b.
func ThirdCard(a, b Card) Card {
	var c Card
	for i := range Attributes {
		c[i] = (Values - (a[i]+b[i])%Values) % Values
	}
	return c
}
