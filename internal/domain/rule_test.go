package domain_test

import (
	"testing"

	"github.com/randomtoy/setdaily/internal/domain"
)

func card(id string) domain.Card {
	return domain.MustParseCard(id)
}

func TestIsSet_Scenarios(t *testing.T) {
	tests := []struct {
		a, b, c string
		want    bool
	}{
		{"0000", "0011", "0022", true},
		{"0000", "0011", "0021", false},
		{"0000", "1111", "2222", true},
		{"0120", "1201", "2012", true},
		{"0000", "0000", "0001", false},
		// Identical cards satisfy the modular rule.
		{"0000", "0000", "0000", true},
	}
	for _, tt := range tests {
		if got := domain.IsSet(card(tt.a), card(tt.b), card(tt.c)); got != tt.want {
			t.Errorf("IsSet(%s, %s, %s) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestThirdCard_CompletesEveryPair(t *testing.T) {
	deck := domain.FullDeck()
	for _, a := range deck {
		for _, b := range deck {
			c := domain.ThirdCard(a, b)
			if !domain.IsSet(a, b, c) {
				t.Fatalf("ThirdCard(%s, %s) = %s does not form a set", a, b, c)
			}
			if a != b && (c == a || c == b) {
				t.Fatalf("ThirdCard(%s, %s) = %s repeats a member", a, b, c)
			}
		}
	}
}

func TestThirdCard_Unique(t *testing.T) {
	a, b := card("0120"), card("2211")
	n := 0
	for _, c := range domain.FullDeck() {
		if domain.IsSet(a, b, c) {
			n++
			if c != domain.ThirdCard(a, b) {
				t.Errorf("unexpected completing card %s", c)
			}
		}
	}
	if n != 1 {
		t.Errorf("expected exactly one completing card, got %d", n)
	}
}

func TestIsSet_SymmetricUnderPermutation(t *testing.T) {
	deck := domain.FullDeck()
	for _, a := range deck {
		for _, b := range deck[:27] {
			c := domain.ThirdCard(a, b)
			perms := [][3]domain.Card{
				{a, b, c}, {a, c, b}, {b, a, c},
				{b, c, a}, {c, a, b}, {c, b, a},
			}
			for _, p := range perms {
				if !domain.IsSet(p[0], p[1], p[2]) {
					t.Fatalf("IsSet(%s, %s, %s) = false for a permutation of a set", p[0], p[1], p[2])
				}
			}
		}
	}
}
