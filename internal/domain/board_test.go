package domain_test

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/randomtoy/setdaily/internal/domain"
)

// bruteForceSets checks every triple of positions.
func bruteForceSets(board []domain.Card) []domain.Set {
	var sets []domain.Set
	for i := 0; i < len(board); i++ {
		for j := i + 1; j < len(board); j++ {
			for k := j + 1; k < len(board); k++ {
				if domain.IsSet(board[i], board[j], board[k]) {
					sets = append(sets, domain.NewSet(board[i], board[j], board[k]))
				}
			}
		}
	}
	domain.SortSets(sets)
	return sets
}

func cards(ids ...string) []domain.Card {
	out := make([]domain.Card, len(ids))
	for i, id := range ids {
		out[i] = domain.MustParseCard(id)
	}
	return out
}

func setIDs(sets []domain.Set) []string {
	out := make([]string, len(sets))
	for i, s := range sets {
		out[i] = s.String()
	}
	return out
}

func assertValidGeneration(t *testing.T, g domain.Generation) {
	t.Helper()
	if len(g.Board) != domain.BoardSize {
		t.Fatalf("expected %d cards, got %d", domain.BoardSize, len(g.Board))
	}
	seen := make(map[domain.Card]bool)
	for _, c := range g.Board {
		if seen[c] {
			t.Fatalf("duplicate card on board: %s", c)
		}
		seen[c] = true
	}
	brute := bruteForceSets(g.Board)
	if len(brute) != domain.TargetSets {
		t.Fatalf("expected %d sets by brute force, got %d", domain.TargetSets, len(brute))
	}
	if !slices.Equal(g.Sets, brute) {
		t.Fatalf("sets mismatch:\n got  %v\n want %v", setIDs(g.Sets), setIDs(brute))
	}
}

func TestCountSets_MatchesBruteForce(t *testing.T) {
	src := &lcgSource{state: 3}
	for range 200 {
		deck := domain.FullDeck()
		domain.Shuffle(deck, src)
		board := deck[:domain.BoardSize]
		want := len(bruteForceSets(board))
		if got := domain.CountSets(board); got != want {
			t.Fatalf("board %v: CountSets = %d, brute force = %d", domain.FormatCards(board), got, want)
		}
		if got := len(domain.FindSets(board)); got != want {
			t.Fatalf("board %v: FindSets found %d, brute force = %d", domain.FormatCards(board), got, want)
		}
	}
}

func TestCountSets_KnownBoards(t *testing.T) {
	tests := []struct {
		name  string
		board []domain.Card
		want  int
	}{
		{"empty", nil, 0},
		{"single set", cards("0000", "0011", "0022"), 1},
		{"no set", cards("0000", "0011", "0021"), 0},
		// The board the first generator release shipped as its fallback.
		{"thirteen", cards("0000", "0011", "0022", "0101", "0112", "0120", "0202", "0210", "0221", "1002", "1010", "1021"), 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.CountSets(tt.board); got != tt.want {
				t.Errorf("expected %d sets, got %d", tt.want, got)
			}
		})
	}
}

func TestFindSets_CanonicalOrder(t *testing.T) {
	board := cards("2101", "1220", "0012", "0122", "0202", "0120", "0220", "0020", "0011", "0002", "1200", "2012")
	got := setIDs(domain.FindSets(board))

	reversed := slices.Clone(board)
	slices.Reverse(reversed)
	if other := setIDs(domain.FindSets(reversed)); !slices.Equal(got, other) {
		t.Errorf("order depends on board layout:\n %v\n %v", got, other)
	}
	if !slices.IsSorted(got) {
		t.Errorf("sets not sorted: %v", got)
	}
	for _, s := range domain.FindSets(board) {
		if !slices.IsSortedFunc(s.Cards(), domain.CompareCards) {
			t.Errorf("set members not sorted: %s", s)
		}
	}
}

func TestGenerateBoard_RecordedSeed(t *testing.T) {
	g := domain.GenerateBoard(&lcgSource{state: 42}, nil)

	wantBoard := []string{
		"1210", "1112", "1201", "2020", "2000", "0012",
		"2121", "0000", "2110", "1222", "0100", "2102",
	}
	wantSets := []string{
		"0000|1201|2102",
		"0012|1222|2102",
		"0100|1112|2121",
		"0100|1210|2020",
		"1201|1210|1222",
		"2102|2110|2121",
	}
	if got := domain.FormatCards(g.Board); !slices.Equal(got, wantBoard) {
		t.Errorf("board:\n got  %v\n want %v", got, wantBoard)
	}
	if got := setIDs(g.Sets); !slices.Equal(got, wantSets) {
		t.Errorf("sets:\n got  %v\n want %v", got, wantSets)
	}
	if g.Attempts != 36 {
		t.Errorf("expected 36 attempts, got %d", g.Attempts)
	}
	if g.Fallback {
		t.Error("unexpected fallback")
	}
}

func TestGenerateBoard_ValidBoards(t *testing.T) {
	for seed := range uint64(25) {
		g := domain.GenerateBoard(&lcgSource{state: seed}, nil)
		if g.Fallback {
			t.Fatalf("seed %d: unexpected fallback", seed)
		}
		assertValidGeneration(t, g)
	}
}

func TestGenerateBoard_Reproducible(t *testing.T) {
	a := domain.GenerateBoard(&lcgSource{state: 1234}, nil)
	b := domain.GenerateBoard(&lcgSource{state: 1234}, nil)
	if !slices.Equal(a.Board, b.Board) || !slices.Equal(a.Sets, b.Sets) || a.Attempts != b.Attempts {
		t.Fatal("identical sources produced different generations")
	}
}

func TestGenerateBoard_ExhaustedBudget(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	// Every attempt deals the same 9-set board.
	g := domain.GenerateBoard(constSource(0), logger)

	if !g.Fallback {
		t.Fatal("expected fallback generation")
	}
	want := domain.FallbackGeneration()
	if !slices.Equal(g.Board, want.Board) || !slices.Equal(g.Sets, want.Sets) {
		t.Error("expected the fallback board")
	}
	assertValidGeneration(t, g)

	out := buf.String()
	for _, s := range []string{"level=WARN", "target_sets=6", "max_attempts=5000"} {
		if !strings.Contains(out, s) {
			t.Errorf("log output missing %q: %s", s, out)
		}
	}
}

func TestFallbackGeneration(t *testing.T) {
	g := domain.FallbackGeneration()
	assertValidGeneration(t, g)

	// Callers get their own copy.
	g.Board[0] = domain.Card{2, 2, 2, 2}
	if domain.FallbackGeneration().Board[0] == g.Board[0] {
		t.Error("fallback board shared between calls")
	}
}
