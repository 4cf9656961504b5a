package domain

// fallbackBoard holds exactly TargetSets sets. TestFallbackGeneration checks
// it by brute force; regenerate it if TargetSets changes.
var fallbackBoard = [BoardSize]string{
	"0002", "0011", "0012", "0020",
	"0120", "0122", "0202", "0220",
	"1200", "1220", "2012", "2101",
}

var fallbackSets = [TargetSets][3]string{
	{"0002", "0011", "0020"},
	{"0002", "1200", "2101"},
	{"0011", "0120", "0202"},
	{"0012", "0122", "0202"},
	{"0012", "1220", "2101"},
	{"0020", "0120", "0220"},
}

// FallbackGeneration returns a copy of the pre-verified board used when the
// search budget is exhausted.
func FallbackGeneration() Generation {
	board := make([]Card, len(fallbackBoard))
	for i, id := range fallbackBoard {
		board[i] = MustParseCard(id)
	}
	sets := make([]Set, len(fallbackSets))
	for i, ids := range fallbackSets {
		sets[i] = NewSet(MustParseCard(ids[0]), MustParseCard(ids[1]), MustParseCard(ids[2]))
	}
	return Generation{
		Board:    board,
		Sets:     sets,
		Attempts: MaxAttempts,
		Fallback: true,
	}
}
