package ports

// Calendar maps wall-clock time to the day keys puzzles are seeded from.
type Calendar interface {
	// Today returns the key for the current day, e.g. "2025-03-14".
	Today() string
	// Normalize validates a caller supplied key and returns its canonical form.
	Normalize(day string) (string, error)
}
