package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/randomtoy/setdaily/internal/domain"
	"github.com/randomtoy/setdaily/internal/ports"
)

// DefaultCacheDays is how many daily puzzles are kept in memory.
const DefaultCacheDays = 7

// PuzzleService generates and caches daily puzzles and checks selections
// against them.
type PuzzleService struct {
	calendar  ports.Calendar
	sources   ports.SourceFactory
	logger    *slog.Logger
	cacheDays int

	group singleflight.Group

	mu    sync.Mutex
	cache map[string]domain.Puzzle
}

func NewPuzzleService(cal ports.Calendar, sources ports.SourceFactory, logger *slog.Logger, cacheDays int) *PuzzleService {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheDays < 1 {
		cacheDays = DefaultCacheDays
	}
	return &PuzzleService{
		calendar:  cal,
		sources:   sources,
		logger:    logger,
		cacheDays: cacheDays,
		cache:     make(map[string]domain.Puzzle, cacheDays),
	}
}

// Today returns the puzzle for the current day.
func (s *PuzzleService) Today(ctx context.Context) (domain.Puzzle, error) {
	return s.ForDay(ctx, s.calendar.Today())
}

// ForDay returns the puzzle for day, generating it on first use.
func (s *PuzzleService) ForDay(ctx context.Context, day string) (domain.Puzzle, error) {
	day, err := s.calendar.Normalize(day)
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("normalize day: %w", err)
	}

	if p, ok := s.cached(day); ok {
		return p, nil
	}
	if err := ctx.Err(); err != nil {
		return domain.Puzzle{}, err
	}

	v, _, _ := s.group.Do(day, func() (any, error) {
		if p, ok := s.cached(day); ok {
			return p, nil
		}
		gen := domain.GenerateBoard(s.sources.NewSource(day), s.logger.With("day", day))
		p := domain.Puzzle{Day: day, Generation: gen}
		s.store(p)
		s.logger.Debug("generated puzzle",
			"day", day,
			"attempts", gen.Attempts,
			"fallback", gen.Fallback,
		)
		return p, nil
	})
	return clonePuzzle(v.(domain.Puzzle)), nil
}

// Check evaluates a player's selection of three card identifiers against the
// puzzle for day.
func (s *PuzzleService) Check(ctx context.Context, day string, ids []string) (domain.CheckResult, error) {
	if len(ids) != 3 {
		return domain.CheckResult{}, domain.ErrSelectionSize
	}
	sel, err := domain.ParseCards(ids)
	if err != nil {
		return domain.CheckResult{}, fmt.Errorf("parse selection: %w", err)
	}
	if sel[0] == sel[1] || sel[0] == sel[2] || sel[1] == sel[2] {
		return domain.CheckResult{}, domain.ErrDuplicateCard
	}

	p, err := s.ForDay(ctx, day)
	if err != nil {
		return domain.CheckResult{}, err
	}
	for _, c := range sel {
		if !p.Has(c) {
			return domain.CheckResult{}, fmt.Errorf("%w: %s", domain.ErrCardNotOnBoard, c)
		}
	}

	set := domain.NewSet(sel[0], sel[1], sel[2])
	res := domain.CheckResult{
		Set:   set,
		IsSet: domain.IsSet(sel[0], sel[1], sel[2]),
	}
	res.Found = res.IsSet && p.Contains(set)
	return res, nil
}

func (s *PuzzleService) cached(day string) (domain.Puzzle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.cache[day]
	if !ok {
		return domain.Puzzle{}, false
	}
	return clonePuzzle(p), true
}

// store adds p and evicts the earliest days beyond the cache size. Day keys
// sort chronologically.
func (s *PuzzleService) store(p domain.Puzzle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[p.Day] = p
	if len(s.cache) <= s.cacheDays {
		return
	}
	days := make([]string, 0, len(s.cache))
	for d := range s.cache {
		days = append(days, d)
	}
	slices.Sort(days)
	for _, d := range days[:len(days)-s.cacheDays] {
		delete(s.cache, d)
	}
}

func clonePuzzle(p domain.Puzzle) domain.Puzzle {
	p.Board = slices.Clone(p.Board)
	p.Sets = slices.Clone(p.Sets)
	return p
}
