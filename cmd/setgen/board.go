package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randomtoy/setdaily/internal/adapters/daily"
	"github.com/randomtoy/setdaily/internal/adapters/seeded"
	"github.com/randomtoy/setdaily/internal/app"
	"github.com/randomtoy/setdaily/internal/domain"
)

var (
	boardDay  string
	boardTZ   string
	boardSalt string
	boardJSON bool
)

func init() {
	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Print the board and its sets for a day",
		Long: `Print the 12-card board for a day together with the 6 sets on it.

Examples:
  setgen board
  setgen board --day 2025-03-02
  setgen board --day 2025-03-02 --tz UTC --json`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}

	boardCmd.Flags().StringVarP(&boardDay, "day", "d", "", "Day as YYYY-MM-DD (default: today in --tz)")
	boardCmd.Flags().StringVar(&boardTZ, "tz", daily.DefaultTimezone, "IANA timezone the day rolls over in")
	boardCmd.Flags().StringVar(&boardSalt, "salt", "", "Seed salt, must match the server's PUZZLE_SEED_SALT")
	boardCmd.Flags().BoolVar(&boardJSON, "json", false, "Print JSON instead of text")

	rootCmd.AddCommand(boardCmd)
}

type boardOutput struct {
	Day      string     `json:"day"`
	Board    []string   `json:"board"`
	Sets     [][]string `json:"sets"`
	Attempts int        `json:"attempts"`
	Fallback bool       `json:"fallback"`
}

func runBoard(cmd *cobra.Command, _ []string) error {
	cal, err := daily.NewCalendar(boardTZ, nil)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := app.NewPuzzleService(cal, seeded.NewFactory(boardSalt), logger, 1)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	var p domain.Puzzle
	if boardDay == "" {
		p, err = svc.Today(ctx)
	} else {
		p, err = svc.ForDay(ctx, boardDay)
	}
	if err != nil {
		return err
	}

	out := boardOutput{
		Day:      p.Day,
		Board:    domain.FormatCards(p.Board),
		Sets:     make([][]string, len(p.Sets)),
		Attempts: p.Attempts,
		Fallback: p.Fallback,
	}
	for i, s := range p.Sets {
		out.Sets[i] = domain.FormatCards(s.Cards())
	}

	if boardJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return printBoard(cmd.OutOrStdout(), out)
}

// printBoard lays the board out as 3 rows of 4 cards.
func printBoard(w io.Writer, out boardOutput) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Board for %s", out.Day)
	if out.Fallback {
		sb.WriteString(" (fallback)")
	}
	sb.WriteString(":\n")
	for i := 0; i < len(out.Board); i += 4 {
		sb.WriteString("  " + strings.Join(out.Board[i:min(i+4, len(out.Board))], "  ") + "\n")
	}
	fmt.Fprintf(&sb, "\nSets (%d):\n", len(out.Sets))
	for i, s := range out.Sets {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, strings.Join(s, " "))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
