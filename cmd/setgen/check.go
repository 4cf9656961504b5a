package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randomtoy/setdaily/internal/domain"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check CARD CARD [CARD]",
		Short: "Check a triple, or complete a pair",
		Long: `With three cards, report whether they form a set. With two, print the
card that completes the set.

Examples:
  setgen check 0000 0011 0022
  setgen check 0120 2211`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runCheck,
	}
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cards, err := domain.ParseCards(args)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if len(cards) == 2 {
		_, err := fmt.Fprintln(w, domain.ThirdCard(cards[0], cards[1]))
		return err
	}

	if domain.IsSet(cards[0], cards[1], cards[2]) {
		_, err = fmt.Fprintf(w, "%s is a set\n", domain.NewSet(cards[0], cards[1], cards[2]))
		return err
	}
	_, err = fmt.Fprintf(w, "not a set: %s %s needs %s\n", cards[0], cards[1], domain.ThirdCard(cards[0], cards[1]))
	return err
}
