package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tutoring session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		ctx := context.Background()

		completions, err := s.CompletionCounts(ctx)
		if err != nil {
			return fmt.Errorf("completion counts: %w", err)
		}
		statuses, err := s.StatusCounts(ctx)
		if err != nil {
			return fmt.Errorf("status counts: %w", err)
		}
		sources, err := s.GradeSourceCounts(ctx)
		if err != nil {
			return fmt.Errorf("grade source counts: %w", err)
		}
		kinds, err := s.InteractionCounts(ctx)
		if err != nil {
			return fmt.Errorf("interaction counts: %w", err)
		}

		printCounts("Subtopic completions by reason", completions)
		printCounts("Subtopic verdicts", statuses)
		printCounts("Grades by source", sources)
		printCounts("Turns by interaction type", kinds)
		return nil
	},
}

// printCounts prints a labeled count table in stable order.
func printCounts(title string, counts map[string]int) {
	fmt.Println(title + ":")
	if len(counts) == 0 {
		fmt.Println("  (none)")
		fmt.Println()
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-24s %d\n", k, counts[k])
	}
	fmt.Println()
}
