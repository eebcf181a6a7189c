package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hmaeda/campdoc/internal/llm"
	"github.com/hmaeda/campdoc/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent diagnostic traversals",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		showPath, _ := cmd.Flags().GetBool("path")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().RecentRouting(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No diagnoses recorded yet.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-10s  %-4s  %s\n", "Seq", "Timestamp", "Outcome", "Hops", "Input")
		fmt.Println(strings.Repeat("─", 90))
		for _, e := range events {
			fmt.Printf("%-6d  %-19s  %-10s  %-4d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Outcome,
				e.Hops,
				clip(e.Input, 40),
			)
			if showPath && len(e.Path) > 0 {
				fmt.Printf("        path: %s\n", strings.Join(e.Path, " -> "))
			}
		}
		return nil
	},
}

var eventsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "List recent LLM requests with estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().RecentLLMRequests(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %-2s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK", "Cost")
		fmt.Println(strings.Repeat("─", 105))

		var totalCost float64
		priced := true
		for _, e := range events {
			ok := "y"
			if !e.Success {
				ok = "n"
			}
			costStr := "?"
			if cost := llm.LookupCost(e.Model); cost != nil {
				c := cost.Cost(e.InputTokens, e.OutputTokens)
				totalCost += c
				costStr = fmt.Sprintf("$%.4f", c)
			} else {
				priced = false
			}
			fmt.Printf("%-6d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %-2s  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				clip(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
				costStr,
			)
		}

		label := "Total estimated cost"
		if !priced {
			label += " (partial)"
		}
		fmt.Printf("\n%s: $%.4f\n", label, totalCost)
		return nil
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	eventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	eventsCmd.Flags().Bool("path", false, "Show the visited node IDs per event")
	eventsLLMCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	eventsCmd.AddCommand(eventsLLMCmd)
}
