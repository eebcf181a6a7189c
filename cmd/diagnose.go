package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hmaeda/campdoc/internal/flow"
	"github.com/hmaeda/campdoc/internal/store"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <symptom text>",
	Short: "Run one guided diagnosis without the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showPath, _ := cmd.Flags().GetBool("path")
		input := strings.Join(args, " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snapshot, _ := loadContent(cmd.Context(), st)
		if snapshot == nil || len(snapshot.Nodes()) == 0 {
			return fmt.Errorf("no diagnostic content loaded; configure Notion access and run `campdoc sync`")
		}

		var outcome flow.Outcome
		eng := flow.NewEngine(flow.ObserverFunc(func(e flow.Event) {
			if e.Kind == flow.EventFinished {
				outcome = e.Outcome
			}
		}))
		res := eng.DiagnoseWith(input, snapshot)

		err = st.EventRepo().AppendRouting(cmd.Context(), store.RoutingEventData{
			SessionID: uuid.NewString(),
			Input:     input,
			Outcome:   string(outcome),
			Resolved:  res.Resolved,
			Path:      res.Path,
			Hops:      len(res.Path),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: record routing event: %v\n", err)
		}

		fmt.Println(res.Text)
		if showPath {
			fmt.Println()
			fmt.Printf("outcome: %s\n", outcome)
			if len(res.Path) > 0 {
				fmt.Printf("path: %s\n", strings.Join(res.Path, " -> "))
			}
		}
		return nil
	},
}

func init() {
	diagnoseCmd.Flags().Bool("path", false, "Print the visited node IDs and outcome")
}
