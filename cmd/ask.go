package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hmaeda/campdoc/internal/advisor"
	"github.com/hmaeda/campdoc/internal/llm"
	"github.com/hmaeda/campdoc/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the mechanic one question without the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		_, relation := loadContent(cmd.Context(), st)
		adv := advisor.New(provider, loadKnowledgeBase(), advisor.DefaultConfig())

		reply, err := adv.Consult(cmd.Context(), question, relation)
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	},
}
