package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmaeda/campdoc/internal/notion"
	"github.com/hmaeda/campdoc/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reload content from Notion, bypassing the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := notion.ConfigFromEnv()
		if !cfg.Complete() {
			return fmt.Errorf("Notion access is not configured; set NOTION_API_KEY and CAMPDOC_NODE_DB")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		source := notion.NewSource(notion.NewClient(cfg.APIKey), cfg, st.CacheRepo())
		if err := source.Refresh(ctx); err != nil {
			return fmt.Errorf("sync content: %w", err)
		}

		recs, err := source.Nodes(ctx)
		if err != nil {
			return fmt.Errorf("read back nodes: %w", err)
		}
		cases, _ := source.Cases(ctx)
		items, _ := source.Items(ctx)

		fmt.Printf("Synced %d diagnostic nodes, %d repair cases, %d parts.\n",
			len(recs), len(cases), len(items))
		return nil
	},
}
