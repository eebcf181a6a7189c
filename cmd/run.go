package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmaeda/campdoc/internal/advisor"
	"github.com/hmaeda/campdoc/internal/app"
	"github.com/hmaeda/campdoc/internal/flow"
	"github.com/hmaeda/campdoc/internal/kb"
	"github.com/hmaeda/campdoc/internal/llm"
	"github.com/hmaeda/campdoc/internal/notion"
	"github.com/hmaeda/campdoc/internal/store"
)

// runApp opens the store, loads content, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := app.Deps{
		EventRepo: st.EventRepo(),
	}
	deps.Snapshot, deps.Relation = loadContent(ctx, st)

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Consultations will be unavailable.")
	} else {
		deps.Advisor = advisor.New(provider, loadKnowledgeBase(), advisor.DefaultConfig())
	}

	return app.Run(deps)
}

// loadContent pulls the ingested databases through the cache. Missing
// Notion configuration degrades to an empty snapshot so the TUI can
// still start.
func loadContent(ctx context.Context, st *store.Store) (*flow.Snapshot, advisor.Context) {
	cfg := notion.ConfigFromEnv()
	if !cfg.Complete() {
		fmt.Fprintln(os.Stderr, "warning: Notion access is not configured (NOTION_API_KEY, CAMPDOC_NODE_DB)")
		return nil, advisor.Context{}
	}

	source := notion.NewSource(notion.NewClient(cfg.APIKey), cfg, st.CacheRepo())

	recs, err := source.Nodes(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load diagnostic nodes: %v\n", err)
		return nil, advisor.Context{}
	}

	rel := advisor.Context{Nodes: recs}
	if cases, err := source.Cases(ctx); err == nil {
		rel.Cases = cases
	} else {
		fmt.Fprintf(os.Stderr, "warning: load repair cases: %v\n", err)
	}
	if items, err := source.Items(ctx); err == nil {
		rel.Items = items
	} else {
		fmt.Fprintf(os.Stderr, "warning: load parts: %v\n", err)
	}

	return flow.NewSnapshot(notion.Nodes(recs)), rel
}

// loadKnowledgeBase loads the local category knowledge base, or nil
// when no directory is present.
func loadKnowledgeBase() *kb.KB {
	knowledge, err := kb.Load(kb.DefaultDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: knowledge base unavailable: %v\n", err)
		return nil
	}
	return knowledge
}
