package notion

import "os"

// Config holds the Notion API key and the three content database IDs.
type Config struct {
	APIKey string
	NodeDB string // diagnostic flow database
	CaseDB string // repair case database
	ItemDB string // parts and tools database
}

// ConfigFromEnv reads the Notion configuration from environment variables.
// NOTION_TOKEN is accepted as an alias for NOTION_API_KEY.
func ConfigFromEnv() Config {
	key := os.Getenv("NOTION_API_KEY")
	if key == "" {
		key = os.Getenv("NOTION_TOKEN")
	}
	return Config{
		APIKey: key,
		NodeDB: os.Getenv("CAMPDOC_NODE_DB"),
		CaseDB: os.Getenv("CAMPDOC_CASE_DB"),
		ItemDB: os.Getenv("CAMPDOC_ITEM_DB"),
	}
}

// Complete reports whether the config can serve node ingestion.
// Case and item databases are optional extras.
func (c Config) Complete() bool {
	return c.APIKey != "" && c.NodeDB != ""
}
