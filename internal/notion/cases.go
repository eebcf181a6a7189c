package notion

import (
	"context"
	"fmt"
)

// Repair case database columns.
const (
	propCaseID       = "Case ID"
	propSolution     = "Solution"
	propCostEstimate = "Cost Estimate"
	propDifficulty   = "Difficulty"
	propTools        = "Required Tools"
	propParts        = "Required Parts"
)

// RepairCase is one documented repair from the shop's case database.
type RepairCase struct {
	ID           string
	Title        string
	Category     string
	Symptoms     []string
	Solution     string
	CostEstimate string
	Difficulty   string
	Tools        []string
	Parts        []string
}

// LoadCases queries the repair case database.
func (c *Client) LoadCases(ctx context.Context, databaseID string) ([]RepairCase, error) {
	pages, err := c.QueryDatabase(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("load cases: %w", err)
	}

	cases := make([]RepairCase, 0, len(pages))
	for _, page := range pages {
		cases = append(cases, decodeCase(page))
	}
	return cases, nil
}

func decodeCase(page Page) RepairCase {
	return RepairCase{
		ID:           page.ID,
		Title:        page.Title(propCaseID),
		Category:     page.Text(propCategory),
		Symptoms:     page.TextList(propSymptoms),
		Solution:     page.Text(propSolution),
		CostEstimate: page.Text(propCostEstimate),
		Difficulty:   page.Text(propDifficulty),
		Tools:        page.TextList(propTools),
		Parts:        page.TextList(propParts),
	}
}
