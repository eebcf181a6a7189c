package notion

import (
	"context"
	"fmt"
)

// Parts and tools database columns.
const (
	propPartName = "Part Name"
	propPrice    = "Price"
	propSupplier = "Supplier"
)

// Item is one part or tool from the shop's inventory database.
type Item struct {
	ID       string
	Name     string
	Category string
	Price    string
	Supplier string
}

// LoadItems queries the parts and tools database.
func (c *Client) LoadItems(ctx context.Context, databaseID string) ([]Item, error) {
	pages, err := c.QueryDatabase(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	items := make([]Item, 0, len(pages))
	for _, page := range pages {
		items = append(items, decodeItem(page))
	}
	return items, nil
}

func decodeItem(page Page) Item {
	return Item{
		ID:       page.ID,
		Name:     page.Title(propPartName),
		Category: page.Text(propCategory),
		Price:    page.NumberText(propPrice),
		Supplier: page.Text(propSupplier),
	}
}
