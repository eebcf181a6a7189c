package notion

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hmaeda/campdoc/internal/flow"
)

// Diagnostic flow database columns.
const (
	propNodeID       = "Node ID"
	propCategory     = "Category"
	propSymptoms     = "Symptoms"
	propStartFlag    = "Start Flag"
	propTerminalFlag = "Terminal Flag"
	propNextNodes    = "Next Nodes"
	propQuestion     = "Question"
	propDiagnosis    = "Diagnosis"
	propRepairSteps  = "Repair Steps"
	propCautions     = "Cautions"
	propMemo         = "Memo"
	propRelCases     = "Related Cases"
	propRelParts     = "Related Parts"
)

// NodeRecord is one ingested diagnostic node together with the repair
// cases and parts its page links to. The engine only consumes the Node;
// the relations feed the consultation prompt.
type NodeRecord struct {
	Node         flow.Node
	RelatedCases []RepairCase
	RelatedItems []Item
}

// Nodes extracts the engine-facing nodes from a record set.
func Nodes(recs []NodeRecord) []flow.Node {
	out := make([]flow.Node, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Node)
	}
	return out
}

// LoadNodes queries the diagnostic flow database and decodes every page
// into a NodeRecord, resolving case and part relations page by page.
// Relation fetch failures skip the relation and keep the node.
func (c *Client) LoadNodes(ctx context.Context, databaseID string) ([]NodeRecord, error) {
	pages, err := c.QueryDatabase(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("load nodes: %w", err)
	}

	recs := make([]NodeRecord, 0, len(pages))
	for _, page := range pages {
		rec := NodeRecord{Node: decodeNode(page)}

		for _, id := range page.Relations(propRelCases) {
			related, err := c.RetrievePage(ctx, id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: related case %s: %v\n", id, err)
				continue
			}
			rec.RelatedCases = append(rec.RelatedCases, decodeCase(*related))
		}

		for _, id := range page.Relations(propRelParts) {
			related, err := c.RetrievePage(ctx, id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: related part %s: %v\n", id, err)
				continue
			}
			rec.RelatedItems = append(rec.RelatedItems, decodeItem(*related))
		}

		recs = append(recs, rec)
	}
	return recs, nil
}

// decodeNode maps a diagnostic flow page onto a flow.Node.
func decodeNode(page Page) flow.Node {
	node := flow.Node{
		ID:           page.Title(propNodeID),
		Category:     page.Text(propCategory),
		Symptoms:     page.TextList(propSymptoms),
		Start:        page.Flag(propStartFlag),
		Terminal:     page.Flag(propTerminalFlag),
		FallbackNext: page.CommaList(propNextNodes),
		Question:     page.Text(propQuestion),
		Result:       page.Text(propDiagnosis),
		Steps:        page.Text(propRepairSteps),
		Cautions:     page.Text(propCautions),
	}

	memo := page.Text(propMemo)
	node.Routing = flow.ParseRoutingConfig(memo)
	if node.Routing == nil && strings.Contains(memo, "routing_config") {
		fmt.Fprintf(os.Stderr, "warning: node %s has an unparseable routing_config memo\n", node.ID)
	}

	return node
}
