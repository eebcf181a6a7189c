package advisor

import (
	"fmt"
	"strings"

	"github.com/hmaeda/campdoc/internal/notion"
)

// Caps on how much ingested content one prompt carries.
const (
	maxContextNodes   = 5
	maxRelatedPerNode = 3
	maxContextCases   = 5
	maxContextItems   = 5
)

const consultSystemPrompt = `You are a friendly, experienced mechanic at a campervan repair shop, chatting with a customer about their vehicle.

Guidelines:
- Be warm and conversational, not formal. Two to four short paragraphs at most.
- Ground your answer in the reference information when it applies. Do not invent prices or part numbers.
- If the problem sounds unsafe or beyond a DIY fix, say so and suggest bringing the camper in or calling the shop.
- If you are not sure, say what you would check first rather than guessing.`

// buildConsultMessage assembles the user message: the question, what
// the customer has mentioned so far, and the reference material pulled
// for this query.
func buildConsultMessage(query string, intents []Intent, rel Context, excerpts []string, summary string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Customer question: %s\n", query))

	labels := make([]string, 0, len(intents))
	for _, it := range intents {
		labels = append(labels, string(it))
	}
	b.WriteString(fmt.Sprintf("Detected intents: %s\n", strings.Join(labels, ", ")))

	if summary != "" {
		b.WriteString(fmt.Sprintf("\nConversation so far:\n%s\n", summary))
	}

	if ctx := renderRelationContext(rel); ctx != "" {
		b.WriteString("\nReference information from the shop's records:\n")
		b.WriteString(ctx)
	}

	if len(excerpts) > 0 {
		b.WriteString("\nKnowledge base excerpts:\n")
		for _, e := range excerpts {
			b.WriteString(e)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nAnswer the customer's question using the reference information where it helps.")
	return b.String()
}

// renderRelationContext flattens the ingested records into prompt text,
// capped so one consultation never ships the whole database.
func renderRelationContext(rel Context) string {
	var b strings.Builder

	if len(rel.Nodes) > 0 {
		b.WriteString("Diagnostic notes:\n")
		for i, rec := range rel.Nodes {
			if i == maxContextNodes {
				break
			}
			writeNode(&b, rec)
		}
	}

	if len(rel.Cases) > 0 {
		b.WriteString("Past repair cases:\n")
		for i, rc := range rel.Cases {
			if i == maxContextCases {
				break
			}
			writeCase(&b, rc)
		}
	}

	if len(rel.Items) > 0 {
		b.WriteString("Parts and tools:\n")
		for i, it := range rel.Items {
			if i == maxContextItems {
				break
			}
			writeItem(&b, it)
		}
	}

	return b.String()
}

func writeNode(b *strings.Builder, rec notion.NodeRecord) {
	n := rec.Node
	fmt.Fprintf(b, "- [%s] %s", n.Category, n.ID)
	if len(n.Symptoms) > 0 {
		fmt.Fprintf(b, " (symptoms: %s)", strings.Join(n.Symptoms, ", "))
	}
	b.WriteString("\n")
	if n.Result != "" {
		fmt.Fprintf(b, "  Diagnosis: %s\n", n.Result)
	}
	if n.Steps != "" {
		fmt.Fprintf(b, "  Repair steps: %s\n", n.Steps)
	}
	if n.Cautions != "" {
		fmt.Fprintf(b, "  Cautions: %s\n", n.Cautions)
	}
	for i, rc := range rec.RelatedCases {
		if i == maxRelatedPerNode {
			break
		}
		fmt.Fprintf(b, "  Related case: %s (%s)\n", rc.Title, rc.Solution)
	}
	for i, it := range rec.RelatedItems {
		if i == maxRelatedPerNode {
			break
		}
		fmt.Fprintf(b, "  Related part: %s", it.Name)
		if it.Price != "" {
			fmt.Fprintf(b, " (%s)", it.Price)
		}
		b.WriteString("\n")
	}
}

func writeCase(b *strings.Builder, rc notion.RepairCase) {
	fmt.Fprintf(b, "- %s [%s]", rc.Title, rc.Category)
	if len(rc.Symptoms) > 0 {
		fmt.Fprintf(b, " symptoms: %s.", strings.Join(rc.Symptoms, ", "))
	}
	if rc.Solution != "" {
		fmt.Fprintf(b, " Solution: %s.", rc.Solution)
	}
	if rc.CostEstimate != "" {
		fmt.Fprintf(b, " Cost: %s.", rc.CostEstimate)
	}
	if rc.Difficulty != "" {
		fmt.Fprintf(b, " Difficulty: %s.", rc.Difficulty)
	}
	b.WriteString("\n")
}

func writeItem(b *strings.Builder, it notion.Item) {
	fmt.Fprintf(b, "- %s [%s]", it.Name, it.Category)
	if it.Price != "" {
		fmt.Fprintf(b, " price: %s", it.Price)
	}
	if it.Supplier != "" {
		fmt.Fprintf(b, " from %s", it.Supplier)
	}
	b.WriteString("\n")
}
