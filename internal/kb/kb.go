// Package kb loads the shop's category knowledge base: a JSON file of
// category definitions plus optional per-category text files. Matching
// is literal keyword containment; relevance ranking and semantic search
// are out of scope.
package kb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	definitionsFile = "category_definitions.json"

	// excerptLines caps how many matching lines an excerpt carries.
	excerptLines = 10

	// previewBytes caps whole-content previews for category-name matches.
	previewBytes = 500
)

// CostEntry is one line of a category's repair cost guidance.
type CostEntry struct {
	Item       string `json:"item"`
	PriceRange string `json:"price_range"`
}

// Category is one subject area of the knowledge base.
type Category struct {
	Name          string
	ID            string
	Icon          string
	Primary       []string // main keywords, checked against queries
	Secondary     []string
	RepairCosts   []CostEntry
	FallbackSteps []string

	// Body is the rendered text served to the consultation prompt:
	// keywords, costs, steps, and the category's detail file if any.
	Body string
}

// Keywords returns the primary and secondary keywords combined.
func (c Category) Keywords() []string {
	out := make([]string, 0, len(c.Primary)+len(c.Secondary))
	out = append(out, c.Primary...)
	return append(out, c.Secondary...)
}

// KB is the loaded knowledge base.
type KB struct {
	categories []Category
	byName     map[string]int
}

// definitions is the on-disk shape of category_definitions.json.
type definitions struct {
	Categories map[string]struct {
		ID       string `json:"id"`
		Icon     string `json:"icon"`
		Keywords struct {
			Primary   []string `json:"primary"`
			Secondary []string `json:"secondary"`
		} `json:"keywords"`
		RepairCosts   []CostEntry `json:"repair_costs"`
		FallbackSteps []string    `json:"fallback_steps"`
		Files         struct {
			TextContent string `json:"text_content"`
		} `json:"files"`
	} `json:"categories"`
}

// DefaultDir resolves the knowledge base directory: CAMPDOC_KB_DIR if
// set, otherwise "kb" relative to the working directory.
func DefaultDir() string {
	if d := os.Getenv("CAMPDOC_KB_DIR"); d != "" {
		return d
	}
	return "kb"
}

// Load reads the knowledge base from dir. Missing detail files are
// tolerated; a missing definitions file is not.
func Load(dir string) (*KB, error) {
	raw, err := os.ReadFile(filepath.Join(dir, definitionsFile))
	if err != nil {
		return nil, fmt.Errorf("read category definitions: %w", err)
	}

	var defs definitions
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("parse category definitions: %w", err)
	}

	names := make([]string, 0, len(defs.Categories))
	for name := range defs.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	k := &KB{byName: make(map[string]int, len(names))}
	for _, name := range names {
		def := defs.Categories[name]
		cat := Category{
			Name:          name,
			ID:            def.ID,
			Icon:          def.Icon,
			Primary:       def.Keywords.Primary,
			Secondary:     def.Keywords.Secondary,
			RepairCosts:   def.RepairCosts,
			FallbackSteps: def.FallbackSteps,
		}

		var detail string
		if def.Files.TextContent != "" {
			data, err := os.ReadFile(filepath.Join(dir, def.Files.TextContent))
			if err == nil {
				detail = string(data)
			} else {
				fmt.Fprintf(os.Stderr, "warning: category %s: %v\n", name, err)
			}
		}
		cat.Body = renderBody(cat, detail)

		k.byName[name] = len(k.categories)
		k.categories = append(k.categories, cat)
	}

	return k, nil
}

// renderBody assembles the category text in a stable layout.
func renderBody(c Category, detail string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", c.Name)
	if len(c.Primary) > 0 {
		fmt.Fprintf(&b, "Primary keywords: %s\n", strings.Join(c.Primary, ", "))
	}
	if len(c.Secondary) > 0 {
		fmt.Fprintf(&b, "Related keywords: %s\n", strings.Join(c.Secondary, ", "))
	}
	if len(c.RepairCosts) > 0 {
		b.WriteString("\n## Typical repair costs\n")
		for _, cost := range c.RepairCosts {
			fmt.Fprintf(&b, "- %s: %s\n", cost.Item, cost.PriceRange)
		}
	}
	if len(c.FallbackSteps) > 0 {
		b.WriteString("\n## Basic repair steps\n")
		for i, step := range c.FallbackSteps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}
	if detail != "" {
		b.WriteString("\n## Details\n")
		b.WriteString(detail)
	}
	return b.String()
}

// Names returns the category names in load order.
func (k *KB) Names() []string {
	out := make([]string, 0, len(k.categories))
	for _, c := range k.categories {
		out = append(out, c.Name)
	}
	return out
}

// Category returns a category by name.
func (k *KB) Category(name string) (Category, bool) {
	i, ok := k.byName[name]
	if !ok {
		return Category{}, false
	}
	return k.categories[i], true
}

// Relevant returns excerpts from categories whose keywords appear in
// the query. Each excerpt holds the body lines that mention one of the
// category's keywords, capped.
func (k *KB) Relevant(query string) []string {
	q := strings.ToLower(query)

	var out []string
	for _, c := range k.categories {
		if !anyKeywordIn(q, c.Keywords()) {
			continue
		}

		var lines []string
		for _, line := range strings.Split(c.Body, "\n") {
			if lineMatchesAny(line, c.Keywords()) {
				lines = append(lines, line)
				if len(lines) == excerptLines {
					break
				}
			}
		}
		if len(lines) > 0 {
			out = append(out, fmt.Sprintf("[%s]\n%s", c.Name, strings.Join(lines, "\n")))
		}
	}
	return out
}

// Search scans every category body for the query. A whole-query hit
// returns the matching lines; failing that, individual query words are
// tried; failing that, a query word in the category name returns a
// body preview.
func (k *KB) Search(query string) map[string]string {
	q := strings.ToLower(query)
	words := strings.Fields(q)

	results := make(map[string]string)
	for _, c := range k.categories {
		body := strings.ToLower(c.Body)

		if strings.Contains(body, q) {
			if lines := linesContaining(c.Body, []string{q}); len(lines) > 0 {
				results[c.Name] = strings.Join(lines, "\n")
			}
			continue
		}

		var matched []string
		for _, w := range words {
			if strings.Contains(body, w) {
				matched = append(matched, w)
			}
		}
		if len(matched) > 0 {
			if lines := linesContaining(c.Body, matched); len(lines) > 0 {
				results[c.Name] = strings.Join(lines, "\n")
			}
			continue
		}

		name := strings.ToLower(c.Name)
		for _, w := range words {
			if strings.Contains(name, w) {
				results[c.Name] = preview(c.Body)
				break
			}
		}
	}
	return results
}

func anyKeywordIn(loweredQuery string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(loweredQuery, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func lineMatchesAny(line string, keywords []string) bool {
	l := strings.ToLower(line)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(l, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func linesContaining(body string, needles []string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		l := strings.ToLower(line)
		for _, n := range needles {
			if strings.Contains(l, n) {
				out = append(out, line)
				break
			}
		}
		if len(out) == excerptLines {
			break
		}
	}
	return out
}

func preview(body string) string {
	if len(body) <= previewBytes {
		return body
	}
	return body[:previewBytes] + "..."
}
