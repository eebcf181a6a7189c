package notion

import (
	"strconv"
	"strings"
)

// Property is the decoded form of one entry in a page's property bag.
// Only the property kinds the content databases use are modeled.
type Property struct {
	Type        string       `json:"type"`
	Title       []richText   `json:"title"`
	RichText    []richText   `json:"rich_text"`
	Select      *selectValue `json:"select"`
	MultiSelect []selectValue `json:"multi_select"`
	Number      *float64     `json:"number"`
	Checkbox    bool         `json:"checkbox"`
	Relation    []relation   `json:"relation"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

type selectValue struct {
	Name string `json:"name"`
}

type relation struct {
	ID string `json:"id"`
}

// startMarker is the literal value editors put in the flag columns.
// The columns are plain text in the content databases, not checkboxes.
const startMarker = "**YES**"

// Title returns the concatenated plain text of a title property.
func (p Page) Title(name string) string {
	prop, ok := p.Properties[name]
	if !ok || prop.Type != "title" {
		return ""
	}
	return joinPlainText(prop.Title)
}

// Text returns the plain text of a rich_text property, or the selected
// option name when the column is a select. Editors have used both
// column kinds interchangeably.
func (p Page) Text(name string) string {
	prop, ok := p.Properties[name]
	if !ok {
		return ""
	}
	switch prop.Type {
	case "rich_text", "text":
		return joinPlainText(prop.RichText)
	case "select":
		if prop.Select != nil {
			return prop.Select.Name
		}
	}
	return ""
}

// TextList returns a multi_select's option names, or the rich_text
// content as a single-element list.
func (p Page) TextList(name string) []string {
	prop, ok := p.Properties[name]
	if !ok {
		return nil
	}
	switch prop.Type {
	case "multi_select":
		out := make([]string, 0, len(prop.MultiSelect))
		for _, v := range prop.MultiSelect {
			out = append(out, v.Name)
		}
		return out
	case "rich_text", "text":
		if s := joinPlainText(prop.RichText); s != "" {
			return []string{s}
		}
	}
	return nil
}

// Flag reports whether a text-typed flag column holds the start marker.
// Checkbox columns are honored too for databases that migrated.
func (p Page) Flag(name string) bool {
	prop, ok := p.Properties[name]
	if !ok {
		return false
	}
	if prop.Type == "checkbox" {
		return prop.Checkbox
	}
	return p.Text(name) == startMarker
}

// NumberText returns a number property formatted as text, or the text
// content when the column is rich_text. Prices are free-form in the
// content databases ("~15 EUR", "ask supplier").
func (p Page) NumberText(name string) string {
	prop, ok := p.Properties[name]
	if !ok {
		return ""
	}
	if prop.Type == "number" && prop.Number != nil {
		return trimFloat(*prop.Number)
	}
	return p.Text(name)
}

// Relations returns the related page IDs of a relation property.
func (p Page) Relations(name string) []string {
	prop, ok := p.Properties[name]
	if !ok || prop.Type != "relation" {
		return nil
	}
	out := make([]string, 0, len(prop.Relation))
	for _, r := range prop.Relation {
		out = append(out, r.ID)
	}
	return out
}

// CommaList splits a text property on commas, trimming blanks.
func (p Page) CommaList(name string) []string {
	var out []string
	for _, part := range strings.Split(p.Text(name), ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func joinPlainText(texts []richText) string {
	var b strings.Builder
	for _, t := range texts {
		b.WriteString(t.PlainText)
	}
	return b.String()
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
