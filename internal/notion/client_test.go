package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titleProp(text string) map[string]any {
	return map[string]any{
		"type":  "title",
		"title": []map[string]any{{"plain_text": text}},
	}
}

func textProp(parts ...string) map[string]any {
	texts := make([]map[string]any, 0, len(parts))
	for _, p := range parts {
		texts = append(texts, map[string]any{"plain_text": p})
	}
	return map[string]any{"type": "rich_text", "rich_text": texts}
}

func selectProp(name string) map[string]any {
	return map[string]any{"type": "select", "select": map[string]any{"name": name}}
}

func multiSelectProp(names ...string) map[string]any {
	opts := make([]map[string]any, 0, len(names))
	for _, n := range names {
		opts = append(opts, map[string]any{"name": n})
	}
	return map[string]any{"type": "multi_select", "multi_select": opts}
}

func relationProp(ids ...string) map[string]any {
	rels := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		rels = append(rels, map[string]any{"id": id})
	}
	return map[string]any{"type": "relation", "relation": rels}
}

func pageJSON(id string, props map[string]any) map[string]any {
	return map[string]any{"id": id, "properties": props}
}

func TestQueryDatabase_Pagination(t *testing.T) {
	var cursors []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/databases/db-1/query", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Equal(t, notionVersion, r.Header.Get("Notion-Version"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		cursor, _ := body["start_cursor"].(string)
		cursors = append(cursors, cursor)

		if cursor == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"results":     []any{pageJSON("p1", map[string]any{"Node ID": titleProp("start")})},
				"has_more":    true,
				"next_cursor": "c2",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results":  []any{pageJSON("p2", map[string]any{"Node ID": titleProp("end")})},
			"has_more": false,
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	pages, err := client.QueryDatabase(context.Background(), "db-1")
	require.NoError(t, err)

	require.Len(t, pages, 2)
	assert.Equal(t, "start", pages[0].Title("Node ID"))
	assert.Equal(t, "end", pages[1].Title("Node ID"))
	assert.Equal(t, []string{"", "c2"}, cursors)
}

func TestQueryDatabase_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"object":"error","status":404}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	_, err := client.QueryDatabase(context.Background(), "missing-db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestRetrievePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/pages/page-9", r.URL.Path)
		_ = json.NewEncoder(w).Encode(pageJSON("page-9", map[string]any{
			"Part Name": titleProp("water pump"),
			"Price":     map[string]any{"type": "number", "number": 89.5},
		}))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	page, err := client.RetrievePage(context.Background(), "page-9")
	require.NoError(t, err)

	assert.Equal(t, "water pump", page.Title("Part Name"))
	assert.Equal(t, "89.5", page.NumberText("Price"))
}

func TestLoadNodes_DecodesAndResolvesRelations(t *testing.T) {
	nodePage := pageJSON("page-1", map[string]any{
		"Node ID":       titleProp("fridge-start"),
		"Category":      selectProp("fridge"),
		"Symptoms":      multiSelectProp("not cooling", "clicking"),
		"Start Flag":    textProp("**YES**"),
		"Terminal Flag": textProp("no"),
		"Next Nodes":    textProp("fridge-power, fridge-gas"),
		"Question":      textProp("Is the fridge on 12V or gas?"),
		"Memo": textProp(`routing rules below
{"routing_config":{"next_nodes_map":[{"id":"fridge-power","keywords":["12v","battery"]}],"threshold":1}}`),
		"Related Cases": relationProp("case-7"),
		"Related Parts": relationProp("item-3"),
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/databases/db-nodes/query":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"results": []any{nodePage}, "has_more": false,
			})
		case "/pages/case-7":
			_ = json.NewEncoder(w).Encode(pageJSON("case-7", map[string]any{
				"Case ID":  titleProp("CASE-007"),
				"Category": textProp("fridge"),
				"Solution": textProp("Replace the thermocouple."),
			}))
		case "/pages/item-3":
			_ = json.NewEncoder(w).Encode(pageJSON("item-3", map[string]any{
				"Part Name": titleProp("thermocouple"),
				"Price":     textProp("~25 EUR"),
				"Supplier":  textProp("Dometic"),
			}))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	recs, err := client.LoadNodes(context.Background(), "db-nodes")
	require.NoError(t, err)
	require.Len(t, recs, 1)

	node := recs[0].Node
	assert.Equal(t, "fridge-start", node.ID)
	assert.Equal(t, "fridge", node.Category)
	assert.Equal(t, []string{"not cooling", "clicking"}, node.Symptoms)
	assert.True(t, node.Start)
	assert.False(t, node.Terminal)
	assert.Equal(t, []string{"fridge-power", "fridge-gas"}, node.FallbackNext)
	require.NotNil(t, node.Routing)
	require.Len(t, node.Routing.Candidates, 1)
	assert.Equal(t, "fridge-power", node.Routing.Candidates[0].TargetID)
	assert.Equal(t, 1.0, node.Routing.Threshold)

	require.Len(t, recs[0].RelatedCases, 1)
	assert.Equal(t, "CASE-007", recs[0].RelatedCases[0].Title)
	require.Len(t, recs[0].RelatedItems, 1)
	assert.Equal(t, "thermocouple", recs[0].RelatedItems[0].Name)
	assert.Equal(t, "~25 EUR", recs[0].RelatedItems[0].Price)
}

func TestLoadNodes_RelationFailureKeepsNode(t *testing.T) {
	nodePage := pageJSON("page-1", map[string]any{
		"Node ID":       titleProp("heater-start"),
		"Related Cases": relationProp("case-gone"),
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/databases/db-nodes/query" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"results": []any{nodePage}, "has_more": false,
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	recs, err := client.LoadNodes(context.Background(), "db-nodes")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "heater-start", recs[0].Node.ID)
	assert.Empty(t, recs[0].RelatedCases)
}

func TestLoadCases(t *testing.T) {
	casePage := pageJSON("case-1", map[string]any{
		"Case ID":        titleProp("CASE-001"),
		"Category":       textProp("water"),
		"Symptoms":       multiSelectProp("pump runs dry"),
		"Solution":       textProp("Bleed the line, check the inlet filter."),
		"Cost Estimate":  textProp("40-80 EUR"),
		"Difficulty":     selectProp("easy"),
		"Required Tools": multiSelectProp("screwdriver"),
		"Required Parts": multiSelectProp("inlet filter"),
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/databases/db-cases/query", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []any{casePage}, "has_more": false,
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	cases, err := client.LoadCases(context.Background(), "db-cases")
	require.NoError(t, err)
	require.Len(t, cases, 1)

	c := cases[0]
	assert.Equal(t, "CASE-001", c.Title)
	assert.Equal(t, "water", c.Category)
	assert.Equal(t, "easy", c.Difficulty)
	assert.Equal(t, []string{"screwdriver"}, c.Tools)
	assert.Equal(t, []string{"inlet filter"}, c.Parts)
}

func TestLoadItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []any{
				pageJSON("item-1", map[string]any{
					"Part Name": titleProp("12V fuse 15A"),
					"Category":  textProp("electrical"),
					"Price":     map[string]any{"type": "number", "number": float64(3)},
					"Supplier":  textProp("local"),
				}),
			},
			"has_more": false,
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	items, err := client.LoadItems(context.Background(), "db-items")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "12V fuse 15A", items[0].Name)
	assert.Equal(t, "3", items[0].Price)
}

func TestSource_CachesAcrossCalls(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []any{
				pageJSON(fmt.Sprintf("page-%d", hits), map[string]any{
					"Node ID": titleProp("start"),
				}),
			},
			"has_more": false,
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	cfg := Config{APIKey: "test-key", NodeDB: "db-nodes"}
	src := NewSource(client, cfg, newMemCache())

	first, err := src.Nodes(context.Background())
	require.NoError(t, err)
	second, err := src.Nodes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second read should come from cache")
	assert.Equal(t, first, second)
}

func TestSource_RefreshBypassesCache(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []any{}, "has_more": false,
		})
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	cfg := Config{APIKey: "test-key", NodeDB: "db-nodes"}
	src := NewSource(client, cfg, newMemCache())

	_, err := src.Nodes(context.Background())
	require.NoError(t, err)
	require.NoError(t, src.Refresh(context.Background()))

	assert.Equal(t, 2, hits)
}

func TestSource_UnconfiguredOptionalDatabases(t *testing.T) {
	src := NewSource(NewClient("k"), Config{APIKey: "k"}, newMemCache())

	cases, err := src.Cases(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cases)

	items, err := src.Items(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = src.Nodes(context.Background())
	require.Error(t, err)
}
