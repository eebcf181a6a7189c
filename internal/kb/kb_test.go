package kb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDefinitions = `{
  "categories": {
    "Battery": {
      "id": "battery",
      "icon": "B",
      "keywords": {
        "primary": ["battery", "charging", "voltage"],
        "secondary": ["isolator", "12v"]
      },
      "repair_costs": [
        {"item": "AGM battery replacement", "price_range": "150-300 EUR"}
      ],
      "fallback_steps": [
        "Check terminal corrosion",
        "Measure resting voltage"
      ],
      "files": {"text_content": "battery.txt"}
    },
    "Water Pump": {
      "id": "water-pump",
      "keywords": {
        "primary": ["pump", "water pressure"],
        "secondary": []
      }
    },
    "Roof Leak": {
      "id": "roof-leak",
      "keywords": {
        "primary": ["leak", "sealant"],
        "secondary": ["skylight"]
      },
      "files": {"text_content": "missing.txt"}
    }
  }
}`

func writeTestKB(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, definitionsFile), []byte(testDefinitions), 0o644); err != nil {
		t.Fatalf("write definitions: %v", err)
	}
	detail := "A flat battery overnight usually means a parasitic drain.\nCheck the isolator relay first.\n"
	if err := os.WriteFile(filepath.Join(dir, "battery.txt"), []byte(detail), 0o644); err != nil {
		t.Fatalf("write detail file: %v", err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	k, err := Load(writeTestKB(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Names are sorted for deterministic output.
	want := []string{"Battery", "Roof Leak", "Water Pump"}
	got := k.Names()
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	cat, ok := k.Category("Battery")
	if !ok {
		t.Fatal("expected Battery category")
	}
	if len(cat.Primary) != 3 || cat.Primary[0] != "battery" {
		t.Errorf("primary keywords = %v", cat.Primary)
	}
	if !strings.Contains(cat.Body, "Typical repair costs") {
		t.Error("body should include the cost section")
	}
	if !strings.Contains(cat.Body, "parasitic drain") {
		t.Error("body should include the detail file content")
	}
}

func TestLoadToleratesMissingDetailFile(t *testing.T) {
	k, err := Load(writeTestKB(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cat, ok := k.Category("Roof Leak")
	if !ok {
		t.Fatal("expected Roof Leak category")
	}
	if strings.Contains(cat.Body, "## Details") {
		t.Error("missing detail file should not add a details section")
	}
}

func TestLoadFailsWithoutDefinitions(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for missing definitions file")
	}
}

func TestRelevant(t *testing.T) {
	k, err := Load(writeTestKB(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	excerpts := k.Relevant("my battery won't hold charge after charging all day")
	if len(excerpts) != 1 {
		t.Fatalf("got %d excerpts, want 1: %v", len(excerpts), excerpts)
	}
	if !strings.HasPrefix(excerpts[0], "[Battery]") {
		t.Errorf("excerpt should be labeled with the category: %q", excerpts[0])
	}
	if !strings.Contains(excerpts[0], "isolator relay") {
		t.Errorf("excerpt should carry keyword-matching lines: %q", excerpts[0])
	}

	if got := k.Relevant("awning fabric torn"); len(got) != 0 {
		t.Errorf("unrelated query matched: %v", got)
	}
}

func TestRelevantMatchingIsCaseInsensitive(t *testing.T) {
	k, err := Load(writeTestKB(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := k.Relevant("BATTERY dead"); len(got) != 1 {
		t.Errorf("case-insensitive match failed: %v", got)
	}
}

func TestSearch(t *testing.T) {
	k, err := Load(writeTestKB(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	t.Run("whole query match", func(t *testing.T) {
		results := k.Search("isolator relay")
		body, ok := results["Battery"]
		if !ok {
			t.Fatalf("expected Battery hit, got %v", results)
		}
		if !strings.Contains(body, "isolator relay") {
			t.Errorf("result should carry the matching line: %q", body)
		}
	})

	t.Run("word-level match", func(t *testing.T) {
		results := k.Search("relay broken")
		if _, ok := results["Battery"]; !ok {
			t.Fatalf("expected word-level Battery hit, got %v", results)
		}
	})

	t.Run("keyword-only category", func(t *testing.T) {
		results := k.Search("pump")
		if _, ok := results["Water Pump"]; !ok {
			t.Fatalf("expected Water Pump hit, got %v", results)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if results := k.Search("zzz"); len(results) != 0 {
			t.Errorf("expected no results, got %v", results)
		}
	})
}
