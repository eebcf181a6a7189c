package flow

import "testing"

func TestBuildRegistry_Lookup(t *testing.T) {
	reg := BuildRegistry([]Node{
		{ID: "N1", Category: "battery"},
		{ID: "N2", Category: "plumbing"},
	})

	n, ok := reg.Lookup("N2")
	if !ok {
		t.Fatal("N2 not found")
	}
	if n.Category != "plumbing" {
		t.Errorf("category = %q, want plumbing", n.Category)
	}

	if _, ok := reg.Lookup("missing"); ok {
		t.Error("lookup of unknown id should fail")
	}
}

func TestBuildRegistry_DuplicateLastWins(t *testing.T) {
	reg := BuildRegistry([]Node{
		{ID: "N1", Category: "first"},
		{ID: "N1", Category: "second"},
		{ID: "N1", Category: "third"},
	})

	n, ok := reg.Lookup("N1")
	if !ok {
		t.Fatal("N1 not found")
	}
	if n.Category != "third" {
		t.Errorf("category = %q, want third (last record wins)", n.Category)
	}

	collisions := reg.Collisions()
	if len(collisions) != 2 {
		t.Fatalf("collisions = %v, want 2 entries", collisions)
	}
	for _, id := range collisions {
		if id != "N1" {
			t.Errorf("collision id = %q, want N1", id)
		}
	}
}

func TestBuildRegistry_EmptyIDNotIndexed(t *testing.T) {
	reg := BuildRegistry([]Node{{ID: ""}, {ID: "N1"}})
	if _, ok := reg.Lookup(""); ok {
		t.Error("empty id should not be indexed")
	}
	if reg.Len() != 2 {
		t.Errorf("len = %d, want 2 (unindexed nodes still counted)", reg.Len())
	}
}

func TestStartNodes_InputOrder(t *testing.T) {
	reg := BuildRegistry([]Node{
		{ID: "A"},
		{ID: "B", Start: true},
		{ID: "C", Start: true},
	})

	starts := reg.StartNodes()
	if len(starts) != 2 {
		t.Fatalf("starts = %d, want 2", len(starts))
	}
	if starts[0].ID != "B" || starts[1].ID != "C" {
		t.Errorf("start order = [%s %s], want [B C]", starts[0].ID, starts[1].ID)
	}
}

func TestRegistry_ImmutableViews(t *testing.T) {
	reg := BuildRegistry([]Node{{ID: "N1", Start: true}})

	starts := reg.StartNodes()
	starts[0].ID = "mutated"

	fresh := reg.StartNodes()
	if fresh[0].ID != "N1" {
		t.Error("StartNodes must return a copy, not the internal slice")
	}
}
