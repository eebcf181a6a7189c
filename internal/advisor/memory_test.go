package advisor

import (
	"fmt"
	"strings"
	"testing"
)

func TestMemoryWindowTrims(t *testing.T) {
	m := NewMemory()
	for i := 0; i < historyWindow+4; i++ {
		m.Add("user", fmt.Sprintf("message %d", i))
	}

	w := m.Window()
	if len(w) != historyWindow {
		t.Fatalf("window length = %d, want %d", len(w), historyWindow)
	}
	if w[0].Content != "message 4" {
		t.Errorf("oldest retained = %q, want %q", w[0].Content, "message 4")
	}
	if w[len(w)-1].Content != fmt.Sprintf("message %d", historyWindow+3) {
		t.Errorf("newest retained = %q", w[len(w)-1].Content)
	}
}

func TestMemoryTopics(t *testing.T) {
	m := NewMemory()
	m.Add("user", "my battery keeps dying overnight")
	m.Add("assistant", "let's check the charging circuit")
	m.Add("user", "also the water pump rattles")

	got := m.Topics()
	want := []string{"battery", "water"}
	if len(got) != len(want) {
		t.Fatalf("topics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMemoryTopicsOnlyRecentMessages(t *testing.T) {
	m := NewMemory()
	m.Add("user", "the gas burner won't light")
	for i := 0; i < topicWindow; i++ {
		m.Add("user", "thanks, anything else to check?")
	}

	for _, topic := range m.Topics() {
		if topic == "gas" {
			t.Error("gas topic should have aged out of the window")
		}
	}
}

func TestMemorySummary(t *testing.T) {
	m := NewMemory()
	if m.Summary() != "" {
		t.Errorf("empty memory should produce no summary, got %q", m.Summary())
	}

	m.Add("user", "the heater blows cold air")
	s := m.Summary()
	if !strings.Contains(s, "1 prior message") {
		t.Errorf("summary should count messages: %q", s)
	}
	if !strings.Contains(s, "heating") {
		t.Errorf("summary should name the topic: %q", s)
	}
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory()
	m.Add("user", "hello")
	m.Clear()
	if m.Len() != 0 {
		t.Errorf("len after clear = %d", m.Len())
	}
}
