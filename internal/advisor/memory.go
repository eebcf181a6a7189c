// Package advisor runs free-form repair consultations: intent detection
// with canned shop responses for the requests that never need a model,
// and LLM-backed answers grounded in the ingested content and the
// knowledge base for everything else.
package advisor

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// historyWindow is how many recent messages the consultation keeps.
	historyWindow = 10

	// topicWindow is how many recent messages topic analysis inspects.
	topicWindow = 5
)

// ChatMessage is one exchange in the consultation history.
type ChatMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// Memory holds the windowed conversation history for one consultation.
// Not safe for concurrent use.
type Memory struct {
	messages []ChatMessage
}

// NewMemory creates an empty conversation memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Add appends a message, trimming the history to the window.
func (m *Memory) Add(role, content string) {
	m.messages = append(m.messages, ChatMessage{Role: role, Content: content})
	if len(m.messages) > historyWindow {
		m.messages = m.messages[len(m.messages)-historyWindow:]
	}
}

// Window returns the retained messages, oldest first.
func (m *Memory) Window() []ChatMessage {
	out := make([]ChatMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

// Len returns how many messages are retained.
func (m *Memory) Len() int {
	return len(m.messages)
}

// Clear drops the history.
func (m *Memory) Clear() {
	m.messages = nil
}

// topicKeywords maps a vehicle system to the literal keywords that
// signal the customer is talking about it.
var topicKeywords = map[string][]string{
	"battery":    {"battery", "charging", "charge", "voltage", "12v"},
	"water":      {"water", "pump", "tank", "faucet", "leak", "leaking"},
	"heating":    {"heater", "heating", "furnace", "cold"},
	"gas":        {"gas", "propane", "lpg", "regulator", "burner"},
	"electrical": {"electrical", "fuse", "wiring", "inverter", "socket", "lights"},
	"engine":     {"engine", "starter", "alternator", "stall", "ignition"},
}

// Topics scans the most recent messages for topic keywords and returns
// the vehicle systems mentioned, sorted for stable output.
func (m *Memory) Topics() []string {
	recent := m.messages
	if len(recent) > topicWindow {
		recent = recent[len(recent)-topicWindow:]
	}

	hit := make(map[string]bool)
	for _, msg := range recent {
		text := strings.ToLower(msg.Content)
		for topic, kws := range topicKeywords {
			for _, kw := range kws {
				if strings.Contains(text, kw) {
					hit[topic] = true
					break
				}
			}
		}
	}

	topics := make([]string, 0, len(hit))
	for t := range hit {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// Summary describes the conversation so far in one or two lines for the
// consultation prompt. Empty when there is no history.
func (m *Memory) Summary() string {
	if len(m.messages) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "The conversation has %d prior messages.", len(m.messages))
	if topics := m.Topics(); len(topics) > 0 {
		fmt.Fprintf(&b, " Recent topics: %s.", strings.Join(topics, ", "))
	}
	return b.String()
}
