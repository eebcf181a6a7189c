package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hmaeda/campdoc/internal/kb"
	"github.com/hmaeda/campdoc/internal/llm"
	"github.com/hmaeda/campdoc/internal/notion"
)

// errorFallback is returned when the model call fails. The customer
// always gets an answer.
const errorFallback = "Sorry, I'm having trouble answering right now. Please call the workshop at " + shopPhone + " and we'll help you directly."

// Config holds consultation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Consultations run warmer
// than structured generation since the output is free text.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Context is the ingested content available to one consultation.
type Context struct {
	Nodes []notion.NodeRecord
	Cases []notion.RepairCase
	Items []notion.Item
}

// Advisor answers free-form repair questions.
type Advisor struct {
	provider  llm.Provider
	knowledge *kb.KB
	memory    *Memory
	cfg       Config
}

// New creates an Advisor. knowledge may be nil when no knowledge base
// directory is available.
func New(provider llm.Provider, knowledge *kb.KB, cfg Config) *Advisor {
	return &Advisor{
		provider:  provider,
		knowledge: knowledge,
		memory:    NewMemory(),
		cfg:       cfg,
	}
}

// Memory exposes the conversation history, mainly for display.
func (a *Advisor) Memory() *Memory {
	return a.memory
}

// Consult answers one customer question. Booking, urgency, and phone
// requests get the canned shop response without a model call; anything
// else goes to the provider with the relation context, knowledge base
// excerpts, and conversation summary attached. A provider failure
// degrades to a fixed apology rather than an error.
func (a *Advisor) Consult(ctx context.Context, query string, rel Context) (string, error) {
	intents := DetectIntents(query)

	if reply, ok := CannedResponse(intents); ok {
		a.memory.Add("user", query)
		a.memory.Add("assistant", reply)
		return reply, nil
	}

	var excerpts []string
	if a.knowledge != nil {
		excerpts = a.knowledge.Relevant(query)
	}

	userMsg := buildConsultMessage(query, intents, rel, excerpts, a.memory.Summary())

	messages := make([]llm.Message, 0, a.memory.Len()+1)
	for _, m := range a.memory.Window() {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMsg})

	req := llm.Request{
		System:      consultSystemPrompt,
		Messages:    messages,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	ctx = llm.WithPurpose(ctx, "consult")
	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: consultation request failed: %v\n", err)
		a.memory.Add("user", query)
		a.memory.Add("assistant", errorFallback)
		return errorFallback, nil
	}

	answer := strings.TrimSpace(string(resp.Content))
	a.memory.Add("user", query)
	a.memory.Add("assistant", answer)
	return answer, nil
}
