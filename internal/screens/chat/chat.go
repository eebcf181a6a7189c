// Package chat is the conversational screen: guided diagnosis against
// the node graph, or a free-form consultation with the advisor. Tab
// switches between the two without losing the transcript.
package chat

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/hmaeda/campdoc/internal/advisor"
	"github.com/hmaeda/campdoc/internal/flow"
	"github.com/hmaeda/campdoc/internal/router"
	"github.com/hmaeda/campdoc/internal/screen"
	"github.com/hmaeda/campdoc/internal/store"
	"github.com/hmaeda/campdoc/internal/ui/components"
	"github.com/hmaeda/campdoc/internal/ui/layout"
	"github.com/hmaeda/campdoc/internal/ui/theme"
)

// Mode selects how user input is answered.
type Mode int

const (
	// ModeDiagnose routes input through the node graph.
	ModeDiagnose Mode = iota
	// ModeConsult sends input to the advisor.
	ModeConsult
)

// Deps are the services the chat screen talks to. Snapshot and Advisor
// may be nil when the corresponding backend is not configured.
type Deps struct {
	Snapshot  *flow.Snapshot
	Advisor   *advisor.Advisor
	EventRepo store.EventRepo
	Relation  advisor.Context
}

// entry is one transcript line pair.
type entry struct {
	fromUser bool
	text     string
}

// ChatScreen implements screen.Screen for both chat modes.
type ChatScreen struct {
	deps       Deps
	mode       Mode
	sessionID  string
	input      components.TextInput
	transcript []entry
	waiting    bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen starting in the given mode.
func New(deps Deps, mode Mode) *ChatScreen {
	return &ChatScreen{
		deps:      deps,
		mode:      mode,
		sessionID: uuid.NewString(),
		input:     components.NewTextInput("Describe the problem...", 400),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	if s.mode == ModeConsult {
		return "Ask the Mechanic"
	}
	return "Diagnose"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Tab", Description: "Switch mode"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case diagnoseDoneMsg:
		s.waiting = false
		s.transcript = append(s.transcript, entry{text: msg.Result.Text})
		return s, nil

	case consultDoneMsg:
		s.waiting = false
		s.transcript = append(s.transcript, entry{text: msg.Reply})
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			if !s.waiting {
				if s.mode == ModeDiagnose {
					s.mode = ModeConsult
				} else {
					s.mode = ModeDiagnose
				}
			}
			return s, nil
		case "enter":
			return s, s.submit()
		}
	}

	if !s.waiting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChatScreen) submit() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	if text == "" || s.waiting {
		return nil
	}
	s.transcript = append(s.transcript, entry{fromUser: true, text: text})
	s.input.Reset()

	if s.mode == ModeConsult {
		if s.deps.Advisor == nil {
			s.transcript = append(s.transcript, entry{
				text: "No LLM provider is configured. Set an API key (for example CAMPDOC_ANTHROPIC_API_KEY) to enable consultations.",
			})
			return nil
		}
		s.waiting = true
		return s.runConsult(text)
	}

	if s.deps.Snapshot == nil || len(s.deps.Snapshot.Nodes()) == 0 {
		s.transcript = append(s.transcript, entry{
			text: "No diagnostic content is loaded. Configure Notion access and run `campdoc sync`.",
		})
		return nil
	}
	s.waiting = true
	return s.runDiagnose(text)
}

// runDiagnose walks the graph off the UI thread and records the
// traversal as a routing event.
func (s *ChatScreen) runDiagnose(text string) tea.Cmd {
	snap := s.deps.Snapshot
	repo := s.deps.EventRepo
	sessionID := s.sessionID

	return func() tea.Msg {
		var outcome flow.Outcome
		eng := flow.NewEngine(flow.ObserverFunc(func(e flow.Event) {
			if e.Kind == flow.EventFinished {
				outcome = e.Outcome
			}
		}))
		res := eng.DiagnoseWith(text, snap)

		if repo != nil {
			err := repo.AppendRouting(context.Background(), store.RoutingEventData{
				SessionID: sessionID,
				Input:     text,
				Outcome:   string(outcome),
				Resolved:  res.Resolved,
				Path:      res.Path,
				Hops:      len(res.Path),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: record routing event: %v\n", err)
			}
		}

		return diagnoseDoneMsg{Result: res, Outcome: outcome}
	}
}

func (s *ChatScreen) runConsult(text string) tea.Cmd {
	adv := s.deps.Advisor
	rel := s.deps.Relation
	return func() tea.Msg {
		reply, err := adv.Consult(context.Background(), text, rel)
		if err != nil {
			reply = fmt.Sprintf("Consultation failed: %v", err)
		}
		return consultDoneMsg{Reply: reply}
	}
}

func (s *ChatScreen) View(width, height int) string {
	bodyWidth := width - 4
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	userStyle := lipgloss.NewStyle().Foreground(theme.Accent).Width(bodyWidth)
	replyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth)

	var b strings.Builder
	if len(s.transcript) == 0 {
		hint := "Describe what the camper is doing and press Enter."
		if s.mode == ModeConsult {
			hint = "Ask the mechanic anything about your camper."
		}
		b.WriteString(theme.Hint.Render("  " + hint))
		b.WriteString("\n")
	}
	for _, e := range s.transcript {
		if e.fromUser {
			b.WriteString(userStyle.Render("you> " + e.text))
		} else {
			b.WriteString(replyStyle.Render(e.text))
		}
		b.WriteString("\n\n")
	}
	if s.waiting {
		b.WriteString(theme.Hint.Render("  thinking..."))
		b.WriteString("\n")
	}

	// Keep the tail of the transcript; the input line stays pinned.
	inputHeight := 2
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	maxLines := height - inputHeight
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	transcript := strings.Join(lines, "\n")
	pad := maxLines - len(lines)
	if pad > 0 {
		transcript += strings.Repeat("\n", pad)
	}

	inputLine := lipgloss.NewStyle().
		Width(bodyWidth).
		Render(s.input.View())

	return transcript + "\n" + inputLine
}
