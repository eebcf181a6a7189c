// Package eventlog shows recent diagnostic traversals from the event
// store.
package eventlog

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hmaeda/campdoc/internal/router"
	"github.com/hmaeda/campdoc/internal/screen"
	"github.com/hmaeda/campdoc/internal/store"
	"github.com/hmaeda/campdoc/internal/ui/layout"
	"github.com/hmaeda/campdoc/internal/ui/theme"
)

type eventsLoadedMsg struct {
	Events []store.RoutingEventRecord
	Err    error
}

// EventLogScreen displays recent routing events.
type EventLogScreen struct {
	eventRepo store.EventRepo
	events    []store.RoutingEventRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*EventLogScreen)(nil)
var _ screen.KeyHintProvider = (*EventLogScreen)(nil)

// New creates a new EventLogScreen.
func New(eventRepo store.EventRepo) *EventLogScreen {
	return &EventLogScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *EventLogScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.eventRepo.RecentRouting(context.Background(), store.QueryOpts{Limit: 50})
		if err != nil {
			return eventsLoadedMsg{Err: err}
		}
		return eventsLoadedMsg{Events: events}
	}
}

func (s *EventLogScreen) Title() string {
	return "Event Log"
}

func (s *EventLogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *EventLogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *EventLogScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading events...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No diagnoses recorded yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.events {
		dateStr := ev.Timestamp.Format("Jan 02 15:04")

		status := "fallback"
		if ev.Resolved {
			status = "diagnosed"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d hops  %s",
			prefix, dateStr, status, ev.Hops, truncate(ev.Input, 40))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    outcome: %s", ev.Outcome)
			if len(ev.Path) > 0 {
				detail += "    path: " + strings.Join(ev.Path, " → ")
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
