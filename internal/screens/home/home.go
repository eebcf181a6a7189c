// Package home is the landing screen: content stats and the main menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hmaeda/campdoc/internal/advisor"
	"github.com/hmaeda/campdoc/internal/flow"
	"github.com/hmaeda/campdoc/internal/router"
	"github.com/hmaeda/campdoc/internal/screen"
	"github.com/hmaeda/campdoc/internal/screens/chat"
	"github.com/hmaeda/campdoc/internal/screens/eventlog"
	"github.com/hmaeda/campdoc/internal/screens/placeholder"
	"github.com/hmaeda/campdoc/internal/store"
	"github.com/hmaeda/campdoc/internal/ui/components"
	"github.com/hmaeda/campdoc/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu      components.Menu
	nodeCount int
	caseCount int
	itemCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(snapshot *flow.Snapshot, adv *advisor.Advisor, eventRepo store.EventRepo, relation advisor.Context) *HomeScreen {
	nodeCount := 0
	if snapshot != nil {
		nodeCount = len(snapshot.Nodes())
	}

	chatDeps := chat.Deps{
		Snapshot:  snapshot,
		Advisor:   adv,
		EventRepo: eventRepo,
		Relation:  relation,
	}

	items := []components.MenuItem{
		{Label: "DIAGNOSE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(chatDeps, chat.ModeDiagnose)}
			}
		}},
		{Label: "ASK THE MECHANIC", Action: func() tea.Cmd {
			if adv == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Ask the Mechanic",
						"No LLM provider is configured.\n\nSet an API key, for example CAMPDOC_ANTHROPIC_API_KEY,\nand restart campdoc.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(chatDeps, chat.ModeConsult)}
			}
		}},
		{Label: "EVENT LOG", Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Event Log",
						"The event store is unavailable.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: eventlog.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		nodeCount: nodeCount,
		caseCount: len(relation.Cases),
		itemCount: len(relation.Items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("campdoc")
	subtitle := theme.Subtitle.Width(width).Render("campervan repair assistant")

	stats := fmt.Sprintf("%d diagnostic nodes   %d repair cases   %d parts",
		h.nodeCount, h.caseCount, h.itemCount)
	if h.nodeCount == 0 {
		stats = "no content loaded — run `campdoc sync`"
	}
	statsLine := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Center).
		Render(stats)

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())

	content := strings.Join([]string{"", title, subtitle, "", statsLine, "", menu}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
