package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neevamind/mindcli/internal/api"
)

const insightsEmptyState = "No insights available yet. Write some diary entries to get started!"

// insightsModel renders the server-generated insight collection, verbatim
// and in server order.
type insightsModel struct {
	backend Backend
	width   int
	height  int

	insights []api.Insight
	loaded   bool
}

func newInsightsModel(backend Backend) insightsModel {
	return insightsModel{backend: backend}
}

func (m *insightsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m insightsModel) loading() insightsModel {
	m.loaded = false
	m.insights = nil
	return m
}

func (m insightsModel) load(gen int) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		insights, err := backend.ListInsights(context.Background())
		return insightsLoadedMsg{gen: gen, insights: insights, err: err}
	}
}

// apply folds in a load result. A failure leaves the page loaded-empty;
// the toast is the App's job.
func (m insightsModel) apply(msg insightsLoadedMsg) insightsModel {
	m.loaded = true
	if msg.err != nil {
		m.insights = nil
		return m
	}
	m.insights = msg.insights
	return m
}

func (m insightsModel) view() string {
	w := m.width - 4

	title := titleStyle.Render("Your Insights")
	nav := mutedStyle.Render("  esc: back to dashboard")

	if !m.loaded {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", mutedStyle.Render("Loading insights…"), "", nav),
		)
	}

	if len(m.insights) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", mutedStyle.Render(insightsEmptyState), "", nav),
		)
	}

	var cards []string
	cards = append(cards, title)
	for _, in := range m.insights {
		card := lipgloss.JoinVertical(lipgloss.Left,
			highlightStyle.Render(in.Category.Title()),
			normalItemStyle.Render(in.Text),
			categoryStyle.Render(string(in.Category)),
		)
		cards = append(cards, panelStyle.Width(w-4).Render(card))
	}
	cards = append(cards, nav)

	return lipgloss.NewStyle().Width(w).Render(strings.Join(cards, "\n"))
}
