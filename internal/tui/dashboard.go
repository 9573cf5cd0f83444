package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neevamind/mindcli/internal/session"
)

// dashboardCard is one navigable card on the dashboard.
type dashboardCard struct {
	title    string
	subtitle string
	key      string
	target   pageID
}

var dashboardCards = []dashboardCard{
	{"Write Diary", "Capture today's thoughts and mood", "d", pageDiary},
	{"View Insights", "AI observations from your entries", "i", pageInsights},
	{"Weekly Report", "Mood and memory trends for the week", "w", pageWeeklyReport},
}

// dashboardModel is the landing page after login: welcome text from the
// session plus cards leading to the inner pages.
type dashboardModel struct {
	sessions *session.Store
	width    int
	height   int

	cursor int
}

func newDashboardModel(sessions *session.Store) dashboardModel {
	return dashboardModel{sessions: sessions}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d *dashboardModel) moveCursor(delta int) {
	d.cursor += delta
	if d.cursor < 0 {
		d.cursor = 0
	}
	if d.cursor > len(dashboardCards)-1 {
		d.cursor = len(dashboardCards) - 1
	}
}

func (d dashboardModel) selectedPage() pageID {
	return dashboardCards[d.cursor].target
}

func (d dashboardModel) welcome() string {
	if user := d.sessions.User(); user != nil {
		return fmt.Sprintf("Welcome back, %s!", user.Name)
	}
	return "Welcome!"
}

func (d dashboardModel) view() string {
	w := d.width - 4

	header := titleStyle.Render(d.welcome())

	var cards []string
	for i, c := range dashboardCards {
		style := panelStyle
		titleLine := normalItemStyle.Render(c.title)
		if i == d.cursor {
			style = activePanelStyle
			titleLine = selectedItemStyle.Render(c.title)
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("%s %s", titleLine, mutedStyle.Render("("+c.key+")")),
			mutedStyle.Render(c.subtitle),
		)
		cards = append(cards, style.Width(w).Render(body))
	}

	hint := mutedStyle.Render("  ↑/↓ + enter or d/i/w: open   x: log out")

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(header),
		strings.Join(cards, "\n"),
		hint,
	)
}
