package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neevamind/mindcli/internal/api"
	"github.com/neevamind/mindcli/internal/report"
)

// weeklyModel renders the weekly report: summary cards, a grouped bar
// chart, and the per-day breakdown. The summary is recomputed on every
// load, never cached across loads.
type weeklyModel struct {
	backend Backend
	width   int
	height  int

	loaded  bool
	records []api.DailyRecord
	summary report.Summary
	bars    []report.DayBars

	chart barchart.Model
}

func newWeeklyModel(backend Backend) weeklyModel {
	return weeklyModel{
		backend: backend,
		chart:   barchart.New(60, 12),
	}
}

func (m *weeklyModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m weeklyModel) loading() weeklyModel {
	m.loaded = false
	m.records = nil
	m.summary = report.Summary{}
	m.bars = nil
	return m
}

func (m weeklyModel) load(gen int) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		records, err := backend.WeeklyReport(context.Background())
		return reportLoadedMsg{gen: gen, records: records, err: err}
	}
}

func (m weeklyModel) apply(msg reportLoadedMsg) weeklyModel {
	m.loaded = true
	if msg.err != nil {
		m.records = nil
		m.summary = report.Summary{}
		m.bars = nil
		return m
	}
	m.records = msg.records
	m.summary = report.Summarize(msg.records)
	m.bars = report.BuildChart(msg.records)
	m.buildChart()
	return m
}

func (m *weeklyModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if m.height > 30 {
		chartHeight = 16
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, b := range m.bars {
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", b.Day, b.EntryCount),
			Values: []barchart.BarValue{
				{Name: "Mood", Value: b.MoodHeight, Style: moodBarStyle},
				{Name: "Memory", Value: b.MemoryHeight, Style: memoryBarStyle},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m weeklyModel) view() string {
	w := m.width - 4

	title := titleStyle.Render("Weekly Report")
	nav := mutedStyle.Render("  esc: back to dashboard")

	if !m.loaded {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", mutedStyle.Render("Loading weekly report…"), "", nav),
		)
	}

	if !m.summary.HasData {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", mutedStyle.Render("No data for this week yet"), "", nav),
		)
	}

	summary := m.renderSummaryCards()
	legend := fmt.Sprintf("  %s Mood  %s Memory",
		moodBarStyle.Render("■"), memoryBarStyle.Render("■"))
	chartView := m.chart.View()
	breakdown := m.renderBreakdown(w)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", summary, "", chartView, legend, "", breakdown, "", nav,
		),
	)
}

func (m weeklyModel) renderSummaryCards() string {
	card := func(label, value string) string {
		return panelStyle.Padding(0, 2).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				highlightStyle.Render(value),
				mutedStyle.Render(label),
			),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Avg Mood", fmt.Sprintf("%.1f", m.summary.AvgMood)),
		card("Avg Memory", fmt.Sprintf("%.1f", m.summary.AvgMemory)),
		card("Total Entries", fmt.Sprintf("%d", m.summary.TotalEntries)),
	)
}

func (m weeklyModel) renderBreakdown(w int) string {
	rule := min(w-6, 40)
	if rule < 1 {
		rule = 1
	}
	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-10s %8s %8s %8s", "Day", "Mood", "Memory", "Entries")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", rule)))
	for _, b := range m.bars {
		rows = append(rows, fmt.Sprintf("  %-10s %8.1f %8.1f %8d",
			b.Day, b.MoodScore, b.MemoryScore, b.EntryCount))
	}
	return strings.Join(rows, "\n")
}
