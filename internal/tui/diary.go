package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/neevamind/mindcli/internal/api"
)

const defaultClarity = 5

// diaryModel is the compose page: a draft form plus the user's recent
// entries. The draft only exists while composing; submit sends it and a
// successful save resets the form and kicks off insight generation.
type diaryModel struct {
	backend Backend
	width   int
	height  int

	form       *huh.Form
	submitting bool

	// Form values as pointers (survive value copies)
	text    *string
	mood    *string
	clarity *int

	entries []api.DiaryEntry
}

func newDiaryModel(backend Backend) diaryModel {
	text, mood := "", string(api.MoodHappy)
	clarity := defaultClarity
	return diaryModel{
		backend: backend,
		text:    &text,
		mood:    &mood,
		clarity: &clarity,
	}
}

func (d *diaryModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

// ensureForm builds the draft form on first entry to the page.
func (d *diaryModel) ensureForm() tea.Cmd {
	if d.form != nil {
		return nil
	}
	d.buildForm()
	return d.form.Init()
}

func (d *diaryModel) resetForm() {
	*d.text = ""
	*d.mood = string(api.MoodHappy)
	*d.clarity = defaultClarity
	d.form = nil
}

func (d *diaryModel) buildForm() {
	moodOptions := make([]huh.Option[string], len(api.MoodTags))
	for i, tag := range api.MoodTags {
		moodOptions[i] = huh.NewOption(string(tag), string(tag))
	}

	clarityOptions := make([]huh.Option[int], 10)
	for i := 0; i < 10; i++ {
		clarityOptions[i] = huh.NewOption(fmt.Sprintf("%d", i+1), i+1)
	}

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("How was your day?").Value(d.text),
			huh.NewSelect[string]().Title("Mood").Options(moodOptions...).Value(d.mood),
			huh.NewSelect[int]().Title("Memory clarity (1-10)").Options(clarityOptions...).Value(d.clarity),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (d diaryModel) update(msg tea.Msg) (diaryModel, tea.Cmd) {
	if d.form == nil || d.submitting {
		return d, nil
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.submitting = true
		return d, d.submit()
	}

	return d, cmd
}

// submit sends the draft as-is; the server is authoritative on validation.
func (d diaryModel) submit() tea.Cmd {
	backend := d.backend
	draft := api.EntryDraft{
		Text:          *d.text,
		MoodTag:       api.MoodTag(*d.mood),
		MemoryClarity: *d.clarity,
	}
	return func() tea.Msg {
		return entrySavedMsg{err: backend.SubmitEntry(context.Background(), draft)}
	}
}

func (d diaryModel) generateInsights() tea.Cmd {
	backend := d.backend
	return func() tea.Msg {
		return insightsGeneratedMsg{err: backend.GenerateInsights(context.Background())}
	}
}

func (d diaryModel) loadRecent(gen int) tea.Cmd {
	backend := d.backend
	return func() tea.Msg {
		entries, err := backend.ListEntries(context.Background())
		return entriesLoadedMsg{gen: gen, entries: entries, err: err}
	}
}

func (d diaryModel) apply(msg entriesLoadedMsg) diaryModel {
	if msg.err != nil {
		d.entries = nil
		return d
	}
	d.entries = msg.entries
	return d
}

func (d diaryModel) view() string {
	w := d.width - 4

	title := titleStyle.Render("Write Diary")
	var body string
	if d.submitting {
		body = mutedStyle.Render("Saving your entry…")
	} else if d.form != nil {
		body = d.form.View()
	}

	formPanel := activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body),
	)
	recentPanel := d.renderRecent(w)

	return lipgloss.JoinVertical(lipgloss.Left, formPanel, recentPanel)
}

func (d diaryModel) renderRecent(w int) string {
	title := titleStyle.Render("Recent Entries")
	if len(d.entries) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("No entries yet")),
		)
	}

	var rows []string
	rows = append(rows, title)
	shown := d.entries
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, e := range shown {
		text := e.Text
		if runes := []rune(text); len(runes) > 60 {
			text = string(runes[:57]) + "..."
		}
		mood := categoryStyle.Render(string(e.MoodTag))
		rows = append(rows, fmt.Sprintf("  %s  %s (clarity %d)", text, mood, e.MemoryClarity))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
