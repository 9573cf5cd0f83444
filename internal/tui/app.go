package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neevamind/mindcli/internal/api"
	"github.com/neevamind/mindcli/internal/session"
)

// Backend is the slice of the API gateway the data pages consume.
// *api.Client satisfies it.
type Backend interface {
	SubmitEntry(ctx context.Context, draft api.EntryDraft) error
	ListEntries(ctx context.Context) ([]api.DiaryEntry, error)
	GenerateInsights(ctx context.Context) error
	ListInsights(ctx context.Context) ([]api.Insight, error)
	WeeklyReport(ctx context.Context) ([]api.DailyRecord, error)
}

// App is the root Bubble Tea model: it owns the view registry, routes user
// actions to transitions and loads, and surfaces outcome toasts. All
// application state lives here, constructed once in main.
type App struct {
	backend  Backend
	sessions *session.Store
	logger   *log.Logger

	width  int
	height int

	views    viewRegistry
	showHelp bool

	// loadGen stamps each navigation-triggered load; results carrying a
	// stale generation are discarded instead of rendering into whatever
	// page happens to be current.
	loadGen int

	dashboard dashboardModel
	diary     diaryModel
	insights  insightsModel
	weekly    weeklyModel
	auth      authModel

	help        help.Model
	status      string
	statusError bool
	statusTicks int
}

func NewApp(backend Backend, sessions *session.Store, logger *log.Logger) App {
	h := help.New()
	h.ShowAll = false

	return App{
		backend:   backend,
		sessions:  sessions,
		logger:    logger,
		views:     newViewRegistry(),
		dashboard: newDashboardModel(sessions),
		diary:     newDiaryModel(backend),
		insights:  newInsightsModel(backend),
		weekly:    newWeeklyModel(backend),
		auth:      newAuthModel(sessions),
		help:      h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.checkSession(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// checkSession is the one boundary auth check, done at startup. Absence is
// expected and silent.
func (a App) checkSession() tea.Cmd {
	sessions := a.sessions
	return func() tea.Msg {
		return sessionCheckedMsg{user: sessions.Check(context.Background())}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.diary.setSize(a.width, contentHeight)
		a.insights.setSize(a.width, contentHeight)
		a.weekly.setSize(a.width, contentHeight)
		a.auth.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tickMsg:
		if a.statusTicks > 0 {
			a.statusTicks--
			if a.statusTicks == 0 {
				a.status = ""
			}
		}
		return a, tickCmd()

	case sessionCheckedMsg:
		if msg.user != nil {
			a.views.showPage(pageDashboard)
		}
		return a, nil

	case authResultMsg:
		return a.handleAuthResult(msg)

	case logoutResultMsg:
		if msg.err != nil {
			return a.withToast("Error logging out", true), nil
		}
		a.views.showPage(pageHome)
		return a.withToast("Logged out successfully", false), nil

	case entrySavedMsg:
		a.diary.submitting = false
		if msg.err != nil {
			return a.withToast(api.Reason(msg.err), true), nil
		}
		a.diary.resetForm()
		a.loadGen++
		// Insight generation is background enrichment, not the action the
		// user is waiting on. The user stays on the diary page, so the form
		// comes back fresh for the next entry.
		cmds := []tea.Cmd{
			a.diary.generateInsights(),
			a.diary.loadRecent(a.loadGen),
		}
		if cmd := a.diary.ensureForm(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a.withToast("Diary entry saved successfully!", false), tea.Batch(cmds...)

	case insightsGeneratedMsg:
		if msg.err != nil {
			a.logger.Printf("insight generation failed: %v", msg.err)
			return a, nil
		}
		return a.withToast("AI insights generated successfully!", false), nil

	case insightsLoadedMsg:
		if msg.gen != a.loadGen {
			return a, nil
		}
		a.insights = a.insights.apply(msg)
		if msg.err != nil {
			return a.withToast(api.Reason(msg.err), true), nil
		}
		return a, nil

	case entriesLoadedMsg:
		if msg.gen != a.loadGen {
			return a, nil
		}
		// A failed recent-entries load just leaves the list empty; the
		// compose form is the primary action on this page.
		a.diary = a.diary.apply(msg)
		return a, nil

	case reportLoadedMsg:
		if msg.gen != a.loadGen {
			return a, nil
		}
		a.weekly = a.weekly.apply(msg)
		if msg.err != nil {
			return a.withToast(api.Reason(msg.err), true), nil
		}
		return a, nil

	case toastMsg:
		return a.withToast(msg.text, msg.isError), nil
	}

	// Everything else (form internals, spinner frames) goes to whichever
	// surface is capturing input.
	return a.routeToActive(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even inside a form.
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if _, open := a.views.activeModal(); open {
		return a.updateAuth(msg)
	}

	if a.views.currentPage() == pageDiary {
		// The draft is transient: navigating away discards it.
		if msg.String() == "esc" {
			a.diary.resetForm()
			a.views.showPage(pageDashboard)
			return a, nil
		}
		var cmd tea.Cmd
		a.diary, cmd = a.diary.update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		return a, nil
	}

	switch a.views.currentPage() {
	case pageHome:
		return a.handleHomeKey(msg)
	case pageDashboard:
		return a.handleDashboardKey(msg)
	case pageInsights, pageWeeklyReport:
		if key.Matches(msg, keys.Back) {
			a.views.showPage(pageDashboard)
			return a, nil
		}
	}
	return a, nil
}

func (a App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Login):
		return a.openModal(modalLogin)
	case key.Matches(msg, keys.Signup), key.Matches(msg, keys.Enter):
		// "Get started" opens signup, same as the CTA buttons.
		return a.openModal(modalSignup)
	}
	return a, nil
}

func (a App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Diary):
		return a.navigate(pageDiary)
	case key.Matches(msg, keys.Insight):
		return a.navigate(pageInsights)
	case key.Matches(msg, keys.Weekly):
		return a.navigate(pageWeeklyReport)
	case key.Matches(msg, keys.Logout):
		return a, a.logout()
	case key.Matches(msg, keys.Up):
		a.dashboard.moveCursor(-1)
		return a, nil
	case key.Matches(msg, keys.Down):
		a.dashboard.moveCursor(1)
		return a, nil
	case key.Matches(msg, keys.Enter):
		return a.navigate(a.dashboard.selectedPage())
	}
	return a, nil
}

// navigate performs a page transition and returns the load the new page
// needs. Dashboard reachability implies a session, so interior navigation
// does not re-verify it.
func (a App) navigate(id pageID) (tea.Model, tea.Cmd) {
	a.views.showPage(id)
	switch id {
	case pageDiary:
		a.loadGen++
		cmds := []tea.Cmd{a.diary.loadRecent(a.loadGen)}
		if cmd := a.diary.ensureForm(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	case pageInsights:
		a.loadGen++
		a.insights = a.insights.loading()
		return a, a.insights.load(a.loadGen)
	case pageWeeklyReport:
		a.loadGen++
		a.weekly = a.weekly.loading()
		return a, a.weekly.load(a.loadGen)
	}
	return a, nil
}

func (a App) openModal(id modalID) (tea.Model, tea.Cmd) {
	a.views.showModal(id)
	cmd := a.auth.open(id)
	return a, cmd
}

func (a App) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" && !a.auth.submitting {
		id, _ := a.views.activeModal()
		a.views.hideModal(id)
		a.auth.reset()
		return a, nil
	}
	var cmd tea.Cmd
	a.auth, cmd = a.auth.update(msg)
	return a, cmd
}

func (a App) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	a.auth.submitting = false
	if msg.err != nil {
		// Modal stays open with the server's reason; session unchanged.
		return a.withToast(api.Reason(msg.err), true), a.auth.reopen()
	}
	a.views.hideModal(msg.modal)
	a.auth.reset()
	a.views.showPage(pageDashboard)
	if msg.modal == modalLogin {
		return a.withToast("Login successful!", false), nil
	}
	return a.withToast("Signup successful!", false), nil
}

func (a App) logout() tea.Cmd {
	sessions := a.sessions
	return func() tea.Msg {
		return logoutResultMsg{err: sessions.Logout(context.Background())}
	}
}

func (a App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if _, open := a.views.activeModal(); open {
		a.auth, cmd = a.auth.update(msg)
		return a, cmd
	}
	if a.views.currentPage() == pageDiary {
		a.diary, cmd = a.diary.update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) withToast(text string, isError bool) App {
	a.status = text
	a.statusError = isError
	a.statusTicks = 3
	return a
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.views.currentPage() {
	case pageHome:
		content = a.renderHome()
	case pageDashboard:
		content = a.dashboard.view()
	case pageDiary:
		content = a.diary.view()
	case pageInsights:
		content = a.insights.view()
	case pageWeeklyReport:
		content = a.weekly.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if id, open := a.views.activeModal(); open {
		content = a.auth.viewModal(id)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorTeal).Render("NeevaMind")

	if !a.sessions.Authenticated() {
		return headerStyle.Render(title)
	}

	var tabs []string
	for i := pageDashboard; i < pageCount; i++ {
		if i == a.views.currentPage() {
			tabs = append(tabs, activeTabStyle.Render(pageNames[i]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(pageNames[i]))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusError {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = successStyle.Render(" " + a.status)
		}
	}

	busy := ""
	if a.auth.submitting || a.diary.submitting {
		busy = mutedStyle.Render(" …")
	}

	left := footerStyle.Render(helpView)
	right := status + busy

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderHome() string {
	w := a.width - 4

	hero := heroStyle.Width(w - 6).Render("NeevaMind")
	tagline := lipgloss.NewStyle().Align(lipgloss.Center).Width(w - 6).
		Render("A journal that listens to your mind")
	hint := mutedStyle.Render("l: log in   s: get started   q: quit")

	content := lipgloss.JoinVertical(lipgloss.Center,
		hero,
		"",
		tagline,
		"",
		hint,
	)
	return panelStyle.Width(w).Render(content)
}
