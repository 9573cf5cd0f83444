package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/neevamind/mindcli/internal/api"
	"github.com/neevamind/mindcli/internal/session"
)

// authModel backs the login and signup modals. One form is live at a time;
// while a request is in flight the submitting flag swallows further input,
// so double-submission is impossible.
type authModel struct {
	sessions *session.Store
	width    int
	height   int

	modal      modalID
	form       *huh.Form
	submitting bool

	// Form values as pointers (survive value copies)
	name     *string
	email    *string
	password *string
	confirm  *string
}

func newAuthModel(sessions *session.Store) authModel {
	name, email, password, confirm := "", "", "", ""
	return authModel{
		sessions: sessions,
		name:     &name,
		email:    &email,
		password: &password,
		confirm:  &confirm,
	}
}

func (m *authModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// open prepares the form for the given modal and returns its init command.
func (m *authModel) open(id modalID) tea.Cmd {
	m.modal = id
	m.submitting = false
	m.buildForm()
	return m.form.Init()
}

// reopen rebuilds the form after a rejected submission, keeping the typed
// values so the user can correct them.
func (m *authModel) reopen() tea.Cmd {
	m.buildForm()
	return m.form.Init()
}

func (m *authModel) reset() {
	*m.name, *m.email, *m.password, *m.confirm = "", "", "", ""
	m.form = nil
	m.submitting = false
}

func (m *authModel) buildForm() {
	if m.modal == modalLogin {
		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Email").Value(m.email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(m.password),
			),
		).WithShowHelp(true).WithShowErrors(true)
		return
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(m.name),
			huh.NewInput().Title("Email").Value(m.email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(m.password),
			huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(m.confirm),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (m authModel) update(msg tea.Msg) (authModel, tea.Cmd) {
	if m.form == nil || m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitting = true
		return m, m.submit()
	}

	return m, cmd
}

func (m authModel) submit() tea.Cmd {
	sessions := m.sessions
	modal := m.modal
	name, email := *m.name, *m.email
	password, confirm := *m.password, *m.confirm
	return func() tea.Msg {
		var user *api.User
		var err error
		if modal == modalLogin {
			user, err = sessions.Login(context.Background(), email, password)
		} else {
			user, err = sessions.Signup(context.Background(), name, email, password, confirm)
		}
		return authResultMsg{modal: modal, user: user, err: err}
	}
}

func (m authModel) viewModal(id modalID) string {
	title := "Welcome back"
	if id == modalSignup {
		title = "Create your account"
	}

	body := ""
	if m.submitting {
		body = mutedStyle.Render("Submitting…")
	} else if m.form != nil {
		body = m.form.View()
	}

	w := min(m.width-8, 60)
	if w < 30 {
		w = 30
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		body,
		"",
		mutedStyle.Render("esc: cancel"),
	)
	box := modalStyle.Width(w).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
