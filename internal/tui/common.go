package tui

import (
	"time"

	"github.com/neevamind/mindcli/internal/api"
)

// pageID identifies one of the mutually exclusive top-level pages.
type pageID int

const (
	pageHome pageID = iota
	pageDashboard
	pageDiary
	pageInsights
	pageWeeklyReport
	pageCount
)

var pageNames = []string{"Home", "Dashboard", "Diary", "Insights", "Weekly Report"}

// modalID identifies an overlay independent of page state.
type modalID int

const (
	modalLogin modalID = iota
	modalSignup
	modalCount
)

// --- Messages ---

type sessionCheckedMsg struct {
	user *api.User
}

type authResultMsg struct {
	modal modalID
	user  *api.User
	err   error
}

type logoutResultMsg struct {
	err error
}

type entrySavedMsg struct {
	err error
}

type insightsGeneratedMsg struct {
	err error
}

type insightsLoadedMsg struct {
	gen      int
	insights []api.Insight
	err      error
}

type entriesLoadedMsg struct {
	gen     int
	entries []api.DiaryEntry
	err     error
}

type reportLoadedMsg struct {
	gen     int
	records []api.DailyRecord
	err     error
}

type toastMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time
