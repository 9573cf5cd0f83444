package tui

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neevamind/mindcli/internal/api"
	"github.com/neevamind/mindcli/internal/session"
)

type fakeGateway struct {
	user      *api.User
	loginErr  error
	logoutErr error
}

func (f *fakeGateway) CheckAuth(ctx context.Context) (*api.User, error) {
	if f.user == nil {
		return nil, api.ErrUnauthenticated
	}
	return f.user, nil
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (*api.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeGateway) Signup(ctx context.Context, name, email, password string) (*api.User, error) {
	return f.user, nil
}

func (f *fakeGateway) Logout(ctx context.Context) error { return f.logoutErr }

type fakeBackend struct {
	insights   []api.Insight
	records    []api.DailyRecord
	entries    []api.DiaryEntry
	submitErr  error
	listErr    error
	genErr     error
	genCalls   int
	submitHits int
}

func (f *fakeBackend) SubmitEntry(ctx context.Context, draft api.EntryDraft) error {
	f.submitHits++
	return f.submitErr
}

func (f *fakeBackend) ListEntries(ctx context.Context) ([]api.DiaryEntry, error) {
	return f.entries, nil
}

func (f *fakeBackend) GenerateInsights(ctx context.Context) error {
	f.genCalls++
	return f.genErr
}

func (f *fakeBackend) ListInsights(ctx context.Context) ([]api.Insight, error) {
	return f.insights, f.listErr
}

func (f *fakeBackend) WeeklyReport(ctx context.Context) ([]api.DailyRecord, error) {
	return f.records, f.listErr
}

func newTestApp(t *testing.T, gw *fakeGateway, backend *fakeBackend) App {
	t.Helper()
	if gw == nil {
		gw = &fakeGateway{}
	}
	if backend == nil {
		backend = &fakeBackend{}
	}
	app := NewApp(backend, session.New(gw), log.New(&bytes.Buffer{}, "", 0))
	app.width = 120
	app.height = 40
	return app
}

func update(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(msg)
	updated, ok := model.(App)
	if !ok {
		t.Fatal("Update should return an App")
	}
	return updated, cmd
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================
// View registry
// ============================================================

func TestRegistryStartsOnHomepage(t *testing.T) {
	v := newViewRegistry()
	if v.currentPage() != pageHome {
		t.Fatal("registry should start on the homepage")
	}
	if _, open := v.activeModal(); open {
		t.Fatal("no modal should be open initially")
	}
}

func TestRegistryShowPage(t *testing.T) {
	v := newViewRegistry()
	v.showPage(pageDashboard)
	if v.currentPage() != pageDashboard {
		t.Fatal("showPage should switch the active page")
	}
}

func TestRegistryUnknownPageIsNoOp(t *testing.T) {
	v := newViewRegistry()
	v.showPage(pageDashboard)
	v.showPage(pageID(99))
	v.showPage(pageID(-1))
	if v.currentPage() != pageDashboard {
		t.Fatal("unknown page ids must not change the active page")
	}
}

func TestRegistryAlwaysExactlyOnePage(t *testing.T) {
	v := newViewRegistry()
	sequence := []pageID{pageDashboard, pageDiary, pageID(42), pageInsights, pageWeeklyReport, pageHome}
	for _, id := range sequence {
		v.showPage(id)
		p := v.currentPage()
		if p < 0 || p >= pageCount {
			t.Fatalf("active page out of range after showPage(%d): %d", id, p)
		}
	}
}

func TestRegistryModalsIndependentOfPage(t *testing.T) {
	v := newViewRegistry()
	v.showModal(modalLogin)
	if !v.modalVisible(modalLogin) {
		t.Fatal("login modal should be visible")
	}

	v.showPage(pageDashboard)
	if !v.modalVisible(modalLogin) {
		t.Fatal("page transitions must not affect modal state")
	}

	v.hideModal(modalLogin)
	if v.modalVisible(modalLogin) {
		t.Fatal("hideModal should close the modal")
	}
}

func TestRegistryActiveModal(t *testing.T) {
	v := newViewRegistry()
	if _, open := v.activeModal(); open {
		t.Fatal("no modal open yet")
	}
	v.showModal(modalSignup)
	id, open := v.activeModal()
	if !open || id != modalSignup {
		t.Fatalf("expected signup modal active, got %d (open=%v)", id, open)
	}
}

// ============================================================
// Session boundary
// ============================================================

func TestStartupUnauthenticatedStaysHome(t *testing.T) {
	app := newTestApp(t, nil, nil)

	cmd := app.checkSession()
	app, _ = update(t, app, cmd())

	if app.views.currentPage() != pageHome {
		t.Fatal("without a session the homepage stays active")
	}
}

func TestStartupWithSessionGoesToDashboard(t *testing.T) {
	gw := &fakeGateway{user: &api.User{ID: 1, Name: "Ana"}}
	app := newTestApp(t, gw, nil)

	cmd := app.checkSession()
	app, _ = update(t, app, cmd())

	if app.views.currentPage() != pageDashboard {
		t.Fatal("a valid session should land on the dashboard")
	}
	if !app.sessions.Authenticated() {
		t.Fatal("session store should be populated")
	}
}

// ============================================================
// Auth flow
// ============================================================

func TestLoginSuccessTransition(t *testing.T) {
	gw := &fakeGateway{user: &api.User{ID: 1, Name: "Ana"}}
	app := newTestApp(t, gw, nil)

	model, _ := app.openModal(modalLogin)
	app = model.(App)
	if _, open := app.views.activeModal(); !open {
		t.Fatal("login modal should be open")
	}

	// Simulate the gateway round trip the form submit would run.
	user, err := app.sessions.Login(context.Background(), "ana@example.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	app, _ = update(t, app, authResultMsg{modal: modalLogin, user: user})

	if app.views.currentPage() != pageDashboard {
		t.Fatal("successful login should land on the dashboard")
	}
	if _, open := app.views.activeModal(); open {
		t.Fatal("modal should be closed after login")
	}
	if app.status != "Login successful!" {
		t.Fatalf("unexpected toast %q", app.status)
	}
	if !app.sessions.Authenticated() {
		t.Fatal("session should be populated")
	}
}

func TestLoginRejectionKeepsModalOpen(t *testing.T) {
	gw := &fakeGateway{loginErr: &api.Error{Reason: "Invalid email or password"}}
	app := newTestApp(t, gw, nil)

	model, _ := app.openModal(modalLogin)
	app = model.(App)

	_, err := app.sessions.Login(context.Background(), "ana@example.com", "wrong")
	app, _ = update(t, app, authResultMsg{modal: modalLogin, err: err})

	if app.sessions.Authenticated() {
		t.Fatal("session must stay empty after a rejected login")
	}
	if app.views.currentPage() != pageHome {
		t.Fatal("page must not change on rejection")
	}
	if !app.views.modalVisible(modalLogin) {
		t.Fatal("login modal should stay open")
	}
	if app.status != "Invalid email or password" {
		t.Fatalf("toast should carry the server reason, got %q", app.status)
	}
}

func TestLogoutReturnsHome(t *testing.T) {
	gw := &fakeGateway{user: &api.User{ID: 1, Name: "Ana"}}
	app := newTestApp(t, gw, nil)
	app.sessions.Login(context.Background(), "ana@example.com", "pw")
	app.views.showPage(pageDashboard)

	cmd := app.logout()
	app, _ = update(t, app, cmd())

	if app.views.currentPage() != pageHome {
		t.Fatal("logout should land on the homepage")
	}
	if app.sessions.Authenticated() {
		t.Fatal("session should be cleared")
	}
	if app.status != "Logged out successfully" {
		t.Fatalf("unexpected toast %q", app.status)
	}
}

func TestLogoutFailureKeepsSession(t *testing.T) {
	gw := &fakeGateway{user: &api.User{ID: 1, Name: "Ana"}, logoutErr: errors.New("refused")}
	app := newTestApp(t, gw, nil)
	app.sessions.Login(context.Background(), "ana@example.com", "pw")
	app.views.showPage(pageDashboard)

	cmd := app.logout()
	app, _ = update(t, app, cmd())

	if app.views.currentPage() != pageDashboard {
		t.Fatal("failed logout should not navigate")
	}
	if !app.sessions.Authenticated() {
		t.Fatal("failed logout must keep the session")
	}
	if app.status != "Error logging out" {
		t.Fatalf("unexpected toast %q", app.status)
	}
}

// ============================================================
// Dashboard navigation
// ============================================================

func loggedInApp(t *testing.T, backend *fakeBackend) App {
	t.Helper()
	gw := &fakeGateway{user: &api.User{ID: 1, Name: "Ana"}}
	app := newTestApp(t, gw, backend)
	app.sessions.Login(context.Background(), "ana@example.com", "pw")
	app.views.showPage(pageDashboard)
	return app
}

func TestDashboardKeysNavigate(t *testing.T) {
	tests := []struct {
		key  rune
		want pageID
	}{
		{'d', pageDiary},
		{'i', pageInsights},
		{'w', pageWeeklyReport},
	}
	for _, tt := range tests {
		app := loggedInApp(t, nil)
		app, cmd := update(t, app, keyPress(tt.key))
		if app.views.currentPage() != tt.want {
			t.Fatalf("key %q: expected page %d, got %d", tt.key, tt.want, app.views.currentPage())
		}
		if cmd == nil {
			t.Fatalf("key %q: entering the page should dispatch a load", tt.key)
		}
	}
}

func TestDashboardCursorSelection(t *testing.T) {
	app := loggedInApp(t, nil)

	app.dashboard.moveCursor(1)
	app.dashboard.moveCursor(1)
	if app.dashboard.selectedPage() != pageWeeklyReport {
		t.Fatal("cursor should reach the weekly report card")
	}

	app.dashboard.moveCursor(1)
	if app.dashboard.selectedPage() != pageWeeklyReport {
		t.Fatal("cursor must clamp at the last card")
	}

	app.dashboard.moveCursor(-5)
	if app.dashboard.selectedPage() != pageDiary {
		t.Fatal("cursor must clamp at the first card")
	}
}

func TestEscReturnsToDashboard(t *testing.T) {
	app := loggedInApp(t, nil)
	app, _ = update(t, app, keyPress('i'))

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.views.currentPage() != pageDashboard {
		t.Fatal("esc should return to the dashboard")
	}
}

// ============================================================
// Insights page
// ============================================================

func TestInsightsLoadRendersServerOrder(t *testing.T) {
	backend := &fakeBackend{insights: []api.Insight{
		{Category: api.CategoryLanguage, Text: "rich vocabulary"},
		{Category: api.CategoryMood, Text: "calm overall"},
	}}
	app := loggedInApp(t, backend)

	app, cmd := update(t, app, keyPress('i'))
	app, _ = update(t, app, cmd())

	if !app.insights.loaded {
		t.Fatal("insights should be marked loaded")
	}
	view := app.insights.view()
	if !strings.Contains(view, "Language Usage") || !strings.Contains(view, "Mood Analysis") {
		t.Fatal("view should show category titles")
	}
	if strings.Index(view, "rich vocabulary") > strings.Index(view, "calm overall") {
		t.Fatal("server order must be preserved")
	}
}

func TestInsightsEmptyState(t *testing.T) {
	app := loggedInApp(t, &fakeBackend{})

	app, cmd := update(t, app, keyPress('i'))
	app, _ = update(t, app, cmd())

	view := app.insights.view()
	if !strings.Contains(view, insightsEmptyState) {
		t.Fatal("empty collection should render the configured empty-state message")
	}
}

func TestInsightsLoadFailureLeavesEmptyAndToasts(t *testing.T) {
	backend := &fakeBackend{listErr: &api.Error{Reason: "Failed to load insights"}}
	app := loggedInApp(t, backend)

	app, cmd := update(t, app, keyPress('i'))
	app, _ = update(t, app, cmd())

	if len(app.insights.insights) != 0 {
		t.Fatal("failed load leaves the page empty")
	}
	if app.status != "Failed to load insights" {
		t.Fatalf("unexpected toast %q", app.status)
	}
	if app.views.currentPage() != pageInsights {
		t.Fatal("failure does not navigate away")
	}
}

func TestStaleInsightsLoadIsDiscarded(t *testing.T) {
	backend := &fakeBackend{insights: []api.Insight{{Category: api.CategoryMood, Text: "x"}}}
	app := loggedInApp(t, backend)

	app, _ = update(t, app, keyPress('i'))
	staleGen := app.loadGen

	// Navigate away and back before the first load resolves.
	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	app, _ = update(t, app, keyPress('w'))

	app, _ = update(t, app, insightsLoadedMsg{gen: staleGen, insights: backend.insights})
	if app.insights.loaded {
		t.Fatal("a stale load result must be discarded")
	}
}

// ============================================================
// Weekly report page
// ============================================================

func TestWeeklyReportSummary(t *testing.T) {
	backend := &fakeBackend{records: []api.DailyRecord{
		{Day: "Mon", MoodScore: 8, MemoryScore: 6, EntryCount: 2},
		{Day: "Tue", MoodScore: 4, MemoryScore: 5, EntryCount: 1},
	}}
	app := loggedInApp(t, backend)

	app, cmd := update(t, app, keyPress('w'))
	app, _ = update(t, app, cmd())

	s := app.weekly.summary
	if !s.HasData {
		t.Fatal("summary should have data")
	}
	if s.TotalEntries != 3 {
		t.Fatalf("totalEntries = %d, want 3", s.TotalEntries)
	}
	if s.AvgMood != 6.0 || s.AvgMemory != 5.5 {
		t.Fatalf("avgMood=%v avgMemory=%v", s.AvgMood, s.AvgMemory)
	}
	if app.weekly.bars[0].MoodHeight != 120 {
		t.Fatalf("Monday mood bar height = %v, want 120", app.weekly.bars[0].MoodHeight)
	}
	if app.weekly.bars[1].MemoryHeight != 75 {
		t.Fatalf("Tuesday memory bar height = %v, want 75", app.weekly.bars[1].MemoryHeight)
	}

	view := app.weekly.view()
	if !strings.Contains(view, "6.0") || !strings.Contains(view, "5.5") {
		t.Fatal("summary cards should show one-decimal averages")
	}
}

func TestWeeklyReportNoData(t *testing.T) {
	app := loggedInApp(t, &fakeBackend{})

	app, cmd := update(t, app, keyPress('w'))
	app, _ = update(t, app, cmd())

	view := app.weekly.view()
	if !strings.Contains(view, "No data") {
		t.Fatal("empty report should render an explicit no-data state")
	}
	if strings.Contains(view, "NaN") {
		t.Fatal("no-data state must never show NaN")
	}
}

func TestWeeklyReportRendersAtAnyWidth(t *testing.T) {
	backend := &fakeBackend{records: []api.DailyRecord{
		{Day: "Mon", MoodScore: 8, MemoryScore: 6, EntryCount: 2},
	}}
	app := loggedInApp(t, backend)

	app, cmd := update(t, app, keyPress('w'))
	app, _ = update(t, app, cmd())

	// The submodel has not seen a WindowSizeMsg yet, so its width is zero.
	for _, width := range []int{0, 3, 9} {
		app.weekly.setSize(width, 20)
		if app.weekly.view() == "" {
			t.Fatalf("weekly view should render at width %d", width)
		}
	}
}

// ============================================================
// Diary flow
// ============================================================

func TestEntrySavedTriggersInsightGeneration(t *testing.T) {
	backend := &fakeBackend{}
	app := loggedInApp(t, backend)
	app, _ = update(t, app, keyPress('d'))
	app.diary.submitting = true

	app, cmd := update(t, app, entrySavedMsg{})

	if app.diary.submitting {
		t.Fatal("submitting flag should clear once the save resolves")
	}
	if app.status != "Diary entry saved successfully!" {
		t.Fatalf("unexpected toast %q", app.status)
	}
	if cmd == nil {
		t.Fatal("save should dispatch follow-up commands")
	}

	// The batch holds the fire-and-forget generation plus the reload.
	gen := app.diary.generateInsights()
	gen()
	if backend.genCalls != 1 {
		t.Fatal("insight generation should hit the backend")
	}
}

func TestEntrySavedKeepsFormUsable(t *testing.T) {
	app := loggedInApp(t, &fakeBackend{})
	app, _ = update(t, app, keyPress('d'))
	app.diary.submitting = true

	app, _ = update(t, app, entrySavedMsg{})

	// The user stays on the diary page, so a fresh form must be ready for
	// the next entry.
	if app.diary.form == nil {
		t.Fatal("diary form should be rebuilt after a successful save")
	}
	if *app.diary.text != "" {
		t.Fatalf("draft text = %q, want empty", *app.diary.text)
	}
}

func TestRecentEntriesTruncateOnRunes(t *testing.T) {
	app := loggedInApp(t, &fakeBackend{})
	app, _ = update(t, app, keyPress('d'))

	long := strings.Repeat("ğ", 80)
	app, _ = update(t, app, entriesLoadedMsg{gen: app.loadGen, entries: []api.DiaryEntry{
		{Text: long, MoodTag: api.MoodHappy, MemoryClarity: 5},
	}})

	view := app.diary.view()
	if !utf8.ValidString(view) {
		t.Fatal("truncation must not split a multi-byte rune")
	}
	if !strings.Contains(view, strings.Repeat("ğ", 57)+"...") {
		t.Fatal("long entries should be cut to 57 runes plus an ellipsis")
	}
}

func TestEntrySaveFailureSurfacesReason(t *testing.T) {
	app := loggedInApp(t, &fakeBackend{})
	app, _ = update(t, app, keyPress('d'))
	app.diary.submitting = true

	app, _ = update(t, app, entrySavedMsg{err: &api.Error{Reason: "Entry text is required"}})
	if app.status != "Entry text is required" {
		t.Fatalf("unexpected toast %q", app.status)
	}
	if app.diary.submitting {
		t.Fatal("submitting flag should clear on failure too")
	}
}

func TestInsightGenerationFailureIsLoggedNotSurfaced(t *testing.T) {
	var buf bytes.Buffer
	gw := &fakeGateway{user: &api.User{ID: 1, Name: "Ana"}}
	app := NewApp(&fakeBackend{}, session.New(gw), log.New(&buf, "", 0))
	app.width = 120
	app.height = 40

	app, _ = update(t, app, insightsGeneratedMsg{err: errors.New("model overloaded")})

	if app.status != "" {
		t.Fatalf("background failure must not toast, got %q", app.status)
	}
	if !strings.Contains(buf.String(), "model overloaded") {
		t.Fatal("background failure should be logged")
	}
}

func TestInsightGenerationSuccessToasts(t *testing.T) {
	app := loggedInApp(t, nil)
	app, _ = update(t, app, insightsGeneratedMsg{})
	if app.status != "AI insights generated successfully!" {
		t.Fatalf("unexpected toast %q", app.status)
	}
}

func TestDiarySubmitIgnoredWhileInFlight(t *testing.T) {
	app := loggedInApp(t, &fakeBackend{})
	app, _ = update(t, app, keyPress('d'))
	app.diary.submitting = true

	d, cmd := app.diary.update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("input while submitting must be swallowed")
	}
	if !d.submitting {
		t.Fatal("submitting flag must survive re-entrant input")
	}
}

func TestDiaryResetRestoresDefaults(t *testing.T) {
	backend := &fakeBackend{}
	d := newDiaryModel(backend)
	d.ensureForm()
	*d.text = "long day"
	*d.mood = string(api.MoodTired)
	*d.clarity = 9

	d.resetForm()
	if *d.text != "" || *d.mood != string(api.MoodHappy) || *d.clarity != defaultClarity {
		t.Fatal("reset should restore draft defaults")
	}
	if d.form != nil {
		t.Fatal("reset should drop the completed form")
	}
}

// ============================================================
// Toast lifecycle
// ============================================================

func TestToastExpiresAfterTicks(t *testing.T) {
	app := newTestApp(t, nil, nil)
	app = app.withToast("saved", false)

	for i := 0; i < 3; i++ {
		if app.status == "" {
			t.Fatalf("toast expired too early at tick %d", i)
		}
		app, _ = update(t, app, tickMsg{})
	}
	if app.status != "" {
		t.Fatal("toast should expire after its ticks run out")
	}
}

// ============================================================
// Rendering smoke tests
// ============================================================

func TestViewRendersEveryPage(t *testing.T) {
	app := loggedInApp(t, nil)
	for id := pageID(0); id < pageCount; id++ {
		app.views.showPage(id)
		if app.View() == "" {
			t.Fatalf("page %d rendered empty", id)
		}
	}
}

func TestViewBeforeSizing(t *testing.T) {
	gw := &fakeGateway{}
	app := NewApp(&fakeBackend{}, session.New(gw), log.New(&bytes.Buffer{}, "", 0))
	if app.View() != "Loading..." {
		t.Fatal("unsized app should render the loading placeholder")
	}
}

func TestHeaderShowsTabsOnlyWhenAuthenticated(t *testing.T) {
	app := newTestApp(t, nil, nil)
	header := app.renderHeader()
	if strings.Contains(header, "Dashboard") {
		t.Fatal("tabs should be hidden before login")
	}

	app = loggedInApp(t, nil)
	header = app.renderHeader()
	for _, name := range pageNames[pageDashboard:] {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestModalOverlayRenders(t *testing.T) {
	app := newTestApp(t, nil, nil)
	model, _ := app.openModal(modalSignup)
	app = model.(App)

	view := app.View()
	if !strings.Contains(view, "Create your account") {
		t.Fatal("signup modal should render its title")
	}
}

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
	for i, g := range keys.FullHelp() {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}
