package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hooksdemo/internal/diag"
	"hooksdemo/internal/state/clocktest"
)

func newTestApp(t *testing.T) (*appModelAdapter, *clocktest.Clock, *diag.Recorder) {
	t.Helper()
	clock := clocktest.New()
	rec := &diag.Recorder{}
	m := NewAppModel(Options{Clock: clock, Emitter: rec})
	t.Cleanup(m.Close)
	return &appModelAdapter{AppModel: m}, clock, rec
}

// press sends keys without running the returned commands.
func press(a *appModelAdapter, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(keyMsg(k))
	}
	return cmd
}

// pressAndRun sends a key and feeds the resulting page messages back in until
// no command is left. Only use it for keys whose commands return immediately.
func pressAndRun(a *appModelAdapter, keys ...string) {
	for _, k := range keys {
		_, cmd := a.Update(keyMsg(k))
		run(a, cmd)
	}
}

func run(a *appModelAdapter, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if _, quit := msg.(tea.QuitMsg); quit || msg == nil {
			return
		}
		_, cmd = a.Update(msg)
	}
}

// tick advances simulated time one second at a time, delivering each fire the
// way the program does.
func tick(a *appModelAdapter, clock *clocktest.Clock, seconds int) {
	for range seconds {
		clock.Advance(time.Second)
		a.Update(loopReadyMsg{})
	}
}

// drainStatus delivers every pending diagnostic event to the status line.
func drainStatus(a *appModelAdapter) {
	for {
		select {
		case ev := <-a.events:
			a.Update(diagMsg(ev))
		default:
			return
		}
	}
}

func TestAppModel_MountsEveryPanel(t *testing.T) {
	a, _, rec := newTestApp(t)

	for _, p := range a.Layout.Panels() {
		if p.Widget == nil || !p.Widget.Mounted() {
			t.Errorf("panel %s not mounted", p.ID)
		}
	}
	if a.Focus.Current != PanelCounter {
		t.Errorf("focus = %s, want counter", a.Focus.Current)
	}
	if kinds := rec.Kinds(); len(kinds) != 1 || kinds[0] != diag.KindMount {
		t.Errorf("kinds = %v, want one timer mount", kinds)
	}
	out := a.View()
	for _, want := range []string{pageTitle, "useState", "useEffect", "useRef", "useContext"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAppModel_TabRotatesFocus(t *testing.T) {
	a, _, _ := newTestApp(t)

	pressAndRun(a, "tab")
	if a.Focus.Current != PanelTimer {
		t.Errorf("after tab: %s", a.Focus.Current)
	}
	pressAndRun(a, "shift+tab", "shift+tab")
	if a.Focus.Current != PanelProfile {
		t.Errorf("after shift+tab twice: %s", a.Focus.Current)
	}
	pressAndRun(a, "tab")
	if a.Focus.Current != PanelCounter {
		t.Errorf("tab should wrap to counter: %s", a.Focus.Current)
	}
}

func TestAppModel_KeyPressIsOneFlush(t *testing.T) {
	a, _, _ := newTestApp(t)

	a.View()
	renders := a.Counter.Renders()
	for i, k := range []string{"+", "+", "+"} {
		before := a.Sched.Flushes()
		press(a, k)
		if got := a.Sched.Flushes() - before; got != 1 {
			t.Errorf("press %d: flushes = %d, want 1", i, got)
		}
		a.View()
	}
	if got := a.Counter.Renders() - renders; got != 3 {
		t.Errorf("renders = %d, want 3", got)
	}
	if a.Counter.Count() != 3 || a.Counter.Message() != "Increased to 3" {
		t.Errorf("count=%d message=%q", a.Counter.Count(), a.Counter.Message())
	}

	press(a, "*")
	if a.Counter.Count() != 6 {
		t.Errorf("count after double = %d, want 6", a.Counter.Count())
	}
	pressAndRun(a, " ", "r")
	if a.Counter.Count() != 0 || a.Counter.Message() != "Reset to 0" {
		t.Errorf("after SPC r: count=%d message=%q", a.Counter.Count(), a.Counter.Message())
	}
}

func TestAppModel_TimerTicksThroughLoop(t *testing.T) {
	a, clock, _ := newTestApp(t)
	pressAndRun(a, "tab")
	press(a, "s")

	tick(a, clock, 10)
	if a.Timer.Elapsed() != 10 {
		t.Fatalf("elapsed = %d, want 10", a.Timer.Elapsed())
	}
	drainStatus(a)
	if a.Status != "10 seconds elapsed" {
		t.Errorf("status = %q", a.Status)
	}
	if !strings.Contains(a.View(), "00:10") {
		t.Error("view missing 00:10")
	}

	press(a, "x")
	tick(a, clock, 3)
	if a.Timer.Elapsed() != 10 {
		t.Errorf("elapsed after stop = %d, want 10", a.Timer.Elapsed())
	}
}

func TestAppModel_ToggleTimerUnmountsAndRemountsFresh(t *testing.T) {
	a, clock, rec := newTestApp(t)
	old := a.Timer
	old.Start()
	tick(a, clock, 3)

	pressAndRun(a, " ", "t")
	if a.Timer != nil {
		t.Fatal("timer should be unmounted")
	}
	if clock.Pending() != 0 {
		t.Errorf("pending timers after unmount = %d", clock.Pending())
	}
	tick(a, clock, 5)
	if old.Elapsed() != 3 {
		t.Errorf("unmounted timer kept counting: %d", old.Elapsed())
	}
	if !strings.Contains(a.View(), "Timer unmounted") {
		t.Error("view missing unmounted placeholder")
	}

	pressAndRun(a, " ", "t")
	if a.Timer == nil || a.Timer == old {
		t.Fatal("expected a fresh timer")
	}
	if a.Timer.Elapsed() != 0 || a.Timer.Ticker().Running() {
		t.Errorf("fresh timer: elapsed=%d state=%v", a.Timer.Elapsed(), a.Timer.State())
	}

	kinds := rec.Kinds()
	want := []diag.Kind{diag.KindMount, diag.KindTimerStart, diag.KindUnmount, diag.KindMount}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestAppModel_InputCapturesKeysWhileEditing(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.Focus.SetFocus(PanelInput)

	press(a, "f")
	if !a.Input.Editing() {
		t.Fatal("expected input editing")
	}
	press(a, "q", "?", " ")
	if a.Input.Value() != "q? " {
		t.Errorf("value = %q, want %q", a.Input.Value(), "q? ")
	}
	if a.Overlays.Len() != 0 || a.KeyHandler.LeaderWaiting {
		t.Error("page bindings fired while editing")
	}

	cmd := press(a, "ctrl+c")
	if cmd == nil {
		t.Fatal("ctrl+c should quit while editing")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not produce QuitMsg")
	}

	press(a, "esc")
	if a.Input.Editing() {
		t.Error("esc should leave the input")
	}
}

func TestAppModel_FocusChangeBlursInput(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.Focus.SetFocus(PanelInput)
	press(a, "f")

	a.Focus.SetFocus(PanelCounter)
	if a.Input.Editing() {
		t.Error("input still focused after leaving its panel")
	}
}

func TestAppModel_LoginLogoutWithConfirmation(t *testing.T) {
	a, _, _ := newTestApp(t)

	pressAndRun(a, " ", "l")
	user := a.Profile.User()
	if user.Name != "Somchai Jaidee" || user.Email != "somchai@example.com" {
		t.Fatalf("user = %+v", user)
	}
	drainStatus(a)
	if a.Status != "Somchai Jaidee signed in" {
		t.Errorf("status = %q", a.Status)
	}

	pressAndRun(a, " ", "o")
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected confirmation overlay, got %d", a.Overlays.Len())
	}
	if !strings.Contains(a.View(), "Sign out?") {
		t.Error("view missing confirmation")
	}
	pressAndRun(a, "n")
	if a.Overlays.Len() != 0 || !a.Profile.User().SignedIn() {
		t.Errorf("cancel: overlays=%d signedIn=%v", a.Overlays.Len(), a.Profile.User().SignedIn())
	}

	pressAndRun(a, " ", "o")
	pressAndRun(a, "y")
	if a.Overlays.Len() != 0 {
		t.Errorf("overlays after confirm = %d", a.Overlays.Len())
	}
	if a.Profile.User().SignedIn() {
		t.Error("expected signed out after confirm")
	}
}

func TestAppModel_LogoutWhileSignedOutIsNoop(t *testing.T) {
	a, _, _ := newTestApp(t)
	pressAndRun(a, " ", "o")
	if a.Overlays.Len() != 0 {
		t.Error("no confirmation expected without a user")
	}
}

func TestAppModel_HelpOverlayCapturesKeys(t *testing.T) {
	a, _, _ := newTestApp(t)

	pressAndRun(a, "?")
	top, ok := a.Overlays.Peek()
	if !ok {
		t.Fatal("expected help overlay")
	}
	if _, isHelp := top.View.(*ExplainView); !isHelp {
		t.Fatalf("top overlay = %T", top.View)
	}
	if !strings.Contains(a.View(), "useRef") {
		t.Error("help view missing explanations")
	}

	press(a, "+")
	if a.Counter.Count() != 0 {
		t.Error("key leaked past the overlay")
	}
	pressAndRun(a, "?")
	if a.Overlays.Len() != 0 {
		t.Errorf("overlays = %d after dismiss", a.Overlays.Len())
	}
}

func TestAppModel_LeaderHelpShown(t *testing.T) {
	a, _, _ := newTestApp(t)
	press(a, " ")
	out := a.View()
	if !strings.Contains(out, "Mount/unmount timer") || !strings.Contains(out, "Reset") {
		t.Errorf("leader help missing bindings:\n%s", out)
	}
	press(a, "esc")
	if a.KeyHandler.LeaderWaiting {
		t.Error("esc should cancel leader")
	}
}

func TestAppModel_CloseReleasesEverything(t *testing.T) {
	a, clock, _ := newTestApp(t)
	timer := a.Timer
	timer.Start()
	provider := a.UserProvider

	a.Close()
	a.Close()

	for _, p := range a.Layout.Panels() {
		if p.Widget != nil {
			t.Errorf("panel %s still holds a widget", p.ID)
		}
	}
	if !timer.Ticker().Closed() || clock.Pending() != 0 {
		t.Error("timer not released")
	}
	provider.Set(User{Name: "late"})
	if provider.Value().SignedIn() {
		t.Error("provider accepted a write after close")
	}
}

func TestAppModel_WindowSize(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	if a.width != 140 || a.height != 40 {
		t.Errorf("size = %dx%d", a.width, a.height)
	}
	if a.View() == "" {
		t.Error("empty view")
	}
}
