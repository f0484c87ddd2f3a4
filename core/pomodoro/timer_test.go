package pomodoro_test

import (
	"testing"

	"github.com/trezcool/eduhub/core/notification"
	"github.com/trezcool/eduhub/core/pomodoro"
	testutil "github.com/trezcool/eduhub/tests"
)

type spyDispatcher struct {
	titles []string
	bodies []string
}

func (d *spyDispatcher) Send(title string, opts notification.Options) notification.Delivery {
	d.titles = append(d.titles, title)
	d.bodies = append(d.bodies, opts.Body)
	return notification.DeliveryDelivered
}

func newTimer(t *testing.T, settings pomodoro.Settings) (*pomodoro.Timer, *spyDispatcher) {
	t.Helper()
	dispatcher := &spyDispatcher{}
	return pomodoro.NewTimer(settings, dispatcher, testutil.NewLogger()), dispatcher
}

// runSession starts the timer and ticks the current session down to zero.
func runSession(t *testing.T, timer *pomodoro.Timer) {
	t.Helper()
	if err := timer.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	for left := timer.State().TimeLeft; left > 0; left-- {
		timer.Tick()
	}
}

func TestTimer_defaults(t *testing.T) {
	timer, _ := newTimer(t, pomodoro.Settings{})

	state := timer.State()
	if state.Mode != pomodoro.ModeWork {
		t.Errorf("Mode = %q, want %q", state.Mode, pomodoro.ModeWork)
	}
	if state.Status != pomodoro.StatusIdle {
		t.Errorf("Status = %q, want %q", state.Status, pomodoro.StatusIdle)
	}
	if state.TimeLeft != 25*60 {
		t.Errorf("TimeLeft = %d, want %d", state.TimeLeft, 25*60)
	}
	if state.Settings != pomodoro.DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", state.Settings)
	}
}

func TestTimer_transitions(t *testing.T) {
	timer, _ := newTimer(t, pomodoro.Settings{})

	if err := timer.Pause(); err != pomodoro.ErrNotRunning {
		t.Errorf("Pause() while idle = %v, want %v", err, pomodoro.ErrNotRunning)
	}

	if err := timer.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := timer.Start(); err != pomodoro.ErrAlreadyRunning {
		t.Errorf("Start() while running = %v, want %v", err, pomodoro.ErrAlreadyRunning)
	}

	timer.Tick()
	timer.Tick()
	if got := timer.State().TimeLeft; got != 25*60-2 {
		t.Errorf("TimeLeft = %d, want %d", got, 25*60-2)
	}

	if err := timer.Pause(); err != nil {
		t.Fatalf("Pause() failed: %v", err)
	}
	timer.Tick() // no-op while paused
	if got := timer.State().TimeLeft; got != 25*60-2 {
		t.Errorf("TimeLeft after paused tick = %d, want %d", got, 25*60-2)
	}

	if err := timer.Start(); err != nil { // resume
		t.Fatalf("Start() from paused failed: %v", err)
	}
	if got := timer.State().Status; got != pomodoro.StatusRunning {
		t.Errorf("Status = %q, want %q", got, pomodoro.StatusRunning)
	}

	timer.Stop()
	state := timer.State()
	if state.Status != pomodoro.StatusIdle || state.TimeLeft != 25*60 {
		t.Errorf("after Stop state = %+v, want idle with a full session", state)
	}
}

func TestTimer_workCompletion(t *testing.T) {
	settings := pomodoro.Settings{WorkDuration: 1, ShortBreak: 1, LongBreak: 2, LongBreakInterval: 2}
	timer, dispatcher := newTimer(t, settings)

	runSession(t, timer)

	state := timer.State()
	if state.Mode != pomodoro.ModeShortBreak {
		t.Errorf("Mode = %q, want %q", state.Mode, pomodoro.ModeShortBreak)
	}
	if state.Status != pomodoro.StatusIdle {
		t.Errorf("Status = %q, want %q", state.Status, pomodoro.StatusIdle)
	}
	if state.TimeLeft != 60 {
		t.Errorf("TimeLeft = %d, want the short break duration", state.TimeLeft)
	}
	if state.CompletedSessions != 1 {
		t.Errorf("CompletedSessions = %d, want 1", state.CompletedSessions)
	}

	if len(dispatcher.titles) != 1 || dispatcher.titles[0] != "Focus Time Complete!" {
		t.Errorf("notification titles = %v, want the focus completion", dispatcher.titles)
	}
	if dispatcher.bodies[0] != "Time for a break!" {
		t.Errorf("notification body = %q, want the break prompt", dispatcher.bodies[0])
	}
}

func TestTimer_breakCompletion(t *testing.T) {
	settings := pomodoro.Settings{WorkDuration: 1, ShortBreak: 1, LongBreak: 2, LongBreakInterval: 4}
	timer, dispatcher := newTimer(t, settings)
	timer.SetMode(pomodoro.ModeShortBreak)

	runSession(t, timer)

	state := timer.State()
	if state.Mode != pomodoro.ModeWork {
		t.Errorf("Mode = %q, want back to %q", state.Mode, pomodoro.ModeWork)
	}
	if state.CompletedSessions != 0 {
		t.Errorf("CompletedSessions = %d, want breaks not counted", state.CompletedSessions)
	}
	if got := dispatcher.titles[len(dispatcher.titles)-1]; got != "Short Break Complete!" {
		t.Errorf("notification title = %q, want the break completion", got)
	}
	if got := dispatcher.bodies[len(dispatcher.bodies)-1]; got != "Ready to focus again?" {
		t.Errorf("notification body = %q, want the focus prompt", got)
	}
}

func TestTimer_longBreakInterval(t *testing.T) {
	settings := pomodoro.Settings{WorkDuration: 1, ShortBreak: 1, LongBreak: 2, LongBreakInterval: 2}
	timer, dispatcher := newTimer(t, settings)

	// first work session earns a short break
	runSession(t, timer)
	if got := timer.State().Mode; got != pomodoro.ModeShortBreak {
		t.Fatalf("after session 1 Mode = %q, want %q", got, pomodoro.ModeShortBreak)
	}

	// second work session hits the interval and earns a long break
	timer.SetMode(pomodoro.ModeWork)
	runSession(t, timer)
	state := timer.State()
	if state.Mode != pomodoro.ModeLongBreak {
		t.Errorf("after session 2 Mode = %q, want %q", state.Mode, pomodoro.ModeLongBreak)
	}
	if state.TimeLeft != 2*60 {
		t.Errorf("TimeLeft = %d, want the long break duration", state.TimeLeft)
	}
	if state.CompletedSessions != 2 {
		t.Errorf("CompletedSessions = %d, want 2", state.CompletedSessions)
	}
	if len(dispatcher.titles) != 2 {
		t.Errorf("notifications = %d, want one per completed session", len(dispatcher.titles))
	}
}

func TestTimer_UpdateSettings(t *testing.T) {
	timer, _ := newTimer(t, pomodoro.Settings{})

	timer.UpdateSettings(pomodoro.Settings{WorkDuration: 50, ShortBreak: 10, LongBreak: 30, LongBreakInterval: 3})
	if got := timer.State().TimeLeft; got != 50*60 {
		t.Errorf("TimeLeft = %d, want the new work duration", got)
	}

	// mid-run updates keep the current countdown
	if err := timer.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	timer.Tick()
	timer.UpdateSettings(pomodoro.Settings{WorkDuration: 10, ShortBreak: 2, LongBreak: 5, LongBreakInterval: 4})
	if got := timer.State().TimeLeft; got != 50*60-1 {
		t.Errorf("TimeLeft = %d, want the running countdown untouched", got)
	}
}
