// Package pomodoro implements the focus-timer state machine: timed work
// sessions alternating with short breaks, and a long break every few sessions.
package pomodoro

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/notification"
)

var (
	// errors
	ErrNotRunning     = errors.New("timer is not running")
	ErrAlreadyRunning = errors.New("timer is already running")
)

type (
	Mode   string
	Status string
)

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"

	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

func (m Mode) Title() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus Time"
	}
}

// Settings are expressed in minutes, except LongBreakInterval which is the
// number of completed work sessions between long breaks.
type Settings struct {
	WorkDuration      int `json:"workDuration" validate:"required,min=1,max=60"`
	ShortBreak        int `json:"shortBreak" validate:"required,min=1,max=30"`
	LongBreak         int `json:"longBreak" validate:"required,min=1,max=60"`
	LongBreakInterval int `json:"longBreakInterval" validate:"required,min=2,max=10"`
}

func DefaultSettings() Settings {
	return Settings{WorkDuration: 25, ShortBreak: 5, LongBreak: 15, LongBreakInterval: 4}
}

// Dispatcher delivers the completion notifications.
type Dispatcher interface {
	Send(title string, opts notification.Options) notification.Delivery
}

// State is a snapshot of the timer for API consumers.
type State struct {
	Mode              Mode     `json:"mode"`
	Status            Status   `json:"status"`
	TimeLeft          int      `json:"timeLeft"` // seconds
	CompletedSessions int      `json:"completedSessions"`
	Settings          Settings `json:"settings"`
}

type Timer struct {
	dispatcher Dispatcher
	logger     core.Logger

	mutex             sync.Mutex
	settings          Settings
	mode              Mode
	status            Status
	timeLeft          int
	completedSessions int
}

func NewTimer(settings Settings, dispatcher Dispatcher, logger core.Logger) *Timer {
	if settings == (Settings{}) {
		settings = DefaultSettings()
	}
	return &Timer{
		dispatcher: dispatcher,
		logger:     logger,
		settings:   settings,
		mode:       ModeWork,
		status:     StatusIdle,
		timeLeft:   settings.WorkDuration * 60,
	}
}

func (t *Timer) State() State {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return State{
		Mode:              t.mode,
		Status:            t.status,
		TimeLeft:          t.timeLeft,
		CompletedSessions: t.completedSessions,
		Settings:          t.settings,
	}
}

// Start runs the timer; from paused it resumes where it left off.
func (t *Timer) Start() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.status == StatusRunning {
		return ErrAlreadyRunning
	}
	t.status = StatusRunning
	return nil
}

func (t *Timer) Pause() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.status != StatusRunning {
		return ErrNotRunning
	}
	t.status = StatusPaused
	return nil
}

// Stop resets the current session without switching modes.
func (t *Timer) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.status = StatusIdle
	t.timeLeft = t.duration(t.mode)
}

// SetMode switches to mode and resets the session.
func (t *Timer) SetMode(mode Mode) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.mode = mode
	t.status = StatusIdle
	t.timeLeft = t.duration(mode)
}

// UpdateSettings applies new durations; the current session restarts from the
// new duration unless the timer is mid-run.
func (t *Timer) UpdateSettings(settings Settings) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.settings = settings
	if t.status == StatusIdle {
		t.timeLeft = t.duration(t.mode)
	}
}

// Tick advances the timer by one second. It is a no-op unless running.
func (t *Timer) Tick() {
	t.mutex.Lock()
	if t.status != StatusRunning {
		t.mutex.Unlock()
		return
	}
	t.timeLeft--
	if t.timeLeft > 0 {
		t.mutex.Unlock()
		return
	}
	t.complete()
	t.mutex.Unlock()
}

// Run drives the timer with a 1-second tick until ctx is cancelled.
func (t *Timer) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}

// complete must be called with the mutex held.
func (t *Timer) complete() {
	t.status = StatusIdle
	finished := t.mode

	if finished == ModeWork {
		t.completedSessions++
		if t.completedSessions%t.settings.LongBreakInterval == 0 {
			t.mode = ModeLongBreak
		} else {
			t.mode = ModeShortBreak
		}
	} else {
		t.mode = ModeWork
	}
	t.timeLeft = t.duration(t.mode)

	t.notify(finished)
}

func (t *Timer) notify(finished Mode) {
	if t.dispatcher == nil {
		return
	}
	body := "Ready to focus again?"
	if finished == ModeWork {
		body = "Time for a break!"
	}
	delivery := t.dispatcher.Send(finished.Title()+" Complete!", notification.Options{Body: body})
	t.logger.Debug(fmt.Sprintf("pomodoro: %s complete, notification %s", finished, delivery))
}

func (t *Timer) duration(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return t.settings.ShortBreak * 60
	case ModeLongBreak:
		return t.settings.LongBreak * 60
	default:
		return t.settings.WorkDuration * 60
	}
}
