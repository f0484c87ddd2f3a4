package testutil

import (
	"io"
	"log"

	"github.com/trezcool/eduhub/core"
)

type logger struct {
	std *log.Logger
}

var _ core.Logger = (*logger)(nil)

// NewLogger returns a silent core.Logger for tests.
func NewLogger() core.Logger {
	return &logger{std: log.New(io.Discard, "", 0)}
}

func (l logger) Enable(bool) {}

func (l logger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l logger) Debug(msg string, args ...interface{}) { l.print(msg, args) }
func (l logger) Info(msg string, args ...interface{})  { l.print(msg, args) }
func (l logger) Warn(msg string, args ...interface{})  { l.print(msg, args) }
func (l logger) Error(msg string, args ...interface{}) { l.print(msg, args) }
func (l logger) Fatal(msg string, args ...interface{}) { l.print(msg, args) }

// NewConfig returns a minimal test config; tests override what they need.
func NewConfig() *core.Config {
	return &core.Config{
		Debug:    true,
		TestMode: true,
		Env:      "TEST",
		AppName:  "EduHub",
		Notification: core.NotificationConfig{
			Enabled: true,
			Icon:    "/pwa-192x192.png",
			Badge:   "/pwa-192x192.png",
		},
		PWA: core.PWAConfig{Enabled: true, CacheVersion: 1},
	}
}
