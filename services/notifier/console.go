// Package notifysvc provides console-backed notification primitives for
// runtimes without a real notification surface (dev servers, tests).
package notifysvc

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/notification"
)

var (
	// Shown collects every notification rendered by mock showers.
	Shown []notification.Request
	mutex sync.Mutex
)

type consoleShower struct {
	prefix        string
	disableOutput bool
}

var _ notification.Shower = (*consoleShower)(nil)

func NewConsoleShower(conf *core.Config) notification.Shower {
	return &consoleShower{prefix: "[" + conf.AppName + "] "}
}

// NewConsoleShowerMock records shown notifications without console output.
func NewConsoleShowerMock() notification.Shower {
	return &consoleShower{disableOutput: true}
}

func (s consoleShower) Show(req notification.Request) error {
	if s.disableOutput {
		mutex.Lock()
		Shown = append(Shown, req)
		mutex.Unlock()
		return nil
	}

	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "%s%s\n", s.prefix, req.Title)
	_, _ = fmt.Fprintf(body, "%s\n", req.Body)
	_, _ = fmt.Fprintf(body, "tag: %s\n", req.Tag)
	for _, a := range req.Actions {
		_, _ = fmt.Fprintf(body, "[%s] %s\n", a.Action, a.Title)
	}
	log.Print(body.String())
	return nil
}

type configPrompter struct {
	granted bool
}

var _ notification.Prompter = (*configPrompter)(nil)

// NewConfigPrompter resolves permission from the notifications feature flag;
// there is no interactive prompt on a server runtime.
func NewConfigPrompter(conf *core.Config) notification.Prompter {
	return &configPrompter{granted: conf.Notification.Enabled}
}

func (p configPrompter) Current() notification.Permission {
	if p.granted {
		return notification.PermissionGranted
	}
	return notification.PermissionDefault
}

func (p configPrompter) Request() (notification.Permission, error) {
	if p.granted {
		return notification.PermissionGranted, nil
	}
	return notification.PermissionDenied, nil
}

type consoleClients struct{}

var _ notification.WindowClients = (*consoleClients)(nil)

// NewConsoleClients is a window-client surface with no open windows;
// clicks always open a fresh (logged) window.
func NewConsoleClients() notification.WindowClients {
	return &consoleClients{}
}

func (consoleClients) List() []notification.WindowClient { return nil }

func (consoleClients) OpenWindow(url string) error {
	log.Printf("opening window at %s", url)
	return nil
}
