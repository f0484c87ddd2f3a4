package notification

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/eduhub/core"
)

// SyncTag is the only background sync tag the worker reacts to.
const SyncTag = "background-sync"

const (
	pushDefaultTitle = "EduHub - Student App"
	pushDefaultBody  = "You have a new update!"
)

type (
	// WindowClient is an open app window the worker can focus.
	WindowClient interface {
		URL() string
		Focus() error
	}

	// WindowClients enumerates and opens app windows.
	WindowClients interface {
		List() []WindowClient
		OpenWindow(url string) error
	}

	// OpenNotification is a rendered notification a click handler can close.
	OpenNotification interface {
		Close()
	}

	// Worker is the worker-side half of the dispatcher. Every handler
	// catches and logs failures instead of propagating them; an escaped
	// error would abort the surrounding lifecycle event.
	Worker struct {
		shower  Shower
		clients WindowClients
		origin  string
		icon    string
		badge   string
		logger  core.Logger
	}
)

func NewWorker(shower Shower, clients WindowClients, conf *core.Config, logger core.Logger) *Worker {
	icon := conf.Notification.Icon
	if icon == "" {
		icon = defaultIcon
	}
	badge := conf.Notification.Badge
	if badge == "" {
		badge = icon
	}
	return &Worker{
		shower:  shower,
		clients: clients,
		origin:  conf.FrontendBaseURL,
		icon:    icon,
		badge:   badge,
		logger:  logger,
	}
}

// Run consumes envelopes from the registration port until ctx is cancelled.
func (w *Worker) Run(ctx context.Context, port <-chan Envelope) {
	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-port:
			if !ok {
				return
			}
			w.HandleMessage(env)
		}
	}
}

// HandleMessage renders SHOW_NOTIFICATION envelopes and acknowledges the
// outcome on the reply port if one was supplied, so the page can fall back
// itself on failure.
func (w *Worker) HandleMessage(env Envelope) {
	if env.Type != MessageShowNotification {
		w.logger.Debug("ignoring message of type " + string(env.Type))
		if env.Reply != nil {
			env.Reply <- Ack{Success: false, Error: "unsupported message type: " + string(env.Type)}
		}
		return
	}

	err := w.shower.Show(env.Request)
	if err != nil {
		w.logger.Error("showing notification: "+err.Error(), err)
	}
	if env.Reply != nil {
		ack := Ack{Success: err == nil}
		if err != nil {
			ack.Error = err.Error()
		}
		env.Reply <- ack
	}
}

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// HandlePush renders an incoming push payload. The payload is parsed as a
// JSON {title, body} object; on parse failure the raw payload becomes the
// plain-text body under the default title.
func (w *Worker) HandlePush(payload []byte) {
	title, body := pushDefaultTitle, pushDefaultBody
	if len(payload) > 0 {
		var data pushPayload
		if err := json.Unmarshal(payload, &data); err != nil {
			body = string(payload)
		} else {
			if data.Title != "" {
				title = data.Title
			}
			if data.Body != "" {
				body = data.Body
			}
		}
	}

	req := Request{
		Title:   title,
		Body:    body,
		Icon:    w.icon,
		Badge:   w.badge,
		Vibrate: []int{100, 50, 100},
		Tag:     uuid.New().String(),
		Data:    map[string]interface{}{"dateOfArrival": time.Now().UnixNano() / int64(time.Millisecond)},
		Actions: []Action{
			{Action: ActionExplore, Title: "View Details", Icon: w.icon},
			{Action: ActionClose, Title: "Close", Icon: w.icon},
		},
	}
	if err := w.shower.Show(req); err != nil {
		w.logger.Error("showing push notification: "+err.Error(), err)
	}
}

// HandleClick reacts to a notification click. The notification is always
// closed first. The explore action (and the default click) focuses an
// already open app window when one exists and only opens a new window at
// the app root when none does; the close action dismisses only.
func (w *Worker) HandleClick(n OpenNotification, action string) {
	if n != nil {
		n.Close()
	}

	switch action {
	case ActionClose:
		return
	case ActionExplore, "":
		for _, c := range w.clients.List() {
			if strings.HasPrefix(c.URL(), w.origin) {
				if err := c.Focus(); err == nil {
					return
				}
				w.logger.Warn("focusing window client " + c.URL() + " failed")
			}
		}
		if err := w.clients.OpenWindow("/"); err != nil {
			w.logger.Error("opening window: "+err.Error(), err)
		}
	default:
		w.logger.Debug("ignoring unknown click action " + action)
	}
}

// HandleSync runs the best-effort background sync task. The event is never
// assumed reliable; browsers may fire it late or not at all.
func (w *Worker) HandleSync(tag string) {
	if tag != SyncTag {
		return
	}
	req := Request{
		Title: pushDefaultTitle,
		Body:  "Your content was synced in the background.",
		Icon:  w.icon,
		Badge: w.badge,
		Tag:   uuid.New().String(),
	}
	if err := w.shower.Show(req); err != nil {
		w.logger.Error("showing sync notification: "+err.Error(), err)
	}
}
