package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/eduhub/core"
)

const (
	defaultBody         = "New notification from EduHub!"
	defaultIcon         = "/pwa-192x192.png"
	defaultReplyTimeout = 5 * time.Second
)

// Gateway is the page-side dispatcher. It gates every send on capability and
// permission, merges caller options onto defaults and routes the payload
// through the worker channel when one is ready, falling back to the direct
// channel otherwise. Delivery is best-effort: Send never panics and never
// blocks calling code on failure paths.
type Gateway struct {
	direct       Shower
	reg          Registration
	prompter     Prompter
	supported    bool
	icon         string
	badge        string
	replyTimeout time.Duration
	logger       core.Logger

	mutex      sync.RWMutex
	permission Permission
}

func NewGateway(direct Shower, reg Registration, prompter Prompter, conf *core.Config, logger core.Logger) *Gateway {
	g := &Gateway{
		direct:       direct,
		reg:          reg,
		prompter:     prompter,
		supported:    direct != nil && reg != nil && prompter != nil,
		icon:         conf.Notification.Icon,
		badge:        conf.Notification.Badge,
		replyTimeout: conf.Notification.ReplyTimeout,
		logger:       logger,
		permission:   PermissionDefault,
	}
	if g.icon == "" {
		g.icon = defaultIcon
	}
	if g.badge == "" {
		g.badge = g.icon
	}
	if g.replyTimeout <= 0 {
		g.replyTimeout = defaultReplyTimeout
	}
	if g.supported {
		g.permission = prompter.Current()
	}
	return g
}

// Supported reports whether both a notification primitive and a worker
// registration capability exist; computed once at startup.
func (g *Gateway) Supported() bool { return g.supported }

func (g *Gateway) Permission() Permission {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.permission
}

// RequestPermission triggers the native permission prompt exactly once and
// records the resulting state. Unsupported runtimes resolve to denied
// without prompting.
func (g *Gateway) RequestPermission() Permission {
	if !g.supported {
		return PermissionDenied
	}
	perm, err := g.prompter.Request()
	if err != nil {
		g.logger.Error("requesting notification permission: "+err.Error(), err)
		perm = PermissionDenied
	}
	g.mutex.Lock()
	g.permission = perm
	g.mutex.Unlock()
	return perm
}

// Send dispatches one notification. It is a no-op returning DeliveryDenied
// unless the runtime is supported and permission is granted.
func (g *Gateway) Send(title string, opts Options) Delivery {
	if !g.supported || g.Permission() != PermissionGranted {
		g.logger.Warn("notifications not supported or permission not granted")
		return DeliveryDenied
	}

	req := g.newRequest(title, opts)

	// the worker channel is preferred: it is the only channel that can
	// render action buttons
	if g.reg.Active() {
		if g.postToWorker(req) {
			return DeliveryDelivered
		}
	}

	direct := req
	direct.Actions = nil // the direct primitive cannot render actions
	if err := g.direct.Show(direct); err != nil {
		g.logger.Error("direct notification failed: "+err.Error(), err)
		return DeliveryFailed
	}
	return DeliveryDelivered
}

// newRequest merges caller options over the default payload. Every call gets
// a fresh tag so consecutive notifications are never coalesced by accident.
func (g *Gateway) newRequest(title string, opts Options) Request {
	req := Request{
		Title:              title,
		Body:               defaultBody,
		Icon:               g.icon,
		Badge:              g.badge,
		Vibrate:            []int{200, 100, 200},
		RequireInteraction: true,
		Silent:             false,
		Tag:                uuid.New().String(),
		Data:               map[string]interface{}{"dateOfArrival": time.Now().UnixNano() / int64(time.Millisecond)},
	}
	if opts.Body != "" {
		req.Body = opts.Body
	}
	if opts.Icon != "" {
		req.Icon = opts.Icon
	}
	if opts.Badge != "" {
		req.Badge = opts.Badge
	}
	if opts.Vibrate != nil {
		req.Vibrate = opts.Vibrate
	}
	if opts.RequireInteraction != nil {
		req.RequireInteraction = *opts.RequireInteraction
	}
	if opts.Silent != nil {
		req.Silent = *opts.Silent
	}
	if opts.Tag != "" {
		req.Tag = opts.Tag
	}
	if opts.Actions != nil {
		req.Actions = opts.Actions
	}
	if opts.Data != nil {
		req.Data = opts.Data
	}
	return req
}

func (g *Gateway) postToWorker(req Request) bool {
	reply := make(chan Ack, 1)
	env := Envelope{Type: MessageShowNotification, Request: req, Reply: reply}
	if err := g.reg.Post(env); err != nil {
		g.logger.Warn("posting to worker: "+err.Error(), err)
		return false
	}
	select {
	case ack := <-reply:
		if !ack.Success && ack.Error != "" {
			g.logger.Warn("worker notification failed: " + ack.Error)
		}
		return ack.Success
	case <-time.After(g.replyTimeout):
		g.logger.Warn("worker notification ack timed out")
		return false
	}
}
