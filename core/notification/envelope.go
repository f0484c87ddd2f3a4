package notification

import "github.com/pkg/errors"

// MessageType tags a cross-context message envelope.
type MessageType string

const MessageShowNotification MessageType = "SHOW_NOTIFICATION"

type (
	// Ack is posted back through an envelope's reply port so the sender can
	// know whether the worker path actually succeeded.
	Ack struct {
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
	}

	// Envelope is the typed message passed between the page and the worker.
	Envelope struct {
		Type    MessageType `json:"type"`
		Request Request     `json:"request"`

		// Reply, when non-nil, receives exactly one Ack. It must be buffered.
		Reply chan<- Ack `json:"-"`
	}

	// Registration is the page-side view of a worker registration.
	Registration interface {
		// Active reports whether a worker is ready behind the registration.
		Active() bool
		// Post delivers an envelope to the worker without blocking.
		Post(env Envelope) error
	}
)

// PortRegistration connects a Gateway to a running Worker over an in-process
// message port.
type PortRegistration struct {
	port chan Envelope
	done chan struct{}
}

var _ Registration = (*PortRegistration)(nil)

func NewPortRegistration(buffer int) *PortRegistration {
	if buffer <= 0 {
		buffer = 16
	}
	return &PortRegistration{port: make(chan Envelope, buffer)}
}

// Port is the worker-side end of the message channel.
func (r *PortRegistration) Port() <-chan Envelope { return r.port }

// Bind marks the registration active for the lifetime of the given done
// channel (typically the worker run context's Done()).
func (r *PortRegistration) Bind(done chan struct{}) { r.done = done }

func (r *PortRegistration) Active() bool {
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

func (r *PortRegistration) Post(env Envelope) error {
	if !r.Active() {
		return errors.New("worker registration is not active")
	}
	select {
	case r.port <- env:
		return nil
	default:
		return errors.New("worker port saturated")
	}
}
