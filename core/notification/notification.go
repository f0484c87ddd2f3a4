// Package notification implements cross-context notification delivery: a
// page-side gateway that routes send attempts through a worker-backed or
// direct channel, and the worker-side handlers that render notifications and
// react to clicks, pushes and background syncs. The two sides communicate
// only through typed message envelopes.
package notification

// Permission mirrors the browser notification permission value.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Delivery is the terminal state of a single send attempt.
type Delivery string

const (
	DeliveryDenied    Delivery = "denied"
	DeliveryDelivered Delivery = "delivered"
	DeliveryFailed    Delivery = "failed"
)

// Click action identifiers rendered as notification buttons.
const (
	ActionExplore = "explore"
	ActionClose   = "close"
)

type (
	// Action is a button attached to a notification. Only the worker channel
	// can render actions; they are stripped before any direct-channel attempt.
	Action struct {
		Action string `json:"action"`
		Title  string `json:"title"`
		Icon   string `json:"icon,omitempty"`
	}

	// Request is a fully merged notification payload, ready to show.
	Request struct {
		Title              string                 `json:"title"`
		Body               string                 `json:"body"`
		Icon               string                 `json:"icon,omitempty"`
		Badge              string                 `json:"badge,omitempty"`
		Vibrate            []int                  `json:"vibrate,omitempty"`
		RequireInteraction bool                   `json:"requireInteraction"`
		Silent             bool                   `json:"silent"`
		Tag                string                 `json:"tag"`
		Actions            []Action               `json:"actions,omitempty"`
		Data               map[string]interface{} `json:"data,omitempty"`
	}

	// Options are caller-supplied overrides merged onto the defaults.
	// Pointer fields distinguish "not set" from an explicit false.
	Options struct {
		Body               string                 `json:"body,omitempty"`
		Icon               string                 `json:"icon,omitempty"`
		Badge              string                 `json:"badge,omitempty"`
		Vibrate            []int                  `json:"vibrate,omitempty"`
		RequireInteraction *bool                  `json:"requireInteraction,omitempty"`
		Silent             *bool                  `json:"silent,omitempty"`
		Tag                string                 `json:"tag,omitempty"`
		Actions            []Action               `json:"actions,omitempty"`
		Data               map[string]interface{} `json:"data,omitempty"`
	}

	// Shower renders a notification; it abstracts both the direct
	// notification primitive and the worker registration's renderer.
	Shower interface {
		Show(req Request) error
	}

	// Prompter abstracts the browser permission surface.
	Prompter interface {
		// Current returns the live permission value.
		Current() Permission
		// Request triggers the native permission prompt exactly once.
		Request() (Permission, error)
	}
)
