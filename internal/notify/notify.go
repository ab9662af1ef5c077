// Package notify provides desktop notification support for gident.
package notify

import (
	"fmt"

	"github.com/gident/gident/internal/config"
)

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// NotifyApply sends a notification about a successfully applied identity.
	NotifyApply(profile string, scope string) error
}

// Option configures a Notifier.
type Option func(*notifier)

// WithBackend sets a custom notification backend (for testing).
func WithBackend(backend Backend) Option {
	return func(n *notifier) {
		n.backend = backend
	}
}

// notifier sends desktop notifications using the system notification service.
type notifier struct {
	onApply bool
	backend Backend
}

// NotifyApply sends a notification about a successfully applied identity.
func (n *notifier) NotifyApply(profile string, scope string) error {
	if !n.onApply {
		return nil
	}

	title := "gident: Identity Switched"
	message := fmt.Sprintf("Now committing as %s (%s scope).", profile, scope)

	return n.backend.Notify(title, message, "")
}

// New creates a new Notifier based on the configuration.
func New(cfg config.NotificationConfig, opts ...Option) Notifier {
	n := &notifier{
		onApply: cfg.Enabled && cfg.OnApply,
		backend: newDesktopBackend(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}
