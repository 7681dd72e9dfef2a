package notify

import (
	"github.com/google/uuid"
	"github.com/medicall/medicall-go/internal/logging"
	"go.uber.org/zap"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is one transient user-facing message.
type Notification struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"type"`
	Message string `json:"message"`
}

func New(kind Kind, message string) Notification {
	return Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
	}
}

// Notifier is the injected notification channel. Components receive it
// explicitly instead of reaching for global state, which keeps notification
// counts observable in tests.
type Notifier interface {
	Notify(kind Kind, message string)
}

// LogNotifier routes notifications to the log, standing in for a UI toast
// stack in the headless daemon.
type LogNotifier struct{}

func (LogNotifier) Notify(kind Kind, message string) {
	notification := New(kind, message)

	logging.Logger.Info("notification",
		zap.String("id", notification.ID),
		zap.String("kind", string(notification.Kind)),
		zap.String("message", notification.Message),
	)
}
