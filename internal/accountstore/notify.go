package accountstore

import "github.com/sirupsen/logrus"

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a short user-facing message raised after an operation.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier surfaces notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	Logger logrus.FieldLogger
}

func (l LogNotifier) Notify(n Notification) {
	entry := l.Logger.WithFields(logrus.Fields{
		"title":   n.Title,
		"variant": n.Variant,
	})
	if n.Variant == VariantDestructive {
		entry.Warn(n.Description)
		return
	}
	entry.Info(n.Description)
}

func failureNotification(description string) Notification {
	return Notification{Title: "Error", Description: description, Variant: VariantDestructive}
}
