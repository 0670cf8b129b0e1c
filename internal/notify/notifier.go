package notify

import (
	"context"
	"errors"

	"artbook_backend/internal/logger"
	"artbook_backend/internal/models"
)

// Message is a notification addressed to one applicant.
type Message struct {
	ApplicationID string
	Name          string
	Email         string
	Notification  models.Notification
}

// Notifier delivers user-facing notifications.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	logger.CtxInfo(ctx, "Notification",
		"application_id", msg.ApplicationID,
		"title", msg.Notification.Title,
		"description", msg.Notification.Description,
	)
	return nil
}

type multi []Notifier

// Multi fans a message out to every notifier and joins their errors.
func Multi(notifiers ...Notifier) Notifier {
	return multi(notifiers)
}

func (m multi) Notify(ctx context.Context, msg Message) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
