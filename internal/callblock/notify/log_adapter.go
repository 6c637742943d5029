package notify

import (
	"context"

	"callblock_backend/platform/apperr"
	"callblock_backend/platform/logger"
)

// LogNotifier is an in-process notifier that records posts and cancels in
// the structured log. It stands in for the platform notification surface in
// the service binary.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// PostAsUser records a notification post.
func (n *LogNotifier) PostAsUser(ctx context.Context, notification Notification, user UserHandle) error {
	if n == nil || n.log == nil {
		return apperr.Internal("notifier not configured")
	}

	n.log.WithContext(ctx).NotificationEvent("post", notification.ID, int(user))
	return nil
}

// CancelAsUser records a notification cancel.
func (n *LogNotifier) CancelAsUser(ctx context.Context, id int, user UserHandle) error {
	if n == nil || n.log == nil {
		return apperr.Internal("notifier not configured")
	}

	n.log.WithContext(ctx).NotificationEvent("cancel", id, int(user))
	return nil
}

// LogToaster is an in-process toaster that records shown messages in the
// structured log.
type LogToaster struct {
	log *logger.Logger
}

// NewLogToaster creates a log-backed toaster.
func NewLogToaster(log *logger.Logger) *LogToaster {
	return &LogToaster{log: log}
}

// Show records a toast display.
func (t *LogToaster) Show(ctx context.Context, msg SpannedMessage, _ Duration) error {
	if t == nil || t.log == nil {
		return apperr.Internal("toaster not configured")
	}

	t.log.WithContext(ctx).Info("toast_shown", "text", msg.Text, "spans", len(msg.Spans))
	return nil
}
