// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/Elun4705/Interactive/internal/logger"
)

// AppName titles every notification.
var AppName = "Interactive"

// notifier is the underlying notification function; replaced in tests.
var notifier = beeep.Notify

// SetNotifier replaces the notification function.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the default notification function.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: Failed to send notification: %v", err)
	}
	return err
}

// ReplyReceived announces that the agent answered.
func ReplyReceived(agent string) error {
	return Send(AppName, agent+" replied")
}

// ImportCompleted announces a finished conversation import.
func ImportCompleted(name string) error {
	return Send(AppName, "Imported "+name)
}
