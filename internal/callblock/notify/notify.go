// Package notify defines the notification and toast collaborator contracts
// used by the call-blocking service. Delivery itself lives behind these
// interfaces so the service can run against the real platform surface or a
// fake in tests.
package notify

import "context"

// UserHandle identifies the platform user a notification targets.
type UserHandle int

// UserOwner is the system owner user that the emergency-call notification
// is always posted for.
const UserOwner UserHandle = 0

// Fixed identity of the emergency-call-blocking-disabled notification.
// Show and cancel share the ID so cancel always targets the prior show.
const (
	EmergencyCallNotificationID = 150
	ChannelCallBlocking         = "call_blocking"
	IconWarning                 = "stat_sys_warning"
	ScreenCallBlockDisabled     = "call_block_disabled"
)

// Action is the screen opened when a notification is tapped.
type Action struct {
	Screen string `json:"screen"`
}

// Notification is a persistent platform notification record.
type Notification struct {
	ID      int    `json:"id"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Ticker  string `json:"ticker"`
	Channel string `json:"channel"`
	NoClear bool   `json:"noClear"`
	Tap     Action `json:"tap"`
}

// Notifier posts and cancels notifications on behalf of a user. Posting the
// same ID twice replaces the prior notification; cancelling an absent ID is
// a no-op.
type Notifier interface {
	PostAsUser(ctx context.Context, n Notification, user UserHandle) error
	CancelAsUser(ctx context.Context, id int, user UserHandle) error
}
