package service

// Message template keys, mirroring the platform string resources.
const (
	MsgCallBlockingOffTitle = "call_blocking_turned_off_notification_title"
	MsgCallBlockingOffBody  = "call_blocking_turned_off_notification_body"
	MsgNumberBlocked        = "number_blocked"
	MsgNumberUnblocked      = "number_unblocked"
)

// DefaultMessages returns the built-in message templates.
func DefaultMessages() map[string]string {
	return map[string]string{
		MsgCallBlockingOffTitle: "Call blocking turned off",
		MsgCallBlockingOffBody:  "Call blocking has been disabled because an emergency call was made.",
		MsgNumberBlocked:        "%s has been blocked.",
		MsgNumberUnblocked:      "%s has been unblocked.",
	}
}
