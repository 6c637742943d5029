// Package transport defines the HTTP request and response shapes for the
// call-blocking module.
package transport

// SettingResponse is the value of a blocked-number setting.
type SettingResponse struct {
	Key   string `json:"key"`
	Value bool   `json:"value"`
}

// UpdateSettingRequest writes a blocked-number setting.
type UpdateSettingRequest struct {
	Value *bool `json:"value" validate:"required"`
}

// CapabilityResponse reports the platform enhanced-call-blocking capability.
type CapabilityResponse struct {
	Enabled bool `json:"enabled"`
}

// EmergencyNotificationRequest shows or hides the call-blocking-disabled
// notification.
type EmergencyNotificationRequest struct {
	Show *bool `json:"show" validate:"required"`
}

// FormatNumberRequest asks for a display rendering of a number.
type FormatNumberRequest struct {
	Number string `json:"number" validate:"required,max=64"`
}

// FormatNumberResponse is the display rendering of a number.
type FormatNumberResponse struct {
	Formatted string `json:"formatted"`
}

// ToastRequest shows a toast with a formatted number substituted into the
// named template.
type ToastRequest struct {
	TemplateID string `json:"templateId" validate:"required"`
	Number     string `json:"number" validate:"required,max=64"`
}
