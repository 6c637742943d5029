// Package service implements the call-blocking settings service: phone
// number display formatting, toast display with accessibility annotation,
// the emergency-call-blocking-disabled notification, the platform enhanced
// call blocking capability check, and the dual-store blocked-number setting.
package service

import (
	"context"
	"strings"

	"callblock_backend/internal/callblock/carrier"
	"callblock_backend/internal/callblock/notify"
	"callblock_backend/internal/callblock/settings"
	"callblock_backend/platform/apperr"
	"callblock_backend/platform/i18n"
	"callblock_backend/platform/logger"
	"callblock_backend/platform/phone"
)

// Deps holds the collaborators the service delegates to. Kept as a struct
// to avoid long parameter lists at call sites.
type Deps struct {
	Formatter *phone.Formatter
	Messages  *i18n.Resolver
	Notifier  notify.Notifier
	Toaster   notify.Toaster
	Carrier   carrier.ConfigProvider
	System    carrier.SystemSettings
	Selector  *settings.Selector
	Log       *logger.Logger
}

// Service is stateless: every operation delegates straight to its
// collaborators and calls are independent of each other.
type Service struct {
	formatter *phone.Formatter
	messages  *i18n.Resolver
	notifier  notify.Notifier
	toaster   notify.Toaster
	carrier   carrier.ConfigProvider
	system    carrier.SystemSettings
	selector  *settings.Selector
	log       *logger.Logger
}

// NewService creates the call-blocking service.
func NewService(deps Deps) *Service {
	return &Service{
		formatter: deps.Formatter,
		messages:  deps.Messages,
		notifier:  deps.Notifier,
		toaster:   deps.Toaster,
		carrier:   deps.Carrier,
		system:    deps.System,
		selector:  deps.Selector,
		log:       deps.Log,
	}
}

// FormatNumber formats a number for display. It never fails: an
// unformattable number comes back unchanged, wrapped for left-to-right
// rendering.
func (s *Service) FormatNumber(number string) string {
	return s.formatter.FormatNumber(number)
}

// ShowToastWithFormattedNumber renders the template identified by
// templateID with the formatted number and shows it as a short toast. The
// first occurrence of the formatted number is annotated as a telephone
// number for screen readers; a template that does not contain the number
// produces no annotation.
func (s *Service) ShowToastWithFormattedNumber(ctx context.Context, templateID, number string) error {
	if s == nil || s.toaster == nil {
		return apperr.Internal("toaster not configured")
	}

	formatted := s.formatter.FormatNumber(number)
	text := s.messages.Render(templateID, formatted)

	msg := notify.SpannedMessage{Text: text}
	if start := strings.Index(text, formatted); start >= 0 {
		msg.Spans = append(msg.Spans, notify.Span{
			Type:  notify.SpanTelephone,
			Start: start,
			End:   start + len(formatted),
		})
	}

	return s.toaster.Show(ctx, msg, notify.DurationShort)
}

// UpdateEmergencyCallNotification shows or cancels the persistent
// call-blocking-disabled notification. Show and cancel share a fixed ID and
// target the system owner user, so the operation is idempotent either way.
func (s *Service) UpdateEmergencyCallNotification(ctx context.Context, show bool) error {
	if s == nil || s.notifier == nil {
		return apperr.Internal("notifier not configured")
	}

	if !show {
		return s.notifier.CancelAsUser(ctx, notify.EmergencyCallNotificationID, notify.UserOwner)
	}

	body := s.messages.Render(MsgCallBlockingOffBody)
	return s.notifier.PostAsUser(ctx, notify.Notification{
		ID:      notify.EmergencyCallNotificationID,
		Icon:    notify.IconWarning,
		Title:   s.messages.Render(MsgCallBlockingOffTitle),
		Body:    body,
		Ticker:  body,
		Channel: notify.ChannelCallBlocking,
		NoClear: true,
		Tap:     notify.Action{Screen: notify.ScreenCallBlockDisabled},
	}, notify.UserOwner)
}

// IsEnhancedCallBlockingEnabledByPlatform reports whether the platform
// enables enhanced call blocking: the carrier config flag OR the
// system-settings capability. An absent carrier config falls back to the
// documented default bundle.
func (s *Service) IsEnhancedCallBlockingEnabledByPlatform(ctx context.Context) (bool, error) {
	if s == nil || s.carrier == nil {
		return false, apperr.Internal("carrier config provider not configured")
	}

	bundle, err := s.carrier.Config(ctx)
	if err != nil || bundle == nil {
		bundle = s.carrier.DefaultConfig()
	}

	if bundle.GetBool(carrier.KeySupportEnhancedCallBlocking) {
		return true, nil
	}

	if s.system == nil {
		return false, nil
	}
	return s.system.IsEnhancedCallBlockingEnabled(ctx)
}

// GetBlockedNumberSetting reads the named boolean setting from whichever
// store the flag selects for this call.
func (s *Service) GetBlockedNumberSetting(ctx context.Context, key string, flags settings.FeatureFlags) (bool, error) {
	if s == nil || s.selector == nil {
		return false, apperr.Internal("settings selector not configured")
	}

	return s.selector.Pick(flags).Get(ctx, key)
}

// SetBlockedNumberSetting writes the named boolean setting to whichever
// store the flag selects for this call. Nothing is written to the other
// store.
func (s *Service) SetBlockedNumberSetting(ctx context.Context, key string, value bool, flags settings.FeatureFlags) error {
	if s == nil || s.selector == nil {
		return apperr.Internal("settings selector not configured")
	}

	store := s.selector.Pick(flags)
	if err := store.Set(ctx, key, value); err != nil {
		if s.log != nil {
			s.log.StoreError("set_blocked_number_setting", err)
		}
		return err
	}

	if s.log != nil {
		s.log.WithContext(ctx).SettingWrite(store.Name(), key, value)
	}
	return nil
}
