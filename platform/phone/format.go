// Package phone provides phone number display formatting utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"callblock_backend/platform/config"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/unicode/bidi"
)

const fallbackRegion = "US"

// Directional isolates keep a phone number rendering left-to-right when it
// is embedded in right-to-left text.
const (
	leftToRightIsolate    = "⁦"
	popDirectionalIsolate = "⁩"
)

// LocaleDefaultToUS normalizes a platform-reported region code. The code is
// returned unchanged when it is exactly two characters; anything else falls
// back to "US".
func LocaleDefaultToUS(reported string) string {
	if len(reported) != 2 {
		return fallbackRegion
	}
	return reported
}

// Formatter formats phone numbers for display in a fixed region.
type Formatter struct {
	region string
}

// NewFormatter creates a formatter for the configured default region. A
// malformed region falls back to US.
func NewFormatter(cfg config.PhoneConfig) *Formatter {
	return &Formatter{region: LocaleDefaultToUS(cfg.GetDefaultRegion())}
}

// Region returns the region the formatter resolves numbers against.
func (f *Formatter) Region() string {
	return f.region
}

// FormatNumber formats a number for display, falling back to the input
// unchanged when it cannot be parsed. The result is wrapped for
// left-to-right rendering either way. It never fails.
func (f *Formatter) FormatNumber(number string) string {
	return WrapLTR(formatInRegion(number, f.region))
}

func formatInRegion(number, region string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return number
	}

	parsed, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return number
	}

	// Numbers from the local region read best in national notation; foreign
	// numbers keep their country code.
	if int(parsed.GetCountryCode()) == phonenumbers.GetCountryCodeForRegion(region) {
		return phonenumbers.Format(parsed, phonenumbers.NATIONAL)
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
}

// WrapLTR wraps text containing right-to-left runs in directional isolates
// so it renders left-to-right. Text without RTL runs is returned unchanged.
func WrapLTR(text string) string {
	if text == "" {
		return text
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return text
	}

	ordering, err := p.Order()
	if err != nil {
		return text
	}

	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			return leftToRightIsolate + text + popDirectionalIsolate
		}
	}
	return text
}
