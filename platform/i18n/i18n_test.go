package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolver_RendersRegisteredTemplate(t *testing.T) {
	r, err := NewResolver(language.English, map[string]string{
		"number_blocked": "%s has been blocked.",
	})
	if err != nil {
		t.Fatalf("building resolver failed: %v", err)
	}

	got := r.Render("number_blocked", "(650) 253-0000")
	if got != "(650) 253-0000 has been blocked." {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestResolver_Has(t *testing.T) {
	r, err := NewResolver(language.English, map[string]string{"known": "known"})
	if err != nil {
		t.Fatalf("building resolver failed: %v", err)
	}

	if !r.Has("known") {
		t.Fatalf("expected known key")
	}
	if r.Has("unknown") {
		t.Fatalf("did not expect unknown key")
	}
}
