package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"callblock_backend/internal/callblock/carrier"
	"callblock_backend/internal/callblock/notify"
	"callblock_backend/internal/callblock/service"
	"callblock_backend/internal/callblock/settings"
	"callblock_backend/internal/callblock/transport"
	"callblock_backend/platform/i18n"
	"callblock_backend/platform/logger"
	"callblock_backend/platform/phone"
	"callblock_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

type regionConfig string

func (c regionConfig) GetDefaultRegion() string { return string(c) }

type memStore struct {
	values map[string]bool
	name   string
}

func (s *memStore) Get(_ context.Context, key string) (bool, error) {
	return s.values[key], nil
}

func (s *memStore) Set(_ context.Context, key string, value bool) error {
	s.values[key] = value
	return nil
}

func (s *memStore) Name() string { return s.name }

type toggleFlags struct {
	useManager bool
}

func (f *toggleFlags) UseBlockedNumbersManager() bool { return f.useManager }

func newTestRouter(t *testing.T) (*gin.Engine, *toggleFlags, *memStore, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	messages, err := i18n.NewResolver(language.English, service.DefaultMessages())
	if err != nil {
		t.Fatalf("building resolver failed: %v", err)
	}

	provider := &memStore{values: map[string]bool{}, name: "provider"}
	manager := &memStore{values: map[string]bool{}, name: "manager"}
	log := logger.New("development")

	svc := service.NewService(service.Deps{
		Formatter: phone.NewFormatter(regionConfig("US")),
		Messages:  messages,
		Notifier:  notify.NewLogNotifier(log),
		Toaster:   notify.NewLogToaster(log),
		Carrier:   carrier.NewStaticProvider(nil),
		System:    carrier.StaticSystemSettings{},
		Selector:  settings.NewSelector(provider, manager),
		Log:       log,
	})

	flags := &toggleFlags{}
	h := New(svc, flags, validator.New())

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1/blocked-numbers"))
	return router, flags, provider, manager
}

func TestUpdateThenGetSetting(t *testing.T) {
	router, _, provider, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/blocked-numbers/settings/block_private", strings.NewReader(`{"value":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !provider.values["block_private"] {
		t.Fatalf("expected the provider store to hold the write")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/blocked-numbers/settings/block_private", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.SettingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if resp.Key != "block_private" || !resp.Value {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestGetSetting_FlagRoutesToManagerStore(t *testing.T) {
	router, flags, provider, manager := newTestRouter(t)
	provider.values["k"] = true

	flags.useManager = true
	req := httptest.NewRequest(http.MethodGet, "/api/v1/blocked-numbers/settings/k", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp transport.SettingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if resp.Value {
		t.Fatalf("expected false from the manager store while the flag is on")
	}
	if len(manager.values) != 0 {
		t.Fatalf("expected manager store untouched by reads")
	}
}

func TestUpdateSetting_MissingValueRejected(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/blocked-numbers/settings/k", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetEnhancedBlocking_DefaultsOff(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blocked-numbers/enhanced-blocking", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp transport.CapabilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if resp.Enabled {
		t.Fatalf("expected capability off with no carrier config and default settings")
	}
}

func TestFormatNumber(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/blocked-numbers/format", strings.NewReader(`{"number":"6502530000"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.FormatNumberResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	if resp.Formatted != "(650) 253-0000" {
		t.Fatalf("unexpected formatted number %q", resp.Formatted)
	}
}

func TestUpdateEmergencyNotification(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	for _, body := range []string{`{"show":true}`, `{"show":false}`} {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/blocked-numbers/emergency-notification", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204 for %s, got %d: %s", body, rec.Code, rec.Body.String())
		}
	}
}
