// Package handler exposes the call-blocking service over HTTP.
package handler

import (
	"net/http"

	"callblock_backend/internal/callblock/service"
	"callblock_backend/internal/callblock/settings"
	"callblock_backend/internal/callblock/transport"
	"callblock_backend/platform/httpkit"
	"callblock_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler serves the call-blocking endpoints.
type Handler struct {
	svc   *service.Service
	flags settings.FeatureFlags
	val   *validator.Validator
}

// New creates the handler. The flag source is evaluated on every settings
// request, never cached.
func New(svc *service.Service, flags settings.FeatureFlags, val *validator.Validator) *Handler {
	return &Handler{svc: svc, flags: flags, val: val}
}

// RegisterRoutes mounts the call-blocking routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings/:key", h.GetSetting)
	rg.PUT("/settings/:key", h.UpdateSetting)
	rg.GET("/enhanced-blocking", h.GetEnhancedBlocking)
	rg.PUT("/emergency-notification", h.UpdateEmergencyNotification)
	rg.POST("/format", h.FormatNumber)
	rg.POST("/toast", h.ShowToast)
}

// GetSetting reads a blocked-number setting from the currently selected store.
func (h *Handler) GetSetting(c *gin.Context) {
	key := c.Param("key")

	value, err := h.svc.GetBlockedNumberSetting(c.Request.Context(), key, h.flags)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SettingResponse{Key: key, Value: value})
}

// UpdateSetting writes a blocked-number setting to the currently selected store.
func (h *Handler) UpdateSetting(c *gin.Context) {
	key := c.Param("key")

	var req transport.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "value is required")
		return
	}

	err := h.svc.SetBlockedNumberSetting(c.Request.Context(), key, *req.Value, h.flags)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SettingResponse{Key: key, Value: *req.Value})
}

// GetEnhancedBlocking reports the platform enhanced-call-blocking capability.
func (h *Handler) GetEnhancedBlocking(c *gin.Context) {
	enabled, err := h.svc.IsEnhancedCallBlockingEnabledByPlatform(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.CapabilityResponse{Enabled: enabled})
}

// UpdateEmergencyNotification shows or hides the call-blocking-disabled
// notification.
func (h *Handler) UpdateEmergencyNotification(c *gin.Context) {
	var req transport.EmergencyNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "show is required")
		return
	}

	err := h.svc.UpdateEmergencyCallNotification(c.Request.Context(), *req.Show)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.NoContent(c)
}

// FormatNumber returns the display rendering of a number.
func (h *Handler) FormatNumber(c *gin.Context) {
	var req transport.FormatNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "number is required")
		return
	}

	httpkit.OK(c, transport.FormatNumberResponse{Formatted: h.svc.FormatNumber(req.Number)})
}

// ShowToast shows a toast with the formatted number substituted into the
// named template.
func (h *Handler) ShowToast(c *gin.Context) {
	var req transport.ToastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "templateId and number are required")
		return
	}

	err := h.svc.ShowToastWithFormattedNumber(c.Request.Context(), req.TemplateID, req.Number)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.NoContent(c)
}
