package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatriai/sos-alerts/internal/contacts"
	"github.com/yatriai/sos-alerts/internal/events"
	"github.com/yatriai/sos-alerts/internal/models"
	"github.com/yatriai/sos-alerts/internal/notify"
	"github.com/yatriai/sos-alerts/internal/registry"
	"github.com/yatriai/sos-alerts/internal/service"
)

type Handler struct {
	svc          *service.Service
	broadcaster  *events.Broadcaster
	notifyStatus func() notify.Status
}

func NewHandler(svc *service.Service, broadcaster *events.Broadcaster, notifyStatus func() notify.Status) *Handler {
	return &Handler{
		svc:          svc,
		broadcaster:  broadcaster,
		notifyStatus: notifyStatus,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/alerts", h.createAlert)
	r.GET("/api/alerts", h.listAlerts)
	r.PATCH("/api/alerts/:id/status", h.updateStatus)
	r.GET("/api/alerts/:id/notifications", h.listNotifications)
	r.GET("/api/alerts/stream", h.streamAlerts)
	r.GET("/api/emergency-contacts", h.listContacts)
	r.POST("/api/notifications/test", h.testNotification)
	r.GET("/api/notifications/config-status", h.configStatus)
	r.GET("/health", h.health)
}

type createAlertRequest struct {
	ReporterID   string               `json:"reporterId"`
	ReporterName string               `json:"reporterName"`
	Category     models.AlertCategory `json:"category"`
	Location     models.Location      `json:"location"`
	Message      string               `json:"message"`
}

func (h *Handler) createAlert(c *gin.Context) {
	var req createAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.svc.ReportAlert(service.ReportRequest{
		ReporterID:   req.ReporterID,
		ReporterName: req.ReporterName,
		Category:     req.Category,
		Location:     req.Location,
		Message:      req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create alert"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"alert":                  res.Alert,
		"routedContacts":         res.Contacts,
		"guidanceTips":           res.GuidanceTips,
		"notificationDispatched": res.NotificationDispatched,
	})
}

func (h *Handler) listAlerts(c *gin.Context) {
	reporterID := c.Query("reporterId")
	if reporterID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reporterId query parameter is required"})
		return
	}

	alerts := h.svc.ListAlertsFor(reporterID)
	if alerts == nil {
		alerts = []models.Alert{}
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Actor  string `json:"actor"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	next, ok := models.ParseAlertStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + req.Status})
		return
	}

	updated, dispatched, err := h.svc.ChangeStatus(c.Param("id"), next, req.Actor)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		case errors.Is(err, registry.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alert":                  updated,
		"notificationDispatched": dispatched,
	})
}

func (h *Handler) listNotifications(c *gin.Context) {
	notifications, err := h.svc.ListNotifications(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// streamAlerts pushes lifecycle events over SSE until the client disconnects
// or the broadcaster shuts down.
func (h *Handler) streamAlerts(c *gin.Context) {
	id, ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case e, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(string(e.Kind), e)
			return true
		}
	})
}

func (h *Handler) listContacts(c *gin.Context) {
	list := contacts.Directory()
	if loc := c.Query("location"); loc != "" {
		list = contacts.FilterByLocation(loc)
	}
	c.JSON(http.StatusOK, gin.H{"contacts": list})
}

func (h *Handler) testNotification(c *gin.Context) {
	ok := h.svc.TestNotification(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

func (h *Handler) configStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifyStatus())
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
