package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ifa360/ifa360-server/internal/application"
	"github.com/ifa360/ifa360-server/internal/domain/entity"
	"github.com/ifa360/ifa360-server/pkg/response"
	"github.com/ifa360/ifa360-server/pkg/validation"
)

type LeadHandler struct {
	Svc    *application.LeadService
	Logger *logrus.Logger
}

func NewLeadHandler(svc *application.LeadService, logger *logrus.Logger) *LeadHandler {
	return &LeadHandler{Svc: svc, Logger: logger}
}

type leadRequest struct {
	Kind    string         `json:"kind" binding:"required,oneof=contact register quote_request portfolio_interest"`
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email" binding:"required,email"`
	Mobile  string         `json:"mobile"`
	Message string         `json:"message"`
	Payload map[string]any `json:"payload"`
	Source  string         `json:"source"`
}

// Create POST /api/leads
// Accepts a form submission, stores it and queues the notification.
func (h *LeadHandler) Create(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	lead := &entity.Lead{
		Kind:       req.Kind,
		Name:       req.Name,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Message:    req.Message,
		Payload:    req.Payload,
		SourcePage: req.Source,
	}
	if err := h.Svc.Capture(c.Request.Context(), lead); err != nil {
		if errors.Is(err, application.ErrUnknownLeadKind) {
			response.Fail(c, http.StatusBadRequest, "unknown lead kind", nil)
			return
		}
		h.Logger.WithField("error", err.Error()).Error("lead capture failed")
		response.Fail(c, http.StatusInternalServerError, "could not save lead", nil)
		return
	}

	response.OK(c, http.StatusAccepted, gin.H{"lead_id": lead.ID}, "lead received", nil)
}

// List GET /api/leads?limit=n (session required)
func (h *LeadHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	leads, err := h.Svc.Recent(c.Request.Context(), limit)
	if err != nil {
		h.Logger.WithField("error", err.Error()).Error("lead listing failed")
		response.Fail(c, http.StatusInternalServerError, "could not list leads", nil)
		return
	}

	out := make([]gin.H, 0, len(leads))
	for _, l := range leads {
		out = append(out, gin.H{
			"id":          l.ID,
			"kind":        l.Kind,
			"name":        l.Name,
			"email":       l.Email,
			"mobile":      l.Mobile,
			"message":     l.Message,
			"payload":     l.Payload,
			"source_page": l.SourcePage,
			"created_at":  l.CreatedAt,
		})
	}
	response.OK(c, http.StatusOK, out, "leads", map[string]any{"count": len(out)})
}
