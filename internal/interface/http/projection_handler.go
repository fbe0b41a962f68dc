package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ifa360/ifa360-server/internal/projection"
	"github.com/ifa360/ifa360-server/pkg/response"
	"github.com/ifa360/ifa360-server/pkg/validation"
)

type ProjectionHandler struct {
	Logger *logrus.Logger
}

func NewProjectionHandler(logger *logrus.Logger) *ProjectionHandler {
	return &ProjectionHandler{Logger: logger}
}

// The model enforces no upper bounds; slider maxima are a front-end
// concern only.
type projectionRequest struct {
	Initial    float64 `json:"initial" binding:"gte=0"`
	Monthly    float64 `json:"monthly" binding:"gte=0"`
	Years      int     `json:"years" binding:"required,min=1"`
	Growth     float64 `json:"growth" binding:"gte=0"`
	Escalation float64 `json:"escalation" binding:"gte=0"`
}

// Simulate POST /api/projection
func (h *ProjectionHandler) Simulate(c *gin.Context) {
	var req projectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := projection.Simulate(projection.Input{
		Initial:       req.Initial,
		Monthly:       req.Monthly,
		Years:         req.Years,
		GrowthPct:     req.Growth,
		EscalationPct: req.Escalation,
	})
	if err != nil {
		if errors.Is(err, projection.ErrInvalidInput) {
			response.Fail(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithField("error", err.Error()).Error("projection failed")
		response.Fail(c, http.StatusInternalServerError, "projection failed", nil)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"series":              res.Series,
		"final_value":         res.FinalValue,
		"total_contributions": res.TotalContributions,
		"gain":                res.Gain(),
	}, "projection", nil)
}
