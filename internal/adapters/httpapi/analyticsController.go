package httpapi

import (
	"errors"
	"net/http"

	analyticsPort "cuff/internal/ports/analytics"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct{ ac AnalyticsUseCase }

func NewAnalyticsController(ac AnalyticsUseCase) *AnalyticsController {
	return &AnalyticsController{ac: ac}
}

func (ctl *AnalyticsController) RecordEvent(c *gin.Context) {
	var req struct {
		MetricType string `json:"metricType" binding:"required"`
		PostID     *uint  `json:"postId"`
		UserID     *uint  `json:"userId"`
		Location   string `json:"location"`
		Metadata   string `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	e, err := ctl.ac.RecordEvent(c.Request.Context(), analyticsPort.RecordEventInput{
		MetricType: req.MetricType,
		PostID:     req.PostID,
		UserID:     req.UserID,
		Location:   req.Location,
		Metadata:   req.Metadata,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record event"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (ctl *AnalyticsController) GetEventByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	e, err := ctl.ac.GetEventByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, analyticsPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch event"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (ctl *AnalyticsController) ListEvents(c *gin.Context) {
	events, err := ctl.ac.ListEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (ctl *AnalyticsController) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.ac.DeleteEvent(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete event"})
		return
	}
	c.Status(http.StatusNoContent)
}
