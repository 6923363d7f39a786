package httpapi

import (
	"errors"
	"net/http"

	notificationPort "cuff/internal/ports/notification"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{ nc NotificationUseCase }

func NewNotificationController(nc NotificationUseCase) *NotificationController {
	return &NotificationController{nc: nc}
}

func (ctl *NotificationController) SendToUser(c *gin.Context) {
	var req struct {
		UserID  uint   `json:"userId" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	n, err := ctl.nc.SendToUser(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send notification"})
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (ctl *NotificationController) GetNotificationByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	n, err := ctl.nc.GetNotificationByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notificationPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch notification"})
		return
	}
	c.JSON(http.StatusOK, n)
}

func (ctl *NotificationController) ListNotifications(c *gin.Context) {
	notifications, err := ctl.nc.ListNotifications(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (ctl *NotificationController) ListNotificationsByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	notifications, err := ctl.nc.ListNotificationsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (ctl *NotificationController) DeleteNotification(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.nc.DeleteNotification(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete notification"})
		return
	}
	c.Status(http.StatusNoContent)
}
