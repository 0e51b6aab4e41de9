package http

import (
	"net/http"

	"game-platform/internal/models"
	"game-platform/pkg/logger"
	"game-platform/pkg/queue"

	"github.com/gin-gonic/gin"
)

type notificationsStore interface {
	Create(*models.Notification) error
	Get(uint64) (*models.Notification, error)
	List() ([]models.Notification, error)
	Patch(uint64, map[string]interface{}) (*models.Notification, error)
	Delete(uint64) error
}

type notificationPublisher interface {
	PublishNotification(queue.NotificationEvent) error
}

// NotificationsHandler persists notifications and, when a broker is
// configured, publishes an event per created row for external consumers.
type NotificationsHandler struct {
	notifications notificationsStore
	publisher     notificationPublisher
	log           *logger.Logger
}

func NewNotificationsHandler(notifications notificationsStore, publisher notificationPublisher, log *logger.Logger) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications, publisher: publisher, log: log}
}

func (h *NotificationsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.List)
	rg.GET("/notifications/:id", h.Get)
	rg.POST("/notifications", h.Create)
	rg.PUT("/notifications/:id", h.Update)
	rg.PATCH("/notifications/:id", h.Update)
	rg.DELETE("/notifications/:id", h.Delete)
}

// List godoc
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  models.Notification
// @Router       /notifications [get]
func (h *NotificationsHandler) List(c *gin.Context) {
	notifications, err := h.notifications.List()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// Get godoc
// @Summary      Get notification by ID
// @Tags         notifications
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200  {object}  models.Notification
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [get]
func (h *NotificationsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	notification, err := h.notifications.Get(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// Create godoc
// @Summary      Create notification
// @Description  Persist a notification and emit a broker event for downstream delivery workers
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body models.Notification true "Notification data"
// @Success      201  {object}  models.Notification
// @Failure      400  {object}  map[string]string
// @Router       /notifications [post]
func (h *NotificationsHandler) Create(c *gin.Context) {
	var notification models.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification.ID = 0
	if err := h.notifications.Create(&notification); err != nil {
		respondError(c, h.log, err)
		return
	}

	if h.publisher != nil {
		event := queue.NotificationEvent{
			NotificationID:    notification.ID,
			UserID:            notification.UserID,
			Type:              notification.Type,
			Title:             notification.Title,
			Message:           notification.Message,
			RelatedEntityType: notification.RelatedEntityType,
			RelatedEntityID:   notification.RelatedEntityID,
		}
		if err := h.publisher.PublishNotification(event); err != nil {
			h.log.Warn("Notification %d stored but event publish failed: %v", notification.ID, err)
		}
	}

	c.JSON(http.StatusCreated, notification)
}

// Update godoc
// @Summary      Update notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        id path int true "Notification ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  models.Notification
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [patch]
func (h *NotificationsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := bindUpdateFields(c)
	if !ok {
		return
	}

	notification, err := h.notifications.Patch(id, fields)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// Delete godoc
// @Summary      Delete notification
// @Tags         notifications
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id} [delete]
func (h *NotificationsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.notifications.Delete(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
