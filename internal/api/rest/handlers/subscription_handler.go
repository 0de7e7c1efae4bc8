package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/repository"
	"github.com/Animesh0711/DailyEase/internal/service"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

// SubscriptionHandler обработчик подписок и доставок
type SubscriptionHandler struct {
	service service.SubscriptionService
	log     *logger.Logger
}

// NewSubscriptionHandler создает новый обработчик подписок
func NewSubscriptionHandler(svc service.SubscriptionService, log *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: svc,
		log:     log,
	}
}

// PauseRequest тело запроса на паузу подписки
type PauseRequest struct {
	PauseDays int `json:"pause_days" binding:"omitempty,gt=0"`
}

// CreateSubscription создает подписку и платежный заказ для нее
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req domain.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid subscription request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		h.log.Error("Failed to create subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUserSubscriptions возвращает активные подписки пользователя
func (h *SubscriptionHandler) GetUserSubscriptions(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	subscriptions, err := h.service.GetUserSubscriptions(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get subscriptions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// PauseSubscription приостанавливает подписку на заданное число дней
func (h *SubscriptionHandler) PauseSubscription(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID format"})
		return
	}

	// Срок приходит query-параметром, без него пауза на срок по умолчанию
	pauseDays := 0
	if raw := c.Query("pause_days"); raw != "" {
		pauseDays, err = strconv.Atoi(raw)
		if err != nil || pauseDays <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pause_days value"})
			return
		}
	}

	// Тело необязательно и имеет приоритет над query-параметром
	if c.Request.ContentLength > 0 {
		var req PauseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.log.Warn("Invalid pause request: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.PauseDays > 0 {
			pauseDays = req.PauseDays
		}
	}

	until, err := h.service.Pause(c.Request.Context(), id, pauseDays)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}

		h.log.Error("Failed to pause subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pause subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Subscription paused",
		"paused_until": until.Format("2006-01-02"),
	})
}

// ResumeSubscription снимает паузу с подписки
func (h *SubscriptionHandler) ResumeSubscription(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID format"})
		return
	}

	if err := h.service.Resume(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}

		h.log.Error("Failed to resume subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resume subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription resumed"})
}

// ToggleDelivery планирует или отменяет доставку на конкретный день
func (h *SubscriptionHandler) ToggleDelivery(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID format"})
		return
	}

	var req domain.ToggleDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid toggle request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.ToggleDelivery(c.Request.Context(), id, req.Date)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Delivery already scheduled for this day"})
			return
		}

		h.log.Error("Failed to toggle delivery: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle delivery"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDeliveryCalendar возвращает календарь доставок пользователя по дням
func (h *SubscriptionHandler) GetDeliveryCalendar(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	calendar, err := h.service.DeliveryCalendar(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to build delivery calendar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get delivery calendar"})
		return
	}

	c.JSON(http.StatusOK, calendar)
}
