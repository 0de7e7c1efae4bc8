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

// PaymentHandler обработчик для платежей
type PaymentHandler struct {
	service service.PaymentService
	log     *logger.Logger
}

// NewPaymentHandler создает новый обработчик платежей
func NewPaymentHandler(svc service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: svc,
		log:     log,
	}
}

// ConfirmPayment сверяет платеж со статусом заказа у провайдера
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID format"})
		return
	}

	payment, err := h.service.ConfirmDirect(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment has no provider order to confirm"})
			return
		}
		if errors.Is(err, domain.ErrPaymentFailed) {
			// Детали провайдера наружу не отдаем
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Payment failed",
				"payment": payment,
			})
			return
		}

		h.log.Error("Failed to confirm payment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm payment"})
		return
	}

	c.JSON(http.StatusOK, payment)
}

// VerifyPayment проверяет подпись колбэка провайдера
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req domain.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid verify request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.service.VerifyCallback(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		if errors.Is(err, domain.ErrSignatureMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
			return
		}
		if errors.Is(err, domain.ErrNotConfigured) {
			h.log.Error("Payment verification is not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment verification is not configured"})
			return
		}

		h.log.Error("Failed to verify payment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify payment"})
		return
	}

	c.JSON(http.StatusOK, payment)
}

// GetPaymentHistory возвращает историю платежей пользователя
func (h *PaymentHandler) GetPaymentHistory(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	payments, err := h.service.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get payment history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payment history"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
