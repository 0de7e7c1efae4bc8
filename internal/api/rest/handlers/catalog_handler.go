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

// CatalogHandler обработчик каталога газет и молочных пакетов
type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(svc service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		log:     log,
	}
}

// GetNewspapers возвращает активные газеты, опционально с фильтром
// по языку или жанру
func (h *CatalogHandler) GetNewspapers(c *gin.Context) {
	var (
		newspapers []domain.Newspaper
		err        error
	)

	switch {
	case c.Query("language") != "":
		newspapers, err = h.service.ListNewspapersByLanguage(c.Request.Context(), c.Query("language"))
	case c.Query("genre") != "":
		newspapers, err = h.service.ListNewspapersByGenre(c.Request.Context(), c.Query("genre"))
	default:
		newspapers, err = h.service.ListNewspapers(c.Request.Context())
	}

	if err != nil {
		h.log.Error("Failed to get newspapers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get newspapers"})
		return
	}

	c.JSON(http.StatusOK, newspapers)
}

// GetNewspaper возвращает газету по ID
func (h *CatalogHandler) GetNewspaper(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid newspaper ID format"})
		return
	}

	newspaper, err := h.service.GetNewspaper(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Newspaper not found"})
			return
		}

		h.log.Error("Failed to get newspaper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get newspaper"})
		return
	}

	c.JSON(http.StatusOK, newspaper)
}

// GetMilkPackages возвращает активные пакеты молока
func (h *CatalogHandler) GetMilkPackages(c *gin.Context) {
	packages, err := h.service.ListMilkPackages(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get milk packages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get milk packages"})
		return
	}

	c.JSON(http.StatusOK, packages)
}

// GetMilkPackage возвращает пакет молока по ID
func (h *CatalogHandler) GetMilkPackage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milk package ID format"})
		return
	}

	pkg, err := h.service.GetMilkPackage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Milk package not found"})
			return
		}

		h.log.Error("Failed to get milk package: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get milk package"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// CreateNewspaper добавляет газету в каталог
func (h *CatalogHandler) CreateNewspaper(c *gin.Context) {
	var req domain.NewspaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid newspaper request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newspaper, err := h.service.CreateNewspaper(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Newspaper already exists"})
			return
		}

		h.log.Error("Failed to create newspaper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create newspaper"})
		return
	}

	c.JSON(http.StatusCreated, newspaper)
}

// UpdateNewspaper обновляет газету в каталоге
func (h *CatalogHandler) UpdateNewspaper(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid newspaper ID format"})
		return
	}

	var req domain.NewspaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid newspaper request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newspaper, err := h.service.UpdateNewspaper(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Newspaper not found"})
			return
		}

		h.log.Error("Failed to update newspaper: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update newspaper"})
		return
	}

	c.JSON(http.StatusOK, newspaper)
}

// CreateMilkPackage добавляет пакет молока в каталог
func (h *CatalogHandler) CreateMilkPackage(c *gin.Context) {
	var req domain.MilkPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid milk package request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.service.CreateMilkPackage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Milk package already exists"})
			return
		}

		h.log.Error("Failed to create milk package: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milk package"})
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// UpdateMilkPackage обновляет пакет молока в каталоге
func (h *CatalogHandler) UpdateMilkPackage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milk package ID format"})
		return
	}

	var req domain.MilkPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid milk package request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.service.UpdateMilkPackage(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Milk package not found"})
			return
		}

		h.log.Error("Failed to update milk package: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milk package"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}
