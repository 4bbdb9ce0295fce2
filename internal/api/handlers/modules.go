package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brownkp/europatch/internal/cache"
	"github.com/brownkp/europatch/internal/logger"
	"github.com/brownkp/europatch/internal/models"
)

type ModulesHandler struct {
	db    *gorm.DB
	cache *cache.Manager
}

func NewModulesHandler(db *gorm.DB) *ModulesHandler {
	return &ModulesHandler{
		db:    db,
		cache: cache.NewManager(db),
	}
}

// List returns every module in the library with its jacks and controls
func (h *ModulesHandler) List(c *gin.Context) {
	var modules []models.Module
	if err := h.db.Preload("Connections").Preload("Controls").Find(&modules).Error; err != nil {
		logger.Error("Failed to list modules", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load modules"})
		return
	}
	c.JSON(http.StatusOK, modules)
}

// Get returns a single module by ID
func (h *ModulesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var module models.Module
	err := h.db.Preload("Connections").Preload("Controls").First(&module, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Module with ID %d not found", id)})
		return
	}
	if err != nil {
		logger.Error("Failed to load module", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load module"})
		return
	}
	c.JSON(http.StatusOK, module)
}

// Manual returns the cached manual content for a module, fetching it on a
// cache miss
func (h *ModulesHandler) Manual(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var module models.Module
	err := h.db.First(&module, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Module with ID %d not found", id)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load module"})
		return
	}
	if module.ManualURL == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No manual URL available for module %d", id)})
		return
	}

	forceRefresh := c.Query("force_refresh") == "true"
	content, err := h.cache.ManualContent(c.Request.Context(), module.ID, forceRefresh)
	if err != nil {
		logger.Error("Failed to get manual content", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch manual content"})
		return
	}

	// Re-read for the refreshed timestamp.
	h.db.First(&module, id)

	c.JSON(http.StatusOK, gin.H{
		"module_id":      module.ID,
		"module_name":    module.Name,
		"manual_url":     module.ManualURL,
		"manual_content": content,
		"last_updated":   module.ManualLastUpdated,
	})
}

// ForumData returns cached forum sources about a module
func (h *ModulesHandler) ForumData(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var module models.Module
	err := h.db.First(&module, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Module with ID %d not found", id)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load module"})
		return
	}

	sourceType := c.DefaultQuery("source_type", "all")
	forceRefresh := c.Query("force_refresh") == "true"
	sources, err := h.cache.ForumData(c.Request.Context(), module, sourceType, forceRefresh)
	if err != nil {
		logger.Error("Failed to get forum data", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load forum data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"module_id":   module.ID,
		"module_name": module.Name,
		"source_type": sourceType,
		"forum_data":  sources,
	})
}

// pathID parses the :id route parameter, writing the 400 response itself on
// bad input.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID parameter"})
		return 0, false
	}
	return uint(id), true
}
