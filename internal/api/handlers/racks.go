package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brownkp/europatch/internal/logger"
	"github.com/brownkp/europatch/internal/metrics"
	"github.com/brownkp/europatch/internal/models"
	"github.com/brownkp/europatch/internal/modulargrid"
)

type RacksHandler struct {
	db            *gorm.DB
	parser        *modulargrid.Parser
	cloudwatch    *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

func NewRacksHandler(db *gorm.DB, cloudwatch *metrics.Client) *RacksHandler {
	return &RacksHandler{
		db:            db,
		parser:        modulargrid.NewParser(db),
		cloudwatch:    cloudwatch,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

type parseRackRequest struct {
	ModularGridURL string `json:"modulargrid_url" binding:"required"`
}

// ParseRack imports a ModularGrid rack, reusing the stored copy when the
// same rack was imported before
func (h *RacksHandler) ParseRack(c *gin.Context) {
	var req parseRackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing modulargrid_url parameter"})
		return
	}

	start := time.Now()
	rackID, err := modulargrid.ExtractRackID(req.ModularGridURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cached bool
	h.db.Model(&models.UserRack{}).
		Select("count(*) > 0").
		Where("modular_grid_id = ?", rackID).
		Find(&cached)

	rack, err := h.parser.ParseURL(c.Request.Context(), req.ModularGridURL)
	if err != nil {
		logger.Error("Failed to parse rack", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse rack"})
		return
	}

	h.sentryMetrics.RecordRackImport(c.Request.Context(), cached, time.Since(start))
	h.cloudwatch.RecordRackImport(cached)
	c.JSON(http.StatusOK, rack)
}

// List returns all imported racks
func (h *RacksHandler) List(c *gin.Context) {
	var racks []models.UserRack
	if err := h.db.Preload("Modules.Module").Find(&racks).Error; err != nil {
		logger.Error("Failed to list racks", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load racks"})
		return
	}
	c.JSON(http.StatusOK, racks)
}

// Get returns one imported rack with its modules
func (h *RacksHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var rack models.UserRack
	err := h.db.Preload("Modules.Module.Connections").
		Preload("Modules.Module.Controls").
		First(&rack, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Rack with ID %d not found", id)})
		return
	}
	if err != nil {
		logger.Error("Failed to load rack", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rack"})
		return
	}
	c.JSON(http.StatusOK, rack)
}
