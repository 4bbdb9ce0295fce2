package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brownkp/europatch/internal/catalog"
	"github.com/brownkp/europatch/internal/logger"
	"github.com/brownkp/europatch/internal/metrics"
	"github.com/brownkp/europatch/internal/models"
	"github.com/brownkp/europatch/internal/patch"
)

const forumSourceLimit = 10

type PatchesHandler struct {
	db            *gorm.DB
	resolver      *models.CatalogResolver
	cloudwatch    *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

func NewPatchesHandler(db *gorm.DB, cloudwatch *metrics.Client) *PatchesHandler {
	return &PatchesHandler{
		db:            db,
		resolver:      models.NewCatalogResolver(db),
		cloudwatch:    cloudwatch,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// GenerateRequest accepts either a stored rack ID or an explicit module
// list. Module entries may be library IDs or full inline definitions.
type GenerateRequest struct {
	RackID     *uint               `json:"rack_id"`
	Modules    []catalog.ModuleRef `json:"modules"`
	Prompt     string              `json:"prompt"`
	Complexity int                 `json:"complexity"`
	MaxResults int                 `json:"max_results"`
}

// Generate runs the patch idea pipeline and persists the fresh idea
func (h *PatchesHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing request data"})
		return
	}

	refs := req.Modules
	if req.RackID != nil {
		var rack models.UserRack
		err := h.db.Preload("Modules").First(&rack, *req.RackID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Rack with ID %d not found", *req.RackID)})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rack"})
			return
		}
		refs = nil
		for _, rm := range rack.Modules {
			refs = append(refs, catalog.RefID(rm.ModuleID))
		}
	}
	if len(refs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing rack_id or modules parameter"})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing prompt parameter"})
		return
	}

	start := time.Now()

	resolved, err := h.resolver.Resolve(refs)
	if err != nil {
		logger.Error("Failed to resolve modules", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve modules"})
		return
	}

	storedIDs := make(map[uint]bool)
	for _, ref := range refs {
		if !ref.IsInline() {
			storedIDs[ref.ID] = true
		}
	}

	// The generator's randomness is not safe for concurrent use, so each
	// request gets its own instance.
	gen := patch.NewGenerator()
	archetype := gen.Classify(req.Prompt)
	ideas, err := gen.Generate(patch.Request{
		Modules:      resolved,
		Prompt:       req.Prompt,
		Archetype:    archetype,
		Complexity:   req.Complexity,
		MaxResults:   req.MaxResults,
		PriorIdeas:   h.loadPriorIdeas(archetype, req.MaxResults),
		ForumSources: h.loadForumSources(storedIDs),
	})
	if errors.Is(err, patch.ErrNoModules) {
		h.recordGeneration(c, string(archetype), 0, start, false)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No modules could be resolved from the request"})
		return
	}
	if err != nil {
		h.recordGeneration(c, string(archetype), 0, start, false)
		logger.Error("Failed to generate patch", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate patch"})
		return
	}

	// The freshly generated idea is the one without a stored ID yet.
	for i := range ideas {
		if ideas[i].ID == 0 {
			if err := h.persistIdea(&ideas[i], storedIDs); err != nil {
				logger.Error("Failed to persist patch idea", err, logger.WithContext(c))
			}
			break
		}
	}

	h.recordGeneration(c, string(archetype), len(resolved), start, true)
	c.JSON(http.StatusOK, gin.H{
		"prompt":      req.Prompt,
		"patch_type":  archetype,
		"patch_ideas": ideas,
	})
}

func (h *PatchesHandler) recordGeneration(c *gin.Context, patchType string, moduleCount int, start time.Time, success bool) {
	duration := time.Since(start)
	h.sentryMetrics.RecordPatchGeneration(c.Request.Context(), patchType, moduleCount, duration, success)
	h.cloudwatch.RecordPatchGeneration(patchType, duration, success)
}

// loadPriorIdeas returns stored ideas of the same archetype, best first, to
// merge with the generated one. Failures degrade to generating without
// priors.
func (h *PatchesHandler) loadPriorIdeas(archetype patch.Archetype, limit int) []patch.Idea {
	if limit <= 0 {
		limit = 3
	}
	var stored []models.PatchIdea
	err := h.db.Where("patch_type = ?", string(archetype)).
		Order("relevance_score DESC").
		Limit(limit).
		Find(&stored).Error
	if err != nil {
		logger.Warn("Failed to load prior patch ideas", logger.Fields{"error": err.Error()})
		return nil
	}

	priors := make([]patch.Idea, 0, len(stored))
	for _, s := range stored {
		priors = append(priors, patch.Idea{
			ID:             s.ID,
			Title:          s.Title,
			Description:    s.Description,
			PatchType:      patch.Archetype(s.PatchType),
			Complexity:     s.Complexity,
			RelevanceScore: s.RelevanceScore,
			Sources: []patch.Source{{
				Type:           s.SourceType,
				Title:          s.Title,
				URL:            s.SourceURL,
				Snippet:        s.SourceText,
				RelevanceScore: s.RelevanceScore,
			}},
		})
	}
	return priors
}

// loadForumSources pulls cached forum snippets for the stored modules in the
// request.
func (h *PatchesHandler) loadForumSources(storedIDs map[uint]bool) []patch.Source {
	if len(storedIDs) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(storedIDs))
	for id := range storedIDs {
		ids = append(ids, id)
	}

	var rows []models.ForumSource
	err := h.db.Where("module_id IN ?", ids).
		Order("relevance_score DESC").
		Limit(forumSourceLimit).
		Find(&rows).Error
	if err != nil {
		logger.Warn("Failed to load forum sources", logger.Fields{"error": err.Error()})
		return nil
	}

	sources := make([]patch.Source, 0, len(rows))
	for _, r := range rows {
		sources = append(sources, patch.Source{
			Type:           r.SourceType,
			Title:          r.Title,
			URL:            r.URL,
			Snippet:        r.Content,
			RelevanceScore: r.RelevanceScore,
		})
	}
	return sources
}

// persistIdea stores the generated idea and its owned rows in one
// transaction. Child rows referencing inline (unstored) modules are skipped;
// their foreign keys have nothing to point at.
func (h *PatchesHandler) persistIdea(idea *patch.Idea, storedIDs map[uint]bool) error {
	record := models.PatchIdea{
		Title:          idea.Title,
		Description:    idea.Description,
		PatchType:      string(idea.PatchType),
		Complexity:     idea.Complexity,
		SourceType:     "generated",
		RelevanceScore: idea.RelevanceScore,
	}
	if len(idea.Sources) > 0 {
		record.SourceText = idea.Sources[0].Title
	}

	for _, m := range idea.Modules {
		if !storedIDs[m.ID] {
			continue
		}
		record.Modules = append(record.Modules, models.PatchModule{
			ModuleID:   m.ID,
			Role:       m.Role,
			Importance: m.Importance,
		})
	}
	for _, conn := range idea.Connections {
		if !storedIDs[conn.SourceModuleID] || !storedIDs[conn.TargetModuleID] {
			continue
		}
		record.Connections = append(record.Connections, models.PatchConnection{
			SourceModuleID:     conn.SourceModuleID,
			SourceConnectionID: conn.SourceConnectionID,
			TargetModuleID:     conn.TargetModuleID,
			TargetConnectionID: conn.TargetConnectionID,
			Description:        conn.Description,
			CableColor:         conn.CableColor,
			Importance:         conn.Importance,
		})
	}
	for _, cs := range idea.ControlSettings {
		if !storedIDs[cs.ModuleID] {
			continue
		}
		record.ControlSettings = append(record.ControlSettings, models.PatchControlSetting{
			ModuleID:     cs.ModuleID,
			ControlID:    cs.ControlID,
			ValueNumeric: cs.ValueNumeric,
			ValueText:    cs.ValueText,
			Description:  cs.Description,
			Importance:   cs.Importance,
		})
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&record).Error
	}); err != nil {
		return err
	}
	idea.ID = record.ID
	return nil
}

// List returns stored patch ideas, optionally filtered by type and
// complexity
func (h *PatchesHandler) List(c *gin.Context) {
	query := h.db.Model(&models.PatchIdea{})

	if patchType := c.Query("patch_type"); patchType != "" {
		query = query.Where("patch_type = ?", patchType)
	}
	if complexityStr := c.Query("complexity"); complexityStr != "" {
		complexity, err := strconv.Atoi(complexityStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complexity parameter"})
			return
		}
		query = query.Where("complexity = ?", complexity)
	}

	var ideas []models.PatchIdea
	if err := query.Order("created_at DESC").Find(&ideas).Error; err != nil {
		logger.Error("Failed to list patch ideas", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load patch ideas"})
		return
	}

	summaries := make([]gin.H, 0, len(ideas))
	for _, idea := range ideas {
		summaries = append(summaries, gin.H{
			"id":          idea.ID,
			"title":       idea.Title,
			"description": idea.Description,
			"patch_type":  idea.PatchType,
			"complexity":  idea.Complexity,
			"source_type": idea.SourceType,
			"source_url":  idea.SourceURL,
			"created_at":  idea.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, summaries)
}

// Get returns one stored patch idea with its modules, connections and
// control settings expanded to names
func (h *PatchesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var idea models.PatchIdea
	err := h.db.
		Preload("Modules.Module").
		Preload("Connections.SourceModule").
		Preload("Connections.SourceConnection").
		Preload("Connections.TargetModule").
		Preload("Connections.TargetConnection").
		Preload("ControlSettings.Module").
		Preload("ControlSettings.Control").
		First(&idea, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Patch idea with ID %d not found", id)})
		return
	}
	if err != nil {
		logger.Error("Failed to load patch idea", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load patch idea"})
		return
	}

	modules := make([]gin.H, 0, len(idea.Modules))
	for _, pm := range idea.Modules {
		if pm.Module == nil {
			continue
		}
		modules = append(modules, gin.H{
			"id":           pm.Module.ID,
			"name":         pm.Module.Name,
			"manufacturer": pm.Module.Manufacturer,
			"type":         pm.Module.ModuleType,
			"description":  pm.Module.Description,
			"role":         pm.Role,
			"importance":   pm.Importance,
		})
	}

	connections := make([]gin.H, 0, len(idea.Connections))
	for _, pc := range idea.Connections {
		if pc.SourceModule == nil || pc.SourceConnection == nil || pc.TargetModule == nil || pc.TargetConnection == nil {
			continue
		}
		connections = append(connections, gin.H{
			"source_module":     pc.SourceModule.Name,
			"source_connection": pc.SourceConnection.Name,
			"target_module":     pc.TargetModule.Name,
			"target_connection": pc.TargetConnection.Name,
			"cable_color":       pc.CableColor,
			"description":       pc.Description,
			"importance":        pc.Importance,
		})
	}

	controlSettings := make([]gin.H, 0, len(idea.ControlSettings))
	for _, pcs := range idea.ControlSettings {
		if pcs.Module == nil || pcs.Control == nil {
			continue
		}
		controlSettings = append(controlSettings, gin.H{
			"module":        pcs.Module.Name,
			"control":       pcs.Control.Name,
			"value_numeric": pcs.ValueNumeric,
			"value_text":    pcs.ValueText,
			"description":   pcs.Description,
			"importance":    pcs.Importance,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               idea.ID,
		"title":            idea.Title,
		"description":      idea.Description,
		"patch_type":       idea.PatchType,
		"complexity":       idea.Complexity,
		"source_type":      idea.SourceType,
		"source_url":       idea.SourceURL,
		"source_text":      idea.SourceText,
		"created_at":       idea.CreatedAt,
		"modules":          modules,
		"connections":      connections,
		"control_settings": controlSettings,
	})
}
