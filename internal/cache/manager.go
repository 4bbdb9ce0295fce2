package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/brownkp/europatch/internal/logger"
	"github.com/brownkp/europatch/internal/models"
)

const (
	manualTTL     = 30 * 24 * time.Hour
	forumTTL      = 7 * 24 * time.Hour
	fetchTimeout  = 10 * time.Second
	maxManualSize = 1 << 20 // cap fetched manual bodies at 1 MiB

	defaultRedditBaseURL = "https://www.reddit.com"
	redditSearchLimit    = 10
	redditUserAgent      = "europatch:v1.0.0 (patch idea generator)"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// Manager caches module manual content on the module row and forum sources in
// their own table, so repeated requests never re-fetch within the TTL.
type Manager struct {
	db            *gorm.DB
	client        *http.Client
	redditBaseURL string
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{
		db:            db,
		client:        &http.Client{Timeout: fetchTimeout},
		redditBaseURL: defaultRedditBaseURL,
	}
}

// ManualContent returns the manual text for a module, fetching and caching it
// when the stored copy is missing or older than 30 days. Binary formats are
// not fetched; a pointer to the URL is stored instead.
func (m *Manager) ManualContent(ctx context.Context, moduleID uint, forceRefresh bool) (string, error) {
	var module models.Module
	if err := m.db.First(&module, moduleID).Error; err != nil {
		return "", fmt.Errorf("loading module %d: %w", moduleID, err)
	}

	if !forceRefresh && module.ManualContent != "" && module.ManualLastUpdated != nil {
		if time.Since(*module.ManualLastUpdated) < manualTTL {
			return module.ManualContent, nil
		}
	}

	if module.ManualURL == "" {
		return "", errors.New("module has no manual URL")
	}

	logger.Info("Fetching manual content", logger.Fields{
		"module_id": module.ID,
		"url":       module.ManualURL,
	})

	content, err := m.fetchManual(ctx, module.ManualURL)
	if err != nil {
		logger.Error("Failed to fetch manual content", err, logger.Fields{"module_id": module.ID})
		// Stale content beats no content.
		if module.ManualContent != "" {
			return module.ManualContent, nil
		}
		return "", err
	}

	now := time.Now().UTC()
	module.ManualContent = content
	module.ManualLastUpdated = &now
	if err := m.db.Model(&module).Updates(map[string]interface{}{
		"manual_content":      content,
		"manual_last_updated": now,
	}).Error; err != nil {
		return "", fmt.Errorf("caching manual for module %d: %w", moduleID, err)
	}
	return content, nil
}

func (m *Manager) fetchManual(ctx context.Context, manualURL string) (string, error) {
	switch strings.ToLower(path.Ext(manualURL)) {
	case ".pdf", ".doc", ".docx":
		return "Manual available at: " + manualURL, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manualURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching manual: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching manual: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManualSize))
	if err != nil {
		return "", fmt.Errorf("reading manual body: %w", err)
	}
	return stripHTML(string(body)), nil
}

// stripHTML reduces an HTML page to plain text for keyword use. A full parser
// is overkill here; the text is never rendered.
func stripHTML(s string) string {
	s = scriptRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ForumData returns forum sources for a module, most relevant first,
// fetching fresh posts when the cache is empty or older than 7 days.
// sourceType filters to one source ("reddit", "modwiggler"); "all" or empty
// returns everything. A failed fetch falls back to whatever is cached.
func (m *Manager) ForumData(ctx context.Context, module models.Module, sourceType string, forceRefresh bool) ([]models.ForumSource, error) {
	cached, err := m.queryForumSources(ctx, module.ID, sourceType)
	if err != nil {
		return nil, err
	}
	if !forceRefresh && hasFreshSource(cached) {
		return cached, nil
	}

	logger.Info("Fetching forum data", logger.Fields{
		"module_id":   module.ID,
		"module_name": module.Name,
	})
	if err := m.refreshRedditSources(ctx, module); err != nil {
		logger.Error("Failed to fetch Reddit data", err, logger.Fields{"module_id": module.ID})
		// Stale content beats no content.
		if len(cached) > 0 {
			return cached, nil
		}
		return nil, err
	}
	return m.queryForumSources(ctx, module.ID, sourceType)
}

func (m *Manager) queryForumSources(ctx context.Context, moduleID uint, sourceType string) ([]models.ForumSource, error) {
	q := m.db.WithContext(ctx).Where("module_id = ?", moduleID)
	if sourceType != "" && sourceType != "all" {
		q = q.Where("source_type = ?", sourceType)
	}

	var sources []models.ForumSource
	if err := q.Order("relevance_score DESC").Find(&sources).Error; err != nil {
		return nil, fmt.Errorf("loading forum sources for module %d: %w", moduleID, err)
	}
	return sources, nil
}

// hasFreshSource reports whether any cached source was scraped within the
// forum TTL.
func hasFreshSource(sources []models.ForumSource) bool {
	for _, s := range sources {
		if time.Since(s.ScrapedAt) < forumTTL {
			return true
		}
	}
	return false
}

// refreshRedditSources searches Reddit's public JSON endpoint for posts
// mentioning the module and stores them.
func (m *Manager) refreshRedditSources(ctx context.Context, module models.Module) error {
	searchURL := fmt.Sprintf("%s/search.json?q=%s&limit=%d",
		m.redditBaseURL, url.QueryEscape(fmt.Sprintf("%q eurorack", module.Name)), redditSearchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", redditUserAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("searching Reddit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("searching Reddit: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManualSize))
	if err != nil {
		return fmt.Errorf("reading Reddit response: %w", err)
	}

	sources, err := parseRedditSearch(body, module.ID)
	if err != nil {
		return err
	}
	for i := range sources {
		if err := m.StoreForumSource(ctx, &sources[i], module.Name); err != nil {
			return err
		}
	}
	return nil
}

// parseRedditSearch converts one Reddit search listing into forum source
// rows. Posts without a title or permalink are skipped.
func parseRedditSearch(body []byte, moduleID uint) ([]models.ForumSource, error) {
	var listing struct {
		Data struct {
			Children []struct {
				Data struct {
					Title     string `json:"title"`
					SelfText  string `json:"selftext"`
					Permalink string `json:"permalink"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decoding Reddit response: %w", err)
	}

	var sources []models.ForumSource
	for _, child := range listing.Data.Children {
		post := child.Data
		if post.Title == "" || post.Permalink == "" {
			continue
		}
		sources = append(sources, models.ForumSource{
			ModuleID:   moduleID,
			SourceType: "reddit",
			URL:        "https://www.reddit.com" + post.Permalink,
			Title:      post.Title,
			Content:    post.SelfText,
		})
	}
	return sources, nil
}

// StoreForumSource upserts one scraped forum post, scoring its relevance to
// the module by name mentions.
func (m *Manager) StoreForumSource(ctx context.Context, source *models.ForumSource, moduleName string) error {
	source.RelevanceScore = RelevanceScore(source.Title, source.Content, moduleName)
	source.ScrapedAt = time.Now().UTC()

	var existing models.ForumSource
	err := m.db.WithContext(ctx).
		Where("source_type = ? AND url = ?", source.SourceType, source.URL).
		First(&existing).Error
	switch {
	case err == nil:
		source.ID = existing.ID
		return m.db.WithContext(ctx).Save(source).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return m.db.WithContext(ctx).Create(source).Error
	default:
		return err
	}
}

// RelevanceScore rates how likely a forum post is to be about the module.
// Name in the title is the strongest signal; repeated mentions in the body
// add a little more.
func RelevanceScore(title, content, moduleName string) float64 {
	name := strings.ToLower(moduleName)
	if name == "" {
		return 0
	}
	score := 0.3
	if strings.Contains(strings.ToLower(title), name) {
		score += 0.4
	}
	mentions := strings.Count(strings.ToLower(content), name)
	if mentions > 3 {
		mentions = 3
	}
	score += 0.1 * float64(mentions)
	if score > 1 {
		score = 1
	}
	return score
}
