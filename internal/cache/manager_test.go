package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brownkp/europatch/internal/models"
)

func TestStripHTML(t *testing.T) {
	in := `<html><head><style>body { color: red; }</style>
<script>alert("hi")</script></head>
<body><h1>Plaits   Manual</h1><p>Connect the  OUT jack.</p></body></html>`

	got := stripHTML(in)
	assert.Equal(t, "Plaits Manual Connect the OUT jack.", got)
}

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		module  string
		want    float64
	}{
		{"title and body mentions", "Plaits patch ideas", "I love plaits. Plaits is great. plaits forever. plaits!", "Plaits", 1.0},
		{"title only", "Rings appreciation thread", "no mention of the module here", "Rings", 0.7},
		{"body only", "what's your favorite oscillator?", "probably plaits", "Plaits", 0.4},
		{"no mention", "general eurorack talk", "cables and cases", "Clouds", 0.3},
		{"empty module name", "anything", "anything", "", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RelevanceScore(tt.title, tt.content, tt.module), 1e-9)
		})
	}
}

func TestParseRedditSearch(t *testing.T) {
	body := []byte(`{
		"data": {
			"children": [
				{"data": {"title": "Plaits patch ideas", "selftext": "Try the wavetable model.", "permalink": "/r/modular/comments/abc/plaits_patch_ideas/"}},
				{"data": {"title": "", "selftext": "untitled post", "permalink": "/r/modular/comments/def/"}},
				{"data": {"title": "no permalink", "selftext": "", "permalink": ""}},
				{"data": {"title": "Clouds vs Beads", "selftext": "", "permalink": "/r/eurorack/comments/ghi/clouds_vs_beads/"}}
			]
		}
	}`)

	sources, err := parseRedditSearch(body, 3)
	require.NoError(t, err)
	require.Len(t, sources, 2, "posts missing a title or permalink are skipped")

	assert.Equal(t, uint(3), sources[0].ModuleID)
	assert.Equal(t, "reddit", sources[0].SourceType)
	assert.Equal(t, "https://www.reddit.com/r/modular/comments/abc/plaits_patch_ideas/", sources[0].URL)
	assert.Equal(t, "Plaits patch ideas", sources[0].Title)
	assert.Equal(t, "Try the wavetable model.", sources[0].Content)
	assert.Equal(t, "Clouds vs Beads", sources[1].Title)
}

func TestParseRedditSearchBadPayload(t *testing.T) {
	_, err := parseRedditSearch([]byte(`<html>rate limited</html>`), 1)
	assert.Error(t, err)

	sources, err := parseRedditSearch([]byte(`{}`), 1)
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestHasFreshSource(t *testing.T) {
	now := time.Now().UTC()

	assert.False(t, hasFreshSource(nil))
	assert.False(t, hasFreshSource([]models.ForumSource{
		{ScrapedAt: now.Add(-8 * 24 * time.Hour)},
	}))
	assert.True(t, hasFreshSource([]models.ForumSource{
		{ScrapedAt: now.Add(-8 * 24 * time.Hour)},
		{ScrapedAt: now.Add(-time.Hour)},
	}))
}
