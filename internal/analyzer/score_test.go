package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallBusinessScore(t *testing.T) {
	// round(1.25 * (3*8 + 3*8 + 2*6)) = 75
	assert.Equal(t, 75, overallBusinessScore(8, 8, 6))
	// Maximum sub-scores land exactly on 100.
	assert.Equal(t, 100, overallBusinessScore(10, 10, 10))
	// Minimum sub-scores stay well above the lower clamp.
	assert.Equal(t, 10, overallBusinessScore(1, 1, 1))
}

func TestOverallBusinessScore_RoundsHalfUp(t *testing.T) {
	// 1.25 * 42 = 52.5 rounds to 53, not truncates to 52.
	assert.Equal(t, 53, overallBusinessScore(5, 5, 6))
}

func TestGrowthReadiness(t *testing.T) {
	assert.Equal(t, "High - Ready for aggressive growth", growthReadiness(80))
	assert.Equal(t, "High - Ready for aggressive growth", growthReadiness(100))
	assert.Equal(t, "Medium - Good foundation for growth", growthReadiness(79))
	assert.Equal(t, "Medium - Good foundation for growth", growthReadiness(60))
	assert.Equal(t, "Basic - Needs improvement before scaling", growthReadiness(59))
	assert.Equal(t, "Basic - Needs improvement before scaling", growthReadiness(40))
	assert.Equal(t, "Low - Requires significant development", growthReadiness(39))
}

func TestDigitalMaturityScore_ClampsAtTen(t *testing.T) {
	text := strings.Repeat("x", 1600) + " api mobile analytics"
	meta := map[string]any{"og": map[string]string{"og:title": "t"}}

	assert.Equal(t, 10, digitalMaturityScore(text, strings.ToLower(text), meta))
}

func TestDigitalMaturityScore_Base(t *testing.T) {
	assert.Equal(t, scoreBase, digitalMaturityScore("plain", "plain", nil))
}

func TestBrandPresenceScore(t *testing.T) {
	meta := map[string]any{
		"title":       "A Long Enough Title",
		"description": strings.Repeat("d", 60),
		"og":          map[string]string{"og:title": "t"},
	}
	text := strings.Repeat("x", 1100) + " our brand mission"

	assert.Equal(t, 10, brandPresenceScore(text, strings.ToLower(text), meta))
	assert.Equal(t, scoreBase, brandPresenceScore("short", "short", nil))
}

func TestContentQualityScore(t *testing.T) {
	// 5 base + min(2, 6/2)=2 headings + min(2, 2500/1000)=2 depth + 1 language = 10
	text := strings.Repeat("x", 2500) + " professional"
	assert.Equal(t, 10, contentQualityScore(text, strings.ToLower(text), 6))

	// One heading contributes nothing (1/2 == 0).
	assert.Equal(t, scoreBase, contentQualityScore("short", "short", 1))
}

func TestUserExperienceScore(t *testing.T) {
	text := strings.Repeat("x", 900) + " contact about easy"
	assert.Equal(t, 10, userExperienceScore(text, strings.ToLower(text), map[string]any{"description": "d"}))
	assert.Equal(t, scoreBase, userExperienceScore("", "", nil))
}

func TestWebsitePerformanceScore(t *testing.T) {
	meta := map[string]any{
		"title":       "t",
		"description": "d",
		"og":          map[string]string{"og:title": "t"},
	}
	text := strings.Repeat("x", 600) + " fast"
	assert.Equal(t, 10, websitePerformanceScore(text, strings.ToLower(text), meta))
	assert.Equal(t, scoreBase, websitePerformanceScore("", "", nil))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 10, clampScore(12))
	assert.Equal(t, 1, clampScore(0))
	assert.Equal(t, 7, clampScore(7))
}
