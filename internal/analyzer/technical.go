package analyzer

import (
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

func websitePerformanceScore(text, lowered string, meta map[string]any) int {
	score := scoreBase
	if model.MetaString(meta, "title") != "" {
		score++
	}
	if model.MetaString(meta, "description") != "" {
		score++
	}
	if model.MetaHasMap(meta, "og") {
		score++
	}
	if len(text) > 500 {
		score++
	}
	if containsAny(lowered, "fast", "quick") {
		score++
	}
	return clampScore(score)
}

// mobileOptimization inspects the viewport meta tag only; deeper device
// checks require rendering the page.
func mobileOptimization(meta map[string]any) string {
	viewport := strings.ToLower(model.MetaString(meta, "viewport"))
	if strings.Contains(viewport, "width=device-width") {
		return "Mobile-responsive design detected"
	}
	return "Mobile optimization needs verification"
}

func securityIndicators(lowered string) []string {
	var indicators []string
	if containsAny(lowered, "secure", "ssl", "https") {
		indicators = append(indicators, "SSL/HTTPS security")
	}
	if strings.Contains(lowered, "privacy") {
		indicators = append(indicators, "Privacy policy present")
	}
	if containsAny(lowered, "gdpr", "compliance") {
		indicators = append(indicators, "Regulatory compliance mentioned")
	}
	if len(indicators) == 0 {
		return []string{"Basic security measures recommended"}
	}
	return indicators
}

func technicalDebtAreas(text, lowered string) []string {
	var areas []string
	if len(text) < 300 {
		areas = append(areas, "Limited content depth")
	}
	if containsAny(lowered, "update", "maintenance") {
		areas = append(areas, "Regular content updates needed")
	}
	if len(areas) == 0 {
		return []string{"Regular maintenance and updates recommended"}
	}
	return areas
}

// industryIntegrations adds one industry-specific opportunity after the
// keyword-driven ones.
var industryIntegrations = map[string]string{
	"E-commerce":      "Inventory management system",
	"Software / SaaS": "API ecosystem development",
}

func integrationOpportunities(lowered, industry string) []string {
	var opportunities []string
	if containsAny(lowered, "crm", "customer") {
		opportunities = append(opportunities, "CRM system integration")
	}
	if containsAny(lowered, "payment", "billing") {
		opportunities = append(opportunities, "Payment gateway optimization")
	}
	if strings.Contains(lowered, "analytics") {
		opportunities = append(opportunities, "Advanced analytics platform")
	}
	if opp, ok := industryIntegrations[industry]; ok {
		opportunities = append(opportunities, opp)
	}
	if len(opportunities) == 0 {
		return []string{"Third-party tool integrations", "Automation platforms"}
	}
	return opportunities
}
