package analyzer

import (
	"math"
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

// industryPriorityPairs append two industry-specific strategic priorities.
var industryPriorityPairs = map[string][]string{
	"Software / SaaS": {"Product development", "Market expansion"},
	"Healthcare":      {"Quality improvement", "Compliance management"},
	"E-commerce":      {"Inventory optimization", "Customer acquisition"},
}

func strategicPriorities(lowered, industry string) []string {
	var priorities []string
	if strings.Contains(lowered, "customer") {
		priorities = append(priorities, "Enhance customer experience")
	}
	if containsAny(lowered, "growth", "scale") {
		priorities = append(priorities, "Scale operations efficiently")
	}
	pair, ok := industryPriorityPairs[industry]
	if !ok {
		pair = []string{"Market positioning", "Operational efficiency"}
	}
	return append(priorities, pair...)
}

// quickWins derives fast improvements from the detected growth
// opportunities plus a contact-information check.
func quickWins(lowered string, opportunities []string) []string {
	var wins []string
	for _, opp := range opportunities {
		lowerOpp := strings.ToLower(opp)
		if strings.Contains(lowerOpp, "seo") {
			wins = append(wins, "Implement basic SEO improvements")
		} else if strings.Contains(lowerOpp, "content") {
			wins = append(wins, "Expand content marketing")
		}
	}
	if !strings.Contains(lowered, "contact") {
		wins = append(wins, "Add clear contact information")
	}
	if len(wins) == 0 {
		return []string{"Optimize website conversion", "Enhance online presence"}
	}
	return wins
}

func longTermGoals(industry, audience string) []string {
	goals := []string{
		"Achieve market leadership position",
		"Build sustainable competitive advantage",
	}
	if strings.Contains(audience, "B2B") {
		goals = append(goals, "Develop enterprise-grade solutions")
	} else {
		goals = append(goals, "Scale consumer market penetration")
	}
	switch industry {
	case "Software / SaaS":
		goals = append(goals, "Build comprehensive platform ecosystem")
	case "Healthcare":
		goals = append(goals, "Establish centers of excellence")
	}
	return goals
}

// industryInvestmentPairs append two industry-specific recommendations.
var industryInvestmentPairs = map[string][]string{
	"Software / SaaS": {"R&D investment", "Cloud infrastructure"},
	"E-commerce":      {"Inventory systems", "Customer acquisition"},
}

func investmentRecommendations(lowered, industry string) []string {
	var recs []string
	if containsAny(lowered, "technology", "digital") {
		recs = append(recs, "Technology infrastructure upgrade")
	}
	if containsAny(lowered, "team", "hiring") {
		recs = append(recs, "Human capital investment")
	}
	pair, ok := industryInvestmentPairs[industry]
	if !ok {
		pair = []string{"Marketing automation", "Process optimization"}
	}
	return append(recs, pair...)
}

func transformationNeeds(lowered, industry string) []string {
	var needs []string
	if !strings.Contains(lowered, "digital") {
		needs = append(needs, "Digital strategy development")
	}
	if !strings.Contains(lowered, "automation") {
		needs = append(needs, "Process automation")
	}
	if !strings.Contains(lowered, "data") && !strings.Contains(lowered, "analytics") {
		needs = append(needs, "Data analytics implementation")
	}
	if industry == "Healthcare" && !strings.Contains(lowered, "electronic") {
		needs = append(needs, "Electronic health records")
	} else if industry == "E-commerce" && !strings.Contains(lowered, "ai") {
		needs = append(needs, "AI-powered recommendations")
	}
	if len(needs) == 0 {
		return []string{"Cloud migration", "Digital workflow optimization"}
	}
	return needs
}

// overallBusinessScore combines the three headline signals with fixed
// weights 3:3:2, scaled by 1.25 and clamped to [1, 100].
func overallBusinessScore(digital, brand, performance int) int {
	weighted := 1.25 * float64(digital*3+brand*3+performance*2)
	return model.Clamp(int(math.Round(weighted)), 1, 100)
}

// growthBands map score thresholds to readiness labels, highest first.
var growthBands = []struct {
	min   int
	label string
}{
	{80, "High - Ready for aggressive growth"},
	{60, "Medium - Good foundation for growth"},
	{40, "Basic - Needs improvement before scaling"},
}

func growthReadiness(score int) string {
	for _, b := range growthBands {
		if score >= b.min {
			return b.label
		}
	}
	return "Low - Requires significant development"
}
