// Package analyzer turns scraped website text and metadata into a
// structured business insight report. Analysis runs through an external
// model provider when one is available and falls back to a deterministic
// keyword-rule engine otherwise; both paths produce the same report shape.
package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

// industryRules map text keywords to an industry label. Order is the
// priority order: the first rule with any keyword present wins, so a page
// mentioning both "clinic" and "platform" classifies as Healthcare.
var industryRules = []struct {
	label    string
	keywords []string
}{
	{"Healthcare", []string{"clinic", "health", "hospital", "care"}},
	{"Software / SaaS", []string{"software", "saas", "platform", "api"}},
	{"E-commerce", []string{"shop", "store", "cart", "ecommerce", "e-commerce"}},
	{"Staffing / Recruiting", []string{"recruit", "staffing", "talent", "hiring"}},
	{"Real Estate", []string{"real estate", "realtor", "property"}},
}

// audienceRules map text keywords to a target-audience label, checked in
// order independently of industry.
var audienceRules = []struct {
	label    string
	keywords []string
}{
	{"B2B / Enterprises", []string{"b2b", "enterprise", "businesses", "corporate"}},
	{"Consumers / Families", []string{"students", "parents", "families", "kids"}},
	{"Developers / IT", []string{"developer", "engineer", "it team"}},
}

// keyProductStopList drops navigation boilerplate from product hints.
var keyProductStopList = map[string]bool{
	"about":     true,
	"services":  true,
	"solutions": true,
	"contact":   true,
	"learn":     true,
	"more":      true,
	"home":      true,
}

// maxKeyProducts caps the extracted product-hint tokens.
const maxKeyProducts = 8

var tokenRe = regexp.MustCompile(`[A-Za-z][A-Za-z\-']+`)

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// matchRules returns the label of the first rule whose keywords hit, or
// fallback when none do.
func matchRules(lowered string, rules []struct {
	label    string
	keywords []string
}, fallback string) string {
	for _, r := range rules {
		if containsAny(lowered, r.keywords...) {
			return r.label
		}
	}
	return fallback
}

// classifyIndustry picks the industry label for lowered page text.
func classifyIndustry(lowered string) string {
	return matchRules(lowered, industryRules, "General Business")
}

// classifyAudience picks the target-audience label for lowered page text.
func classifyAudience(lowered string) string {
	return matchRules(lowered, audienceRules, "General Audience")
}

// headings collects H1 and H2 heading strings from metadata, in order.
func headings(meta map[string]any) []string {
	var heads []string
	heads = append(heads, model.MetaStrings(meta, "h1")...)
	heads = append(heads, model.MetaStrings(meta, "h2")...)
	return heads
}

// extractKeyProducts tokenizes heading text plus title/description/keywords
// metadata into product hints: alphabetic runs of length >= 4 (hyphen and
// apostrophe allowed mid-token), deduplicated case-insensitively with
// first-seen casing kept, stop-listed boilerplate dropped, capped at
// maxKeyProducts in encounter order.
func extractKeyProducts(heads []string, title, description, keywords string) []string {
	source := strings.Join(heads, " ") + " " + title + " " + description + " " + keywords
	tokens := tokenRe.FindAllString(source, -1)

	seen := make(map[string]bool)
	var products []string
	for _, t := range tokens {
		tt := strings.ToLower(strings.TrimSpace(t))
		if len(tt) < 4 {
			continue
		}
		if seen[tt] {
			continue
		}
		seen[tt] = true
		if !keyProductStopList[tt] {
			products = append(products, t)
		}
		if len(products) >= maxKeyProducts {
			break
		}
	}
	return products
}

// detectStrengths runs the independent strength checks, appending a fixed
// label per satisfied signal.
func detectStrengths(text, lowered string, headingCount int) []string {
	var strengths []string
	if containsAny(lowered, "award", "certified", "testimonial", "case study", "trusted") {
		strengths = append(strengths, "Trust signals (awards/testimonials)")
	}
	if headingCount >= 2 {
		strengths = append(strengths, "Clear information hierarchy")
	}
	if len(text) > 2000 {
		strengths = append(strengths, "Rich content depth")
	}
	return strengths
}

// detectOpportunities runs the independent growth-opportunity checks.
func detectOpportunities(text, lowered, keywords string) []string {
	var opportunities []string
	if !strings.Contains(lowered, "blog") && !strings.Contains(lowered, "news") {
		opportunities = append(opportunities, "Add or improve blog/news content cadence")
	}
	if keywords == "" {
		opportunities = append(opportunities, "Define meta keywords and semantic coverage")
	}
	if len(text) < 800 {
		opportunities = append(opportunities, "Expand on-page copy for SEO")
	}
	return opportunities
}

// HeuristicReport runs the deterministic rule engine over page text and
// metadata. It is total: any text (including empty) and any metadata shape
// (including nil or wrong-typed values) produce a fully populated report.
func HeuristicReport(text string, meta map[string]any) *model.InsightReport {
	lowered := strings.ToLower(text)
	title := model.MetaString(meta, "title")
	description := model.MetaString(meta, "description")
	keywords := model.MetaString(meta, "keywords")

	industry := classifyIndustry(lowered)
	audience := classifyAudience(lowered)

	heads := headings(meta)
	keyProducts := extractKeyProducts(heads, title, description, keywords)

	strengths := detectStrengths(text, lowered, len(heads))
	opportunities := detectOpportunities(text, lowered, keywords)

	business := &model.BusinessInsights{
		MarketPositioning:           marketPositioning(lowered, industry, audience),
		RevenueStreams:              revenueStreams(lowered, industry),
		CompetitiveAdvantages:       competitiveAdvantages(lowered, strengths),
		RiskFactors:                 riskFactors(text, lowered, industry),
		DigitalMaturityScore:        model.IntPtr(digitalMaturityScore(text, lowered, meta)),
		CustomerAcquisitionChannels: acquisitionChannels(lowered),
		PricingStrategy:             pricingStrategy(lowered),
		ScalabilityAssessment:       scalabilityAssessment(lowered, industry),
	}

	marketing := &model.MarketingAnalytics{
		BrandPresenceScore:         model.IntPtr(brandPresenceScore(text, lowered, meta)),
		ContentQualityScore:        model.IntPtr(contentQualityScore(text, lowered, len(heads))),
		UserExperienceScore:        model.IntPtr(userExperienceScore(text, lowered, meta)),
		SocialProofIndicators:      socialProofIndicators(text, lowered),
		ConversionOptimizationTips: conversionTips(lowered, industry),
		TargetDemographics:         targetDemographics(audience),
	}

	technical := &model.TechnicalAnalytics{
		WebsitePerformanceScore:  model.IntPtr(websitePerformanceScore(text, lowered, meta)),
		MobileOptimization:       mobileOptimization(meta),
		SecurityIndicators:       securityIndicators(lowered),
		TechnicalDebtAreas:       technicalDebtAreas(text, lowered),
		IntegrationOpportunities: integrationOpportunities(lowered, industry),
	}

	overall := overallBusinessScore(
		*business.DigitalMaturityScore,
		*marketing.BrandPresenceScore,
		*technical.WebsitePerformanceScore,
	)

	var seoSummary string
	if title != "" || description != "" {
		seoSummary = fmt.Sprintf("Title: %s | Description: %s", truncate(title, 80), truncate(description, 160))
	}

	report := &model.InsightReport{
		Industry:            industry,
		KeyProducts:         keyProducts,
		TargetAudience:      audience,
		WebsiteStrength:     strings.Join(strengths, ", "),
		GrowthOpportunities: opportunities,
		Competitors:         []string{},
		SEOSummary:          seoSummary,
		RawFindings:         map[string]any{"keyword_sample": keyProducts},
		ReportText: fmt.Sprintf(
			"This appears to be a %s website targeting %s. Content length: %d chars. Overall business score: %d/100.",
			industry, audience, len(text), overall,
		),

		BusinessInsights:   business,
		MarketingAnalytics: marketing,
		TechnicalAnalytics: technical,

		StrategicPriorities:       strategicPriorities(lowered, industry),
		QuickWins:                 quickWins(lowered, opportunities),
		LongTermGoals:             longTermGoals(industry, audience),
		InvestmentRecommendations: investmentRecommendations(lowered, industry),

		OverallBusinessScore:       model.IntPtr(overall),
		ReadinessForGrowth:         growthReadiness(overall),
		DigitalTransformationNeeds: transformationNeeds(lowered, industry),
	}
	report.Normalize()
	return report
}

// truncate limits s to max bytes.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
