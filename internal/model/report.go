package model

import (
	"github.com/rotisserie/eris"
)

// AnalysisRequest is the inbound request for an analysis: either a website
// URL or a free-text business description.
type AnalysisRequest struct {
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// SiteContent holds the fetched page text plus extracted metadata. It is
// produced by the scraper and consumed read-only by the analyzer.
type SiteContent struct {
	URL   string         `json:"url,omitempty"`
	Text  string         `json:"text"`
	Meta  map[string]any `json:"meta"`
	Links []string       `json:"links"`
}

// BusinessInsights covers market positioning, revenue, and risk signals.
type BusinessInsights struct {
	MarketPositioning           string   `json:"market_positioning,omitempty"`
	RevenueStreams              []string `json:"revenue_streams"`
	CompetitiveAdvantages       []string `json:"competitive_advantages"`
	RiskFactors                 []string `json:"risk_factors"`
	DigitalMaturityScore        *int     `json:"digital_maturity_score,omitempty"`
	CustomerAcquisitionChannels []string `json:"customer_acquisition_channels"`
	PricingStrategy             string   `json:"pricing_strategy,omitempty"`
	ScalabilityAssessment       string   `json:"scalability_assessment,omitempty"`
}

// MarketingAnalytics covers brand, content, and conversion signals.
type MarketingAnalytics struct {
	BrandPresenceScore         *int     `json:"brand_presence_score,omitempty"`
	ContentQualityScore        *int     `json:"content_quality_score,omitempty"`
	UserExperienceScore        *int     `json:"user_experience_score,omitempty"`
	SocialProofIndicators      []string `json:"social_proof_indicators"`
	ConversionOptimizationTips []string `json:"conversion_optimization_tips"`
	TargetDemographics         string   `json:"target_demographics,omitempty"`
}

// TechnicalAnalytics covers website performance and infrastructure signals.
type TechnicalAnalytics struct {
	WebsitePerformanceScore  *int     `json:"website_performance_score,omitempty"`
	MobileOptimization       string   `json:"mobile_optimization,omitempty"`
	SecurityIndicators       []string `json:"security_indicators"`
	TechnicalDebtAreas       []string `json:"technical_debt_areas"`
	IntegrationOpportunities []string `json:"integration_opportunities"`
}

// InsightReport is the aggregate analysis output. Every list field is
// non-nil once the report leaves the analyzer; score fields are either nil
// or within their documented bounds.
type InsightReport struct {
	Industry            string         `json:"industry,omitempty"`
	KeyProducts         []string       `json:"key_products"`
	TargetAudience      string         `json:"target_audience,omitempty"`
	WebsiteStrength     string         `json:"website_strength,omitempty"`
	GrowthOpportunities []string       `json:"growth_opportunities"`
	Competitors         []string       `json:"competitors"`
	SEOSummary          string         `json:"seo_summary,omitempty"`
	SentimentSummary    string         `json:"sentiment_summary,omitempty"`
	RawFindings         map[string]any `json:"raw_findings"`
	ReportText          string         `json:"report_text,omitempty"`

	BusinessInsights   *BusinessInsights   `json:"business_insights,omitempty"`
	MarketingAnalytics *MarketingAnalytics `json:"marketing_analytics,omitempty"`
	TechnicalAnalytics *TechnicalAnalytics `json:"technical_analytics,omitempty"`

	StrategicPriorities       []string `json:"strategic_priorities"`
	QuickWins                 []string `json:"quick_wins"`
	LongTermGoals             []string `json:"long_term_goals"`
	InvestmentRecommendations []string `json:"investment_recommendations"`

	OverallBusinessScore       *int     `json:"overall_business_score,omitempty"`
	ReadinessForGrowth         string   `json:"readiness_for_growth,omitempty"`
	DigitalTransformationNeeds []string `json:"digital_transformation_needs"`
}

// IntPtr returns a pointer to v. Convenience for optional score fields.
func IntPtr(v int) *int { return &v }

// Clamp bounds v to [lo, hi] inclusive.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// checkScore verifies a score pointer is nil or within [lo, hi].
func checkScore(name string, v *int, lo, hi int) error {
	if v == nil {
		return nil
	}
	if *v < lo || *v > hi {
		return eris.Errorf("model: %s out of range: %d not in [%d, %d]", name, *v, lo, hi)
	}
	return nil
}

// Validate checks that every score field lies within its declared bound.
// Reports produced by the heuristic engine always pass; reports decoded
// from a provider response are rejected here when out of bounds.
func (r *InsightReport) Validate() error {
	if err := checkScore("overall_business_score", r.OverallBusinessScore, 1, 100); err != nil {
		return err
	}
	if bi := r.BusinessInsights; bi != nil {
		if err := checkScore("digital_maturity_score", bi.DigitalMaturityScore, 1, 10); err != nil {
			return err
		}
	}
	if ma := r.MarketingAnalytics; ma != nil {
		for _, s := range []struct {
			name string
			v    *int
		}{
			{"brand_presence_score", ma.BrandPresenceScore},
			{"content_quality_score", ma.ContentQualityScore},
			{"user_experience_score", ma.UserExperienceScore},
		} {
			if err := checkScore(s.name, s.v, 1, 10); err != nil {
				return err
			}
		}
	}
	if ta := r.TechnicalAnalytics; ta != nil {
		if err := checkScore("website_performance_score", ta.WebsitePerformanceScore, 1, 10); err != nil {
			return err
		}
	}
	return nil
}

// Normalize replaces nil list and map fields with empty values so the
// rendering layer never sees null collections.
func (r *InsightReport) Normalize() {
	fill := func(s *[]string) {
		if *s == nil {
			*s = []string{}
		}
	}
	fill(&r.KeyProducts)
	fill(&r.GrowthOpportunities)
	fill(&r.Competitors)
	fill(&r.StrategicPriorities)
	fill(&r.QuickWins)
	fill(&r.LongTermGoals)
	fill(&r.InvestmentRecommendations)
	fill(&r.DigitalTransformationNeeds)
	if r.RawFindings == nil {
		r.RawFindings = map[string]any{}
	}
	if bi := r.BusinessInsights; bi != nil {
		fill(&bi.RevenueStreams)
		fill(&bi.CompetitiveAdvantages)
		fill(&bi.RiskFactors)
		fill(&bi.CustomerAcquisitionChannels)
	}
	if ma := r.MarketingAnalytics; ma != nil {
		fill(&ma.SocialProofIndicators)
		fill(&ma.ConversionOptimizationTips)
	}
	if ta := r.TechnicalAnalytics; ta != nil {
		fill(&ta.SecurityIndicators)
		fill(&ta.TechnicalDebtAreas)
		fill(&ta.IntegrationOpportunities)
	}
}
