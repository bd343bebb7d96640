package analyzer

import (
	"fmt"
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

// scoreBase is the starting point for every 1-10 signal score; each
// satisfied positive signal adds one, and the final sum is clamped.
const scoreBase = 5

// clampScore bounds a 1-10 signal score. Clamping happens once on the
// final sum, never on intermediate increments.
func clampScore(v int) int { return model.Clamp(v, 1, 10) }

// marketPositioning phrases the market position from tone keywords plus
// the already-derived industry and audience labels.
func marketPositioning(lowered, industry, audience string) string {
	switch {
	case containsAny(lowered, "premium", "luxury", "exclusive"):
		return fmt.Sprintf("Premium %s provider targeting %s", industry, audience)
	case containsAny(lowered, "affordable", "budget", "cost-effective"):
		return fmt.Sprintf("Cost-competitive %s solution for %s", industry, audience)
	case containsAny(lowered, "innovative", "cutting-edge", "advanced"):
		return fmt.Sprintf("Innovation-focused %s leader for %s", industry, audience)
	default:
		return fmt.Sprintf("Established %s service provider for %s", industry, audience)
	}
}

// revenueStreamRules map keyword groups to revenue-stream labels. All
// matching rules contribute, not just the first.
var revenueStreamRules = []struct {
	label    string
	keywords []string
}{
	{"Subscription/Recurring Revenue", []string{"subscription", "monthly", "annual"}},
	{"Professional Services", []string{"consulting", "advisory"}},
	{"Product Sales", []string{"product", "sell", "buy"}},
	{"Education/Training", []string{"training", "course", "workshop"}},
	{"Licensing/Partnerships", []string{"license", "partnership"}},
}

// defaultRevenueStreams supplies industry defaults when no stream keyword hits.
var defaultRevenueStreams = map[string][]string{
	"Software / SaaS": {"SaaS Subscriptions", "Professional Services"},
	"E-commerce":      {"Product Sales", "Marketplace Commissions"},
	"Healthcare":      {"Service Fees", "Insurance Billing"},
}

func revenueStreams(lowered, industry string) []string {
	var streams []string
	for _, r := range revenueStreamRules {
		if containsAny(lowered, r.keywords...) {
			streams = append(streams, r.label)
		}
	}
	if len(streams) > 0 {
		return streams
	}
	if def, ok := defaultRevenueStreams[industry]; ok {
		return append([]string(nil), def...)
	}
	return []string{"Service Revenue", "Consultancy"}
}

func competitiveAdvantages(lowered string, strengths []string) []string {
	var advantages []string
	for _, s := range strengths {
		if strings.Contains(s, "award") {
			advantages = append(advantages, "Industry Recognition & Awards")
			break
		}
	}
	if containsAny(lowered, "experience", "years") {
		advantages = append(advantages, "Established Experience")
	}
	if containsAny(lowered, "team", "expert") {
		advantages = append(advantages, "Skilled Team & Expertise")
	}
	if containsAny(lowered, "technology", "platform") {
		advantages = append(advantages, "Advanced Technology Platform")
	}
	if containsAny(lowered, "customer", "client") {
		advantages = append(advantages, "Strong Customer Relationships")
	}
	if len(advantages) == 0 {
		return []string{"Domain Expertise", "Customer Focus"}
	}
	return advantages
}

// industryRiskPairs hold the industry-specific risk pair always appended
// after the content-derived risks.
var industryRiskPairs = map[string][]string{
	"Software / SaaS": {"Technology disruption", "Data security concerns"},
	"Healthcare":      {"Regulatory compliance", "Privacy regulations"},
	"E-commerce":      {"Market competition", "Supply chain dependencies"},
}

func riskFactors(text, lowered, industry string) []string {
	var risks []string
	if len(text) < 500 {
		risks = append(risks, "Limited online presence")
	}
	if !strings.Contains(lowered, "contact") {
		risks = append(risks, "Unclear contact/communication channels")
	}
	pair, ok := industryRiskPairs[industry]
	if !ok {
		pair = []string{"Market competition", "Economic sensitivity"}
	}
	return append(risks, pair...)
}

// digitalMaturityScore starts at base 5 and adds one per digital signal:
// Open Graph metadata, API/integration mentions, mobile presence,
// analytics/data mentions, and rich content length.
func digitalMaturityScore(text, lowered string, meta map[string]any) int {
	score := scoreBase
	if model.MetaHasMap(meta, "og") {
		score++
	}
	if containsAny(lowered, "api", "integration") {
		score++
	}
	if containsAny(lowered, "mobile", "app") {
		score++
	}
	if containsAny(lowered, "analytics", "data") {
		score++
	}
	if len(text) > 1500 {
		score++
	}
	return clampScore(score)
}

var acquisitionChannelRules = []struct {
	label    string
	keywords []string
}{
	{"Search Engine Optimization", []string{"seo", "search"}},
	{"Social Media Marketing", []string{"social", "facebook", "linkedin"}},
	{"Referral Programs", []string{"referral", "partner"}},
	{"Content Marketing", []string{"content", "blog"}},
	{"Email Marketing", []string{"email", "newsletter"}},
}

func acquisitionChannels(lowered string) []string {
	var channels []string
	for _, r := range acquisitionChannelRules {
		if containsAny(lowered, r.keywords...) {
			channels = append(channels, r.label)
		}
	}
	if len(channels) == 0 {
		return []string{"Website Traffic", "Word of Mouth", "Direct Marketing"}
	}
	return channels
}

// pricingStrategy picks a single label; rules are checked in order and the
// first match wins.
func pricingStrategy(lowered string) string {
	switch {
	case strings.Contains(lowered, "free") && containsAny(lowered, "trial", "demo"):
		return "Freemium/Trial-based pricing"
	case containsAny(lowered, "custom", "quote"):
		return "Custom/Enterprise pricing"
	case containsAny(lowered, "subscription", "monthly"):
		return "Subscription-based pricing"
	case containsAny(lowered, "package", "tier"):
		return "Tiered pricing packages"
	default:
		return "Value-based pricing strategy"
	}
}

func scalabilityAssessment(lowered, industry string) string {
	switch {
	case containsAny(lowered, "automation", "platform", "saas"):
		return "High scalability potential with digital infrastructure"
	case strings.Contains(lowered, "service") && industry != "Software / SaaS":
		return "Moderate scalability - service-based model may require scaling teams"
	case strings.Contains(lowered, "product"):
		return "Good scalability potential with product standardization"
	default:
		return "Scalability depends on operational efficiency improvements"
	}
}
