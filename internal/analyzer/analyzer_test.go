package analyzer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/insight-cli/internal/provider"
)

// fakeProvider scripts availability and generation for fallback tests.
type fakeProvider struct {
	name      string
	available bool
	result    provider.Result
}

func (f *fakeProvider) Name() string                     { return f.name }
func (f *fakeProvider) Available(_ context.Context) bool { return f.available }
func (f *fakeProvider) Generate(_ context.Context, _ string) provider.Result {
	return f.result
}

const sampleText = "Our clinic offers trusted patient care. Contact us today."

var sampleMeta = map[string]any{
	"title":       "Acme Clinic",
	"description": "Trusted health care",
}

func heuristicJSON(t *testing.T) []byte {
	t.Helper()
	b, err := json.Marshal(HeuristicReport(sampleText, sampleMeta))
	require.NoError(t, err)
	return b
}

func TestAnalyzeText_NoProviders(t *testing.T) {
	a := New()
	report := a.AnalyzeText(context.Background(), sampleText, sampleMeta)

	b, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Equal(t, heuristicJSON(t), b)
}

func TestAnalyzeText_ProviderUnavailable(t *testing.T) {
	a := New(&fakeProvider{name: "down", available: false})
	report := a.AnalyzeText(context.Background(), sampleText, sampleMeta)

	b, _ := json.Marshal(report)
	assert.Equal(t, heuristicJSON(t), b)
}

func TestAnalyzeText_GenerationFails(t *testing.T) {
	a := New(&fakeProvider{name: "flaky", available: true, result: provider.Result{OK: false}})
	report := a.AnalyzeText(context.Background(), sampleText, sampleMeta)

	b, _ := json.Marshal(report)
	assert.Equal(t, heuristicJSON(t), b)
}

func TestAnalyzeText_UnparseableResponse(t *testing.T) {
	a := New(&fakeProvider{
		name: "chatty", available: true,
		result: provider.Result{OK: true, Text: "I could not produce JSON, sorry."},
	})
	report := a.AnalyzeText(context.Background(), sampleText, sampleMeta)

	b, _ := json.Marshal(report)
	assert.Equal(t, heuristicJSON(t), b)
}

func TestAnalyzeText_SchemaViolation(t *testing.T) {
	// Valid JSON but the overall score is out of bounds.
	a := New(&fakeProvider{
		name: "wild", available: true,
		result: provider.Result{OK: true, Text: `{"industry":"Healthcare","overall_business_score":500}`},
	})
	report := a.AnalyzeText(context.Background(), sampleText, sampleMeta)

	b, _ := json.Marshal(report)
	assert.Equal(t, heuristicJSON(t), b)
}

func TestAnalyzeText_MissingIndustryRejected(t *testing.T) {
	a := New(&fakeProvider{
		name: "vague", available: true,
		result: provider.Result{OK: true, Text: `{"report_text":"something"}`},
	})
	report := a.AnalyzeText(context.Background(), sampleText, sampleMeta)

	b, _ := json.Marshal(report)
	assert.Equal(t, heuristicJSON(t), b)
}

func TestAnalyzeText_ProviderReportAccepted(t *testing.T) {
	a := New(&fakeProvider{
		name: "good", available: true,
		result: provider.Result{OK: true, Text: "```json\n" +
			`{"industry":"Robotics","key_products":["arms"],"overall_business_score":88}` +
			"\n```"},
	})
	report := a.AnalyzeText(context.Background(), sampleText, sampleMeta)

	assert.Equal(t, "Robotics", report.Industry)
	assert.Equal(t, []string{"arms"}, report.KeyProducts)
	require.NotNil(t, report.OverallBusinessScore)
	assert.Equal(t, 88, *report.OverallBusinessScore)
	// Normalize ran: untouched lists are empty, not nil.
	assert.NotNil(t, report.Competitors)
	assert.NotNil(t, report.RawFindings)
}

func TestAnalyzeText_FirstAvailableProviderWins(t *testing.T) {
	a := New(
		&fakeProvider{name: "down", available: false},
		&fakeProvider{
			name: "up", available: true,
			result: provider.Result{OK: true, Text: `{"industry":"Logistics"}`},
		},
	)
	report := a.AnalyzeText(context.Background(), sampleText, sampleMeta)
	assert.Equal(t, "Logistics", report.Industry)
}

func TestAnalyzeText_NilMeta(t *testing.T) {
	a := New()
	report := a.AnalyzeText(context.Background(), "some text", nil)
	require.NoError(t, report.Validate())
}

func TestAnalyzeContent(t *testing.T) {
	a := New()
	report := a.AnalyzeContent(context.Background(), nil)
	require.NotNil(t, report)
	assert.Equal(t, "General Business", report.Industry)
}
