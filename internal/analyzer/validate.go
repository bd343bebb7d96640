package analyzer

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/insight-cli/internal/model"
)

// validateProviderReport rejects provider JSON that decoded but does not
// carry the report contract: the industry field must be present and every
// score must sit inside its declared bound. Partial acceptance is not
// allowed; a rejected report falls back to the heuristic path whole.
func validateProviderReport(r *model.InsightReport) error {
	if r.Industry == "" {
		return eris.New("analyzer: provider report missing industry")
	}
	if err := r.Validate(); err != nil {
		return eris.Wrap(err, "analyzer: provider report")
	}
	return nil
}
