package insight

import (
	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/models"
)

// Engine selects insight blocks for a record based on its type and the
// knowledge sources the record owner has enabled. The engine is stateless
// after construction and safe for concurrent use.
type Engine struct {
	// rulesByType indexes the rule table by raw record type. Dispatch
	// happens on the type as stored, not its canonical alias — legacy
	// names like "bloodwork" and "appointment" have their own entries.
	rulesByType map[string][]rule

	logger *logger.Logger
}

// NewEngine builds the dispatch index from the hand-authored rule table.
func NewEngine(logger *logger.Logger) *Engine {
	rulesByType := make(map[string][]rule)
	for _, set := range ruleSets {
		for _, recordType := range set.recordTypes {
			rulesByType[recordType] = set.rules
		}
	}

	logger.Debug().Int("record_types", len(rulesByType)).Msg("insight engine created")
	return &Engine{
		rulesByType: rulesByType,
		logger:      logger,
	}
}

// GenerateInsights returns the per-perspective insight map for the record,
// restricted to perspectives whose gating knowledge source appears in
// enabledSources. Perspectives irrelevant to the record type are never
// emitted, enabled or not. The result preserves the authoring order of the
// matched branch and is empty — never nil, never an error — when the record
// type matches no branch.
func (e *Engine) GenerateInsights(record models.HealthRecord, enabledSources []string) *models.InsightMap {
	insights := models.NewInsightMap()

	rules, ok := e.rulesByType[record.RecordType]
	if !ok {
		return insights
	}

	enabled := make(map[string]struct{}, len(enabledSources))
	for _, source := range enabledSources {
		enabled[source] = struct{}{}
	}

	for _, r := range rules {
		if _, on := enabled[r.requiredSource]; on {
			insights.Set(r.perspective, r.block)
		}
	}

	return insights
}
