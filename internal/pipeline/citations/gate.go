package citations

import (
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/metrics"
)

// Gate verifies decisions against the catalog. Verification requires at
// least one citation whose tags intersect the decision's topic tags.
type Gate struct {
	catalog *Catalog
	logger  logger.Logger
}

func NewGate(catalog *Catalog, log logger.Logger) *Gate {
	return &Gate{
		catalog: catalog,
		logger:  log.With(map[string]interface{}{"stage": "citation_gate"}),
	}
}

// Verify selects matching citations for the topic tags. A failed
// verification is not an error; the caller substitutes the fixed fallback
// narrative and keeps the structured decision untouched.
func (g *Gate) Verify(topicTags []string) *Verification {
	matched := g.catalog.FindByTags(topicTags)

	verdict := "verified"
	if len(matched) == 0 {
		verdict = "degraded"
		g.logger.Warn("no citations matched; narrative will be degraded", map[string]interface{}{
			"topicTags": topicTags,
			"catalog":   g.catalog.Version(),
		})
	}
	metrics.CitationGateVerdicts.WithLabelValues(verdict).Inc()

	return &Verification{
		Verified:       len(matched) > 0,
		Citations:      matched,
		CatalogVersion: g.catalog.Version(),
	}
}
