// Package v1 contains the HTTP handlers of the v1 API.
package v1

import (
	"github.com/carbonledger/backend/internal/emission"
	"github.com/carbonledger/backend/internal/ingest"
	"github.com/carbonledger/backend/internal/mapping"
	"github.com/carbonledger/backend/internal/report"
	"github.com/carbonledger/backend/internal/store"
)

// suggestionLimit is the number of merchant suggestions returned.
const suggestionLimit = 5

// Controller holds the services the handlers work with.
type Controller struct {
	Store     *store.Gorm
	Ingestor  *ingest.Ingestor
	Mappings  *mapping.Service
	Suggester *mapping.Suggester
	Emissions *emission.Calculator
	Reports   *report.Service
}

// New returns a controller backed by the store. The mapping services and
// the emission calculator are created from the store.
func New(s *store.Gorm, ingestor *ingest.Ingestor, reports *report.Service) Controller {
	return Controller{
		Store:     s,
		Ingestor:  ingestor,
		Mappings:  mapping.NewService(s, s, s),
		Suggester: mapping.NewSuggester(s),
		Emissions: emission.NewCalculator(s),
		Reports:   reports,
	}
}
