package extract

import (
	"log"

	"oh-server/models"
)

// Strategy is one pattern-based attempt at recovering weekly hours from a raw
// place page. Strategies return whatever days they could recover; the chain
// decides whether that is enough.
type Strategy interface {
	Name() string
	Extract(body string) models.PartialWeekly
}

// Extractor runs strategies in fixed priority order and returns the first
// result covering at least minWeekdays distinct days. Upstream pages have
// shipped at least three distinct embeddings of the same schedule over time,
// so the order goes newest format first, legacy last.
type Extractor struct {
	strategies  []Strategy
	minWeekdays int
}

// NewExtractor builds the default strategy chain.
func NewExtractor(minWeekdays int) *Extractor {
	return &Extractor{
		strategies: []Strategy{
			NewPeriodListStrategy(),
			NewAmPmTextStrategy(),
			NewLegacyHourArrayStrategy(),
		},
		minWeekdays: minWeekdays,
	}
}

// Extract returns the recovered days plus the name of the strategy that
// produced them. Below the confidence threshold the document is reported as
// insufficient rather than served as a mostly-empty schedule.
func (e *Extractor) Extract(doc *models.RawDocument) (models.PartialWeekly, string, error) {
	for _, strategy := range e.strategies {
		partial := strategy.Extract(doc.Body)
		if len(partial) >= e.minWeekdays {
			log.Printf("[Extractor] Strategy %s recovered %d weekdays for %s",
				strategy.Name(), len(partial), doc.PlaceLink)
			return partial, strategy.Name(), nil
		}
		if len(partial) > 0 {
			log.Printf("[Extractor] Strategy %s recovered only %d weekdays for %s, trying next",
				strategy.Name(), len(partial), doc.PlaceLink)
		}
	}
	return nil, "", models.ErrInsufficientData
}
