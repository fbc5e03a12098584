package maps

import (
	"oh-server/models"
)

// MapsPageAPI defines the interface for resolving place share links into raw
// page documents.
type MapsPageAPI interface {
	ResolvePlacePage(placeLink string) (*models.RawDocument, error)
}
