package maps

import (
	"fmt"

	"oh-server/config"
	"oh-server/models"
	"oh-server/util"
)

// MapsPageClientMock serves a captured place page from resources instead of
// hitting the network.
type MapsPageClientMock struct {
}

// NewMapsPageClientMock creates a new instance of MapsPageClientMock
func NewMapsPageClientMock() *MapsPageClientMock {
	return &MapsPageClientMock{}
}

// ResolvePlacePage returns the fixture page body for any place link.
func (c *MapsPageClientMock) ResolvePlacePage(placeLink string) (*models.RawDocument, error) {
	body, err := util.ReadRawDocumentBody(config.GetResourcePath(config.PLACE_PAGE_FIXTURE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read place page fixture")
		return nil, err
	}

	return &models.RawDocument{
		PlaceLink:    placeLink,
		CanonicalURL: placeLink,
		Body:         body,
	}, nil
}
