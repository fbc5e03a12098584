package maps

import (
	"log"

	"oh-server/api"
	"oh-server/models"
)

// MapsPageClient embeds the common PageFetcher
type MapsPageClient struct {
	*api.PageFetcher // Embed PageFetcher to reuse its methods and properties
}

// NewMapsPageClient creates a new instance of MapsPageClient
func NewMapsPageClient(pageFetcher *api.PageFetcher) *MapsPageClient {
	return &MapsPageClient{
		PageFetcher: pageFetcher,
	}
}

// ResolvePlacePage follows the share link to the canonical place page and
// returns its raw body.
func (c *MapsPageClient) ResolvePlacePage(placeLink string) (*models.RawDocument, error) {
	doc, err := c.FetchCanonical(placeLink)
	if err != nil {
		return nil, err
	}
	log.Printf("[MapsPageClient] Resolved %s -> %s (%d bytes)", placeLink, doc.CanonicalURL, len(doc.Body))
	return doc, nil
}
