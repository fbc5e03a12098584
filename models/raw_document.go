package models

// RawDocument is the fetched body of a place page together with the
// canonical URL the share link redirected to.
type RawDocument struct {
	PlaceLink    string
	CanonicalURL string
	Body         string
}
