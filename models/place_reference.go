package models

import "fmt"

// PlaceReference identifies a physical venue through its shareable map link.
// The link is the identity key; the display name is only used for output.
type PlaceReference struct {
	PlaceLink   string `json:"place_link"`
	DisplayName string `json:"display_name"`
}

func (p *PlaceReference) ToString() string {
	return fmt.Sprintf("PlaceReference(name=%s, link=%s)", p.DisplayName, p.PlaceLink)
}
