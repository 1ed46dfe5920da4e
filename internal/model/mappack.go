package model

import (
	"fmt"
	"strings"
)

// MappackRecord is one mappack from a catalog response.
type MappackRecord struct {
	ID            int
	Name          string
	OwnerName     string
	MapCount      int
	Description   string
	DownloadCount int
}

// Label returns the one-line list representation.
func (p *MappackRecord) Label() string {
	return fmt.Sprintf("%s — %s (%d maps)", p.Name, p.OwnerName, p.MapCount)
}

func (p *MappackRecord) isListItem() {}

// InfoText renders the multi-line details panel text.
func (p *MappackRecord) InfoText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Name)
	fmt.Fprintf(&b, "ID: %d\n", p.ID)
	fmt.Fprintf(&b, "Owner: %s\n", p.OwnerName)
	fmt.Fprintf(&b, "Map Count: %d\n", p.MapCount)
	fmt.Fprintf(&b, "Downloads: %d\n", p.DownloadCount)
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}
	return b.String()
}
