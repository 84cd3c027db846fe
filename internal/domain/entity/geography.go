// Package entity defines the geography domain model the quote engine
// prices against.
package entity

import "github.com/paulmach/orb"

// Region is a province or territory level grouping of serviceable
// locations.
type Region struct {
	// Code is the short identifier, unique across the catalog ("ON", "YT").
	Code string `json:"code"`

	// Name is the display name ("Ontario").
	Name string `json:"name"`

	// Multiplier is the regional cost multiplier. Informational; the
	// engine prices through surcharges, not this factor.
	Multiplier float64 `json:"multiplier"`

	// Northern marks the whole region as part of the far-north service
	// zone, independent of per-location flags.
	Northern bool `json:"northern"`

	Locations []Location `json:"locations"`
}

// Location is a serviceable city or town within a region.
type Location struct {
	// Name is unique within the owning region.
	Name string `json:"name"`

	// Point is the coordinate, orb convention: (lng, lat).
	Point orb.Point `json:"point"`

	// Population is informational and may be zero for small communities.
	Population int `json:"population,omitempty"`

	// Remote, Northern, and Ferry are independent service attributes.
	// A location may carry any combination of the three.
	Remote   bool `json:"remote"`
	Northern bool `json:"northern"`
	Ferry    bool `json:"ferry"`
}

// Lat returns the latitude in decimal degrees.
func (l Location) Lat() float64 {
	return l.Point.Lat()
}

// Lng returns the longitude in decimal degrees.
func (l Location) Lng() float64 {
	return l.Point.Lon()
}

// Find returns the named location within the region, matching exactly.
func (r *Region) Find(name string) (*Location, bool) {
	for i := range r.Locations {
		if r.Locations[i].Name == name {
			return &r.Locations[i], true
		}
	}

	return nil, false
}
