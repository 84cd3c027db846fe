package usecase

import "context"

// RegionSummary is the list form of a region.
type RegionSummary struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Multiplier    float64 `json:"multiplier"`
	Northern      bool    `json:"northern"`
	LocationCount int     `json:"location_count"`
}

// LocationDetail is the API shape of a cataloged city.
type LocationDetail struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Population int     `json:"population,omitempty"`
	Remote     bool    `json:"remote"`
	Northern   bool    `json:"northern"`
	Ferry      bool    `json:"ferry"`
}

// RegionDetail is a region with its full location list.
type RegionDetail struct {
	RegionSummary
	Locations []LocationDetail `json:"locations"`
}

// CatalogUsecase exposes the geography catalog to the delivery layer.
type CatalogUsecase interface {
	// Regions lists every region in catalog order.
	Regions(ctx context.Context) []RegionSummary

	// Region returns one region with locations, or a
	// LocationNotFoundError with an empty location name when the code is
	// unknown.
	Region(ctx context.Context, code string) (*RegionDetail, error)
}
