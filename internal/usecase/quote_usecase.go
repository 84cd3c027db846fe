// Package usecase defines the application's use-case contracts and DTOs.
package usecase

import "context"

// QuoteOptions are the caller-selectable service options. Construct with
// DefaultQuoteOptions and override; the engine rejects a vehicle count
// below one instead of silently coercing it.
type QuoteOptions struct {
	Enclosed     bool `json:"enclosed"`
	Inoperable   bool `json:"inoperable"`
	Expedited    bool `json:"expedited"`
	VehicleCount int  `json:"vehicle_count"`
}

// DefaultQuoteOptions returns open transport, operable vehicle, standard
// service, single vehicle.
func DefaultQuoteOptions() QuoteOptions {
	return QuoteOptions{VehicleCount: 1}
}

// QuoteRequest identifies the origin and destination by region code and
// exact location name, plus the selected options.
type QuoteRequest struct {
	OriginRegion string       `json:"origin_region"`
	OriginCity   string       `json:"origin_city"`
	DestRegion   string       `json:"dest_region"`
	DestCity     string       `json:"dest_city"`
	Options      QuoteOptions `json:"options"`
}

// BreakdownItem is one priced line of a quote, in computation order.
// Discounts carry negative amounts.
type BreakdownItem struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Quote is the itemized result of one pricing run. All monetary fields are
// rounded to whole currency units; the total is rounded separately and
// floored at the configured minimum charge.
type Quote struct {
	StraightLineKm float64 `json:"straight_line_km"`
	RoadKm         float64 `json:"road_km"`

	BasePrice        float64 `json:"base_price"`
	DistancePrice    float64 `json:"distance_price"`
	RemoteCharge     float64 `json:"remote_charge"`
	FerryCharge      float64 `json:"ferry_charge"`
	NorthernCharge   float64 `json:"northern_charge"`
	EnclosedCharge   float64 `json:"enclosed_charge"`
	InoperableCharge float64 `json:"inoperable_charge"`
	FuelSurcharge    float64 `json:"fuel_surcharge"`
	ExpeditedCharge  float64 `json:"expedited_charge"`
	VolumeDiscount   float64 `json:"volume_discount"`

	TotalPrice  int64 `json:"total_price"`
	TransitDays int   `json:"transit_days"`

	Breakdown []BreakdownItem `json:"breakdown"`
}

// QuoteUsecase prices vehicle transport between two cataloged locations.
type QuoteUsecase interface {
	// Estimate produces an itemized quote, or a LocationNotFoundError
	// when either endpoint cannot be resolved. Pure computation: two
	// identical calls return identical quotes.
	Estimate(ctx context.Context, req QuoteRequest) (*Quote, error)
}
