package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"haulquote/config"
	"haulquote/internal/domain/entity"
	domainerrors "haulquote/internal/domain/errors"
	"haulquote/internal/domain/repository"
	"haulquote/internal/infra/geo"
	"haulquote/internal/usecase"

	"go.uber.org/fx"
)

// Breakdown labels, emitted in computation order.
const (
	labelFlatRoute  = "Base & Distance (Flat Route Rate)"
	labelBaseRate   = "Base Rate"
	labelDistance   = "Distance Charge"
	labelRemote     = "Remote Area Surcharge"
	labelFerry      = "Ferry Surcharge"
	labelNorthern   = "Northern Territory Surcharge"
	labelEnclosed   = "Enclosed Transport"
	labelInoperable = "Inoperable Vehicle Surcharge"
	labelFuel       = "Fuel Surcharge"
	labelExpedited  = "Expedited Service"
	labelDiscount   = "Volume Discount"
)

// distanceTier is one marginal band: every quoted kilometre inside the band
// is charged upTo's rate, like a tax bracket. upToKm of +Inf marks the
// final band.
type distanceTier struct {
	upToKm float64
	rate   float64
}

// routeKey identifies a directional lane. The reverse lane is a distinct
// key; it is never derived from this one.
type routeKey struct {
	originRegion string
	originCity   string
	destRegion   string
	destCity     string
}

type volumeDiscount struct {
	vehicles int
	fraction float64
}

type quoteService struct {
	catalog repository.GeographyRepository
	rates   *config.PricingConfig
	logger  *slog.Logger

	tiers      []distanceTier
	flatRoutes map[routeKey]float64
	discounts  []volumeDiscount // ascending by vehicle count
}

// QuoteServiceParams holds dependencies for the quote service, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	Catalog repository.GeographyRepository
	Config  *config.Config
	Logger  *slog.Logger `optional:"true"`
}

// NewQuoteService builds the pricing engine from the configured rate card.
// The engine holds only immutable tables after construction and is safe for
// concurrent use.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	rates := params.Config.Pricing
	if rates == nil {
		rates = config.DefaultPricing()
	}

	tiers := make([]distanceTier, 0, len(rates.Tiers))
	for _, t := range rates.Tiers {
		upTo := t.UpToKm
		if upTo <= 0 {
			upTo = math.Inf(1)
		}
		tiers = append(tiers, distanceTier{upToKm: upTo, rate: t.RatePerKm})
	}

	flatRoutes := make(map[routeKey]float64, len(rates.FlatRoutes))
	for _, r := range rates.FlatRoutes {
		key := routeKey{
			originRegion: r.OriginRegion,
			originCity:   r.OriginCity,
			destRegion:   r.DestRegion,
			destCity:     r.DestCity,
		}
		flatRoutes[key] = r.Price
	}

	discounts := make([]volumeDiscount, 0, len(rates.VolumeDiscounts))
	for _, d := range rates.VolumeDiscounts {
		discounts = append(discounts, volumeDiscount{vehicles: d.Vehicles, fraction: d.Fraction})
	}
	sort.Slice(discounts, func(i, j int) bool {
		return discounts[i].vehicles < discounts[j].vehicles
	})

	return &quoteService{
		catalog:    params.Catalog,
		rates:      rates,
		logger:     params.Logger,
		tiers:      tiers,
		flatRoutes: flatRoutes,
		discounts:  discounts,
	}
}

// Estimate prices one transport request. Single pass, no mutation of shared
// state; the only failure modes are invalid options and an unresolvable
// endpoint.
func (s *quoteService) Estimate(ctx context.Context, req usecase.QuoteRequest) (*usecase.Quote, error) {
	if req.Options.VehicleCount < 1 {
		return nil, domainerrors.ErrInvalidQuoteOptions.WithDetails(
			fmt.Sprintf("vehicle count must be at least 1, got %d", req.Options.VehicleCount))
	}

	origin, originRegion, err := s.resolve(req.OriginRegion, req.OriginCity)
	if err != nil {
		return nil, err
	}
	dest, destRegion, err := s.resolve(req.DestRegion, req.DestCity)
	if err != nil {
		return nil, err
	}

	straightKm := geo.HaversineKm(origin.Point, dest.Point)
	roadKm := geo.RoadKm(straightKm, s.rates.RoadFactor)

	quote := &usecase.Quote{
		StraightLineKm: straightKm,
		RoadKm:         roadKm,
	}

	// Base + distance: a negotiated flat lane replaces both line items.
	key := routeKey{
		originRegion: req.OriginRegion,
		originCity:   req.OriginCity,
		destRegion:   req.DestRegion,
		destCity:     req.DestCity,
	}
	var subtotal float64
	if flat, ok := s.flatRoutes[key]; ok {
		subtotal = flat
		quote.BasePrice = roundMoney(flat)
		s.addLine(quote, labelFlatRoute, flat)
	} else {
		distancePrice := s.tieredPrice(roadKm)
		subtotal = s.rates.BaseRate + distancePrice
		quote.BasePrice = roundMoney(s.rates.BaseRate)
		quote.DistancePrice = roundMoney(distancePrice)
		s.addLine(quote, labelBaseRate, s.rates.BaseRate)
		s.addLine(quote, labelDistance, distancePrice)
	}

	// Remote and northern are both fractions of the pre-surcharge
	// subtotal; they stack additively, never compound on each other.
	preSurcharge := subtotal

	if origin.Remote || dest.Remote {
		charge := preSurcharge * (s.rates.RemoteMultiplier - 1)
		quote.RemoteCharge = roundMoney(charge)
		subtotal += charge
		s.addLine(quote, labelRemote, charge)
	}

	if origin.Ferry || dest.Ferry {
		charge := s.rates.FerryCharge
		// Two ferry endpoints in different regions means two separate
		// crossings; within one region the same crossing serves both.
		if origin.Ferry && dest.Ferry && originRegion.Code != destRegion.Code {
			charge *= 2
		}
		quote.FerryCharge = roundMoney(charge)
		subtotal += charge
		s.addLine(quote, labelFerry, charge)
	}

	if origin.Northern || dest.Northern || originRegion.Northern || destRegion.Northern {
		charge := preSurcharge * (s.rates.NorthernMultiplier - 1)
		quote.NorthernCharge = roundMoney(charge)
		subtotal += charge
		s.addLine(quote, labelNorthern, charge)
	}

	// Enclosed and inoperable are both fractions of the surcharged
	// subtotal, computed side by side rather than sequentially.
	beforeFuel := subtotal

	if req.Options.Enclosed {
		charge := subtotal * (s.rates.EnclosedMultiplier - 1)
		quote.EnclosedCharge = roundMoney(charge)
		beforeFuel += charge
		s.addLine(quote, labelEnclosed, charge)
	}

	if req.Options.Inoperable {
		charge := subtotal * (s.rates.InoperableMultiplier - 1)
		quote.InoperableCharge = roundMoney(charge)
		beforeFuel += charge
		s.addLine(quote, labelInoperable, charge)
	}

	fuel := beforeFuel * s.rates.FuelSurchargePercent / 100
	quote.FuelSurcharge = roundMoney(fuel)
	s.addLine(quote, labelFuel, fuel)

	var expedited float64
	if req.Options.Expedited {
		// Off the pre-fuel amount: expedited never taxes the fuel line.
		expedited = beforeFuel * s.rates.ExpeditedSurcharge
		quote.ExpeditedCharge = roundMoney(expedited)
		s.addLine(quote, labelExpedited, expedited)
	}

	total := beforeFuel + fuel + expedited

	if fraction := s.discountFraction(req.Options.VehicleCount); fraction > 0 {
		discount := total * fraction
		quote.VolumeDiscount = roundMoney(discount)
		total -= discount
		s.addLine(quote, labelDiscount, -discount)
	}

	quote.TotalPrice = int64(math.Round(total))
	if float64(quote.TotalPrice) < s.rates.MinimumCharge {
		quote.TotalPrice = int64(math.Round(s.rates.MinimumCharge))
	}

	quote.TransitDays = s.transitDays(roadKm, origin, dest, originRegion, destRegion, req.Options.Expedited)

	if s.logger != nil {
		s.logger.DebugContext(ctx, "quote estimated",
			slog.String("origin", req.OriginRegion+":"+req.OriginCity),
			slog.String("dest", req.DestRegion+":"+req.DestCity),
			slog.Int64("total", quote.TotalPrice),
		)
	}

	return quote, nil
}

// resolve looks up an endpoint, distinguishing an unknown region from an
// unknown city for the caller's benefit.
func (s *quoteService) resolve(regionCode, city string) (*entity.Location, *entity.Region, error) {
	region, ok := s.catalog.Region(regionCode)
	if !ok {
		return nil, nil, domainerrors.NewLocationNotFound(regionCode, "")
	}

	loc, ok := region.Find(city)
	if !ok {
		return nil, nil, domainerrors.NewLocationNotFound(regionCode, city)
	}

	return loc, region, nil
}

// tieredPrice walks the marginal bands: every band up to the one containing
// the total distance contributes its full or partial span at its own rate.
func (s *quoteService) tieredPrice(km float64) float64 {
	var price float64
	remaining := km
	prevBound := 0.0

	for _, tier := range s.tiers {
		if remaining <= 0 {
			break
		}

		span := tier.upToKm - prevBound
		consumed := math.Min(remaining, span)
		price += consumed * tier.rate
		remaining -= consumed
		prevBound = tier.upToKm
	}

	return price
}

// discountFraction returns the volume discount for a vehicle count. Counts
// beyond the table's largest entry use that entry's fraction, capped rather
// than extrapolated.
func (s *quoteService) discountFraction(vehicleCount int) float64 {
	var fraction float64
	for _, d := range s.discounts {
		if vehicleCount >= d.vehicles {
			fraction = d.fraction
		}
	}

	return fraction
}

// transitDays estimates delivery time: one travel day per configured
// distance block plus a pickup day, stretched by hard-to-serve endpoints.
// Expedited service compresses the final figure, after the additive
// adjustments, and never below one day.
func (s *quoteService) transitDays(roadKm float64, origin, dest *entity.Location, originRegion, destRegion *entity.Region, expedited bool) int {
	days := int(math.Ceil(roadKm/s.rates.KmPerTransitDay)) + 1

	if origin.Remote || dest.Remote {
		days++
	}
	if origin.Northern || dest.Northern || originRegion.Northern || destRegion.Northern {
		days += 2
	}
	if origin.Ferry || dest.Ferry {
		days++
	}

	if expedited {
		days = int(math.Ceil(float64(days) * 0.6))
		if days < 1 {
			days = 1
		}
	}

	return days
}

func (s *quoteService) addLine(quote *usecase.Quote, label string, amount float64) {
	quote.Breakdown = append(quote.Breakdown, usecase.BreakdownItem{
		Label:  label,
		Amount: int64(math.Round(amount)),
	})
}

func roundMoney(amount float64) float64 {
	return math.Round(amount)
}
