// Package catalog provides the geography dataset the quote engine prices
// against: a static, validated registry of regions and locations.
package catalog

import (
	"math"

	"haulquote/config"
	"haulquote/internal/domain/entity"
	"haulquote/internal/domain/repository"

	"github.com/pkg/errors"
)

// Catalog is an immutable GeographyRepository. All lookups are exact-match
// and the structure is never mutated after New, so it is safe for
// concurrent use without locking.
type Catalog struct {
	regions []entity.Region
	byCode  map[string]int
}

// New builds a catalog from the configured source: a yaml dataset when a
// path is configured, the built-in Canadian dataset otherwise.
func New(cfg *config.Config) (repository.GeographyRepository, error) {
	if cfg.Catalog != nil && cfg.Catalog.Path != "" {
		regions, err := loadYAML(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}

		return FromRegions(regions)
	}

	return FromRegions(defaultRegions())
}

// FromRegions builds a catalog from an explicit region list, validating the
// catalog invariants: unique region codes, at least one location per
// region, unique location names within a region, and finite in-range
// coordinates.
func FromRegions(regions []entity.Region) (*Catalog, error) {
	byCode := make(map[string]int, len(regions))

	for i, region := range regions {
		if region.Code == "" {
			return nil, errors.Errorf("region %d has empty code", i)
		}
		if _, dup := byCode[region.Code]; dup {
			return nil, errors.Errorf("duplicate region code %q", region.Code)
		}
		if len(region.Locations) == 0 {
			return nil, errors.Errorf("region %q has no locations", region.Code)
		}

		names := make(map[string]struct{}, len(region.Locations))
		for _, loc := range region.Locations {
			if loc.Name == "" {
				return nil, errors.Errorf("region %q has a location with empty name", region.Code)
			}
			if _, dup := names[loc.Name]; dup {
				return nil, errors.Errorf("duplicate location %q in region %q", loc.Name, region.Code)
			}
			names[loc.Name] = struct{}{}

			if err := validateCoordinate(loc); err != nil {
				return nil, errors.Wrapf(err, "region %q location %q", region.Code, loc.Name)
			}
		}

		byCode[region.Code] = i
	}

	return &Catalog{regions: regions, byCode: byCode}, nil
}

// Regions returns every region in catalog order.
func (c *Catalog) Regions() []entity.Region {
	return c.regions
}

// Region resolves a region by code, exact match.
func (c *Catalog) Region(code string) (*entity.Region, bool) {
	idx, ok := c.byCode[code]
	if !ok {
		return nil, false
	}

	return &c.regions[idx], true
}

// Location resolves a named location within a region, exact match on both.
func (c *Catalog) Location(regionCode, name string) (*entity.Location, *entity.Region, bool) {
	region, ok := c.Region(regionCode)
	if !ok {
		return nil, nil, false
	}

	loc, ok := region.Find(name)
	if !ok {
		return nil, nil, false
	}

	return loc, region, true
}

func validateCoordinate(loc entity.Location) error {
	lat, lng := loc.Lat(), loc.Lng()

	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errors.New("coordinate is not finite")
	}
	if lat < -90 || lat > 90 {
		return errors.Errorf("latitude %v out of range", lat)
	}
	if lng < -180 || lng > 180 {
		return errors.Errorf("longitude %v out of range", lng)
	}

	return nil
}
