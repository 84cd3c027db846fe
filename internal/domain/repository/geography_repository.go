// Package repository defines the data-access contracts the use cases
// depend on.
package repository

import "haulquote/internal/domain/entity"

// GeographyRepository is the read-only geography catalog. Implementations
// are immutable after construction and safe for concurrent use.
type GeographyRepository interface {
	// Regions returns every region in catalog order.
	Regions() []entity.Region

	// Region resolves a region by code, exact match.
	Region(code string) (*entity.Region, bool)

	// Location resolves a named location within a region, exact match on
	// both code and name. The owning region is returned alongside the
	// location so callers can consult region-level attributes.
	Location(regionCode, name string) (*entity.Location, *entity.Region, bool)
}
