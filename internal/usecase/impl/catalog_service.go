package impl

import (
	"context"

	domainerrors "haulquote/internal/domain/errors"
	"haulquote/internal/domain/repository"
	"haulquote/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	catalog repository.GeographyRepository
}

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Catalog repository.GeographyRepository
}

// NewCatalogService exposes the read-only geography catalog to the API.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{catalog: params.Catalog}
}

func (s *catalogService) Regions(ctx context.Context) []usecase.RegionSummary {
	regions := s.catalog.Regions()
	summaries := make([]usecase.RegionSummary, 0, len(regions))

	for _, region := range regions {
		summaries = append(summaries, usecase.RegionSummary{
			Code:          region.Code,
			Name:          region.Name,
			Multiplier:    region.Multiplier,
			Northern:      region.Northern,
			LocationCount: len(region.Locations),
		})
	}

	return summaries
}

func (s *catalogService) Region(ctx context.Context, code string) (*usecase.RegionDetail, error) {
	region, ok := s.catalog.Region(code)
	if !ok {
		return nil, domainerrors.NewLocationNotFound(code, "")
	}

	detail := &usecase.RegionDetail{
		RegionSummary: usecase.RegionSummary{
			Code:          region.Code,
			Name:          region.Name,
			Multiplier:    region.Multiplier,
			Northern:      region.Northern,
			LocationCount: len(region.Locations),
		},
		Locations: make([]usecase.LocationDetail, 0, len(region.Locations)),
	}

	for _, loc := range region.Locations {
		detail.Locations = append(detail.Locations, usecase.LocationDetail{
			Name:       loc.Name,
			Lat:        loc.Lat(),
			Lng:        loc.Lng(),
			Population: loc.Population,
			Remote:     loc.Remote,
			Northern:   loc.Northern,
			Ferry:      loc.Ferry,
		})
	}

	return detail, nil
}
