package impl

import (
	"context"
	"testing"

	domainerrors "haulquote/internal/domain/errors"
	"haulquote/internal/infra/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(t *testing.T) *catalogService {
	t.Helper()

	cat, err := catalog.FromRegions(syntheticRegions())
	require.NoError(t, err)

	return NewCatalogService(CatalogServiceParams{Catalog: cat}).(*catalogService)
}

func TestCatalogService_Regions(t *testing.T) {
	svc := newTestCatalogService(t)

	regions := svc.Regions(context.Background())

	require.Len(t, regions, 3)
	assert.Equal(t, "TS", regions[0].Code)
	assert.Equal(t, 9, regions[0].LocationCount)
	assert.True(t, regions[2].Northern)
}

func TestCatalogService_Region(t *testing.T) {
	svc := newTestCatalogService(t)

	region, err := svc.Region(context.Background(), "TT")
	require.NoError(t, err)
	assert.Equal(t, "Otherland", region.Name)
	require.Len(t, region.Locations, 2)
	assert.True(t, region.Locations[1].Ferry)
}

func TestCatalogService_RegionNotFound(t *testing.T) {
	svc := newTestCatalogService(t)

	_, err := svc.Region(context.Background(), "ZZ")

	var notFound *domainerrors.LocationNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "REGION_NOT_FOUND", notFound.ErrorCode())
}
