package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"haulquote/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRegions_DefaultDatasetIsValid(t *testing.T) {
	c, err := FromRegions(defaultRegions())
	require.NoError(t, err)

	// All thirteen provinces and territories
	assert.Len(t, c.Regions(), 13)
}

func TestCatalog_RegionLookup(t *testing.T) {
	c, err := FromRegions(defaultRegions())
	require.NoError(t, err)

	region, ok := c.Region("ON")
	require.True(t, ok)
	assert.Equal(t, "Ontario", region.Name)

	_, ok = c.Region("on") // exact match, no case folding
	assert.False(t, ok)

	_, ok = c.Region("ZZ")
	assert.False(t, ok)
}

func TestCatalog_LocationLookup(t *testing.T) {
	c, err := FromRegions(defaultRegions())
	require.NoError(t, err)

	loc, region, ok := c.Location("ON", "Toronto")
	require.True(t, ok)
	assert.Equal(t, "Ontario", region.Name)
	assert.InDelta(t, 43.6532, loc.Lat(), 0.001)
	assert.InDelta(t, -79.3832, loc.Lng(), 0.001)
	assert.False(t, loc.Remote)
	assert.False(t, loc.Northern)
	assert.False(t, loc.Ferry)

	_, _, ok = c.Location("ON", "Gotham")
	assert.False(t, ok)

	_, _, ok = c.Location("XX", "Toronto")
	assert.False(t, ok)
}

func TestCatalog_IndependentAttributes(t *testing.T) {
	c, err := FromRegions(defaultRegions())
	require.NoError(t, err)

	// Prince Rupert carries remote and ferry together
	loc, _, ok := c.Location("BC", "Prince Rupert")
	require.True(t, ok)
	assert.True(t, loc.Remote)
	assert.True(t, loc.Ferry)

	// Territories are region-flagged northern
	_, region, ok := c.Location("NT", "Yellowknife")
	require.True(t, ok)
	assert.True(t, region.Northern)
}

func TestFromRegions_RejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		regions []entity.Region
	}{
		{
			name: "duplicate region code",
			regions: []entity.Region{
				{Code: "ON", Name: "Ontario", Locations: []entity.Location{{Name: "A"}}},
				{Code: "ON", Name: "Ontario Again", Locations: []entity.Location{{Name: "B"}}},
			},
		},
		{
			name: "no locations",
			regions: []entity.Region{
				{Code: "ON", Name: "Ontario"},
			},
		},
		{
			name: "duplicate location name",
			regions: []entity.Region{
				{Code: "ON", Name: "Ontario", Locations: []entity.Location{{Name: "A"}, {Name: "A"}}},
			},
		},
		{
			name: "latitude out of range",
			regions: []entity.Region{
				{Code: "ON", Name: "Ontario", Locations: []entity.Location{
					{Name: "A", Point: orb.Point{0, 91}},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRegions(tt.regions)
			assert.Error(t, err)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	doc := `regions:
  - code: TS
    name: Testland
    multiplier: 1.0
    northern: false
    locations:
      - name: Alpha
        lat: 45.0
        lng: -75.0
        population: 1000
      - name: Beta
        lat: 46.0
        lng: -76.0
        remote: true
        ferry: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	regions, err := loadYAML(path)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	require.Len(t, regions[0].Locations, 2)

	beta := regions[0].Locations[1]
	assert.Equal(t, "Beta", beta.Name)
	assert.InDelta(t, 46.0, beta.Lat(), 1e-9)
	assert.InDelta(t, -76.0, beta.Lng(), 1e-9)
	assert.True(t, beta.Remote)
	assert.True(t, beta.Ferry)
	assert.False(t, beta.Northern)

	c, err := FromRegions(regions)
	require.NoError(t, err)

	loc, _, ok := c.Location("TS", "Alpha")
	require.True(t, ok)
	assert.Equal(t, 1000, loc.Population)
}

func TestLoadYAML_MissingFile(t *testing.T) {
	_, err := loadYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
