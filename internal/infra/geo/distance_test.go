package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_KnownPairs(t *testing.T) {
	tests := []struct {
		name   string
		from   orb.Point
		to     orb.Point
		wantKm float64
		within float64
	}{
		{
			name:   "Toronto to Montreal",
			from:   orb.Point{-79.3832, 43.6532},
			to:     orb.Point{-73.5673, 45.5017},
			wantKm: 504,
			within: 10,
		},
		{
			name:   "Vancouver to Calgary",
			from:   orb.Point{-123.1207, 49.2827},
			to:     orb.Point{-114.0719, 51.0447},
			wantKm: 675,
			within: 15,
		},
		{
			name:   "same point",
			from:   orb.Point{-79.3832, 43.6532},
			to:     orb.Point{-79.3832, 43.6532},
			wantKm: 0,
			within: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.from, tt.to)
			assert.InDelta(t, tt.wantKm, got, tt.within)
		})
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := orb.Point{-114.0719, 51.0447}
	b := orb.Point{-97.1384, 49.8951}

	assert.InDelta(t, HaversineKm(a, b), HaversineKm(b, a), 1e-9)
}

func TestRoadKm(t *testing.T) {
	assert.InDelta(t, 135.0, RoadKm(100, 1.35), 1e-9)
	assert.Zero(t, RoadKm(0, 1.35))
}
