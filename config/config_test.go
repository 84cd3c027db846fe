package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"pricing": map[string]any{
			"baseRate":        100,
			"ferryCharge":     150,
			"kmPerTransitDay": 600,
		},
		"catalog": map[string]any{
			"path": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PRICING_BASERATE", want: "pricing.baseRate"},
		{envKey: "PRICING_FERRYCHARGE", want: "pricing.ferryCharge"},
		{envKey: "PRICING_KMPERTRANSITDAY", want: "pricing.kmPerTransitDay"},
		{envKey: "CATALOG_PATH", want: "catalog.path"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestDefaultPricing_TierTableAscending(t *testing.T) {
	pricing := DefaultPricing()

	require.NotEmpty(t, pricing.Tiers)

	prev := 0.0
	for i, tier := range pricing.Tiers {
		if i == len(pricing.Tiers)-1 {
			assert.Zero(t, tier.UpToKm, "final tier must be unbounded")

			continue
		}
		assert.Greater(t, tier.UpToKm, prev, "tier bounds must be strictly increasing")
		prev = tier.UpToKm
	}
}

func TestDefaultPricing_Constants(t *testing.T) {
	pricing := DefaultPricing()

	assert.Equal(t, 150.0, pricing.MinimumCharge)
	assert.Equal(t, 5.0, pricing.FuelSurchargePercent)
	assert.Equal(t, 0.35, pricing.ExpeditedSurcharge)
	assert.Equal(t, 1.35, pricing.RoadFactor)
}

func TestDefaultPricing_VolumeDiscountsOrdered(t *testing.T) {
	pricing := DefaultPricing()

	require.Len(t, pricing.VolumeDiscounts, 4)

	prevCount := 1
	prevFraction := 0.0
	for _, discount := range pricing.VolumeDiscounts {
		assert.Greater(t, discount.Vehicles, prevCount)
		assert.Greater(t, discount.Fraction, prevFraction)
		prevCount = discount.Vehicles
		prevFraction = discount.Fraction
	}
}

func TestDefaultPricing_TorontoMontrealFlatRate(t *testing.T) {
	pricing := DefaultPricing()

	var found bool
	for _, route := range pricing.FlatRoutes {
		if route.OriginRegion == "ON" && route.OriginCity == "Toronto" &&
			route.DestRegion == "QC" && route.DestCity == "Montreal" {
			found = true
			assert.Equal(t, 425.0, route.Price)
		}
	}
	assert.True(t, found, "default rate card must carry the Toronto->Montreal lane")
}
