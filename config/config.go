package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	// Pricing holds every constant and table the quote engine needs.
	Pricing *PricingConfig `json:"pricing" yaml:"pricing"`

	// Catalog configures the geography dataset.
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PricingConfig defines the constants and tables driving quote calculation.
// The zero value is not usable; DefaultPricing supplies the negotiated rates.
type PricingConfig struct {
	// BaseRate is the flat charge added to every distance-priced quote.
	BaseRate float64 `json:"baseRate" yaml:"baseRate"`

	// RemoteMultiplier is applied as a surcharge of subtotal * (m - 1)
	// when either endpoint is a remote location.
	RemoteMultiplier float64 `json:"remoteMultiplier" yaml:"remoteMultiplier"`

	// FerryCharge is a fixed charge added when either endpoint needs a
	// ferry crossing; doubled for cross-region ferry-to-ferry moves.
	FerryCharge float64 `json:"ferryCharge" yaml:"ferryCharge"`

	// NorthernMultiplier is applied as a surcharge of subtotal * (m - 1)
	// when either endpoint or its region is in the northern service zone.
	NorthernMultiplier float64 `json:"northernMultiplier" yaml:"northernMultiplier"`

	// FuelSurchargePercent is applied to every quote.
	FuelSurchargePercent float64 `json:"fuelSurchargePercent" yaml:"fuelSurchargePercent"`

	// EnclosedMultiplier prices enclosed-trailer transport.
	EnclosedMultiplier float64 `json:"enclosedMultiplier" yaml:"enclosedMultiplier"`

	// InoperableMultiplier prices non-running vehicles.
	InoperableMultiplier float64 `json:"inoperableMultiplier" yaml:"inoperableMultiplier"`

	// ExpeditedSurcharge is the fraction added for expedited service.
	ExpeditedSurcharge float64 `json:"expeditedSurcharge" yaml:"expeditedSurcharge"`

	// MinimumCharge is the floor applied to every rounded total.
	MinimumCharge float64 `json:"minimumCharge" yaml:"minimumCharge"`

	// RoadFactor inflates great-circle distance into an approximate road
	// distance.
	RoadFactor float64 `json:"roadFactor" yaml:"roadFactor"`

	// KmPerTransitDay drives the transit-time estimate.
	KmPerTransitDay float64 `json:"kmPerTransitDay" yaml:"kmPerTransitDay"`

	// Tiers is the ascending marginal-rate table for distance pricing.
	Tiers []DistanceTier `json:"tiers" yaml:"tiers"`

	// FlatRoutes lists directional origin->destination pairs with a
	// negotiated total that replaces base + distance pricing.
	FlatRoutes []FlatRoute `json:"flatRoutes" yaml:"flatRoutes"`

	// VolumeDiscounts maps vehicle counts to discount fractions. Counts
	// above the largest entry use that entry's fraction.
	VolumeDiscounts []VolumeDiscount `json:"volumeDiscounts" yaml:"volumeDiscounts"`
}

// DistanceTier is one marginal band of the distance price table.
// UpToKm == 0 marks the final, unbounded band.
type DistanceTier struct {
	UpToKm    float64 `json:"upToKm" yaml:"upToKm"`
	RatePerKm float64 `json:"ratePerKm" yaml:"ratePerKm"`
}

// FlatRoute is a directional negotiated rate. The reverse direction is a
// separate entry; it is never derived.
type FlatRoute struct {
	OriginRegion string  `json:"originRegion" yaml:"originRegion"`
	OriginCity   string  `json:"originCity" yaml:"originCity"`
	DestRegion   string  `json:"destRegion" yaml:"destRegion"`
	DestCity     string  `json:"destCity" yaml:"destCity"`
	Price        float64 `json:"price" yaml:"price"`
}

// VolumeDiscount maps a vehicle count to a discount fraction.
type VolumeDiscount struct {
	Vehicles int     `json:"vehicles" yaml:"vehicles"`
	Fraction float64 `json:"fraction" yaml:"fraction"`
}

// CatalogConfig defines the geography dataset source.
type CatalogConfig struct {
	// Path points at a yaml dataset replacing the built-in catalog.
	// Empty means use the built-in Canadian catalog.
	Path string `json:"path" yaml:"path"`
}

// DefaultPricing returns the negotiated rate card used when no pricing
// section is configured.
func DefaultPricing() *PricingConfig {
	return &PricingConfig{
		BaseRate:             100,
		RemoteMultiplier:     1.3,
		FerryCharge:          150,
		NorthernMultiplier:   1.4,
		FuelSurchargePercent: 5,
		EnclosedMultiplier:   1.4,
		InoperableMultiplier: 1.25,
		ExpeditedSurcharge:   0.35,
		MinimumCharge:        150,
		RoadFactor:           1.35,
		KmPerTransitDay:      600,
		Tiers: []DistanceTier{
			{UpToKm: 100, RatePerKm: 2.75},
			{UpToKm: 300, RatePerKm: 2.00},
			{UpToKm: 500, RatePerKm: 1.65},
			{UpToKm: 1000, RatePerKm: 1.35},
			{UpToKm: 2000, RatePerKm: 1.20},
			{UpToKm: 0, RatePerKm: 1.00},
		},
		FlatRoutes: []FlatRoute{
			{OriginRegion: "ON", OriginCity: "Toronto", DestRegion: "QC", DestCity: "Montreal", Price: 425},
			{OriginRegion: "QC", OriginCity: "Montreal", DestRegion: "ON", DestCity: "Toronto", Price: 440},
			{OriginRegion: "ON", OriginCity: "Toronto", DestRegion: "ON", DestCity: "Ottawa", Price: 350},
			{OriginRegion: "ON", OriginCity: "Ottawa", DestRegion: "ON", DestCity: "Toronto", Price: 350},
			{OriginRegion: "AB", OriginCity: "Calgary", DestRegion: "AB", DestCity: "Edmonton", Price: 275},
			{OriginRegion: "AB", OriginCity: "Edmonton", DestRegion: "AB", DestCity: "Calgary", Price: 275},
			{OriginRegion: "BC", OriginCity: "Vancouver", DestRegion: "AB", DestCity: "Calgary", Price: 725},
			{OriginRegion: "ON", OriginCity: "Toronto", DestRegion: "BC", DestCity: "Vancouver", Price: 1950},
			{OriginRegion: "QC", OriginCity: "Montreal", DestRegion: "QC", DestCity: "Quebec City", Price: 300},
		},
		VolumeDiscounts: []VolumeDiscount{
			{Vehicles: 2, Fraction: 0.05},
			{Vehicles: 3, Fraction: 0.08},
			{Vehicles: 4, Fraction: 0.12},
			{Vehicles: 5, Fraction: 0.15},
		},
	}
}

// LoadWithEnv loads .yaml files through koanf and overlays environment
// variables on top.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: PRICING_BASERATE -> pricing.baseRate (not pricing.baserate)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads the service configuration. A missing config file is not an
// error: the engine is fully specified by its built-in rate card and
// catalog, so the service can start on defaults alone.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		if !strings.Contains(err.Error(), "not found in any search path") {
			return nil, err
		}
		cfg = &Config{}
		cfg.Env.ServiceName = "haulquote"
		cfg.Env.Log.Level = "info"
		cfg.HTTP.Port = 8080
	}

	if cfg.Pricing == nil {
		cfg.Pricing = DefaultPricing()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
