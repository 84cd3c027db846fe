package catalog

import (
	"haulquote/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// regionDoc mirrors the yaml dataset shape. Coordinates are spelled out as
// lat/lng in the file; conversion to orb points happens here.
type regionDoc struct {
	Code       string        `koanf:"code"`
	Name       string        `koanf:"name"`
	Multiplier float64       `koanf:"multiplier"`
	Northern   bool          `koanf:"northern"`
	Locations  []locationDoc `koanf:"locations"`
}

type locationDoc struct {
	Name       string  `koanf:"name"`
	Lat        float64 `koanf:"lat"`
	Lng        float64 `koanf:"lng"`
	Population int     `koanf:"population"`
	Remote     bool    `koanf:"remote"`
	Northern   bool    `koanf:"northern"`
	Ferry      bool    `koanf:"ferry"`
}

type catalogDoc struct {
	Regions []regionDoc `koanf:"regions"`
}

// loadYAML reads a replacement dataset from a yaml file. Validation happens
// in FromRegions, not here.
func loadYAML(path string) ([]entity.Region, error) {
	koanfInstance := koanf.New(".")

	if err := koanfInstance.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read catalog %s failed", path)
	}

	var doc catalogDoc
	if err := koanfInstance.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &doc,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal catalog %s failed", path)
	}

	if len(doc.Regions) == 0 {
		return nil, errors.Errorf("catalog %s defines no regions", path)
	}

	regions := make([]entity.Region, 0, len(doc.Regions))
	for _, rd := range doc.Regions {
		region := entity.Region{
			Code:       rd.Code,
			Name:       rd.Name,
			Multiplier: rd.Multiplier,
			Northern:   rd.Northern,
			Locations:  make([]entity.Location, 0, len(rd.Locations)),
		}
		for _, ld := range rd.Locations {
			region.Locations = append(region.Locations, entity.Location{
				Name:       ld.Name,
				Point:      orb.Point{ld.Lng, ld.Lat},
				Population: ld.Population,
				Remote:     ld.Remote,
				Northern:   ld.Northern,
				Ferry:      ld.Ferry,
			})
		}
		regions = append(regions, region)
	}

	return regions, nil
}
