package catalog

import (
	"haulquote/internal/domain/entity"

	"github.com/paulmach/orb"
)

// defaultRegions is the built-in Canadian service area: every province and
// territory, with the cities the carrier network actually serves. Remote,
// northern, and ferry are independent attributes; a community may carry any
// combination.
func defaultRegions() []entity.Region {
	return []entity.Region{
		{
			Code: "ON", Name: "Ontario", Multiplier: 1.0,
			Locations: []entity.Location{
				{Name: "Toronto", Point: orb.Point{-79.3832, 43.6532}, Population: 2794356},
				{Name: "Ottawa", Point: orb.Point{-75.6972, 45.4215}, Population: 1017449},
				{Name: "Hamilton", Point: orb.Point{-79.8711, 43.2557}, Population: 569353},
				{Name: "London", Point: orb.Point{-81.2453, 42.9849}, Population: 422324},
				{Name: "Windsor", Point: orb.Point{-83.0364, 42.3149}, Population: 229660},
				{Name: "Sudbury", Point: orb.Point{-80.9930, 46.4917}, Population: 166004},
				{Name: "Thunder Bay", Point: orb.Point{-89.2477, 48.3809}, Population: 108843, Remote: true},
			},
		},
		{
			Code: "QC", Name: "Quebec", Multiplier: 1.05,
			Locations: []entity.Location{
				{Name: "Montreal", Point: orb.Point{-73.5673, 45.5017}, Population: 1762949},
				{Name: "Quebec City", Point: orb.Point{-71.2080, 46.8139}, Population: 549459},
				{Name: "Gatineau", Point: orb.Point{-75.7013, 45.4765}, Population: 291041},
				{Name: "Saguenay", Point: orb.Point{-71.0686, 48.4280}, Population: 144746, Remote: true},
				{Name: "Sept-Iles", Point: orb.Point{-66.3821, 50.2040}, Population: 25400, Remote: true},
			},
		},
		{
			Code: "BC", Name: "British Columbia", Multiplier: 1.1,
			Locations: []entity.Location{
				{Name: "Vancouver", Point: orb.Point{-123.1207, 49.2827}, Population: 662248},
				{Name: "Victoria", Point: orb.Point{-123.3656, 48.4284}, Population: 91867, Ferry: true},
				{Name: "Kelowna", Point: orb.Point{-119.4960, 49.8880}, Population: 144576},
				{Name: "Nanaimo", Point: orb.Point{-123.9401, 49.1659}, Population: 99863, Ferry: true},
				{Name: "Prince George", Point: orb.Point{-122.7497, 53.9171}, Population: 76708, Remote: true},
				{Name: "Prince Rupert", Point: orb.Point{-130.3209, 54.3150}, Population: 12300, Remote: true, Ferry: true},
			},
		},
		{
			Code: "AB", Name: "Alberta", Multiplier: 1.0,
			Locations: []entity.Location{
				{Name: "Calgary", Point: orb.Point{-114.0719, 51.0447}, Population: 1306784},
				{Name: "Edmonton", Point: orb.Point{-113.4938, 53.5461}, Population: 1010899},
				{Name: "Red Deer", Point: orb.Point{-113.8112, 52.2681}, Population: 100844},
				{Name: "Fort McMurray", Point: orb.Point{-111.3810, 56.7267}, Population: 68002, Remote: true},
			},
		},
		{
			Code: "MB", Name: "Manitoba", Multiplier: 1.05,
			Locations: []entity.Location{
				{Name: "Winnipeg", Point: orb.Point{-97.1384, 49.8951}, Population: 749607},
				{Name: "Brandon", Point: orb.Point{-99.9501, 49.8485}, Population: 51313},
				{Name: "Thompson", Point: orb.Point{-97.8553, 55.7433}, Population: 13035, Remote: true, Northern: true},
				{Name: "Churchill", Point: orb.Point{-94.1650, 58.7684}, Population: 870, Remote: true, Northern: true},
			},
		},
		{
			Code: "SK", Name: "Saskatchewan", Multiplier: 1.05,
			Locations: []entity.Location{
				{Name: "Saskatoon", Point: orb.Point{-106.6700, 52.1332}, Population: 266141},
				{Name: "Regina", Point: orb.Point{-104.6189, 50.4452}, Population: 226404},
				{Name: "Prince Albert", Point: orb.Point{-105.7531, 53.2033}, Population: 37756},
				{Name: "La Ronge", Point: orb.Point{-105.2843, 55.1003}, Population: 2521, Remote: true, Northern: true},
			},
		},
		{
			Code: "NS", Name: "Nova Scotia", Multiplier: 1.1,
			Locations: []entity.Location{
				{Name: "Halifax", Point: orb.Point{-63.5752, 44.6488}, Population: 439819},
				{Name: "Sydney", Point: orb.Point{-60.1942, 46.1368}, Population: 29904, Remote: true},
				{Name: "Yarmouth", Point: orb.Point{-66.1174, 43.8374}, Population: 6829, Ferry: true},
			},
		},
		{
			Code: "NB", Name: "New Brunswick", Multiplier: 1.1,
			Locations: []entity.Location{
				{Name: "Moncton", Point: orb.Point{-64.7782, 46.0878}, Population: 79470},
				{Name: "Saint John", Point: orb.Point{-66.0633, 45.2733}, Population: 69895},
				{Name: "Fredericton", Point: orb.Point{-66.6431, 45.9636}, Population: 63116},
			},
		},
		{
			Code: "PE", Name: "Prince Edward Island", Multiplier: 1.15,
			Locations: []entity.Location{
				{Name: "Charlottetown", Point: orb.Point{-63.1311, 46.2382}, Population: 38809, Ferry: true},
				{Name: "Summerside", Point: orb.Point{-63.7891, 46.3950}, Population: 16001, Ferry: true},
			},
		},
		{
			Code: "NL", Name: "Newfoundland and Labrador", Multiplier: 1.2,
			Locations: []entity.Location{
				{Name: "St. John's", Point: orb.Point{-52.7126, 47.5615}, Population: 110525, Ferry: true},
				{Name: "Corner Brook", Point: orb.Point{-57.9521, 48.9517}, Population: 19316, Remote: true, Ferry: true},
				{Name: "Gander", Point: orb.Point{-54.6089, 48.9566}, Population: 11880, Remote: true, Ferry: true},
				{Name: "Labrador City", Point: orb.Point{-66.9142, 52.9390}, Population: 7412, Remote: true, Northern: true},
			},
		},
		{
			Code: "YT", Name: "Yukon", Multiplier: 1.5, Northern: true,
			Locations: []entity.Location{
				{Name: "Whitehorse", Point: orb.Point{-135.0568, 60.7212}, Population: 28201, Northern: true},
				{Name: "Dawson City", Point: orb.Point{-139.4333, 64.0601}, Population: 1577, Remote: true, Northern: true},
			},
		},
		{
			Code: "NT", Name: "Northwest Territories", Multiplier: 1.5, Northern: true,
			Locations: []entity.Location{
				{Name: "Yellowknife", Point: orb.Point{-114.3718, 62.4540}, Population: 20340, Northern: true},
				{Name: "Inuvik", Point: orb.Point{-133.7230, 68.3607}, Population: 3243, Remote: true, Northern: true},
				{Name: "Hay River", Point: orb.Point{-115.7999, 60.8156}, Population: 3169, Remote: true, Northern: true},
			},
		},
		{
			Code: "NU", Name: "Nunavut", Multiplier: 1.8, Northern: true,
			Locations: []entity.Location{
				{Name: "Iqaluit", Point: orb.Point{-68.5170, 63.7467}, Population: 7429, Remote: true, Northern: true},
				{Name: "Rankin Inlet", Point: orb.Point{-92.0853, 62.8084}, Population: 2975, Remote: true, Northern: true},
			},
		},
	}
}
