package reports

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"
)

const (
	DefaultSeedCount = 50
	seedWindowDays   = 90
	// seedJitter is the full width, in degrees, of the uniform offset applied
	// independently to a township centroid's latitude and longitude.
	seedJitter = 0.02
)

var seedTitles = map[Category][]string{
	CategoryInfrastructure: {
		"Broken street light",
		"Pothole on main road",
		"Damaged sidewalk",
		"Water pipe leak",
		"Collapsed drainage",
	},
	CategoryEnvironmental: {
		"Illegal dumping site",
		"Air quality concern",
		"Flooded area",
		"Fallen tree blocking path",
		"Contaminated water source",
	},
	CategorySafety: {
		"Unsafe construction site",
		"Missing guardrail",
		"Dangerous electrical wiring",
		"Unsecured manhole",
		"Broken traffic signal",
	},
	CategoryHealth: {
		"Stagnant water breeding mosquitoes",
		"Unsanitary food stall",
		"Open sewage",
		"Pest infestation area",
		"Medical waste disposal issue",
	},
	CategoryTraffic: {
		"Faded road markings",
		"Obscured traffic sign",
		"Congestion hotspot",
		"Pedestrian crossing needed",
		"Broken traffic light",
	},
	CategoryOther: {
		"Public facility damage",
		"Noise pollution",
		"Abandoned vehicle",
		"Street vendor obstruction",
		"General safety concern",
	},
}

// NewRand returns a PCG source seeded with seed, or with the wall clock when
// seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateSeed builds count synthetic reports created within the 90 days
// before now, newest first.
func GenerateSeed(count int, now time.Time, rng *rand.Rand) []Report {
	if count < 0 {
		count = 0
	}

	out := make([]Report, 0, count)
	for i := 0; i < count; i++ {
		township := Townships[rng.IntN(len(Townships))]
		category := Categories[rng.IntN(len(Categories))]
		titles := seedTitles[category]
		title := titles[rng.IntN(len(titles))]
		status := Statuses[rng.IntN(len(Statuses))]
		createdAt := now.AddDate(0, 0, -rng.IntN(seedWindowDays))

		out = append(out, Report{
			ID:    fmt.Sprintf("report-%d", i+1),
			Title: title,
			Description: fmt.Sprintf(
				"%s reported in %s township. Local residents have noticed this issue and it requires attention from the appropriate authorities.",
				title, township.Name),
			Category:  category,
			Status:    status,
			Latitude:  jitter(rng, township.Centroid.Lat),
			Longitude: jitter(rng, township.Centroid.Lng),
			Township:  township.Name,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CreatedAt.After(out[b].CreatedAt)
	})
	return out
}

func jitter(rng *rand.Rand, v float64) float64 {
	return v + (rng.Float64()-0.5)*seedJitter
}
