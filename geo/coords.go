// Package geo resolves place and region names to map coordinates and groups
// located entries into markers for the Tunisia map, plus the region-listing
// fallback shown when the client map cannot render.
package geo

import (
	"sort"
	"strings"
)

// Coordinate is a longitude/latitude pair.
type Coordinate struct {
	Lng float64
	Lat float64
}

// coords maps known city and region names to coordinates. The special keys
// "Tunisia" and "Multiple" act as the whole-country default.
var coords = map[string]Coordinate{
	// Cities
	"Tunis":         {10.1658, 36.8065},
	"Sidi Bou Said": {10.3472, 36.8689},
	"Carthage":      {10.3253, 36.8528},
	"Sousse":        {10.6089, 35.8256},
	"Sfax":          {10.7603, 34.7406},
	"Kairouan":      {10.1006, 35.6781},
	"Hammamet":      {10.6225, 36.4000},
	"Djerba":        {10.8575, 33.8076},
	"Tozeur":        {8.1339, 33.9197},
	"Douz":          {9.0203, 33.4500},
	"Matmata":       {9.9672, 33.5447},
	"Tabarka":       {8.7578, 36.9544},
	"Bizerte":       {9.8642, 37.2744},
	"Monastir":      {10.8261, 35.7831},
	"Mahdia":        {11.0456, 35.5047},
	"El Jem":        {10.7083, 35.2961},
	"Dougga":        {9.2194, 36.4236},

	// Regions
	"North":   {9.5000, 36.8000},
	"South":   {9.5000, 33.5000},
	"Central": {9.5000, 35.0000},
	"Coast":   {10.5000, 35.5000},
	"Sahara":  {8.5000, 33.0000},
	"Cap Bon": {10.7000, 36.8000},
	"Sahel":   {10.5000, 35.5000},

	// Defaults
	"Tunisia":  {9.5375, 34.0},
	"Multiple": {9.5375, 34.0},
}

// Default returns the whole-country coordinate used for unknown regions.
func Default() Coordinate {
	return coords["Tunisia"]
}

// Resolve maps a free-text region name to a coordinate: exact match first,
// then case-insensitive exact match, then substring match in either
// direction. When several keys substring-match, the longest key wins, with
// ties broken lexicographically so resolution is deterministic. Unknown or
// empty names fall back to the whole-country default.
func Resolve(region string) Coordinate {
	if region == "" {
		return Default()
	}
	if c, ok := coords[region]; ok {
		return c
	}

	lower := strings.ToLower(region)
	var candidates []string
	for key := range coords {
		lowerKey := strings.ToLower(key)
		if lowerKey == lower {
			return coords[key]
		}
		if strings.Contains(lower, lowerKey) || strings.Contains(lowerKey, lower) {
			candidates = append(candidates, key)
		}
	}
	if len(candidates) == 0 {
		return Default()
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) > len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
	return coords[candidates[0]]
}
