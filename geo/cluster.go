package geo

import (
	"math"
	"sort"
)

// Display caps shared by the map popups and the fallback listing.
const (
	MaxPopupItems      = 5
	MaxFallbackItems   = 3
	MaxFallbackRegions = 9
)

// Entry is one mappable item: a place or story reduced to what the map
// needs to link and label it.
type Entry struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Category string `json:"category,omitempty"`
	Region   string `json:"region,omitempty"`
}

// Location is an Entry with its resolved coordinate.
type Location struct {
	Entry
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Locate resolves each entry's region to a coordinate.
func Locate(entries []Entry) []Location {
	out := make([]Location, 0, len(entries))
	for _, e := range entries {
		c := Resolve(e.Region)
		out = append(out, Location{Entry: e, Lng: c.Lng, Lat: c.Lat})
	}
	return out
}

// Cluster is one map marker: every location whose coordinates round to the
// same two-decimal pair. Popups list the first MaxPopupItems locations and
// summarize the rest as a count.
type Cluster struct {
	Lng       float64    `json:"lng"`
	Lat       float64    `json:"lat"`
	Locations []Location `json:"locations"`
}

// Overflow reports how many locations beyond the popup cap the cluster holds.
func (c Cluster) Overflow() int {
	if n := len(c.Locations) - MaxPopupItems; n > 0 {
		return n
	}
	return 0
}

// Visible returns the locations shown in the cluster's popup.
func (c Cluster) Visible() []Location {
	if len(c.Locations) > MaxPopupItems {
		return c.Locations[:MaxPopupItems]
	}
	return c.Locations
}

// Clusters groups locations by rounded coordinate, preserving first-seen
// order so markers render in listing order.
func Clusters(locs []Location) []Cluster {
	index := make(map[[2]float64]int)
	var out []Cluster
	for _, l := range locs {
		key := [2]float64{round2(l.Lng), round2(l.Lat)}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Cluster{Lng: key[0], Lat: key[1]})
		}
		out[i].Locations = append(out[i].Locations, l)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RegionGroup is one section of the fallback listing: every entry whose
// region string matches, under the region's display name.
type RegionGroup struct {
	Region  string
	Entries []Entry
}

// Overflow reports how many entries beyond the fallback cap the group holds.
func (g RegionGroup) Overflow() int {
	if n := len(g.Entries) - MaxFallbackItems; n > 0 {
		return n
	}
	return 0
}

// Visible returns the entries shown in the fallback listing.
func (g RegionGroup) Visible() []Entry {
	if len(g.Entries) > MaxFallbackItems {
		return g.Entries[:MaxFallbackItems]
	}
	return g.Entries
}

// GroupByRegion buckets entries by their raw region string, sorted
// alphabetically by region. Entries without a region fall under "Tunisia".
func GroupByRegion(entries []Entry) []RegionGroup {
	byRegion := make(map[string][]Entry)
	for _, e := range entries {
		region := e.Region
		if region == "" {
			region = "Tunisia"
		}
		byRegion[region] = append(byRegion[region], e)
	}
	names := make([]string, 0, len(byRegion))
	for name := range byRegion {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]RegionGroup, 0, len(names))
	for _, name := range names {
		out = append(out, RegionGroup{Region: name, Entries: byRegion[name]})
	}
	return out
}
