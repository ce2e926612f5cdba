package geo

import "testing"

func TestLocate(t *testing.T) {
	locs := Locate([]Entry{
		{Slug: "a", Title: "A", Region: "Tunis"},
		{Slug: "b", Title: "B", Region: "Nowhere"},
	})
	if len(locs) != 2 {
		t.Fatalf("got %d locations, want 2", len(locs))
	}
	if locs[0].Lng != 10.1658 || locs[0].Lat != 36.8065 {
		t.Errorf("known region coordinate = %v/%v", locs[0].Lng, locs[0].Lat)
	}
	if locs[1].Lng != Default().Lng || locs[1].Lat != Default().Lat {
		t.Errorf("unknown region should use default, got %v/%v", locs[1].Lng, locs[1].Lat)
	}
}

func TestClustersGroupByRoundedCoordinate(t *testing.T) {
	locs := []Location{
		{Entry: Entry{Slug: "a"}, Lng: 10.1658, Lat: 36.8065},
		{Entry: Entry{Slug: "b"}, Lng: 10.1702, Lat: 36.8112}, // rounds to the same pair
		{Entry: Entry{Slug: "c"}, Lng: 8.1339, Lat: 33.9197},
	}
	clusters := Clusters(locs)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}
	if len(clusters[0].Locations) != 2 {
		t.Errorf("first cluster has %d locations, want 2", len(clusters[0].Locations))
	}
	if clusters[0].Lng != 10.17 || clusters[0].Lat != 36.81 {
		t.Errorf("cluster coordinate = %v/%v, want rounded", clusters[0].Lng, clusters[0].Lat)
	}
	if clusters[1].Locations[0].Slug != "c" {
		t.Errorf("second cluster = %v", clusters[1].Locations)
	}
}

func TestClustersPreserveFirstSeenOrder(t *testing.T) {
	locs := []Location{
		{Entry: Entry{Slug: "south"}, Lng: 9.0, Lat: 33.0},
		{Entry: Entry{Slug: "north"}, Lng: 9.0, Lat: 37.0},
		{Entry: Entry{Slug: "south2"}, Lng: 9.0, Lat: 33.0},
	}
	clusters := Clusters(locs)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}
	if clusters[0].Locations[0].Slug != "south" || clusters[1].Locations[0].Slug != "north" {
		t.Errorf("cluster order not first-seen: %v", clusters)
	}
}

func TestClusterPopupCaps(t *testing.T) {
	var c Cluster
	for i := 0; i < 7; i++ {
		c.Locations = append(c.Locations, Location{})
	}
	if got := len(c.Visible()); got != MaxPopupItems {
		t.Errorf("Visible = %d, want %d", got, MaxPopupItems)
	}
	if got := c.Overflow(); got != 2 {
		t.Errorf("Overflow = %d, want 2", got)
	}

	c.Locations = c.Locations[:3]
	if got := len(c.Visible()); got != 3 {
		t.Errorf("Visible under cap = %d, want 3", got)
	}
	if got := c.Overflow(); got != 0 {
		t.Errorf("Overflow under cap = %d, want 0", got)
	}
}

func TestGroupByRegion(t *testing.T) {
	groups := GroupByRegion([]Entry{
		{Slug: "a", Region: "Sahara"},
		{Slug: "b", Region: "Coast"},
		{Slug: "c", Region: "Sahara"},
		{Slug: "d"},
	})
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	// Alphabetical: Coast, Sahara, Tunisia.
	if groups[0].Region != "Coast" || groups[1].Region != "Sahara" || groups[2].Region != "Tunisia" {
		t.Errorf("group order = %q, %q, %q", groups[0].Region, groups[1].Region, groups[2].Region)
	}
	if len(groups[1].Entries) != 2 {
		t.Errorf("Sahara has %d entries, want 2", len(groups[1].Entries))
	}
	if groups[2].Entries[0].Slug != "d" {
		t.Errorf("empty region should bucket under Tunisia")
	}
}

func TestRegionGroupCaps(t *testing.T) {
	g := RegionGroup{Region: "Sahara"}
	for i := 0; i < 5; i++ {
		g.Entries = append(g.Entries, Entry{})
	}
	if got := len(g.Visible()); got != MaxFallbackItems {
		t.Errorf("Visible = %d, want %d", got, MaxFallbackItems)
	}
	if got := g.Overflow(); got != 2 {
		t.Errorf("Overflow = %d, want 2", got)
	}
}
