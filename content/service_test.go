package content

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/indigoandlavender/slow-tunisia/sheets"
)

// fakeSource serves canned rows per table and counts fetches.
type fakeSource struct {
	tables map[string][]sheets.Row
	errs   map[string]error
	calls  map[string]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		tables: make(map[string][]sheets.Row),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

func (f *fakeSource) Rows(ctx context.Context, table string) ([]sheets.Row, error) {
	f.calls[table]++
	if err := f.errs[table]; err != nil {
		return nil, err
	}
	return f.tables[table], nil
}

func testSource() *fakeSource {
	src := newFakeSource()
	src.tables[tablePlaces] = []sheets.Row{
		{"slug": "carthage", "name": "Carthage", "region_id": "north", "published": "TRUE", "order": "2", "highlights": "Ruins|Harbor"},
		{"slug": "douz", "name": "Douz", "region_id": "sahara", "published": "TRUE", "order": "1"},
		{"slug": "draft", "name": "Draft", "published": "FALSE", "order": "0"},
	}
	src.tables[tableRegions] = []sheets.Row{
		{"region_id": "north", "name": "The North"},
		{"region_id": "sahara", "name": "Sahara"},
	}
	src.tables[tableDestinations] = []sheets.Row{
		{"place_slug": "carthage", "name": "Byrsa Hill", "type": "Ruins"},
		{"place_slug": "douz", "name": "Great Dune", "type": "Desert"},
		{"place_slug": "carthage", "name": "Antonine Baths", "type": "Ruins"},
	}
	src.tables[tableStories] = []sheets.Row{
		{"slug": "salt-flats", "title": "Salt Flats", "published": "TRUE", "order": "1", "featured": "TRUE"},
		{"slug": "unpublished", "title": "Hidden", "published": ""},
	}
	src.tables[tableStoryImages] = []sheets.Row{
		{"story_slug": "salt-flats", "image_url": "https://x/b.jpg", "order": "2", "alt": "Crust"},
		{"story_slug": "other", "image_url": "https://x/z.jpg", "order": "1"},
		{"story_slug": "salt-flats", "image_url": "https://x/a.jpg", "order": "1"},
	}
	return src
}

func newTestService(src Source) *Service {
	return NewService(src, zerolog.Nop())
}

func TestListPlacesPublishedAndOrdered(t *testing.T) {
	svc := newTestService(testSource())
	got, err := svc.ListPlaces(context.Background())
	if err != nil {
		t.Fatalf("ListPlaces returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d places, want 2", len(got))
	}
	if got[0].Slug != "douz" || got[1].Slug != "carthage" {
		t.Errorf("order = %q, %q; want douz, carthage", got[0].Slug, got[1].Slug)
	}
	if got[1].Region != "The North" {
		t.Errorf("Region = %q, want The North", got[1].Region)
	}
}

func TestListPlacesSourceError(t *testing.T) {
	src := testSource()
	src.errs[tableRegions] = errors.New("remote down")
	svc := newTestService(src)
	if _, err := svc.ListPlaces(context.Background()); err == nil {
		t.Fatalf("expected error when a join table fails")
	}
}

func TestGetPlaceJoinsDestinations(t *testing.T) {
	svc := newTestService(testSource())
	p, err := svc.GetPlace(context.Background(), "carthage")
	if err != nil {
		t.Fatalf("GetPlace returned error: %v", err)
	}
	if p.Region != "The North" || p.RegionID != "north" {
		t.Errorf("region = %q/%q", p.Region, p.RegionID)
	}
	if len(p.Destinations) != 2 {
		t.Fatalf("got %d destinations, want 2", len(p.Destinations))
	}
	if p.Destinations[0].Name != "Byrsa Hill" || p.Destinations[1].Name != "Antonine Baths" {
		t.Errorf("destinations = %v", p.Destinations)
	}
	if len(p.Highlights) != 2 {
		t.Errorf("highlights = %v", p.Highlights)
	}
}

func TestGetPlaceNotFound(t *testing.T) {
	svc := newTestService(testSource())
	if _, err := svc.GetPlace(context.Background(), "atlantis"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetPlaceUnpublishedStillResolves(t *testing.T) {
	// Detail lookups match any row with the slug, published or not.
	svc := newTestService(testSource())
	p, err := svc.GetPlace(context.Background(), "draft")
	if err != nil {
		t.Fatalf("GetPlace returned error: %v", err)
	}
	if p.Name != "Draft" {
		t.Errorf("Name = %q", p.Name)
	}
}

func TestListStories(t *testing.T) {
	svc := newTestService(testSource())
	got, err := svc.ListStories(context.Background())
	if err != nil {
		t.Fatalf("ListStories returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d stories, want 1", len(got))
	}
	if !got[0].Featured {
		t.Errorf("Featured = false, want true")
	}
	if got[0].Category != "Essay" {
		t.Errorf("Category = %q, want default", got[0].Category)
	}
}

func TestGetStoryImagesOrderedAndScoped(t *testing.T) {
	svc := newTestService(testSource())
	s, err := svc.GetStory(context.Background(), "salt-flats")
	if err != nil {
		t.Fatalf("GetStory returned error: %v", err)
	}
	if len(s.Images) != 2 {
		t.Fatalf("got %d images, want 2", len(s.Images))
	}
	if s.Images[0].URL != "https://x/a.jpg" || s.Images[1].URL != "https://x/b.jpg" {
		t.Errorf("image order = %q, %q", s.Images[0].URL, s.Images[1].URL)
	}
	if s.Images[0].Alt != "Salt Flats" {
		t.Errorf("Alt fallback = %q, want story title", s.Images[0].Alt)
	}
	if s.Images[1].Alt != "Crust" {
		t.Errorf("explicit Alt = %q", s.Images[1].Alt)
	}
}

func TestGetStoryNotFound(t *testing.T) {
	svc := newTestService(testSource())
	if _, err := svc.GetStory(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
