package content

import (
	"reflect"
	"testing"

	"github.com/indigoandlavender/slow-tunisia/sheets"
)

func TestFlag(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"TRUE", true},
		{"true", true},
		{"True", false},
		{"yes", false},
		{"1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := flag(tt.input); got != tt.want {
			t.Errorf("flag(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSortRank(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{" 12 ", 12},
		{"0", 0},
		{"", 999},
		{"abc", 999},
		{"1.5", 999},
	}
	for _, tt := range tests {
		if got := sortRank(tt.input); got != tt.want {
			t.Errorf("sortRank(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestChildRank(t *testing.T) {
	if got := childRank(""); got != 0 {
		t.Errorf("childRank(\"\") = %d, want 0", got)
	}
	if got := childRank("3"); got != 3 {
		t.Errorf("childRank(\"3\") = %d, want 3", got)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Old town | Blue doors |Market", []string{"Old town", "Blue doors", "Market"}},
		{"Single", []string{"Single"}},
		{"", []string{}},
		{"   ", []string{}},
	}
	for _, tt := range tests {
		got := splitList(tt.input)
		if got == nil {
			t.Errorf("splitList(%q) returned nil", tt.input)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolveRegion(t *testing.T) {
	regions := map[string]string{"north": "The North", "blank": ""}

	if got := resolveRegion("north", regions); got != "The North" {
		t.Errorf("known id = %q, want The North", got)
	}
	if got := resolveRegion("sahara", regions); got != "sahara" {
		t.Errorf("unknown id = %q, want raw id", got)
	}
	if got := resolveRegion("blank", regions); got != "blank" {
		t.Errorf("empty name = %q, want raw id", got)
	}
	if got := resolveRegion("", regions); got != "" {
		t.Errorf("empty id = %q, want empty", got)
	}
}

func TestNewStorySummaryDefaults(t *testing.T) {
	s := newStorySummary(sheets.Row{"slug": "salt-flats", "title": "Salt Flats"})
	if s.Category != "Essay" {
		t.Errorf("Category = %q, want Essay", s.Category)
	}
	if s.ReadTime != "5 min" {
		t.Errorf("ReadTime = %q, want 5 min", s.ReadTime)
	}
	if s.Featured {
		t.Errorf("Featured = true, want false")
	}
}

func TestNewStoryDefaults(t *testing.T) {
	s := newStory(sheets.Row{"slug": "douz", "title": "Edge of the Sand"}, nil)
	if s.Author != "Jacqueline Ng" {
		t.Errorf("Author = %q, want default author", s.Author)
	}
	if s.Category != "Essay" || s.ReadTime != "5 min" {
		t.Errorf("defaults = %q/%q", s.Category, s.ReadTime)
	}
}

func TestNewStoryImageAltFallback(t *testing.T) {
	img := newStoryImage(sheets.Row{"image_url": "https://x/p.jpg", "caption": "dusk"}, "Edge of the Sand")
	if img.Alt != "Edge of the Sand" {
		t.Errorf("Alt = %q, want story title", img.Alt)
	}

	img = newStoryImage(sheets.Row{"image_url": "https://x/p.jpg", "alt": "Dunes at dusk"}, "Edge of the Sand")
	if img.Alt != "Dunes at dusk" {
		t.Errorf("Alt = %q, want explicit alt", img.Alt)
	}
}

func TestPublishedSortedFiltersAndOrders(t *testing.T) {
	rows := []sheets.Row{
		{"slug": "a", "published": "TRUE", "order": "2"},
		{"slug": "b", "published": "FALSE", "order": "1"},
		{"slug": "c", "published": "true", "order": "1"},
		{"slug": "d", "published": "TRUE"},
		{"slug": "e", "published": "TRUE", "order": "junk"},
	}
	got := publishedSorted(rows)
	want := []string{"c", "a", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i, slug := range want {
		if got[i]["slug"] != slug {
			t.Errorf("position %d = %q, want %q", i, got[i]["slug"], slug)
		}
	}
}

func TestNewPlaceConvertsDriveURL(t *testing.T) {
	p := newPlace(sheets.Row{
		"slug":       "sidi-bou-said",
		"hero_image": "https://drive.google.com/file/d/abc123/view",
		"highlights": "Blue doors|Cliff cafes",
	}, nil, nil)
	if p.HeroImage != "https://drive.google.com/uc?export=view&id=abc123" {
		t.Errorf("HeroImage = %q", p.HeroImage)
	}
	if len(p.Highlights) != 2 || p.Highlights[1] != "Cliff cafes" {
		t.Errorf("Highlights = %v", p.Highlights)
	}
}
