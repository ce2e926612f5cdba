package content

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/indigoandlavender/slow-tunisia/sheets"
)

// ErrNotFound is returned when no row matches a requested slug.
var ErrNotFound = errors.New("content: not found")

// Worksheet names in the backing spreadsheet.
const (
	tablePlaces       = "Places"
	tableRegions      = "Regions"
	tableDestinations = "Destinations"
	tableStories      = "Stories"
	tableStoryImages  = "Story_Images"
)

// Source provides ordered rows for a named worksheet. *sheets.Client and
// *CachedSource both satisfy it.
type Source interface {
	Rows(ctx context.Context, table string) ([]sheets.Row, error)
}

// Service composes the sheet source into the listing and detail operations
// behind the API and the pages. It holds no mutable state; every call
// re-reads from the source.
type Service struct {
	src Source
	log zerolog.Logger
}

func NewService(src Source, log zerolog.Logger) *Service {
	return &Service{src: src, log: log}
}

// ListPlaces returns published places sorted ascending by order, shaped for
// card views. Regions are fetched alongside to resolve display names.
func (s *Service) ListPlaces(ctx context.Context) ([]PlaceSummary, error) {
	var placeRows, regionRows []sheets.Row
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		placeRows, err = s.src.Rows(gctx, tablePlaces)
		return err
	})
	g.Go(func() (err error) {
		regionRows, err = s.src.Rows(gctx, tableRegions)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Msg("list places failed")
		return nil, err
	}

	regions := regionLookup(regionRows)
	rows := publishedSorted(placeRows)
	out := make([]PlaceSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, newPlaceSummary(r, regions))
	}
	return out, nil
}

// GetPlace returns one place by slug with its destinations attached, or
// ErrNotFound when no row matches.
func (s *Service) GetPlace(ctx context.Context, slug string) (Place, error) {
	placeRows, err := s.src.Rows(ctx, tablePlaces)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("get place failed")
		return Place{}, err
	}
	row, ok := findBySlug(placeRows, "slug", slug)
	if !ok {
		return Place{}, ErrNotFound
	}

	var regionRows, destRows []sheets.Row
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		regionRows, err = s.src.Rows(gctx, tableRegions)
		return err
	})
	g.Go(func() (err error) {
		destRows, err = s.src.Rows(gctx, tableDestinations)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("get place joins failed")
		return Place{}, err
	}

	dests := make([]Destination, 0, 4)
	for _, d := range destRows {
		if d["place_slug"] == slug {
			dests = append(dests, newDestination(d))
		}
	}
	return newPlace(row, regionLookup(regionRows), dests), nil
}

// ListStories returns published stories sorted ascending by order, shaped
// for card views.
func (s *Service) ListStories(ctx context.Context) ([]StorySummary, error) {
	rows, err := s.src.Rows(ctx, tableStories)
	if err != nil {
		s.log.Error().Err(err).Msg("list stories failed")
		return nil, err
	}
	kept := publishedSorted(rows)
	out := make([]StorySummary, 0, len(kept))
	for _, r := range kept {
		out = append(out, newStorySummary(r))
	}
	return out, nil
}

// GetStory returns one story by slug with its gallery images attached in
// ascending order, or ErrNotFound when no row matches.
func (s *Service) GetStory(ctx context.Context, slug string) (Story, error) {
	storyRows, err := s.src.Rows(ctx, tableStories)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("get story failed")
		return Story{}, err
	}
	row, ok := findBySlug(storyRows, "slug", slug)
	if !ok {
		return Story{}, ErrNotFound
	}

	imageRows, err := s.src.Rows(ctx, tableStoryImages)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("get story images failed")
		return Story{}, err
	}
	var matched []sheets.Row
	for _, r := range imageRows {
		if r["story_slug"] == slug {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return childRank(matched[i]["order"]) < childRank(matched[j]["order"])
	})
	images := make([]StoryImage, 0, len(matched))
	for _, r := range matched {
		images = append(images, newStoryImage(r, row["title"]))
	}
	return newStory(row, images), nil
}

// findBySlug returns the first row whose key column equals want. Slugs are
// assumed unique within a worksheet.
func findBySlug(rows []sheets.Row, key, want string) (sheets.Row, bool) {
	for _, r := range rows {
		if r[key] == want {
			return r, true
		}
	}
	return nil, false
}
