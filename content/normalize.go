package content

import (
	"sort"
	"strconv"
	"strings"

	"github.com/indigoandlavender/slow-tunisia/sheets"
)

// unorderedRank is the sort sentinel for rows whose order column is missing
// or unparsable; they sort after every explicitly ordered row.
const unorderedRank = 999

const (
	defaultCategory = "Essay"
	defaultReadTime = "5 min"
	defaultAuthor   = "Jacqueline Ng"
)

// flag reports whether a raw cell is truthy. Only the literal strings
// "TRUE" and "true" count; anything else, including absence, is false.
func flag(v string) bool {
	return v == "TRUE" || v == "true"
}

// sortRank parses a row's order column for listing sorts.
func sortRank(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return unorderedRank
	}
	return n
}

// childRank parses a child row's order column; unordered children sort first.
func childRank(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

// splitList splits a delimited cell on "|" and trims each entry.
// Empty input yields an empty, non-nil slice so JSON encodes [].
func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return []string{}
	}
	parts := strings.Split(v, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// fieldOr returns the cell value, or def when the cell is absent or empty.
func fieldOr(row sheets.Row, key, def string) string {
	if v := row[key]; v != "" {
		return v
	}
	return def
}

// regionLookup builds a region_id -> display name index from the Regions rows.
func regionLookup(rows []sheets.Row) map[string]string {
	m := make(map[string]string, len(rows))
	for _, r := range rows {
		m[r["region_id"]] = r["name"]
	}
	return m
}

// resolveRegion maps a region id to its display name, falling back to the
// raw id, then to the empty string.
func resolveRegion(regionID string, regions map[string]string) string {
	if name, ok := regions[regionID]; ok && name != "" {
		return name
	}
	return regionID
}

func newPlaceSummary(row sheets.Row, regions map[string]string) PlaceSummary {
	return PlaceSummary{
		Slug:      row["slug"],
		Name:      row["name"],
		Region:    resolveRegion(row["region_id"], regions),
		HeroImage: sheets.ConvertDriveURL(row["hero_image"]),
		Excerpt:   row["excerpt"],
	}
}

func newPlace(row sheets.Row, regions map[string]string, dests []Destination) Place {
	return Place{
		Slug:         row["slug"],
		Name:         row["name"],
		Region:       resolveRegion(row["region_id"], regions),
		RegionID:     row["region_id"],
		HeroImage:    sheets.ConvertDriveURL(row["hero_image"]),
		Excerpt:      row["excerpt"],
		Body:         row["body"],
		Highlights:   splitList(row["highlights"]),
		BestTime:     row["best_time"],
		Destinations: dests,
	}
}

func newDestination(row sheets.Row) Destination {
	return Destination{
		Name:        row["name"],
		Type:        row["type"],
		Description: row["description"],
	}
}

func newStorySummary(row sheets.Row) StorySummary {
	return StorySummary{
		Slug:      row["slug"],
		Title:     row["title"],
		Subtitle:  row["subtitle"],
		Category:  fieldOr(row, "category", defaultCategory),
		Region:    row["region"],
		HeroImage: sheets.ConvertDriveURL(row["hero_image"]),
		Excerpt:   row["excerpt"],
		ReadTime:  fieldOr(row, "read_time", defaultReadTime),
		Featured:  flag(row["featured"]),
	}
}

func newStory(row sheets.Row, images []StoryImage) Story {
	return Story{
		Slug:        row["slug"],
		Title:       row["title"],
		Subtitle:    row["subtitle"],
		Category:    fieldOr(row, "category", defaultCategory),
		Region:      row["region"],
		HeroImage:   sheets.ConvertDriveURL(row["hero_image"]),
		HeroCaption: row["hero_caption"],
		Excerpt:     row["excerpt"],
		Body:        row["body"],
		ReadTime:    fieldOr(row, "read_time", defaultReadTime),
		Author:      fieldOr(row, "author", defaultAuthor),
		Sources:     row["sources"],
		Images:      images,
	}
}

// newStoryImage builds one gallery image; alt falls back to the parent
// story's title.
func newStoryImage(row sheets.Row, storyTitle string) StoryImage {
	return StoryImage{
		URL:     sheets.ConvertDriveURL(row["image_url"]),
		Caption: row["caption"],
		Alt:     fieldOr(row, "alt", storyTitle),
	}
}

// publishedSorted filters rows to published ones and stable-sorts them
// ascending by order rank, so unordered rows keep their sheet order at
// the end of the listing.
func publishedSorted(rows []sheets.Row) []sheets.Row {
	kept := make([]sheets.Row, 0, len(rows))
	for _, r := range rows {
		if flag(r["published"]) {
			kept = append(kept, r)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return sortRank(kept[i]["order"]) < sortRank(kept[j]["order"])
	})
	return kept
}
