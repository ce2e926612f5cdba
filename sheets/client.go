// Package sheets fetches content rows from a Google Sheets spreadsheet.
// Each worksheet is treated as a table: the first row holds column names,
// every following row becomes a string-keyed record.
package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Row is one spreadsheet row keyed by column name. All values are strings.
type Row map[string]string

var (
	ErrNotFound     = errors.New("sheets: not found")
	ErrUnauthorized = errors.New("sheets: unauthorized")
	ErrForbidden    = errors.New("sheets: forbidden")
)

// Client reads worksheets through the Sheets v4 values endpoint.
type Client struct {
	base string
	id   string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
	log  zerolog.Logger
}

// New creates a Client for one spreadsheet. rps bounds client-side request
// rate; values <= 0 fall back to 5.
func New(base, spreadsheetID, apiKey string, rps int, log zerolog.Logger) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("sheets: API key is required")
	}
	if base == "" {
		base = "https://sheets.googleapis.com"
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		id:   spreadsheetID,
		key:  apiKey,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
		log:  log,
	}, nil
}

type valueRange struct {
	Values [][]string `json:"values"`
}

// Rows fetches a worksheet by name and returns its records in sheet order.
// A missing worksheet maps to ErrNotFound. Failed fetches are never retried;
// the caller decides how to degrade.
func (c *Client) Rows(ctx context.Context, table string) ([]Row, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.base, url.PathEscape(c.id), url.PathEscape(table), url.QueryEscape(c.key))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("sheets: fetch %s: %w", table, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		c.log.Error().Int("status", resp.StatusCode).Str("table", table).Msg("sheets fetch failed")
		return nil, fmt.Errorf("sheets: fetch %s: remote %d", table, resp.StatusCode)
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("sheets: decode %s: %w", table, err)
	}
	return zipRows(vr.Values), nil
}

// zipRows pairs the header row with each data row. Short rows are padded
// with empty strings; extra cells beyond the header are dropped.
func zipRows(values [][]string) []Row {
	if len(values) == 0 {
		return nil
	}
	header := values[0]
	rows := make([]Row, 0, len(values)-1)
	for _, cells := range values[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
