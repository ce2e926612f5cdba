package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/indigoandlavender/slow-tunisia/sheets"
)

func TestCachedSourceReusesFreshSnapshot(t *testing.T) {
	src := newFakeSource()
	src.tables["Places"] = []sheets.Row{{"slug": "tunis"}}
	cached := NewCachedSource(src, time.Minute)

	for i := 0; i < 3; i++ {
		rows, err := cached.Rows(context.Background(), "Places")
		if err != nil {
			t.Fatalf("Rows returned error: %v", err)
		}
		if len(rows) != 1 || rows[0]["slug"] != "tunis" {
			t.Fatalf("rows = %v", rows)
		}
	}
	if src.calls["Places"] != 1 {
		t.Errorf("source fetched %d times, want 1", src.calls["Places"])
	}
}

func TestCachedSourceIsPerTable(t *testing.T) {
	src := newFakeSource()
	cached := NewCachedSource(src, time.Minute)

	cached.Rows(context.Background(), "Places")
	cached.Rows(context.Background(), "Stories")
	if src.calls["Places"] != 1 || src.calls["Stories"] != 1 {
		t.Errorf("calls = %v, want one per table", src.calls)
	}
}

func TestCachedSourceExpires(t *testing.T) {
	src := newFakeSource()
	cached := NewCachedSource(src, 20*time.Millisecond)

	cached.Rows(context.Background(), "Places")
	time.Sleep(40 * time.Millisecond)
	cached.Rows(context.Background(), "Places")
	if src.calls["Places"] != 2 {
		t.Errorf("source fetched %d times, want 2 after expiry", src.calls["Places"])
	}
}

func TestCachedSourceDoesNotCacheErrors(t *testing.T) {
	src := newFakeSource()
	src.errs["Places"] = errors.New("remote down")
	cached := NewCachedSource(src, time.Minute)

	if _, err := cached.Rows(context.Background(), "Places"); err == nil {
		t.Fatalf("expected error from source")
	}
	src.errs["Places"] = nil
	src.tables["Places"] = []sheets.Row{{"slug": "tunis"}}
	rows, err := cached.Rows(context.Background(), "Places")
	if err != nil {
		t.Fatalf("Rows after recovery returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %v", rows)
	}
	if src.calls["Places"] != 2 {
		t.Errorf("source fetched %d times, want 2", src.calls["Places"])
	}
}

func TestCachedSourceInvalidate(t *testing.T) {
	src := newFakeSource()
	cached := NewCachedSource(src, time.Minute)

	cached.Rows(context.Background(), "Places")
	cached.Invalidate()
	cached.Rows(context.Background(), "Places")
	if src.calls["Places"] != 2 {
		t.Errorf("source fetched %d times, want 2 after invalidate", src.calls["Places"])
	}
}
