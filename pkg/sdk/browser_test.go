package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/advmanik/casefolio/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCases() []schema.Case {
	return []schema.Case{
		{
			ID:       "1",
			Title:    "সিভিল মামলা - সম্পত্তি বিরোধ",
			Category: "সিভিল",
			Summary:  "জমি সংক্রান্ত মামলা।",
			Outcome:  "মক্কেল বিজয়ী হয়েছেন।",
		},
		{
			ID:       "2",
			Title:    "ফৌজদারি মামলা",
			Category: "ফৌজদারি",
			Summary:  "মিথ্যা অভিযোগের প্রতিরক্ষা।",
			Outcome:  "Full acquittal for the client.",
		},
		{
			ID:       "3",
			Title:    "আরেকটি সিভিল মামলা",
			Category: "সিভিল",
			Summary:  "চুক্তি ভঙ্গের দাবি।",
			Outcome:  "মীমাংসা হয়েছে।",
		},
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "helloworld42", NormalizeText("Hello, World 42!"))
	assert.Equal(t, "ধারা১৪৪", NormalizeText("ধারা ১৪৪"))
	assert.Equal(t, "ধারা১৪৪", NormalizeText("ধারা-১৪৪!"))
	assert.Equal(t, "", NormalizeText("—…()"))
}

func TestBrowserCategories(t *testing.T) {
	b := NewBrowser(sampleCases())
	assert.Equal(t, []string{AllCategories, "সিভিল", "ফৌজদারি"}, b.Categories())
}

func TestBrowserCategoryFilter(t *testing.T) {
	b := NewBrowser(sampleCases())

	assert.Len(t, b.Filter(AllCategories, ""), 3)

	civil := b.Filter("সিভিল", "")
	require.Len(t, civil, 2)
	assert.Equal(t, "1", civil[0].ID)
	assert.Equal(t, "3", civil[1].ID)

	assert.Empty(t, b.Filter("শ্রম", ""))
}

func TestBrowserSearchRawSubstring(t *testing.T) {
	b := NewBrowser(sampleCases())

	// Case-insensitive raw matching on any of the four fields.
	hits := b.Filter(AllCategories, "FULL ACQUITTAL")
	require.Len(t, hits, 1)
	assert.Equal(t, "2", hits[0].ID)

	hits = b.Filter(AllCategories, "চুক্তি")
	require.Len(t, hits, 1)
	assert.Equal(t, "3", hits[0].ID)
}

func TestBrowserSearchNormalized(t *testing.T) {
	b := NewBrowser(sampleCases())

	// "সম্পত্তিবিরোধ" has no space; the raw pass misses the spaced title but
	// the normalized pass matches it.
	hits := b.Filter(AllCategories, "সম্পত্তিবিরোধ")
	require.Len(t, hits, 1)
	assert.Equal(t, "1", hits[0].ID)
}

func TestBrowserSearchCombinesWithCategory(t *testing.T) {
	b := NewBrowser(sampleCases())

	hits := b.Filter("সিভিল", "মামলা")
	assert.Len(t, hits, 2)

	assert.Empty(t, b.Filter("ফৌজদারি", "চুক্তি"))
}

func TestBrowserFallsBackWhenEmpty(t *testing.T) {
	b := NewBrowser(nil)
	assert.Equal(t, FallbackCases(), b.Cases())
}

func TestLoadBrowserFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Database error"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	b := LoadBrowser(context.Background(), New(srv.URL))
	assert.Equal(t, FallbackCases(), b.Cases())
}

func TestLoadBrowserUsesFetchedCases(t *testing.T) {
	srv := newStubServer(t)

	b := LoadBrowser(context.Background(), New(srv.URL))
	require.Len(t, b.Cases(), 2)
	assert.Equal(t, "newer", b.Cases()[0].Title)
}
