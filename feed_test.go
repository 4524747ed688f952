package assetbloc

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.json")
	content := `[
		{"asset": 1, "url": "https://example.com/appraisal", "path": "$.value"},
		{"asset": 2, "url": "https://example.com/other", "path": "$.price.estimate"}
	]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	feeds, err := LoadFeeds(path)
	if err != nil {
		t.Fatalf("LoadFeeds() error: %v", err)
	}
	if len(feeds) != 2 {
		t.Fatalf("loaded %d feeds, want 2", len(feeds))
	}
	if feeds[0].AssetID != 1 || feeds[0].Path != "$.value" {
		t.Errorf("feeds[0] = %+v", feeds[0])
	}

	if _, err := LoadFeeds(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFeeds succeeded on a missing file")
	}
}

func TestFetchValuation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"price": {"estimate": 3.5}}`))
	}))
	defer server.Close()

	feed := ValuationFeed{AssetID: 1, URL: server.URL, Path: "$.price.estimate"}
	val, err := fetchValuation(server.Client(), feed)
	if err != nil {
		t.Fatalf("fetchValuation() error: %v", err)
	}
	if val != 3.5 {
		t.Errorf("valuation = %v, want 3.5", val)
	}

	feed.Path = "$.price.wrong"
	if _, err := fetchValuation(server.Client(), feed); err == nil {
		t.Error("fetchValuation succeeded on a missing path")
	}
}
