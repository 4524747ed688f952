package assetbloc

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDayCacheReplays(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"value": 42}`)
	}))
	defer server.Close()

	// The cache keys on the full URL, a unique path isolates this run.
	addr := fmt.Sprintf("%s/appraisal/%d", server.URL, time.Now().UnixNano())
	client := &http.Client{Transport: &dayCache{next: http.DefaultTransport}}

	var first, second map[string]any
	if err := getJSON(client, addr, &first); err != nil {
		t.Fatalf("first GET failed: %v", err)
	}
	if err := getJSON(client, addr, &second); err != nil {
		t.Fatalf("second GET failed: %v", err)
	}

	if hits != 1 {
		t.Errorf("server hit %d times, want the second call replayed from cache", hits)
	}
	if second["value"] != 42.0 {
		t.Errorf("cached value = %v, want 42", second["value"])
	}
}
