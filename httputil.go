package assetbloc

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
)

// dayCache is an http.RoundTripper that replays responses stored on disk.
// Today's date is part of the cache key, so every entry expires overnight:
// appraisal endpoints are polled at most once per day.
type dayCache struct {
	next http.RoundTripper
}

func (c *dayCache) cachePath(req *http.Request) string {
	sum := sha1.Sum(fmt.Appendf(nil, "%s %s %s", Today(), req.Method, req.URL))
	return filepath.Join(os.TempDir(), fmt.Sprintf("abc-%x", sum))
}

func (c *dayCache) RoundTrip(req *http.Request) (*http.Response, error) {
	path := c.cachePath(req)
	if stored, err := os.ReadFile(path); err == nil {
		return http.ReadResponse(bufio.NewReader(bytes.NewReader(stored)), req)
	}

	resp, err := c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)

	// Only successful responses are worth replaying tomorrow's twin request.
	if resp.StatusCode < 300 {
		if raw, err := httputil.DumpResponse(resp, true); err == nil {
			if err := os.WriteFile(path, raw, 0o600); err != nil {
				log.Printf("cache write err (ignored): %v", err)
			}
		}
	}
	return resp, nil
}

// cachedClient returns an HTTP client whose responses are cached for the day.
func cachedClient() *http.Client {
	return &http.Client{Transport: &dayCache{next: http.DefaultTransport}}
}

// getJSON fetches addr and decodes the JSON body into data.
func getJSON(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}
