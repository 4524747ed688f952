package assetbloc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// ValuationFeed describes where to fetch an asset's market appraisal: a JSON
// endpoint and a jsonpath expression selecting the value inside the response.
type ValuationFeed struct {
	AssetID int64  `json:"asset"`
	URL     string `json:"url"`
	Path    string `json:"path"`
}

// LoadFeeds reads valuation feed definitions from a JSON file.
func LoadFeeds(path string) ([]ValuationFeed, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read feeds file %q: %w", path, err)
	}
	var feeds []ValuationFeed
	if err := json.Unmarshal(content, &feeds); err != nil {
		return nil, fmt.Errorf("could not parse feeds file %q: %w", path, err)
	}
	return feeds, nil
}

// fetchValuation fetches the feed's endpoint and extracts the appraised value.
func fetchValuation(client *http.Client, feed ValuationFeed) (float64, error) {
	var jobj any
	if err := getJSON(client, feed.URL, &jobj); err != nil {
		return 0, fmt.Errorf("error fetching asset %d feed: %w", feed.AssetID, err)
	}
	jval, err := jsonpath.Get(feed.Path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing asset %d response: %q %w", feed.AssetID, feed.Path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing asset %d response: %q %s %v", feed.AssetID, feed.Path, "not a float", jval)
	}
	return val, nil
}

// UpdateValuations fetches the latest appraisal for each feed and records the
// new asset values on behalf of the administrator. Feeds that fail are
// reported together, the others still apply.
func (l *Ledger) UpdateValuations(actor string, feeds []ValuationFeed) error {
	client := cachedClient()
	var errs error

	for _, feed := range feeds {
		val, err := fetchValuation(client, feed)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if val <= 0 {
			errs = errors.Join(errs, fmt.Errorf("asset %d: non-positive appraisal %v", feed.AssetID, val))
			continue
		}
		tx := NewEditAsset(Today(), "appraisal feed", actor, feed.AssetID, "", "", M(val, ""), 0, Money{})
		if err := l.Apply(tx); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
