// api/page_fetcher.go
package api

import (
	"io"
	"net/http"
	"time"

	"oh-server/models"
)

// PageFetcher resolves a shareable place link to its canonical page and
// fetches the raw document body. The upstream provider's anti-bot heuristics
// reject obvious non-browser clients, so every request carries a browser-like
// User-Agent.
type PageFetcher struct {
	HTTPClient *http.Client
	UserAgent  string
}

// NewPageFetcher creates a new instance of PageFetcher with the given identity
// header and request timeout. The timeout also bounds hung fetches; a timeout
// surfaces as a FetchFailure like any other network error.
func NewPageFetcher(userAgent string, timeout time.Duration) *PageFetcher {
	return &PageFetcher{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: userAgent,
	}
}

// FetchCanonical follows the share link's redirect chain with a HEAD request
// to discover the canonical URL, then GETs that URL and returns the body.
func (c *PageFetcher) FetchCanonical(placeLink string) (*models.RawDocument, error) {
	canonicalURL, err := c.resolveCanonicalURL(placeLink)
	if err != nil {
		return nil, err
	}

	body, err := c.fetchBody(canonicalURL)
	if err != nil {
		return nil, err
	}

	return &models.RawDocument{
		PlaceLink:    placeLink,
		CanonicalURL: canonicalURL,
		Body:         body,
	}, nil
}

func (c *PageFetcher) resolveCanonicalURL(placeLink string) (string, error) {
	req, err := http.NewRequest(http.MethodHead, placeLink, nil)
	if err != nil {
		return "", &models.FetchFailure{URL: placeLink, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		// Includes redirect loops rejected by the client and timeouts.
		return "", &models.FetchFailure{URL: placeLink, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &models.FetchFailure{URL: placeLink, StatusCode: res.StatusCode}
	}

	// The client has already followed the redirect chain; the request URL on
	// the final response is the canonical destination.
	return res.Request.URL.String(), nil
}

func (c *PageFetcher) fetchBody(canonicalURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, canonicalURL, nil)
	if err != nil {
		return "", &models.FetchFailure{URL: canonicalURL, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Language", "en")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", &models.FetchFailure{URL: canonicalURL, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &models.FetchFailure{URL: canonicalURL, StatusCode: res.StatusCode}
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &models.FetchFailure{URL: canonicalURL, Err: err}
	}

	return string(resBody), nil
}
