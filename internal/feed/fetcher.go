package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

var (
	// ErrUnreachable covers transport failures, timeouts and non-2xx responses.
	ErrUnreachable = errors.New("feed unreachable")
	// ErrNotFound means a local feed path does not exist.
	ErrNotFound = errors.New("feed file not found")
	// ErrInvalidJSON means the feed body is not valid JSON.
	ErrInvalidJSON = errors.New("feed is not valid JSON")
)

const maxFeedBytes = 10 << 20 // remote feeds are operator supplied, cap the body

// Fetcher retrieves a JSON document from an HTTP(S) URL or a local path.
// Single attempt, no retries; callers decide whether to re-invoke.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher whose HTTP requests abort after timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// IsRemote reports whether location is an http/https URL.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Fetch loads and parses the document at location. Remote locations are
// fetched with a bounded GET; anything else is read as a local file.
func (f *Fetcher) Fetch(ctx context.Context, location string) (any, error) {
	var body []byte
	var err error
	if IsRemote(location) {
		body, err = f.fetchHTTP(ctx, location)
	} else {
		body, err = readLocal(location)
	}
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return doc, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnreachable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return body, nil
}

func readLocal(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return body, nil
}
