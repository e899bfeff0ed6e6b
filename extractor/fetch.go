package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Fetcher retrieves the raw tabular payload. Retrieval is the collaborator's
// concern; the engine only parses whatever the fetcher hands back.
type Fetcher interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
}

// HTTPFetcher retrieves the payload from an HTTP source, typically a
// published-spreadsheet export URL.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

func (f HTTPFetcher) Fetch(ctx context.Context) (io.ReadCloser, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", f.URL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, f.URL)
	}
	return resp.Body, nil
}

// FileFetcher reads the payload from a local file, mostly for the CLI and
// tests.
type FileFetcher struct {
	Path string
}

func (f FileFetcher) Fetch(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// NewFetcher picks a fetcher for the target: URLs go over HTTP, anything else
// is treated as a local path.
func NewFetcher(target string) Fetcher {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return HTTPFetcher{URL: target}
	}
	return FileFetcher{Path: target}
}
