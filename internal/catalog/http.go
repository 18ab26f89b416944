package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"paystate/internal/external"
	"paystate/internal/types"
)

// maxCatalogBody caps how much of an upstream catalog response is read (1 MB).
const maxCatalogBody = 1 << 20

// HTTPProvider fetches the catalog JSON from a remote endpoint through the
// resilient external client. Responses are cached against their ETag: the
// provider sends If-None-Match on subsequent fetches and serves the cached
// catalog on 304.
type HTTPProvider struct {
	client *external.Client
	url    string

	mu     sync.Mutex
	etag   string
	cached *types.PlanCatalog
}

// NewHTTPProvider creates a provider that fetches the catalog from url.
func NewHTTPProvider(client *external.Client, url string) *HTTPProvider {
	return &HTTPProvider{client: client, url: url}
}

// Catalog fetches the current catalog, serving the cached copy when the
// upstream reports it unchanged.
func (p *HTTPProvider) Catalog(ctx context.Context) (*types.PlanCatalog, error) {
	p.mu.Lock()
	etag := p.etag
	cached := p.cached
	p.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalUnexpected, "building catalog request", err)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		// Fall back to the last known catalog when the upstream is down;
		// a stale catalog beats no billing UI at all.
		if cached != nil {
			return cached, nil
		}
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified && cached != nil:
		return cached, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, types.NewAppError(types.ErrCodeNotFoundCatalog, "catalog endpoint returned 404", nil)
	case resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotModified:
		return nil, types.NewAppError(
			types.ErrCodeUpstreamCatalog,
			fmt.Sprintf("catalog endpoint returned %d", resp.StatusCode),
			nil,
		)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBody))
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamCatalog, "reading catalog response", err)
	}

	var catalog types.PlanCatalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, types.NewAppError(types.ErrCodeValidationCatalog, "parsing catalog response", err)
	}
	if err := checkCatalog(&catalog); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.etag = resp.Header.Get("ETag")
	p.cached = &catalog
	p.mu.Unlock()

	return &catalog, nil
}

var _ Provider = (*HTTPProvider)(nil)
