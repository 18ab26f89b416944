package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paystate/internal/external"
	"paystate/internal/types"
)

const catalogPayload = `{
	"version": "v7",
	"plans": [{"plan_id": "pro", "category": "paid"}]
}`

func newTestClient(srv *httptest.Server) *external.Client {
	policy := external.RetryPolicy{MaxRetries: 1, MinWait: time.Millisecond, MaxWait: time.Millisecond}
	return external.NewClient(srv.Client(), "catalog-test", policy, "paystate-test",
		external.WithSleepFunc(func(time.Duration) {}))
}

func TestHTTPProvider_FetchesAndCachesByETag(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("If-None-Match") == `"v7"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v7"`)
		w.Write([]byte(catalogPayload))
	}))
	defer srv.Close()

	p := NewHTTPProvider(newTestClient(srv), srv.URL)

	first, err := p.Catalog(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "v7", first.Version)

	second, err := p.Catalog(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPProvider_ServesStaleOnUpstreamFailure(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(catalogPayload))
	}))
	defer srv.Close()

	p := NewHTTPProvider(newTestClient(srv), srv.URL)

	first, err := p.Catalog(context.Background())
	require.NoError(t, err)

	healthy.Store(false)
	second, err := p.Catalog(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestHTTPProvider_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewHTTPProvider(newTestClient(srv), srv.URL)

	_, err := p.Catalog(context.Background())
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeNotFoundCatalog, appErr.Code)
}

func TestHTTPProvider_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{nope"))
	}))
	defer srv.Close()

	p := NewHTTPProvider(newTestClient(srv), srv.URL)

	_, err := p.Catalog(context.Background())
	require.Error(t, err)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeValidationCatalog, appErr.Code)
}
