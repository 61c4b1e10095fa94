package binlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, <-chan string) {
	t.Helper()

	paths := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case paths <- r.URL.Path:
		default:
		}
		assert.Equal(t, "3", r.Header.Get("Accept-Version"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, paths
}

func TestClient_ResolveCountry(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			body:     `{"scheme":"visa","country":{"numeric":"840","alpha2":"US","name":"United States of America"}}`,
			wantCode: "US",
		},
		{
			name:     "alpha2 passed through verbatim",
			status:   http.StatusOK,
			body:     `{"country":{"alpha2":"gbr"}}`,
			wantCode: "gbr",
		},
		{
			name:     "body without country",
			status:   http.StatusOK,
			body:     `{"scheme":"visa"}`,
			wantKind: KindNotFound,
			wantMsg:  "Country not found",
		},
		{
			name:     "null country",
			status:   http.StatusOK,
			body:     `{"country":null}`,
			wantKind: KindNotFound,
			wantMsg:  "Country not found",
		},
		{
			name:     "remote 404",
			status:   http.StatusNotFound,
			wantKind: KindNotFound,
			wantMsg:  "404 Not Found",
		},
		{
			name:     "remote 429",
			status:   http.StatusTooManyRequests,
			wantKind: KindRateLimited,
			wantMsg:  "429 Too Many Requests",
		},
		{
			name:     "remote 400 with body",
			status:   http.StatusBadRequest,
			body:     "bad bin",
			wantKind: KindBadRequest,
			wantMsg:  "400 Bad Request: bad bin",
		},
		{
			name:     "remote 500",
			status:   http.StatusInternalServerError,
			wantKind: KindInternal,
			wantMsg:  "500 Internal Server Error",
		},
		{
			name:     "malformed json",
			status:   http.StatusOK,
			body:     `{"country":`,
			wantKind: KindInternal,
		},
		{
			name:     "country without alpha2",
			status:   http.StatusOK,
			body:     `{"country":{"name":"Nowhere"}}`,
			wantKind: KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, paths := newTestServer(t, tt.status, tt.body)
			client := NewClient(srv.URL, srv.Client())

			code, err := client.ResolveCountry(context.Background(), "45717360")

			assert.Equal(t, "/45717360", <-paths)
			if tt.wantCode != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCode, code)
				return
			}

			var lerr *LookupError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, tt.wantKind, lerr.Kind)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, lerr.Message)
			}
			assert.Empty(t, code)
		})
	}
}

func TestClient_ResolveCountry_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, nil).ResolveCountry(context.Background(), "45717360")

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindInternal, lerr.Kind)
	assert.NotContains(t, lerr.Message, "45717360")
}

func TestClient_ResolveCountry_CanceledContext(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"country":{"alpha2":"US"}}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, srv.Client()).ResolveCountry(ctx, "45717360")

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindInternal, lerr.Kind)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", nil)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, http.DefaultClient, c.httpClient)

	c = NewClient("http://localhost:9999", nil)
	assert.Equal(t, "http://localhost:9999/", c.baseURL)
}
