package test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomiceli/gistindex/internal/config"
	"github.com/thomiceli/gistindex/internal/gist"
	"github.com/thomiceli/gistindex/internal/github"
	"github.com/thomiceli/gistindex/internal/web/server"
)

type testServer struct {
	server *server.Server
}

type response struct {
	code        int
	contentType string
	body        string
}

func setup(t *testing.T) {
	t.Setenv("GISTINDEX_CONFIG", "")

	err := config.InitConfig("", io.Discard)
	require.NoError(t, err, "Could not init config")

	config.C.LogLevel = "error"
	config.InitLog()
}

func newTestServer(fetcher gist.Fetcher) *testServer {
	return &testServer{server: server.NewServer(fetcher)}
}

func (s *testServer) request(t *testing.T, method, uri string) response {
	t.Helper()

	req := httptest.NewRequest(method, "http://localhost:8080"+uri, nil)
	w := httptest.NewRecorder()

	s.server.ServeHTTP(w, req)

	return response{
		code:        w.Code,
		contentType: w.Header().Get("Content-Type"),
		body:        w.Body.String(),
	}
}

// fetcherStub records the users it is asked for and answers with fixed gists
// or a fixed error.
type fetcherStub struct {
	mu    sync.Mutex
	users []string

	gists []github.Gist
	err   error
}

func (f *fetcherStub) FetchGists(_ context.Context, user string) ([]github.Gist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.users = append(f.users, user)
	return f.gists, f.err
}

func (f *fetcherStub) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.users...)
}

// newUpstream starts a fake GitHub API answering every gist listing with
// code and body.
func newUpstream(t *testing.T, code int, body string) *httptest.Server {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(upstream.Close)

	return upstream
}
