package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"artbook_backend/internal/app"
	"artbook_backend/internal/config"
	"artbook_backend/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

type TestServer struct {
	Server *httptest.Server
	App    *app.App

	// Fire releases one pending onboarding submission.
	Fire chan time.Time

	stopHub context.CancelFunc
}

// NewTestServer starts the full router over the in-memory seed catalog.
// Submissions wait on Fire instead of the clock.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Env = "test"

	fire := make(chan time.Time, 8)
	a, err := app.New(cfg, app.Dependencies{
		Metrics: metrics.NewManager(metrics.WithRegistry(prometheus.NewRegistry())),
		Delay:   func(time.Duration) <-chan time.Time { return fire },
	})
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go func() { _ = a.Hub().Run(hubCtx) }()

	ts := &TestServer{
		Server:  httptest.NewServer(a.Router()),
		App:     a,
		Fire:    fire,
		stopHub: stopHub,
	}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	ts.stopHub()
	ts.App.Close()
}

// WSURL turns a server path into a websocket URL.
func (ts *TestServer) WSURL(path string) string {
	return "ws" + strings.TrimPrefix(ts.Server.URL, "http") + path
}

// SendRequest sends body as JSON and returns the response with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}

// ParseResponse decodes body into target.
func ParseResponse(t *testing.T, body string, target interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), target); err != nil {
		t.Fatalf("failed to decode response %q: %v", body, err)
	}
}
