package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julianunes2703/ipp/extractor"
)

type stubFetcher struct {
	payload string
	err     error
}

func (f stubFetcher) Fetch(ctx context.Context) (io.ReadCloser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.payload)), nil
}

const testPayload = `,Conta,Jan/25,Fev/25,Mar/25
,Receita Líquida (=),"1.000,00","1.100,00","1.200,00"
,EBITDA,"350,00","370,00","390,00"
`

func newTestServer(t *testing.T, fetcher extractor.Fetcher) *Server {
	t.Helper()
	engine := extractor.NewEngine(extractor.DefaultConfig(), extractor.FormatCSV, fetcher)
	return New(DefaultConfig(), engine)
}

func refreshedServer(t *testing.T) *Server {
	t.Helper()
	server := newTestServer(t, stubFetcher{payload: testPayload})
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh failed with status %d", w.Code)
	}
	return server
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != ":8080" {
		t.Errorf("Expected port ':8080', got '%s'", cfg.Port)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t, stubFetcher{payload: testPayload})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response["status"])
	}
}

func TestRowsEndpoint(t *testing.T) {
	server := refreshedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/rows", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Rows    []json.RawMessage `json:"rows"`
		Months  []string          `json:"months"`
		Loading bool              `json:"loading"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(response.Rows))
	}
	if len(response.Months) != 3 {
		t.Errorf("Expected 3 months, got %d", len(response.Months))
	}
	if response.Loading {
		t.Error("Expected loading to be false")
	}
}

func TestValueEndpoint(t *testing.T) {
	server := refreshedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/value?key=ebitda&month=fev", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Value != "370" {
		t.Errorf("Expected value '370', got '%s'", response.Value)
	}
}

func TestValueEndpoint_MissingParams(t *testing.T) {
	server := refreshedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/value?key=ebitda", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestFindEndpoint_NotFound(t *testing.T) {
	server := refreshedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/find?key=unmapped_thing", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestDebugEndpoint(t *testing.T) {
	server := refreshedServer(t)

	req := httptest.NewRequest(http.MethodGet, "/debug?keys=ebitda,lucro_liquido", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var statuses []extractor.KeyStatus
	if err := json.NewDecoder(w.Body).Decode(&statuses); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("Expected 2 statuses, got %d", len(statuses))
	}
	if !statuses[0].Found {
		t.Error("Expected ebitda to be found")
	}
	if statuses[1].Found {
		t.Error("Expected lucro_liquido not to be found")
	}
}

func TestRefreshEndpoint_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t, stubFetcher{payload: testPayload})

	req := httptest.NewRequest(http.MethodGet, "/refresh", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestRefreshEndpoint_FetchFailure(t *testing.T) {
	server := newTestServer(t, stubFetcher{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Rows  int    `json:"rows"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Rows != 0 {
		t.Errorf("Expected empty snapshot, got %d rows", response.Rows)
	}
	if response.Error == "" {
		t.Error("Expected error message in response")
	}
}
