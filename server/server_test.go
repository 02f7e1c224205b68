package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/allocation/returns"
	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := New(returns.Historical(), Config{Currency: "USD", CacheSize: 16})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestServer(t)
	for _, path := range []string{"/health", "/api/v1/health"} {
		w := do(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"status":"healthy"`) {
			t.Errorf("GET %s = %s, want healthy status", path, w.Body)
		}
	}
}

func TestSimulate(t *testing.T) {
	r := newTestServer(t)

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantYears []int
		wantFinal float64
	}{
		{
			name:      "stocks",
			body:      `{"initialValue":1000000,"equities":100,"bonds":0,"bitcoin":0,"years":3,"startYear":2014}`,
			wantCode:  http.StatusOK,
			wantYears: []int{2014, 2015, 2016},
			wantFinal: 1_291_268.16,
		},
		{
			name:      "normalized",
			body:      `{"initialValue":100,"equities":0,"bonds":0,"bitcoin":100,"years":1,"startYear":2014,"normalize":true}`,
			wantCode:  http.StatusOK,
			wantYears: []int{2014},
			// 50% equities at 13.7 and 50% bitcoin at -58.
			wantFinal: 77.85,
		},
		{
			name:     "malformed",
			body:     `{"initialValue":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "sum not 100",
			body:     `{"equities":50,"bonds":0,"bitcoin":0}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "too many years",
			body:     `{"equities":100,"bonds":0,"bitcoin":0,"years":1000}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "initial value too large",
			body:     `{"initialValue":1e300,"equities":0,"bonds":0,"bitcoin":100,"years":100,"startYear":2014}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "negative initial value",
			body:     `{"initialValue":-5,"equities":100,"bonds":0,"bitcoin":0}`,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// twice, the second time from the cache.
			for range 2 {
				w := do(r, http.MethodPost, "/api/v1/simulate", tc.body)
				if w.Code != tc.wantCode {
					t.Fatalf("POST /api/v1/simulate = %d %s, want %d", w.Code, w.Body, tc.wantCode)
				}
				if tc.wantCode != http.StatusOK {
					continue
				}
				var got struct {
					Years      []int   `json:"years"`
					FinalValue float64 `json:"finalValue"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatal(err)
				}
				if len(got.Years) != len(tc.wantYears) || got.Years[0] != tc.wantYears[0] {
					t.Errorf("years = %v, want %v", got.Years, tc.wantYears)
				}
				if d := got.FinalValue - tc.wantFinal; d > 1e-6 || d < -1e-6 {
					t.Errorf("finalValue = %v, want %v", got.FinalValue, tc.wantFinal)
				}
			}
		})
	}
}

func TestCompare(t *testing.T) {
	r := newTestServer(t)
	w := do(r, http.MethodPost, "/api/v1/compare", `{"equities":60,"bonds":30,"bitcoin":10,"years":5,"startYear":2018}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/v1/compare = %d %s", w.Code, w.Body)
	}
	var got struct {
		Results []struct {
			Name   string `json:"name"`
			Result struct {
				Years []int `json:"years"`
			} `json:"result"`
		} `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range got.Results {
		names = append(names, e.Name)
		if len(e.Result.Years) != 5 {
			t.Errorf("%s simulated %d years, want 5", e.Name, len(e.Result.Years))
		}
	}
	if got, want := strings.Join(names, ","), "Your portfolio,Stocks,Classic 60/40"; got != want {
		t.Errorf("names = %s, want %s", got, want)
	}
}

func TestReturns(t *testing.T) {
	r := newTestServer(t)
	w := do(r, http.MethodGet, "/api/v1/returns", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/returns = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `{"year":2014,"equities":13.7,"bonds":6,"bitcoin":-58}`) {
		t.Errorf("GET /api/v1/returns = %s, want the 2014 row", w.Body)
	}
}

func TestChart(t *testing.T) {
	r := newTestServer(t)
	w := do(r, http.MethodGet, "/api/v1/chart.svg?equities=90&bonds=0&bitcoin=10&years=4&startYear=2015", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/chart.svg = %d %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !strings.HasPrefix(strings.TrimSpace(w.Body.String()), "<svg") {
		t.Errorf("body does not start with <svg: %.40s", w.Body)
	}

	w = do(r, http.MethodGet, "/api/v1/chart.svg?equities=10&bonds=0&bitcoin=10", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /api/v1/chart.svg with invalid mix = %d, want 400", w.Code)
	}
}

func TestCORS(t *testing.T) {
	r := newTestServer(t)
	w := do(r, http.MethodOptions, "/api/v1/simulate", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("OPTIONS = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
