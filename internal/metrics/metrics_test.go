package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/recipes/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	body := scrape(t, m)

	want := `http_requests_total{code="404",method="GET",route="/recipes/{id}"} 1`
	if !strings.Contains(body, want) {
		t.Errorf("expected %q in exposition:\n%s", want, body)
	}
	unmatched := `http_requests_total{code="404",method="GET",route="unmatched"} 1`
	if !strings.Contains(body, unmatched) {
		t.Errorf("expected %q in exposition:\n%s", unmatched, body)
	}
	if !strings.Contains(body, "http_request_duration_seconds_bucket") {
		t.Error("expected duration histogram in exposition")
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()

	r := chi.NewRouter()
	r.Use(a.Middleware)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Contains(scrape(t, b), `route="/"`) {
		t.Error("observations leaked into another registry")
	}
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("failed to read metrics: %v", err)
	}
	return string(body)
}
