package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zeusops/console/internal/handlers"
	"github.com/zeusops/console/internal/web"
)

func TestHomeRendersTimestampSpans(t *testing.T) {
	tmpl, err := web.Templates("../../templates")
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	rec := httptest.NewRecorder()
	handlers.Home(tmpl)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Count(body, "data-timestamp=") != 2 {
		t.Errorf("expected two timestamp spans:\n%s", body)
	}
	if !strings.Contains(body, `data-time-format="YYYY-MM-DD"`) {
		t.Errorf("date span missing its format attribute:\n%s", body)
	}
	if !strings.Contains(body, "<select") || !strings.Contains(body, "multiple") {
		t.Errorf("home page missing the multi-select:\n%s", body)
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != 200 || rec.Body.String() != "ok" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}
