package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSystemHealth_ReportsVersion(t *testing.T) {
	h := NewSystemHandler("1.4.0", "2026-08-29T10:00:00Z")
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
	if body["version"] != "1.4.0" {
		t.Errorf("version = %q, want 1.4.0", body["version"])
	}
}

func TestSystemVersion_ReportsBuildInfo(t *testing.T) {
	h := NewSystemHandler("1.4.0", "2026-08-29T10:00:00Z")
	rec := httptest.NewRecorder()
	h.Version(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["buildTime"] != "2026-08-29T10:00:00Z" {
		t.Errorf("buildTime = %q", body["buildTime"])
	}
}
