package screens_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tadbeerx/admin-console/internal/screens"
)

func TestReference_LoadCombined(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(`{
		"nationalities":[{"id":"n1","name":"Filipino","active":true}],
		"skills":[{"id":"s1","name":"Cooking","category":"household","active":true}],
		"languages":[{"id":"l1","name":"Arabic","active":true}]
	}`))
	defer srv.Close()

	s := screens.NewReference(newScreenClient(t, srv))
	s.Load(context.Background())

	if s.Err != "" {
		t.Fatalf("unexpected error: %q", s.Err)
	}
	if len(s.Nationalities) != 1 || len(s.Skills) != 1 || len(s.Languages) != 1 {
		t.Fatalf("tables not populated: %d/%d/%d", len(s.Nationalities), len(s.Skills), len(s.Languages))
	}
}

func TestReference_SetTab(t *testing.T) {
	s := screens.NewReference(nil)
	if s.Tab != screens.TabNationalities {
		t.Fatalf("default tab = %q", s.Tab)
	}
	s.SetTab(screens.TabSkills)
	if s.Tab != screens.TabSkills {
		t.Fatalf("tab = %q, want skills", s.Tab)
	}
	s.SetTab("bogus")
	if s.Tab != screens.TabSkills {
		t.Fatalf("unknown tab must be ignored, got %q", s.Tab)
	}
}

func TestReference_ToggleActive_SendsInverse(t *testing.T) {
	var patched map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPut {
			_ = json.NewDecoder(r.Body).Decode(&patched)
			_, _ = w.Write([]byte(`{"skill":{"id":"s1","active":false}}`))
			return
		}
		_, _ = w.Write([]byte(`{"nationalities":[],"skills":[],"languages":[]}`))
	}))
	defer srv.Close()

	s := screens.NewReference(newScreenClient(t, srv))
	s.ToggleSkillActive(context.Background(), "s1", true)

	if v, ok := patched["active"].(bool); !ok || v {
		t.Fatalf("expected active=false in payload, got %v", patched)
	}
	if s.Err != "" {
		t.Fatalf("unexpected error: %q", s.Err)
	}
}
