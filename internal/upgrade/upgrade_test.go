package upgrade

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNeedsUpgrade(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"v1.0.0", "v1.0.0", false},
		{"1.0.0", "v1.0.0", false},
		{"v1.0.0", "v1.1.0", true},
		{"dev", "v1.0.0", true},
		{"v1.0.0-3-gabc123", "v1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.current+"->"+tt.latest, func(t *testing.T) {
			if got := NeedsUpgrade(tt.current, tt.latest); got != tt.want {
				t.Errorf("NeedsUpgrade(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

func TestChecker_Check(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tag_name": "v2.0.0",
			"name": "landingkit v2.0.0",
			"html_url": "https://github.com/pandeptwidyaop/landing-kit/releases/tag/v2.0.0",
			"assets": [{"name": "` + AssetName() + `", "browser_download_url": "https://example.com/landingkit"}]
		}`))
	}))
	defer srv.Close()

	checker := NewChecker()
	checker.APIURL = srv.URL

	status, err := checker.Check(context.Background())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if status.Latest != "v2.0.0" {
		t.Errorf("expected latest v2.0.0, got %s", status.Latest)
	}
	if !status.UpdateAvailable {
		t.Error("expected update to be available for a dev build")
	}
	if status.AssetURL != "https://example.com/landingkit" {
		t.Errorf("unexpected asset url %s", status.AssetURL)
	}
}

func TestChecker_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	checker := NewChecker()
	checker.APIURL = srv.URL

	status, err := checker.Check(context.Background())
	if err == nil {
		t.Fatal("expected error for HTTP 403")
	}
	if status.Current == "" {
		t.Error("expected current version even on failure")
	}
}
