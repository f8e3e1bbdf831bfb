package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pandeptwidyaop/landing-kit/internal/handlers"
	"github.com/pandeptwidyaop/landing-kit/internal/upgrade"
)

func TestVersionHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := handlers.NewVersionHandler(upgrade.NewChecker())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/version", nil)

	handler.Get(c)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["version"] == "" {
		t.Error("expected version in response")
	}
}

func TestVersionHandler_CheckUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	releases := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer releases.Close()

	checker := upgrade.NewChecker()
	checker.APIURL = releases.URL
	handler := handlers.NewVersionHandler(checker)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/version/check", nil)

	handler.CheckUpdate(c)

	// Should always return 200 even if check fails
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["current"] == nil {
		t.Error("expected current version in response")
	}
	if response["update_available"] != false {
		t.Error("expected update_available false when the check fails")
	}
}
