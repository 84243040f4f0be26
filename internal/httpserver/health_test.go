package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAPIInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &HTTPServer{gin: gin.New()}
	api := srv.gin.Group("/api")
	api.GET("/info", srv.apiInfo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if body.Data["message"] != "EasyNote API 运行中" {
		t.Errorf("unexpected message %q", body.Data["message"])
	}
	if body.Data["version"] != HealthVersion {
		t.Errorf("unexpected version %q", body.Data["version"])
	}
	if body.Data["docs"] != "/swagger/index.html" {
		t.Errorf("unexpected docs path %q", body.Data["docs"])
	}
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &HTTPServer{gin: gin.New()}
	srv.gin.GET("/health", srv.healthCheck)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Data["status"] != "healthy" {
		t.Errorf("unexpected status %q", body.Data["status"])
	}
	if body.Data["service"] != ServiceName {
		t.Errorf("unexpected service %q", body.Data["service"])
	}
}
