package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/devendraInfograins/CardApp/internal/config"
	"github.com/devendraInfograins/CardApp/internal/db"
	"github.com/devendraInfograins/CardApp/internal/security"
	"github.com/devendraInfograins/CardApp/internal/tokenstore"
)

var serverJWTConfig = config.JWTConfig{
	Secret: "server-test-secret",
	Expiry: config.Duration(time.Hour),
}

func setupServer(t *testing.T, revoker tokenstore.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:server_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, errOpen := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	engine := gin.New()
	RegisterRoutes(engine, conn, serverJWTConfig, revoker)
	return engine
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, errToken := security.GenerateAdminToken(serverJWTConfig.Secret, 1, "admin@blockchain.com", "Admin", "Admin", time.Hour)
	if errToken != nil {
		t.Fatalf("generate token: %v", errToken)
	}
	return token
}

func TestHealthzIsPublic(t *testing.T) {
	engine := setupServer(t, tokenstore.NewMemoryStore())

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
}

func TestProtectedRouteRequiresBearerToken(t *testing.T) {
	engine := setupServer(t, tokenstore.NewMemoryStore())

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/card-holder-list", nil))
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/card-holder-list", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	engine.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 with junk token, got %d", recorder.Code)
	}
}

func TestProtectedRouteAcceptsValidToken(t *testing.T) {
	engine := setupServer(t, tokenstore.NewMemoryStore())

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/card-holder-list", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	engine.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestRevokedTokenIsRejected(t *testing.T) {
	revoker := tokenstore.NewMemoryStore()
	engine := setupServer(t, revoker)
	token := adminToken(t)

	if errRevoke := revoker.Revoke(context.Background(), token, time.Hour); errRevoke != nil {
		t.Fatalf("revoke: %v", errRevoke)
	}

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/card-holder-list", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for revoked token, got %d", recorder.Code)
	}
}
