package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appctx "AutoSync/pkg/context"
	"AutoSync/pkg/jwt"

	"github.com/gin-gonic/gin"
)

var testSecret = []byte("test-secret")

func newAuthRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{Auth(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := appctx.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": appctx.GetRole(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAcceptsValidAccessToken(t *testing.T) {
	token, err := jwt.GenerateToken(testSecret, 7, "manager", jwt.TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	w := doRequest(t, newAuthRouter(), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", w.Code, w.Body.String())
	}
}

func TestAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	r := newAuthRouter()
	for _, header := range []string{"", "Token abc", "Bearer"} {
		if w := doRequest(t, r, header); w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestAuthRejectsRefreshToken(t *testing.T) {
	token, err := jwt.GenerateToken(testSecret, 7, "manager", jwt.TypeRefresh, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if w := doRequest(t, newAuthRouter(), "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireRoleGatesByRole(t *testing.T) {
	r := newAuthRouter("admin", "manager")

	sellerToken, err := jwt.GenerateToken(testSecret, 8, "seller", jwt.TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if w := doRequest(t, r, "Bearer "+sellerToken); w.Code != http.StatusForbidden {
		t.Fatalf("seller: status = %d, want 403", w.Code)
	}

	adminToken, err := jwt.GenerateToken(testSecret, 9, "admin", jwt.TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if w := doRequest(t, r, "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, want 200", w.Code)
	}
}
