package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		email, role, _ := Identity(c)
		c.String(http.StatusOK, email+"|"+string(role))
	})
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	valid, err := tokens.Issue("ana@clinic.test", account.RoleDoctor)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r := newRouter(AuthMiddleware(tokens))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "missing_authorization_header"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "invalid_authorization_header"},
		{"garbage token", "Bearer abc", http.StatusUnauthorized, "invalid_token"},
		{"valid", "Bearer " + valid, http.StatusOK, "ana@clinic.test|doctor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := do(r, req)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.body) {
				t.Errorf("expected body to contain %q, got %s", tt.body, w.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	r := newRouter(AuthMiddleware(tokens), RequireRole(account.RoleAdmin, account.RoleDoctor))

	for role, want := range map[account.Role]int{
		account.RoleAdmin:   http.StatusOK,
		account.RoleDoctor:  http.StatusOK,
		account.RolePatient: http.StatusForbidden,
	} {
		token, _ := tokens.Issue("someone", role)
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		if w := do(r, req); w.Code != want {
			t.Errorf("role %s: expected %d, got %d", role, want, w.Code)
		}
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(RequestID(), RequestLogger(zerolog.New(&buf)))

	w := do(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	rid := w.Header().Get(HeaderRequestID)
	if rid == "" {
		t.Fatal("expected a generated request id")
	}
	if !strings.Contains(buf.String(), rid) || !strings.Contains(buf.String(), `"path":"/ping"`) {
		t.Errorf("expected request log line with id and path, got %s", buf.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "fixed-id")
	if got := do(r, req).Header().Get(HeaderRequestID); got != "fixed-id" {
		t.Errorf("expected incoming id to be kept, got %q", got)
	}
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Recovery(zerolog.New(&buf)))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := do(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(buf.String(), "kaboom") {
		t.Errorf("expected panic to be logged, got %s", buf.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(CORSMiddleware())
	r.OPTIONS("/ping", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	w := do(r, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("expected origin to be echoed, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
