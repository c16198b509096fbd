package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/profilecms/domain"
	"github.com/you/profilecms/internal/mocks"
)

const testCookie = "cms_session"

func init() {
	gin.SetMode(gin.TestMode)
}

func claimsFor(userID uint, role domain.Role) *domain.TokenClaims {
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    userID,
		Role:      role,
		Email:     fmt.Sprintf("user%d@example.com", userID),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}
}

// newGateRouter mounts the gate in front of a recording handler that records
// the identity the gate attached.
func newGateRouter(authSvc domain.AuthService, tokenSvc domain.TokenService, required domain.Role, strong, redirect bool, allowPaths ...string) *gin.Engine {
	r := gin.New()
	gate := AuthGateMiddleware(authSvc, tokenSvc, required, strong, redirect, testCookie, "", false, allowPaths...)
	r.GET("/ping", gate, func(c *gin.Context) {
		userID, _ := c.Get(CtxUserID)
		role, _ := c.Get(CtxUserRole)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	if len(allowPaths) > 0 {
		r.GET(allowPaths[0], gate, func(c *gin.Context) {
			c.String(http.StatusOK, "open")
		})
	}
	return r
}

func doRequest(r *gin.Engine, path, token string, viaCookie bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		if viaCookie {
			req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
		} else {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthGate_APIOutcomes(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		viaCookie      bool
		required       domain.Role
		setupAuth      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name:           "no token",
			token:          "",
			required:       domain.RoleAdmin,
			setupAuth:      func(a *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "invalid token",
			token:     "bad_token",
			viaCookie: true,
			required:  domain.RoleAdmin,
			setupAuth: func(a *mocks.MockAuthService) {
				a.AuthenticateFunc = func(ctx context.Context, token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenSignature
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "valid token wrong role",
			token:     "user_token",
			viaCookie: true,
			required:  domain.RoleAdmin,
			setupAuth: func(a *mocks.MockAuthService) {
				a.AuthenticateFunc = nil // default: user role
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "valid token sufficient role via header",
			token:     "admin_token",
			viaCookie: false,
			required:  domain.RoleAdmin,
			setupAuth: func(a *mocks.MockAuthService) {
				a.AuthenticateFunc = func(ctx context.Context, token string) (*domain.TokenClaims, error) {
					return claimsFor(7, domain.RoleAdmin), nil
				}
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupAuth(authSvc)
			r := newGateRouter(authSvc, mocks.NewMockTokenService(), tt.required, true, false)

			w := doRequest(r, "/ping", tt.token, tt.viaCookie)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthGate_RedirectOutcomes(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		setupAuth      func(*mocks.MockAuthService)
		expectedTarget string
	}{
		{
			name:           "no token redirects to login",
			token:          "",
			setupAuth:      func(a *mocks.MockAuthService) {},
			expectedTarget: LoginPath,
		},
		{
			name:  "insufficient role redirects to unauthorized",
			token: "user_token",
			setupAuth: func(a *mocks.MockAuthService) {
				// default claims carry the user role
			},
			expectedTarget: UnauthorizedPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupAuth(authSvc)
			r := newGateRouter(authSvc, mocks.NewMockTokenService(), domain.RoleAdmin, true, true)

			w := doRequest(r, "/ping", tt.token, true)
			if w.Code != http.StatusFound {
				t.Fatalf("expected 302, got %d", w.Code)
			}
			if got := w.Header().Get("Location"); got != tt.expectedTarget {
				t.Errorf("expected redirect to %s, got %s", tt.expectedTarget, got)
			}
		})
	}
}

func TestAuthGate_InvalidTokenClearsCookie(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.TokenClaims, error) {
		return nil, domain.ErrTokenExpired
	}
	r := newGateRouter(authSvc, mocks.NewMockTokenService(), domain.RoleAdmin, true, false)

	w := doRequest(r, "/ping", "expired_token", true)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be cleared for a dead token")
	}
}

func TestAuthGate_StoreDegradedDeniesWithoutForbidden(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.TokenClaims, error) {
		return nil, domain.ErrSessionStoreUnavailable
	}

	// API mode: outage is a 401, not a 403.
	api := newGateRouter(authSvc, mocks.NewMockTokenService(), domain.RoleAdmin, true, false)
	w := doRequest(api, "/ping", "tok", true)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for store outage, got %d", w.Code)
	}

	// Browser mode: back to login, not to the unauthorized page.
	pages := newGateRouter(authSvc, mocks.NewMockTokenService(), domain.RoleAdmin, true, true)
	w = doRequest(pages, "/ping", "tok", true)
	if w.Code != http.StatusFound || w.Header().Get("Location") != LoginPath {
		t.Errorf("expected redirect to login for store outage, got %d -> %s", w.Code, w.Header().Get("Location"))
	}
}

func TestAuthGate_AllowListBypassesAuth(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.TokenClaims, error) {
		t.Error("allow-listed path must not consult the auth service")
		return nil, domain.ErrTokenSignature
	}
	r := newGateRouter(authSvc, mocks.NewMockTokenService(), domain.RoleAdmin, true, true, "/open")

	w := doRequest(r, "/open", "", true)
	if w.Code != http.StatusOK {
		t.Errorf("expected allow-listed path to pass, got %d", w.Code)
	}
}

func TestAuthGate_PanicFailsClosed(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.TokenClaims, error) {
		panic("verifier blew up")
	}
	r := newGateRouter(authSvc, mocks.NewMockTokenService(), domain.RoleAdmin, true, false)

	w := doRequest(r, "/ping", "tok", true)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected panic to deny with 401, got %d", w.Code)
	}
}

func TestAuthGate_FastPathSkipsSessionStore(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.TokenClaims, error) {
		t.Error("fast path must not run the strong verification")
		return nil, domain.ErrTokenSignature
	}
	tokenSvc := mocks.NewMockTokenService()

	r := newGateRouter(authSvc, tokenSvc, domain.RoleUser, false, false)
	w := doRequest(r, "/ping", "tok", true)
	if w.Code != http.StatusOK {
		t.Errorf("expected fast-path verification to pass, got %d", w.Code)
	}
}

func TestAuthGate_SetsContextForHandlers(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.AuthenticateFunc = func(ctx context.Context, token string) (*domain.TokenClaims, error) {
		return claimsFor(42, domain.RoleSuperAdmin), nil
	}
	r := newGateRouter(authSvc, mocks.NewMockTokenService(), domain.RoleAdmin, true, false)

	w := doRequest(r, "/ping", "tok", true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"user_id":"42"`) {
		t.Errorf("expected user id in context, got %s", body)
	}
	if !strings.Contains(body, `"role":"super_admin"`) {
		t.Errorf("expected role in context, got %s", body)
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name     string
		cookie   string
		header   string
		expected string
	}{
		{name: "cookie wins", cookie: "cookie_tok", header: "Bearer header_tok", expected: "cookie_tok"},
		{name: "header fallback", header: "Bearer header_tok", expected: "header_tok"},
		{name: "malformed header scheme", header: "Basic abc", expected: ""},
		{name: "bare header value", header: "just_a_token", expected: ""},
		{name: "nothing presented", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				c.Request.AddCookie(&http.Cookie{Name: testCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			if got := ExtractToken(c, testCookie); got != tt.expected {
				t.Errorf("ExtractToken = %q, expected %q", got, tt.expected)
			}
		})
	}
}
