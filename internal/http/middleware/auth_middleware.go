package middleware

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/you/profilecms/domain"
)

// Well-known redirect targets for the browser admin surface
const (
	LoginPath        = "/admin/login"
	UnauthorizedPath = "/unauthorized"
)

// Context keys set by the gate for downstream handlers. Handlers trust
// these instead of re-parsing the token.
const (
	CtxUserID    = "user_id"
	CtxUserRole  = "user_role"
	CtxUserEmail = "user_email"
	CtxToken     = "auth_token"
)

type denyReason int

const (
	denyNoToken denyReason = iota
	denyInvalidToken
	denyForbidden
	denyStoreDegraded
)

// ExtractToken reads the session token from the request: cookie first,
// then the Authorization header. Empty means no token was presented.
func ExtractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// ClearSessionCookie expires the client-held cookie so a dead token stops
// being resubmitted.
func ClearSessionCookie(c *gin.Context, cookieName, cookieDomain string, secure bool) {
	c.SetCookie(cookieName, "", -1, "/", cookieDomain, secure, true)
}

// AuthGateMiddleware is the request interceptor for protected paths.
// Per request it runs: extract token, verify, authorize role, forward.
// strong additionally consults the session store so revoked sessions are
// rejected even while their signature still checks out; redirect selects
// browser semantics (302 to login/unauthorized) over JSON status codes.
func AuthGateMiddleware(
	authSvc domain.AuthService,
	tokenSvc domain.TokenService,
	required domain.Role,
	strong, redirect bool,
	cookieName, cookieDomain string,
	cookieSecure bool,
	allowPaths ...string,
) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowPaths))
	for _, p := range allowPaths {
		allowed[p] = true
	}

	deny := func(c *gin.Context, reason denyReason) {
		if reason == denyInvalidToken {
			ClearSessionCookie(c, cookieName, cookieDomain, cookieSecure)
		}
		if redirect {
			target := LoginPath
			if reason == denyForbidden {
				target = UnauthorizedPath
			}
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		switch reason {
		case denyForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		}
		c.Abort()
	}

	return gin.HandlerFunc(func(c *gin.Context) {
		// Fail closed: any panic below becomes the no-token outcome, not a 500
		defer func() {
			if r := recover(); r != nil {
				log.Printf("AUTH_GATE_PANIC: path=%s panic=%v", c.Request.URL.Path, r)
				deny(c, denyNoToken)
			}
		}()

		// Allow-list, e.g. the login page itself
		if allowed[c.Request.URL.Path] {
			c.Next()
			return
		}

		token := ExtractToken(c, cookieName)
		if token == "" {
			deny(c, denyNoToken)
			return
		}

		var claims *domain.TokenClaims
		var err error
		if strong {
			claims, err = authSvc.Authenticate(c.Request.Context(), token)
		} else {
			claims, err = tokenSvc.Verify(token)
		}
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSessionStoreUnavailable):
				// An outage is not "forbidden"; log it apart and send the
				// client back to login like a missing token.
				log.Printf("SESSION_STORE_DEGRADED: path=%s error=%v", c.Request.URL.Path, err)
				deny(c, denyStoreDegraded)
			default:
				deny(c, denyInvalidToken)
			}
			return
		}

		if !claims.Role.Permits(required) {
			log.Printf("ACCESS_DENIED: user_id=%d role=%s path=%s", claims.UserID, claims.Role, c.Request.URL.Path)
			deny(c, denyForbidden)
			return
		}

		// Attach verified identity for downstream handlers
		c.Set(CtxUserID, strconv.FormatUint(uint64(claims.UserID), 10))
		c.Set(CtxUserRole, string(claims.Role))
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxToken, token)

		c.Next()
	})
}
