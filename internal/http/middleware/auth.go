package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/you/profilecms/domain"
)

// AuthMW bundles the gate's dependencies and cookie settings
type AuthMW struct {
	authSvc      domain.AuthService
	tokenSvc     domain.TokenService
	cookieName   string
	cookieDomain string
	cookieSecure bool
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(authSvc domain.AuthService, tokenSvc domain.TokenService, cookieName, cookieDomain string, cookieSecure bool) *AuthMW {
	return &AuthMW{
		authSvc:      authSvc,
		tokenSvc:     tokenSvc,
		cookieName:   cookieName,
		cookieDomain: cookieDomain,
		cookieSecure: cookieSecure,
	}
}

// Pages gates the browser admin surface: strong verification with
// redirect semantics. The login page itself stays reachable.
func (mw *AuthMW) Pages(required domain.Role) gin.HandlerFunc {
	return AuthGateMiddleware(mw.authSvc, mw.tokenSvc, required, true, true,
		mw.cookieName, mw.cookieDomain, mw.cookieSecure, LoginPath)
}

// WithSession gates API routes with the strong path: signature, expiry
// and a session-store liveness check.
func (mw *AuthMW) WithSession(required domain.Role) gin.HandlerFunc {
	return AuthGateMiddleware(mw.authSvc, mw.tokenSvc, required, true, false,
		mw.cookieName, mw.cookieDomain, mw.cookieSecure)
}

// WithJWT gates API routes with the fast path only: no store lookup.
// Reserve it for routes where revocation cannot matter, like logout.
func (mw *AuthMW) WithJWT(required domain.Role) gin.HandlerFunc {
	return AuthGateMiddleware(mw.authSvc, mw.tokenSvc, required, false, false,
		mw.cookieName, mw.cookieDomain, mw.cookieSecure)
}
