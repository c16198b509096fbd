package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandlers serves the minimal HTML shells the admin area needs. The real
// interface is a single-page app mounted on these routes; the server only has
// to answer the gate's redirect targets.
type PageHandlers struct{}

func NewPageHandlers() *PageHandlers { return &PageHandlers{} }

const loginPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Admin Login</title></head>
<body>
<div id="app" data-page="admin-login"></div>
</body>
</html>`

const unauthorizedPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Unauthorized</title></head>
<body>
<h1>403</h1>
<p>You do not have permission to view this page.</p>
<p><a href="/admin/login">Sign in with a different account</a></p>
</body>
</html>`

const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Admin</title></head>
<body>
<div id="app" data-page="admin-dashboard"></div>
</body>
</html>`

func (h *PageHandlers) Login(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginPage))
}

func (h *PageHandlers) Unauthorized(c *gin.Context) {
	c.Data(http.StatusForbidden, "text/html; charset=utf-8", []byte(unauthorizedPage))
}

func (h *PageHandlers) Dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardPage))
}
