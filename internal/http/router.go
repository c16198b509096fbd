package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/profilecms/domain"
	"github.com/you/profilecms/internal/http/handlers"
	"github.com/you/profilecms/internal/http/middleware"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Auth    *handlers.AuthHandlers
	Article *handlers.ArticleHandlers
	Event   *handlers.EventHandlers
	Gallery *handlers.GalleryHandlers
	Contact *handlers.ContactHandlers
	User    *handlers.UserHandlers
	Policy  *handlers.PolicyHandlers
	Pages   *handlers.PageHandlers
}

func BuildRouter(h Handlers, authMW *middleware.AuthMW, casbinMW *middleware.CasbinMW, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Browser surface. The gate redirects here, so these stay public.
	r.GET(middleware.LoginPath, h.Pages.Login)
	r.GET(middleware.UnauthorizedPath, h.Pages.Unauthorized)

	// Admin pages: strong verification, redirect on failure.
	adminPages := r.Group("/admin").Use(authMW.Pages(domain.RoleAdmin))
	adminPages.GET("", h.Pages.Dashboard)
	for _, page := range []string{"/articles", "/events", "/gallery", "/users", "/messages", "/settings"} {
		adminPages.GET(page, h.Pages.Dashboard)
	}

	r.Static("/uploads", uploadDir)

	api := r.Group("/api")

	api.POST("/auth/login", h.Auth.Login)
	// Logout skips the session check on purpose: a token whose session is
	// already revoked must still be able to log out cleanly.
	api.POST("/auth/logout", authMW.WithJWT(domain.RoleUser), h.Auth.Logout)
	api.GET("/auth/me", h.Auth.Me)

	api.GET("/articles", h.Article.ListPublished)
	api.GET("/articles/:slug", h.Article.GetBySlug)
	api.GET("/events", h.Event.ListUpcoming)
	api.GET("/events/:slug", h.Event.GetBySlug)
	api.POST("/events/:slug/register", h.Event.Register)
	api.GET("/gallery", h.Gallery.List)
	api.POST("/contact", h.Contact.Submit)

	adm := r.Group("/api/admin").Use(authMW.WithSession(domain.RoleAdmin), casbinMW.Enforce())

	adm.GET("/articles", h.Article.ListAll)
	adm.POST("/articles", h.Article.Create)
	adm.GET("/articles/:id", h.Article.Get)
	adm.PUT("/articles/:id", h.Article.Update)
	adm.DELETE("/articles/:id", h.Article.Delete)

	adm.GET("/events", h.Event.ListAll)
	adm.POST("/events", h.Event.Create)
	adm.GET("/events/:id", h.Event.Get)
	adm.PUT("/events/:id", h.Event.Update)
	adm.DELETE("/events/:id", h.Event.Delete)
	adm.GET("/events/:id/registrations", h.Event.Registrations)

	adm.GET("/gallery", h.Gallery.List)
	adm.POST("/gallery", h.Gallery.Upload)
	adm.PUT("/gallery/:id", h.Gallery.Update)
	adm.DELETE("/gallery/:id", h.Gallery.Delete)

	adm.GET("/contact-messages", h.Contact.List)
	adm.PUT("/contact-messages/:id/read", h.Contact.MarkRead)
	adm.DELETE("/contact-messages/:id", h.Contact.Delete)

	adm.GET("/users", h.User.List)
	adm.POST("/users", h.User.Create)
	adm.GET("/users/:id", h.User.Get)
	adm.PUT("/users/:id", h.User.Update)
	adm.DELETE("/users/:id", h.User.Delete)

	adm.GET("/policies", h.Policy.List)
	adm.POST("/policies", h.Policy.Add)
	adm.DELETE("/policies", h.Policy.Remove)

	return r
}
