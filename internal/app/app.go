package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/profilecms/internal/config"
	httpx "github.com/you/profilecms/internal/http"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.Redis.Ping(context.Background()); err != nil {
		return err
	}

	r := httpx.BuildRouter(container.Handlers(), container.AuthMW, container.CasbinMW, cfg.UploadDir)

	seedPolicies(container)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default grants on an empty policy table.
// Admins manage content; only super admins touch users and policies.
func seedPolicies(c *Container) {
	e := c.Casbin.E
	policies, _ := e.GetPolicy()
	if len(policies) > 0 {
		return
	}
	e.AddPolicy("role_admin", "/api/admin/articles*", "(GET|POST|PUT|DELETE)")
	e.AddPolicy("role_admin", "/api/admin/events*", "(GET|POST|PUT|DELETE)")
	e.AddPolicy("role_admin", "/api/admin/gallery*", "(GET|POST|PUT|DELETE)")
	e.AddPolicy("role_admin", "/api/admin/contact-messages*", "(GET|PUT|DELETE)")
	e.AddPolicy("role_super_admin", "/api/admin/*", "(GET|POST|PUT|DELETE)")
	if err := e.SavePolicy(); err != nil {
		log.Printf("casbin: failed to persist seeded policies: %v", err)
		return
	}
	log.Println("casbin: seeded default policies")
}
