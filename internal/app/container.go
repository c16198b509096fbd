package app

import (
	"gorm.io/gorm"

	"github.com/you/profilecms/domain"
	"github.com/you/profilecms/internal/config"
	httpx "github.com/you/profilecms/internal/http"
	"github.com/you/profilecms/internal/http/handlers"
	"github.com/you/profilecms/internal/http/middleware"
	"github.com/you/profilecms/internal/infrastructure/auth"
	"github.com/you/profilecms/internal/infrastructure/database"
	"github.com/you/profilecms/internal/infrastructure/notifications"
	"github.com/you/profilecms/internal/infrastructure/repositories"
	"github.com/you/profilecms/internal/infrastructure/storage"
	"github.com/you/profilecms/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB     *gorm.DB
	Redis  *database.RedisClient
	Casbin *auth.CasbinService

	UserRepo    domain.UserRepository
	SessionRepo domain.SessionRepository
	ArticleRepo domain.ArticleRepository
	EventRepo   domain.EventRepository
	GalleryRepo domain.GalleryRepository
	ContactRepo domain.ContactRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	StorageSvc      domain.StorageService
	Audit           domain.AuditLogger
	AuthSvc         domain.AuthService
	UserSvc         domain.UserService
	ArticleSvc      domain.ArticleService
	EventSvc        domain.EventService
	GallerySvc      domain.GalleryService
	ContactSvc      domain.ContactService
	PolicySvc       domain.PolicyService

	AuthMW   *middleware.AuthMW
	CasbinMW *middleware.CasbinMW
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initMiddleware()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}
	c.Casbin = cas

	c.Redis = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.Redis.Client)
	c.ArticleRepo = repositories.NewArticleRepository(c.DB)
	c.EventRepo = repositories.NewEventRepository(c.DB)
	c.GalleryRepo = repositories.NewGalleryRepository(c.DB)
	c.ContactRepo = repositories.NewContactRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.ShortTTL,
		c.Config.ExtendedTTL,
	)
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	storageSvc, err := storage.NewLocalStorage(
		c.Config.UploadDir,
		c.Config.UploadMaxBytes,
		c.Config.UploadAllowedExts,
	)
	if err != nil {
		return err
	}
	c.StorageSvc = storageSvc

	c.Audit = services.NewAuditLogger()
	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.Audit,
		c.Config.SessionCheckTimeout,
	)
	c.UserSvc = services.NewUserService(c.UserRepo, c.PasswordSvc, c.Audit)
	c.ArticleSvc = services.NewArticleService(c.ArticleRepo, c.Audit)
	c.EventSvc = services.NewEventService(c.EventRepo, c.Audit)
	c.GallerySvc = services.NewGalleryService(c.GalleryRepo, c.StorageSvc)
	c.ContactSvc = services.NewContactService(c.ContactRepo, c.NotificationSvc, c.Config.TwilioNotifyTo)
	c.PolicySvc = services.NewPolicyService(c.Casbin.E)

	return nil
}

func (c *Container) initMiddleware() {
	c.AuthMW = middleware.NewAuthMW(
		c.AuthSvc,
		c.TokenSvc,
		c.Config.CookieName,
		c.Config.CookieDomain,
		c.Config.CookieSecure,
	)
	c.CasbinMW = middleware.NewCasbinMW(c.Casbin.E)
}

// Handlers builds the handler set the router mounts
func (c *Container) Handlers() httpx.Handlers {
	return httpx.Handlers{
		Auth:    handlers.NewAuthHandlers(c.AuthSvc, c.Config.CookieName, c.Config.CookieDomain, c.Config.CookieSecure),
		Article: handlers.NewArticleHandlers(c.ArticleSvc),
		Event:   handlers.NewEventHandlers(c.EventSvc),
		Gallery: handlers.NewGalleryHandlers(c.GallerySvc),
		Contact: handlers.NewContactHandlers(c.ContactSvc),
		User:    handlers.NewUserHandlers(c.UserSvc),
		Policy:  handlers.NewPolicyHandlers(c.PolicySvc),
		Pages:   handlers.NewPageHandlers(),
	}
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
