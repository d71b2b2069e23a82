package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/elifesajna/self-employ-final/domain"
	"github.com/elifesajna/self-employ-final/internal/backend"
	"github.com/elifesajna/self-employ-final/internal/config"
	"github.com/elifesajna/self-employ-final/internal/infrastructure/auth"
	"github.com/elifesajna/self-employ-final/internal/infrastructure/database"
	"github.com/elifesajna/self-employ-final/internal/infrastructure/notifications"
	"github.com/elifesajna/self-employ-final/internal/infrastructure/repositories"
	"github.com/elifesajna/self-employ-final/internal/logging"
	"github.com/elifesajna/self-employ-final/internal/session"
	"github.com/elifesajna/self-employ-final/internal/workflows"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	AdminRepo        domain.AdminRepository
	MemberRepo       domain.MemberRepository
	ClientRepo       domain.ClientRepository
	CategoryRepo     domain.CategoryRepository
	ProgramRepo      domain.ProgramRepository
	RegistrationRepo domain.RegistrationRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	CodeSvc         domain.VerificationCodeService
	Remote          domain.RemoteDataService

	// Session + workflows
	Sessions     domain.SessionStore
	AdminAuth    *workflows.AdminAuth
	MemberAuth   *workflows.MemberAuth
	Registration *workflows.Registration
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}
	if err := c.initWorkflows(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	rdb := database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return err
	}
	c.RedisClient = rdb.Client
	return nil
}

func (c *Container) initRepositories() {
	c.AdminRepo = repositories.NewAdminRepository(c.DB)
	c.MemberRepo = repositories.NewMemberRepository(c.DB)
	c.ClientRepo = repositories.NewClientRepository(c.DB)
	c.CategoryRepo = repositories.NewCategoryRepository(c.DB)
	c.ProgramRepo = repositories.NewProgramRepository(c.DB)
	c.RegistrationRepo = repositories.NewRegistrationRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
		c.Logger,
	)

	codeConfig := backend.CodeConfig{
		Length:       c.Config.CodeLength,
		TTL:          c.Config.CodeTTL,
		MaxAttempts:  c.Config.CodeMaxAttempts,
		ResendWindow: c.Config.CodeResendWindow,
	}
	c.CodeSvc = backend.NewCodeService(c.RedisClient, codeConfig)

	c.Remote = backend.New(
		c.AdminRepo,
		c.MemberRepo,
		c.ClientRepo,
		c.CategoryRepo,
		c.RegistrationRepo,
		c.CodeSvc,
		c.PasswordSvc,
		c.NotificationSvc,
		logging.NewAuditLogger(c.Logger),
		c.Logger,
	)
	return nil
}

func (c *Container) initWorkflows() error {
	store, err := session.NewFileStore(c.Config.SessionDir)
	if err != nil {
		return err
	}
	c.Sessions = store

	c.AdminAuth = workflows.NewAdminAuth(c.Remote, store)
	c.MemberAuth = workflows.NewMemberAuth(c.Remote, store)
	c.Registration = workflows.NewRegistration(c.Remote)
	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
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
