package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/elifesajna/self-employ-final/domain"
	"github.com/elifesajna/self-employ-final/internal/config"
	httpx "github.com/elifesajna/self-employ-final/internal/http"
	"github.com/elifesajna/self-employ-final/internal/http/handlers"
	"github.com/elifesajna/self-employ-final/internal/http/middleware"
)

// Run wires the container, seeds policies and the bootstrap admin, and
// serves until the listener fails.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := seedPolicies(c, logger); err != nil {
		return err
	}
	if err := seedBootstrapAdmin(c, logger); err != nil {
		return err
	}

	adminAuthH := handlers.NewAdminAuthHandlers(c.AdminAuth, c.TokenSvc)
	memberAuthH := handlers.NewMemberAuthHandlers(c.MemberAuth)
	registrationH := handlers.NewRegistrationHandlers(c.Registration)
	adminH := handlers.NewAdminHandlers(c.CategoryRepo, c.ProgramRepo, c.RegistrationRepo, c.MemberRepo, c.ClientRepo)

	jwtMW := middleware.NewAuthMW(c.TokenSvc)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(adminAuthH, memberAuthH, registrationH, adminH, jwtMW, casbinMW)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

func seedPolicies(c *Container, logger *zap.Logger) error {
	policies, err := c.Casbin.E.GetPolicy()
	if err != nil {
		return err
	}
	if len(policies) > 0 {
		return nil
	}

	c.Casbin.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT)")
	c.Casbin.E.AddPolicy("role_super_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
	if err := c.Casbin.E.SavePolicy(); err != nil {
		return err
	}
	logger.Info("casbin: seeded default policies")
	return nil
}

// seedBootstrapAdmin creates the initial super admin when the table is
// empty and bootstrap credentials are configured.
func seedBootstrapAdmin(c *Container, logger *zap.Logger) error {
	if c.Config.BootstrapAdminUser == "" || c.Config.BootstrapAdminPass == "" {
		return nil
	}

	ctx := context.Background()
	count, err := c.AdminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := c.PasswordSvc.Hash(c.Config.BootstrapAdminPass)
	if err != nil {
		return err
	}
	admin := &domain.AdminAccount{
		Username:     c.Config.BootstrapAdminUser,
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
	}
	if err := c.AdminRepo.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("bootstrap: created initial super admin", zap.String("username", admin.Username))
	return nil
}
