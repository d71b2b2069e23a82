package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/elifesajna/self-employ-final/internal/http/handlers"
	"github.com/elifesajna/self-employ-final/internal/http/middleware"
)

// BuildRouter assembles the public auth and registration routes and
// the JWT+Casbin protected admin group.
func BuildRouter(
	aah *handlers.AdminAuthHandlers,
	mah *handlers.MemberAuthHandlers,
	rh *handlers.RegistrationHandlers,
	adh *handlers.AdminHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/admin/login", aah.Login)
	auth.POST("/admin/logout", aah.Logout)
	auth.POST("/member/send-code", mah.SendCode)
	auth.POST("/member/verify", mah.Verify)
	auth.POST("/member/reset", mah.Reset)
	auth.POST("/member/logout", mah.Logout)
	auth.GET("/member/me", mah.Me)

	v := r.Group("/auth").Use(jwtmw.WithJWT())
	v.GET("/admin/me", aah.Me)

	reg := r.Group("/registration")
	reg.POST("/verify", rh.Verify)
	reg.POST("/submit", rh.Submit)
	reg.POST("/reset", rh.Reset)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/categories", adh.ListCategories)
	adm.POST("/categories", adh.CreateCategory)
	adm.PUT("/categories/:id", adh.UpdateCategory)
	adm.DELETE("/categories/:id", adh.DeleteCategory)
	adm.GET("/categories/:id/programs", adh.ListPrograms)
	adm.POST("/programs", adh.CreateProgram)
	adm.PUT("/programs/:id", adh.UpdateProgram)
	adm.DELETE("/programs/:id", adh.DeleteProgram)
	adm.GET("/registrations", adh.ListRegistrations)
	adm.PUT("/registrations/:id/status", adh.UpdateRegistrationStatus)
	adm.POST("/members", adh.CreateMember)
	adm.POST("/clients", adh.CreateClient)

	return r
}
