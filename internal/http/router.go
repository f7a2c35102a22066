package httpx

import (
	"github.com/Mr-Mosio/BaranBackend/internal/http/handlers"
	"github.com/Mr-Mosio/BaranBackend/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileReadPermission guards the authenticated profile endpoint. It is
// granted to the default role at seeding.
const ProfileReadPermission = "profile.read"

func BuildRouter(ah *handlers.AuthHandlers, jwtmw *middleware.AuthMW, perm *middleware.PermissionMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/check-mobile", ah.CheckMobile)
	auth.POST("/verify", ah.Verify)

	me := r.Group("/auth").Use(jwtmw.WithJWT(), perm.Require(ProfileReadPermission))
	me.GET("/me", ah.Me)

	return r
}
