package app

import (
	"context"
	"net/http"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"github.com/Mr-Mosio/BaranBackend/internal/config"
	httpx "github.com/Mr-Mosio/BaranBackend/internal/http"
	"github.com/Mr-Mosio/BaranBackend/internal/http/handlers"
	"github.com/Mr-Mosio/BaranBackend/internal/http/middleware"
	"github.com/Mr-Mosio/BaranBackend/internal/infrastructure/auth"
	"github.com/Mr-Mosio/BaranBackend/internal/infrastructure/database"
	"github.com/Mr-Mosio/BaranBackend/internal/infrastructure/notifications"
	"github.com/Mr-Mosio/BaranBackend/internal/infrastructure/repositories"
	"github.com/Mr-Mosio/BaranBackend/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	gdb, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb)
	if err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	notificationSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom, logger)

	// Repositories
	accountRepo := repositories.NewAccountRepository(gdb)
	roleRepo := repositories.NewRoleRepository(gdb)
	otpRepo := repositories.NewOTPRepository(rdb.Client)

	// Services
	otpSvc := services.NewOTPService(otpRepo, notificationSvc, logger, services.OTPConfig{
		Length: cfg.OTPCodeLength,
		TTL:    cfg.OTPTTL(),
	})
	policySvc := services.NewPolicyService(cas.E, roleRepo)
	authSvc := services.NewAuthService(accountRepo, otpSvc, passwordSvc, tokenSvc, cfg.DefaultRole, logger)

	if err := seedDefaultRole(context.Background(), roleRepo, cfg.DefaultRole, logger); err != nil {
		return err
	}
	if err := policySvc.SyncFromRoles(context.Background()); err != nil {
		return err
	}

	// Handlers and middleware
	authH := handlers.NewAuthHandlers(authSvc, logger)
	jwtMW := middleware.NewAuthMW(tokenSvc)
	permMW := middleware.NewPermissionMW(accountRepo, policySvc)

	r := httpx.BuildRouter(authH, jwtMW, permMW)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

// seedDefaultRole creates the default role with the baseline profile
// permission when the roles table is empty, so accounts registered through
// OTP verification have access from their first login.
func seedDefaultRole(ctx context.Context, roleRepo domain.RoleRepository, name string, logger *zap.Logger) error {
	roles, err := roleRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(roles) > 0 {
		return nil
	}

	role := &domain.Role{
		Name:        name,
		Permissions: []domain.Permission{{Name: httpx.ProfileReadPermission}},
	}
	if err := roleRepo.Create(ctx, role); err != nil {
		return err
	}

	logger.Info("seeded default role", zap.String("role", name))
	return nil
}
