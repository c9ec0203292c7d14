package handlers

import (
	"log/slog"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	_ "github.com/buspago/buspago_backend/cmd/docs"
	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
	"github.com/buspago/buspago_backend/internal/middleware"
	"github.com/buspago/buspago_backend/pkg/config"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// busCodePattern matches canonical bus ids (BUS-NNN, at least three
// digits).
var busCodePattern = regexp.MustCompile(`^BUS-\d{3,}$`)

// RegisterRoutes sets up all application routes, injecting
// dependencies through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerBusCodeValidator()

	r.GET("/health", getHealth)

	v1 := r.Group("/api/v1")

	registerFleetRoutes(v1, services.Fleet)
	registerScanRoutes(v1, services.Scanner, services.Wallet, newScanRateLimit(cfg))
	registerWalletRoutes(v1, services.Wallet, services.Statement)

	setupSwaggerRoutes(r, cfg)
}

// registerBusCodeValidator exposes the canonical bus id format as a
// binding tag (buscode) for request DTOs.
func registerBusCodeValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("buscode", func(fl validator.FieldLevel) bool {
			return busCodePattern.MatchString(fl.Field().String())
		})
	}
}

// newScanRateLimit builds the per-IP rate limit middleware applied to
// the scan endpoint.
func newScanRateLimit(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.ScanRateLimit)
	if err != nil {
		slog.Warn("Invalid scan rate limit, falling back to default", slog.String("value", cfg.ScanRateLimit), slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted(config.DefaultScanRateLimit)
	}
	return middleware.RateLimit(limiter.New(memorystore.NewStore(), rate))
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
