package handlers

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/jengabot/jenga_backend/cmd/docs"
	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
	"github.com/jengabot/jenga_backend/internal/middleware"
	"github.com/jengabot/jenga_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	webhookLimiter *limiter.Limiter,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public webhook route. Auth does not apply: Twilio cannot present
	// bearer tokens, so the route is shielded by rate limiting instead.
	webhook := r.Group("/webhook", middleware.RateLimit(webhookLimiter))
	registerWebhookRoutes(webhook, services.Webhook)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerValidators installs the custom form validators on Gin's binding
// engine. whatsappaddr accepts "whatsapp:+<digits>" or a bare E.164 number.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("whatsappaddr", func(fl validator.FieldLevel) bool {
		addr := strings.TrimPrefix(fl.Field().String(), "whatsapp:")
		if !strings.HasPrefix(addr, "+") || len(addr) < 8 {
			return false
		}
		for _, r := range addr[1:] {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", cors.New(corsConfig), middleware.AuthMiddleware(cfg.JWTSecret))

	registerMessageRoutes(v1, services.Message)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
