package stubserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/givepenny/campaign-signup-helper/config"
	"github.com/givepenny/campaign-signup-helper/internal/handlers"
	"github.com/givepenny/campaign-signup-helper/internal/middleware"
)

const maxBodySize = 64 * 1024

// NewRouter wires the handlers for every emulated service onto one router.
// Background work started for the router stops when ctx is done.
func NewRouter(ctx context.Context, cfg *config.Config, store *Store) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName + "-stub"))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.ResponseHeadersMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.StubServer.AllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	rateLimiter := middleware.NewRateLimiter(ctx, 200, 400)
	router.Use(rateLimiter.Middleware())
	router.Use(middleware.BodySizeLimitMiddleware(maxBodySize))

	healthHandler := handlers.NewHealthHandler()
	campaignsHandler := handlers.NewCampaignsHandler(store)
	referenceHandler := handlers.NewReferenceHandler(store)
	signUpsHandler := handlers.NewSignUpsHandler(store)

	// Utility endpoints
	router.GET("/healthcheck", healthHandler.Healthcheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// charities campaigns management
	router.GET("/campaigns", campaignsHandler.GetCampaigns)

	// fundraisers activities discovery
	router.GET("/measurements", referenceHandler.GetMeasurements)
	router.GET("/units", referenceHandler.GetUnits)

	// fundraisers activities management
	router.GET("/activities", referenceHandler.GetActivities)
	router.GET("/activities/:id", referenceHandler.GetActivity)

	campaign := router.Group("/charities/:charityId/campaigns/:campaignId")

	// fundraisers challenges groupings
	campaign.GET("/groupings", campaignsHandler.GetGroupings)

	// charities campaigns sign-ups
	campaign.PUT("/signUps/:signUpId", signUpsHandler.PutSignUp)
	campaign.PATCH("/signUps/:signUpId/questions", signUpsHandler.PatchSignUpQuestions)
	campaign.GET("/signUps/:signUpId", signUpsHandler.GetSignUp)

	return router
}
