// @title HazardWatch API
// @version 1.0
// @description Community hazard reports: public map, dashboard and admin triage
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/xyz-asif/hazardwatch/docs"
	"github.com/xyz-asif/hazardwatch/internal/config"
	"github.com/xyz-asif/hazardwatch/internal/database"
	"github.com/xyz-asif/hazardwatch/internal/features/reports"
	"github.com/xyz-asif/hazardwatch/internal/features/session"
	"github.com/xyz-asif/hazardwatch/internal/middleware"
	"github.com/xyz-asif/hazardwatch/internal/pkg/cloudinary"
	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
	"github.com/xyz-asif/hazardwatch/internal/pkg/ratelimit"
	"github.com/xyz-asif/hazardwatch/internal/pkg/response"
	"github.com/xyz-asif/hazardwatch/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
	log := logger.Default()

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reports live in memory only and start from a generated dataset.
	store := reports.NewStore()
	seed := reports.GenerateSeed(cfg.SeedCount, time.Now(), reports.NewRand(cfg.SeedRandom))
	if err := store.Load(seed); err != nil {
		log.Fatal("Failed to load seed reports: %v", err)
	}
	log.Info("Loaded %d seed reports", store.Len())

	hub := reports.NewHub(log.Named("ws"))
	go hub.Run(ctx)

	opts := []reports.ServiceOption{
		reports.WithHub(hub),
		reports.WithLatency(time.Duration(cfg.SimulatedLatencyMS) * time.Millisecond),
	}
	if cfg.CloudinaryEnabled() {
		cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
		if err != nil {
			log.Warn("Cloudinary disabled: %v", err)
		} else {
			opts = append(opts, reports.WithPhotoUploader(reports.CloudinaryPhotos{Service: cld}))
			log.Info("Forwarding report photos to Cloudinary cloud %s", cld.CloudName())
		}
	}
	svc := reports.NewService(store, log.Named("reports"), opts...)

	storage, closeStorage := sessionStorage(ctx, cfg, log)
	defer closeStorage()

	creds, err := session.NewCredentials(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatal("Invalid admin credentials: %v", err)
	}
	gate := session.NewGate(ctx, storage, creds, log.Named("session"))

	limiter := ratelimit.New(cfg.RateLimitPerMinute, time.Minute)
	limiter.StartCleanup(ctx, 5*time.Minute)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(log.Named("http")))
	router.Use(middleware.CORS(cfg.FrontendURL))

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, map[string]interface{}{
			"status":  "ok",
			"reports": store.Len(),
			"time":    time.Now().Unix(),
		})
	})

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
			ginSwagger.PersistAuthorization(true),
		),
	)

	routes.SetupRoutes(router, routes.Dependencies{
		Config:  cfg,
		Reports: svc,
		Hub:     hub,
		Gate:    gate,
		Limiter: limiter,
		Log:     log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited")
}

// sessionStorage picks the session backend from SESSION_BACKEND. A MongoDB
// that cannot be reached falls back to memory so the public site still works.
func sessionStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (session.Storage, func()) {
	switch cfg.SessionBackend {
	case "file":
		log.Info("Persisting admin session to %s", cfg.SessionFile)
		return session.NewFileStorage(cfg.SessionFile), func() {}
	case "mongo":
		db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Error("MongoDB unavailable, keeping admin session in memory: %v", err)
			return session.NewMemoryStorage(), func() {}
		}
		log.Info("Persisting admin session to MongoDB database %s", cfg.MongoDB)
		return session.NewMongoStorage(db.Database), func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = db.Disconnect(ctx)
		}
	default:
		return session.NewMemoryStorage(), func() {}
	}
}
