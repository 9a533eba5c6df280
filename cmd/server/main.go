package main

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"classdrop/docs" // swagger docs
	"classdrop/internal/auth"
	"classdrop/internal/cache"
	"classdrop/internal/config"
	"classdrop/internal/db"
	"classdrop/internal/handler"
	"classdrop/internal/repository"
	"classdrop/internal/router"
	"classdrop/internal/service"
	"classdrop/internal/storage"
)

// @title Assignment Submission API
// @version 1.0
// @description Students submit assignments, teachers comment on them. Protected routes take a bearer token or a token form field.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(parseLevel(cfg.LogLevel))
	log.SetLevel(parseLevel(cfg.LogLevel))

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Warnf("drop tables: %v", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	uploads, err := storage.NewUploads(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload storage: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if cacheClient == nil {
		log.Info("REDIS_ADDR not set, assignment list cache disabled")
	}

	// Initialize repositories
	principalRepo := repository.NewPrincipalRepository(gormDB)
	assignmentRepo := repository.NewAssignmentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(auth.TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL,
	})
	guard := auth.NewGuard(jwtService, principalRepo)

	// Initialize services
	authService := service.NewAuthService(principalRepo, jwtService)
	assignmentService := service.NewAssignmentService(assignmentRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService, uploads)

	router.Register(e, cfg, guard, authHandler, assignmentHandler)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(swaggerHost, "http://"), "https://")
	log.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func parseLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
