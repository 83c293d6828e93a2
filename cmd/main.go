package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/tdlam/formdesk/config"
	"github.com/tdlam/formdesk/database"
	"github.com/tdlam/formdesk/internal/auth"
	"github.com/tdlam/formdesk/internal/controller"
	"github.com/tdlam/formdesk/internal/logger"
	"github.com/tdlam/formdesk/internal/model"
	"github.com/tdlam/formdesk/internal/repository"
	"github.com/tdlam/formdesk/internal/service"
)

// @title Formdesk API
// @version 1.0
// @description Forms-management RPC API: forms, questions, responses and user accounts behind token auth.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewFormRepository,
			repository.NewQuestionRepository,
			repository.NewResponseRepository,
		),

		// Auth primitives
		fx.Provide(
			auth.NewTokenService,
		),

		// Services layer
		fx.Provide(
			service.NewSessionService,
			service.NewUserService,
			service.NewFormService,
			service.NewQuestionService,
			service.NewResponseService,
		),

		// API controller
		fx.Provide(
			controller.NewController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedAdminUser),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Bridge gin request logging into zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the RPC routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Formdesk API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Form{},
		&model.Question{},
		&model.Response{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully")
	return nil
}

// SeedAdminUser creates the bootstrap admin account when configured and not
// already present.
func SeedAdminUser(cfg *config.Config, userRepo repository.UserRepository) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Info().Msg("Admin seed not configured, skipping")
		return nil
	}

	if _, err := userRepo.FindByEmail(cfg.Admin.Email); err == nil {
		log.Info().Str("email", cfg.Admin.Email).Msg("Admin user already exists")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}
	admin := model.User{
		Email:    cfg.Admin.Email,
		Password: hash,
		Name:     cfg.Admin.Name,
		Role:     model.RoleAdmin,
	}
	if err := userRepo.Create(&admin); err != nil {
		log.Error().Err(err).Msg("Failed to seed admin user")
		return err
	}
	log.Info().Str("email", cfg.Admin.Email).Msg("Admin user created")
	return nil
}
