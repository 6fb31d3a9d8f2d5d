package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/fizzbuzz-game/config"
	"github.com/lshigami/fizzbuzz-game/database"
	_ "github.com/lshigami/fizzbuzz-game/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/fizzbuzz-game/internal/controller/admin"
	gamectrl "github.com/lshigami/fizzbuzz-game/internal/controller/game"
	"github.com/lshigami/fizzbuzz-game/internal/logger"
	"github.com/lshigami/fizzbuzz-game/internal/model"
	"github.com/lshigami/fizzbuzz-game/internal/repository"
	"github.com/lshigami/fizzbuzz-game/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title FizzBuzz Game API
// @version 1.0
// @description Browser-playable FizzBuzz quiz game with an admin rule-management panel.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewRuleRepository,
			repository.NewSessionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewRuleService,
			service.NewGameService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewRuleController,
			gamectrl.NewGameController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(MigrateAndSeedDB),
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

	// Request logging through the global zerolog instance
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

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ruleCtrl *adminctrl.RuleController,
	gameCtrl *gamectrl.GameController,
) {
	api := router.Group("/api")
	{
		gameGroup := api.Group("/game")
		gameGroup.POST("/start", gameCtrl.StartGame)
		gameGroup.POST("/answer", gameCtrl.SubmitAnswer)
		gameGroup.POST("/end/:sessionId", gameCtrl.EndGame)
		gameGroup.GET("/summary/:sessionId", gameCtrl.GetSummary)

		rulesGroup := api.Group("/rules")
		rulesGroup.GET("", ruleCtrl.GetAllRules)
		rulesGroup.GET("/active", ruleCtrl.GetActiveRules)
		rulesGroup.GET("/:id", ruleCtrl.GetRule)
		rulesGroup.POST("", ruleCtrl.CreateRule)
		rulesGroup.PUT("/:id", ruleCtrl.UpdateRule)
		rulesGroup.DELETE("/:id", ruleCtrl.DeleteRule)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("FizzBuzz game server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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

// MigrateAndSeedDB migrates the rules table and seeds the classic Fizz/Buzz
// pair when the table is empty, so a fresh install is immediately playable.
func MigrateAndSeedDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Rule{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	var count int64
	if err := db.Model(&model.Rule{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		defaults := []model.Rule{
			{Divisor: 3, ReplacementText: "Fizz", IsActive: true},
			{Divisor: 5, ReplacementText: "Buzz", IsActive: true},
		}
		if err := db.Create(&defaults).Error; err != nil {
			log.Error().Err(err).Msg("Failed to seed default rules")
			return err
		}
		log.Info().Msg("Seeded default Fizz/Buzz rules")
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
