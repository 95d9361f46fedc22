package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/studioflow/studioflow-backend/internal/config"
	"github.com/studioflow/studioflow-backend/internal/handler"
	"github.com/studioflow/studioflow-backend/internal/migration"
	"github.com/studioflow/studioflow-backend/internal/notify"
	"github.com/studioflow/studioflow-backend/internal/repository"
	"github.com/studioflow/studioflow-backend/internal/routes"
	"github.com/studioflow/studioflow-backend/internal/service"
	pkgjwt "github.com/studioflow/studioflow-backend/pkg/jwt"
	pkglogger "github.com/studioflow/studioflow-backend/pkg/logger"
	pkgredis "github.com/studioflow/studioflow-backend/pkg/redis"

	_ "github.com/studioflow/studioflow-backend/docs"
)

// @title           StudioFlow Backend API
// @version         1.0
// @description     Content production pipeline - workflow backend API
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional: without it lifecycle events just are not published
	var notifier *notify.Notifier
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Redis unavailable, lifecycle events disabled: %v", err)
	} else {
		pkglogger.Info("Connected to Redis")
		notifier = notify.NewNotifier(redisClient)
	}

	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry.Std())

	// Repositories
	contentRepo := repository.NewContentRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	// Services
	sequenceService := service.NewSequenceService(sequenceRepo, profileRepo)
	contentService := service.NewContentService(contentRepo)
	reviewService := service.NewReviewService(contentRepo, sequenceService)
	reviewService.SetNotifier(notifier)
	stageService := service.NewStageService(contentRepo)
	stageService.SetNotifier(notifier)
	assignmentService := service.NewAssignmentService(assignmentRepo, memberRepo, contentRepo)
	assignmentService.SetNotifier(notifier)

	// Handlers
	contentHandler := handler.NewContentHandler(contentService, reviewService, stageService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	sequenceHandler := handler.NewSequenceHandler(sequenceService)
	teamHandler := handler.NewTeamHandler(profileRepo, memberRepo)

	if env != "local" && env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	routes.Setup(router, contentHandler, assignmentHandler, sequenceHandler, teamHandler, jwtManager)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	pkglogger.Info("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
	db, err := gorm.Open(mysql.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}
