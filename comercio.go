//go:build !cli
// +build !cli

package main

import (
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/DuJao22/Comercio-pro/api"
	_ "github.com/DuJao22/Comercio-pro/api/auth"
	_ "github.com/DuJao22/Comercio-pro/api/dashboard"
	_ "github.com/DuJao22/Comercio-pro/api/movement"
	_ "github.com/DuJao22/Comercio-pro/api/product"
	_ "github.com/DuJao22/Comercio-pro/api/request"
	_ "github.com/DuJao22/Comercio-pro/api/shipment"
	_ "github.com/DuJao22/Comercio-pro/api/store"
	_ "github.com/DuJao22/Comercio-pro/api/user"
	"github.com/DuJao22/Comercio-pro/config"
	"github.com/DuJao22/Comercio-pro/core/auth"
	"github.com/DuJao22/Comercio-pro/cron"
	"github.com/DuJao22/Comercio-pro/cron/jobs"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	config.InitLogger()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	// SQLite installs do not run db:migrate; keep the schema current here.
	if db.Dialector.Name() == "sqlite" {
		if err := db.AutoMigrate(entity.All()...); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(middleware.CORS())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.Static("/media", config.AppConfig.MediaDir)
	if config.AppConfig.Env == "production" {
		// prebuilt SPA assets
		e.Static("/", "dist")
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)

	jobs.Bind(db)
	c := cron.StartCron()
	defer c.Stop()

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}
	zap.L().Info("server starting", zap.String("port", port))
	e.Logger.Fatal(e.Start(":" + port))
}
