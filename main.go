package main

import (
	"fmt"
	"log"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/configs"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/middlewares"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/pkg/logger"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		zl.Fatal("connect database", zap.Error(err))
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		zl.Fatal("migrate", zap.Error(err))
	}

	if err := configs.SeedAdmin(db); err != nil {
		zl.Fatal("seed admin", zap.Error(err))
	}
	if err := configs.SeedLookups(db); err != nil {
		zl.Fatal("seed lookups", zap.Error(err))
	}

	svcs := routes.BuildServices(db, cfg, zl)

	// kitchen live feed
	go svcs.Hub.Run()

	// stale-session sweep
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := svcs.Session.SweepStale(cfg.SessionMaxAge); err != nil {
				zl.Error("session sweep", zap.Error(err))
			}
		}
	}()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, svcs, cfg, zl)

	addr := fmt.Sprintf(":%s", cfg.Port)
	zl.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
