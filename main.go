package main

import (
	"Gamehub/config"
	_ "Gamehub/config/swagger"
	"Gamehub/middleware"
	"Gamehub/models"
	"Gamehub/routes"
	"Gamehub/services/planner"
	"Gamehub/services/socket_io"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Gamehub API
// @version 1.0
// @description Gin-Gonic server for the Gamehub group gaming scheduler
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg.Prod, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Setting up server...", zap.String("store", cfg.StoreBackend), zap.String("timezone", cfg.Location.String()))

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	st, closeStore, err := config.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Error connecting to the store", zap.Error(err))
	}
	defer closeStore()

	sio := socket_io.NewServer(cfg.Location, logger)
	svc := planner.New(st,
		planner.WithLogger(logger),
		planner.WithLocation(cfg.Location),
		planner.WithNotifier(sio),
	)

	r := gin.Default()

	auth := middleware.NewAuth(cfg.Key)
	middleware.SetUpMiddleware(r, auth)

	routes.SetupRoutes(r, svc, auth)
	sio.Start(r, func(ctx context.Context, day time.Time) []models.GameGroup {
		return svc.ListGroups(ctx, day, "")
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-signalC

	logger.Info("Shutting down")
	sio.Close()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", zap.Error(err))
	}
}
