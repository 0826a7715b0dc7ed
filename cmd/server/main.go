package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lambda-kit/internal/config"
	"lambda-kit/internal/handlers"
	"lambda-kit/internal/middleware"
	"lambda-kit/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Local development server. It serves the same handlers the Lambda entry
// points use, converting each HTTP request into a lambda.Request.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	runtime := lambda.NewRuntime(cfg)
	if _, err := runtime.NewLogger(); err != nil {
		logrus.Fatalf("Invalid logger configuration: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"mode":      cfg.Serverless.DeploymentMode(),
		})
	})
	router.GET("/token/status", middleware.Lambda(handlers.NewTokenStatusHandler(runtime).Handle, logrus.StandardLogger()))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logrus.WithField("port", cfg.Port).Info("Starting development server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
