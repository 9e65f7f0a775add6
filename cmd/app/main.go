package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"penguinadmin/cmd"
	_ "penguinadmin/docs"

	"github.com/labstack/gommon/log"
)

//	@title						Penguin Admin API
//	@version					1.0
//	@description				Storefront checkout, order tracking and delivery reporting.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	logger := cmd.NewLogger(configs.LogLevel)

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Database unavailable: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	sessions, err := app.CreateSessionManager()
	if err != nil {
		log.Fatalf("JWT_SECRET must be set: %v", err)
	}

	csrf, release, err := app.CreateAntiForgeryStore()
	if err != nil {
		log.Fatalf("Anti-forgery store unavailable: %v", err)
	}
	defer release()

	jobManager := app.CreateJobManager(csrf)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateHTTPServer(sessions, csrf).NewEcho()
	if err != nil {
		log.Fatalf("Failed to build the HTTP server: %v", err)
	}

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.Info("HTTP server started", "addr", addr, "env", configs.AppEnv)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
