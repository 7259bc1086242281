package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/projectpulse/project-pulse-backend/config"
	"github.com/projectpulse/project-pulse-backend/internal/auth"
	"github.com/projectpulse/project-pulse-backend/internal/bootstrap"
	"github.com/projectpulse/project-pulse-backend/internal/projects/repository"
	"github.com/projectpulse/project-pulse-backend/internal/ratelimit"
)

const serviceName = "project-pulse-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}
	defer rdb.Close()

	accounts, err := auth.ParseAccounts(cfg.Auth.Accounts)
	if err != nil {
		log.Fatalf("parse accounts: %v", err)
	}
	registry, err := auth.NewRegistry(accounts)
	if err != nil {
		log.Fatalf("build registry: %v", err)
	}

	sessions := auth.NewSessionStore(rdb, cfg.Auth.SessionTTL)

	projectRepo := repository.NewProjectRepository(
		repository.WithFaultHook(repository.RandomFaults(cfg.App.CreateFaultRate)),
	)
	if cfg.App.SeedDemoData {
		bootstrap.SeedDemoProjects(projectRepo)
	}

	limiter := ratelimit.New(cfg.Rate.Limit, cfg.Rate.Window)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Registry:    registry,
		Sessions:    sessions,
		Projects:    projectRepo,
		Limiter:     limiter,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
