package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DhavalSuthar-24/skillbloom/config"
	_ "github.com/DhavalSuthar-24/skillbloom/docs"
	"github.com/DhavalSuthar-24/skillbloom/internal/ai"
	"github.com/DhavalSuthar-24/skillbloom/internal/assessment"
	"github.com/DhavalSuthar-24/skillbloom/internal/auth"
	"github.com/DhavalSuthar-24/skillbloom/internal/listing"
	"github.com/DhavalSuthar-24/skillbloom/internal/mentor"
	"github.com/DhavalSuthar-24/skillbloom/internal/skill"
	"github.com/DhavalSuthar-24/skillbloom/internal/story"
	"github.com/DhavalSuthar-24/skillbloom/internal/suggestion"
	"github.com/DhavalSuthar-24/skillbloom/internal/user"
	"github.com/DhavalSuthar-24/skillbloom/pkg/cache"
	"github.com/DhavalSuthar-24/skillbloom/pkg/logger"
	"github.com/DhavalSuthar-24/skillbloom/pkg/validator"
	"github.com/DhavalSuthar-24/skillbloom/routes"
)

const shutdownGrace = 10 * time.Second

// @title SkillBloom REST API
// @version 1.0
// @description Skill verification, suggestions and marketplace API for homemakers.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := config.GetConfig()

	appLog, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()
	for _, w := range cfg.Warnings {
		appLog.Warn(w)
	}

	validator.UseJSONFieldNames()

	err = config.DB.AutoMigrate(
		&user.User{}, &user.Role{}, &user.UserRole{}, &user.RefreshToken{},
		&skill.Skill{}, &assessment.AssessmentResponse{}, &suggestion.SkillSuggestion{},
		&listing.Listing{}, &mentor.Mentor{}, &story.SuccessStory{},
	)
	if err != nil {
		appLog.Fatal("AutoMigrate failed", "error", err)
	}
	if err := auth.SeedRoles(config.DB); err != nil {
		appLog.Fatal("seeding roles failed", "error", err)
	}
	appLog.Info("database ready")

	redisCache := cache.NewRedis(cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	}, appLog)
	defer redisCache.Close()

	deps := routes.Deps{Log: appLog, Cache: redisCache}
	client, err := ai.New(ai.Config{
		APIKey:     cfg.AI.APIKey,
		BaseURL:    cfg.AI.BaseURL,
		Model:      cfg.AI.Model,
		MaxRetries: cfg.AI.MaxRetries,
	}, appLog)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		appLog.Warn("OPENAI_API_KEY not set; verification and suggestions will report the provider as unavailable")
		deps.Verifier, deps.Suggester = ai.Disabled{}, ai.Disabled{}
	case err != nil:
		appLog.Fatal("failed to build AI client", "error", err)
	default:
		deps.Verifier, deps.Suggester = ai.NewVerifier(client), ai.NewSuggester(client)
		appLog.Info("AI provider configured", "model", client.Model())
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           routes.SetupRoutes(config.DB, cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Info("starting server", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("graceful shutdown failed", "error", err)
	}
}
