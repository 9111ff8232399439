package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/smartprofile/backend/internal/config"
	"github.com/smartprofile/backend/internal/database"
	"github.com/smartprofile/backend/internal/generator"
	"github.com/smartprofile/backend/internal/handler"
	"github.com/smartprofile/backend/internal/middleware"
	"github.com/smartprofile/backend/internal/queue"
	"github.com/smartprofile/backend/internal/repository"
	"github.com/smartprofile/backend/internal/router"
	queue_publisher "github.com/smartprofile/backend/internal/service"
)

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Println("[env] loaded", p)
			return
		}
	}
}

func main() {
	loadDotenv()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("[db] connect failed: %v", err)
	}
	defer db.Close()
	log.Println("[db] connected")

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("[redis] unavailable; rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	// Background consumer that appends generation events to logs/generation.log.
	go queue.StartSummaryConsumer()

	users := repository.NewUserRepo(db)
	resumes := repository.NewResumeRepo(db)
	gen := generator.NewService(resumes,
		generator.NewClient(cfg.GenerateURL, cfg.GenerateModel, cfg.GenerateTimeout))
	gen.Publish = queue_publisher.PublishSummaryGenerated

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg,
		handler.NewAuthHandler(cfg, users),
		handler.NewResumeHandler(gen),
		middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	go func() {
		log.Printf("listening on :%s (env=%s)", cfg.Port, cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
