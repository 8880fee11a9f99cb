package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/estate-ads/internal/config"
	"github.com/iliyamo/estate-ads/internal/database"
	"github.com/iliyamo/estate-ads/internal/handler"
	"github.com/iliyamo/estate-ads/internal/repository"
	"github.com/iliyamo/estate-ads/internal/router"
	"github.com/iliyamo/estate-ads/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// Two stores: credentials and listings live in separate databases.
	// Both handles are owned here and closed on the way out.
	authDB, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBAuthName)
	if err != nil {
		log.Fatalf("open auth db: %v", err)
	}
	defer authDB.Close()

	adsDB, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBAdsName)
	if err != nil {
		log.Fatalf("open ads db: %v", err)
	}
	defer adsDB.Close()

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureAuthSchema(schemaCtx, authDB); err != nil {
		log.Fatalf("ensure auth schema: %v", err)
	}
	if err := database.EnsureAdsSchema(schemaCtx, adsDB); err != nil {
		log.Fatalf("ensure ads schema: %v", err)
	}
	schemaCancel()

	rdb := config.NewRedisClient() // nil disables cache and rate limiting
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Deps{
		Cfg:      cfg,
		CacheCfg: config.LoadCacheConfig(),
		RateCfg:  config.LoadRateLimitConfig(),
		Redis:    rdb,
		Auth:     handler.NewAuthHandler(cfg, repository.NewUserRepo(authDB)),
		Ads:      handler.NewAdHandler(repository.NewAdRepo(adsDB)),
		Suggest:  handler.NewSuggestionHandler(service.NewSuggestionClient(cfg.SuggestionsURL)),
	})

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests before the
	// deferred store handles close.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	if err := e.Shutdown(shCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
