package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/estate-ads/internal/config"
	"github.com/iliyamo/estate-ads/internal/handler"
	"github.com/iliyamo/estate-ads/internal/middleware"
)

// Deps collects everything the route table needs. Redis may be nil, in
// which case the cache and rate-limit middleware become no-ops.
type Deps struct {
	Cfg      config.Config
	CacheCfg config.CacheConfig
	RateCfg  config.RateLimitConfig
	Redis    *redis.Client
	Auth     *handler.AuthHandler
	Ads      *handler.AdHandler
	Suggest  *handler.SuggestionHandler
}

// Register wires the full route table onto the Echo instance. The path
// layout matches the API the frontend already speaks: everything under
// /api, grouped by concern.
func Register(e *echo.Echo, d Deps) {
	// Every error, including unmatched routes, leaves as {"error": "..."}.
	e.HTTPErrorHandler = jsonErrorHandler

	e.GET("/healthz", handler.Health)

	auth := e.Group("/api/auth")
	auth.GET("/test", d.Auth.Test)
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login, middleware.RateLimit(d.Redis, d.RateCfg))
	auth.GET("/me", d.Auth.Me, middleware.JWTAuth(d.Cfg.JWTSecret))

	loc := e.Group("/api/location")
	loc.POST("/getLocationSuggestions", d.Suggest.GetLocationSuggestions)

	ads := e.Group("/api/ads")
	ads.GET("/getAllAds", d.Ads.GetAllAds, middleware.ResponseCache(d.Redis, d.CacheCfg))
	ads.POST("/saveAdInDB", d.Ads.SaveAd)
}

// jsonErrorHandler replaces echo's default so clients always get the
// {"error": msg} shape and internal detail never leaks.
func jsonErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if code == http.StatusNotFound {
			msg = "not found"
		} else if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	_ = c.JSON(code, echo.Map{"error": msg})
}
