package main // Entry point package

import (
	"log"  // Logging library
	"time" // converts the configured TTL into a duration

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/lost-and-found/internal/auth"       // hashing, tokens, resolver, guard
	"github.com/iliyamo/lost-and-found/internal/config"     // environment configuration
	"github.com/iliyamo/lost-and-found/internal/database"   // MySQL connection
	"github.com/iliyamo/lost-and-found/internal/handler"    // HTTP handlers
	"github.com/iliyamo/lost-and-found/internal/middleware" // cache and rate limit middleware
	"github.com/iliyamo/lost-and-found/internal/queue"      // background item event consumer
	"github.com/iliyamo/lost-and-found/internal/repository" // data access layer
	"github.com/iliyamo/lost-and-found/internal/router"     // route registration
)

func main() {
	// Load a local .env file when present; in production the environment
	// is provided by the platform and the file simply does not exist.
	_ = godotenv.Load()

	cfg := config.Load() // fatals on missing required variables

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories over the shared connection pool.
	users := repository.NewUserRepo(db, cfg.LoginField)
	items := repository.NewItemRepo(db)

	// The auth core: explicitly constructed from config, no ambient
	// globals. The signing secret was read once by config.Load.
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), time.Duration(cfg.AccessTTLMin)*time.Minute)
	authn := auth.NewAuthenticator(users, hasher)
	resolver := auth.NewResolver(tokens, users)

	// Redis is optional: without it the cache and the rate limiter become
	// pass-throughs and the service keeps working.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Background consumer for item events; it reconnects on its own and
	// never takes the server down.
	go func() {
		if err := queue.StartItemConsumer(); err != nil {
			log.Printf("item consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, hasher, authn, tokens), resolver, limiter)
	router.RegisterItems(e, handler.NewItemHandler(items), resolver)
	router.RegisterPublic(e, handler.NewPublicHandler(items), cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
