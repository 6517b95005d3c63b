package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"repaired-site/internal/cache"
	"repaired-site/internal/config"
	"repaired-site/internal/contact"
	"repaired-site/internal/db"
	"repaired-site/internal/logos"
	"repaired-site/internal/middleware"
	"repaired-site/internal/notifications"
	"repaired-site/internal/validation"
	"repaired-site/internal/web"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := db.Open(ctx, cfg.DatabaseURL, cfg.MongoDB)
	if err != nil {
		logger.Error("database connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	if conn.Driver == db.DriverNone {
		logger.Warn("DATABASE_URL not set, logo endpoints will fail")
	} else {
		if err := conn.Migrate(ctx); err != nil {
			logger.Error("database migration failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("database connected", slog.String("driver", string(conn.Driver)))
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.CacheEnabled() {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL, cfg.RedisPrefix)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisCache.Close()
		if cfg.RedisURL != "" {
			logger.Info("redis connected (url)")
		} else {
			logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		cacheStore = redisCache
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	var notifier contact.Notifier
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
		notifier = mailer
	}

	val := validation.New()

	logoService := logos.NewService(logos.NewRepository(conn), val, cacheStore, time.Duration(cfg.CacheTTLSeconds)*time.Second).WithLogger(logger)
	logoHandler := logos.NewHandler(logoService, logger)

	contactService := contact.NewService(val, notifier, cfg.ContactInbox)
	contactHandler := contact.NewHandler(contactService, logger)

	pages, err := web.NewHandler(logoService, contactService, logger)
	if err != nil {
		logger.Error("template parsing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ServerTiming(cfg.ServerTiming))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	registerAPIRoutes := func(api chi.Router) {
		api.Get("/health", healthHandler(conn, string(conn.Driver), logger))
		logoHandler.Routes(api)
		api.With(contactLimiter.Middleware, contactHandler.Recover).Post("/contact", contactHandler.Create)
		web.ServeDir(api, "/uploads", cfg.UploadsDir)
	}

	web.ServeDir(r, "/images", cfg.ImagesDir)

	// /api/v1 mirrors /api.
	r.Route("/api", registerAPIRoutes)
	r.Route("/api/v1", registerAPIRoutes)

	pages.Routes(r, contactLimiter.Middleware)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
