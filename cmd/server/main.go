package main

import (
	"context"
	"log"
	"net/http"
	"os"
	ossignal "os/signal"
	"strings"
	"syscall"
	"time"

	"signal-deck/internal/bot"
	"signal-deck/internal/cache"
	"signal-deck/internal/config"
	"signal-deck/internal/db"
	"signal-deck/internal/handler"
	"signal-deck/internal/repository"
	"signal-deck/internal/service"
	"signal-deck/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "signal-deck/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initPostgresFunc       = db.InitPostgres
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	newSignalRepoFunc      = repository.NewSignalRepository
	newBotLogRepoFunc      = repository.NewBotLogRepository
	newSignalServiceFunc   = service.NewSignalService
	newLogServiceFunc      = service.NewLogService
	startTelegramBotFunc   = bot.StartTelegramBot
	newSignalWatcherFunc   = bot.NewSignalWatcher
	startWatcherFunc       = func(w *bot.SignalWatcher, ctx context.Context) { go w.Start(ctx) }
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = ossignal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Signal Deck API
// @version         1.0
// @description     Trading signal dashboard API with OpenTelemetry tracing.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Postgres and Redis
	os.Setenv("DATABASE_URL", cfg.DatabaseURL)
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initPostgresFunc(ctx)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create repositories and run migrations
	signalRepo := newSignalRepoFunc(db.Pool, tracer)
	logRepo := newBotLogRepoFunc(db.Pool, tracer)
	if db.Pool != nil {
		if err := signalRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run signal migrations: %v", err)
		}
		if err := logRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run log migrations: %v", err)
		}
	}

	signalService := newSignalServiceFunc(tracer, signalRepo)
	logService := newLogServiceFunc(tracer, logRepo)

	// Start Telegram bot and the alert watcher behind it
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	alerts := startTelegramBotFunc(signalService, logService)
	if alerts != nil {
		watcher := newSignalWatcherFunc(tracer, signalService, alerts, cache.Client,
			time.Duration(cfg.AlertPollSecs)*time.Second)
		startWatcherFunc(watcher, ctx)
	}

	// Create handlers and routes
	h := newHandlerFunc(tracer, signalService, logService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("signal-deck"))
	r.Use(cors.Default())

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    httpAddrFromEnv(),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

func httpAddrFromEnv() string {
	port := os.Getenv("PORT")
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
