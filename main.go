package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mdnaeem95/purifai-mobile/src/config"
	"github.com/mdnaeem95/purifai-mobile/src/database"
	"github.com/mdnaeem95/purifai-mobile/src/handlers"
	"github.com/mdnaeem95/purifai-mobile/src/logger"
	"github.com/mdnaeem95/purifai-mobile/src/processors"
	"github.com/mdnaeem95/purifai-mobile/src/services"
	"github.com/mdnaeem95/purifai-mobile/src/utils"
	"github.com/patrickmn/go-cache"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("Purifai zakat backend starting...")
	ctx := context.Background()

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	db, err := database.InitDB(config.Cfg.DatabasePath)
	if err != nil {
		logger.L.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := database.RunMigrations(db); err != nil {
		logger.L.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	recordCache := cache.New(config.Cfg.RecordCacheTTL, services.CacheCleanupInterval)

	memberRepo := database.NewMemberRepository(db)
	recordRepo := services.NewCachedRecordRepository(database.NewRecordRepository(db), recordCache)
	nisabRepo := database.NewNisabRepository(db)

	zakatProcessor := processors.NewZakatProcessor()
	portfolioProcessor := processors.NewPortfolioProcessor()

	nisabService, err := services.NewNisabService(ctx, config.Cfg.Nisab, nisabRepo, time.Now)
	if err != nil {
		logger.L.Error("Failed to load nisab reference", "error", err)
		os.Exit(1)
	}
	familyService := services.NewFamilyService(memberRepo, recordRepo, time.Now)
	calculatorService := services.NewCalculatorService(recordRepo, memberRepo, nisabService, zakatProcessor, config.Cfg.Currency)
	portfolioService := services.NewPortfolioService(recordRepo, memberRepo, portfolioProcessor)

	self, err := familyService.EnsureSelf(ctx, config.Cfg.SelfMemberName)
	if err != nil {
		logger.L.Error("Failed to create the self member", "error", err)
		os.Exit(1)
	}
	logger.L.Info("Household ready", "selfMemberID", self.ID)

	nisabHandler := handlers.NewNisabHandler(nisabService)
	calculatorHandler := handlers.NewCalculatorHandler(calculatorService)
	memberHandler := handlers.NewMemberHandler(familyService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(handlers.CORSMiddleware(config.Cfg.AllowedOrigins))
	r.Use(handlers.RateLimitMiddleware(config.Cfg.RateLimitRPS, config.Cfg.RateLimitBurst))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.SendJSON(w, map[string]string{"message": "Purifai zakat backend is running"}, http.StatusOK)
	})

	r.Route("/api", handlers.APIRoutes(nisabHandler, calculatorHandler, memberHandler, portfolioHandler))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			utils.SendJSONError(w, "not found", http.StatusNotFound)
			return
		}
		http.NotFound(w, r)
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
