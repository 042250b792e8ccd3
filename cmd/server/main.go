package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oneplace/translation/internal/config"
	"oneplace/translation/internal/db"
	"oneplace/translation/internal/handler"
	transport "oneplace/translation/internal/http"
	"oneplace/translation/internal/i18n"
	"oneplace/translation/internal/logger"
	"oneplace/translation/internal/repository"
	"oneplace/translation/internal/scheduler"
	"oneplace/translation/internal/service"
	"oneplace/translation/internal/snowflake"
)

// @title Translation API
// @version 1.0
// @description Translation management: localized string entries and gettext catalog generation.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(0); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	translationRepo := repository.NewTranslationRepository(dbConn)
	tagRepo := repository.NewTagRepository(dbConn)
	fieldRepo := repository.NewFormFieldRepository(dbConn)
	statsRepo := repository.NewStatisticRepository(dbConn)

	translator := i18n.New(cfg.LanguageDir, cfg.Languages)
	resolver := service.NewFieldResolver(tagRepo, translator)

	translationService := service.NewTranslationService(translationRepo, statsRepo, service.StaticIdentity(1))
	catalogService := service.NewCatalogService(translationRepo, tagRepo, translator, cfg.LanguageDir, cfg.Languages)

	translationHandler := handler.NewTranslationHandler(translationService, catalogService, resolver, fieldRepo, translator)

	router := transport.NewRouter(translationHandler)

	sched := scheduler.New(translationService, 24*time.Hour)
	sched.Start()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		sched.Stop()
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
