package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/config"
	_ "github.com/hollow-cyber/Sarcopenia-Risk-Analytics/docs"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/assets"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/database"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/handlers"
	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/services"
)

// @title Sarcopenia Risk Analytics API
// @version 1.0
// @description Ансамблевое предсказание риска саркопении: индивидуальная функция дожития, относительный риск и клиническая стратификация на основе Cox-моделей
// @BasePath /api/v1
func main() {
	// 1. Загрузка конфигурации и логгера
	cfg := config.Load()
	config.InitLogger()

	// 2. Загрузка артефактов модели: один раз на старте, далее
	// бандл только читается и разделяется всеми запросами
	bundle, err := assets.LoadModelAssets(cfg.Model.ModelsDir, cfg.Model.Method)
	if err != nil {
		log.Fatalf("Не удалось загрузить артефакты модели: %v", err)
	}
	slog.Info("Model assets loaded",
		"method", bundle.Method, "folds", len(bundle.Folds), "features", len(bundle.Features))

	// 3. Клиническая конфигурация: её отсутствие не фатально
	thresholds, err := assets.LoadThresholds(cfg.Model.ConfigDir, cfg.Model.Method)
	if err != nil {
		slog.Info("Thresholds config unavailable, using documented defaults", "error", err)
	}
	bounds, err := assets.LoadFeatureBounds(cfg.Model.ConfigDir)
	if err != nil {
		slog.Info("Feature bounds unavailable, plausibility check disabled", "error", err)
	}

	// 4. Подключение к БД (опционально — журнал предсказаний)
	var db *gorm.DB
	if cfg.PersistenceEnabled() {
		db, err = database.Connect(cfg)
		if err != nil {
			log.Fatalf("Ошибка подключения к БД: %v", err)
		}
		defer database.Close(db)

		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("Ошибка миграций: %v", err)
		}
	} else {
		slog.Info("DB_HOST is empty, running without prediction history")
	}

	// 5. Сервисы и обработчики
	predictService := services.NewPredictService(bundle, thresholds, bounds, db)
	predictHandler := handlers.NewPredictHandler(predictService)
	router := predictHandler.SetupRoutes(cfg.Auth.Secret)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Sarcopenia prediction service started", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка HTTP сервера: %v", err)
		}
	}()

	// 6. Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("Graceful shutdown...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	slog.Info("Service stopped")
}
