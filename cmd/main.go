package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculateQuoteHandler "github.com/m04kA/LDV-ReservationService/internal/api/handlers/calculate_quote"
	cancelReservationHandler "github.com/m04kA/LDV-ReservationService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/LDV-ReservationService/internal/api/handlers/check_availability"
	getInfoHandler "github.com/m04kA/LDV-ReservationService/internal/api/handlers/get_info"
	getReservationsHandler "github.com/m04kA/LDV-ReservationService/internal/api/handlers/get_reservations"
	getTableStatusHandler "github.com/m04kA/LDV-ReservationService/internal/api/handlers/get_table_status"
	makeReservationHandler "github.com/m04kA/LDV-ReservationService/internal/api/handlers/make_reservation"
	"github.com/m04kA/LDV-ReservationService/internal/api/middleware"
	"github.com/m04kA/LDV-ReservationService/internal/config"
	"github.com/m04kA/LDV-ReservationService/internal/infra/dataset"
	"github.com/m04kA/LDV-ReservationService/internal/infra/storage/reservations"
	"github.com/m04kA/LDV-ReservationService/internal/infra/storage/tables"
	availabilityService "github.com/m04kA/LDV-ReservationService/internal/service/availability"
	infoService "github.com/m04kA/LDV-ReservationService/internal/service/info"
	menuService "github.com/m04kA/LDV-ReservationService/internal/service/menu"
	cancelReservationUC "github.com/m04kA/LDV-ReservationService/internal/usecase/cancel_reservation"
	checkAvailabilityUC "github.com/m04kA/LDV-ReservationService/internal/usecase/check_availability"
	findTableUC "github.com/m04kA/LDV-ReservationService/internal/usecase/find_table"
	makeReservationUC "github.com/m04kA/LDV-ReservationService/internal/usecase/make_reservation"
	"github.com/m04kA/LDV-ReservationService/pkg/logger"
	"github.com/m04kA/LDV-ReservationService/pkg/metrics"
	"github.com/m04kA/LDV-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LDV-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем датасет ресторана: столы, меню, справка
	data, err := dataset.Load(cfg.Restaurant.DataFile)
	if err != nil {
		log.Fatal("Failed to load restaurant dataset: %v", err)
	}
	log.Info("Restaurant dataset loaded from %s (%d tables, %d menu categories)",
		cfg.Restaurant.DataFile, len(data.Tables), len(data.Catalog.Categories))

	// Инициализируем хранилища
	tableRegistry := tables.NewRegistry(data.Tables)
	reservationStore := reservations.NewStore()
	txMgr := txmanager.NewManager()

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(reservationStore, tableRegistry, log)
	menuSvc := menuService.NewService(data.Catalog, log)
	infoSvc := infoService.NewService(data.Info, data.Catalog, log)

	// Инициализируем use cases
	findTableUseCase := findTableUC.NewUseCase(tableRegistry, availabilitySvc, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(findTableUseCase, log)
	makeReservationUseCase := makeReservationUC.NewUseCase(
		findTableUseCase,
		reservationStore,
		menuSvc,
		txMgr,
		metricsCollector,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(reservationStore, metricsCollector, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	makeReservation := makeReservationHandler.NewHandler(makeReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	calculateQuote := calculateQuoteHandler.NewHandler(menuSvc, log)
	getInfo := getInfoHandler.NewHandler(infoSvc, log)
	getReservations := getReservationsHandler.NewHandler(reservationStore, log)
	getTableStatus := getTableStatusHandler.NewHandler(tableRegistry, availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Проверка доступности столов
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// Бронирования: создание, отмена, список
	api.HandleFunc("/reservations", makeReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/cancel", cancelReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)

	// Обсчет takeaway-заказа без фиксации
	api.HandleFunc("/orders/quote", calculateQuote.Handle).Methods(http.MethodPost)

	// Справка о ресторане и снимок статусов столов
	api.HandleFunc("/info", getInfo.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tables/status", getTableStatus.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
