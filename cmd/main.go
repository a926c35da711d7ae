package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/get_user_bookings"
	getVenueHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/get_venue"
	getVenueBookingsHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/get_venue_bookings"
	listSportsHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/list_sports"
	listVenuesHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/list_venues"
	resolveCourtsHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/resolve_courts"
	updateBookingStatusHandler "github.com/m04kA/SportHub-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SportHub-BookingService/internal/api/middleware"
	"github.com/m04kA/SportHub-BookingService/internal/config"
	"github.com/m04kA/SportHub-BookingService/internal/infra/cache"
	"github.com/m04kA/SportHub-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/catalog"
	courtRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/court"
	templateSlotRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/templateslot"
	venueAdminRepo "github.com/m04kA/SportHub-BookingService/internal/infra/storage/venueadmin"
	bookingsService "github.com/m04kA/SportHub-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SportHub-BookingService/internal/service/catalog"
	createBookingUC "github.com/m04kA/SportHub-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SportHub-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SportHub-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SportHub-BookingService/pkg/logger"
	"github.com/m04kA/SportHub-BookingService/pkg/metrics"
	"github.com/m04kA/SportHub-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/SportHub-BookingService/pkg/txmanager"
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

	log.Info("Starting SportHub-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем кэш каталога (если включен)
	var catalogCache *cache.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// Кэш опционален, сервис работает напрямую с БД
			log.Warn("Redis unavailable, catalog cache disabled: %v", err)
		} else {
			catalogCache = cache.New(redisClient, time.Duration(cfg.Redis.CatalogTTL)*time.Second)
			defer redisClient.Close()
			log.Info("Catalog cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CatalogTTL)
		}
	}

	// Инициализируем публикацию событий (если включена)
	var publisher *events.Publisher
	if cfg.Events.Enabled {
		publisher, err = events.NewPublisher(cfg.Events.URL)
		if err != nil {
			// События опциональны, сервис продолжает работу без них
			log.Warn("RabbitMQ unavailable, booking events disabled: %v", err)
			publisher = nil
		} else {
			defer publisher.Close()
			log.Info("Booking events publisher connected (url=%s)", cfg.Events.URL)
		}
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		catalogRepository      *catalogRepo.Repository
		courtRepository        *courtRepo.Repository
		templateSlotRepository *templateSlotRepo.Repository
		venueAdminRepository   *venueAdminRepo.Repository
	)

	var txMgr createBookingUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		templateSlotRepository = templateSlotRepo.NewRepository(wrappedDB)
		venueAdminRepository = venueAdminRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		templateSlotRepository = templateSlotRepo.NewRepository(db)
		venueAdminRepository = venueAdminRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		catalogRepository,
		catalogRepository,
		courtRepository,
		catalogCache,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		courtRepository,
		venueAdminRepository,
		publisher,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		courtRepository,
		templateSlotRepository,
		bookingRepository,
		txMgr,
		publisher,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		courtRepository,
		templateSlotRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	listSports := listSportsHandler.NewHandler(catalogSvc, log)
	listVenues := listVenuesHandler.NewHandler(catalogSvc, log)
	getVenue := getVenueHandler.NewHandler(catalogSvc, log)
	resolveCourts := resolveCourtsHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочники
	api.HandleFunc("/sports", listSports.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId:[0-9]+}", getVenue.Handle).Methods(http.MethodGet)

	// Поиск кортов по именам площадки и вида спорта
	api.HandleFunc("/courts", resolveCourts.Handle).Methods(http.MethodGet)

	// Расписание корта на дату
	api.HandleFunc("/courts/{courtId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования (доступно гостям, userID берется из заголовка при наличии)
	bookingCreate := api.PathPrefix("").Subrouter()
	bookingCreate.Use(middleware.Identity)
	bookingCreate.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Обновление статуса бронирования (для администраторов площадки)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для администраторов) ---
	// Список бронирований площадки
	protected.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
