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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_booking"
	createOrderHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_post_production_order"
	getAvailableDatesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_booking"
	getLastBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_last_booking"
	getMeHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_me"
	getPostProductionCatalogHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_post_production_catalog"
	getQuoteHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_quote"
	getStudioHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_studio"
	getUserBookingsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_user_bookings"
	listReviewsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_reviews"
	listStudiosHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_studios"
	registerUserHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/register_user"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/bookingref"
	"github.com/m04kA/SMC-StudioBooking/internal/config"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	idempotencyStore "github.com/m04kA/SMC-StudioBooking/internal/infra/cache/idempotency"
	lastBookingStore "github.com/m04kA/SMC-StudioBooking/internal/infra/cache/lastbooking"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/payments"
	bookingsService "github.com/m04kA/SMC-StudioBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
	createOrderUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_post_production_order"
	getAvailableDatesUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	quoteBookingUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
)

// bookingStore хранилище бронирований (PostgreSQL или память)
type bookingStore interface {
	Create(ctx context.Context, booking *domain.BookingRecord) (*domain.BookingRecord, error)
	GetByID(ctx context.Context, bookingID string) (*domain.BookingRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.BookingRecord, error)
}

// lastBookingCache хранилище последнего бронирования (Redis или память)
type lastBookingCache interface {
	Set(ctx context.Context, booking *domain.BookingRecord) error
	Get(ctx context.Context, userID string) (*domain.BookingRecord, error)
}

// idempotencyCache хранилище ключей идемпотентности (Redis или память)
type idempotencyCache interface {
	Get(ctx context.Context, key string) (string, error)
	Reserve(ctx context.Context, key string) (bool, error)
	Complete(ctx context.Context, key, bookingID string) error
	Release(ctx context.Context, key string) error
}

// businessMetrics метрики сервиса; при выключенных метриках - metrics.Nop
type businessMetrics interface {
	ObserveHTTPRequest(method, route, status string, duration time.Duration)
	IncBookingCreated(status string)
	IncBookingFailed(reason string)
}

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

	log.Info("Starting SMC-StudioBooking...")
	log.Info("Configuration loaded from config.toml (timezone=%s, window=%d days)",
		cfg.Booking.Timezone, cfg.Booking.WindowDays)

	location := cfg.Location()

	// Инициализируем метрики (если включены)
	var metricsCollector businessMetrics = metrics.Nop{}
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище бронирований
	var bookings bookingStore
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
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

		if cfg.Metrics.Enabled {
			bookings = bookingRepo.NewRepository(dbmetrics.Wrap(db, cfg.Metrics.ServiceName, prometheus.DefaultRegisterer))
			log.Info("Database metrics collection started")
		} else {
			bookings = bookingRepo.NewRepository(db)
		}

	default:
		bookings = bookingRepo.NewMemoryRepository()
		log.Warn("Using in-memory booking storage, bookings are lost on restart")
	}

	// Хранилища последнего бронирования и ключей идемпотентности
	var (
		lastBookings lastBookingCache
		idempotency  idempotencyCache
	)
	switch cfg.Cache.Driver {
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Cache.RedisAddr, err)
		}
		cancel()
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Cache.RedisAddr, cfg.Cache.RedisDB)

		lastBookings = lastBookingStore.NewRedisStore(client, cfg.LastBookingTTL())
		idempotency = idempotencyStore.NewRedisStore(client, cfg.IdempotencyTTL())

	default:
		lastBookings = lastBookingStore.NewMemoryStore()
		idempotency = idempotencyStore.NewMemoryStore(cfg.IdempotencyTTL())
		log.Warn("Using in-memory cache for last bookings and idempotency keys")
	}

	// Каталог
	seed, err := catalog.DefaultSeed()
	if err != nil {
		log.Fatal("Failed to load catalog seed: %v", err)
	}
	catalogSvc := catalog.NewService(seed, nil, log)
	log.Info("Catalog loaded: studios=%d, reviews=%d, tiers=%d", len(seed.Studios), len(seed.Reviews), len(seed.Tiers))

	// Интеграции
	paymentProcessor := payments.NewProcessor(cfg.PaymentDelay(), cfg.Booking.PaymentFailureRate, nil, log)
	refs := bookingref.NewGenerator(nil)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookings, lastBookings, location, log)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(catalogSvc, cfg.Booking.WindowDays, location, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalogSvc, cfg.Booking.WindowDays, location, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(catalogSvc, log)
	createBookingUseCase := createBookingUC.NewUseCase(createBookingUC.Dependencies{
		Studios:      catalogSvc,
		Bookings:     bookings,
		LastBookings: lastBookings,
		Idempotency:  idempotency,
		Payments:     paymentProcessor,
		IDs:          refs,
		Metrics:      metricsCollector,
	}, cfg.Booking.WindowDays, location, log)
	createOrderUseCase := createOrderUC.NewUseCase(catalogSvc, refs, log)

	// Инициализируем handlers
	listStudios := listStudiosHandler.NewHandler(catalogSvc, log)
	getStudio := getStudioHandler.NewHandler(catalogSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getQuote := getQuoteHandler.NewHandler(quoteBookingUseCase, log)
	listReviews := listReviewsHandler.NewHandler(catalogSvc, log)
	getPostProductionCatalog := getPostProductionCatalogHandler.NewHandler(catalogSvc, log)
	registerUser := registerUserHandler.NewHandler(catalogSvc, location, log)
	getMe := getMeHandler.NewHandler(log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getLastBooking := getLastBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)

	// Ограничение частоты для изменяющих запросов
	limit := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		trustedProxies, err := cfg.RateLimit.ProxyPrefixes()
		if err != nil {
			log.Fatal("Failed to parse trusted proxies: %v", err)
		}
		limiter := middleware.RateLimit(middleware.RateLimitOptions{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			TrustedProxies:    trustedProxies,
			IdleTTL:           cfg.RateLimit.IdleLimiterTTL(),
		}, log)
		limit = func(h http.HandlerFunc) http.Handler { return limiter(h) }
		log.Info("Rate limit enabled: %.1f rps, burst=%d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог ---
	api.HandleFunc("/studios", listStudios.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studios/{studioId:[0-9]+}", getStudio.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/post-production/catalog", getPostProductionCatalog.Handle).Methods(http.MethodGet)

	// --- Доступность и стоимость ---
	api.HandleFunc("/studios/{studioId:[0-9]+}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studios/{studioId:[0-9]+}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/studios/{studioId:[0-9]+}/quote", getQuote.Handle).Methods(http.MethodGet)

	// --- Регистрация ---
	api.Handle("/users", limit(registerUser.Handle)).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(catalogSvc, log))

	protected.HandleFunc("/me", getMe.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.Handle("/bookings", limit(createBooking.Handle)).Methods(http.MethodPost)

	// Последнее бронирование (регистрируется до /bookings/{bookingId})
	protected.HandleFunc("/bookings/last", getLastBooking.Handle).Methods(http.MethodGet)

	// Получение бронирования по номеру (экран подтверждения)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований пользователя и дашборд
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Постпродакшн ---
	protected.Handle("/post-production/orders", limit(createOrder.Handle)).Methods(http.MethodPost)

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
