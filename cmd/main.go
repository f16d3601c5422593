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

	busesHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/buses"
	cancelBookingHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/delete_booking"
	downloadTicketHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/download_ticket"
	getBookingHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/list_bookings"
	routesHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/routes"
	supportHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/support"
	updateBookingHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/update_booking_status"
	usersHandler "github.com/avdeyev/BusPark-BookingService/internal/api/handlers/users"
	"github.com/avdeyev/BusPark-BookingService/internal/api/middleware"
	"github.com/avdeyev/BusPark-BookingService/internal/config"
	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	bookingRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/booking"
	busRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/bus"
	routeRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/route"
	supportRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/support"
	userRepo "github.com/avdeyev/BusPark-BookingService/internal/infra/storage/user"
	"github.com/avdeyev/BusPark-BookingService/internal/infra/tokenstore"
	bookingsService "github.com/avdeyev/BusPark-BookingService/internal/service/bookings"
	busesService "github.com/avdeyev/BusPark-BookingService/internal/service/buses"
	routesService "github.com/avdeyev/BusPark-BookingService/internal/service/routes"
	supportService "github.com/avdeyev/BusPark-BookingService/internal/service/support"
	usersService "github.com/avdeyev/BusPark-BookingService/internal/service/users"
	cancelBookingUC "github.com/avdeyev/BusPark-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/avdeyev/BusPark-BookingService/internal/usecase/create_booking"
	"github.com/avdeyev/BusPark-BookingService/pkg/authtoken"
	"github.com/avdeyev/BusPark-BookingService/pkg/dbmetrics"
	"github.com/avdeyev/BusPark-BookingService/pkg/logger"
	"github.com/avdeyev/BusPark-BookingService/pkg/metrics"
	"github.com/avdeyev/BusPark-BookingService/pkg/ratelimit"
	"github.com/avdeyev/BusPark-BookingService/pkg/simpletxmanager"
	"github.com/avdeyev/BusPark-BookingService/pkg/txmanager"
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

	log.Info("Starting BusPark-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Подключаемся к Redis (refresh-токены и rate limiting)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Инициализируем репозитории (с метриками или без)
	var dbExecutor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		dbExecutor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingRepository := bookingRepo.NewRepository(dbExecutor)
	routeRepository := routeRepo.NewRepository(dbExecutor)
	busRepository := busRepo.NewRepository(dbExecutor)
	userRepository := userRepo.NewRepository(dbExecutor)
	supportRepository := supportRepo.NewRepository(dbExecutor)

	// Аутентификация
	tokenManager := authtoken.NewManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.Issuer,
		time.Duration(cfg.Auth.AccessTTLMin)*time.Minute,
	)
	refreshStore := tokenstore.NewStore(
		redisClient,
		time.Duration(cfg.Auth.RefreshTTLHours)*time.Hour,
	)

	// Rate limiter для auth endpoints
	var limiter ratelimit.Limiter = ratelimit.NoopLimiter{}
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewRedisLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		log.Info("Rate limiting enabled: %d requests per %ds", cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, routeRepository, log)
	routeSvc := routesService.NewService(routeRepository, log)
	busSvc := busesService.NewService(busRepository, routeRepository, log)
	userSvc := usersService.NewService(userRepository, tokenManager, refreshStore, log)
	supportSvc := supportService.NewService(supportRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, routeRepository, txMgr, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	downloadTicket := downloadTicketHandler.NewHandler(bookingSvc, log)
	routesH := routesHandler.NewHandler(routeSvc, log)
	busesH := busesHandler.NewHandler(busSvc, log)
	usersH := usersHandler.NewHandler(userSvc, log)
	supportH := supportHandler.NewHandler(supportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	authMW := middleware.Auth(tokenManager, log)
	adminMW := middleware.RequireAdmin(log)
	supportMW := middleware.RequireRole(log, string(domain.RoleAdmin), string(domain.RoleSupport))
	rateLimitMW := middleware.RateLimit(limiter, log)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация (с rate limiting по IP)
	auth := api.PathPrefix("/users").Subrouter()
	auth.Use(rateLimitMW)
	auth.HandleFunc("/register", usersH.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", usersH.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", usersH.Refresh).Methods(http.MethodPost)

	// Создание бронирования (доступно гостям)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID или коду, отмена, билет
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/ticket", downloadTicket.Handle).Methods(http.MethodGet)

	// Маршруты (чтение публично)
	api.HandleFunc("/routes", routesH.List).Methods(http.MethodGet)
	api.HandleFunc("/routes/{routeId}", routesH.Get).Methods(http.MethodGet)

	// Обращение в поддержку
	api.HandleFunc("/support/tickets", supportH.Create).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMW)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId:[0-9]+}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Профиль пользователя
	protected.HandleFunc("/users/{userId:[0-9]+}", usersH.Get).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId:[0-9]+}", usersH.Update).Methods(http.MethodPut)
	protected.HandleFunc("/users/{userId:[0-9]+}", usersH.Delete).Methods(http.MethodDelete)

	// Обновление бронирования
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(adminMW)

	// Административная выборка и управление бронированиями
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Управление маршрутами
	admin.HandleFunc("/routes", routesH.Create).Methods(http.MethodPost)
	admin.HandleFunc("/routes/{routeId}", routesH.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/routes/{routeId}", routesH.Delete).Methods(http.MethodDelete)

	// Управление автопарком
	admin.HandleFunc("/buses", busesH.Create).Methods(http.MethodPost)
	admin.HandleFunc("/buses", busesH.List).Methods(http.MethodGet)
	admin.HandleFunc("/buses/{busId}", busesH.Get).Methods(http.MethodGet)
	admin.HandleFunc("/buses/{busId}", busesH.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/buses/{busId}", busesH.Delete).Methods(http.MethodDelete)

	// Пользователи
	admin.HandleFunc("/users", usersH.List).Methods(http.MethodGet)

	// Обращения в поддержку (admin и support)
	supportAdmin := protected.PathPrefix("/support").Subrouter()
	supportAdmin.Use(supportMW)
	supportAdmin.HandleFunc("/tickets", supportH.List).Methods(http.MethodGet)
	supportAdmin.HandleFunc("/tickets/{ticketId}/status", supportH.UpdateStatus).Methods(http.MethodPatch)

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
