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

	cancelBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_booking"
	createHotelHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_hotel"
	createRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_room"
	getBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_booking"
	getHotelHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_hotel"
	getHotelRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_hotel_rooms"
	getHotelsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_hotels"
	getMyBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_my_bookings"
	initiatePaymentHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/initiate_payment"
	paymentWebhookHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/payment_webhook"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	hotelRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/hotel"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	identityClient "github.com/m04kA/SMC-HotelService/internal/integrations/identity"
	paymentClient "github.com/m04kA/SMC-HotelService/internal/integrations/paymentprovider"
	bookingsService "github.com/m04kA/SMC-HotelService/internal/service/bookings"
	hotelsService "github.com/m04kA/SMC-HotelService/internal/service/hotels"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	createBookingUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	initiatePaymentUC "github.com/m04kA/SMC-HotelService/internal/usecase/initiate_payment"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
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

	log.Info("Starting SMC-HotelService...")
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

	// Инициализируем интеграционных клиентов
	identity := identityClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	payments := paymentClient.NewClient(
		cfg.Payments.APIURL,
		cfg.Payments.SecretKey,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, Payments=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout, cfg.Payments.APIURL, cfg.Payments.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		hotelRepository   *hotelRepo.Repository
		roomRepository    *roomRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		hotelRepository = hotelRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		hotelRepository = hotelRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	hotelSvc := hotelsService.NewService(hotelRepository, log)
	roomSvc := roomsService.NewService(roomRepository, hotelRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		log,
	)
	initiatePaymentUseCase := initiatePaymentUC.NewUseCase(
		bookingRepository,
		roomRepository,
		payments,
		txMgr,
		cfg.Payments.Currency,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	initiatePayment := initiatePaymentHandler.NewHandler(initiatePaymentUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(bookingSvc, cfg.Payments.WebhookSecret, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	createHotel := createHotelHandler.NewHandler(hotelSvc, log)
	getHotels := getHotelsHandler.NewHandler(hotelSvc, log)
	getHotel := getHotelHandler.NewHandler(hotelSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	getHotelRooms := getHotelRoomsHandler.NewHandler(roomSvc, log)

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

	// Каталог отелей и номеров
	api.HandleFunc("/hotels", getHotels.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}", getHotel.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}/rooms", getHotelRooms.Handle).Methods(http.MethodGet)

	// Webhook платежного провайдера (аутентификация подписью события)
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(identity, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getMyBookings.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	protected.HandleFunc("/payments/intent", initiatePayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (управление каталогом)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth(identity, log), middleware.RequireAdmin(log))

	admin.HandleFunc("/hotels", createHotel.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/hotels/{hotelId}/rooms", createRoom.Handle).Methods(http.MethodPost)

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
