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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/create_booking"
	createEventHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/create_event"
	deleteEventHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/delete_event"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_available_slots"
	getDailyNoteHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_daily_note"
	getEventsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_events"
	getServicesHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_services"
	saveDailyNoteHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/save_daily_note"
	updateEventHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/update_event"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	eventRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/event"
	noteRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/note"
	eventsService "github.com/m04kA/SMC-CalendarService/internal/service/events"
	notesService "github.com/m04kA/SMC-CalendarService/internal/service/notes"
	createBookingUC "github.com/m04kA/SMC-CalendarService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
	"github.com/m04kA/SMC-CalendarService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/txmanager"
)

func main() {
	// Загружаем .env (если есть) до чтения конфигурации:
	// оттуда приходят CALENDAR_DB_PASSWORD и CALENDAR_ADMIN_TOKEN
	_ = godotenv.Load()

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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	if cfg.Auth.AdminToken == "" {
		log.Fatal("Admin token is not configured (set auth.admin_token or CALENDAR_ADMIN_TOKEN)")
	}

	schedule := cfg.Schedule.WorkSchedule()
	services := domain.DefaultServices

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

	// Инициализируем репозитории (с метриками или без)
	var (
		eventRepository *eventRepo.Repository
		noteRepository  *noteRepo.Repository
	)

	// Интерфейс transaction manager, используется в create_booking use case
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		noteRepository = noteRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		noteRepository = noteRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	eventSvc := eventsService.NewService(eventRepository, log)
	noteSvc := notesService.NewService(noteRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		eventRepository,
		schedule,
		cfg.Booking.SlotGranularityMinutes,
		cfg.Booking.LeadTimeHours,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		eventRepository,
		txMgr,
		schedule,
		services,
		cfg.Booking.LeadTimeHours,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServices := getServicesHandler.NewHandler(services, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createEvent := createEventHandler.NewHandler(eventSvc, log)
	updateEvent := updateEventHandler.NewHandler(eventSvc, log)
	deleteEvent := deleteEventHandler.NewHandler(eventSvc, log)
	getEvents := getEventsHandler.NewHandler(eventSvc, log)
	getDailyNote := getDailyNoteHandler.NewHandler(noteSvc, log)
	saveDailyNote := saveDailyNoteHandler.NewHandler(noteSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская страница бронирования)
	// ============================================================

	// Слоты дня с отметкой доступности
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Бронирование слота клиентом
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.AdminToken))

	// --- События календаря ---
	protected.HandleFunc("/events", createEvent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events", getEvents.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/events/{eventId}", updateEvent.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/events/{eventId}", deleteEvent.Handle).Methods(http.MethodDelete)

	// --- Заметки дня ---
	protected.HandleFunc("/notes/{date}", getDailyNote.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notes/{date}", saveDailyNote.Handle).Methods(http.MethodPut)

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
