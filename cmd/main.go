package main

import (
	"context"
	"database/sql"
	"errors"
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

	discardDraftHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/discard_draft"
	geocodeAddressHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/geocode_address"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_booking"
	getChatHistoryHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_chat_history"
	getDraftHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_draft"
	getNotificationsHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_notifications"
	getQuoteHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_quote"
	getServicesHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_services"
	getTestimonialsHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/get_testimonials"
	sendChatMessageHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/send_chat_message"
	sendInquiryHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/send_inquiry"
	startDraftHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/start_draft"
	submitDraftHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/submit_draft"
	updateDraftHandler "github.com/m04kA/SMC-DetailingService/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/availability"
	"github.com/m04kA/SMC-DetailingService/internal/catalog"
	"github.com/m04kA/SMC-DetailingService/internal/config"
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/draft"
	bookingRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/booking"
	chatHistoryRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/chathistory"
	draftsRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/drafts"
	notificationsRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/notifications"
	emailClient "github.com/m04kA/SMC-DetailingService/internal/integrations/email"
	geminiClient "github.com/m04kA/SMC-DetailingService/internal/integrations/gemini"
	nominatimClient "github.com/m04kA/SMC-DetailingService/internal/integrations/nominatim"
	"github.com/m04kA/SMC-DetailingService/internal/pricing"
	bookingsService "github.com/m04kA/SMC-DetailingService/internal/service/bookings"
	chatService "github.com/m04kA/SMC-DetailingService/internal/service/chat"
	sessionsService "github.com/m04kA/SMC-DetailingService/internal/service/sessions"
	getAvailableSlotsUC "github.com/m04kA/SMC-DetailingService/internal/usecase/get_available_slots"
	sendInquiryUC "github.com/m04kA/SMC-DetailingService/internal/usecase/send_inquiry"
	submitBookingUC "github.com/m04kA/SMC-DetailingService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-DetailingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingService/pkg/logger"
	"github.com/m04kA/SMC-DetailingService/pkg/metrics"
)

const janitorInterval = time.Minute

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

	log.Info("Starting SMC-DetailingService...")
	log.Info("Configuration loaded from config.toml")

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

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

	// Подключаемся к Redis (черновики, уведомления, история чата)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(appCtx).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем репозитории (с метриками или без)
	var bookingRepository *bookingRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	draftRepository := draftsRepo.NewRepository(redisClient, cfg.Redis.DraftTTL())
	inboxRepository := notificationsRepo.NewRepository(redisClient, cfg.Redis.InboxTTL(), log)
	chatRepository := chatHistoryRepo.NewRepository(redisClient, cfg.Gemini.HistoryLimit, cfg.Redis.ChatTTL())

	// Инициализируем интеграционных клиентов
	var mailer submitBookingUC.EmailSender
	if sendGrid := emailClient.NewClient(emailClient.Config{
		APIKey:    cfg.SendGrid.APIKey,
		FromEmail: cfg.SendGrid.FromEmail,
		FromName:  cfg.SendGrid.FromName,
	}, log); sendGrid != nil {
		mailer = sendGrid
		log.Info("Email delivery via SendGrid (from=%s)", cfg.SendGrid.FromEmail)
	} else {
		mailer = emailClient.NewMailtoSender(log)
		log.Warn("SendGrid API key is not set, confirmation emails are logged as mailto links")
	}

	var completer chatService.Completer
	model, err := geminiClient.NewClient(appCtx, geminiClient.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: time.Duration(cfg.Gemini.Timeout) * time.Second,
	}, log)
	switch {
	case err == nil:
		completer = model
		defer model.Close()
		log.Info("Chat assistant uses model %s", cfg.Gemini.Model)
	case errors.Is(err, geminiClient.ErrNotConfigured):
		log.Warn("Gemini API key is not set, chat assistant works in offline mode")
	default:
		log.Error("Failed to create Gemini client, chat assistant works in offline mode: %v", err)
	}

	geocoder := nominatimClient.NewClient(nominatimClient.Config{
		BaseURL:           cfg.Geocoder.BaseURL,
		UserAgent:         cfg.Geocoder.UserAgent,
		RequestsPerSecond: cfg.Geocoder.RequestsPerSecond,
		Timeout:           time.Duration(cfg.Geocoder.Timeout) * time.Second,
		CountryCodes:      cfg.Geocoder.CountryCodes,
		ViewBox:           cfg.Geocoder.ViewBox,
		State:             cfg.Geocoder.DefaultState,
		Limit:             cfg.Geocoder.Limit,
	}, log)
	log.Info("Integration clients initialized (Nominatim=%s)", cfg.Geocoder.BaseURL)

	// Каталог, расчет стоимости и расписание
	menu := catalog.Default()
	priceEngine := pricing.New(menu)
	schedule, err := availability.New(cfg.Booking.TimeSlots, cfg.Booking.WindowDays)
	if err != nil {
		log.Fatal("Invalid booking schedule: %v", err)
	}
	businessLocation := cfg.Booking.Location()
	log.Info("Booking calendar uses time zone %s", businessLocation)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		mailer,
		metricsCollector,
		submitBookingUC.Business{
			Name:                cfg.Booking.BusinessName,
			Email:               cfg.Booking.BusinessEmail,
			Phone:               cfg.Booking.BusinessPhone,
			ConfirmationSubject: cfg.Booking.ConfirmationSubject,
		},
		cfg.Metrics.ServiceName,
		log,
	)
	sendInquiryUseCase := sendInquiryUC.NewUseCase(
		mailer,
		sendInquiryUC.Business{
			Name:      cfg.Booking.BusinessName,
			Email:     cfg.Booking.BusinessEmail,
			OwnerName: cfg.Booking.OwnerName,
		},
		cfg.Booking.MinPhoneDigits,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(schedule, businessLocation, log)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(
		draftRepository,
		inboxRepository,
		draft.Deps{
			Catalog:      menu,
			Pricing:      priceEngine,
			Availability: schedule,
			Gateway:      submitBookingUseCase,
			Clock:        &draft.RealTimeProvider{Location: businessLocation},
			Policy: draft.ContactPolicy{
				MinPhoneDigits: cfg.Booking.MinPhoneDigits,
				MaxFieldLength: domain.MaxContactFieldLength,
			},
			Logger:        log,
			SubmitTimeout: cfg.Booking.SubmitTimeoutDuration(),
		},
		cfg.Booking.IdleDraftTTL(),
		log,
	)
	go sessionSvc.RunJanitor(appCtx, janitorInterval)

	chatSvc := chatService.NewService(
		completer,
		chatRepository,
		menu,
		metricsCollector,
		chatService.Business{
			Name:      cfg.Booking.BusinessName,
			OwnerName: cfg.Booking.OwnerName,
			Phone:     cfg.Booking.BusinessPhone,
		},
		cfg.Metrics.ServiceName,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(menu, log)
	getTestimonials := getTestimonialsHandler.NewHandler(menu, log)
	sendInquiry := sendInquiryHandler.NewHandler(sendInquiryUseCase, log)
	getQuote := getQuoteHandler.NewHandler(priceEngine, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	startDraft := startDraftHandler.NewHandler(sessionSvc, log)
	getDraft := getDraftHandler.NewHandler(sessionSvc, log)
	updateDraft := updateDraftHandler.NewHandler(sessionSvc, log)
	submitDraft := submitDraftHandler.NewHandler(sessionSvc, log)
	discardDraft := discardDraftHandler.NewHandler(sessionSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(sessionSvc, log)
	sendChatMessage := sendChatMessageHandler.NewHandler(chatSvc, log)
	getChatHistory := getChatHistoryHandler.NewHandler(chatSvc, log)
	geocodeAddress := geocodeAddressHandler.NewHandler(geocoder, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, каждый запрос привязан к сессии X-Session-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session)

	// --- Каталог и цены ---
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getServices.HandleByID).Methods(http.MethodGet)
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/testimonials", getTestimonials.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Черновик бронирования ---
	api.HandleFunc("/drafts", startDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}", discardDraft.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/drafts/{draftId}/vehicle", updateDraft.HandleVehicle).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/service", updateDraft.HandleService).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/add-ons/{addOnId}/toggle", updateDraft.HandleToggleAddOn).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/slot", updateDraft.HandleSlot).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/contact", updateDraft.HandleContact).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/back", updateDraft.HandleBack).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)

	// --- Чат-ассистент ---
	api.HandleFunc("/chat", sendChatMessage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/chat", getChatHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/chat", getChatHistory.HandleReset).Methods(http.MethodDelete)

	// --- Обратная связь ---
	api.HandleFunc("/contact", sendInquiry.Handle).Methods(http.MethodPost)

	// --- Адреса ---
	api.HandleFunc("/geocode/search", geocodeAddress.Handle).Methods(http.MethodGet)
	api.HandleFunc("/geocode/reverse", geocodeAddress.HandleReverse).Methods(http.MethodGet)

	// --- Подтвержденные бронирования ---
	api.HandleFunc("/bookings/{confirmationCode}", getBooking.Handle).Methods(http.MethodGet)

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

	// Останавливаем janitor черновиков
	stopApp()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
