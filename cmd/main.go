package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/complete_appointment"
	createBarberHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/create_barber"
	createChatHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/create_chat"
	createClientHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/create_client"
	createServiceHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/create_service"
	createTransactionHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/create_transaction"
	getAppointmentHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_appointment"
	getBarbersHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_barbers"
	getBarbershopAppointmentsHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_barbershop_appointments"
	getBarbershopChatsHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_barbershop_chats"
	getChatMessagesHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_chat_messages"
	getClientChatsHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_client_chats"
	getClientsHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_clients"
	getDashboardHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_dashboard"
	getFinancialStatsHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_financial_stats"
	getServicesHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_services"
	getTransactionsHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/get_transactions"
	markChatReadHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/mark_chat_read"
	sendMessageHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/send_message"
	updateBarberHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/update_barber"
	updateClientHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/update_client"
	updateServiceHandler "github.com/brunocamarg0/trim-squire/internal/api/handlers/update_service"
	"github.com/brunocamarg0/trim-squire/internal/api/middleware"
	"github.com/brunocamarg0/trim-squire/internal/config"
	appointmentRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/appointment"
	catalogRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/catalog"
	chatRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/chat"
	clientRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/client"
	conversationStore "github.com/brunocamarg0/trim-squire/internal/infra/storage/conversation"
	"github.com/brunocamarg0/trim-squire/internal/infra/storage/migrations"
	transactionRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/transaction"
	appointmentsService "github.com/brunocamarg0/trim-squire/internal/service/appointments"
	catalogService "github.com/brunocamarg0/trim-squire/internal/service/catalog"
	chatsService "github.com/brunocamarg0/trim-squire/internal/service/chats"
	clientsService "github.com/brunocamarg0/trim-squire/internal/service/clients"
	dashboardService "github.com/brunocamarg0/trim-squire/internal/service/dashboard"
	financeService "github.com/brunocamarg0/trim-squire/internal/service/finance"
	processMessageUC "github.com/brunocamarg0/trim-squire/internal/usecase/process_message"
	receiveMessageUC "github.com/brunocamarg0/trim-squire/internal/usecase/receive_message"
	"github.com/brunocamarg0/trim-squire/pkg/dbmetrics"
	"github.com/brunocamarg0/trim-squire/pkg/logger"
	"github.com/brunocamarg0/trim-squire/pkg/metrics"
	"github.com/brunocamarg0/trim-squire/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting trim-squire...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := cfg.Chatbot.Location()
	if err != nil {
		log.Fatal("Invalid chatbot timezone: %v", err)
	}

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

	// Применяем миграции при старте
	if cfg.Database.AutoMigrate {
		migrator, err := migrations.New(db, log)
		if err != nil {
			log.Fatal("Failed to create migrator: %v", err)
		}
		if err := migrator.Up(); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		_ = migrator.Close()
	}

	// Обёртка БД (с метриками или без)
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	chatRepository := chatRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	transactionRepository := transactionRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Контексты диалогов живут только в памяти процесса
	conversations := conversationStore.NewMemoryStore(cfg.Chatbot.ConversationTTL.Duration)
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()

	go conversations.Run(janitorCtx, cfg.Chatbot.JanitorInterval.Duration, func(purged, remaining int) {
		metricsCollector.SetActiveConversations(remaining)
		if purged > 0 {
			log.Info("Conversation janitor: purged=%d, remaining=%d", purged, remaining)
		}
	})
	log.Info("Conversation store ready (ttl=%s, janitor=%s, timezone=%s)",
		cfg.Chatbot.ConversationTTL.Duration, cfg.Chatbot.JanitorInterval.Duration, location)

	// Инициализируем сервисы
	chatSvc := chatsService.NewService(chatRepository, txMgr, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	catalogSvc := catalogService.NewService(catalogRepository, txMgr, log)
	clientSvc := clientsService.NewService(clientRepository, txMgr, log)
	financeSvc := financeService.NewService(transactionRepository, log)
	dashboardSvc := dashboardService.NewService(
		appointmentRepository,
		transactionRepository,
		catalogRepository,
		clientRepository,
		location,
		log,
	)

	// Инициализируем use cases
	var chatbotMetrics processMessageUC.Metrics
	if cfg.Metrics.Enabled {
		chatbotMetrics = metricsCollector
	}

	processMessageUseCase := processMessageUC.NewUseCase(
		conversations,
		catalogRepository,
		appointmentRepository,
		chatSvc,
		txMgr,
		location,
		chatbotMetrics,
		log.With("component", "chatbot"),
	)

	receiveMessageUseCase := receiveMessageUC.NewUseCase(
		chatRepository,
		chatSvc,
		processMessageUseCase,
		log,
	)

	// Инициализируем handlers
	createChat := createChatHandler.NewHandler(chatSvc, log)
	sendMessage := sendMessageHandler.NewHandler(receiveMessageUseCase, log)
	getChatMessages := getChatMessagesHandler.NewHandler(chatSvc, log)
	markChatRead := markChatReadHandler.NewHandler(chatSvc, log)
	getBarbershopAppointments := getBarbershopAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	getBarbershopChats := getBarbershopChatsHandler.NewHandler(chatSvc, log)
	getClientChats := getClientChatsHandler.NewHandler(chatSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	getBarbers := getBarbersHandler.NewHandler(catalogSvc, log)
	createBarber := createBarberHandler.NewHandler(catalogSvc, log)
	updateBarber := updateBarberHandler.NewHandler(catalogSvc, log)
	getClients := getClientsHandler.NewHandler(clientSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	updateClient := updateClientHandler.NewHandler(clientSvc, log)
	getTransactions := getTransactionsHandler.NewHandler(financeSvc, log)
	createTransaction := createTransactionHandler.NewHandler(financeSvc, log)
	getFinancialStats := getFinancialStatsHandler.NewHandler(financeSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Чаты ---
	// Получение или создание чата клиента с барбершопом
	protected.HandleFunc("/chats", createChat.Handle).Methods(http.MethodPost)

	// Отправка сообщения (клиентские сообщения обрабатывает ассистент записи)
	protected.HandleFunc("/chats/{chatId}/messages", sendMessage.Handle).Methods(http.MethodPost)

	// История сообщений чата
	protected.HandleFunc("/chats/{chatId}/messages", getChatMessages.Handle).Methods(http.MethodGet)

	// Отметка сообщений как прочитанных
	protected.HandleFunc("/chats/{chatId}/read", markChatRead.Handle).Methods(http.MethodPatch)

	// Активные чаты барбершопа и клиента
	protected.HandleFunc("/barbershops/{barbershopId}/chats", getBarbershopChats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/chats", getClientChats.Handle).Methods(http.MethodGet)

	// --- Каталог барбершопа ---
	protected.HandleFunc("/barbershops/{barbershopId}/services", getServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbershops/{barbershopId}/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbershops/{barbershopId}/services/{serviceId}",
		updateService.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/barbershops/{barbershopId}/barbers", getBarbers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbershops/{barbershopId}/barbers", createBarber.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbershops/{barbershopId}/barbers/{barberId}",
		updateBarber.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	protected.HandleFunc("/barbershops/{barbershopId}/clients", getClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbershops/{barbershopId}/clients", createClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbershops/{barbershopId}/clients/{clientId}",
		updateClient.Handle).Methods(http.MethodPatch)

	// --- Касса и сводка ---
	protected.HandleFunc("/barbershops/{barbershopId}/transactions", getTransactions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbershops/{barbershopId}/transactions",
		createTransaction.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbershops/{barbershopId}/financial-stats",
		getFinancialStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbershops/{barbershopId}/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Записи барбершопа ---
	// Список записей с фильтрами
	protected.HandleFunc("/barbershops/{barbershopId}/appointments",
		getBarbershopAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/barbershops/{barbershopId}/appointments/{appointmentId}",
		getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/barbershops/{barbershopId}/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)

	// Завершение записи
	protected.HandleFunc("/barbershops/{barbershopId}/appointments/{appointmentId}/complete",
		completeAppointment.Handle).Methods(http.MethodPatch)

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

	stopJanitor()

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
