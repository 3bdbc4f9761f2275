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

	_ "github.com/lib/pq"

	createBookingHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/create_booking"
	getBookingsHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/get_bookings"
	getCatalogHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/get_catalog"
	getNavigationHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/get_navigation"
	getSessionHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/get_session"
	getThemeHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/get_theme"
	listProductsHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/list_products"
	loginHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/login"
	loginViewHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/login_view"
	logoutHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/logout"
	quoteBookingHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/quote_booking"
	updateThemeHandler "github.com/m04kA/SMC-AdminConsole/internal/api/handlers/update_theme"
	"github.com/m04kA/SMC-AdminConsole/internal/config"
	"github.com/m04kA/SMC-AdminConsole/internal/infra/storage/state"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backendapi"
	bookingsViewService "github.com/m04kA/SMC-AdminConsole/internal/service/bookingsview"
	catalogService "github.com/m04kA/SMC-AdminConsole/internal/service/catalog"
	preferencesService "github.com/m04kA/SMC-AdminConsole/internal/service/preferences"
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
	createBookingUC "github.com/m04kA/SMC-AdminConsole/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
	"github.com/m04kA/SMC-AdminConsole/pkg/metrics"
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

	log.Info("Starting SMC-AdminConsole...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище клиентского состояния (токен, тема)
	store, closeStore, err := openStateStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open state store: %v", err)
	}
	defer closeStore()

	// Клиент внешнего API
	apiClient := backendapi.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		store,
		log,
	)
	if metricsCollector != nil {
		apiClient.WithMetrics(metricsCollector)
	}
	log.Info("Backend client initialized (url=%s timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Единственная сессия оператора; отказ API в токене сбрасывает её
	gate := session.NewGate(apiClient, session.DenyPolicy(cfg.Gate.DenyRedirect), log)
	if metricsCollector != nil {
		gate.WithMetrics(metricsCollector)
	}
	apiClient.OnUnauthorized(gate.Invalidate)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(apiClient, log)
	bookingsView := bookingsViewService.NewService(apiClient, log)
	preferencesSvc := preferencesService.NewService(store, log)

	// Строки бронирований принадлежат сессии: смена пользователя или потеря токена их сбрасывает
	gate.OnSessionChange(bookingsView.Reset)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(apiClient, catalogSvc, gate, bookingsView, log)
	if metricsCollector != nil {
		createBookingUseCase.WithMetrics(metricsCollector)
	}

	// Инициализируем handlers
	login := loginHandler.NewHandler(gate, log)
	logout := logoutHandler.NewHandler(gate, bookingsView, log)
	getSession := getSessionHandler.NewHandler(gate, log)
	loginView := loginViewHandler.NewHandler(gate)
	getNavigation := getNavigationHandler.NewHandler(log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	quoteBooking := quoteBookingHandler.NewHandler(createBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingsView, log)
	listProducts := listProductsHandler.NewHandler(catalogSvc, log)
	getTheme := getThemeHandler.NewHandler(preferencesSvc, log)
	updateTheme := updateThemeHandler.NewHandler(preferencesSvc, log)

	// Настраиваем роутер
	r := newRouter(gate, routeHandlers{
		loginView:     loginView,
		login:         login,
		logout:        logout,
		getSession:    getSession,
		getTheme:      getTheme,
		updateTheme:   updateTheme,
		getNavigation: getNavigation,
		getCatalog:    getCatalog,
		quoteBooking:  quoteBooking,
		createBooking: createBooking,
		getBookings:   getBookings,
		listProducts:  listProducts,
	}, metricsCollector, cfg.Metrics.Path, log)

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

	// Тихое восстановление сессии: до его завершения защищённые маршруты отвечают 503
	restoreCtx, cancelRestore := context.WithCancel(context.Background())
	defer cancelRestore()
	go func() {
		if health, err := apiClient.Health(restoreCtx); err != nil {
			log.Warn("Backend health check failed: %v", err)
		} else {
			log.Info("Backend health: database=%s, environment=%s", health.Database.Status, health.Server.Environment)
		}

		st := gate.Restore(restoreCtx)
		log.Info("Session restore finished: state=%s", st)
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancelRestore()

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

// openStateStore открывает хранилище клиентского состояния по драйверу из конфигурации
func openStateStore(cfg *config.Config, log *logger.Logger) (state.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("Using in-memory state store: session and theme are lost on restart")
		store := state.NewMemoryStore()
		return store, func() { _ = store.Close() }, nil

	case config.StoragePostgres:
		pg := cfg.Storage.Postgres
		db, err := sql.Open("postgres", pg.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(pg.MaxOpenConns)
		db.SetMaxIdleConns(pg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetime) * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}

		store := state.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("State store: postgres (host=%s, port=%d, db=%s)", pg.Host, pg.Port, pg.DBName)
		return store, func() { _ = store.Close() }, nil

	default:
		store, err := state.NewBoltStore(cfg.Storage.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("State store: bolt (%s)", cfg.Storage.BoltPath)
		return store, func() { _ = store.Close() }, nil
	}
}
