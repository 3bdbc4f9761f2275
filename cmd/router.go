package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/api/middleware"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
	"github.com/m04kA/SMC-AdminConsole/pkg/metrics"
)

type routeHandler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// routeHandlers обработчики всех маршрутов консоли
type routeHandlers struct {
	loginView     routeHandler
	login         routeHandler
	logout        routeHandler
	getSession    routeHandler
	getTheme      routeHandler
	updateTheme   routeHandler
	getNavigation routeHandler
	getCatalog    routeHandler
	quoteBooking  routeHandler
	createBooking routeHandler
	getBookings   routeHandler
	listProducts  routeHandler
}

// newRouter собирает маршруты; metricsCollector может быть nil
func newRouter(gate middleware.Gate, h routeHandlers, metricsCollector *metrics.Metrics, metricsPath string, log *logger.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(metricsPath, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", metricsPath)
	}

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	r.HandleFunc(domain.PathLogin, h.loginView.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", h.login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.logout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", h.getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/preferences/theme", h.getTheme.Handle).Methods(http.MethodGet)
	api.HandleFunc("/preferences/theme", h.updateTheme.Handle).Methods(http.MethodPut)

	// ============================================================
	// PROTECTED ROUTES (любая роль)
	// ============================================================

	dashboard := r.PathPrefix(domain.PathDashboard).Subrouter()
	dashboard.Use(middleware.RequireSession(gate, nil, log))
	dashboard.HandleFunc("", h.getNavigation.Handle).Methods(http.MethodGet)
	dashboard.HandleFunc("/navigation", h.getNavigation.Handle).Methods(http.MethodGet)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireSession(gate, nil, log))
	protected.HandleFunc("/catalog", h.getCatalog.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/quote", h.quoteBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", h.createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", h.getBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	adminRole := domain.RoleAdmin
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireSession(gate, &adminRole, log))
	admin.HandleFunc("/products", h.listProducts.Handle).Methods(http.MethodGet)

	return r
}
