package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/session"
	"github.com/m04kA/SMC-AdminConsole/pkg/ptr"
)

// UseCase use case оформления бронирования
type UseCase struct {
	api      BookingAPI
	catalog  CatalogProvider
	sessions SessionProvider
	view     BookingsView
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	api BookingAPI,
	catalog CatalogProvider,
	sessions SessionProvider,
	view BookingsView,
	logger Logger,
) *UseCase {
	return &UseCase{
		api:      api,
		catalog:  catalog,
		sessions: sessions,
		view:     view,
		logger:   logger,
	}
}

// WithMetrics подключает метрики валидации
func (uc *UseCase) WithMetrics(m Metrics) *UseCase {
	uc.metrics = m
	return uc
}

// Execute проверяет черновик и отправляет его в API.
// При любой ошибке валидации запрос в API не выполняется.
func (uc *UseCase) Execute(ctx context.Context, draft domain.BookingDraft) (*Response, error) {
	// 1. Сессия
	s, err := uc.requireSession()
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: user=%s, role=%s, items=%d", s.UserID, s.Role, len(draft.Items))

	// 2. Справочники
	catalog, err := uc.catalog.Load(ctx, s)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	// 3. Локальная валидация
	draft = NormalizeDraft(draft, catalog)
	branchID, err := ValidateForSubmit(draft, s, catalog)
	if err != nil {
		rule := RuleOf(err)
		if uc.metrics != nil {
			uc.metrics.IncValidationFailure(rule)
		}
		uc.logger.Warn("CreateBooking: validation failed, rule=%s: %v", rule, err)
		return nil, err
	}

	// 4. Отправка
	payload := BuildPayload(draft, branchID, catalog)
	booking, err := uc.api.CreateBooking(ctx, payload)
	if err != nil {
		uc.logger.Error("CreateBooking: API rejected booking for branch=%s: %v", branchID, err)
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	// 5. Новое бронирование сразу появляется в списке
	uc.view.Prepend(*booking)

	uc.logger.Info("CreateBooking: successfully created booking id=%s, number=%s", booking.ID, booking.BookingNumber)

	return &Response{
		Booking:      *booking,
		ItemsTotal:   ItemsTotal(draft, catalog),
		PaymentTotal: PaymentTotal(draft),
	}, nil
}

// Quote пересчитывает черновик без отправки
func (uc *UseCase) Quote(ctx context.Context, draft domain.BookingDraft) (*Quote, error) {
	s, err := uc.requireSession()
	if err != nil {
		return nil, err
	}

	catalog, err := uc.catalog.Load(ctx, s)
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	draft = NormalizeDraft(draft, catalog)
	return buildQuote(draft, s, catalog), nil
}

func (uc *UseCase) requireSession() (*domain.Session, error) {
	s, st := uc.sessions.Current()
	if s == nil || st != session.StateAuthenticated {
		return nil, ErrNotAuthenticated
	}
	return s, nil
}

func buildQuote(draft domain.BookingDraft, s *domain.Session, catalog *domain.Catalog) *Quote {
	lines := make([]QuoteLine, 0, len(draft.Items))
	for _, line := range draft.Items {
		q := QuoteLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			LineTotal: LineTotal(line, catalog),
		}
		if product, ok := catalog.FindProduct(line.ProductID); ok {
			q.ProductName = product.Name
			q.IsDefault = product.IsDefault
		}
		if price := ResolveUnitPrice(line, catalog); isFinite(price) {
			q.UnitPrice = ptr.Ptr(price)
		}
		lines = append(lines, q)
	}

	itemsTotal := ItemsTotal(draft, catalog)
	paymentTotal := PaymentTotal(draft)

	quote := &Quote{
		Lines:        lines,
		ItemsTotal:   itemsTotal,
		PaymentTotal: paymentTotal,
		Difference:   paymentTotal - itemsTotal,
		Reconciled:   IsReconciled(paymentTotal, itemsTotal),
	}

	branchID, err := ValidateForSubmit(draft, s, catalog)
	if err != nil {
		quote.Problem = err.Error()
		return quote
	}
	quote.CanSubmit = true
	quote.BranchID = branchID
	return quote
}
