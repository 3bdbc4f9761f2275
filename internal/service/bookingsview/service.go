package bookingsview

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// Service список бронирований.
// Каждый запрос получает порядковый номер; ответ применяется, только если
// более новый ответ ещё не был применён.
type Service struct {
	client APIClient
	logger Logger
	now    func() time.Time

	mu        sync.Mutex
	owner     string // пользователь, чьи строки отображаются
	issued    uint64 // номер последнего отправленного запроса
	applied   uint64 // номер запроса, чьи строки отображаются
	inFlight  int
	bookings  []domain.Booking
	total     int
	page      int
	limit     int
	filter    domain.BookingsFilter
	lastError string
	updatedAt *time.Time
}

// NewService создает новый экземпляр списка бронирований
func NewService(client APIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
		now:    time.Now,
		page:   domain.DefaultPage,
		limit:  domain.DefaultBookingsLimit,
	}
}

// Refresh загружает страницу по фильтру.
// Сотрудник всегда видит только свой филиал, администратор может фильтровать.
// Ошибка загрузки оставляет прежние строки на месте, но только строки того же пользователя.
func (s *Service) Refresh(ctx context.Context, sess *domain.Session, filter domain.BookingsFilter) (Snapshot, error) {
	if sess == nil {
		return s.Snapshot(), ErrNoSession
	}

	s.claim(sess.UserID)

	filter, err := scopeFilter(sess, filter)
	if err != nil {
		s.logger.Warn("Refresh: invalid filter for user=%s: %v", sess.UserID, err)
		return s.snapshotFor(sess.UserID), err
	}

	seq, page, err := s.fetch(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.applied || s.owner != sess.UserID {
		s.logger.Info("Refresh: discarding stale response seq=%d, applied=%d", seq, s.applied)
		return s.snapshotForLocked(sess.UserID), ErrStaleResponse
	}

	if err != nil {
		msg := err.Error()
		if msg != s.lastError {
			s.logger.Error("Refresh: failed to list bookings for user=%s: %v", sess.UserID, err)
		}
		s.lastError = msg
		return s.snapshotLocked(), fmt.Errorf("%w: %w", ErrInternal, err)
	}

	now := s.now()
	s.applied = seq
	s.bookings = page.Bookings
	s.total = page.Total
	s.page = page.Page
	s.limit = page.Limit
	s.filter = filter
	s.lastError = ""
	s.updatedAt = &now

	s.logger.Info("Refresh: loaded %d of %d bookings, page=%d", len(page.Bookings), page.Total, page.Page)
	return s.snapshotLocked(), nil
}

// claim закрепляет список за пользователем; при смене пользователя чужие строки сбрасываются
func (s *Service) claim(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner == userID {
		return
	}
	if s.owner != "" {
		s.logger.Info("Refresh: user changed from %s to %s, clearing bookings", s.owner, userID)
	}
	s.resetLocked()
	s.owner = userID
}

// fetch выполняет запрос под очередным номером; счётчик запросов в работе снимается в любом случае
func (s *Service) fetch(ctx context.Context, filter domain.BookingsFilter) (uint64, *domain.BookingsPage, error) {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.inFlight++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	page, err := s.client.ListBookings(ctx, filter)
	return seq, page, err
}

// Prepend добавляет подтверждённое бронирование в начало списка.
// Бронирование другого филиала при фильтре по филиалу не добавляется.
func (s *Service) Prepend(booking domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filter.BranchID != nil && *s.filter.BranchID != booking.BranchID {
		return
	}

	rows := make([]domain.Booking, 0, len(s.bookings)+1)
	rows = append(rows, booking)
	rows = append(rows, s.bookings...)
	if s.limit > 0 && len(rows) > s.limit {
		rows = rows[:s.limit]
	}

	s.bookings = rows
	s.total++
}

// Snapshot возвращает копию текущего состояния
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Reset очищает список, например после выхода оператора.
// Незавершённые запросы становятся устаревшими.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.owner = ""
}

func (s *Service) resetLocked() {
	s.applied = s.issued
	s.bookings = nil
	s.total = 0
	s.page = domain.DefaultPage
	s.limit = domain.DefaultBookingsLimit
	s.filter = domain.BookingsFilter{}
	s.lastError = ""
	s.updatedAt = nil
}

func (s *Service) snapshotFor(userID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotForLocked(userID)
}

// snapshotForLocked не отдаёт строки, принадлежащие другому пользователю
func (s *Service) snapshotForLocked(userID string) Snapshot {
	if s.owner != userID {
		return Snapshot{Page: domain.DefaultPage, Limit: domain.DefaultBookingsLimit, Bookings: []domain.Booking{}}
	}
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() Snapshot {
	rows := make([]domain.Booking, len(s.bookings))
	copy(rows, s.bookings)

	return Snapshot{
		Bookings:  rows,
		Total:     s.total,
		Page:      s.page,
		Limit:     s.limit,
		Filter:    s.filter,
		Loading:   s.inFlight > 0,
		Error:     s.lastError,
		UpdatedAt: s.updatedAt,
	}
}

func scopeFilter(sess *domain.Session, filter domain.BookingsFilter) (domain.BookingsFilter, error) {
	if !sess.IsAdmin() {
		branchID, ok := sess.AssignedBranch()
		if !ok {
			return filter, ErrBranchNotAssigned
		}
		filter.BranchID = &branchID
	} else if filter.BranchID != nil && *filter.BranchID == "" {
		filter.BranchID = nil
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return filter, ErrInvalidTimeRange
	}

	if filter.Page < 1 {
		filter.Page = domain.DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = domain.DefaultBookingsLimit
	}
	if filter.Limit > domain.MaxBookingsLimit {
		filter.Limit = domain.MaxBookingsLimit
	}

	return filter, nil
}
