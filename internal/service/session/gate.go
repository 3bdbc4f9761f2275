package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backendapi"
)

// Gate единственная на процесс сессия оператора.
// Переходы: Unknown -> (Restore) -> Anonymous | Authenticated,
// Anonymous -> (Login) -> Authenticated, Authenticated -> (Logout | Invalidate) -> Anonymous.
type Gate struct {
	client  APIClient
	metrics Metrics
	logger  Logger
	policy  DenyPolicy

	// opMu сериализует Restore/Login/Logout; mu защищает состояние и не держится во время сетевых вызовов
	opMu sync.Mutex
	mu   sync.RWMutex

	state     State
	session   *domain.Session
	expiresAt *time.Time
	lastError string
	onChange  func()
}

// NewGate создает шлюз в состоянии Unknown
func NewGate(client APIClient, policy DenyPolicy, logger Logger) *Gate {
	if policy != DenyToHome {
		policy = DenyToLogin
	}
	return &Gate{
		client: client,
		policy: policy,
		logger: logger,
		state:  StateUnknown,
	}
}

// WithMetrics включает метрики переходов
func (g *Gate) WithMetrics(m Metrics) *Gate {
	g.metrics = m
	return g
}

// OnSessionChange регистрирует обработчик смены сессии: выход из Authenticated
// или вход другого пользователя. Вызывается без удержания блокировок.
func (g *Gate) OnSessionChange(fn func()) {
	g.mu.Lock()
	g.onChange = fn
	g.mu.Unlock()
}

// Restore тихо восстанавливает сессию по сохранённому токену
func (g *Gate) Restore(ctx context.Context) State {
	g.opMu.Lock()
	defer g.opMu.Unlock()

	if current := g.State(); current != StateUnknown {
		return current
	}

	token, ok := g.client.Token(ctx)
	if !ok {
		g.logger.Info("Restore: no stored credential")
		g.transition(StateAnonymous, nil, nil)
		return StateAnonymous
	}

	s, err := g.fetchSession(ctx)
	if err != nil {
		g.logger.Warn("Restore: stored credential rejected: %v", err)
		g.clearToken(ctx)
		g.transition(StateAnonymous, nil, nil)
		return StateAnonymous
	}

	g.logger.Info("Restore: session restored for user=%s role=%s", s.UserID, s.Role)
	g.transition(StateAuthenticated, s, expiry(token))
	return StateAuthenticated
}

// Login обменивает учётные данные на сессию.
// Сообщение об ошибке сохраняется в LastError и ошибка возвращается вызывающему.
func (g *Gate) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	g.opMu.Lock()
	defer g.opMu.Unlock()

	g.setLastError("")

	if _, err := g.client.Login(ctx, email, password); err != nil {
		g.logger.Warn("Login: credential exchange failed for email=%s: %v", email, err)
		return nil, g.failLogin(err)
	}

	s, err := g.fetchSession(ctx)
	if err != nil {
		g.logger.Error("Login: failed to load profile for email=%s: %v", email, err)
		g.clearToken(ctx)
		return nil, g.failLogin(err)
	}

	token, _ := g.client.Token(ctx)
	g.transition(StateAuthenticated, s, expiry(token))
	g.logger.Info("Login: user=%s role=%s authenticated", s.UserID, s.Role)

	return copySession(s), nil
}

// Logout синхронно сбрасывает сессию и сохранённый токен
func (g *Gate) Logout(ctx context.Context) {
	g.opMu.Lock()
	defer g.opMu.Unlock()

	g.clearToken(ctx)
	g.setLastError("")
	g.transition(StateAnonymous, nil, nil)
	g.logger.Info("Logout: session cleared")
}

// Invalidate вызывается клиентом API, когда сервер отверг токен
func (g *Gate) Invalidate() {
	g.mu.Lock()
	wasAuthenticated := g.state == StateAuthenticated
	g.mu.Unlock()

	if !wasAuthenticated {
		return
	}

	g.logger.Warn("Invalidate: credential rejected by API, session dropped")
	g.transition(StateAnonymous, nil, nil)
}

// Current возвращает копию сессии и состояние; сессия nil вне Authenticated
func (g *Gate) Current() (*domain.Session, State) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return copySession(g.session), g.state
}

// State текущее состояние шлюза
func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// LastError сообщение последней неудачной попытки входа
func (g *Gate) LastError() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lastError
}

// View снимок для отображения
func (g *Gate) View() View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := View{
		State:     g.state,
		Session:   copySession(g.session),
		LastError: g.lastError,
	}
	if g.expiresAt != nil {
		exp := *g.expiresAt
		v.ExpiresAt = &exp
	}
	return v
}

// Authorize решает, можно ли показать представление, требующее роль (nil - любая роль)
func (g *Gate) Authorize(required *domain.Role) Access {
	s, state := g.Current()

	switch state {
	case StateUnknown:
		return Access{Decision: DecisionPending}
	case StateAnonymous:
		return Access{Decision: DecisionDeny, RedirectTo: domain.PathLogin}
	}

	if !s.HasRole(required) {
		redirect := domain.PathLogin
		if g.policy == DenyToHome {
			redirect = domain.PathDashboard
		}
		return Access{Decision: DecisionDeny, RedirectTo: redirect, Session: s}
	}

	return Access{Decision: DecisionAllow, Session: s}
}

func (g *Gate) fetchSession(ctx context.Context) (*domain.Session, error) {
	profile, err := g.client.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	s, err := domain.NewSession(*profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	if _, ok := s.AssignedBranch(); s.Role == domain.RoleEmployee && !ok {
		g.logger.Warn("employee user=%s has no branch assigned", s.UserID)
	}

	return s, nil
}

func (g *Gate) failLogin(err error) error {
	g.setLastError(err.Error())

	g.mu.RLock()
	state := g.state
	g.mu.RUnlock()

	if state == StateUnknown {
		g.transition(StateAnonymous, nil, nil)
	}
	return err
}

func (g *Gate) clearToken(ctx context.Context) {
	if err := g.client.ClearToken(ctx); err != nil {
		g.logger.Error("failed to clear stored credential: %v", err)
	}
}

func (g *Gate) setLastError(msg string) {
	g.mu.Lock()
	g.lastError = msg
	g.mu.Unlock()
}

func (g *Gate) transition(to State, s *domain.Session, expiresAt *time.Time) {
	g.mu.Lock()
	from := g.state
	prev := g.session
	g.state = to
	g.session = s
	g.expiresAt = expiresAt
	hook := g.onChange
	g.mu.Unlock()

	if g.metrics != nil && from != to {
		g.metrics.IncSessionTransition(from.String(), to.String())
	}

	if hook != nil && from == StateAuthenticated && (to != StateAuthenticated || !sameUser(prev, s)) {
		hook()
	}
}

func sameUser(a, b *domain.Session) bool {
	return a != nil && b != nil && a.UserID == b.UserID
}

func expiry(token string) *time.Time {
	if token == "" {
		return nil
	}
	exp, ok := backendapi.TokenExpiry(token)
	if !ok {
		return nil
	}
	return &exp
}

func copySession(s *domain.Session) *domain.Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.BranchID != nil {
		branchID := *s.BranchID
		c.BranchID = &branchID
	}
	return &c
}
