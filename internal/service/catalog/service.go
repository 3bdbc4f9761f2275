package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// Service сервис справочников продуктов и филиалов
type Service struct {
	client APIClient
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(client APIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Load загружает справочники для черновика бронирования.
// В черновик попадают только активные продукты. Филиалы нужны только администратору:
// сотрудник всегда работает в своём филиале.
func (s *Service) Load(ctx context.Context, sess *domain.Session) (*domain.Catalog, error) {
	if sess == nil {
		return nil, ErrNoSession
	}

	var (
		products []domain.Product
		branches []domain.Branch
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := s.client.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		products = activeOnly(all)
		return nil
	})
	if sess.IsAdmin() {
		g.Go(func() error {
			list, err := s.client.ListBranches(gctx)
			if err != nil {
				return fmt.Errorf("list branches: %w", err)
			}
			branches = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Load: failed to load catalog for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	catalog := &domain.Catalog{
		Products: products,
		Branches: branches,
	}

	if n := catalog.CountDefault(); n != 1 {
		s.logger.Warn("Load: expected exactly one default product, got %d", n)
	}

	return catalog, nil
}

// AllProducts все продукты, включая неактивные (экран продуктов администратора)
func (s *Service) AllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		s.logger.Error("AllProducts: failed to list products: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return products, nil
}

func activeOnly(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}
