package services

import (
	"campus-hub/domain"
	"campus-hub/repositories"
	"context"
	"log/slog"

	"github.com/samber/lo"
)

// AllCategories selects every category when browsing.
const AllCategories = "All"

type IMarketplaceService interface {
	Categories() []string
	Browse(ctx context.Context, search, category string) ([]domain.Product, error)
}

type MarketplaceService struct {
	log     *slog.Logger
	session ISession
	catalog repositories.ICatalogRepository
	index   repositories.IProductIndex
}

func NewMarketplaceService(
	log *slog.Logger,
	session ISession,
	catalog repositories.ICatalogRepository,
	index repositories.IProductIndex,
) *MarketplaceService {
	return &MarketplaceService{log: log, session: session, catalog: catalog, index: index}
}

// Categories is the filter list: All, then every catalog category.
func (s *MarketplaceService) Categories() []string {
	return append([]string{AllCategories}, s.catalog.Categories()...)
}

// Browse lists products whose name or description contains search, in
// catalog order, restricted to category unless it is All or empty.
func (s *MarketplaceService) Browse(ctx context.Context, search, category string) ([]domain.Product, error) {
	if _, err := s.session.Require(); err != nil {
		return nil, err
	}
	if category == AllCategories {
		category = ""
	}
	ids, err := s.index.Search(ctx, search, category)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Marketplace search", "search", search, "category", category, "matches", len(ids))
	return lo.Filter(s.catalog.Products(), func(p domain.Product, _ int) bool {
		return lo.Contains(ids, p.ID)
	}), nil
}
