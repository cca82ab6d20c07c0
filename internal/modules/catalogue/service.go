package catalogue

import (
	"context"
	"log/slog"

	"github.com/georgemunganga/catalogue-service/internal/modules/inventory"
)

// Service defines catalogue business logic. Every operation takes the
// correlation id resolved at the request boundary and threads it through to
// outbound calls and log lines.
type Service interface {
	Create(ctx context.Context, req CreateProductRequest, correlationID string) (*CatalogueEntry, error)
	Get(ctx context.Context, id int64, correlationID string) (*CatalogueEntry, error)
	List(ctx context.Context, correlationID string) ([]*CatalogueEntry, error)
}

type service struct {
	log       *slog.Logger
	repo      Repository
	inventory inventory.Client
}

// NewService creates the catalogue service.
func NewService(log *slog.Logger, repo Repository, inv inventory.Client) Service {
	return &service{log: log, repo: repo, inventory: inv}
}

// Create validates and stores a new product. The inventory provider is never
// consulted: a freshly created product has no remote inventory record yet.
func (s *service) Create(ctx context.Context, req CreateProductRequest, correlationID string) (*CatalogueEntry, error) {
	if errs := req.Validate(); errs != nil {
		return nil, errs
	}
	p := &Product{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("product created",
		"product_id", p.ID, "correlation_id", correlationID)
	return &CatalogueEntry{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		DataStatus:  StatusLocalOnly,
	}, nil
}

// Get returns the product enriched with live inventory data. Inventory
// failure degrades the entry's dataStatus instead of failing the operation.
func (s *service) Get(ctx context.Context, id int64, correlationID string) (*CatalogueEntry, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(p, correlationID, StatusUnavailable), nil
}

// List returns every product, each enriched sequentially with the same
// correlation id.
func (s *service) List(ctx context.Context, correlationID string) ([]*CatalogueEntry, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]*CatalogueEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, s.enrich(p, correlationID, StatusUnavailableList))
	}
	return entries, nil
}

func (s *service) enrich(p *Product, correlationID, fallbackStatus string) *CatalogueEntry {
	entry := &CatalogueEntry{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
	snap, ok := s.inventory.Fetch(p.ID, correlationID)
	if !ok {
		entry.DataStatus = fallbackStatus
		return entry
	}
	entry.Price = &snap.Price
	entry.Stock = &snap.Stock
	entry.DataStatus = StatusLive
	return entry
}
