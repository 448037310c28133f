package content_gateway

import (
	"context"

	"folio/config"
	"folio/domain"
)

// StaticContentGateway serves the three searchable collections from the
// compiled-in catalog. The search layer only sees the port, so a
// database-backed source can replace this without touching the scorer.
type StaticContentGateway struct {
	catalog config.ContentCatalog
}

func NewStaticContentGateway(catalog config.ContentCatalog) *StaticContentGateway {
	return &StaticContentGateway{catalog: catalog}
}

func (g *StaticContentGateway) ResearchItems(ctx context.Context) ([]domain.SearchableItem, error) {
	return g.catalog.Research, nil
}

func (g *StaticContentGateway) ProjectItems(ctx context.Context) ([]domain.SearchableItem, error) {
	return g.catalog.Projects, nil
}

func (g *StaticContentGateway) BlogItems(ctx context.Context) ([]domain.SearchableItem, error) {
	return g.catalog.Blog, nil
}
