package content_source_port

import (
	"context"

	"folio/domain"
)

// ContentSourcePort supplies the three searchable content collections in
// their natural, deterministic iteration order.
type ContentSourcePort interface {
	ResearchItems(ctx context.Context) ([]domain.SearchableItem, error)
	ProjectItems(ctx context.Context) ([]domain.SearchableItem, error)
	BlogItems(ctx context.Context) ([]domain.SearchableItem, error)
}
