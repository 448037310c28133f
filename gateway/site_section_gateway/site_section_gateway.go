package site_section_gateway

import (
	"context"

	"folio/driver/folio_db"
)

// SiteSectionGateway adapts the database repository to the section store
// port. It carries no policy; fallback decisions live in the usecases.
type SiteSectionGateway struct {
	repository *folio_db.Repository
}

func NewSiteSectionGateway(repository *folio_db.Repository) *SiteSectionGateway {
	return &SiteSectionGateway{repository: repository}
}

func (g *SiteSectionGateway) Configured() bool {
	return g.repository.Configured()
}

func (g *SiteSectionGateway) GetSection(ctx context.Context, key string) (string, bool, error) {
	return g.repository.GetSiteSetting(ctx, key)
}

func (g *SiteSectionGateway) UpsertSection(ctx context.Context, key string, value string) error {
	return g.repository.UpsertSiteSetting(ctx, key, value)
}

func (g *SiteSectionGateway) DeleteSection(ctx context.Context, key string) error {
	return g.repository.DeleteSiteSetting(ctx, key)
}
