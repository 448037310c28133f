package di

import (
	"folio/config"
	"folio/driver/folio_db"
	"folio/gateway/analytics_gateway"
	"folio/gateway/auth_gateway"
	"folio/gateway/content_gateway"
	"folio/gateway/hobby_gateway"
	"folio/gateway/site_section_gateway"
	"folio/gateway/subscriber_gateway"
	"folio/usecase/analytics_usecase"
	"folio/usecase/hobby_usecase"
	"folio/usecase/newsletter_usecase"
	"folio/usecase/search_content_usecase"
	"folio/usecase/site_section_usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationComponents holds every wired usecase plus the shared config.
// Construction is purely mechanical; all policy lives in the layers below.
type ApplicationComponents struct {
	Config *config.Config

	AuthGateway *auth_gateway.AuthGateway

	SearchContentUsecase *search_content_usecase.SearchContentUsecase
	GetSectionUsecase    *site_section_usecase.GetSectionUsecase
	UpdateSectionUsecase *site_section_usecase.UpdateSectionUsecase
	HobbyUsecase         *hobby_usecase.HobbyUsecase
	NewsletterUsecase    *newsletter_usecase.NewsletterUsecase
	AnalyticsUsecase     *analytics_usecase.AnalyticsUsecase
}

// NewApplicationComponents wires repository, gateways and usecases. A nil
// pool is allowed: the section and hobby reads then resolve from static
// config while writes report the store as unavailable.
func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	repository := folio_db.NewRepository(pool)

	sections := site_section_gateway.NewSiteSectionGateway(repository)
	hobbies := hobby_gateway.NewHobbyGateway(repository)
	subscribers := subscriber_gateway.NewSubscriberGateway(repository)
	analytics := analytics_gateway.NewAnalyticsGateway(repository)
	contentSource := content_gateway.NewStaticContentGateway(config.DefaultCatalog())

	fallback := config.DefaultContent()

	return &ApplicationComponents{
		Config: cfg,

		AuthGateway: auth_gateway.NewAuthGateway(cfg),

		SearchContentUsecase: search_content_usecase.NewSearchContentUsecase(contentSource, cfg.Search.DefaultLimit),
		GetSectionUsecase:    site_section_usecase.NewGetSectionUsecase(sections, fallback),
		UpdateSectionUsecase: site_section_usecase.NewUpdateSectionUsecase(sections),
		HobbyUsecase:         hobby_usecase.NewHobbyUsecase(hobbies, fallback.Hobbies),
		NewsletterUsecase:    newsletter_usecase.NewNewsletterUsecase(subscribers),
		AnalyticsUsecase:     analytics_usecase.NewAnalyticsUsecase(analytics),
	}
}
