package site_section_usecase

import (
	"context"
	"fmt"
	"log/slog"

	"folio/domain"
	"folio/port/site_section_port"
	apperrors "folio/utils/errors"
)

// GetSectionUsecase resolves section payloads for public and admin reads.
// The fallback content is immutable, code-level data injected at startup.
type GetSectionUsecase struct {
	sections site_section_port.SiteSectionPort
	fallback domain.FallbackContent
	logger   *slog.Logger
}

func NewGetSectionUsecase(sections site_section_port.SiteSectionPort, fallback domain.FallbackContent) *GetSectionUsecase {
	return &GetSectionUsecase{
		sections: sections,
		fallback: fallback,
		logger:   slog.Default(),
	}
}

func (u *GetSectionUsecase) Hero(ctx context.Context) Resolved[domain.Hero] {
	return resolveSection(ctx, u.sections, domain.SectionHero, func() domain.Hero { return u.fallback.Hero })
}

func (u *GetSectionUsecase) Education(ctx context.Context) Resolved[[]domain.EducationEntry] {
	return resolveSection(ctx, u.sections, domain.SectionEducation, func() []domain.EducationEntry { return u.fallback.Education })
}

func (u *GetSectionUsecase) Certifications(ctx context.Context) Resolved[[]domain.Certification] {
	return resolveSection(ctx, u.sections, domain.SectionCertifications, func() []domain.Certification { return u.fallback.Certifications })
}

func (u *GetSectionUsecase) SocialLinks(ctx context.Context) Resolved[[]domain.SocialLink] {
	return resolveSection(ctx, u.sections, domain.SectionSocialLinks, func() []domain.SocialLink { return u.fallback.SocialLinks })
}

func (u *GetSectionUsecase) Recommendations(ctx context.Context) Resolved[[]domain.Recommendation] {
	return resolveSection(ctx, u.sections, domain.SectionRecommendations, func() []domain.Recommendation { return u.fallback.Recommendations })
}

func (u *GetSectionUsecase) TechStack(ctx context.Context) Resolved[[]domain.TechStackGroup] {
	return resolveSection(ctx, u.sections, domain.SectionTechStack, func() []domain.TechStackGroup { return u.fallback.TechStack })
}

func (u *GetSectionUsecase) Volunteering(ctx context.Context) Resolved[[]domain.VolunteeringEntry] {
	return resolveSection(ctx, u.sections, domain.SectionVolunteering, func() []domain.VolunteeringEntry { return u.fallback.Volunteering })
}

func (u *GetSectionUsecase) WorkExperience(ctx context.Context) Resolved[[]domain.WorkExperienceEntry] {
	return resolveSection(ctx, u.sections, domain.SectionWorkExperience, func() []domain.WorkExperienceEntry { return u.fallback.WorkExperience })
}

func (u *GetSectionUsecase) Stats(ctx context.Context) Resolved[domain.SiteStats] {
	return resolveSection(ctx, u.sections, domain.SectionStats, func() domain.SiteStats { return u.fallback.Stats })
}

func (u *GetSectionUsecase) MetaTags(ctx context.Context) Resolved[domain.MetaTags] {
	return resolveSection(ctx, u.sections, domain.SectionMetaTags, func() domain.MetaTags { return u.fallback.MetaTags })
}

func (u *GetSectionUsecase) PersonalNote(ctx context.Context) Resolved[domain.PersonalNote] {
	return resolveSection(ctx, u.sections, domain.SectionPersonalNote, func() domain.PersonalNote { return u.fallback.PersonalNote })
}

func (u *GetSectionUsecase) SecurityApproach(ctx context.Context) Resolved[domain.SecurityApproach] {
	return resolveSection(ctx, u.sections, domain.SectionSecurityApproach, func() domain.SecurityApproach { return u.fallback.SecurityApproach })
}

// Resolve dispatches a section read by key. Handlers use it so the HTTP
// layer stays free of per-section branching.
func (u *GetSectionUsecase) Resolve(ctx context.Context, key domain.SectionKey) (any, domain.Source, error) {
	switch key {
	case domain.SectionHero:
		r := u.Hero(ctx)
		return r.Value, r.Source, nil
	case domain.SectionEducation:
		r := u.Education(ctx)
		return r.Value, r.Source, nil
	case domain.SectionCertifications:
		r := u.Certifications(ctx)
		return r.Value, r.Source, nil
	case domain.SectionSocialLinks:
		r := u.SocialLinks(ctx)
		return r.Value, r.Source, nil
	case domain.SectionRecommendations:
		r := u.Recommendations(ctx)
		return r.Value, r.Source, nil
	case domain.SectionTechStack:
		r := u.TechStack(ctx)
		return r.Value, r.Source, nil
	case domain.SectionVolunteering:
		r := u.Volunteering(ctx)
		return r.Value, r.Source, nil
	case domain.SectionWorkExperience:
		r := u.WorkExperience(ctx)
		return r.Value, r.Source, nil
	case domain.SectionStats:
		r := u.Stats(ctx)
		return r.Value, r.Source, nil
	case domain.SectionMetaTags:
		r := u.MetaTags(ctx)
		return r.Value, r.Source, nil
	case domain.SectionPersonalNote:
		r := u.PersonalNote(ctx)
		return r.Value, r.Source, nil
	case domain.SectionSecurityApproach:
		r := u.SecurityApproach(ctx)
		return r.Value, r.Source, nil
	default:
		return nil, "", apperrors.ValidationError(
			fmt.Sprintf("unknown section %q", key),
			map[string]interface{}{"section": string(key)},
		)
	}
}

// Setting reads one arbitrary key/value setting. Settings are admin-only
// and have no static fallback, so a missing store or row is an error here
// rather than a degradation.
func (u *GetSectionUsecase) Setting(ctx context.Context, key string) (domain.Setting, error) {
	if u.sections == nil || !u.sections.Configured() {
		return domain.Setting{}, fmt.Errorf("setting %q: %w", key, apperrors.ErrStoreUnavailable)
	}

	raw, found, err := u.sections.GetSection(ctx, settingStorageKey(key))
	if err != nil {
		return domain.Setting{}, err
	}
	if !found {
		return domain.Setting{}, fmt.Errorf("setting %q: %w", key, apperrors.ErrRecordNotFound)
	}

	return domain.Setting{Key: key, Value: raw}, nil
}

// settingStorageKey namespaces free-form settings away from the typed
// section rows that share the same table.
func settingStorageKey(key string) string {
	return "setting:" + key
}
