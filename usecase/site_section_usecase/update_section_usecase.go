package site_section_usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"folio/domain"
	"folio/port/site_section_port"
	apperrors "folio/utils/errors"

	"github.com/microcosm-cc/bluemonday"
)

// UpdateSectionUsecase validates, normalizes and persists section
// payloads. Unlike reads, writes never fall back: an unavailable store is
// surfaced so a write cannot silently appear to succeed.
type UpdateSectionUsecase struct {
	sections  site_section_port.SiteSectionPort
	sanitizer *bluemonday.Policy
	now       func() time.Time
	logger    *slog.Logger
}

func NewUpdateSectionUsecase(sections site_section_port.SiteSectionPort) *UpdateSectionUsecase {
	return &UpdateSectionUsecase{
		sections:  sections,
		sanitizer: bluemonday.UGCPolicy(),
		now:       time.Now,
		logger:    slog.Default(),
	}
}

// UpdateFromJSON dispatches a section write by key, binding the body to
// the section's payload type. Handlers pass the raw body through so the
// HTTP layer needs no per-section knowledge.
func (u *UpdateSectionUsecase) UpdateFromJSON(ctx context.Context, key domain.SectionKey, body []byte) (any, error) {
	switch key {
	case domain.SectionHero:
		return bindAndUpdate(ctx, body, u.UpdateHero)
	case domain.SectionEducation:
		return bindAndUpdate(ctx, body, u.UpdateEducation)
	case domain.SectionCertifications:
		return bindAndUpdate(ctx, body, u.UpdateCertifications)
	case domain.SectionSocialLinks:
		return bindAndUpdate(ctx, body, u.UpdateSocialLinks)
	case domain.SectionRecommendations:
		return bindAndUpdate(ctx, body, u.UpdateRecommendations)
	case domain.SectionTechStack:
		return bindAndUpdate(ctx, body, u.UpdateTechStack)
	case domain.SectionVolunteering:
		return bindAndUpdate(ctx, body, u.UpdateVolunteering)
	case domain.SectionWorkExperience:
		return bindAndUpdate(ctx, body, u.UpdateWorkExperience)
	case domain.SectionStats:
		return bindAndUpdate(ctx, body, u.UpdateStats)
	case domain.SectionMetaTags:
		return bindAndUpdate(ctx, body, u.UpdateMetaTags)
	case domain.SectionPersonalNote:
		return bindAndUpdate(ctx, body, u.UpdatePersonalNote)
	case domain.SectionSecurityApproach:
		return bindAndUpdate(ctx, body, u.UpdateSecurityApproach)
	default:
		return nil, apperrors.ValidationError(
			fmt.Sprintf("unknown section %q", key),
			map[string]interface{}{"section": string(key)},
		)
	}
}

func bindAndUpdate[T any](ctx context.Context, body []byte, update func(context.Context, T) (T, error)) (any, error) {
	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.ValidationError("invalid JSON payload", map[string]interface{}{"error": err.Error()})
	}
	return update(ctx, payload)
}

func (u *UpdateSectionUsecase) UpdateHero(ctx context.Context, hero domain.Hero) (domain.Hero, error) {
	required := []struct{ name, value string }{
		{"name", hero.Name},
		{"bio", hero.Bio},
		{"title", hero.Title},
		{"description", hero.Description},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return domain.Hero{}, requiredFieldError(domain.SectionHero, field.name)
		}
	}

	hero.TalksAbout = normalizeList(hero.TalksAbout)
	now := u.now()
	hero.UpdatedAt = &now

	if err := u.persist(ctx, domain.SectionHero, hero); err != nil {
		return domain.Hero{}, err
	}
	return hero, nil
}

func (u *UpdateSectionUsecase) UpdateEducation(ctx context.Context, entries []domain.EducationEntry) ([]domain.EducationEntry, error) {
	return updateListSection(u, ctx, domain.SectionEducation, entries,
		func(i int, e domain.EducationEntry) error {
			if strings.TrimSpace(e.Institution) == "" {
				return requiredEntryFieldError(domain.SectionEducation, i, "institution")
			}
			return nil
		}, nil)
}

func (u *UpdateSectionUsecase) UpdateCertifications(ctx context.Context, entries []domain.Certification) ([]domain.Certification, error) {
	return updateListSection(u, ctx, domain.SectionCertifications, entries,
		func(i int, e domain.Certification) error {
			if strings.TrimSpace(e.Name) == "" {
				return requiredEntryFieldError(domain.SectionCertifications, i, "name")
			}
			return nil
		}, nil)
}

func (u *UpdateSectionUsecase) UpdateSocialLinks(ctx context.Context, entries []domain.SocialLink) ([]domain.SocialLink, error) {
	return updateListSection(u, ctx, domain.SectionSocialLinks, entries,
		func(i int, e domain.SocialLink) error {
			if strings.TrimSpace(e.Platform) == "" {
				return requiredEntryFieldError(domain.SectionSocialLinks, i, "platform")
			}
			if strings.TrimSpace(e.URL) == "" {
				return requiredEntryFieldError(domain.SectionSocialLinks, i, "url")
			}
			return nil
		}, nil)
}

func (u *UpdateSectionUsecase) UpdateRecommendations(ctx context.Context, entries []domain.Recommendation) ([]domain.Recommendation, error) {
	return updateListSection(u, ctx, domain.SectionRecommendations, entries,
		func(i int, e domain.Recommendation) error {
			if strings.TrimSpace(e.Author) == "" {
				return requiredEntryFieldError(domain.SectionRecommendations, i, "author")
			}
			if strings.TrimSpace(e.Text) == "" {
				return requiredEntryFieldError(domain.SectionRecommendations, i, "text")
			}
			return nil
		},
		func(e domain.Recommendation) domain.Recommendation {
			e.Text = u.sanitizer.Sanitize(e.Text)
			return e
		})
}

func (u *UpdateSectionUsecase) UpdateTechStack(ctx context.Context, entries []domain.TechStackGroup) ([]domain.TechStackGroup, error) {
	return updateListSection(u, ctx, domain.SectionTechStack, entries,
		func(i int, e domain.TechStackGroup) error {
			if strings.TrimSpace(e.Category) == "" {
				return requiredEntryFieldError(domain.SectionTechStack, i, "category")
			}
			return nil
		},
		func(e domain.TechStackGroup) domain.TechStackGroup {
			e.Items = normalizeList(e.Items)
			return e
		})
}

func (u *UpdateSectionUsecase) UpdateVolunteering(ctx context.Context, entries []domain.VolunteeringEntry) ([]domain.VolunteeringEntry, error) {
	return updateListSection(u, ctx, domain.SectionVolunteering, entries,
		func(i int, e domain.VolunteeringEntry) error {
			if strings.TrimSpace(e.Organization) == "" {
				return requiredEntryFieldError(domain.SectionVolunteering, i, "organization")
			}
			return nil
		}, nil)
}

func (u *UpdateSectionUsecase) UpdateWorkExperience(ctx context.Context, entries []domain.WorkExperienceEntry) ([]domain.WorkExperienceEntry, error) {
	return updateListSection(u, ctx, domain.SectionWorkExperience, entries,
		func(i int, e domain.WorkExperienceEntry) error {
			if strings.TrimSpace(e.Company) == "" {
				return requiredEntryFieldError(domain.SectionWorkExperience, i, "company")
			}
			if strings.TrimSpace(e.Role) == "" {
				return requiredEntryFieldError(domain.SectionWorkExperience, i, "role")
			}
			return nil
		},
		func(e domain.WorkExperienceEntry) domain.WorkExperienceEntry {
			e.Highlights = normalizeList(e.Highlights)
			return e
		})
}

func (u *UpdateSectionUsecase) UpdateStats(ctx context.Context, stats domain.SiteStats) (domain.SiteStats, error) {
	counters := []struct {
		name  string
		value int
	}{
		{"projects", stats.Projects},
		{"publications", stats.Publications},
		{"citations", stats.Citations},
		{"yearsExperience", stats.YearsExperience},
	}
	for _, counter := range counters {
		if counter.value < 0 {
			return domain.SiteStats{}, apperrors.ValidationError(
				fmt.Sprintf("stats: %s must not be negative", counter.name),
				map[string]interface{}{"field": counter.name, "section": string(domain.SectionStats)},
			)
		}
	}

	if err := u.persist(ctx, domain.SectionStats, stats); err != nil {
		return domain.SiteStats{}, err
	}
	return stats, nil
}

func (u *UpdateSectionUsecase) UpdateMetaTags(ctx context.Context, tags domain.MetaTags) (domain.MetaTags, error) {
	if strings.TrimSpace(tags.Title) == "" {
		return domain.MetaTags{}, requiredFieldError(domain.SectionMetaTags, "title")
	}
	if strings.TrimSpace(tags.Description) == "" {
		return domain.MetaTags{}, requiredFieldError(domain.SectionMetaTags, "description")
	}

	tags.Keywords = normalizeList(tags.Keywords)

	if err := u.persist(ctx, domain.SectionMetaTags, tags); err != nil {
		return domain.MetaTags{}, err
	}
	return tags, nil
}

func (u *UpdateSectionUsecase) UpdatePersonalNote(ctx context.Context, note domain.PersonalNote) (domain.PersonalNote, error) {
	if strings.TrimSpace(note.Text) == "" {
		return domain.PersonalNote{}, requiredFieldError(domain.SectionPersonalNote, "text")
	}

	note.Text = u.sanitizer.Sanitize(note.Text)
	now := u.now()
	note.UpdatedAt = &now

	if err := u.persist(ctx, domain.SectionPersonalNote, note); err != nil {
		return domain.PersonalNote{}, err
	}
	return note, nil
}

func (u *UpdateSectionUsecase) UpdateSecurityApproach(ctx context.Context, approach domain.SecurityApproach) (domain.SecurityApproach, error) {
	if strings.TrimSpace(approach.Text) == "" {
		return domain.SecurityApproach{}, requiredFieldError(domain.SectionSecurityApproach, "text")
	}

	approach.Text = u.sanitizer.Sanitize(approach.Text)
	now := u.now()
	approach.UpdatedAt = &now

	if err := u.persist(ctx, domain.SectionSecurityApproach, approach); err != nil {
		return domain.SecurityApproach{}, err
	}
	return approach, nil
}

// DeleteSection removes the stored payload so the section reverts to its
// static fallback on the next read.
func (u *UpdateSectionUsecase) DeleteSection(ctx context.Context, key domain.SectionKey) error {
	if !domain.ValidSectionKey(string(key)) {
		return apperrors.ValidationError(
			fmt.Sprintf("unknown section %q", key),
			map[string]interface{}{"section": string(key)},
		)
	}
	return u.deleteStored(ctx, string(key))
}

// UpsertSetting writes one free-form key/value setting.
func (u *UpdateSectionUsecase) UpsertSetting(ctx context.Context, key, value string) (domain.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Setting{}, apperrors.ValidationError("key is required", nil)
	}

	if err := u.sections.UpsertSection(ctx, settingStorageKey(key), value); err != nil {
		return domain.Setting{}, apperrors.DatabaseError("failed to persist setting", err,
			map[string]interface{}{"key": key})
	}

	now := u.now()
	return domain.Setting{Key: key, Value: value, UpdatedAt: &now}, nil
}

// DeleteSetting removes one free-form setting.
func (u *UpdateSectionUsecase) DeleteSetting(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperrors.ValidationError("key is required", nil)
	}
	return u.deleteStored(ctx, settingStorageKey(key))
}

func (u *UpdateSectionUsecase) persist(ctx context.Context, key domain.SectionKey, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return apperrors.UnknownError("failed to serialize section payload", err)
	}

	if err := u.sections.UpsertSection(ctx, string(key), string(data)); err != nil {
		u.logger.Error("failed to persist section",
			"section", key,
			"error", err)
		return apperrors.DatabaseError("failed to persist section", err,
			map[string]interface{}{"section": string(key)})
	}

	return nil
}

func (u *UpdateSectionUsecase) deleteStored(ctx context.Context, storageKey string) error {
	err := u.sections.DeleteSection(ctx, storageKey)
	if err == nil {
		return nil
	}
	if apperrors.IsRecordNotFound(err) {
		return apperrors.NotFoundError("no stored value", map[string]interface{}{"key": storageKey})
	}
	return apperrors.DatabaseError("failed to delete stored value", err,
		map[string]interface{}{"key": storageKey})
}

func updateListSection[T any](
	u *UpdateSectionUsecase,
	ctx context.Context,
	key domain.SectionKey,
	entries []T,
	validate func(int, T) error,
	normalize func(T) T,
) ([]T, error) {
	if entries == nil {
		entries = []T{}
	}

	for i, entry := range entries {
		if err := validate(i, entry); err != nil {
			return nil, err
		}
	}

	if normalize != nil {
		for i := range entries {
			entries[i] = normalize(entries[i])
		}
	}

	if err := u.persist(ctx, key, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func requiredFieldError(section domain.SectionKey, field string) *apperrors.AppError {
	return apperrors.ValidationError(
		fmt.Sprintf("%s: %s is required", section, field),
		map[string]interface{}{"field": field, "section": string(section)},
	)
}

func requiredEntryFieldError(section domain.SectionKey, index int, field string) *apperrors.AppError {
	return apperrors.ValidationError(
		fmt.Sprintf("%s[%d]: %s is required", section, index, field),
		map[string]interface{}{"field": field, "index": index, "section": string(section)},
	)
}

// normalizeList flattens comma-separated entries, trims whitespace and
// drops empties, preserving order.
func normalizeList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}
	return result
}
