package search_content_usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"folio/domain"
	"folio/port/content_source_port"
	"folio/utils/metrics"
)

// SearchContentUsecase ranks items from the three content collections
// against a free-text query. It is read-only; collections are never
// mutated and scores are recomputed per request.
type SearchContentUsecase struct {
	contentSource content_source_port.ContentSourcePort
	defaultLimit  int
	logger        *slog.Logger
}

func NewSearchContentUsecase(contentSource content_source_port.ContentSourcePort, defaultLimit int) *SearchContentUsecase {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &SearchContentUsecase{
		contentSource: contentSource,
		defaultLimit:  defaultLimit,
		logger:        slog.Default(),
	}
}

// Execute scores every candidate item and returns the top matches sorted
// by descending relevance. Total counts matches before truncation.
func (u *SearchContentUsecase) Execute(ctx context.Context, query string, contentType domain.ContentType, limit int) (domain.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if contentType == "" {
		contentType = domain.ContentTypeAll
	}
	if limit <= 0 {
		limit = u.defaultLimit
	}

	result := domain.SearchResult{
		Results: []domain.ScoredResult{},
		Query:   trimmed,
		Type:    contentType,
	}

	if trimmed == "" {
		return result, nil
	}

	items, err := u.collectCandidates(ctx, contentType)
	if err != nil {
		u.logger.Error("failed to collect search candidates",
			"error", err,
			"type", contentType)
		return domain.SearchResult{}, err
	}

	metrics.CountSearchQuery()

	now := time.Now()
	lowered := strings.ToLower(trimmed)

	scored := make([]domain.ScoredResult, 0, len(items))
	for _, item := range items {
		score := scoreItem(item, lowered, now)
		if score <= 0 {
			continue
		}
		scored = append(scored, domain.ScoredResult{Item: item, Score: score})
	}

	// Stable sort keeps collection traversal order as the tie-break.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	result.Total = len(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}
	result.Results = scored

	u.logger.Info("search completed",
		"query", trimmed,
		"type", contentType,
		"total", result.Total,
		"returned", len(result.Results))

	return result, nil
}

// collectCandidates gathers the collections selected by the type filter in
// canonical order: research, then project, then blog. The filter is
// applied before scoring, not after.
func (u *SearchContentUsecase) collectCandidates(ctx context.Context, contentType domain.ContentType) ([]domain.SearchableItem, error) {
	var items []domain.SearchableItem

	if contentType == domain.ContentTypeAll || contentType == domain.ContentTypeResearch {
		research, err := u.contentSource.ResearchItems(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, research...)
	}

	if contentType == domain.ContentTypeAll || contentType == domain.ContentTypeProject {
		projects, err := u.contentSource.ProjectItems(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, projects...)
	}

	if contentType == domain.ContentTypeAll || contentType == domain.ContentTypeBlog {
		blog, err := u.contentSource.BlogItems(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, blog...)
	}

	return items, nil
}

// scoreItem computes the relevance of one item for a lowercased query.
func scoreItem(item domain.SearchableItem, query string, now time.Time) float64 {
	var score float64

	if strings.Contains(strings.ToLower(item.Title), query) {
		score += 10
	}

	if item.Description != "" && strings.Contains(strings.ToLower(item.Description), query) {
		score += 5
	}

	// The body weight of 0.5 stacks on top of the dampening inside
	// contentScore for the verbatim branch. Kept as-is: ranking quality
	// depends on the relative order, and downstream consumers only see
	// the final numbers.
	score += contentScore(item.RawContent, query) * 0.5

	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			score += 3
		}
	}

	score += recencyBonus(item.PublishedAt, now)

	return score
}

// contentScore returns up to 5 points for long-form body relevance. A
// verbatim hit short-circuits; otherwise the fraction of query words
// appearing as a substring of any body word decides.
func contentScore(body, query string) float64 {
	if body == "" || query == "" {
		return 0
	}

	lowered := strings.ToLower(body)
	if strings.Contains(lowered, query) {
		return 10 * 0.5
	}

	queryWords := strings.Fields(query)
	if len(queryWords) == 0 {
		return 0
	}
	bodyWords := strings.Fields(lowered)

	matched := 0
	for _, queryWord := range queryWords {
		for _, bodyWord := range bodyWords {
			if strings.Contains(bodyWord, queryWord) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(queryWords)) * 5
}

// recencyBonus rewards recently published items. Items without a date get
// no bonus.
func recencyBonus(publishedAt *time.Time, now time.Time) float64 {
	if publishedAt == nil {
		return 0
	}

	age := now.Sub(*publishedAt)
	switch {
	case age <= 30*24*time.Hour:
		return 2
	case age <= 90*24*time.Hour:
		return 1
	default:
		return 0
	}
}
