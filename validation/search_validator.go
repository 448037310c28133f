package validation

import (
	"context"
	"fmt"
	"strconv"

	"folio/domain"
)

// SearchParams is the parsed, validated form of the search query string.
type SearchParams struct {
	Query string
	Type  domain.ContentType
	Limit int
}

// SearchParamsValidator checks the raw q/type/limit query parameters.
// An empty query is valid; the search endpoint answers it with an empty
// result set rather than an error.
type SearchParamsValidator struct {
	MaxQueryLength int
	MaxLimit       int
	DefaultLimit   int
}

func (v *SearchParamsValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	params, ok := value.(map[string]string)
	if !ok {
		return invalid("params", "query parameters must be a string map", "")
	}

	if query := params["q"]; len(query) > v.MaxQueryLength {
		return invalid("q", fmt.Sprintf("search query too long (maximum %d characters)", v.MaxQueryLength), "")
	}

	if rawType, exists := params["type"]; exists && rawType != "" {
		if !domain.ValidContentType(rawType) {
			return invalid("type", "type must be one of all, research, project, blog", rawType)
		}
	}

	if rawLimit, exists := params["limit"]; exists && rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 1 {
			return invalid("limit", "limit must be a positive integer", rawLimit)
		}
		if limit > v.MaxLimit {
			return invalid("limit", fmt.Sprintf("limit must not exceed %d", v.MaxLimit), rawLimit)
		}
	}

	return ValidationResult{Valid: true}
}

// Parse validates and converts the raw parameters, applying defaults.
// Callers must only use the returned params when the result is valid.
func (v *SearchParamsValidator) Parse(ctx context.Context, params map[string]string) (SearchParams, ValidationResult) {
	result := v.Validate(ctx, params)
	if !result.Valid {
		return SearchParams{}, result
	}

	parsed := SearchParams{
		Query: params["q"],
		Type:  domain.ContentTypeAll,
		Limit: v.DefaultLimit,
	}
	if rawType := params["type"]; rawType != "" {
		parsed.Type = domain.ContentType(rawType)
	}
	if rawLimit := params["limit"]; rawLimit != "" {
		parsed.Limit, _ = strconv.Atoi(rawLimit)
	}

	return parsed, result
}
