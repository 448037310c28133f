package rest

import (
	"net/http"

	"folio/usecase/search_content_usecase"
	"folio/validation"

	"github.com/labstack/echo/v4"
)

// SearchHandler serves GET /v1/search.
type SearchHandler struct {
	search    *search_content_usecase.SearchContentUsecase
	validator *validation.SearchParamsValidator
}

func NewSearchHandler(search *search_content_usecase.SearchContentUsecase, validator *validation.SearchParamsValidator) *SearchHandler {
	return &SearchHandler{search: search, validator: validator}
}

func (h *SearchHandler) Search(c echo.Context) error {
	raw := map[string]string{
		"q":     c.QueryParam("q"),
		"type":  c.QueryParam("type"),
		"limit": c.QueryParam("limit"),
	}

	params, result := h.validator.Parse(c.Request().Context(), raw)
	if !result.Valid {
		return handleValidationError(c, result)
	}

	searchResult, err := h.search.Execute(c.Request().Context(), params.Query, params.Type, params.Limit)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, searchResult)
}
