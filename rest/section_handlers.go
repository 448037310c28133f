package rest

import (
	"io"
	"net/http"

	"folio/domain"
	"folio/usecase/site_section_usecase"
	apperrors "folio/utils/errors"

	"github.com/labstack/echo/v4"
)

// SectionHandler serves public section reads and the admin section and
// settings surface.
type SectionHandler struct {
	getter  *site_section_usecase.GetSectionUsecase
	updater *site_section_usecase.UpdateSectionUsecase
}

func NewSectionHandler(getter *site_section_usecase.GetSectionUsecase, updater *site_section_usecase.UpdateSectionUsecase) *SectionHandler {
	return &SectionHandler{getter: getter, updater: updater}
}

// GetSection answers GET /v1/site/:section. The payload is keyed by the
// section name so clients can spread responses into their page state.
func (h *SectionHandler) GetSection(c echo.Context) error {
	key := c.Param("section")
	if !domain.ValidSectionKey(key) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown section"})
	}

	payload, _, err := h.getter.Resolve(c.Request().Context(), domain.SectionKey(key))
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{key: payload})
}

// AdminGetSection answers GET /v1/admin/site/:section and additionally
// reports whether the payload came from the store or static config.
func (h *SectionHandler) AdminGetSection(c echo.Context) error {
	key := c.Param("section")
	if !domain.ValidSectionKey(key) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown section"})
	}

	payload, source, err := h.getter.Resolve(c.Request().Context(), domain.SectionKey(key))
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		key:       payload,
		"_source": source,
	})
}

// UpdateSection answers PUT /v1/admin/site/:section.
func (h *SectionHandler) UpdateSection(c echo.Context) error {
	key := c.Param("section")
	if !domain.ValidSectionKey(key) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown section"})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return handleError(c, apperrors.ValidationError("failed to read request body", nil))
	}

	payload, err := h.updater.UpdateFromJSON(c.Request().Context(), domain.SectionKey(key), body)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{key: payload})
}

// DeleteSection answers DELETE /v1/admin/site/:section, reverting the
// section to its static fallback.
func (h *SectionHandler) DeleteSection(c echo.Context) error {
	key := c.Param("section")
	if err := h.updater.DeleteSection(c.Request().Context(), domain.SectionKey(key)); err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "section reset to defaults"})
}

// GetSetting answers GET /v1/admin/settings/:key.
func (h *SectionHandler) GetSetting(c echo.Context) error {
	setting, err := h.getter.Setting(c.Request().Context(), c.Param("key"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, setting)
}

// UpsertSetting answers PUT /v1/admin/settings/:key.
func (h *SectionHandler) UpsertSetting(c echo.Context) error {
	var req settingRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, apperrors.ValidationError("invalid JSON payload", nil))
	}

	setting, err := h.updater.UpsertSetting(c.Request().Context(), c.Param("key"), req.Value)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, setting)
}

// DeleteSetting answers DELETE /v1/admin/settings/:key.
func (h *SectionHandler) DeleteSetting(c echo.Context) error {
	if err := h.updater.DeleteSetting(c.Request().Context(), c.Param("key")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "setting deleted"})
}
