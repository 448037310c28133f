package rest

import (
	"net/http"
	"strconv"

	"folio/usecase/hobby_usecase"
	apperrors "folio/utils/errors"

	"github.com/labstack/echo/v4"
)

// HobbyHandler serves the public hobby list and the admin CRUD surface.
type HobbyHandler struct {
	hobbies *hobby_usecase.HobbyUsecase
}

func NewHobbyHandler(hobbies *hobby_usecase.HobbyUsecase) *HobbyHandler {
	return &HobbyHandler{hobbies: hobbies}
}

// List answers GET /v1/hobbies.
func (h *HobbyHandler) List(c echo.Context) error {
	hobbies, _ := h.hobbies.List(c.Request().Context())
	return c.JSON(http.StatusOK, hobbiesResponse{Hobbies: hobbies})
}

// AdminList answers GET /v1/admin/hobbies, including the payload source.
func (h *HobbyHandler) AdminList(c echo.Context) error {
	hobbies, source := h.hobbies.List(c.Request().Context())
	return c.JSON(http.StatusOK, hobbiesResponse{Hobbies: hobbies, Source: source})
}

// Create answers POST /v1/admin/hobbies.
func (h *HobbyHandler) Create(c echo.Context) error {
	var req hobbyRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, apperrors.ValidationError("invalid JSON payload", nil))
	}

	created, err := h.hobbies.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update answers PUT /v1/admin/hobbies/:id.
func (h *HobbyHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return handleError(c, apperrors.ValidationError("id must be an integer",
			map[string]interface{}{"id": c.Param("id")}))
	}

	var req hobbyRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, apperrors.ValidationError("invalid JSON payload", nil))
	}

	updated, err := h.hobbies.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete answers DELETE /v1/admin/hobbies/:id.
func (h *HobbyHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return handleError(c, apperrors.ValidationError("id must be an integer",
			map[string]interface{}{"id": c.Param("id")}))
	}

	if err := h.hobbies.Delete(c.Request().Context(), id); err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "hobby deleted"})
}
