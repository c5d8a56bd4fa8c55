package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// AdminTestimonialHandler handles the moderation endpoints. The router
// guards every route here with the JWT and admin middleware.
type AdminTestimonialHandler struct {
	testimonialService service.TestimonialService
}

// NewAdminTestimonialHandler creates a new admin testimonial handler.
func NewAdminTestimonialHandler(testimonialService service.TestimonialService) *AdminTestimonialHandler {
	return &AdminTestimonialHandler{testimonialService: testimonialService}
}

// UpdateImageRequest sets or clears a testimonial's image URL. A JSON
// null clears the image; an empty string is rejected.
type UpdateImageRequest struct {
	ID       uint    `json:"id" validate:"required"`
	ImageURL *string `json:"imageUrl"`
}

// testimonialID parses the id query parameter.
func testimonialID(c echo.Context) (uint, error) {
	idStr := c.QueryParam("id")
	if idStr == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "Testimonial ID required",
			Code:  "TESTIMONIAL_ID_REQUIRED",
		})
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "Testimonial ID required",
			Code:  "TESTIMONIAL_ID_REQUIRED",
		})
	}
	return uint(id), nil
}

// ListAll godoc
// @Summary List all testimonials
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Testimonial
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/testimonials [get]
func (h *AdminTestimonialHandler) ListAll(c echo.Context) error {
	testimonials, err := h.testimonialService.ListAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Approve godoc
// @Summary Approve a testimonial
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id query int true "Testimonial ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/testimonials [put]
func (h *AdminTestimonialHandler) Approve(c echo.Context) error {
	id, err := testimonialID(c)
	if err != nil {
		return err
	}

	if err := h.testimonialService.Approve(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Testimonial approved"})
}

// Delete godoc
// @Summary Delete a testimonial
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id query int true "Testimonial ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/testimonials [delete]
func (h *AdminTestimonialHandler) Delete(c echo.Context) error {
	id, err := testimonialID(c)
	if err != nil {
		return err
	}

	if err := h.testimonialService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Testimonial deleted"})
}

// UpdateImage godoc
// @Summary Set or clear a testimonial image
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateImageRequest true "Testimonial ID and image URL"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/testimonials [patch]
func (h *AdminTestimonialHandler) UpdateImage(c echo.Context) error {
	var req UpdateImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.testimonialService.UpdateImage(c.Request().Context(), req.ID, req.ImageURL); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Testimonial image updated"})
}
