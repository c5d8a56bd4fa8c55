package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// TestimonialHandler handles the public testimonial endpoints.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// SubmitTestimonialRequest represents an anonymous submission.
type SubmitTestimonialRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quote    string  `json:"quote" validate:"required"`
	Title    *string `json:"title,omitempty"`
	Company  *string `json:"company,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// ListApproved godoc
// @Summary List approved testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} model.Testimonial
// @Router /testimonials [get]
func (h *TestimonialHandler) ListApproved(c echo.Context) error {
	testimonials, err := h.testimonialService.ListApproved(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Submit godoc
// @Summary Submit a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body SubmitTestimonialRequest true "Testimonial"
// @Success 201 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /testimonials [post]
func (h *TestimonialHandler) Submit(c echo.Context) error {
	var req SubmitTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.testimonialService.Submit(c.Request().Context(), service.SubmitTestimonialInput{
		Name:     req.Name,
		Quote:    req.Quote,
		Title:    req.Title,
		Company:  req.Company,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, t)
}
