package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/auth"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	testimonialHandler *handler.TestimonialHandler,
	adminHandler *handler.AdminTestimonialHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Permissive CORS: the public site and the admin dashboard are served
	// from other origins.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireToken := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "Authorization header required",
					Code:  "AUTHORIZATION_REQUIRED",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Invalid token",
				Code:  "INVALID_TOKEN",
			})
		},
	})

	// Auth: one path, the method selects the operation.
	e.GET("/auth", authHandler.Me, requireToken)
	e.POST("/auth", authHandler.Login)
	e.PATCH("/auth", authHandler.ChangePassword, requireToken)
	e.PUT("/auth", authHandler.RequestReset)
	e.DELETE("/auth", authHandler.ResetPassword)

	// Public testimonial routes
	e.GET("/testimonials", testimonialHandler.ListApproved)
	e.POST("/testimonials", testimonialHandler.Submit)

	// Moderation routes (admin token required)
	admin := e.Group("/admin", requireToken, RequireAdmin)
	admin.GET("/testimonials", adminHandler.ListAll)
	admin.PUT("/testimonials", adminHandler.Approve)
	admin.DELETE("/testimonials", adminHandler.Delete)
	admin.PATCH("/testimonials", adminHandler.UpdateImage)
}

// RequireAdmin rejects verified tokens whose claims do not carry the
// admin flag. It must run after the JWT middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.Claims)
		if !ok || !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "Admin access required",
				Code:  "ADMIN_ACCESS_REQUIRED",
			})
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
