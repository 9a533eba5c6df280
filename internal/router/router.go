package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"classdrop/internal/auth"
	"classdrop/internal/config"
	apperrors "classdrop/internal/errors"
	"classdrop/internal/handler"
	"classdrop/internal/model"
)

// tokenLookup accepts a bearer header or the "token" form field.
const tokenLookup = "header:" + echo.HeaderAuthorization + ":Bearer ,form:token"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	guard *auth.Guard,
	authHandler *handler.AuthHandler,
	assignmentHandler *handler.AssignmentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Assignment Submission System API - Use /students/register, /teachers/register for auth",
		})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	// Public routes
	e.POST("/students/register", authHandler.RegisterStudent)
	e.POST("/students/login", authHandler.LoginStudent)
	e.POST("/teachers/register", authHandler.RegisterTeacher)
	e.POST("/teachers/login", authHandler.LoginTeacher)
	e.GET("/assignments/", assignmentHandler.List)
	e.GET("/students/:name/assignments/", assignmentHandler.ListByStudent)

	// Role-gated routes
	e.POST("/assignments/", assignmentHandler.Submit, RequireRole(guard, model.RoleStudent))
	e.POST("/assignments/:id/comment", assignmentHandler.AddComment, RequireRole(guard, model.RoleTeacher))
}

// RequireRole resolves the request token to an existing principal of role and
// stores it under handler.PrincipalContextKey. Every rejection, including a
// missing token, yields the same 401 response. A failing principal lookup is a 500.
func RequireRole(guard *auth.Guard, role model.Role) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: tokenLookup,
		ContextKey:  handler.PrincipalContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			principal, err := guard.Check(c.Request().Context(), token, role)
			if err != nil {
				if !auth.IsRejection(err) {
					return nil, err
				}
				c.Logger().Debugf("%s guard rejected token: %v", role, err)
				return nil, apperrors.ErrUnauthenticated
			}
			return principal, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var parseErr *echojwt.TokenParsingError
			if errors.As(err, &parseErr) && !errors.Is(err, apperrors.ErrUnauthenticated) {
				c.Logger().Errorf("%s guard lookup failed: %v", role, err)
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			httpErr := apperrors.Unauthenticated()
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
