package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "classdrop/internal/errors"
	"classdrop/internal/model"
	"classdrop/internal/service"
)

// AuthHandler handles registration and login for students and teachers.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest is the body of register and login requests, as JSON or form fields.
type CredentialsRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=128"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

// TokenResponse carries an access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterStudent godoc
// @Summary Register a student
// @Tags students
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body CredentialsRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /students/register [post]
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	return h.register(c, model.RoleStudent)
}

// LoginStudent godoc
// @Summary Login as a student
// @Tags students
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Student name"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /students/login [post]
func (h *AuthHandler) LoginStudent(c echo.Context) error {
	return h.login(c, model.RoleStudent)
}

// RegisterTeacher godoc
// @Summary Register a teacher
// @Tags teachers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body CredentialsRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /teachers/register [post]
func (h *AuthHandler) RegisterTeacher(c echo.Context) error {
	return h.register(c, model.RoleTeacher)
}

// LoginTeacher godoc
// @Summary Login as a teacher
// @Tags teachers
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Teacher name"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /teachers/login [post]
func (h *AuthHandler) LoginTeacher(c echo.Context) error {
	return h.login(c, model.RoleTeacher)
}

func (h *AuthHandler) register(c echo.Context, role model.Role) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	principal, err := h.authService.Register(c.Request().Context(), req.Name, req.Password, role)
	if err != nil {
		return respondError(c, err)
	}

	accessToken, err := h.authService.IssueToken(principal)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

func (h *AuthHandler) login(c echo.Context, role model.Role) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	accessToken, _, err := h.authService.Login(c.Request().Context(), req.Name, req.Password, role)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{AccessToken: accessToken, TokenType: "bearer"})
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}
	return &req, nil
}

// respondError maps a service error to an HTTP error, logging anything unexpected.
func respondError(c echo.Context, err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	switch httpErr.StatusCode {
	case http.StatusInternalServerError:
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	case http.StatusUnauthorized:
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
