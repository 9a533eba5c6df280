package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "classdrop/internal/errors"
	"classdrop/internal/model"
	"classdrop/internal/service"
	"classdrop/internal/storage"
)

// PrincipalContextKey is where the guard middleware stores the authenticated *model.Principal.
const PrincipalContextKey = "principal"

// AssignmentHandler handles submission and comment endpoints.
type AssignmentHandler struct {
	assignmentService service.AssignmentService
	uploads           *storage.Uploads
}

// NewAssignmentHandler creates a new assignment handler.
func NewAssignmentHandler(assignmentService service.AssignmentService, uploads *storage.Uploads) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService, uploads: uploads}
}

// CommentResponse is a comment as listed under an assignment.
type CommentResponse struct {
	ID          uint      `json:"id"`
	TeacherName string    `json:"teacher_name"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// AssignmentResponse is an assignment with its comments.
type AssignmentResponse struct {
	ID          uint              `json:"id"`
	Subject     string            `json:"subject"`
	Description *string           `json:"description"`
	FilePath    string            `json:"file_path"`
	CreatedAt   time.Time         `json:"created_at"`
	StudentName *string           `json:"student_name"`
	Comments    []CommentResponse `json:"comments"`
}

// SubmitResponse is returned after a successful submission.
type SubmitResponse struct {
	ID       uint   `json:"id"`
	Subject  string `json:"subject"`
	FilePath string `json:"file_path"`
}

// CommentCreatedResponse is returned after a comment is recorded.
type CommentCreatedResponse struct {
	ID           uint   `json:"id"`
	AssignmentID uint   `json:"assignment_id"`
	TeacherName  string `json:"teacher_name"`
	Comment      string `json:"comment"`
}

// Submit godoc
// @Summary Submit an assignment
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param subject formData string true "Subject"
// @Param description formData string false "Description"
// @Param file formData file true "Submitted file"
// @Param token formData string false "Student access token, if not sent as a bearer header"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /assignments/ [post]
func (h *AssignmentHandler) Submit(c echo.Context) error {
	principal := CurrentPrincipal(c)
	if principal == nil || principal.Student == nil {
		return respondError(c, apperrors.ErrUnauthenticated)
	}

	subject := strings.TrimSpace(c.FormValue("subject"))
	if subject == "" {
		return badRequest("subject is required")
	}
	var description *string
	if d := c.FormValue("description"); d != "" {
		description = &d
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest("file is required")
	}

	ref, err := h.uploads.Save(fh)
	if err != nil {
		return respondError(c, err)
	}

	assignment, err := h.assignmentService.Submit(c.Request().Context(), principal.Student, subject, description, ref)
	if err != nil {
		if rmErr := h.uploads.Remove(ref); rmErr != nil {
			c.Logger().Warnf("remove orphaned upload %s: %v", ref, rmErr)
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, SubmitResponse{
		ID:       assignment.ID,
		Subject:  assignment.Subject,
		FilePath: assignment.FilePath,
	})
}

// List godoc
// @Summary List all assignments, newest first
// @Tags assignments
// @Produce json
// @Success 200 {array} AssignmentResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /assignments/ [get]
func (h *AssignmentHandler) List(c echo.Context) error {
	assignments, err := h.assignmentService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAssignmentResponses(assignments))
}

// ListByStudent godoc
// @Summary List a student's assignments, newest first
// @Tags assignments
// @Produce json
// @Param name path string true "Student name"
// @Success 200 {array} AssignmentResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /students/{name}/assignments/ [get]
func (h *AssignmentHandler) ListByStudent(c echo.Context) error {
	assignments, err := h.assignmentService.ListByStudent(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAssignmentResponses(assignments))
}

// AddComment godoc
// @Summary Comment on an assignment
// @Tags assignments
// @Accept x-www-form-urlencoded,multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param comment formData string true "Comment text"
// @Param token formData string false "Teacher access token, if not sent as a bearer header"
// @Success 201 {object} CommentCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /assignments/{id}/comment [post]
func (h *AssignmentHandler) AddComment(c echo.Context) error {
	principal := CurrentPrincipal(c)
	if principal == nil || principal.Teacher == nil {
		return respondError(c, apperrors.ErrUnauthenticated)
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest("invalid assignment id")
	}
	text := c.FormValue("comment")
	if strings.TrimSpace(text) == "" {
		return badRequest("comment is required")
	}

	comment, err := h.assignmentService.AddComment(c.Request().Context(), uint(id), principal.Name(), text)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CommentCreatedResponse{
		ID:           comment.ID,
		AssignmentID: comment.AssignmentID,
		TeacherName:  comment.TeacherName,
		Comment:      comment.Comment,
	})
}

// CurrentPrincipal returns the principal resolved by the guard middleware, if any.
func CurrentPrincipal(c echo.Context) *model.Principal {
	p, _ := c.Get(PrincipalContextKey).(*model.Principal)
	return p
}

func badRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: msg,
		Code:  "VALIDATION_FAILED",
	})
}

func toAssignmentResponses(assignments []model.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp := AssignmentResponse{
			ID:          a.ID,
			Subject:     a.Subject,
			Description: a.Description,
			FilePath:    a.FilePath,
			CreatedAt:   a.CreatedAt,
			Comments:    make([]CommentResponse, 0, len(a.Comments)),
		}
		if a.Student != nil {
			name := a.Student.Name
			resp.StudentName = &name
		}
		for _, cm := range a.Comments {
			resp.Comments = append(resp.Comments, CommentResponse{
				ID:          cm.ID,
				TeacherName: cm.TeacherName,
				Comment:     cm.Comment,
				CreatedAt:   cm.CreatedAt,
			})
		}
		out = append(out, resp)
	}
	return out
}
