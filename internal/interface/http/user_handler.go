package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskboard-api/internal/application"
	"github.com/oksasatya/taskboard-api/pkg/response"
	"github.com/oksasatya/taskboard-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Svc.CreateUser(c.Request.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, newUserResponse(user), "user created", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := h.Svc.DeleteUser(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.Svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newUserResponse(user), "user", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.GetAllUsers(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newUserResponses(users), "users", map[string]any{"count": len(users)})
}

// Lookup finds a user by exact first and last name.
func (h *UserHandler) Lookup(c *gin.Context) {
	first := c.Query("first_name")
	last := c.Query("last_name")
	if first == "" || last == "" {
		response.Error[any](c, http.StatusBadRequest, "missing name", map[string]string{
			"first_name": "is required",
			"last_name":  "is required",
		})
		return
	}
	user, err := h.Svc.GetUserByName(c.Request.Context(), first, last)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newUserResponse(user), "user", nil)
}
