package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskboard-api/internal/application"
	"github.com/oksasatya/taskboard-api/internal/domain/entity"
	"github.com/oksasatya/taskboard-api/pkg/response"
)

// Wire representations. Timestamps are ISO-8601 strings, the status enum
// travels as its name.

type userResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type taskResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	UserID      int64  `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func newUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func newTaskResponse(t *entity.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Description: t.Description,
		Status:      t.Status.String(),
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func newUserResponses(users []*entity.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

func newTaskResponses(tasks []*entity.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskResponse(t))
	}
	return out
}

// idParam pulls an integer id out of the route. A garbage id is a bad
// request; an out-of-range id (0, negative) is passed through so the
// service reports its usual NotFound.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid id", map[string]string{"id": "must be an integer"})
		return 0, false
	}
	return id, true
}

// writeServiceError maps service failures onto HTTP: NotFound → 404,
// entity validation → 400, everything else (duplicate email included) → 500.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case application.IsNotFound(err):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, entity.ErrInvalidEntity):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
