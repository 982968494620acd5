package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/taskboard-api/internal/application"
	"github.com/oksasatya/taskboard-api/internal/domain/entity"
	"github.com/oksasatya/taskboard-api/pkg/response"
	"github.com/oksasatya/taskboard-api/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type taskRequest struct {
	Description string `json:"description" binding:"required,max=500"`
	Status      string `json:"status" binding:"required,taskstatus"`
	UserID      int64  `json:"user_id" binding:"required,gt=0"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	status, err := entity.ParseTaskStatus(req.Status)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	task, err := h.Svc.CreateTask(c.Request.Context(), req.Description, status, req.UserID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, newTaskResponse(task), "task created", nil)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	status, err := entity.ParseTaskStatus(req.Status)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	task, err := h.Svc.UpdateTask(c.Request.Context(), id, req.Description, status, req.UserID)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newTaskResponse(task), "task updated", nil)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if _, err := h.Svc.DeleteTask(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	task, err := h.Svc.GetTaskByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newTaskResponse(task), "task", nil)
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Svc.GetAllTasks(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newTaskResponses(tasks), "tasks", map[string]any{"count": len(tasks)})
}

// ListByUser serves /users/:id/tasks. An unknown user is a 404; a known
// user with no tasks is an empty list.
func (h *TaskHandler) ListByUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	tasks, err := h.Svc.GetTasksByUser(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, newTaskResponses(tasks), "tasks", map[string]any{"count": len(tasks)})
}

func (h *TaskHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchTasks(c.Request.Context(), q, size)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
