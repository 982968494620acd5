package router

import (
	"github.com/oksasatya/taskboard-api/internal/application"
	"github.com/oksasatya/taskboard-api/internal/container"
	pginfra "github.com/oksasatya/taskboard-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/taskboard-api/internal/interface/http"
	"github.com/oksasatya/taskboard-api/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module with the registry.
// Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(pool)
	taskRepo := pginfra.NewTaskRepository(pool)

	index := application.NewTaskIndex(container.GetES(), cfg.ESTasksIndex, logger)
	userSvc := application.NewUserService(userRepo, taskRepo, logger, index)
	taskSvc := application.NewTaskService(taskRepo, userRepo, logger, index)

	userHandler := handlers.NewUserHandler(userSvc, logger)
	taskHandler := handlers.NewTaskHandler(taskSvc, logger)

	r.Add(modules.NewUserModule(userHandler))
	r.Add(modules.NewTaskModule(taskHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(container.GetRedis()))
	}
}
