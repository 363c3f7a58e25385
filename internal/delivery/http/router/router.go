// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler            *handler.AuthHandler
	ListHandler            *handler.ListHandler
	TaskHandler            *handler.TaskHandler
	BotHandler             *handler.BotHandler
	AuthMiddleware         *middleware.AuthMiddleware
	ServiceTokenMiddleware *middleware.ServiceTokenMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler            *handler.AuthHandler
	listHandler            *handler.ListHandler
	taskHandler            *handler.TaskHandler
	botHandler             *handler.BotHandler
	authMiddleware         *middleware.AuthMiddleware
	serviceTokenMiddleware *middleware.ServiceTokenMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:            params.AuthHandler,
		listHandler:            params.ListHandler,
		taskHandler:            params.TaskHandler,
		botHandler:             params.BotHandler,
		authMiddleware:         params.AuthMiddleware,
		serviceTokenMiddleware: params.ServiceTokenMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// List and task routes that require user authentication
	listGroup := e.Group("/lists")
	listGroup.Use(r.authMiddleware.Authenticate)
	{
		listGroup.POST("", r.listHandler.CreateList)
		listGroup.GET("", r.listHandler.GetLists)
		listGroup.GET("/:list_id", r.listHandler.GetList)
		listGroup.PUT("/:list_id", r.listHandler.UpdateList)
		listGroup.DELETE("/:list_id", r.listHandler.DeleteList)

		listGroup.POST("/:list_id/tasks", r.taskHandler.CreateTask)
		listGroup.GET("/:list_id/tasks", r.taskHandler.GetTasks)
		listGroup.GET("/:list_id/tasks/:task_id", r.taskHandler.GetTask)
		listGroup.PUT("/:list_id/tasks/:task_id", r.taskHandler.UpdateTask)
		listGroup.DELETE("/:list_id/tasks/:task_id", r.taskHandler.DeleteTask)
	}

	// Machine-to-machine routes behind the static service token
	botGroup := e.Group("/bots")
	botGroup.Use(r.serviceTokenMiddleware.RequireServiceToken)
	{
		botGroup.GET("", r.botHandler.ListBots)
	}
}
