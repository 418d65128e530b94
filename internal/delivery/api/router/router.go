// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskman/internal/delivery/api/middleware"
	"taskman/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	TaskHandler         *handler.TaskHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	taskHandler         *handler.TaskHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		taskHandler:         params.TaskHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail, r.rateLimitMiddleware.Limit)
		authGroup.POST("/resend-code", r.authHandler.ResendCode)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Limit)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/verify-code", r.authHandler.VerifyCode, r.rateLimitMiddleware.Limit)
		authGroup.POST("/update-password", r.authHandler.UpdatePassword)
	}

	taskGroup := e.Group("/tasks")
	taskGroup.Use(r.authMiddleware.Authenticate)
	{
		taskGroup.POST("/create", r.taskHandler.Create)
		taskGroup.GET("/all", r.taskHandler.All)
		taskGroup.GET("/my", r.taskHandler.Mine)
		taskGroup.GET("/by-user/:userId", r.taskHandler.ByUser)
		taskGroup.GET("/:id", r.taskHandler.Get)
		taskGroup.PUT("/edit/:id", r.taskHandler.Edit)
		taskGroup.DELETE("/delete/:id", r.taskHandler.Delete)
		taskGroup.PATCH("/:taskId/change-status", r.taskHandler.ChangeStatus)
		taskGroup.POST("/:taskId/add-comment", r.taskHandler.AddComment)
	}

	adminGroup := e.Group("/admin/tasks")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.PUT("/edit/:id", r.adminHandler.Edit)
		adminGroup.DELETE("/delete/:id", r.adminHandler.Delete)
		adminGroup.PATCH("/:taskId/change-status", r.adminHandler.ChangeStatus)
		adminGroup.PATCH("/:taskId/change-priority", r.adminHandler.ChangePriority)
		adminGroup.POST("/:taskId/add-comment", r.adminHandler.AddComment)
	}
}
