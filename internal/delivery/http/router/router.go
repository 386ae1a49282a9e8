// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scribe/internal/delivery/http/middleware"
	"scribe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	BlogHandler         *handler.BlogHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	blogHandler         *handler.BlogHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		blogHandler:         params.BlogHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/login-form", r.authHandler.LoginForm)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	userGroup := api.Group("/users")
	{
		userGroup.POST("/", r.userHandler.Register)
		userGroup.GET("/", r.userHandler.List)
		userGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
		userGroup.PUT("/me", r.userHandler.UpdateMe, r.authMiddleware.Authenticate)
		userGroup.DELETE("/me", r.userHandler.DeleteMe, r.authMiddleware.Authenticate)
		userGroup.GET("/me/blogs", r.userHandler.MeBlogs, r.authMiddleware.Authenticate)
		userGroup.GET("/:id", r.userHandler.Get)
	}

	blogGroup := api.Group("/blogs")
	{
		blogGroup.POST("/", r.blogHandler.Create, r.authMiddleware.Authenticate)
		blogGroup.GET("/", r.blogHandler.List)
		blogGroup.GET("/search", r.blogHandler.Search)
		blogGroup.GET("/my-blogs", r.blogHandler.MyBlogs, r.authMiddleware.Authenticate)
		// Optional auth lets creators read their own drafts at the public URL.
		blogGroup.GET("/:id", r.blogHandler.Get, r.authMiddleware.OptionalAuthenticate)
		blogGroup.PUT("/:id", r.blogHandler.Update, r.authMiddleware.Authenticate)
		blogGroup.DELETE("/:id", r.blogHandler.Delete, r.authMiddleware.Authenticate)
		blogGroup.POST("/:id/publish", r.blogHandler.Publish, r.authMiddleware.Authenticate)
	}
}
