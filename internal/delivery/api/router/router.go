// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coderr/internal/delivery/api/middleware"
	"coderr/internal/delivery/api/router/handler"
	"coderr/internal/domain/policy"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	ProfileHandler    *handler.ProfileHandler
	OfferHandler      *handler.OfferHandler
	OrderHandler      *handler.OrderHandler
	ReviewHandler     *handler.ReviewHandler
	StatisticsHandler *handler.StatisticsHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	profileHandler    *handler.ProfileHandler
	offerHandler      *handler.OfferHandler
	orderHandler      *handler.OrderHandler
	reviewHandler     *handler.ReviewHandler
	statisticsHandler *handler.StatisticsHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		profileHandler:    params.ProfileHandler,
		offerHandler:      params.OfferHandler,
		orderHandler:      params.OrderHandler,
		reviewHandler:     params.ReviewHandler,
		statisticsHandler: params.StatisticsHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths end in a slash; the server adds a missing one before routing.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health/", handler.HealthCheck)

	// Every endpoint resolves the caller; protected routes then check the
	// permission table before parsing. Ownership is checked in the use cases.
	api := e.Group("/api", r.authMiddleware.Identify)
	require := r.authMiddleware.Require

	api.POST("/registration/", r.accountHandler.Register)
	api.POST("/login/", r.accountHandler.Login)

	api.GET("/profile/:id/", r.profileHandler.Get, require(policy.ResourceProfile, policy.ActionRead))
	api.PATCH("/profile/:id/", r.profileHandler.Update, require(policy.ResourceProfile, policy.ActionUpdate))
	api.GET("/profiles/business/", r.profileHandler.ListBusiness, require(policy.ResourceProfile, policy.ActionRead))
	api.GET("/profiles/customer/", r.profileHandler.ListCustomer, require(policy.ResourceProfile, policy.ActionRead))

	offers := api.Group("/offers")
	{
		offers.GET("/", r.offerHandler.List)
		offers.POST("/", r.offerHandler.Create, require(policy.ResourceOffer, policy.ActionCreate))
		offers.GET("/:id/", r.offerHandler.Get)
		offers.PATCH("/:id/", r.offerHandler.Update, require(policy.ResourceOffer, policy.ActionUpdate))
		offers.DELETE("/:id/", r.offerHandler.Delete, require(policy.ResourceOffer, policy.ActionDelete))
		offers.GET("/:id/qr/", r.offerHandler.ShareQR)
	}
	api.GET("/offerdetails/:id/", r.offerHandler.GetDetail)

	orders := api.Group("/orders")
	{
		orders.GET("/", r.orderHandler.List, require(policy.ResourceOrder, policy.ActionRead))
		orders.POST("/", r.orderHandler.Create, require(policy.ResourceOrder, policy.ActionCreate))
		orders.GET("/:id/", r.orderHandler.Get, require(policy.ResourceOrder, policy.ActionRead))
		orders.PATCH("/:id/", r.orderHandler.UpdateStatus, require(policy.ResourceOrder, policy.ActionUpdate))
		orders.DELETE("/:id/", r.orderHandler.Delete, require(policy.ResourceOrder, policy.ActionDelete))
	}
	api.GET("/order-count/:business_user_id/", r.orderHandler.InProgressCount, require(policy.ResourceOrderCount, policy.ActionRead))
	api.GET("/completed-order-count/:business_user_id/", r.orderHandler.CompletedCount, require(policy.ResourceOrderCount, policy.ActionRead))

	reviews := api.Group("/reviews")
	{
		reviews.GET("/", r.reviewHandler.List, require(policy.ResourceReview, policy.ActionRead))
		reviews.POST("/", r.reviewHandler.Create, require(policy.ResourceReview, policy.ActionCreate))
		reviews.GET("/:id/", r.reviewHandler.Get, require(policy.ResourceReview, policy.ActionRead))
		reviews.PATCH("/:id/", r.reviewHandler.Update, require(policy.ResourceReview, policy.ActionUpdate))
		reviews.DELETE("/:id/", r.reviewHandler.Delete, require(policy.ResourceReview, policy.ActionDelete))
	}

	api.GET("/base-info/", r.statisticsHandler.BaseInfo)
}
