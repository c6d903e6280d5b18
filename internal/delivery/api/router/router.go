// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farmdesk/config"
	"farmdesk/internal/delivery/api/middleware"
	"farmdesk/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	FarmHandler         *handler.FarmHandler
	FieldHandler        *handler.FieldHandler
	RecordHandler       *handler.RecordHandler
	ReportHandler       *handler.ReportHandler
	InvitationHandler   *handler.InvitationHandler
	NotificationHandler *handler.NotificationHandler
	BillingHandler      *handler.BillingHandler
	AdvisorHandler      *handler.AdvisorHandler
	DevHandler          *handler.DevHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	farmHandler         *handler.FarmHandler
	fieldHandler        *handler.FieldHandler
	recordHandler       *handler.RecordHandler
	reportHandler       *handler.ReportHandler
	invitationHandler   *handler.InvitationHandler
	notificationHandler *handler.NotificationHandler
	billingHandler      *handler.BillingHandler
	advisorHandler      *handler.AdvisorHandler
	devHandler          *handler.DevHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		farmHandler:         params.FarmHandler,
		fieldHandler:        params.FieldHandler,
		recordHandler:       params.RecordHandler,
		reportHandler:       params.ReportHandler,
		invitationHandler:   params.InvitationHandler,
		notificationHandler: params.NotificationHandler,
		billingHandler:      params.BillingHandler,
		advisorHandler:      params.AdvisorHandler,
		devHandler:          params.DevHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Payment processor callbacks authenticate by signature
	e.POST("/webhooks/stripe", r.billingHandler.StripeWebhook)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Routes available before the caller belongs to a farm
	apiV1.POST("/onboarding", r.accountHandler.Onboard)

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.accountHandler.GetProfile)
		meGroup.PUT("", r.accountHandler.UpdateProfile)
		meGroup.PUT("/push-tokens", r.accountHandler.RegisterPushToken)
	}

	invitationsGroup := apiV1.Group("/invitations")
	{
		invitationsGroup.GET("", r.invitationHandler.ListReceived)
		invitationsGroup.POST("/:id/accept", r.invitationHandler.Accept)
		invitationsGroup.POST("/:id/decline", r.invitationHandler.Decline)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	apiV1.POST("/billing/checkout", r.billingHandler.CreateCheckout)

	// Tenant routes require a farm
	tenant := apiV1.Group("")
	tenant.Use(r.authMiddleware.RequireFarm)

	farmGroup := tenant.Group("/farm")
	{
		farmGroup.GET("", r.farmHandler.GetFarm)
		farmGroup.POST("/leave", r.farmHandler.LeaveFarm)

		ownerGroup := farmGroup.Group("")
		ownerGroup.Use(r.authMiddleware.RequireOwner)
		{
			ownerGroup.PUT("", r.farmHandler.UpdateFarm)
			ownerGroup.DELETE("/staff/:uid", r.farmHandler.RemoveStaff)
			ownerGroup.GET("/invitations", r.invitationHandler.ListSent)
			ownerGroup.POST("/invitations", r.invitationHandler.Invite)
			ownerGroup.DELETE("/invitations/:id", r.invitationHandler.Revoke)
			ownerGroup.GET("/invitations/:id/qr", r.invitationHandler.InvitationQR)
		}
	}

	fieldsGroup := tenant.Group("/fields")
	{
		fieldsGroup.POST("", r.fieldHandler.CreateField)
		fieldsGroup.GET("", r.fieldHandler.ListFields)
		fieldsGroup.GET("/:id", r.fieldHandler.GetField)
		fieldsGroup.PUT("/:id", r.fieldHandler.UpdateField)
		fieldsGroup.DELETE("/:id", r.fieldHandler.DeleteField)
	}

	r.recordHandler.RegisterRoutes(tenant.Group("/records"))

	tenant.GET("/reports/finance.xlsx", r.reportHandler.ExportFinance)

	advisorGroup := tenant.Group("/advisor")
	{
		advisorGroup.POST("/question", r.advisorHandler.AskQuestion)
		advisorGroup.POST("/planting", r.advisorHandler.PlantingAdvice)
		advisorGroup.POST("/yield", r.advisorHandler.YieldOptimization)
		advisorGroup.POST("/livestock", r.advisorHandler.LivestockHealth)
		advisorGroup.POST("/finance", r.advisorHandler.FinancialInsights)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Dev routes - only enabled when configured
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	devGroup := e.Group("/dev")
	if r.devHandler.CanIssueTokens() {
		devGroup.POST("/token", r.devHandler.IssueToken)
	}

	devGroup.GET("/whoami", r.devHandler.WhoAmI, r.authMiddleware.Authenticate)
}
