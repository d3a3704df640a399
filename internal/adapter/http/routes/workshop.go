package routes

import (
	"taller360/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathOwners    = "/owners"
	PathMessages  = "/messages"
	PathTemplates = "/templates"
	PathWebhooks  = "/webhooks"
)

func addWorkshopRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler, ownerHandler *handlers.OwnerHandler, notificationHandler *handlers.NotificationHandler, webhookHandler *handlers.WebhookHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.POST("/:order_id/budget-lines", orderHandler.AddBudgetLine)
		orders.GET("/:order_id/budget-lines", orderHandler.ListBudgetLines)
		orders.PATCH("/:order_id/budget-lines/:line_id/approve", orderHandler.ApproveBudgetLine)
		orders.POST("/:order_id/payments", paymentHandler.RecordPayment)
		orders.GET("/:order_id/payments", paymentHandler.ListPaymentsByOrderID)
	}

	owners := rg.Group(PathOwners)
	{
		owners.POST("", ownerHandler.CreateOwner)
		owners.GET("/:owner_id", ownerHandler.GetOwner)
		owners.GET("/:owner_id/messages", notificationHandler.ListMessagesByOwner)
	}

	messages := rg.Group(PathMessages)
	{
		messages.POST("", notificationHandler.SendMessage)
		messages.GET("/:message_id", notificationHandler.GetMessage)
	}

	templates := rg.Group(PathTemplates)
	{
		templates.POST("", notificationHandler.CreateTemplate)
		templates.GET("", notificationHandler.ListTemplates)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Twilio posts delivery-status updates here (form-encoded).
		webhooks.POST("/whatsapp/status", webhookHandler.HandleStatusCallback)
	}
}
