package routes

import (
	"copydesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
	PathOrders = "/orders"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	orderHandler *handlers.OrderHandler,
	workflowHandler *handlers.WorkflowHandler,
	versionHandler *handlers.VersionHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/status", orderHandler.PatchOrderStatus)

		orders.POST("/:order_id/payments", paymentHandler.CreatePayment)
		orders.GET("/:order_id/payments", paymentHandler.GetPaymentsByOrderID)

		orders.GET("/:order_id/steps", workflowHandler.ListSteps)
		orders.PATCH("/:order_id/steps/:ordinal/status", workflowHandler.PatchStepStatus)
		orders.GET("/:order_id/progress", workflowHandler.GetProgress)

		orders.POST("/:order_id/versions", versionHandler.CreateVersion)
		orders.GET("/:order_id/versions", versionHandler.ListVersions)
		orders.GET("/:order_id/versions/active", versionHandler.GetActiveVersion)
		orders.GET("/:order_id/versions/compare", versionHandler.CompareVersions)
		orders.PATCH("/:order_id/versions/:version/activate", versionHandler.ActivateVersion)
		orders.GET("/:order_id/versions/:version/export", versionHandler.ExportVersion)
	}
}
