package routes

import (
	"agroclima_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhookMercadoPago = "/webhook/mercadopago"
	PathCheckout           = "/checkout"
	PathUsers              = "/users"
)

func addPortalRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, userHandler *handlers.UserHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/preference", checkoutHandler.CreatePreference)
		checkout.POST("/preapproval", checkoutHandler.CreatePreapproval)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("/sync", userHandler.SyncUser)
	}
}
