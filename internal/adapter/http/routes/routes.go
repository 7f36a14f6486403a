package routes

import (
	"log"
	"os"
	"strconv"

	_ "agroclima_portal/docs" // This will be auto-generated
	"agroclima_portal/internal/adapter/http/handlers"
	repository2 "agroclima_portal/internal/adapter/persistence/repository"
	"agroclima_portal/internal/infrastructure/database"
	"agroclima_portal/internal/infrastructure/legacy"
	"agroclima_portal/internal/infrastructure/payments"
	"agroclima_portal/internal/usecase"
	"agroclima_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	userPaymentRepo := repository2.NewUserPaymentDynamoRepository(ddb)

	var legacyGateway interfaces.ILegacyUserGateway
	if legacyClient := legacy.NewClientFromEnv(); legacyClient != nil {
		legacyGateway = legacyClient
	}

	var resourceFetcher interfaces.IResourceFetcher
	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(accessToken())
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		resourceFetcher = mpGateway
		checkoutGateway = mpGateway
	}

	validator := payments.NewSignatureValidator(webhookSecret())
	if !validator.Enabled() {
		log.Printf("[webhook][routes] signature secret not set, notifications accepted unverified")
	}

	userSyncUseCase := usecase.NewUserSyncUseCase(userRepo, legacyGateway)
	entitlementUseCase := usecase.NewEntitlementUseCase(userRepo, legacyGateway, userSyncUseCase)
	webhookUseCase := usecase.NewWebhookUseCase(resourceFetcher, paymentRepo, userRepo, userPaymentRepo, entitlementUseCase)
	checkoutUseCase := usecase.NewCheckoutUseCase(checkoutGateway, paymentRepo)

	webhookHandler := handlers.NewWebhookHandler(webhookUseCase, validator)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	userHandler := handlers.NewUserHandler(userSyncUseCase)

	// Mercado Pago posts notifications against the bare path, outside /v1.
	router.POST(PathWebhookMercadoPago, webhookHandler.Receive)
	router.GET(PathWebhookMercadoPago, webhookHandler.Liveness)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, checkoutHandler, userHandler)
}

func accessToken() string {
	if token := os.Getenv("MERCADOPAGO_ACCESS_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("MP_ACCESS_TOKEN")
}

func webhookSecret() string {
	for _, key := range []string{"MP_WEBHOOK_SECRET", "MERCADOPAGO_WEBHOOK_SECRET", "MERCADO_PAGO_WEBHOOK_SECRET"} {
		if secret := os.Getenv(key); secret != "" {
			return secret
		}
	}
	return ""
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
