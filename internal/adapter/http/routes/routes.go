package routes

import (
	"log"
	"os"
	"strconv"
	_ "taller360/docs" // This will be auto-generated
	"taller360/internal/adapter/http/handlers"
	repository2 "taller360/internal/adapter/persistence/repository"
	"taller360/internal/infrastructure/database"
	"taller360/internal/infrastructure/messaging"
	"taller360/internal/usecase"
	"taller360/internal/usecase/interfaces"

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

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	lineRepo := repository2.NewBudgetLineDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	ownerRepo := repository2.NewOwnerDynamoRepository(ddb)
	templateRepo := repository2.NewWhatsAppTemplateDynamoRepository(ddb)
	messageRepo := repository2.NewWhatsAppMessageDynamoRepository(ddb)

	var messageGateway interfaces.IMessageGateway
	twilioGateway, err := messaging.NewTwilioWhatsAppGateway(
		os.Getenv("TWILIO_ACCOUNT_SID"),
		os.Getenv("TWILIO_AUTH_TOKEN"),
		os.Getenv("TWILIO_WHATSAPP_FROM"),
	)
	if err != nil {
		log.Printf("WhatsApp gateway not configured: %v", err)
	} else {
		messageGateway = twilioGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, lineRepo, ownerRepo)
	ledgerUseCase := usecase.NewLedgerUseCase(orderRepo, paymentRepo)
	ownerUseCase := usecase.NewOwnerUseCase(ownerRepo)
	notificationUseCase := usecase.NewNotificationUseCase(messageRepo, templateRepo, ownerRepo, messageGateway)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(ledgerUseCase)
	ownerHandler := handlers.NewOwnerHandler(ownerUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	webhookHandler := handlers.NewWebhookHandler(notificationUseCase, messageGateway)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, orderHandler, paymentHandler, ownerHandler, notificationHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
