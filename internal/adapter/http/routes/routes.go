package routes

import (
	"log"
	"os"
	"strconv"

	_ "copydesk/docs" // This will be auto-generated
	"copydesk/internal/adapter/http/handlers"
	repository2 "copydesk/internal/adapter/persistence/repository"
	"copydesk/internal/infrastructure/catalog"
	"copydesk/internal/infrastructure/database"
	"copydesk/internal/infrastructure/export"
	"copydesk/internal/infrastructure/notify"
	"copydesk/internal/infrastructure/payments"
	"copydesk/internal/usecase"
	"copydesk/internal/usecase/interfaces"

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

	cat, err := catalog.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	stepRepo := repository2.NewWorkflowStepDynamoRepository(ddb)
	versionRepo := repository2.NewContentVersionDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	notifier := notify.NewLogDispatcher()
	exporter := export.NewJSONExporter()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(cat)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cat, notifier)
	workflowUseCase := usecase.NewWorkflowUseCase(stepRepo, orderRepo, cat, notifier)
	versionUseCase := usecase.NewVersionUseCase(versionRepo, orderRepo, notifier, exporter)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway, notifier)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	versionHandler := handlers.NewVersionHandler(versionUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, quoteHandler, orderHandler, workflowHandler, versionHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
