package routes

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	_ "github.com/ChumaGrandmaster/chuma-grandmaster-webapp/docs"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/adapter/http/handlers"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/adapter/http/middleware"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/adapter/persistence/repository"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/infrastructure/database"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/infrastructure/mail"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/usecase"
	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/usecase/interfaces"
)

var router = gin.New()

const defaultPort = 8080

// Run wires the application and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation and Prometheus scrape endpoints
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	port, err := getenvIntDefault("PORT", defaultPort)
	if err != nil {
		log.Fatalf("Invalid PORT: %v", err)
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes() {
	repo := buildRepository()
	notifier := buildNotifier()

	quoteUseCase := usecase.NewQuoteUseCase(repo, notifier)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// The intake endpoint gets a tighter per-client budget than the
	// blanket limiter applied in setMiddlewares.
	createLimit := newLimiterFromEnv("CREATE_RATE_LIMIT_PER_MINUTE", 5)

	root := router.Group("")
	addPingRoutes(root)
	addQuoteRoutes(root, quoteHandler, createLimit.Middleware())
}

// buildRepository selects the record store. The JSON file store is the
// default; QUOTES_STORE=dynamodb switches to the DynamoDB-backed one.
func buildRepository() interfaces.IQuoteRepository {
	if getenvDefault("QUOTES_STORE", "file") == "dynamodb" {
		log.Printf("[quote][store] using dynamodb store")
		return repository.NewQuoteDynamoRepository(database.ConnectDynamoDB())
	}
	return repository.NewQuoteFileRepository("")
}

func buildNotifier() interfaces.INotifier {
	n, err := mail.NewSMTPNotifierFromEnv()
	if err != nil {
		log.Printf("Quote notifier not configured: %v", err)
		return nil
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Metrics())
	router.Use(newLimiterFromEnv("RATE_LIMIT_PER_MINUTE", 60).Middleware())
}

// newLimiterFromEnv builds a per-client limiter refilling n tokens per
// minute with a burst of n.
func newLimiterFromEnv(key string, def int) *middleware.RateLimiter {
	n, err := getenvIntDefault(key, def)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s, using default %d", key, def)
		n = def
	}
	return middleware.NewRateLimiter(rate.Every(time.Minute/time.Duration(n)), n)
}
