package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/Katrinaqr/menu-RestApi/docs" // Import generated docs
	"github.com/Katrinaqr/menu-RestApi/internal/config"
	"github.com/Katrinaqr/menu-RestApi/internal/controllers"
	"github.com/Katrinaqr/menu-RestApi/internal/database"
	"github.com/Katrinaqr/menu-RestApi/internal/importer"
	"github.com/Katrinaqr/menu-RestApi/internal/middleware"
	"github.com/Katrinaqr/menu-RestApi/internal/models"
	"github.com/Katrinaqr/menu-RestApi/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// importTimeout bounds the startup seed import.
const importTimeout = 5 * time.Minute

var (
	db             *gorm.DB
	menuService    services.MenuService
	userService    services.UserService
	menuController controllers.MenuController
	authController *controllers.AuthController
	configuration  *config.Config
)

// @title Menu REST API
// @version 1.0
// @description A pizzeria menu catalog API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	menuService = services.NewMenuService(db)
	userService = services.NewUserService(db)
	menuController = controllers.NewMenuController(menuService)
	authController = controllers.NewAuthController(userService, configuration.JWTSecret)

	// Seed the catalog before accepting any traffic
	seedCatalog(configuration)
	ensureOwner(configuration)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection and migrates the catalog schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.Init(database.Config{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Weight{},
		&models.Dish{},
		&models.MenuEntry{},
		&models.User{},
	)
	checkPanicErr(err)
	return db
}

// seedCatalog runs the one-time menu import. A failed import aborts
// startup: running with a half-seeded catalog would freeze the emptiness
// guard and never be repaired.
func seedCatalog(conf *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	if err := importer.New(db, conf.MenuSourceURL).Run(ctx); err != nil {
		log.Fatalf("Menu import failed, refusing to start with a partial catalog: %v", err)
	}
}

// ensureOwner creates the initial owner account on a fresh database
func ensureOwner(conf *config.Config) {
	if err := userService.EnsureOwner(conf.OwnerName, conf.OwnerEmail, conf.OwnerPassword); err != nil {
		log.Fatalf("Failed to provision owner account: %v", err)
	}
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Public catalog routes
	router.GET("/menu", menuController.GetMenu)
	router.GET("/menu/:category", menuController.GetCategory)
	router.GET("/menu/:category/cheap", menuController.GetCheapPizzas)
	router.GET("/menu/:category/expensive", menuController.GetExpensivePizzas)

	// Account routes
	router.POST("/user", authController.Register)
	router.POST("/login", authController.Login)

	// Mutating catalog routes (requires a bearer token with an owner or
	// admin role; ownership of individual entries is checked per handler)
	protected := router.Group("/menu")
	protected.Use(middleware.JWTAuth([]byte(configuration.JWTSecret)))
	protected.Use(middleware.RequireRole(models.RoleOwner, models.RoleAdmin))
	{
		protected.POST("", menuController.CreateEntry)
		protected.PUT("/:id", menuController.UpdateEntry)
		protected.DELETE("/:id", menuController.DeleteEntry)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "menu-rest-api",
	})
}
