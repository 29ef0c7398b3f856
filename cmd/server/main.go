package main

import (
	"strconv"

	"lifecompass/config"
	"lifecompass/controllers"
	"lifecompass/db"
	"lifecompass/logger"
	"lifecompass/middlewares"
	"lifecompass/routes"
	"lifecompass/services"
	"lifecompass/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	utils.SetJWTSecret(cfg.JWT.Secret)
	controllers.SetLogger(log)

	if err := services.InitStrategyService(cfg, log); err != nil {
		log.Fatal("Failed to init strategy service", zap.Error(err))
	}

	// Persistence is optional: without a database URI the service runs
	// generation-only and the saved-strategy routes are not registered.
	persistence := cfg.Database.URI != ""
	if persistence {
		if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
			log.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		log.Info("Connected to MongoDB")
	} else {
		log.Warn("No database URI configured, saved strategies disabled")
	}

	router := setupRouter(cfg, persistence)
	port := strconv.Itoa(cfg.Server.Port)
	log.Info("Server starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}

func setupRouter(cfg *config.Config, persistence bool) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
	}))
	router.Use(middlewares.RequestID())
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupStrategyRoutes(router)

	if persistence {
		auth := router.Group("/")
		auth.Use(middlewares.AuthMiddleware())
		routes.SetupSavedStrategyRoutes(auth)
	}

	return router
}
