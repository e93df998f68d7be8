package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dronexpress/console-api/config"
	"github.com/dronexpress/console-api/controllers"
	"github.com/dronexpress/console-api/middleware"
	"github.com/dronexpress/console-api/services"
	"github.com/dronexpress/console-api/session"
)

func main() {
	// Basic logging
	log.Println("Starting drone delivery console...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := buildRouter(cfg)

	port := ":" + cfg.Port
	log.Printf("Console is running on http://localhost%s (platform: %s)", port, cfg.PlatformAPIURL)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildRouter wires the gateway, services, controllers and guarded route
// groups into a Gin engine.
func buildRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	gateway := services.NewGateway(cfg)
	orderSvc := services.NewOrderService(gateway)
	customerSvc := services.NewCustomerService(gateway)
	productSvc := services.NewProductService(gateway)
	centerSvc := services.NewCenterService(gateway)
	userSvc := services.NewUserService(gateway)
	transactionSvc := services.NewTransactionService(gateway)
	authSvc := services.NewAuthService(gateway)

	sessionOpts := session.DefaultOptions()
	sessionOpts.Secure = cfg.CookieSecure
	newSession := func(w http.ResponseWriter, r *http.Request) *session.Store {
		return session.NewStore(session.NewCookieStorage(w, r, sessionOpts))
	}

	registry := controllers.NewRegistry(orderSvc, customerSvc)
	orders := controllers.NewOrderController(registry)
	customers := controllers.NewCustomerController(customerSvc)
	products := controllers.NewProductController(productSvc)
	centers := controllers.NewCenterController(centerSvc)
	users := controllers.NewUserController(userSvc)
	transactions := controllers.NewTransactionController(transactionSvc)
	auth := controllers.NewAuthController(authSvc, newSession)

	// Health check endpoint
	router.GET("/health", healthCheck)

	router.POST("/auth/login", auth.Login)
	router.POST("/auth/register", auth.Register)
	router.POST("/auth/logout", auth.Logout)

	protected := router.Group("/", middleware.RequireSession(newSession))

	admin := protected.Group("/admin")
	{
		registerOrderRoutes(admin.Group("/orders"), orders)
		registerResourceRoutes(admin.Group("/users"), users.List, users.Create, users.Update, users.Deactivate)
		registerResourceRoutes(admin.Group("/customers"), customers.List, customers.Create, customers.Update, customers.Deactivate)
		registerResourceRoutes(admin.Group("/products"), products.List, products.Create, products.Update, products.Deactivate)
		registerResourceRoutes(admin.Group("/distribution-centers"), centers.List, centers.Create, centers.Update, centers.Deactivate)
		admin.GET("/credit-transactions", transactions.List)
		admin.POST("/credit-transactions", transactions.Create)
	}

	customer := protected.Group("/customer")
	{
		registerOrderRoutes(customer.Group("/orders"), orders)
		customer.GET("/products", products.List)
		customer.GET("/profile", customers.Me)
	}

	return router
}

// registerOrderRoutes mounts the order workflow under one role prefix.
func registerOrderRoutes(g *gin.RouterGroup, o *controllers.OrderController) {
	g.GET("", o.List)
	g.POST("", o.Create)
	g.PUT("/:id/edit", o.Edit)
	g.GET("/:id/summary", o.Summary)
	g.DELETE("/:id/summary", o.Dismiss)
	g.PATCH("/:id/confirm", o.Confirm)
	g.PATCH("/:id/cancel", o.Cancel)
	g.PATCH("/:id/deliver", o.Deliver)
	g.GET("/:id/route", o.Route)
	g.GET("/:id/route.svg", o.RouteSVG)
}

// registerResourceRoutes mounts the uniform CRUD surface of one resource.
func registerResourceRoutes(g *gin.RouterGroup, list, create, update, deactivate gin.HandlerFunc) {
	g.GET("", list)
	g.POST("", create)
	g.PUT("/:id", update)
	g.PATCH("/:id/deactivate", deactivate)
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Drone delivery console is running",
	})
}
