package main

import (
	"log"

	"storefront-be/internal/auth"
	"storefront-be/internal/config"
	"storefront-be/internal/db"
	"storefront-be/internal/logger"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatalf("token manager: %v", err)
	}

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)
	productHandler := product.NewHandler(productSvc)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, tokens)
	userHandler := user.NewHandler(userSvc)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productRepo)
	orderHandler := order.NewHandler(orderSvc)

	router := newRouter(cfg, tokens, userHandler, productHandler, orderHandler)

	log.Printf("server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}

func newRouter(
	cfg *config.Config,
	tokens *auth.TokenManager,
	users *user.Handler,
	products *product.Handler,
	orders *order.Handler,
) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		logger.RequestIDMiddleware(),
		logger.LoggingMiddleware(),
		cors.Default(),
		middleware.NewRateLimiter().Middleware(),
	)

	authed := middleware.Authenticate(tokens)
	adminOnly := middleware.RequireRole(auth.RoleAdmin, auth.RoleSuperadmin)
	superadminOnly := middleware.RequireRole(auth.RoleSuperadmin)

	api := router.Group("/api")

	u := api.Group("/users")
	u.POST("/register", users.Register)
	u.POST("/login", users.Login)
	u.GET("/profile", authed, users.GetProfile)
	u.PUT("/profile", authed, users.UpdateProfile)
	u.GET("", authed, adminOnly, users.List)
	u.DELETE("/:id", authed, superadminOnly, users.Delete)

	p := api.Group("/products")
	p.GET("", products.List)
	p.GET("/:id", products.Get)
	p.POST("", authed, adminOnly, products.Create)
	p.PUT("/:id", authed, adminOnly, products.Update)
	p.DELETE("/:id", authed, adminOnly, products.Delete)

	o := api.Group("/orders", authed)
	o.POST("", orders.Create)
	o.GET("/my-orders", orders.ListMine)
	o.GET("/:id", orders.Get)
	o.GET("", adminOnly, orders.ListAll)
	o.PATCH("/:id/status", adminOnly, orders.UpdateStatus)
	o.POST("/:id/cancel", orders.Cancel)

	return router
}
