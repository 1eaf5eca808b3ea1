package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tableside/configs"
	"tableside/controllers"
	"tableside/middlewares"
	"tableside/realtime"
	"tableside/repository"
	"tableside/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	tableRepo := repository.NewTableRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Realtime feeds
	orderFeed := realtime.NewOrderFeed(orderRepo)
	notificationFeed := realtime.NewNotificationFeed(requestRepo)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, catalogRepo, tableRepo, orderFeed)
	statsSvc := services.NewStatisticsService(orderRepo)
	catalogSvc := services.NewCatalogService(catalogRepo, tableRepo)
	tableSvc := services.NewTableService(tableRepo, catalogRepo)
	requestSvc := services.NewRequestService(db, requestRepo, tableRepo, notificationFeed)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	sessionCtrl := controllers.NewSessionController(tableSvc, cartSvc, orderSvc, requestSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	statsCtrl := controllers.NewStatisticsController(statsSvc)
	requestCtrl := controllers.NewRequestController(requestSvc)
	restaurantCtrl := controllers.NewRestaurantController(tableSvc)
	streamCtrl := controllers.NewStreamController(orderFeed, notificationFeed)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}
	r.POST("/auth/register", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), authCtrl.Register)

	// A printed QR code either deep-links to /r/:rid/t/:tid or carries just
	// the table token
	r.GET("/qr/:token", sessionCtrl.ResolveByToken)

	// Customer table session (public, scoped by QR deep-link path)
	session := r.Group("/r/:restaurantId/t/:tableId")
	{
		session.GET("", sessionCtrl.Resolve)
		session.GET("/cart", sessionCtrl.GetCart)
		session.POST("/cart/items", sessionCtrl.AddToCart)
		session.PATCH("/cart/items/:itemId", sessionCtrl.UpdateCartItem)
		session.DELETE("/cart/items/:itemId", sessionCtrl.RemoveCartItem)
		session.DELETE("/cart", sessionCtrl.ClearCart)
		session.POST("/checkout", sessionCtrl.Checkout)
		session.POST("/orders", sessionCtrl.CreateOrder)
		session.GET("/orders", sessionCtrl.ListOrders)
		session.POST("/requests", sessionCtrl.CreateRequest)
	}

	// Staff (owner/admin/kitchen)
	staff := r.Group("/staff/restaurants/:restaurantId", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "owner", "kitchen"))
	{
		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/:id", orderCtrl.Detail)
		staff.PATCH("/orders/:id/status", orderCtrl.Transition)

		staff.GET("/requests", requestCtrl.ListPending)
		staff.PATCH("/requests/:id/handle", requestCtrl.MarkHandled)
		staff.GET("/notifications", requestCtrl.ListNotifications)
		staff.PATCH("/notifications/:id/read", requestCtrl.MarkRead)
		staff.PATCH("/notifications/:id/archive", requestCtrl.Archive)
	}

	// Restaurant management (owner/admin)
	restaurants := r.Group("/staff/restaurants", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "owner"))
	{
		restaurants.GET("", restaurantCtrl.ListMine)
		restaurants.POST("", restaurantCtrl.Create)
	}

	// Management (owner/admin)
	manage := r.Group("/staff/restaurants/:restaurantId", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "owner"))
	{
		manage.PATCH("", restaurantCtrl.Update)

		manage.GET("/statistics", statsCtrl.Dashboard)

		manage.GET("/categories", catalogCtrl.ListCategories)
		manage.POST("/categories", catalogCtrl.CreateCategory)
		manage.PATCH("/categories/:id", catalogCtrl.UpdateCategory)
		manage.DELETE("/categories/:id", catalogCtrl.DeleteCategory)

		manage.GET("/menu-types", catalogCtrl.ListMenuTypes)
		manage.POST("/menu-types", catalogCtrl.CreateMenuType)
		manage.PATCH("/menu-types/:id", catalogCtrl.UpdateMenuType)
		manage.DELETE("/menu-types/:id", catalogCtrl.DeleteMenuType)

		manage.GET("/products", catalogCtrl.ListProducts)
		manage.POST("/products", catalogCtrl.CreateProduct)
		manage.PATCH("/products/:id", catalogCtrl.UpdateProduct)
		manage.DELETE("/products/:id", catalogCtrl.DeleteProduct)

		manage.GET("/tables", tableCtrl.List)
		manage.POST("/tables", tableCtrl.Create)
		manage.PATCH("/tables/:id/active", tableCtrl.SetActive)
		manage.DELETE("/tables/:id", tableCtrl.Delete)
	}

	// Realtime streams
	ws := r.Group("/ws")
	{
		ws.GET("/kitchen/:restaurantId", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin", "owner", "kitchen"), streamCtrl.KitchenStream)
		ws.GET("/notifications/:restaurantId", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin", "owner", "kitchen"), streamCtrl.NotificationStream)
		// customer stream is public, scoped to the table session
		ws.GET("/table/:restaurantId/:tableId", streamCtrl.TableStream)
	}
}
