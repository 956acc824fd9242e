package routes

import (
	"github.com/juxt-rts-design/Restaurant-backend-sub001/configs"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/controllers"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/middlewares"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/services"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services groups everything RegisterRoutes wires together; main and
// the tests build it the same way.
type Services struct {
	Session *services.SessionService
	Cart    *services.CartService
	Order   *services.OrderService
	Payment *services.PaymentService
	Invoice *services.InvoiceService
	Auth    *services.AuthService
	Menu    *services.MenuService
	Table   *services.TableService
	Hub     *ws.KitchenHub
}

// BuildServices wires repositories and services over the given DB.
func BuildServices(db *gorm.DB, cfg *configs.Config, log *zap.Logger) *Services {
	sessionRepo := repository.NewSessionRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	productRepo := repository.NewProductRepository(db)
	tableRepo := repository.NewTableRepository(db)
	userRepo := repository.NewUserRepository(db)

	hub := ws.NewKitchenHub(log)

	return &Services{
		Session: services.NewSessionService(db, sessionRepo, orderRepo, paymentRepo, log),
		Cart:    services.NewCartService(db, cartRepo, productRepo, orderRepo, hub),
		Order:   services.NewOrderService(db, orderRepo, productRepo, sessionRepo, hub, log),
		Payment: services.NewPaymentService(db, paymentRepo, orderRepo, log),
		Invoice: services.NewInvoiceService(db, invoiceRepo, orderRepo, paymentRepo, sessionRepo, tableRepo, log),
		Auth:    services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL),
		Menu:    services.NewMenuService(productRepo),
		Table:   services.NewTableService(tableRepo),
		Hub:     hub,
	}
}

func RegisterRoutes(r *gin.Engine, svcs *Services, cfg *configs.Config, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	sessionCtrl := controllers.NewSessionController(svcs.Session, log)
	cartCtrl := controllers.NewCartController(svcs.Cart, log)
	orderCtrl := controllers.NewOrderController(svcs.Order, log)
	paymentCtrl := controllers.NewPaymentController(svcs.Payment, svcs.Order, svcs.Session, log)
	invoiceCtrl := controllers.NewInvoiceController(svcs.Invoice, log)
	authCtrl := controllers.NewAuthController(svcs.Auth, log)
	menuCtrl := controllers.NewMenuController(svcs.Menu, log)
	tableCtrl := controllers.NewTableController(svcs.Table, log)

	// Auth (staff)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public customer flow (QR scan, menu, cart, order, payment)
	r.POST("/sessions/open", sessionCtrl.Open)
	r.GET("/sessions/:id", sessionCtrl.Get)
	r.GET("/sessions/:id/commandes", orderCtrl.ListForSession)
	r.GET("/menu", menuCtrl.ListProducts)
	r.GET("/menu/categories", menuCtrl.ListCategories)

	r.POST("/paniers", cartCtrl.Open)
	r.GET("/paniers/:id", cartCtrl.Get)
	r.POST("/paniers/:id/items", cartCtrl.AddItem)
	r.DELETE("/paniers/:id/items", cartCtrl.Clear)
	r.PATCH("/paniers/lignes/:id", cartCtrl.UpdateQty)
	r.DELETE("/paniers/lignes/:id", cartCtrl.RemoveItem)
	r.POST("/paniers/:id/commander", cartCtrl.CloseToOrder)

	r.POST("/commandes", orderCtrl.Create)
	r.GET("/commandes/:id", orderCtrl.Detail)
	r.POST("/paiements", paymentCtrl.Create)

	// Kitchen (cuisine/manager/admin)
	kitchen := r.Group("/kitchen", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleCuisine, entity.RoleManager, entity.RoleAdmin))
	{
		kitchen.GET("/commandes", orderCtrl.ListPending)
		kitchen.PATCH("/commandes/:id/statut", orderCtrl.UpdateStatus)
	}
	r.GET("/ws/kitchen", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleCuisine, entity.RoleManager, entity.RoleAdmin), svcs.Hub.HandleWebSocket)

	// Counter (caissier/manager/admin)
	caisse := r.Group("/caisse", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleCaissier, entity.RoleManager, entity.RoleAdmin))
	{
		caisse.POST("/paiements/validation", paymentCtrl.ValidateByCode)
		caisse.GET("/paiements/stats", paymentCtrl.Stats)
		caisse.GET("/paiements/:id", paymentCtrl.Get)
		caisse.POST("/paiements/:id/annuler", paymentCtrl.Cancel)
		caisse.POST("/paiements/:id/archiver", paymentCtrl.Archive)

		caisse.POST("/factures", invoiceCtrl.Archive)
		caisse.GET("/factures", invoiceCtrl.Search)
		caisse.GET("/factures/:numero", invoiceCtrl.GetByNumber)

		caisse.POST("/sessions/:id/close", sessionCtrl.Close)
		caisse.GET("/sessions/:id/can-close", sessionCtrl.CanClose)
		caisse.POST("/sessions/:id/auto-close", sessionCtrl.AutoClose)
	}

	// Management (manager/admin)
	gestion := r.Group("/gestion", middlewares.AuthMiddleware(cfg.JWTSecret,
		entity.RoleManager, entity.RoleAdmin))
	{
		gestion.POST("/tables", tableCtrl.Create)
		gestion.GET("/tables", tableCtrl.List)
		gestion.PATCH("/tables/:id", tableCtrl.Update)
		gestion.PATCH("/tables/:id/active", tableCtrl.SetActive)

		gestion.POST("/produits", menuCtrl.CreateProduct)
		gestion.PATCH("/produits/:id", menuCtrl.UpdateProduct)
	}

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.POST("/sessions/sweep", sessionCtrl.Sweep(cfg.SessionMaxAge))
		admin.DELETE("/factures/:id", invoiceCtrl.Delete)
	}
}
