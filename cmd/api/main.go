package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-pos-backend/internal/handler"
	"go-pos-backend/internal/middleware"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/notify"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/config"
	"go-pos-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. Load configuration
	cfg, err := config.Load(log)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Setup database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Seller{},
		&model.Category{},
		&model.Brand{},
		&model.Product{},
		&model.Sale{},
		&model.Purchase{},
		&model.Proforma{},
		&model.ProformaItem{},
		&model.Expense{},
		&model.Credit{},
		&model.Debit{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// 3. Seed default admin user
	seedAdmin(db, log)

	// 4. WebSocket hub for stock notifications
	wsHub := ws.NewHub(log)
	go wsHub.Run()
	notifier := notify.NewHubNotifier(wsHub, log)

	// 5. Dependency injection
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	proformaRepo := repository.NewProformaRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	creditRepo := repository.NewCreditRepo(db)
	debitRepo := repository.NewDebitRepo(db)
	sellerRepo := repository.NewCRUD[model.Seller](db)
	categoryRepo := repository.NewCRUD[model.Category](db)
	brandRepo := repository.NewCRUD[model.Brand](db)

	authService := service.NewAuthService(userRepo, log)
	productService := service.NewProductService(productRepo, purchaseRepo, sellerRepo, db, notifier, log)
	saleService := service.NewSaleService(saleRepo, productRepo, db, notifier, log)
	purchaseService := service.NewPurchaseService(purchaseRepo, productRepo, db)
	proformaService := service.NewProformaService(proformaRepo, productRepo, db)
	expenseService := service.NewExpenseService(expenseRepo)
	creditService := service.NewCreditService(creditRepo)
	debitService := service.NewDebitService(debitRepo)
	reportService := service.NewReportService(saleRepo, productRepo, purchaseRepo, expenseRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	saleHandler := handler.NewSaleHandler(saleService, reportService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	proformaHandler := handler.NewProformaHandler(proformaService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	creditHandler := handler.NewCreditHandler(creditService)
	debitHandler := handler.NewDebitHandler(debitService)
	sellerHandler := handler.NewSellerHandler(sellerRepo)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	brandHandler := handler.NewBrandHandler(brandRepo)

	// 6. Fiber app
	app := fiber.New(fiber.Config{
		AppName: "POS Backend v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	staff := middleware.RequireRole(model.RoleAdmin, model.RoleKeeper)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// Products. Stock is never edited directly; it moves through sales,
	// purchases, proformas, and the add endpoint.
	protected.Get("/products", productHandler.GetAll)
	protected.Get("/products/totals", productHandler.Totals)
	protected.Get("/products/valuation", productHandler.Valuation)
	protected.Get("/products/:id", productHandler.GetByID)
	protected.Post("/products", staff, productHandler.Create)
	protected.Put("/products/:id", staff, productHandler.Update)
	protected.Patch("/products/:id/add", staff, productHandler.AddToStock)
	protected.Delete("/products/bulk", adminOnly, productHandler.BulkDelete)
	protected.Delete("/products/:id", adminOnly, productHandler.Delete)

	// Sales and period reports
	protected.Get("/sales", saleHandler.GetAll)
	protected.Get("/sales/days", saleHandler.Daily)
	protected.Get("/sales/weeks", saleHandler.Weekly)
	protected.Get("/sales/months", saleHandler.Monthly)
	protected.Get("/sales/years", saleHandler.Yearly)
	protected.Get("/sales/:id", saleHandler.GetByID)
	protected.Post("/sales", saleHandler.Create)

	// Purchases
	protected.Get("/purchases", purchaseHandler.GetAll)
	protected.Post("/purchases", staff, purchaseHandler.Create)

	// Proformas
	protected.Get("/proformas", proformaHandler.GetAll)
	protected.Get("/proformas/:id", proformaHandler.GetByID)
	protected.Post("/proformas", proformaHandler.Create)
	protected.Put("/proformas/:id", proformaHandler.Update)
	protected.Patch("/proformas/:id/status", proformaHandler.UpdateStatus)
	protected.Delete("/proformas/:id", proformaHandler.Delete)

	// Expense / credit / debit ledgers
	protected.Get("/expenses", expenseHandler.GetAll)
	protected.Get("/expenses/summary", expenseHandler.Summary)
	protected.Get("/expenses/:id", expenseHandler.GetByID)
	protected.Post("/expenses", expenseHandler.Create)
	protected.Put("/expenses/:id", expenseHandler.Update)
	protected.Delete("/expenses/:id", expenseHandler.Delete)

	protected.Get("/credits", creditHandler.GetAll)
	protected.Get("/credits/summary", creditHandler.Summary)
	protected.Get("/credits/:id", creditHandler.GetByID)
	protected.Post("/credits", creditHandler.Create)
	protected.Put("/credits/:id", creditHandler.Update)
	protected.Delete("/credits/:id", creditHandler.Delete)

	protected.Get("/debits", debitHandler.GetAll)
	protected.Get("/debits/summary", debitHandler.Summary)
	protected.Get("/debits/:id", debitHandler.GetByID)
	protected.Post("/debits", debitHandler.Create)
	protected.Put("/debits/:id", debitHandler.Update)
	protected.Delete("/debits/:id", debitHandler.Delete)

	// Catalog
	protected.Get("/sellers", sellerHandler.GetAll)
	protected.Get("/sellers/:id", sellerHandler.GetByID)
	protected.Post("/sellers", staff, sellerHandler.Create)
	protected.Put("/sellers/:id", staff, sellerHandler.Update)
	protected.Delete("/sellers/:id", adminOnly, sellerHandler.Delete)

	protected.Get("/categories", categoryHandler.GetAll)
	protected.Post("/categories", staff, categoryHandler.Create)
	protected.Put("/categories/:id", staff, categoryHandler.Update)
	protected.Delete("/categories/:id", adminOnly, categoryHandler.Delete)

	protected.Get("/brands", brandHandler.GetAll)
	protected.Post("/brands", staff, brandHandler.Create)
	protected.Put("/brands/:id", staff, brandHandler.Update)
	protected.Delete("/brands/:id", adminOnly, brandHandler.Delete)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

// seedAdmin creates a default admin account on first boot
func seedAdmin(db *gorm.DB, log *logrus.Logger) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Warnf("Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Warnf("Failed to create admin user: %v", err)
		return
	}
	log.Info("Admin user created: admin@example.com / admin123")
}
