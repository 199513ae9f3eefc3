package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tillpoint-api/internal/application/service"
	"github.com/sangkips/tillpoint-api/internal/config"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
	"github.com/sangkips/tillpoint-api/internal/infrastructure/printing"
	infraRegistry "github.com/sangkips/tillpoint-api/internal/infrastructure/registry"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/handler"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/routes"
	"github.com/sangkips/tillpoint-api/pkg/printer"
	"github.com/sangkips/tillpoint-api/pkg/utils"
)

func main() {
	demo := flag.Bool("demo", false, "run a scripted sale on the console instead of serving HTTP")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the external systems the terminal talks to
	itemRegistry := infraRegistry.NewItemRegistry()
	discountRegistry := infraRegistry.NewDiscountRegistry()
	accountingSystem := infraRegistry.NewLogAccountingSystem()

	// Initialize thermal printer
	printerType := cfg.Printer.Type
	if *demo {
		printerType = "console"
	}
	transport, err := printer.NewPrinterFromConfig(
		printerType,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		transport = printer.NewNullPrinter()
		printerType = "none"
	}
	receiptPrinter := printing.NewTerminalPrinter(transport, printerType, cfg.Store.Name, cfg.Printer.Width)

	// Initialize services
	saleService := service.NewSaleService(itemRegistry, discountRegistry, receiptPrinter, accountingSystem)
	statsService := service.NewStatsService()
	saleService.RegisterObserver(statsService)

	if *demo {
		runDemo(saleService)
		return
	}

	// Initialize JWT manager and auth
	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	passwordHash, err := service.HashPassword(cfg.Auth.Password)
	if err != nil {
		log.Fatalf("Failed to hash cashier password: %v", err)
	}
	authService := service.NewAuthService(cfg.Auth.Cashier, passwordHash, jwtManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Sale:      handler.NewSaleHandler(saleService),
		Catalog:   handler.NewCatalogHandler(itemRegistry),
		Printer:   handler.NewPrinterHandler(receiptPrinter),
		Dashboard: handler.NewDashboardHandler(saleService, statsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// runDemo drives one scripted sale through the service, printing the
// running totals and the final receipt to the console.
func runDemo(saleService *service.SaleService) {
	fmt.Println("--- Scripted sale ---")
	saleService.StartNewSale()

	entries := []struct {
		itemID   string
		quantity int
	}{
		{"1", 1},
		{"1", 1},
		{"3", 1},
		{"2", 1},
	}
	for _, e := range entries {
		entered, err := saleService.EnterItem(e.itemID, e.quantity)
		if err != nil {
			log.Fatalf("enter item %s: %v", e.itemID, err)
		}
		label := ""
		if entered.Duplicate {
			label = " (again)"
		}
		fmt.Printf("Entered %s%s, running total %s\n", entered.Item.Name, label, entered.RunningTotal)
	}

	total, err := saleService.EndSale()
	if err != nil {
		log.Fatalf("end sale: %v", err)
	}
	fmt.Printf("Sale ended, total %s\n", total)

	discounted, err := saleService.RequestDiscount("1001")
	if err != nil {
		log.Fatalf("request discount: %v", err)
	}
	fmt.Printf("Discount applied for customer 1001, total %s\n", discounted)

	result, err := saleService.ProcessPayment(money.NewFromFloat(100.0))
	if err != nil {
		log.Fatalf("process payment: %v", err)
	}
	fmt.Printf("Paid 100.00 %s, change %s\n", money.Currency, result.Change)
}
