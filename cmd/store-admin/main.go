package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowcart/store-admin/internal/config"
	"github.com/glowcart/store-admin/internal/metrics"
	repository "github.com/glowcart/store-admin/internal/repositories"
	"github.com/glowcart/store-admin/internal/seed"
	service "github.com/glowcart/store-admin/internal/services"
	"github.com/glowcart/store-admin/internal/storage"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// In-memory stores; all domain state lives here for the session.
	repos := repository.New()

	if !cfg.SkipSeed {
		if err := seed.Load(ctx, repos); err != nil {
			slog.Error("❌ Error seeding demo data", "error", err.Error())
			os.Exit(1)
		}
	}

	sessions := storage.NewSessionStore(cfg.Session.Path)

	productService := service.NewProductService(repos.Product)
	customerService := service.NewCustomerService(repos.Customer)
	orderService := service.NewOrderService(repos.Order)
	inventoryService := service.NewInventoryService(repos.Inventory)
	userService := service.NewUserService(service.StubVerifier{}, sessions)

	slog.Info("stores initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	if user, err := userService.CurrentUser(ctx); err == nil {
		slog.Info("restored session", slog.String("email", user.Email), slog.String("role", user.Role))
	}

	logOverview(ctx, productService, customerService, orderService, inventoryService)

	// The only listener is the Prometheus endpoint; every domain
	// operation is an in-process call.
	routerMux := http.NewServeMux()
	routerMux.Handle("GET /metrics", metrics.Handler())

	server := http.Server{
		Addr:    cfg.Metrics.Addr,
		Handler: routerMux,
	}

	slog.Info("🚀 Metrics endpoint is starting...", slog.String("address", cfg.Metrics.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start metrics endpoint", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Shut down gracefully. All connections closed.")
	}

}

// logOverview emits the dashboard overview figures at startup.
func logOverview(ctx context.Context, products service.ProductService, customers service.CustomerService, orders service.OrderService, inventory service.InventoryService) {
	productList, err := products.ListProducts(ctx)
	if err != nil {
		slog.Error("overview: products unavailable", "error", err.Error())

		return
	}

	customerList, err := customers.ListCustomers(ctx)
	if err != nil {
		slog.Error("overview: customers unavailable", "error", err.Error())

		return
	}

	orderList, err := orders.ListOrders(ctx)
	if err != nil {
		slog.Error("overview: orders unavailable", "error", err.Error())

		return
	}

	var revenue float64
	for _, order := range orderList {
		revenue += order.Total
	}

	summary, err := inventory.Summary(ctx)
	if err != nil {
		slog.Error("overview: inventory unavailable", "error", err.Error())

		return
	}

	slog.Info("dashboard overview",
		slog.Int("products", len(productList)),
		slog.Int("customers", len(customerList)),
		slog.Int("orders", len(orderList)),
		slog.Float64("revenue", revenue),
		slog.Int("low_stock_alerts", summary.LowStockAlerts),
		slog.Float64("total_stock_value", summary.TotalStockValue),
	)
}
