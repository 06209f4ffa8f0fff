package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "storefront/internal/app"
	"storefront/internal/handlers/rest/address_delete"
	"storefront/internal/handlers/rest/address_post"
	"storefront/internal/handlers/rest/addresses_get"
	"storefront/internal/handlers/rest/advertisement_delete"
	"storefront/internal/handlers/rest/advertisement_post"
	"storefront/internal/handlers/rest/advertisement_put"
	"storefront/internal/handlers/rest/advertisements_active_get"
	"storefront/internal/handlers/rest/advertisements_get"
	"storefront/internal/handlers/rest/cart_get"
	"storefront/internal/handlers/rest/cart_item_delete"
	"storefront/internal/handlers/rest/cart_item_post"
	"storefront/internal/handlers/rest/cart_item_put"
	"storefront/internal/handlers/rest/checkout_post"
	"storefront/internal/handlers/rest/coupon_apply_post"
	"storefront/internal/handlers/rest/coupon_delete"
	"storefront/internal/handlers/rest/coupon_post"
	"storefront/internal/handlers/rest/coupon_put"
	"storefront/internal/handlers/rest/coupons_get"
	"storefront/internal/handlers/rest/coupons_user_get"
	"storefront/internal/handlers/rest/healthcheck_head"
	"storefront/internal/handlers/rest/login_post"
	"storefront/internal/handlers/rest/order_cancel_post"
	"storefront/internal/handlers/rest/order_status_admin_put"
	"storefront/internal/handlers/rest/orders_admin_get"
	"storefront/internal/handlers/rest/orders_get"
	"storefront/internal/handlers/rest/otp_send_post"
	"storefront/internal/handlers/rest/otp_verify_post"
	"storefront/internal/handlers/rest/password_reset_post"
	"storefront/internal/handlers/rest/payment_verify_post"
	"storefront/internal/handlers/rest/ping_get"
	"storefront/internal/handlers/rest/product_admin_delete"
	"storefront/internal/handlers/rest/product_admin_post"
	"storefront/internal/handlers/rest/product_admin_put"
	"storefront/internal/handlers/rest/product_get"
	"storefront/internal/handlers/rest/products_by_category_get"
	"storefront/internal/handlers/rest/products_get"
	"storefront/internal/handlers/rest/profile_get"
	"storefront/internal/handlers/rest/profile_put"
	"storefront/internal/handlers/rest/review_post"
	"storefront/internal/handlers/rest/reviews_get"
	"storefront/internal/handlers/rest/signup_post"
	"storefront/internal/handlers/rest/users_get"
	"storefront/internal/handlers/rest/variant_admin_post"
	"storefront/internal/handlers/rest/warehouse_delete"
	"storefront/internal/handlers/rest/warehouse_post"
	"storefront/internal/handlers/rest/warehouse_put"
	"storefront/internal/handlers/rest/warehouses_get"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/dotenv"
	metrics_system "storefront/internal/pkg/metrics"
	authmw "storefront/internal/pkg/middlewares/auth"
	"storefront/internal/pkg/middlewares/graceful_shutdown"
	"storefront/internal/pkg/middlewares/metrics"
	"storefront/internal/pkg/middlewares/rate_limiter"
	"storefront/internal/pkg/middlewares/timeout"
	"storefront/internal/pkg/postgres"
	"storefront/pkg/authtoken"
	"storefront/pkg/logger"
	"storefront/pkg/logger/zap_adapter"
	"storefront/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting storefront application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	tokens := authtoken.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, tokens, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, tokens, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, tokens *authtoken.Issuer, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/auth/signup", signup_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/login", login_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/otp/send", otp_send_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/otp/verify", otp_verify_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/password/reset", password_reset_post.New(log, app.ServiceAuth)).Methods("POST")

	router.Handle("/products", products_get.New(log, app.ServiceCatalog)).Methods("GET")
	router.Handle("/products/category/{category}", products_by_category_get.New(log, app.ServiceCatalog)).Methods("GET")
	router.Handle("/products/{id}", product_get.New(log, app.ServiceCatalog)).Methods("GET")
	router.Handle("/products/{id}/reviews", reviews_get.New(log, app.ServiceCatalog)).Methods("GET")

	router.Handle("/warehouses", warehouses_get.New(log, app.ServiceWarehouse)).Methods("GET")
	router.Handle("/advertisements", advertisements_active_get.New(log, app.ServiceAdvertisement)).Methods("GET")
	router.Handle("/coupons", coupons_user_get.New(log, app.ServiceCoupon)).Methods("GET")

	// авторизованная зона
	authed := router.NewRoute().Subrouter()
	authed.Use(authmw.Middleware(log, tokens))

	authed.Handle("/profile", profile_get.New(log, app.ServiceUser)).Methods("GET")
	authed.Handle("/profile", profile_put.New(log, app.ServiceUser)).Methods("PUT")
	authed.Handle("/profile/addresses", addresses_get.New(log, app.ServiceUser)).Methods("GET")
	authed.Handle("/profile/addresses", address_post.New(log, app.ServiceUser)).Methods("POST")
	authed.Handle("/profile/addresses/{id}", address_delete.New(log, app.ServiceUser)).Methods("DELETE")

	authed.Handle("/cart", cart_get.New(log, app.ServiceCart)).Methods("GET")
	authed.Handle("/cart/items", cart_item_post.New(log, app.ServiceCart)).Methods("POST")
	authed.Handle("/cart/items", cart_item_put.New(log, app.ServiceCart)).Methods("PUT")
	authed.Handle("/cart/items/{productId}/{variantId}", cart_item_delete.New(log, app.ServiceCart)).Methods("DELETE")

	authed.Handle("/checkout", checkout_post.New(log, app.ServiceOrder)).Methods("POST")
	authed.Handle("/payment/verify", payment_verify_post.New(log, app.ServiceOrder)).Methods("POST")
	authed.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	authed.Handle("/orders/{id}/cancel", order_cancel_post.New(log, app.ServiceOrder)).Methods("POST")

	authed.Handle("/products/{id}/reviews", review_post.New(log, app.ServiceCatalog)).Methods("POST")
	authed.Handle("/coupons/apply", coupon_apply_post.New(log, app.ServiceCoupon)).Methods("POST")

	// администраторская зона
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(authmw.Middleware(log, tokens))
	admin.Use(authmw.RequireAdmin)

	admin.Handle("/products", product_admin_post.New(log, app.ServiceCatalog)).Methods("POST")
	admin.Handle("/products/{id}", product_admin_put.New(log, app.ServiceCatalog)).Methods("PUT")
	admin.Handle("/products/{id}", product_admin_delete.New(log, app.ServiceCatalog)).Methods("DELETE")
	admin.Handle("/products/{id}/variants", variant_admin_post.New(log, app.ServiceCatalog)).Methods("POST")

	admin.Handle("/orders", orders_admin_get.New(log, app.ServiceOrder)).Methods("GET")
	admin.Handle("/orders/{id}/status", order_status_admin_put.New(log, app.ServiceOrder)).Methods("PUT")

	admin.Handle("/coupons", coupons_get.New(log, app.ServiceCoupon)).Methods("GET")
	admin.Handle("/coupons", coupon_post.New(log, app.ServiceCoupon)).Methods("POST")
	admin.Handle("/coupons/{id}", coupon_put.New(log, app.ServiceCoupon)).Methods("PUT")
	admin.Handle("/coupons/{id}", coupon_delete.New(log, app.ServiceCoupon)).Methods("DELETE")

	admin.Handle("/warehouses", warehouse_post.New(log, app.ServiceWarehouse)).Methods("POST")
	admin.Handle("/warehouses/{id}", warehouse_put.New(log, app.ServiceWarehouse)).Methods("PUT")
	admin.Handle("/warehouses/{id}", warehouse_delete.New(log, app.ServiceWarehouse)).Methods("DELETE")

	admin.Handle("/advertisements", advertisements_get.New(log, app.ServiceAdvertisement)).Methods("GET")
	admin.Handle("/advertisements", advertisement_post.New(log, app.ServiceAdvertisement)).Methods("POST")
	admin.Handle("/advertisements/{id}", advertisement_put.New(log, app.ServiceAdvertisement)).Methods("PUT")
	admin.Handle("/advertisements/{id}", advertisement_delete.New(log, app.ServiceAdvertisement)).Methods("DELETE")

	admin.Handle("/users", users_get.New(log, app.ServiceUser)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
