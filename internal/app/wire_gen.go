// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"storefront/internal/gateway/mailer"
	"storefront/internal/gateway/razorpay"
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
	"storefront/internal/handlers/rest/login_post"
	"storefront/internal/handlers/rest/order_cancel_post"
	"storefront/internal/handlers/rest/order_status_admin_put"
	"storefront/internal/handlers/rest/orders_admin_get"
	"storefront/internal/handlers/rest/orders_get"
	"storefront/internal/handlers/rest/otp_send_post"
	"storefront/internal/handlers/rest/otp_verify_post"
	"storefront/internal/handlers/rest/password_reset_post"
	"storefront/internal/handlers/rest/payment_verify_post"
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
	"storefront/internal/handlers/tasks/coupon_expiry"
	"storefront/internal/handlers/tasks/otp_cleanup"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/factory/payment_handle"
	"storefront/internal/repository/advertisement"
	"storefront/internal/repository/cart"
	"storefront/internal/repository/coupon"
	"storefront/internal/repository/order"
	"storefront/internal/repository/product"
	"storefront/internal/repository/review"
	"storefront/internal/repository/user"
	"storefront/internal/repository/warehouse"
	advertisement2 "storefront/internal/service/advertisement"
	"storefront/internal/service/auth"
	cart2 "storefront/internal/service/cart"
	"storefront/internal/service/catalog"
	coupon2 "storefront/internal/service/coupon"
	order2 "storefront/internal/service/order"
	user2 "storefront/internal/service/user"
	warehouse2 "storefront/internal/service/warehouse"
	"storefront/pkg/authtoken"
	"storefront/pkg/background"
	"storefront/pkg/logger"
	"storefront/pkg/querier"
	"storefront/pkg/tx"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, tokens *authtoken.Issuer, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideUserRepository(querier)
	logMailer := provideMailer(log)
	auth := provideServiceAuth(repository, tokens, logMailer)
	user := provideServiceUser(repository)
	productRepository := provideProductRepository(querier)
	reviewRepository := provideReviewRepository(querier)
	manager := provideTxManager(pool)
	catalog := provideServiceCatalog(productRepository, reviewRepository, manager)
	cartRepository := provideCartRepository(querier)
	cart := provideServiceCart(cartRepository, catalog, manager)
	orderRepository := provideOrderRepository(querier)
	couponRepository := provideCouponRepository(querier)
	coupon := provideServiceCoupon(couponRepository, manager)
	gateway := provideRazorpayGateway(log, cfg)
	service := provideServiceOrder(orderRepository, cart, catalog, coupon, gateway, manager)
	warehouseRepository := provideWarehouseRepository(querier)
	warehouse := provideServiceWarehouse(warehouseRepository)
	advertisementRepository := provideAdvertisementRepository(querier)
	advertisement := provideServiceAdvertisement(advertisementRepository)
	otpCleanupInterval := provideOTPCleanupInterval(cfg)
	otpCleanup := provideOTPCleanupTask(log, auth, otpCleanupInterval)
	couponExpiryInterval := provideCouponExpiryInterval(cfg)
	couponExpiry := provideCouponExpiryTask(log, coupon, couponExpiryInterval)
	v := provideTaskList(otpCleanup, couponExpiry)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceAuth:          auth,
		ServiceUser:          user,
		ServiceCatalog:       catalog,
		ServiceCart:          cart,
		ServiceOrder:         service,
		ServiceCoupon:        coupon,
		ServiceWarehouse:     warehouse,
		ServiceAdvertisement: advertisement,
		BackgroundWorkers:    worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	cartRepository := provideCartRepository(querier)
	productRepository := provideProductRepository(querier)
	reviewRepository := provideReviewRepository(querier)
	manager := provideTxManager(pool)
	catalog := provideServiceCatalog(productRepository, reviewRepository, manager)
	cart := provideServiceCart(cartRepository, catalog, manager)
	couponRepository := provideCouponRepository(querier)
	coupon := provideServiceCoupon(couponRepository, manager)
	gateway := provideRazorpayGateway(log, cfg)
	service := provideServiceOrder(repository, cart, catalog, coupon, gateway, manager)
	statusHandlerFactory := provideStatusHandlerFactory(service)
	kafkaWorkerApp := &KafkaWorkerApp{
		HandlerFactory: statusHandlerFactory,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type (
	OTPCleanupInterval   time.Duration
	CouponExpiryInterval time.Duration
)

type Application struct {
	ServiceAuth          ServiceAuth
	ServiceUser          ServiceUser
	ServiceCatalog       ServiceCatalog
	ServiceCart          ServiceCart
	ServiceOrder         ServiceOrder
	ServiceCoupon        ServiceCoupon
	ServiceWarehouse     ServiceWarehouse
	ServiceAdvertisement ServiceAdvertisement
	BackgroundWorkers    *background.Worker
}

type ServiceAuth interface {
	signup_post.Service
	login_post.Service
	otp_send_post.Service
	otp_verify_post.Service
	password_reset_post.Service
}

type ServiceUser interface {
	users_get.Service
	profile_get.Service
	profile_put.Service
	addresses_get.Service
	address_post.Service
	address_delete.Service
}

type ServiceCatalog interface {
	products_get.Service
	product_get.Service
	products_by_category_get.Service
	product_admin_post.Service
	product_admin_put.Service
	product_admin_delete.Service
	variant_admin_post.Service
	reviews_get.Service
	review_post.Service
}

type ServiceCart interface {
	cart_get.Service
	cart_item_post.Service
	cart_item_put.Service
	cart_item_delete.Service
}

type ServiceOrder interface {
	checkout_post.Service
	payment_verify_post.Service
	orders_get.Service
	order_cancel_post.Service
	orders_admin_get.Service
	order_status_admin_put.Service
}

type ServiceCoupon interface {
	coupons_get.Service
	coupons_user_get.Service
	coupon_apply_post.Service
	coupon_post.Service
	coupon_put.Service
	coupon_delete.Service
}

type ServiceWarehouse interface {
	warehouses_get.Service
	warehouse_post.Service
	warehouse_put.Service
	warehouse_delete.Service
}

type ServiceAdvertisement interface {
	advertisements_get.Service
	advertisements_active_get.Service
	advertisement_post.Service
	advertisement_put.Service
	advertisement_delete.Service
}

type KafkaWorkerApp struct {
	HandlerFactory *payment_handle.StatusHandlerFactory
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier2 *querier.Querier) *user.Repository {
	return user.New(querier2)
}

func provideProductRepository(querier2 *querier.Querier) *product.Repository {
	return product.New(querier2)
}

func provideReviewRepository(querier2 *querier.Querier) *review.Repository {
	return review.New(querier2)
}

func provideCartRepository(querier2 *querier.Querier) *cart.Repository {
	return cart.New(querier2)
}

func provideOrderRepository(querier2 *querier.Querier) *order.Repository {
	return order.New(querier2)
}

func provideCouponRepository(querier2 *querier.Querier) *coupon.Repository {
	return coupon.New(querier2)
}

func provideWarehouseRepository(querier2 *querier.Querier) *warehouse.Repository {
	return warehouse.New(querier2)
}

func provideAdvertisementRepository(querier2 *querier.Querier) *advertisement.Repository {
	return advertisement.New(querier2)
}

func provideMailer(log logger.Logger) *mailer.LogMailer {
	return mailer.NewLogMailer(log)
}

func provideRazorpayGateway(log logger.Logger, cfg *config.Config) *razorpay.Gateway {
	return razorpay.New(log, &cfg.Razorpay)
}

func provideServiceAuth(
	repository auth.Repository,
	tokens auth.TokenIssuer,
	mail auth.Mailer,
) *auth.Auth {
	return auth.New(repository, tokens, mail)
}

func provideServiceUser(repository user2.Repository) *user2.User {
	return user2.New(repository)
}

func provideServiceCatalog(
	repository catalog.Repository,
	reviews catalog.ReviewRepository,
	txManager catalog.TxManager,
) *catalog.Catalog {
	return catalog.New(repository, reviews, txManager)
}

func provideServiceCart(
	repository cart2.Repository,
	variants cart2.VariantReader,
	txManager cart2.TxManager,
) *cart2.Cart {
	return cart2.New(repository, variants, txManager)
}

func provideServiceOrder(
	repository order2.Repository, cart3 order2.CartService,

	stock order2.StockKeeper,
	coupons order2.CouponRedeemer,
	gateway order2.PaymentGateway,
	txManager order2.TxManager,
) *order2.Service {
	return order2.New(repository, cart3, stock, coupons, gateway, txManager)
}

func provideServiceCoupon(
	repository coupon2.Repository,
	txManager coupon2.TxManager,
) *coupon2.Coupon {
	return coupon2.New(repository, txManager)
}

func provideServiceWarehouse(repository warehouse2.Repository) *warehouse2.Warehouse {
	return warehouse2.New(repository)
}

func provideServiceAdvertisement(repository advertisement2.Repository) *advertisement2.Advertisement {
	return advertisement2.New(repository)
}

func provideStatusHandlerFactory(orderService *order2.Service) *payment_handle.StatusHandlerFactory {
	return payment_handle.NewStatusHandlerFactory(orderService)
}

func provideOTPCleanupInterval(cfg *config.Config) OTPCleanupInterval {
	return OTPCleanupInterval(cfg.Tasks.OTPCleanupInterval)
}

func provideCouponExpiryInterval(cfg *config.Config) CouponExpiryInterval {
	return CouponExpiryInterval(cfg.Tasks.CouponExpiryInterval)
}

func provideOTPCleanupTask(
	log logger.Logger,
	authSvc otp_cleanup.Service,
	interval OTPCleanupInterval,
) *otp_cleanup.OTPCleanup {
	return otp_cleanup.NewOTPCleanup(log, authSvc, time.Duration(interval))
}

func provideCouponExpiryTask(
	log logger.Logger,
	couponSvc coupon_expiry.Service,
	interval CouponExpiryInterval,
) *coupon_expiry.CouponExpiry {
	return coupon_expiry.NewCouponExpiry(log, couponSvc, time.Duration(interval))
}

func provideTaskList(
	otpCleanupTask *otp_cleanup.OTPCleanup,
	couponExpiryTask *coupon_expiry.CouponExpiry,
) []background.Task {
	return []background.Task{
		otpCleanupTask,
		couponExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
