//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

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

	advertisementRepo "storefront/internal/repository/advertisement"
	cartRepo "storefront/internal/repository/cart"
	couponRepo "storefront/internal/repository/coupon"
	orderRepo "storefront/internal/repository/order"
	productRepo "storefront/internal/repository/product"
	reviewRepo "storefront/internal/repository/review"
	userRepo "storefront/internal/repository/user"
	warehouseRepo "storefront/internal/repository/warehouse"

	advertisementService "storefront/internal/service/advertisement"
	authService "storefront/internal/service/auth"
	cartService "storefront/internal/service/cart"
	catalogService "storefront/internal/service/catalog"
	couponService "storefront/internal/service/coupon"
	orderService "storefront/internal/service/order"
	userService "storefront/internal/service/user"
	warehouseService "storefront/internal/service/warehouse"

	"storefront/pkg/authtoken"
	"storefront/pkg/background"
	"storefront/pkg/logger"
	"storefront/pkg/querier"
	"storefront/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	tokens *authtoken.Issuer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOTPCleanupInterval,
		provideCouponExpiryInterval,

		provideUserRepository,
		provideProductRepository,
		provideReviewRepository,
		provideCartRepository,
		provideOrderRepository,
		provideCouponRepository,
		provideWarehouseRepository,
		provideAdvertisementRepository,

		provideMailer,
		provideRazorpayGateway,

		provideServiceAuth,
		provideServiceUser,
		provideServiceCatalog,
		provideServiceCart,
		provideServiceOrder,
		provideServiceCoupon,
		provideServiceWarehouse,
		provideServiceAdvertisement,

		provideOTPCleanupTask,
		provideCouponExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceCatalog), new(*catalogService.Catalog)),
		wire.Bind(new(ServiceCart), new(*cartService.Cart)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCoupon), new(*couponService.Coupon)),
		wire.Bind(new(ServiceWarehouse), new(*warehouseService.Warehouse)),
		wire.Bind(new(ServiceAdvertisement), new(*advertisementService.Advertisement)),

		wire.Bind(new(authService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(authService.TokenIssuer), new(*authtoken.Issuer)),
		wire.Bind(new(authService.Mailer), new(*mailer.LogMailer)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(catalogService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(catalogService.ReviewRepository), new(*reviewRepo.Repository)),
		wire.Bind(new(cartService.Repository), new(*cartRepo.Repository)),
		wire.Bind(new(cartService.VariantReader), new(*catalogService.Catalog)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CartService), new(*cartService.Cart)),
		wire.Bind(new(orderService.StockKeeper), new(*catalogService.Catalog)),
		wire.Bind(new(orderService.CouponRedeemer), new(*couponService.Coupon)),
		wire.Bind(new(orderService.PaymentGateway), new(*razorpay.Gateway)),
		wire.Bind(new(couponService.Repository), new(*couponRepo.Repository)),
		wire.Bind(new(warehouseService.Repository), new(*warehouseRepo.Repository)),
		wire.Bind(new(advertisementService.Repository), new(*advertisementRepo.Repository)),

		wire.Bind(new(cartService.TxManager), new(*tx.Manager)),
		wire.Bind(new(catalogService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(couponService.TxManager), new(*tx.Manager)),

		wire.Bind(new(otp_cleanup.Service), new(*authService.Auth)),
		wire.Bind(new(coupon_expiry.Service), new(*couponService.Coupon)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	HandlerFactory *payment_handle.StatusHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideProductRepository,
		provideReviewRepository,
		provideCartRepository,
		provideOrderRepository,
		provideCouponRepository,

		provideRazorpayGateway,

		provideServiceCatalog,
		provideServiceCart,
		provideServiceCoupon,
		provideServiceOrder,
		provideStatusHandlerFactory,

		wire.Bind(new(catalogService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(catalogService.ReviewRepository), new(*reviewRepo.Repository)),
		wire.Bind(new(cartService.Repository), new(*cartRepo.Repository)),
		wire.Bind(new(cartService.VariantReader), new(*catalogService.Catalog)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CartService), new(*cartService.Cart)),
		wire.Bind(new(orderService.StockKeeper), new(*catalogService.Catalog)),
		wire.Bind(new(orderService.CouponRedeemer), new(*couponService.Coupon)),
		wire.Bind(new(orderService.PaymentGateway), new(*razorpay.Gateway)),
		wire.Bind(new(couponService.Repository), new(*couponRepo.Repository)),

		wire.Bind(new(cartService.TxManager), new(*tx.Manager)),
		wire.Bind(new(catalogService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(couponService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideCartRepository(querier *querier.Querier) *cartRepo.Repository {
	return cartRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCouponRepository(querier *querier.Querier) *couponRepo.Repository {
	return couponRepo.New(querier)
}

func provideWarehouseRepository(querier *querier.Querier) *warehouseRepo.Repository {
	return warehouseRepo.New(querier)
}

func provideAdvertisementRepository(querier *querier.Querier) *advertisementRepo.Repository {
	return advertisementRepo.New(querier)
}

func provideMailer(log logger.Logger) *mailer.LogMailer {
	return mailer.NewLogMailer(log)
}

func provideRazorpayGateway(log logger.Logger, cfg *config.Config) *razorpay.Gateway {
	return razorpay.New(log, &cfg.Razorpay)
}

func provideServiceAuth(
	repository authService.Repository,
	tokens authService.TokenIssuer,
	mail authService.Mailer,
) *authService.Auth {
	return authService.New(repository, tokens, mail)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideServiceCatalog(
	repository catalogService.Repository,
	reviews catalogService.ReviewRepository,
	txManager catalogService.TxManager,
) *catalogService.Catalog {
	return catalogService.New(repository, reviews, txManager)
}

func provideServiceCart(
	repository cartService.Repository,
	variants cartService.VariantReader,
	txManager cartService.TxManager,
) *cartService.Cart {
	return cartService.New(repository, variants, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	cart orderService.CartService,
	stock orderService.StockKeeper,
	coupons orderService.CouponRedeemer,
	gateway orderService.PaymentGateway,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, cart, stock, coupons, gateway, txManager)
}

func provideServiceCoupon(
	repository couponService.Repository,
	txManager couponService.TxManager,
) *couponService.Coupon {
	return couponService.New(repository, txManager)
}

func provideServiceWarehouse(repository warehouseService.Repository) *warehouseService.Warehouse {
	return warehouseService.New(repository)
}

func provideServiceAdvertisement(repository advertisementService.Repository) *advertisementService.Advertisement {
	return advertisementService.New(repository)
}

func provideStatusHandlerFactory(orderService *orderService.Service) *payment_handle.StatusHandlerFactory {
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
