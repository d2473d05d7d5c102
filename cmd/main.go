package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/muhammadheryan/snackstore/application/cart"
	checkoutapp "github.com/muhammadheryan/snackstore/application/checkout"
	metricsapp "github.com/muhammadheryan/snackstore/application/metrics"
	orderapp "github.com/muhammadheryan/snackstore/application/order"
	productapp "github.com/muhammadheryan/snackstore/application/product"
	scheduleapp "github.com/muhammadheryan/snackstore/application/schedule"
	stockapp "github.com/muhammadheryan/snackstore/application/stock"
	userapp "github.com/muhammadheryan/snackstore/application/user"
	"github.com/muhammadheryan/snackstore/cmd/config"
	redisclient "github.com/muhammadheryan/snackstore/cmd/redis"
	_ "github.com/muhammadheryan/snackstore/docs"
	cartRepo "github.com/muhammadheryan/snackstore/repository/cart"
	metricsRepo "github.com/muhammadheryan/snackstore/repository/metrics"
	orderRepo "github.com/muhammadheryan/snackstore/repository/order"
	productRepo "github.com/muhammadheryan/snackstore/repository/product"
	redisRepo "github.com/muhammadheryan/snackstore/repository/redis"
	stockRepo "github.com/muhammadheryan/snackstore/repository/stock"
	txRepo "github.com/muhammadheryan/snackstore/repository/tx"
	userRepo "github.com/muhammadheryan/snackstore/repository/user"
	"github.com/muhammadheryan/snackstore/thirdparty/firebase"
	"github.com/muhammadheryan/snackstore/thirdparty/mailer"
	"github.com/muhammadheryan/snackstore/thirdparty/notification"
	"github.com/muhammadheryan/snackstore/thirdparty/rabbitmq"
	"github.com/muhammadheryan/snackstore/transport"
	"github.com/muhammadheryan/snackstore/utils/logger"
	"github.com/muhammadheryan/snackstore/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// @title SNACK STORE API
// @version 1.0
// @description Wholesale snack storefront: catalog, cart, delivery scheduling, checkout and orders
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("storage_prefix", cfg.Storage.KeyPrefix))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(ctx, cfg.Redis); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize repositories
	RedisRepo := redisRepo.NewRepository()
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	MetricsRepo := metricsRepo.NewMetricsRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	StockRepo := stockRepo.NewStockRepository(RedisRepo, cfg.Storage)
	CartRepo := cartRepo.NewCartRepository(RedisRepo, cfg.Storage)
	OrderRepo := orderRepo.NewOrderRepository(RedisRepo, cfg.Storage)

	storeMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Notification delivery: FCM when credentials are set, log otherwise
	var pusher firebase.Pusher
	if cfg.Firebase.CredentialsPath != "" {
		p, err := firebase.NewPusher(ctx, cfg.Firebase.CredentialsPath)
		if err != nil {
			logger.Error("err init firebase, push disabled", zap.Error(err))
		} else {
			pusher = p
		}
	}
	deliverer := notification.NewDeliverer(RedisRepo, UserRepo, pusher, cfg.Storage)

	var publisher notification.Publisher
	if cfg.RabbitMQ.Enabled {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer pub.Close()
		publisher = pub

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, deliverer.Deliver)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start notification consumer", zap.Error(err))
		}
	}
	dispatcher := notification.NewDispatcher(publisher, deliverer, RedisRepo, cfg.Storage)
	orderMailer := mailer.NewMailer(cfg.SMTP)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	StockApp := stockapp.NewStockApp(StockRepo, ProductRepo)
	Carts := cartapp.NewCarts(cfg.Cart, StockApp, CartRepo, storeMetrics)
	OrderApp := orderapp.NewOrderApp(cfg.Order, OrderRepo, dispatcher, orderMailer, UserApp, storeMetrics)
	MetricsApp := metricsapp.NewMetricsApp(TxRepo, MetricsRepo)
	ProductApp := productapp.NewProductApp(ProductRepo, StockApp)
	SchedulerApp := scheduleapp.NewSchedulerApp(cfg.Cart, Carts)
	CheckoutApp := checkoutapp.NewCheckoutApp(Carts, OrderApp, MetricsApp, ProductRepo, dispatcher, storeMetrics)

	// Rehydrate persisted state. Carts load lazily per merchant on first use.
	if err := StockApp.Load(ctx); err != nil {
		logger.Fatal("err load stock ledger", zap.Error(err))
	}
	if err := OrderApp.Load(ctx); err != nil {
		logger.Fatal("err load orders", zap.Error(err))
	}

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:      UserApp,
		ProductApp:   ProductApp,
		StockApp:     StockApp,
		Carts:        Carts,
		SchedulerApp: SchedulerApp,
		CheckoutApp:  CheckoutApp,
		OrderApp:     OrderApp,
		MetricsApp:   MetricsApp,
	}, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("err shutdown server", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
}
