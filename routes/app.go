package routes

import (
	"context"
	"fmt"

	"abc-retail/config"
	"abc-retail/libs"
	"abc-retail/repositories"
	"abc-retail/services"
	"abc-retail/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the services behind the HTTP layer.
type App struct {
	Config   *config.Config
	Tokens   *utils.TokenIssuer
	Sessions libs.SessionStore

	Auth       *services.AuthService
	Products   *services.ProductService
	Carts      *services.CartService
	Checkout   *services.CheckoutService
	OrderAdmin *services.OrderAdminService
	Profiles   *services.ProfileService
	Audit      *services.AuditService
	Functions  *services.FunctionService

	closers []func()
}

// Stores groups the storage adapters an App is built on.
type Stores struct {
	Tables   libs.TableStore
	Sessions libs.SessionStore
	Queue    libs.Queue
	Blobs    libs.BlobStore
	Share    libs.FileShare
	Mailer   services.Mailer
}

// NewApp wires services on top of already connected stores.
func NewApp(cfg *config.Config, stores Stores) *App {
	customerRepo := repositories.NewCustomerRepository(stores.Tables)
	employeeRepo := repositories.NewEmployeeRepository(stores.Tables)
	productRepo := repositories.NewProductRepository(stores.Tables)
	orderRepo := repositories.NewOrderRepository(stores.Tables)
	metadataRepo := repositories.NewProductMetadataRepository(stores.Tables)

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	audit := services.NewAuditService(stores.Share)
	carts := services.NewCartService(stores.Sessions, productRepo)

	return &App{
		Config:     cfg,
		Tokens:     tokens,
		Sessions:   stores.Sessions,
		Auth:       services.NewAuthService(customerRepo, employeeRepo, tokens, audit),
		Products:   services.NewProductService(productRepo, stores.Blobs, audit),
		Carts:      carts,
		Checkout:   services.NewCheckoutService(carts, orderRepo, stores.Queue, cfg.OrderQueue, stores.Mailer),
		OrderAdmin: services.NewOrderAdminService(stores.Queue, cfg.OrderQueue, cfg.QueueVisibilityTimeout, productRepo),
		Profiles:   services.NewProfileService(employeeRepo, customerRepo, stores.Share, audit),
		Audit:      audit,
		Functions:  services.NewFunctionService(stores.Blobs, stores.Share, stores.Queue, cfg.FunctionQueue, metadataRepo),
	}
}

// Connect opens postgres, redis and the optional storage backends, then
// builds the App and seeds the default employees.
func Connect(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := config.ConnectDB(cfg)
	if err != nil {
		return nil, err
	}

	client, err := config.ConnectRedis(cfg)
	if err != nil {
		pool.Close()
		return nil, err
	}

	stores := Stores{
		Tables:   libs.NewPgTableStore(pool),
		Sessions: libs.NewRedisSessionStore(client, cfg.SessionIdleTimeout),
		Queue:    libs.NewRedisQueue(client),
		Blobs:    config.NewBlobStore(cfg),
		Share:    config.NewFileShare(cfg),
	}
	if mailer := config.NewEmailService(cfg); mailer != nil {
		stores.Mailer = mailer
	}

	app := NewApp(cfg, stores)
	app.closers = append(app.closers, closeRedis(client), pool.Close)
	if sftp, ok := stores.Share.(*libs.SFTPFileShare); ok {
		app.closers = append(app.closers, func() { _ = sftp.Close() })
	}

	if err := app.Auth.SeedEmployees(ctx); err != nil {
		app.Close()
		return nil, fmt.Errorf("seed employees: %w", err)
	}

	return app, nil
}

func closeRedis(client *redis.Client) func() {
	return func() {
		if err := client.Close(); err != nil {
			zap.S().Warnf("redis close: %v", err)
		}
	}
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
