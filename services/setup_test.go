package services

import (
	"context"
	"testing"
	"time"

	"abc-retail/libs"
	"abc-retail/libs/libtest"
	"abc-retail/models"
	"abc-retail/repositories"
	"abc-retail/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store    *libtest.MemoryTableStore
	blobs    *libtest.MemoryBlobStore
	share    *libs.LocalFileShare
	sessions *libs.RedisSessionStore
	queue    *libs.RedisQueue

	productRepo  *repositories.ProductRepository
	orderRepo    *repositories.OrderRepository
	customerRepo *repositories.CustomerRepository
	employeeRepo *repositories.EmployeeRepository

	audit    *AuditService
	carts    *CartService
	checkout *CheckoutService
	admin    *OrderAdminService
	products *ProductService
	auth     *AuthService
	profiles *ProfileService
	funcs    *FunctionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	env := &testEnv{
		store:    libtest.NewMemoryTableStore(),
		blobs:    libtest.NewMemoryBlobStore(),
		share:    libs.NewLocalFileShare(t.TempDir()),
		sessions: libs.NewRedisSessionStore(client, 30*time.Minute),
		queue:    libs.NewRedisQueue(client),
	}
	env.productRepo = repositories.NewProductRepository(env.store)
	env.orderRepo = repositories.NewOrderRepository(env.store)
	env.customerRepo = repositories.NewCustomerRepository(env.store)
	env.employeeRepo = repositories.NewEmployeeRepository(env.store)

	env.audit = NewAuditService(env.share)
	env.carts = NewCartService(env.sessions, env.productRepo)
	env.checkout = NewCheckoutService(env.carts, env.orderRepo, env.queue, "ordersqueue", nil)
	env.admin = NewOrderAdminService(env.queue, "ordersqueue", 30*time.Second, env.productRepo)
	env.products = NewProductService(env.productRepo, env.blobs, env.audit)
	env.auth = NewAuthService(env.customerRepo, env.employeeRepo, utils.NewTokenIssuer("secret", time.Hour), env.audit)
	env.profiles = NewProfileService(env.employeeRepo, env.customerRepo, env.share, env.audit)
	env.funcs = NewFunctionService(env.blobs, env.share, env.queue, "messages", repositories.NewProductMetadataRepository(env.store))
	return env
}

func (env *testEnv) addProduct(t *testing.T, name, category, price string) models.Product {
	t.Helper()
	product := models.Product{
		ProductName: name,
		Category:    category,
		Price:       decimal.RequireFromString(price),
		Quantity:    10,
	}
	require.NoError(t, env.productRepo.CreateProduct(context.Background(), &product))
	return product
}
