package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "penguinadmin/internal/adapters/in/http"
	"penguinadmin/internal/adapters/out/antiforgery"
	"penguinadmin/internal/adapters/out/postgres"
	"penguinadmin/internal/auth"
	"penguinadmin/internal/core/application/usecases/commands"
	"penguinadmin/internal/core/application/usecases/queries"
	"penguinadmin/internal/core/domain/model/admin"
	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/services"
	"penguinadmin/internal/core/ports"
	"penguinadmin/internal/jobs"

	"gorm.io/gorm"
)

// AntiForgeryStore is a token store the purge job can sweep.
type AntiForgeryStore interface {
	ports.AntiForgeryTokenStore
	jobs.TokenPurger
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithLockTimeout(cfg.LockTimeout())),
		clock:      kernel.SystemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateFinalizeDeliveryCommandHandler() commands.FinalizeDeliveryCommandHandler {
	var f commands.FulfillmentUoWFactory = commands.FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeDeliveryCommandHandler(f, services.NewProductResolver(), c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderBuyerCommandHandler() commands.UpdateOrderBuyerCommandHandler {
	return commands.NewUpdateOrderBuyerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePurgeLegacyOrdersCommandHandler() commands.PurgeLegacyOrdersCommandHandler {
	return commands.NewPurgeLegacyOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = commands.FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateSetProductImageCommandHandler() commands.SetProductImageCommandHandler {
	return commands.NewSetProductImageCommandHandler(c.productUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateAdminCommandHandler() commands.CreateAdminCommandHandler {
	var f commands.AdminUoWFactory = commands.FuncAdminUoWFactory(func() commands.AdminUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAdminCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAuthenticateAdminQueryHandler() queries.AuthenticateAdminQueryHandler {
	return queries.NewAuthenticateAdminQueryHandler(adminFinder{factory: c.uowFactory})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return commands.FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return commands.FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

// CreateSessionManager fails when JWT_SECRET is not set.
func (c *CompositionRoot) CreateSessionManager() (*auth.Manager, error) {
	return auth.NewManager(c.cfg.JWTSecret, c.cfg.JWTExpires, c.clock)
}

// CreateAntiForgeryStore picks the store named by ANTIFORGERY_STORE. The
// returned func releases its connections.
func (c *CompositionRoot) CreateAntiForgeryStore() (AntiForgeryStore, func(), error) {
	switch c.cfg.AntiForgeryStore {
	case "", "memory":
		return antiforgery.NewMemoryStore(c.cfg.AntiForgeryTTL, c.clock), func() {}, nil
	case "redis":
		client, err := antiforgery.Dial(c.cfg.RedisAddr, c.cfg.RedisPoolSize)
		if err != nil {
			return nil, nil, err
		}
		release := func() {
			if err := client.Close(); err != nil {
				c.logger.Error("Failed to close redis pool", "error", err)
			}
		}
		return antiforgery.NewRedisStore(client, c.cfg.AntiForgeryTTL), release, nil
	default:
		return nil, nil, fmt.Errorf("unknown ANTIFORGERY_STORE %q, expected memory or redis", c.cfg.AntiForgeryStore)
	}
}

func (c *CompositionRoot) CreateJobManager(tokens jobs.TokenPurger) *jobs.JobManager {
	purge := c.CreatePurgeLegacyOrdersCommandHandler()
	return jobs.NewJobManager(tokens, &purge, c.cfg.LegacyPurgeSchedule, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer(sessions *auth.Manager, csrf ports.AntiForgeryTokenStore) *httpin.Server {
	finalize := c.CreateFinalizeDeliveryCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	createProduct := c.CreateCreateProductCommandHandler()
	updateProduct := c.CreateUpdateProductCommandHandler()
	deleteProduct := c.CreateDeleteProductCommandHandler()
	setImage := c.CreateSetProductImageCommandHandler()
	updateBuyer := c.CreateUpdateOrderBuyerCommandHandler()

	handlers := httpin.Handlers{
		FinalizeDelivery:  &finalize,
		ChangeOrderStatus: &changeStatus,
		CreateOrder:       &createOrder,
		CreateProduct:     &createProduct,
		UpdateProduct:     &updateProduct,
		DeleteProduct:     &deleteProduct,
		SetProductImage:   &setImage,
		UpdateOrderBuyer:  &updateBuyer,

		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		ListProducts:       queries.NewListProductsQueryHandler(c.gormDB),
		GetProduct:         queries.NewGetProductQueryHandler(c.gormDB),
		ListDeliveries:     queries.NewListDeliveriesQueryHandler(c.gormDB),
		GetOrderTracking:   queries.NewGetOrderTrackingQueryHandler(c.gormDB),
		GetDeliverySummary: queries.NewGetDeliverySummaryQueryHandler(c.gormDB),
		ListCatalog:        queries.NewListCatalogQueryHandler(c.gormDB),
		GetOrdersBoard:     queries.NewGetOrdersBoardQueryHandler(c.gormDB),
		AuthenticateAdmin:  c.CreateAuthenticateAdminQueryHandler(),
	}

	return httpin.NewServer(handlers, sessions, csrf, c.logger, httpin.Config{
		UploadsPath:    c.cfg.UploadsPath,
		RequestTimeout: c.cfg.DBTxTimeout,
	})
}

// adminFinder reads accounts outside any transaction.
type adminFinder struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (f adminFinder) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	return f.factory.Create().AdminRepository().GetByEmail(ctx, email)
}
