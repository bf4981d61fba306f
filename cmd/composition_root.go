package cmd

import (
	"log/slog"
	"strings"

	"marketplace/internal/adapters/out/identity"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/materialrepo"
	rediscache "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	goredis "github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases for the selected backend.
// gormDB is nil when the memory backend is selected; every creator works for
// both backends.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	readRepo   ports.OrderRepository
	catalog    ports.MaterialCatalog
	publisher  ports.OrderEventPublisher
	identity   ports.IdentityProvider
	cache      queries.SummaryCache

	closers []func() error
}

// NewCompositionRoot builds the object graph for the configured backend.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		config:   config,
		logger:   logger,
		gormDB:   gormDB,
		identity: identity.NewJWTVerifier(config.JWTSecret),
	}

	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		root.catalog = materialrepo.NewGormMaterialCatalog(gormDB)

		publisher := kafka.NewOrderEventPublisher(
			strings.Split(config.KafkaHost, ","),
			config.KafkaOrderEventsTopic,
			logger,
		)
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)

		if config.RedisAddr != "" {
			client := goredis.NewClient(&goredis.Options{
				Addr:     config.RedisAddr,
				Password: config.RedisPassword,
			})
			root.cache = rediscache.NewSummaryCache(client, config.RedisCacheTTL, logger)
			root.closers = append(root.closers, client.Close)
		}
	} else {
		store := memory.NewOrderStore()
		root.uowFactory = memory.NewInMemoryUnitOfWorkFactory(store)
		root.catalog = memory.NewInMemoryMaterialCatalog()
		root.publisher = memory.NewLogOrderEventPublisher(logger)
	}

	// A repository outside any unit of work, for read paths.
	root.readRepo = root.uowFactory.Create().OrderRepository()

	return root
}

// Close releases adapter resources (event publisher, cache client).
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.logger.Error("adapter close failed", "error", err)
		}
	}
}

// IdentityProvider returns the bearer token verifier.
func (c *CompositionRoot) IdentityProvider() ports.IdentityProvider {
	return c.identity
}

// MaterialCatalog returns the catalog port, for dev seeding in memory mode.
func (c *CompositionRoot) MaterialCatalog() ports.MaterialCatalog {
	return c.catalog
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.publisher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderItemsCommandHandler() commands.UpdateOrderItemsCommandHandler {
	return commands.NewUpdateOrderItemsCommandHandler(c.orderUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateSetDeliveryChargesCommandHandler() commands.SetDeliveryChargesCommandHandler {
	return commands.NewSetDeliveryChargesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkPaymentCommandHandler() commands.MarkPaymentCommandHandler {
	return commands.NewMarkPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readRepo)
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	if c.gormDB == nil {
		return queries.NewRepoGetVendorOrdersQueryHandler(c.readRepo, c.cache)
	}
	return queries.NewGetVendorOrdersQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetSupplierOrdersQueryHandler() queries.GetSupplierOrdersQueryHandler {
	if c.gormDB == nil {
		return queries.NewRepoGetSupplierOrdersQueryHandler(c.readRepo, c.cache)
	}
	return queries.NewGetSupplierOrdersQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetRecentOrdersQueryHandler() queries.GetRecentOrdersQueryHandler {
	if c.gormDB == nil {
		return queries.NewRepoGetRecentOrdersQueryHandler(c.readRepo)
	}
	return queries.NewGetRecentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetRecentOrdersQueryHandler(), c.config.PendingMaxAge, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
