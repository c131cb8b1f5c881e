package cmd

import (
	"log/slog"
	"time"

	"catering/internal/adapters/out/mongo/statsrepo"
	"catering/internal/adapters/out/notifier"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/pricing"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	statsStore *statsrepo.MongoStatsRepository
	engine     pricing.Engine
	location   *time.Location
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, mongoDB *mongo.Database, logger *slog.Logger) (CompositionRoot, error) {
	fee, err := config.DeliveryFeeAmount()
	if err != nil {
		return CompositionRoot{}, err
	}
	location, err := config.Location()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		statsStore: statsrepo.NewMongoStatsRepository(mongoDB),
		engine:     pricing.NewEngine(pricing.NewFlatDeliveryFeePolicy(fee, config.HomeCity)),
		location:   location,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) StatsStore() *statsrepo.MongoStatsRepository {
	return c.statsStore
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.engine, notifier.NewLogNotifier(c.logger), c.logger)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateOrderCommandHandler(f, c.engine)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCancelOrderCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateProjectOrderStatsCommandHandler() *commands.ProjectOrderStatsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewProjectOrderStatsCommandHandler(f, c.statsStore, c.location, c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuStatsQueryHandler() queries.ListMenuStatsQueryHandler {
	return queries.NewListMenuStatsQueryHandler(c.statsStore, c.location)
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
