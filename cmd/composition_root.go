package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"deliverya/internal/adapters/in/http"
	"deliverya/internal/adapters/out/geo"
	"deliverya/internal/adapters/out/kafka"
	"deliverya/internal/adapters/out/notify"
	"deliverya/internal/adapters/out/payment"
	"deliverya/internal/adapters/out/postgres"
	"deliverya/internal/core/application/usecases/commands"
	"deliverya/internal/core/application/usecases/queries"
	"deliverya/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to application handlers. Shared pieces (the
// Kafka publisher, the notification hub, the tracking simulation) are created
// once; handlers are created per call.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	geocoder   *geo.NominatimGeocoder
	regionHint string
	publisher  *kafka.SaramaOrderPublisher
	gateway    *payment.SimulatedGateway
	hub        *notify.Hub
	logger     *slog.Logger

	trackingSimulation *commands.SimulateTrackingCommandHandler
}

// NewCompositionRoot builds the shared adapters from the configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	publisher, err := kafka.NewSaramaOrderPublisher(
		strings.Split(config.KafkaHost, ","), config.KafkaOrderChangedTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	var cache *redis.Client
	if config.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr: config.RedisAddr,
			DB:   config.RedisDB,
		})
	}

	root := &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geo.NewNominatimGeocoder(config.NominatimBaseURL, config.NominatimUserAgent, cache, logger),
		regionHint: config.GeoRegionHint,
		publisher:  publisher,
		gateway:    payment.NewSimulatedGateway(logger),
		hub:        notify.NewHub(),
		logger:     logger,
	}

	simulation := commands.NewSimulateTrackingCommandHandler(
		FuncOrderUoWFactory(func() commands.OrderUoW { return root.uowFactory.Create() }))
	root.trackingSimulation = simulation

	return root, nil
}

// Close releases the shared adapters.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUserUoWFactory = FuncOrderUserUoWFactory(func() commands.OrderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.geocoder, c.regionHint, c.publisher, c.hub)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.AcceptUoWFactory = FuncAcceptUoWFactory(func() commands.AcceptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.publisher, c.hub)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.gateway, c.publisher, c.hub)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher, c.hub)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f, c.gateway, c.publisher, c.hub)
}

func (c *CompositionRoot) CreateSendMessageCommandHandler() commands.SendMessageCommandHandler {
	var f commands.ChatUoWFactory = FuncChatUoWFactory(func() commands.ChatUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendMessageCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateRecordTelemetryCommandHandler() commands.RecordTelemetryCommandHandler {
	var f commands.TelemetryUoWFactory = FuncTelemetryUoWFactory(func() commands.TelemetryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordTelemetryCommandHandler(f)
}

// CreateSimulateTrackingCommandHandler returns the shared simulation handler.
// It is stateful: the positions it interpolates between ticks also serve the
// tracking query.
func (c *CompositionRoot) CreateSimulateTrackingCommandHandler() *commands.SimulateTrackingCommandHandler {
	return c.trackingSimulation
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFinancialSummaryQueryHandler() queries.GetFinancialSummaryQueryHandler {
	return queries.NewGetFinancialSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMessagesQueryHandler() queries.GetMessagesQueryHandler {
	return queries.NewGetMessagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.gormDB, c.trackingSimulation)
}

// CreateServer assembles the REST adapter with every handler it serves.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateConfirmPaymentCommandHandler(),
		c.CreateSendMessageCommandHandler(),
		c.CreateRecordTelemetryCommandHandler(),
		c.CreateGetOrderBoardQueryHandler(),
		c.CreateGetAvailableOrdersQueryHandler(),
		c.CreateGetFinancialSummaryQueryHandler(),
		c.CreateGetMessagesQueryHandler(),
		c.CreateGetTrackingQueryHandler(),
		c.hub,
		c.hub,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.trackingSimulation, c.logger)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderUserUoWFactory func() commands.OrderUserUoW

func (f FuncOrderUserUoWFactory) Create() commands.OrderUserUoW {
	return f()
}

type FuncAcceptUoWFactory func() commands.AcceptUoW

func (f FuncAcceptUoWFactory) Create() commands.AcceptUoW {
	return f()
}

type FuncChatUoWFactory func() commands.ChatUoW

func (f FuncChatUoWFactory) Create() commands.ChatUoW {
	return f()
}

type FuncTelemetryUoWFactory func() commands.TelemetryUoW

func (f FuncTelemetryUoWFactory) Create() commands.TelemetryUoW {
	return f()
}
