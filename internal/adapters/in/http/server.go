// Package http exposes the order use cases over a JSON API described by
// api/openapi.yml.
package http

import (
	"context"
	"log/slog"

	"catering/internal/adapters/in/http/servers"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/stats"

	"github.com/google/uuid"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (uuid.UUID, error)
}

type UpdateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
}

type CancelOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type ListUserOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListUserOrdersQuery) ([]queries.OrderView, error)
}

type GetOrderHistoryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.HistoryEntryView, error)
}

type ListMenuStatsHandler interface {
	Handle(ctx context.Context, query queries.ListMenuStatsQuery) ([]stats.Rollup, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler CreateOrderHandler
	updateOrderHandler UpdateOrderHandler
	cancelOrderHandler CancelOrderHandler

	// Query handlers
	getOrderHandler        GetOrderHandler
	listUserOrdersHandler  ListUserOrdersHandler
	getOrderHistoryHandler GetOrderHistoryHandler
	listMenuStatsHandler   ListMenuStatsHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	updateOrderHandler UpdateOrderHandler,
	cancelOrderHandler CancelOrderHandler,
	getOrderHandler GetOrderHandler,
	listUserOrdersHandler ListUserOrdersHandler,
	getOrderHistoryHandler GetOrderHistoryHandler,
	listMenuStatsHandler ListMenuStatsHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrderHandler:        getOrderHandler,
		listUserOrdersHandler:  listUserOrdersHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		listMenuStatsHandler:   listMenuStatsHandler,
		logger:                 logger.With("component", "http"),
	}
}
