package http

import (
	"net/http"

	"catering/internal/adapters/in/http/servers"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrder handles POST /api/v1/orders - places an order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		principal,
		body.MenuId,
		body.DatePrestation.Time,
		body.HeureLivraison,
		body.NombrePersonne,
		body.AdressePrestation,
		valueOr(body.PretMateriel, false),
		valueOr(body.RestitutionMateriel, false),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, principal, orderID)
}

// ListOrders handles GET /api/v1/orders - lists the caller's orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListUserOrdersQuery(principal)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.listUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, principal, orderID)
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderID servers.OrderId) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.OrderPatch
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(principal, orderID, toPatch(body))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, principal, orderID)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(principal, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, principal, orderID)
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, orderID servers.OrderId) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(principal, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = servers.HistoryEntry{
			Actor:     e.ActorID,
			NewStatus: servers.Status(e.NewStatus.String()),
			Timestamp: e.ChangedAt,
		}
		if e.PreviousStatus != nil {
			previous := servers.Status(e.PreviousStatus.String())
			response[i].PreviousStatus = &previous
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, principal kernel.Principal, orderID uuid.UUID) error {
	query, err := queries.NewGetOrderQuery(principal, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toOrder(view))
}

func toOrder(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:                  v.ID,
		NumeroCommande:      v.Number,
		MenuId:              v.MenuID,
		MenuTitre:           v.MenuTitle,
		PrixUnitaire:        v.UnitPrice.StringFixed(2),
		DateCommande:        v.CreatedAt,
		DatePrestation:      openapi_types.Date{Time: v.ServiceDate},
		HeureLivraison:      v.DeliveryTime,
		NombrePersonne:      v.Headcount,
		AdressePrestation:   v.ServiceAddress,
		PrixMenu:            v.MenuPrice.StringFixed(2),
		PrixLivraison:       v.DeliveryFee.StringFixed(2),
		PrixTotal:           v.Total().StringFixed(2),
		Statut:              servers.Status(v.Status.String()),
		PretMateriel:        v.MaterialLoan,
		RestitutionMateriel: v.MaterialReturned,
	}
}

func toPatch(body servers.OrderPatch) commands.UpdateOrderPatch {
	patch := commands.UpdateOrderPatch{
		DeliveryTime:     body.HeureLivraison,
		Headcount:        body.NombrePersonne,
		MaterialLoan:     body.PretMateriel,
		MaterialReturned: body.RestitutionMateriel,
	}
	if body.DatePrestation != nil {
		patch.ServiceDate = &body.DatePrestation.Time
	}
	if body.Statut != nil {
		status := string(*body.Statut)
		patch.Status = &status
	}
	return patch
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
