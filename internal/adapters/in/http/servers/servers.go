// Package servers binds the routes of api/openapi.yml to echo: request
// types, the ServerInterface the http adapter implements, parameter binding
// through the oapi-codegen runtime and the parsed contract.
//
// The package is written by hand in the layout oapi-codegen uses for echo
// servers. Routes are checked against the contract in servers_test.go, so a
// path added to api/openapi.yml must be added here as well.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"catering/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for Status.
const (
	Accepted               Status = "accepted"
	AwaitingMaterialReturn Status = "awaiting_material_return"
	Cancelled              Status = "cancelled"
	Completed              Status = "completed"
	InDelivery             Status = "in_delivery"
	InPreparation          Status = "in_preparation"
	Pending                Status = "pending"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	Actor          openapi_types.UUID `json:"actor"`
	NewStatus      Status             `json:"new_status"`
	PreviousStatus *Status            `json:"previous_status"`
	Timestamp      time.Time          `json:"timestamp"`
}

// MenuStat defines model for MenuStat.
type MenuStat struct {
	ChiffreAffaires Money              `json:"chiffre_affaires"`
	Jour            openapi_types.Date `json:"jour"`
	MenuId          openapi_types.UUID `json:"menu_id"`
	MenuTitre       string             `json:"menu_titre"`
	NombreCommandes int64              `json:"nombre_commandes"`
}

// Money defines model for Money.
type Money = string

// NewOrder defines model for NewOrder.
type NewOrder struct {
	AdressePrestation   string             `json:"adresse_prestation"`
	DatePrestation      openapi_types.Date `json:"date_prestation"`
	HeureLivraison      string             `json:"heure_livraison"`
	MenuId              openapi_types.UUID `json:"menu_id"`
	NombrePersonne      int                `json:"nombre_personne"`
	PretMateriel        *bool              `json:"pret_materiel,omitempty"`
	RestitutionMateriel *bool              `json:"restitution_materiel,omitempty"`
}

// Order defines model for Order.
type Order struct {
	AdressePrestation   string             `json:"adresse_prestation"`
	DateCommande        time.Time          `json:"date_commande"`
	DatePrestation      openapi_types.Date `json:"date_prestation"`
	HeureLivraison      string             `json:"heure_livraison"`
	Id                  openapi_types.UUID `json:"id"`
	MenuId              openapi_types.UUID `json:"menu_id"`
	MenuTitre           string             `json:"menu_titre"`
	NombrePersonne      int                `json:"nombre_personne"`
	NumeroCommande      string             `json:"numero_commande"`
	PretMateriel        bool               `json:"pret_materiel"`
	PrixLivraison       Money              `json:"prix_livraison"`
	PrixMenu            Money              `json:"prix_menu"`
	PrixTotal           Money              `json:"prix_total"`
	PrixUnitaire        Money              `json:"prix_unitaire"`
	RestitutionMateriel bool               `json:"restitution_materiel"`
	Statut              Status             `json:"statut"`
}

// OrderPatch defines model for OrderPatch.
type OrderPatch struct {
	DatePrestation      *openapi_types.Date `json:"date_prestation,omitempty"`
	HeureLivraison      *string             `json:"heure_livraison,omitempty"`
	NombrePersonne      *int                `json:"nombre_personne,omitempty"`
	PretMateriel        *bool               `json:"pret_materiel,omitempty"`
	RestitutionMateriel *bool               `json:"restitution_materiel,omitempty"`
	Statut              *Status             `json:"statut,omitempty"`
}

// Status defines model for Status.
type Status string

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// GetMenuStatsParams defines parameters for GetMenuStats.
type GetMenuStatsParams struct {
	// From First service day, inclusive
	From openapi_types.Date `form:"from" json:"from"`

	// To Last service day, inclusive
	To openapi_types.Date `form:"to" json:"to"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = OrderPatch

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List the caller's orders, most recent first
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context) error
	// Place an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Read an order
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Edit a pending order or move it along its lifecycle
	// (PATCH /api/v1/orders/{orderId})
	UpdateOrder(ctx echo.Context, orderId OrderId) error
	// Cancel a pending order
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId) error
	// Status timeline of an order
	// (GET /api/v1/orders/{orderId}/history)
	GetOrderHistory(ctx echo.Context, orderId OrderId) error
	// Orders and revenue per menu and service day
	// (GET /api/v1/stats/menus)
	GetMenuStats(ctx echo.Context, params GetMenuStatsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrder(ctx, orderId)
	return err
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOrder(ctx, orderId)
	return err
}

// GetOrderHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderHistory(ctx, orderId)
	return err
}

// GetMenuStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetMenuStats(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetMenuStatsParams
	// ------------- Required query parameter "from" -------------

	err = runtime.BindQueryParameter("form", true, true, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	// ------------- Required query parameter "to" -------------

	err = runtime.BindQueryParameter("form", true, true, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMenuStats(ctx, params)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId", wrapper.UpdateOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/history", wrapper.GetOrderHistory)
	router.GET(baseURL+"/api/v1/stats/menus", wrapper.GetMenuStats)

}

// GetSwagger returns the parsed OpenAPI contract.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
