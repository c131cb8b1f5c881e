package http

import (
	"net/http"

	"catering/internal/adapters/in/http/servers"
	"catering/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetMenuStats handles GET /api/v1/stats/menus - staff reporting over the
// daily menu rollups.
func (s *Server) GetMenuStats(ctx echo.Context, params servers.GetMenuStatsParams) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListMenuStatsQuery(principal, params.From.Time, params.To.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	rollups, err := s.listMenuStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.MenuStat, len(rollups))
	for i, r := range rollups {
		response[i] = servers.MenuStat{
			MenuId:          r.MenuID,
			MenuTitre:       r.MenuTitle,
			Jour:            openapi_types.Date{Time: r.Day},
			NombreCommandes: r.OrderCount,
			ChiffreAffaires: r.Revenue.StringFixed(2),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}
