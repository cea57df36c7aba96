package routes

import (
	"cotador_telecom/internal/adapter/http/handlers"
	"cotador_telecom/internal/adapter/http/middleware"
	"cotador_telecom/internal/domain/authz"

	"github.com/gin-gonic/gin"
)

const PathPriceTables = "/price-tables"

func addPriceTableRoutes(rg *gin.RouterGroup, h *handlers.PriceTableHandler) {
	read := middleware.RequireAction(authz.ActionPriceTableRead)

	tables := rg.Group(PathPriceTables)
	{
		tables.GET("/current", read, h.Current)
		tables.GET("/:version", read, h.GetVersion)
		tables.PUT("", middleware.RequireAction(authz.ActionPriceTableEdit), h.Publish)
	}
}
