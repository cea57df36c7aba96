package routes

import (
	"cotador_telecom/internal/adapter/http/handlers"
	"cotador_telecom/internal/adapter/http/middleware"
	"cotador_telecom/internal/domain/authz"

	"github.com/gin-gonic/gin"
)

const PathQuotes = "/quotes"

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/calculate", middleware.RequireAction(authz.ActionQuoteCalculate), h.Calculate)
	}
}
