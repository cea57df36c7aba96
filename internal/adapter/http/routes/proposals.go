package routes

import (
	"cotador_telecom/internal/adapter/http/handlers"
	"cotador_telecom/internal/adapter/http/middleware"
	"cotador_telecom/internal/domain/authz"

	"github.com/gin-gonic/gin"
)

const PathProposals = "/proposals"

func addProposalRoutes(rg *gin.RouterGroup, h *handlers.ProposalHandler, payments *handlers.SetupPaymentHandler) {
	read := middleware.RequireAction(authz.ActionProposalRead)
	write := middleware.RequireAction(authz.ActionProposalWrite)

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", write, h.Create)
		proposals.GET("", read, h.List)
		proposals.GET("/:id", read, h.Get)
		proposals.PUT("/:id", write, h.Update)
		proposals.DELETE("/:id", middleware.RequireAction(authz.ActionProposalDelete), h.Delete)

		proposals.POST("/:id/negotiation-rounds", middleware.RequireAction(authz.ActionProposalNegotiate), h.ApplyNegotiationRound)
		proposals.POST("/:id/director-discount", middleware.RequireAction(authz.ActionProposalDirectorDiscount), h.SetDirectorDiscount)
		proposals.POST("/:id/finalize", write, h.Finalize)

		proposals.PATCH("/:id/approve", write, h.Approve)
		proposals.PATCH("/:id/reject", write, h.Reject)
		proposals.PATCH("/:id/cancel", write, h.Cancel)

		proposals.GET("/:id/export", read, h.Export)

		proposals.POST("/:id/setup-payment", middleware.RequireAction(authz.ActionPaymentCreate), payments.Create)
		proposals.GET("/:id/setup-payment", read, payments.GetLatest)
	}
}
