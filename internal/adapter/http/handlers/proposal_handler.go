package handlers

import (
	"context"
	"fmt"
	"net/http"

	"cotador_telecom/internal/adapter/http/dto/request"
	"cotador_telecom/internal/adapter/http/dto/response"
	"cotador_telecom/internal/domain/authz"
	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ProposalHandler handles proposal CRUD, negotiation and lifecycle routes.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// Create godoc
// @Summary     Create a proposal
// @Tags        proposals
// @Accept      json
// @Produce     json
// @Param       body body request.ProposalRequest true "Request body"
// @Success     201 {object} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), p, req.ToCommand())
	if err != nil {
		log.Info().Err(err).Str("user_id", p.UserID).Msg("[proposal][handler] create failed")
		writeError(c, err)
		return
	}
	log.Info().Str("proposal_id", created.ID).Str("number", created.Number).Msg("[proposal][handler] created")
	c.JSON(http.StatusCreated, response.FromProposal(created))
}

// List godoc
// @Summary     List proposals visible to the caller
// @Tags        proposals
// @Produce     json
// @Success     200 {array} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals [get]
func (h *ProposalHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(list))
}

// Get godoc
// @Summary     Get a proposal
// @Tags        proposals
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Success     200 {object} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id} [get]
func (h *ProposalHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	found, err := h.usecase.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(found))
}

// Update godoc
// @Summary     Replace proposal configurations
// @Tags        proposals
// @Accept      json
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Param       body body request.ProposalRequest true "Request body"
// @Success     200 {object} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id} [put]
func (h *ProposalHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), p, c.Param("id"), req.ToCommand())
	if err != nil {
		log.Info().Err(err).Str("proposal_id", c.Param("id")).Msg("[proposal][handler] update failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(updated))
}

// Delete godoc
// @Summary     Delete a proposal
// @Tags        proposals
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Success     204
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id} [delete]
func (h *ProposalHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyNegotiationRound godoc
// @Summary     Apply a negotiation round
// @Tags        negotiation
// @Accept      json
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Param       body body request.NegotiationRoundRequest true "Request body"
// @Success     200 {object} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id}/negotiation-rounds [post]
func (h *ProposalHandler) ApplyNegotiationRound(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.NegotiationRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.usecase.ApplyNegotiationRound(c.Request.Context(), p, c.Param("id"), req.RoundNumber, req.DiscountPercent, req.Reason)
	if err != nil {
		log.Info().Err(err).Str("proposal_id", c.Param("id")).Int("round", req.RoundNumber).Msg("[proposal][handler] negotiation round failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(updated))
}

// SetDirectorDiscount godoc
// @Summary     Set the director discount
// @Tags        negotiation
// @Accept      json
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Param       body body request.DirectorDiscountRequest true "Request body"
// @Success     200 {object} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id}/director-discount [post]
func (h *ProposalHandler) SetDirectorDiscount(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.DirectorDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.usecase.SetDirectorDiscount(c.Request.Context(), p, c.Param("id"), req.DiscountPercent, req.Reason)
	if err != nil {
		log.Info().Err(err).Str("proposal_id", c.Param("id")).Msg("[proposal][handler] director discount failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(updated))
}

// Finalize godoc
// @Summary     Finalize the negotiation
// @Tags        negotiation
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Success     200 {object} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id}/finalize [post]
func (h *ProposalHandler) Finalize(c *gin.Context) {
	h.lifecycle(c, "finalize", h.usecase.Finalize)
}

// Approve godoc
// @Summary     Approve a proposal
// @Tags        proposals
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Success     200 {object} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id}/approve [patch]
func (h *ProposalHandler) Approve(c *gin.Context) {
	h.lifecycle(c, "approve", h.usecase.Approve)
}

// Reject godoc
// @Summary     Reject a proposal
// @Tags        proposals
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Success     200 {object} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id}/reject [patch]
func (h *ProposalHandler) Reject(c *gin.Context) {
	h.lifecycle(c, "reject", h.usecase.Reject)
}

// Cancel godoc
// @Summary     Cancel a proposal
// @Tags        proposals
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Success     200 {object} response.ProposalResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id}/cancel [patch]
func (h *ProposalHandler) Cancel(c *gin.Context) {
	h.lifecycle(c, "cancel", h.usecase.Cancel)
}

type proposalAction func(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error)

func (h *ProposalHandler) lifecycle(c *gin.Context, name string, action proposalAction) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id := c.Param("id")
	updated, err := action(c.Request.Context(), p, id)
	if err != nil {
		log.Info().Err(err).Str("proposal_id", id).Str("action", name).Msg("[proposal][handler] lifecycle failed")
		writeError(c, err)
		return
	}
	log.Info().Str("proposal_id", id).Str("action", name).Str("status", string(updated.Status)).Msg("[proposal][handler] lifecycle done")
	c.JSON(http.StatusOK, response.FromProposal(updated))
}

// Export downloads the proposal as CSV.
//
// @Summary     Export a proposal as CSV
// @Tags        proposals
// @Produce     text/csv
// @Param       id path string true "Proposal ID"
// @Success     200 {file} file
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id}/export [get]
func (h *ProposalHandler) Export(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id := c.Param("id")
	body, err := h.usecase.Export(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="proposta-%s.csv"`, id))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
