package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"cotador_telecom/internal/adapter/http/dto/response"
	"cotador_telecom/internal/usecase"
	"cotador_telecom/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SetupPaymentHandler charges and queries the setup fee of a proposal.
type SetupPaymentHandler struct {
	usecase  usecase.ISetupPaymentUseCase
	mockMode bool
}

// NewSetupPaymentHandler builds the handler. In mock mode an unreadable body
// falls back to an empty Mercado Pago payload instead of failing.
func NewSetupPaymentHandler(uc usecase.ISetupPaymentUseCase, mockMode bool) *SetupPaymentHandler {
	return &SetupPaymentHandler{usecase: uc, mockMode: mockMode}
}

// Create godoc
// @Summary     Charge the setup fee
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Param       body body object true "Request body"
// @Success     200 {object} response.SetupPaymentResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Failure     409 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id}/setup-payment [post]
func (h *SetupPaymentHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	proposalID := c.Param("id")
	log.Debug().Str("proposal_id", proposalID).Msg("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info().Err(err).Str("proposal_id", proposalID).Msg("[payment][handler] invalid payload")
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
		log.Warn().Err(err).Str("proposal_id", proposalID).Msg("[payment][handler] payload invalid in mock mode; using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), p, proposalID, mpPayload)
	if err != nil {
		log.Warn().Err(err).Str("proposal_id", proposalID).Msg("[payment][handler] create failed")
		writeError(c, err)
		return
	}
	log.Info().Str("proposal_id", proposalID).Str("payment_id", created.ID).Str("status", string(created.Status)).
		Msg("[payment][handler] create success")
	c.JSON(http.StatusOK, response.FromSetupPayment(created))
}

// GetLatest returns the most recent setup payment of the proposal.
//
// @Summary     Latest setup payment
// @Tags        payments
// @Produce     json
// @Param       id path string true "Proposal ID"
// @Success     200 {object} response.SetupPaymentResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /proposals/{id}/setup-payment [get]
func (h *SetupPaymentHandler) GetLatest(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	proposalID := c.Param("id")
	payments, err := h.usecase.ListByProposalID(c.Request.Context(), p, proposalID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, pm := range payments[1:] {
		if pm.Date.After(latest.Date) {
			latest = pm
		}
	}
	c.JSON(http.StatusOK, response.FromSetupPayment(latest))
}

// readMPPayload accepts either the raw Mercado Pago body or an envelope
// {"mp_payload": {...}}. An empty body is an empty payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
