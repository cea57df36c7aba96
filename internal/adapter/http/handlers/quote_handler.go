package handlers

import (
	"net/http"

	"cotador_telecom/internal/adapter/http/dto/request"
	"cotador_telecom/internal/adapter/http/dto/response"
	"cotador_telecom/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Calculate prices one configuration against the current price table.
//
// @Summary     Calculate a quote
// @Tags        quotes
// @Accept      json
// @Produce     json
// @Param       body body request.ConfigurationRequest true "Request body"
// @Success     200 {object} response.LineItemResponse
// @Failure     400 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /quotes/calculate [post]
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var req request.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.usecase.Calculate(c.Request.Context(), req.ToDomain())
	if err != nil {
		log.Info().Err(err).Str("family", req.Family).Msg("[quote][handler] calculate failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLineItem(item))
}
