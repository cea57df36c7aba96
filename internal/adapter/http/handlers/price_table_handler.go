package handlers

import (
	"net/http"
	"strconv"

	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PriceTableHandler struct {
	usecase usecase.IPriceTableUseCase
}

func NewPriceTableHandler(uc usecase.IPriceTableUseCase) *PriceTableHandler {
	return &PriceTableHandler{usecase: uc}
}

// Current godoc
// @Summary     Current price table
// @Tags        price-tables
// @Produce     json
// @Success     200 {object} pricing.PriceTable
// @Failure     400 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /price-tables/current [get]
func (h *PriceTableHandler) Current(c *gin.Context) {
	table, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("[pricetable][handler] current failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// GetVersion godoc
// @Summary     Price table by version
// @Tags        price-tables
// @Produce     json
// @Param       version path int true "Price table version"
// @Success     200 {object} pricing.PriceTable
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /price-tables/{version} [get]
func (h *PriceTableHandler) GetVersion(c *gin.Context) {
	version, err := strconv.ParseInt(c.Param("version"), 10, 64)
	if err != nil || version <= 0 {
		writeError(c, usecase.ErrInvalidPriceTableVersion)
		return
	}
	table, err := h.usecase.GetVersion(c.Request.Context(), version)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// Publish stores the body as the next price table version. Version,
// effective date and author are assigned by the server.
//
// @Summary     Publish a price table version
// @Tags        price-tables
// @Accept      json
// @Produce     json
// @Param       body body pricing.PriceTable true "Request body"
// @Success     201 {object} pricing.PriceTable
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Security    Bearer
// @Router      /price-tables [put]
func (h *PriceTableHandler) Publish(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var table pricing.PriceTable
	if err := c.ShouldBindJSON(&table); err != nil {
		bindError(c, err)
		return
	}

	published, err := h.usecase.Publish(c.Request.Context(), p, table)
	if err != nil {
		log.Warn().Err(err).Str("user_id", p.UserID).Msg("[pricetable][handler] publish failed")
		writeError(c, err)
		return
	}
	log.Info().Int64("version", published.Version).Str("user_id", p.UserID).Msg("[pricetable][handler] published")
	c.JSON(http.StatusCreated, published)
}
