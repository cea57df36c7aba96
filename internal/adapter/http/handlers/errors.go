package handlers

import (
	"errors"
	"net/http"

	"cotador_telecom/internal/adapter/http/middleware"
	"cotador_telecom/internal/domain/authz"
	"cotador_telecom/internal/domain/negotiation"
	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/usecase"
	"cotador_telecom/internal/usecase/interfaces"
	"cotador_telecom/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid token", http.StatusUnauthorized)
)

// mapError translates use case and domain errors into the HTTP envelope.
func mapError(err error) *pkg.AppError {
	var incomplete *pricing.IncompleteConfigurationError
	var badTable *pricing.PriceTableError

	switch {
	case errors.As(err, &incomplete):
		return pkg.NewDomainError("INCOMPLETE_CONFIGURATION", "Configuration is missing required selections", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"family": incomplete.Family, "fields": incomplete.Fields})
	case errors.As(err, &badTable):
		return pkg.NewDomainError("INVALID_PRICE_TABLE", "Price table is invalid", err, http.StatusUnprocessableEntity).
			WithDetails(gin.H{"problems": badTable.Problems})

	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidPriceTableVersion):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidClient):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT", "Client name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyProposal):
		return pkg.NewDomainErrorSimple("EMPTY_PROPOSAL", "Proposal has no configurations", http.StatusBadRequest)

	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this user", http.StatusForbidden)

	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceTableNotFound):
		return pkg.NewDomainErrorSimple("PRICE_TABLE_NOT_FOUND", "Price table version not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSetupPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)

	case errors.Is(err, interfaces.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Resource was modified by another request", http.StatusConflict)
	case errors.Is(err, usecase.ErrNegotiationInProgress):
		return pkg.NewDomainErrorSimple("NEGOTIATION_IN_PROGRESS", "Totals changed while discounts are applied; resend with reset_negotiation", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalLocked):
		return pkg.NewDomainErrorSimple("PROPOSAL_LOCKED", "Proposal is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalNotApproved):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_APPROVED", "Proposal not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrSetupAlreadyPaid):
		return pkg.NewDomainErrorSimple("SETUP_ALREADY_PAID", "Setup fee already charged for this proposal", http.StatusConflict)
	case errors.Is(err, negotiation.ErrRoundOutOfOrder):
		return pkg.NewDomainErrorSimple("ROUND_OUT_OF_ORDER", "Negotiation round out of order", http.StatusConflict)
	case errors.Is(err, negotiation.ErrFinalized):
		return pkg.NewDomainErrorSimple("NEGOTIATION_FINALIZED", "Negotiation is finalized", http.StatusConflict)
	case errors.Is(err, negotiation.ErrDirectorOverride):
		return pkg.NewDomainErrorSimple("DIRECTOR_DISCOUNT_SET", "Director discount already set", http.StatusConflict)

	case errors.Is(err, negotiation.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount must be greater than 0 and at most 100", http.StatusUnprocessableEntity)
	case errors.Is(err, negotiation.ErrMissingReason):
		return pkg.NewDomainErrorSimple("MISSING_REASON", "Discount reason is required", http.StatusUnprocessableEntity)
	case errors.Is(err, negotiation.ErrNegativeBaseline):
		return pkg.NewDomainErrorSimple("INVALID_TOTAL", "Monthly total cannot be negative", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Proposal has no setup fee", http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bindError(c *gin.Context, err error) {
	appErr := errInvalidRequest.WithDetails(err.Error())
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// principal returns the authenticated caller or writes 401 and reports false.
func principal(c *gin.Context) (authz.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return authz.Principal{}, false
	}
	return p, true
}
