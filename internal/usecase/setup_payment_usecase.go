package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cotador_telecom/internal/domain/authz"
	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/infrastructure/metrics"
	"cotador_telecom/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrSetupPaymentNotFound           = errors.New("setup payment not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrProposalNotApproved            = errors.New("proposal not approved")
	ErrNothingToCharge                = errors.New("proposal has no setup fee")
	ErrSetupAlreadyPaid               = errors.New("setup fee already charged")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// SetupPaymentOptions controls payload checks that differ between sandbox,
// mock and production accounts. Mock charging itself happens in the gateway.
type SetupPaymentOptions struct {
	MockMode       bool
	Sandbox        bool
	TestPayerEmail string
}

// ISetupPaymentUseCase charges the setup fee of an approved proposal.
type ISetupPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, principal authz.Principal, proposalID string, mpPayload json.RawMessage) (entities.SetupPayment, error)
	GetByID(ctx context.Context, id string) (entities.SetupPayment, error)
	ListByProposalID(ctx context.Context, principal authz.Principal, proposalID string) ([]entities.SetupPayment, error)
}

type SetupPaymentUseCase struct {
	repo      interfaces.ISetupPaymentRepository
	proposals IProposalUseCase
	gateway   interfaces.IPaymentGateway
	opts      SetupPaymentOptions
}

var _ ISetupPaymentUseCase = (*SetupPaymentUseCase)(nil)

func NewSetupPaymentUseCase(repo interfaces.ISetupPaymentRepository, proposals IProposalUseCase, gateway interfaces.IPaymentGateway, opts SetupPaymentOptions) *SetupPaymentUseCase {
	return &SetupPaymentUseCase{repo: repo, proposals: proposals, gateway: gateway, opts: opts}
}

// CreateAndApprove charges total_setup of the proposal. The amount always
// comes from the stored proposal, never from the client payload.
func (u *SetupPaymentUseCase) CreateAndApprove(ctx context.Context, principal authz.Principal, proposalID string, mpPayload json.RawMessage) (entities.SetupPayment, error) {
	proposalID = strings.TrimSpace(proposalID)
	logger := log.With().Str("proposal_id", proposalID).Bool("mock", u.opts.MockMode).Logger()
	logger.Debug().Int("payload_len", len(mpPayload)).Msg("[payment][usecase] create-and-approve start")

	if proposalID == "" {
		return entities.SetupPayment{}, ErrInvalidProposalID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			return entities.SetupPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.SetupPayment{}, ErrPaymentGatewayNotConfigured
	}

	p, err := u.proposals.Get(ctx, principal, proposalID)
	if err != nil {
		logger.Warn().Err(err).Msg("[payment][usecase] failed loading proposal")
		return entities.SetupPayment{}, err
	}
	if p.Status != entities.ProposalStatusAprovada {
		logger.Info().Str("status", string(p.Status)).Msg("[payment][usecase] proposal not approved")
		return entities.SetupPayment{}, ErrProposalNotApproved
	}
	amount := p.Totals().TotalSetup.Round(2)
	if !amount.IsPositive() {
		return entities.SetupPayment{}, ErrNothingToCharge
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.MockMode {
			return entities.SetupPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			logger.Info().Msg("[payment][usecase] missing payment_method_id")
			return entities.SetupPayment{}, ErrInvalidMPPayload
		}
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			logger.Info().Msg("[payment][usecase] missing/invalid payer")
			return entities.SetupPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = p.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Setup %s - %s", p.Number, p.Client.Name)
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.SetupPayment{}, err
	}

	if err := u.ensureNotCharged(ctx, p.ID); err != nil {
		logger.Info().Err(err).Msg("[payment][usecase] setup fee already charged")
		return entities.SetupPayment{}, err
	}
	if err := u.repo.ClaimCharge(ctx, p.ID); err != nil {
		if errors.Is(err, interfaces.ErrChargeInProgress) {
			logger.Info().Err(err).Msg("[payment][usecase] concurrent setup charge")
			return entities.SetupPayment{}, fmt.Errorf("%w: %v", ErrSetupAlreadyPaid, err)
		}
		return entities.SetupPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	mode := "live"
	if u.opts.MockMode {
		mode = "mock"
	}
	if err != nil {
		metrics.SetupPayments.WithLabelValues(mode, "error").Inc()
		logger.Error().Err(err).Msg("[payment][usecase] payment gateway failed")
		u.releaseCharge(ctx, p.ID)
		return entities.SetupPayment{}, classifyGatewayError(err)
	}
	logger.Info().Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).
		Msg("[payment][usecase] payment gateway success")

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.Warn().Err(err).Msg("[payment][usecase] provider response unmarshal failed")
	}

	sp := entities.SetupPayment{
		ID:           providerPaymentID,
		ProposalID:   p.ID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, sp)
	if err != nil {
		// The provider may have charged; the claim stays until someone reconciles it.
		metrics.SetupPayments.WithLabelValues(mode, "error").Inc()
		logger.Error().Err(err).Str("payment_id", sp.ID).Msg("[payment][usecase] repository create failed")
		return entities.SetupPayment{}, err
	}
	if created.Status == entities.PaymentStatusNegado {
		u.releaseCharge(ctx, p.ID)
	}
	metrics.SetupPayments.WithLabelValues(mode, string(created.Status)).Inc()
	return created, nil
}

func (u *SetupPaymentUseCase) GetByID(ctx context.Context, id string) (entities.SetupPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SetupPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SetupPayment{}, err
	}
	if p.ID == "" {
		return entities.SetupPayment{}, ErrSetupPaymentNotFound
	}
	return p, nil
}

// ListByProposalID returns the payments of a proposal the caller can see,
// newest first.
func (u *SetupPaymentUseCase) ListByProposalID(ctx context.Context, principal authz.Principal, proposalID string) ([]entities.SetupPayment, error) {
	p, err := u.proposals.Get(ctx, principal, proposalID)
	if err != nil {
		return nil, err
	}
	payments, err := u.repo.ListByProposalID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })
	return payments, nil
}

// ensureNotCharged refuses a new charge while an approved or pending payment
// exists for the proposal. Rejected payments may be retried.
func (u *SetupPaymentUseCase) ensureNotCharged(ctx context.Context, proposalID string) error {
	existing, err := u.repo.ListByProposalID(ctx, proposalID)
	if err != nil {
		return err
	}
	for _, sp := range existing {
		switch sp.Status {
		case entities.PaymentStatusAprovado, entities.PaymentStatusPendente:
			return fmt.Errorf("%w: payment %s is %s", ErrSetupAlreadyPaid, sp.ID, sp.Status)
		}
	}
	return nil
}

func (u *SetupPaymentUseCase) releaseCharge(ctx context.Context, proposalID string) {
	if err := u.repo.ReleaseCharge(ctx, proposalID); err != nil {
		log.Error().Err(err).Str("proposal_id", proposalID).Msg("[payment][usecase] failed releasing setup charge claim")
	}
}

func (u *SetupPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; fill the email
	// only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.Sandbox {
		payer["email"] = "test_user_br@testuser.com"
	}
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
