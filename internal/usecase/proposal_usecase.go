package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cotador_telecom/internal/domain/authz"
	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/domain/negotiation"
	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/infrastructure/metrics"
	"cotador_telecom/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrProposalNotFound        = errors.New("proposal not found")
	ErrInvalidProposalID       = errors.New("invalid proposal id")
	ErrInvalidClient           = errors.New("client name is required")
	ErrEmptyProposal           = errors.New("proposal has no configurations")
	ErrNegotiationInProgress   = errors.New("negotiation in progress")
	ErrInvalidStatusTransition = errors.New("invalid proposal status transition")
	ErrProposalLocked          = errors.New("proposal is no longer pending")
	ErrForbidden               = errors.New("forbidden")
)

const proposalSequence = "proposal"

// ProposalCommand carries the editable part of a proposal.
// ResetNegotiation is only honoured by Update.
type ProposalCommand struct {
	Title            string
	Client           entities.ClientInfo
	Notes            string
	Configurations   []pricing.Configuration
	ResetNegotiation bool
}

// IProposalUseCase exposes proposal operations: pricing, negotiation and the
// pendente -> aprovada|rejeitada|cancelada lifecycle.
type IProposalUseCase interface {
	Create(ctx context.Context, principal authz.Principal, cmd ProposalCommand) (entities.Proposal, error)
	Get(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error)
	List(ctx context.Context, principal authz.Principal) ([]entities.Proposal, error)
	Update(ctx context.Context, principal authz.Principal, id string, cmd ProposalCommand) (entities.Proposal, error)
	ApplyNegotiationRound(ctx context.Context, principal authz.Principal, id string, roundNumber int, pct decimal.Decimal, reason string) (entities.Proposal, error)
	SetDirectorDiscount(ctx context.Context, principal authz.Principal, id string, pct decimal.Decimal, reason string) (entities.Proposal, error)
	Finalize(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error)
	Approve(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error)
	Reject(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error)
	Cancel(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error)
	Delete(ctx context.Context, principal authz.Principal, id string) error
	Export(ctx context.Context, principal authz.Principal, id string) ([]byte, error)
}

type ProposalUseCase struct {
	repo        interfaces.IProposalRepository
	seq         interfaces.ISequenceGenerator
	priceTables IPriceTableUseCase
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, seq interfaces.ISequenceGenerator, priceTables IPriceTableUseCase) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, seq: seq, priceTables: priceTables}
}

func (u *ProposalUseCase) Create(ctx context.Context, principal authz.Principal, cmd ProposalCommand) (entities.Proposal, error) {
	if err := validateCommand(cmd); err != nil {
		return entities.Proposal{}, err
	}

	items, version, err := u.priceItems(ctx, cmd.Configurations)
	if err != nil {
		metrics.ProposalEvents.WithLabelValues("create", "rejected").Inc()
		return entities.Proposal{}, err
	}

	n, err := u.seq.Next(ctx, proposalSequence)
	if err != nil {
		log.Error().Err(err).Msg("[proposal][usecase] sequence failed")
		return entities.Proposal{}, err
	}

	neg, err := negotiation.New(pricing.Aggregate(items).TotalMonthly)
	if err != nil {
		return entities.Proposal{}, err
	}
	neg.Finalize()

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:     uuid.NewString(),
		Number: fmt.Sprintf("PROP-%06d", n),
		Title:  strings.TrimSpace(cmd.Title),
		Client: trimClient(cmd.Client),
		AccountManager: entities.AccountManager{
			UserID: principal.UserID,
			Name:   principal.Name,
			Email:  principal.Email,
		},
		LineItems:         items,
		PriceTableVersion: version,
		Negotiation:       neg,
		Status:            entities.ProposalStatusPendente,
		Notes:             strings.TrimSpace(cmd.Notes),
		CreatedBy:         principal.UserID,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		metrics.ProposalEvents.WithLabelValues("create", "error").Inc()
		log.Error().Err(err).Str("proposal_id", p.ID).Msg("[proposal][usecase] create failed")
		return entities.Proposal{}, err
	}
	metrics.ProposalEvents.WithLabelValues("create", "ok").Inc()
	log.Info().Str("proposal_id", created.ID).Str("number", created.Number).Int("items", len(items)).
		Bool("requires_manual_quote", created.RequiresManualQuote()).Msg("[proposal][usecase] created")
	return created, nil
}

func (u *ProposalUseCase) Get(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	if !authz.OwnsOrOversees(principal, p.CreatedBy) {
		return entities.Proposal{}, ErrForbidden
	}
	return p, nil
}

// List returns every proposal to admins and directors and only their own
// proposals to salespeople, newest first.
func (u *ProposalUseCase) List(ctx context.Context, principal authz.Principal) ([]entities.Proposal, error) {
	var (
		out []entities.Proposal
		err error
	)
	if authz.Can(principal, authz.ActionProposalReadAll) {
		out, err = u.repo.List(ctx)
	} else {
		out, err = u.repo.ListByCreator(ctx, principal.UserID)
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update re-prices the proposal against the current price table. A changed
// monthly total invalidates existing discounts, so it is refused unless the
// caller asks to reset the negotiation.
func (u *ProposalUseCase) Update(ctx context.Context, principal authz.Principal, id string, cmd ProposalCommand) (entities.Proposal, error) {
	if err := validateCommand(cmd); err != nil {
		return entities.Proposal{}, err
	}
	items, version, err := u.priceItems(ctx, cmd.Configurations)
	if err != nil {
		return entities.Proposal{}, err
	}
	total := pricing.Aggregate(items).TotalMonthly

	return u.mutate(ctx, principal, id, "update", func(p *entities.Proposal) error {
		if p.Status != entities.ProposalStatusPendente {
			return ErrProposalLocked
		}
		changed := !total.Equal(p.Negotiation.OriginalMonthlyTotal)
		if changed && p.Negotiation.HasDiscounts() && !cmd.ResetNegotiation {
			return ErrNegotiationInProgress
		}
		if changed || cmd.ResetNegotiation || p.Negotiation.State == "" {
			neg, err := negotiation.New(total)
			if err != nil {
				return err
			}
			p.Negotiation = neg
		}
		p.Negotiation.Finalize()

		p.Title = strings.TrimSpace(cmd.Title)
		p.Client = trimClient(cmd.Client)
		p.Notes = strings.TrimSpace(cmd.Notes)
		p.LineItems = items
		p.PriceTableVersion = version
		return nil
	})
}

// ApplyNegotiationRound appends the next salesperson round. roundNumber 0
// means "the next one"; any other value must match it exactly.
func (u *ProposalUseCase) ApplyNegotiationRound(ctx context.Context, principal authz.Principal, id string, roundNumber int, pct decimal.Decimal, reason string) (entities.Proposal, error) {
	return u.mutate(ctx, principal, id, "negotiation_round", func(p *entities.Proposal) error {
		if err := u.openNegotiation(p); err != nil {
			return err
		}
		if roundNumber == 0 {
			roundNumber = p.Negotiation.NextRoundNumber()
		}
		if _, err := p.Negotiation.ApplyRound(roundNumber, pct, reason, principal.UserID, time.Now().UTC()); err != nil {
			return err
		}
		metrics.DiscountPercent.WithLabelValues("round").Observe(pct.InexactFloat64())
		return nil
	})
}

func (u *ProposalUseCase) SetDirectorDiscount(ctx context.Context, principal authz.Principal, id string, pct decimal.Decimal, reason string) (entities.Proposal, error) {
	if !authz.Can(principal, authz.ActionProposalDirectorDiscount) {
		return entities.Proposal{}, ErrForbidden
	}
	return u.mutate(ctx, principal, id, "director_discount", func(p *entities.Proposal) error {
		if err := u.openNegotiation(p); err != nil {
			return err
		}
		if _, err := p.Negotiation.SetDirectorDiscount(pct, reason, principal.UserID, time.Now().UTC()); err != nil {
			return err
		}
		metrics.DiscountPercent.WithLabelValues("director").Observe(pct.InexactFloat64())
		return nil
	})
}

// Finalize saves the negotiation in its current form.
func (u *ProposalUseCase) Finalize(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error) {
	return u.mutate(ctx, principal, id, "finalize", func(p *entities.Proposal) error {
		if p.Negotiation.State == "" {
			neg, err := negotiation.New(p.Totals().TotalMonthly)
			if err != nil {
				return err
			}
			p.Negotiation = neg
		}
		p.Negotiation.Finalize()
		return nil
	})
}

func (u *ProposalUseCase) Approve(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error) {
	return u.transition(ctx, principal, id, entities.ProposalStatusAprovada)
}

func (u *ProposalUseCase) Reject(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error) {
	return u.transition(ctx, principal, id, entities.ProposalStatusRejeitada)
}

func (u *ProposalUseCase) Cancel(ctx context.Context, principal authz.Principal, id string) (entities.Proposal, error) {
	return u.transition(ctx, principal, id, entities.ProposalStatusCancelada)
}

func (u *ProposalUseCase) Delete(ctx context.Context, principal authz.Principal, id string) error {
	if !authz.Can(principal, authz.ActionProposalDelete) {
		return ErrForbidden
	}
	p, err := u.Get(ctx, principal, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, p.ID); err != nil {
		log.Error().Err(err).Str("proposal_id", p.ID).Msg("[proposal][usecase] delete failed")
		return err
	}
	metrics.ProposalEvents.WithLabelValues("delete", "ok").Inc()
	log.Info().Str("proposal_id", p.ID).Str("deleted_by", principal.UserID).Msg("[proposal][usecase] deleted")
	return nil
}

func (u *ProposalUseCase) transition(ctx context.Context, principal authz.Principal, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	return u.mutate(ctx, principal, id, string(status), func(p *entities.Proposal) error {
		if !p.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, p.Status, status)
		}
		if status == entities.ProposalStatusAprovada && p.RequiresManualQuote() {
			return fmt.Errorf("%w: line items still require a manual quote", ErrInvalidStatusTransition)
		}
		p.Status = status
		if p.Negotiation.State != "" {
			p.Negotiation.Finalize()
		}
		return nil
	})
}

// mutate loads the proposal, applies fn and writes it back guarded by the
// version read. A concurrent writer makes the write fail instead of
// reordering or duplicating negotiation rounds.
func (u *ProposalUseCase) mutate(ctx context.Context, principal authz.Principal, id, event string, fn func(p *entities.Proposal) error) (entities.Proposal, error) {
	p, err := u.Get(ctx, principal, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := fn(&p); err != nil {
		metrics.ProposalEvents.WithLabelValues(event, "rejected").Inc()
		log.Debug().Err(err).Str("proposal_id", p.ID).Str("event", event).Msg("[proposal][usecase] change rejected")
		return entities.Proposal{}, err
	}

	expected := p.Version
	p.Version = expected + 1
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p, expected)
	if err != nil {
		metrics.ProposalEvents.WithLabelValues(event, "error").Inc()
		log.Warn().Err(err).Str("proposal_id", p.ID).Str("event", event).Int64("expected_version", expected).
			Msg("[proposal][usecase] write failed")
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	metrics.ProposalEvents.WithLabelValues(event, "ok").Inc()
	log.Info().Str("proposal_id", updated.ID).Str("event", event).Int64("version", updated.Version).
		Str("negotiation_state", string(updated.Negotiation.State)).Msg("[proposal][usecase] updated")
	return updated, nil
}

func (u *ProposalUseCase) openNegotiation(p *entities.Proposal) error {
	if p.Status != entities.ProposalStatusPendente {
		return ErrProposalLocked
	}
	if p.Negotiation.State == "" {
		neg, err := negotiation.New(p.Totals().TotalMonthly)
		if err != nil {
			return err
		}
		p.Negotiation = neg
	}
	p.Negotiation.Reopen()
	return nil
}

// priceItems prices every configuration against one snapshot, so a proposal
// never mixes price table versions.
func (u *ProposalUseCase) priceItems(ctx context.Context, cfgs []pricing.Configuration) ([]pricing.LineItem, int64, error) {
	table, err := u.priceTables.Current(ctx)
	if err != nil {
		return nil, 0, err
	}
	items := make([]pricing.LineItem, 0, len(cfgs))
	for i, cfg := range cfgs {
		item, err := calculateItem(cfg, table)
		if err != nil {
			return nil, 0, fmt.Errorf("configurations[%d]: %w", i, err)
		}
		items = append(items, item.WithID(uuid.NewString()))
	}
	return items, table.Version, nil
}

func validateCommand(cmd ProposalCommand) error {
	if strings.TrimSpace(cmd.Client.Name) == "" {
		return ErrInvalidClient
	}
	if len(cmd.Configurations) == 0 {
		return ErrEmptyProposal
	}
	return nil
}

func trimClient(c entities.ClientInfo) entities.ClientInfo {
	return entities.ClientInfo{
		Name:     strings.TrimSpace(c.Name),
		Document: strings.TrimSpace(c.Document),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		Contact:  strings.TrimSpace(c.Contact),
	}
}
