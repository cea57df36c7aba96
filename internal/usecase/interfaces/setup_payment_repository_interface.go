package interfaces

import (
	"context"
	"errors"

	"cotador_telecom/internal/domain/entities"
)

// ErrChargeInProgress is returned by ClaimCharge when another request already
// holds the setup charge of the proposal.
var ErrChargeInProgress = errors.New("setup charge in progress")

// ISetupPaymentRepository abstracts DynamoDB persistence for SetupPayment.
type ISetupPaymentRepository interface {
	Create(ctx context.Context, p entities.SetupPayment) (entities.SetupPayment, error)
	GetByID(ctx context.Context, id string) (entities.SetupPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.SetupPayment, error)
	// ClaimCharge takes the single setup-charge slot of a proposal. It fails
	// with ErrChargeInProgress while the slot is held.
	ClaimCharge(ctx context.Context, proposalID string) error
	// ReleaseCharge frees the slot so a failed or rejected charge can be retried.
	ReleaseCharge(ctx context.Context, proposalID string) error
}
