package interfaces

import (
	"context"
	"errors"

	"cotador_telecom/internal/domain/entities"
)

// ErrConcurrentUpdate is returned when a conditional write lost the race
// against another writer of the same record.
var ErrConcurrentUpdate = errors.New("concurrent update")

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Reads return a zero Proposal (empty ID) when nothing is found. Update only
// succeeds when the stored version equals expectedVersion.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	ListByCreator(ctx context.Context, userID string) ([]entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal, expectedVersion int64) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
}
