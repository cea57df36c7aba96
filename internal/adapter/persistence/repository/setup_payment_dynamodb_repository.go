package repository

import (
	"context"
	"fmt"
	"time"

	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	setupPaymentsProposalIDIndex = "proposal_id-index"
	// chargeClaimPrefix keys the per-proposal claim item. Claims carry no
	// proposal_id so they stay out of the GSI.
	chargeClaimPrefix = "charge-claim#"
)

type setupPaymentItem struct {
	ID           string         `dynamodbav:"id"`
	ProposalID   string         `dynamodbav:"proposal_id"`
	Amount       string         `dynamodbav:"amount"`
	Date         string         `dynamodbav:"date"`
	Status       string         `dynamodbav:"status"`
	MPPayload    map[string]any `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string         `dynamodbav:"mp_payload_raw,omitempty"`
}

// SetupPaymentDynamoRepository persists SetupPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)
//
// The same table holds one claim item per proposal being charged.
type SetupPaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISetupPaymentRepository = (*SetupPaymentDynamoRepository)(nil)

func NewSetupPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *SetupPaymentDynamoRepository {
	return &SetupPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SetupPaymentDynamoRepository) Create(ctx context.Context, p entities.SetupPayment) (entities.SetupPayment, error) {
	av, err := attributevalue.MarshalMap(toSetupPaymentItem(p))
	if err != nil {
		return entities.SetupPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.SetupPayment{}, err
	}
	return p, nil
}

func (r *SetupPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.SetupPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SetupPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.SetupPayment{}, nil
	}

	var it setupPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SetupPayment{}, err
	}
	return fromSetupPaymentItem(it), nil
}

func (r *SetupPaymentDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.SetupPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(setupPaymentsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SetupPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it setupPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSetupPaymentItem(it))
	}
	return items, nil
}

func (r *SetupPaymentDynamoRepository) ClaimCharge(ctx context.Context, proposalID string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":         &types.AttributeValueMemberS{Value: chargeClaimPrefix + proposalID},
			"claimed_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return fmt.Errorf("proposal %s: %w", proposalID, interfaces.ErrChargeInProgress)
		}
		return err
	}
	return nil
}

func (r *SetupPaymentDynamoRepository) ReleaseCharge(ctx context.Context, proposalID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: chargeClaimPrefix + proposalID},
		},
	})
	return err
}

func toSetupPaymentItem(p entities.SetupPayment) setupPaymentItem {
	return setupPaymentItem{
		ID:           p.ID,
		ProposalID:   p.ProposalID,
		Amount:       p.Amount.StringFixed(2),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromSetupPaymentItem(it setupPaymentItem) entities.SetupPayment {
	return entities.SetupPayment{
		ID:           it.ID,
		ProposalID:   it.ProposalID,
		Amount:       parseDecimal(it.Amount),
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
