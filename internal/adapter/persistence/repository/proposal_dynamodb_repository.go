package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"cotador_telecom/internal/domain/entities"
	"cotador_telecom/internal/domain/negotiation"
	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const proposalsCreatedByIndex = "created_by-index"

type clientItem struct {
	Name     string `dynamodbav:"name"`
	Document string `dynamodbav:"document,omitempty"`
	Email    string `dynamodbav:"email,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty"`
	Contact  string `dynamodbav:"contact,omitempty"`
}

type accountManagerItem struct {
	UserID string `dynamodbav:"user_id"`
	Name   string `dynamodbav:"name,omitempty"`
	Email  string `dynamodbav:"email,omitempty"`
}

// proposalItem keeps money as decimal strings. Line items and negotiation
// history are stored as JSON documents; totals are denormalized copies for
// reporting and are recomputed from the line items on read.
type proposalItem struct {
	ID                string             `dynamodbav:"id"`
	Number            string             `dynamodbav:"number"`
	Title             string             `dynamodbav:"title,omitempty"`
	Client            clientItem         `dynamodbav:"client"`
	AccountManager    accountManagerItem `dynamodbav:"account_manager"`
	LineItems         string             `dynamodbav:"line_items"`
	Negotiation       string             `dynamodbav:"negotiation"`
	PriceTableVersion int64              `dynamodbav:"price_table_version"`
	TotalSetup        string             `dynamodbav:"total_setup"`
	TotalMonthly      string             `dynamodbav:"total_monthly"`
	FinalMonthly      string             `dynamodbav:"final_monthly_total"`
	Status            string             `dynamodbav:"status"`
	Notes             string             `dynamodbav:"notes,omitempty"`
	CreatedBy         string             `dynamodbav:"created_by"`
	Version           int64              `dynamodbav:"version"`
	CreatedAt         string             `dynamodbav:"created_at"`
	UpdatedAt         string             `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: created_by-index (PK: created_by)
type ProposalDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoDBAPI, tableName string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := marshalProposal(p)
	if err != nil {
		return entities.Proposal{}, err
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
		if _, ok := conditionFailed(err); ok {
			return entities.Proposal{}, fmt.Errorf("proposal %s: %w", p.ID, interfaces.ErrConcurrentUpdate)
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}
	return unmarshalProposal(out.Item)
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var out []entities.Proposal
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalProposals(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func (r *ProposalDynamoRepository) ListByCreator(ctx context.Context, userID string) ([]entities.Proposal, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsCreatedByIndex),
		KeyConditionExpression: aws.String("created_by = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	var out []entities.Proposal
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalProposals(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// Update replaces the whole item when the stored version still equals
// expectedVersion. A missing item yields a zero Proposal.
func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.Proposal, expectedVersion int64) (entities.Proposal, error) {
	av, err := marshalProposal(p)
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := conditionFailed(err); ok {
			if len(cfe.Item) == 0 {
				return entities.Proposal{}, nil
			}
			log.Warn().Str("proposal_id", p.ID).Int64("expected_version", expectedVersion).
				Msg("[proposal][repository] version conflict")
			return entities.Proposal{}, fmt.Errorf("proposal %s: %w", p.ID, interfaces.ErrConcurrentUpdate)
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func marshalProposal(p entities.Proposal) (map[string]types.AttributeValue, error) {
	it, err := toProposalItem(p)
	if err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalProposal(raw map[string]types.AttributeValue) (entities.Proposal, error) {
	var it proposalItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func unmarshalProposals(raw []map[string]types.AttributeValue) ([]entities.Proposal, error) {
	out := make([]entities.Proposal, 0, len(raw))
	for _, r := range raw {
		p, err := unmarshalProposal(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func toProposalItem(p entities.Proposal) (proposalItem, error) {
	lineItems := p.LineItems
	if lineItems == nil {
		lineItems = []pricing.LineItem{}
	}
	items, err := json.Marshal(lineItems)
	if err != nil {
		return proposalItem{}, err
	}
	neg, err := json.Marshal(p.Negotiation)
	if err != nil {
		return proposalItem{}, err
	}
	totals := p.Totals()
	return proposalItem{
		ID:     p.ID,
		Number: p.Number,
		Title:  p.Title,
		Client: clientItem{
			Name:     p.Client.Name,
			Document: p.Client.Document,
			Email:    p.Client.Email,
			Phone:    p.Client.Phone,
			Contact:  p.Client.Contact,
		},
		AccountManager: accountManagerItem{
			UserID: p.AccountManager.UserID,
			Name:   p.AccountManager.Name,
			Email:  p.AccountManager.Email,
		},
		LineItems:         string(items),
		Negotiation:       string(neg),
		PriceTableVersion: p.PriceTableVersion,
		TotalSetup:        totals.TotalSetup.StringFixed(2),
		TotalMonthly:      totals.TotalMonthly.StringFixed(2),
		FinalMonthly:      p.FinalMonthlyTotal().StringFixed(2),
		Status:            string(p.Status),
		Notes:             p.Notes,
		CreatedBy:         p.CreatedBy,
		Version:           p.Version,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}, nil
}

func fromProposalItem(it proposalItem) (entities.Proposal, error) {
	var items []pricing.LineItem
	if it.LineItems != "" {
		if err := json.Unmarshal([]byte(it.LineItems), &items); err != nil {
			return entities.Proposal{}, fmt.Errorf("proposal %s line items: %w", it.ID, err)
		}
	}
	var neg negotiation.Negotiation
	if it.Negotiation != "" {
		if err := json.Unmarshal([]byte(it.Negotiation), &neg); err != nil {
			return entities.Proposal{}, fmt.Errorf("proposal %s negotiation: %w", it.ID, err)
		}
	}
	return entities.Proposal{
		ID:     it.ID,
		Number: it.Number,
		Title:  it.Title,
		Client: entities.ClientInfo{
			Name:     it.Client.Name,
			Document: it.Client.Document,
			Email:    it.Client.Email,
			Phone:    it.Client.Phone,
			Contact:  it.Client.Contact,
		},
		AccountManager: entities.AccountManager{
			UserID: it.AccountManager.UserID,
			Name:   it.AccountManager.Name,
			Email:  it.AccountManager.Email,
		},
		LineItems:         items,
		PriceTableVersion: it.PriceTableVersion,
		Negotiation:       neg,
		Status:            entities.ProposalStatus(it.Status),
		Notes:             it.Notes,
		CreatedBy:         it.CreatedBy,
		Version:           it.Version,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}, nil
}
