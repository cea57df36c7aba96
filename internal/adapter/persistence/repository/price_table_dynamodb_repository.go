package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"cotador_telecom/internal/domain/pricing"
	"cotador_telecom/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPriceTableID = "default"

type priceTableItem struct {
	TableID     string `dynamodbav:"table_id"`
	Version     int64  `dynamodbav:"version"`
	EffectiveAt string `dynamodbav:"effective_at"`
	UpdatedBy   string `dynamodbav:"updated_by,omitempty"`
	Payload     string `dynamodbav:"payload"`
}

// PriceTableDynamoRepository stores every published price table version.
//
// Table requirements:
//   - PK: table_id (string)
//   - SK: version (number)
type PriceTableDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPriceTableRepository = (*PriceTableDynamoRepository)(nil)

func NewPriceTableDynamoRepository(ddb DynamoDBAPI, tableName string) *PriceTableDynamoRepository {
	return &PriceTableDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PriceTableDynamoRepository) Latest(ctx context.Context) (pricing.PriceTable, bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("table_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: defaultPriceTableID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return pricing.PriceTable{}, false, err
	}
	if len(out.Items) == 0 {
		return pricing.PriceTable{}, false, nil
	}
	table, err := unmarshalPriceTable(out.Items[0])
	if err != nil {
		return pricing.PriceTable{}, false, err
	}
	return table, true, nil
}

func (r *PriceTableDynamoRepository) GetByVersion(ctx context.Context, version int64) (pricing.PriceTable, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"table_id": &types.AttributeValueMemberS{Value: defaultPriceTableID},
			"version":  &types.AttributeValueMemberN{Value: strconv.FormatInt(version, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return pricing.PriceTable{}, false, err
	}
	if len(out.Item) == 0 {
		return pricing.PriceTable{}, false, nil
	}
	table, err := unmarshalPriceTable(out.Item)
	if err != nil {
		return pricing.PriceTable{}, false, err
	}
	return table, true, nil
}

// Create writes a new version. Versions are immutable, so an existing
// version means another admin published first.
func (r *PriceTableDynamoRepository) Create(ctx context.Context, table pricing.PriceTable) (pricing.PriceTable, error) {
	payload, err := json.Marshal(table)
	if err != nil {
		return pricing.PriceTable{}, err
	}
	av, err := attributevalue.MarshalMap(priceTableItem{
		TableID:     defaultPriceTableID,
		Version:     table.Version,
		EffectiveAt: formatTime(table.EffectiveAt),
		UpdatedBy:   table.UpdatedBy,
		Payload:     string(payload),
	})
	if err != nil {
		return pricing.PriceTable{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#version)"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return pricing.PriceTable{}, fmt.Errorf("price table version %d: %w", table.Version, interfaces.ErrConcurrentUpdate)
		}
		return pricing.PriceTable{}, err
	}
	return table, nil
}

func unmarshalPriceTable(raw map[string]types.AttributeValue) (pricing.PriceTable, error) {
	var it priceTableItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return pricing.PriceTable{}, err
	}
	var table pricing.PriceTable
	if err := json.Unmarshal([]byte(it.Payload), &table); err != nil {
		return pricing.PriceTable{}, fmt.Errorf("price table version %d payload: %w", it.Version, err)
	}
	table.Version = it.Version
	table.UpdatedBy = it.UpdatedBy
	if at := parseTime(it.EffectiveAt); !at.IsZero() {
		table.EffectiveAt = at
	}
	return table, nil
}
