package repository

import (
	"context"
	"fmt"
	"strconv"

	"cotador_telecom/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CounterDynamoRepository hands out sequence numbers with an atomic ADD.
//
// Table requirements:
//   - PK: name (string)
type CounterDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISequenceGenerator = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb DynamoDBAPI, tableName string) *CounterDynamoRepository {
	return &CounterDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CounterDynamoRepository) Next(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression:         aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{"#value": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s: missing value", name)
	}
	return strconv.ParseInt(v.Value, 10, 64)
}
