package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"billing_insurance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const invoiceSequencePrefix = "invoice_seq#"

// InvoiceSequenceDynamoRepository keeps one atomic counter per issue day in the
// counters table (PK: id).
type InvoiceSequenceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceNumberSequence = (*InvoiceSequenceDynamoRepository)(nil)

func NewInvoiceSequenceDynamoRepository(ddb DynamoAPI, tableName string) *InvoiceSequenceDynamoRepository {
	if tableName == "" {
		tableName = DefaultCountersTableName
	}
	return &InvoiceSequenceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InvoiceSequenceDynamoRepository) Next(ctx context.Context, day time.Time) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: invoiceSequencePrefix + day.UTC().Format("20060102")},
		},
		UpdateExpression:         aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("invoice sequence: missing counter value")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
