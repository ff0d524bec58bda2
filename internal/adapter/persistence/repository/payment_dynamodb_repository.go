package repository

import (
	"context"
	"sort"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentsTableName = "payments"
	PaymentsInvoiceIDIndex   = "invoice_id-index"
)

type paymentItem struct {
	ID            string `dynamodbav:"id"`
	InvoiceID     string `dynamodbav:"invoice_id,omitempty"`
	ClaimID       string `dynamodbav:"claim_id,omitempty"`
	PatientID     string `dynamodbav:"patient_id"`
	Date          string `dynamodbav:"payment_date"`
	Amount        string `dynamodbav:"amount"`
	Method        string `dynamodbav:"payment_method"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	Status        string `dynamodbav:"status"`
	Notes         string `dynamodbav:"notes,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository reads Payment entities from DynamoDB. Payments are
// written by LedgerDynamoRepository together with their invoice.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// ListByInvoiceID returns the invoice payments oldest first.
func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(PaymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.Before(payments[j].Date)
	})
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID,
		InvoiceID:     p.InvoiceID,
		ClaimID:       p.ClaimID,
		PatientID:     p.PatientID,
		Date:          formatTime(p.Date),
		Amount:        moneyToString(p.Amount),
		Method:        string(p.Method),
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		Notes:         p.Notes,
		CreatedAt:     formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:            it.ID,
		InvoiceID:     it.InvoiceID,
		ClaimID:       it.ClaimID,
		PatientID:     it.PatientID,
		Date:          parseTime(it.Date),
		Amount:        parseDecimal(it.Amount),
		Method:        entities.PaymentMethod(it.Method),
		TransactionID: it.TransactionID,
		Status:        entities.PaymentStatus(it.Status),
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
