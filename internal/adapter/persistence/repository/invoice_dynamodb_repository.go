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
	DefaultInvoicesTableName = "invoices"
	InvoicesPatientIDIndex   = "patient_id-index"

	invoiceNumberMarkerPrefix = "invoice_number#"
)

type invoiceNumberMarker struct {
	ID        string `dynamodbav:"id"`
	InvoiceID string `dynamodbav:"invoice_id"`
}

type invoiceLineItem struct {
	ID          string `dynamodbav:"id"`
	ItemType    string `dynamodbav:"item_type"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	TotalPrice  string `dynamodbav:"total_price"`
}

type invoiceItem struct {
	ID                            string            `dynamodbav:"id"`
	PatientID                     string            `dynamodbav:"patient_id"`
	InvoiceNumber                 string            `dynamodbav:"invoice_number"`
	IssueDate                     string            `dynamodbav:"issue_date"`
	DueDate                       string            `dynamodbav:"due_date"`
	SubTotal                      string            `dynamodbav:"sub_total_amount"`
	Tax                           string            `dynamodbav:"tax_amount"`
	Discount                      string            `dynamodbav:"discount_amount"`
	Total                         string            `dynamodbav:"total_amount"`
	PaidByPatient                 string            `dynamodbav:"amount_paid_by_patient"`
	PaidByInsurance               string            `dynamodbav:"amount_paid_by_insurance"`
	Status                        string            `dynamodbav:"status"`
	RelatedAppointmentID          string            `dynamodbav:"related_appointment_id,omitempty"`
	RelatedPrescriptionDispenseID string            `dynamodbav:"related_prescription_dispense_id,omitempty"`
	RelatedLabOrderID             string            `dynamodbav:"related_lab_order_id,omitempty"`
	Items                         []invoiceLineItem `dynamodbav:"items"`
	Version                       int64             `dynamodbav:"version"`
	CreatedAt                     string            `dynamodbav:"created_at"`
	UpdatedAt                     string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id)
//
// Invoice numbers are kept unique by a marker item (id = "invoice_number#<number>")
// in the counters table, written in the same transaction as the invoice.
type InvoiceDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	countersTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName, countersTable string) *InvoiceDynamoRepository {
	if tableName == "" {
		tableName = DefaultInvoicesTableName
	}
	if countersTable == "" {
		countersTable = DefaultCountersTableName
	}
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName, countersTable: countersTable}
}

// Create inserts a new invoice at version 1. Item totals are recomputed before saving.
// It returns ErrDuplicateInvoiceNumber when another invoice already holds the number.
func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.RecalculateTotals()
	if inv.Version == 0 {
		inv.Version = 1
	}
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	markerAV, err := attributevalue.MarshalMap(invoiceNumberMarker{ID: invoiceNumberMarkerPrefix + inv.InvoiceNumber, InvoiceID: inv.ID})
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.countersTable),
				Item:                     markerAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if idx, ok := cancelledByCondition(err); ok && idx == 1 {
			return entities.Invoice{}, interfaces.ErrDuplicateInvoiceNumber
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// List returns invoices newest first. A patient filter uses the patient index; an
// unfiltered listing scans the table.
func (r *InvoiceDynamoRepository) List(ctx context.Context, filter interfaces.InvoiceFilter) ([]entities.Invoice, error) {
	var filterExpr *string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		filterExpr = aws.String("#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}

	var raw []map[string]types.AttributeValue
	var err error
	if filter.PatientID != "" {
		names["#patient_id"] = "patient_id"
		values[":pid"] = &types.AttributeValueMemberS{Value: filter.PatientID}
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(InvoicesPatientIDIndex),
			KeyConditionExpression:    aws.String("#patient_id = :pid"),
			FilterExpression:          filterExpr,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
	} else {
		in := &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: filterExpr,
		}
		if filterExpr != nil {
			in.ExpressionAttributeNames = names
			in.ExpressionAttributeValues = values
		}
		raw, err = scanAll(ctx, r.ddb, in)
	}
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(raw))
	for _, av := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	sort.SliceStable(invoices, func(i, j int) bool {
		if !invoices[i].IssueDate.Equal(invoices[j].IssueDate) {
			return invoices[i].IssueDate.After(invoices[j].IssueDate)
		}
		return invoices[i].InvoiceNumber > invoices[j].InvoiceNumber
	})
	return invoices, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Items))
	for _, li := range inv.Items {
		lines = append(lines, invoiceLineItem{
			ID:          li.ID,
			ItemType:    string(li.ItemType),
			Description: li.Description,
			Quantity:    li.Quantity.String(),
			UnitPrice:   moneyToString(li.UnitPrice),
			TotalPrice:  moneyToString(li.TotalPrice),
		})
	}
	return invoiceItem{
		ID:                            inv.ID,
		PatientID:                     inv.PatientID,
		InvoiceNumber:                 inv.InvoiceNumber,
		IssueDate:                     formatDate(inv.IssueDate),
		DueDate:                       formatDate(inv.DueDate),
		SubTotal:                      moneyToString(inv.SubTotal),
		Tax:                           moneyToString(inv.Tax),
		Discount:                      moneyToString(inv.Discount),
		Total:                         moneyToString(inv.Total),
		PaidByPatient:                 moneyToString(inv.PaidByPatient),
		PaidByInsurance:               moneyToString(inv.PaidByInsurance),
		Status:                        string(inv.Status),
		RelatedAppointmentID:          inv.RelatedAppointmentID,
		RelatedPrescriptionDispenseID: inv.RelatedPrescriptionDispenseID,
		RelatedLabOrderID:             inv.RelatedLabOrderID,
		Items:                         lines,
		Version:                       inv.Version,
		CreatedAt:                     formatTime(inv.CreatedAt),
		UpdatedAt:                     formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	items := make([]entities.InvoiceItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.InvoiceItem{
			ID:          li.ID,
			ItemType:    entities.InvoiceItemType(li.ItemType),
			Description: li.Description,
			Quantity:    parseDecimal(li.Quantity),
			UnitPrice:   parseDecimal(li.UnitPrice),
			TotalPrice:  parseDecimal(li.TotalPrice),
		})
	}
	return entities.Invoice{
		ID:                            it.ID,
		PatientID:                     it.PatientID,
		InvoiceNumber:                 it.InvoiceNumber,
		IssueDate:                     parseDate(it.IssueDate),
		DueDate:                       parseDate(it.DueDate),
		SubTotal:                      parseDecimal(it.SubTotal),
		Tax:                           parseDecimal(it.Tax),
		Discount:                      parseDecimal(it.Discount),
		Total:                         parseDecimal(it.Total),
		PaidByPatient:                 parseDecimal(it.PaidByPatient),
		PaidByInsurance:               parseDecimal(it.PaidByInsurance),
		Status:                        entities.InvoiceStatus(it.Status),
		RelatedAppointmentID:          it.RelatedAppointmentID,
		RelatedPrescriptionDispenseID: it.RelatedPrescriptionDispenseID,
		RelatedLabOrderID:             it.RelatedLabOrderID,
		Items:                         items,
		Version:                       it.Version,
		CreatedAt:                     parseTime(it.CreatedAt),
		UpdatedAt:                     parseTime(it.UpdatedAt),
	}
}
