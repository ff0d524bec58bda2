package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func ledgerInvoice() entities.Invoice {
	return entities.Invoice{
		ID:            "inv-1",
		PatientID:     "42",
		InvoiceNumber: "INV-20240315-0001",
		IssueDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC),
		Total:         decimal.RequireFromString("100"),
		PaidByPatient: decimal.RequireFromString("40"),
		Status:        entities.InvoiceStatusPartiallyPaid,
		Version:       3,
	}
}

func TestLedgerDynamoRepository_Commit(t *testing.T) {
	t.Run("writes invoice and payment in one transaction", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewLedgerDynamoRepository(fake, Tables{})

		inv := ledgerInvoice()
		pay := entities.Payment{ID: "pay-1", InvoiceID: "inv-1", PatientID: "42", Amount: decimal.RequireFromString("40"), Method: entities.PaymentMethodCash, Status: entities.PaymentStatusSuccess}
		if err := repo.Commit(context.Background(), interfaces.LedgerWrite{Invoice: &inv, Payment: &pay}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items := fake.lastTransact.TransactItems
		if len(items) != 2 {
			t.Fatalf("expected 2 transact items, got %d", len(items))
		}
		invPut := items[0].Put
		if aws.ToString(invPut.TableName) != DefaultInvoicesTableName {
			t.Fatalf("unexpected invoice table %s", aws.ToString(invPut.TableName))
		}
		expected := invPut.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN)
		if expected.Value != "3" {
			t.Fatalf("expected condition on version 3, got %s", expected.Value)
		}
		var stored invoiceItem
		if err := attributevalue.UnmarshalMap(invPut.Item, &stored); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if stored.Version != 4 || stored.PaidByPatient != "40.00" {
			t.Fatalf("unexpected stored invoice %+v", stored)
		}
		if inv.Version != 3 {
			t.Fatalf("caller invoice must not be mutated, got version %d", inv.Version)
		}
		if aws.ToString(items[1].Put.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("payment must be insert-only, got %s", aws.ToString(items[1].Put.ConditionExpression))
		}
	})

	t.Run("new claim is insert-only", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewLedgerDynamoRepository(fake, Tables{})

		inv := ledgerInvoice()
		claim := entities.InsuranceClaim{ID: "clm-1", InvoiceID: "inv-1", PolicyID: "pol-1", ClaimAmount: decimal.RequireFromString("60"), Status: entities.ClaimStatusSubmitted}
		if err := repo.Commit(context.Background(), interfaces.LedgerWrite{Invoice: &inv, Claim: &claim, NewClaim: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items := fake.lastTransact.TransactItems
		if len(items) != 3 {
			t.Fatalf("expected invoice, claim and policy items, got %d", len(items))
		}
		put := items[1].Put
		if aws.ToString(put.TableName) != DefaultClaimsTableName || aws.ToString(put.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected claim put %+v", put)
		}
		upd := items[2].Update
		if upd == nil || aws.ToString(upd.TableName) != DefaultPoliciesTableName {
			t.Fatalf("claim insert must touch the policy row, got %+v", items[2])
		}
		if id := upd.Key["id"].(*types.AttributeValueMemberS).Value; id != "pol-1" {
			t.Fatalf("unexpected policy key %s", id)
		}
		if aws.ToString(upd.ConditionExpression) != "attribute_exists(#id)" || aws.ToString(upd.UpdateExpression) != "ADD #claim_count :one" {
			t.Fatalf("unexpected policy update %s / %s", aws.ToString(upd.ConditionExpression), aws.ToString(upd.UpdateExpression))
		}
	})

	t.Run("new claim against a deleted policy", func(t *testing.T) {
		fake := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, &types.TransactionCanceledException{
					CancellationReasons: []types.CancellationReason{
						{Code: aws.String("None")},
						{Code: aws.String("None")},
						{Code: aws.String("ConditionalCheckFailed")},
					},
				}
			},
		}
		repo := NewLedgerDynamoRepository(fake, Tables{})

		inv := ledgerInvoice()
		claim := entities.InsuranceClaim{ID: "clm-1", InvoiceID: "inv-1", PolicyID: "pol-1", ClaimAmount: decimal.RequireFromString("60"), Status: entities.ClaimStatusSubmitted}
		err := repo.Commit(context.Background(), interfaces.LedgerWrite{Invoice: &inv, Claim: &claim, NewClaim: true})
		if !errors.Is(err, interfaces.ErrPolicyMissing) {
			t.Fatalf("expected ErrPolicyMissing, got %v", err)
		}
	})

	t.Run("claim update does not touch the policy", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewLedgerDynamoRepository(fake, Tables{})

		claim := entities.InsuranceClaim{ID: "clm-1", InvoiceID: "inv-1", PolicyID: "pol-1", ClaimAmount: decimal.RequireFromString("60"), Status: entities.ClaimStatusProcessing, Version: 2}
		if err := repo.Commit(context.Background(), interfaces.LedgerWrite{Claim: &claim}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items := fake.lastTransact.TransactItems; len(items) != 1 || items[0].Update != nil {
			t.Fatalf("expected a single versioned claim put, got %+v", items)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		fake := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, &types.TransactionCanceledException{
					CancellationReasons: []types.CancellationReason{
						{Code: aws.String("ConditionalCheckFailed")},
						{Code: aws.String("None")},
					},
				}
			},
		}
		repo := NewLedgerDynamoRepository(fake, Tables{})

		inv := ledgerInvoice()
		err := repo.Commit(context.Background(), interfaces.LedgerWrite{Invoice: &inv})
		if !errors.Is(err, interfaces.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("other failures pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		fake := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, boom
			},
		}
		repo := NewLedgerDynamoRepository(fake, Tables{})

		inv := ledgerInvoice()
		if err := repo.Commit(context.Background(), interfaces.LedgerWrite{Invoice: &inv}); !errors.Is(err, boom) {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})

	t.Run("empty write", func(t *testing.T) {
		repo := NewLedgerDynamoRepository(&fakeDynamo{}, Tables{})
		if err := repo.Commit(context.Background(), interfaces.LedgerWrite{}); err == nil {
			t.Fatalf("expected error for empty write")
		}
	})
}

func TestInvoiceSequenceDynamoRepository_Next(t *testing.T) {
	var key string
	fake := &fakeDynamo{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			key = in.Key["id"].(*types.AttributeValueMemberS).Value
			return &dynamodb.UpdateItemOutput{
				Attributes: map[string]types.AttributeValue{
					"seq": &types.AttributeValueMemberN{Value: "7"},
				},
			}, nil
		},
	}
	repo := NewInvoiceSequenceDynamoRepository(fake, "")

	n, err := repo.Next(context.Background(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7, got %d", n)
	}
	if key != "invoice_seq#20240315" {
		t.Fatalf("unexpected counter key %s", key)
	}
}
