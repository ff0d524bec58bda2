package repository

import (
	"context"
	"errors"
	"strings"
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

func repoPolicy() entities.InsurancePolicy {
	return entities.InsurancePolicy{
		ID:              "pol-1",
		PatientID:       "42",
		ProviderName:    "Acme Health",
		PolicyNumber:    "ACME-001",
		ValidFrom:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:         time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		CoverageDetails: map[string]any{"plan": "gold"},
		IsActive:        true,
	}
}

func TestInsurancePolicyDynamoRepository_Create(t *testing.T) {
	t.Run("writes policy and number marker", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewInsurancePolicyDynamoRepository(fake, "", "")

		if _, err := repo.Create(context.Background(), repoPolicy()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := fake.lastTransact.TransactItems
		if len(items) != 2 {
			t.Fatalf("expected 2 transact items, got %d", len(items))
		}
		marker := items[1].Put
		if aws.ToString(marker.TableName) != DefaultCountersTableName {
			t.Fatalf("unexpected marker table %s", aws.ToString(marker.TableName))
		}
		if id := marker.Item["id"].(*types.AttributeValueMemberS).Value; id != "policy_number#ACME-001" {
			t.Fatalf("unexpected marker id %s", id)
		}
	})

	t.Run("duplicate number", func(t *testing.T) {
		fake := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, &types.TransactionCanceledException{
					CancellationReasons: []types.CancellationReason{
						{Code: aws.String("None")},
						{Code: aws.String("ConditionalCheckFailed")},
					},
				}
			},
		}
		repo := NewInsurancePolicyDynamoRepository(fake, "", "")

		_, err := repo.Create(context.Background(), repoPolicy())
		if !errors.Is(err, interfaces.ErrDuplicatePolicyNumber) {
			t.Fatalf("expected ErrDuplicatePolicyNumber, got %v", err)
		}
	})
}

func TestInsurancePolicyDynamoRepository_Update(t *testing.T) {
	t.Run("missing policy yields zero value", func(t *testing.T) {
		fake := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewInsurancePolicyDynamoRepository(fake, "", "")

		got, err := repo.Update(context.Background(), repoPolicy())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero policy, got %+v", got)
		}
	})

	t.Run("guards the number and keeps the claim count", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewInsurancePolicyDynamoRepository(fake, "", "")

		p := repoPolicy()
		p.MemberID = ""
		if _, err := repo.Update(context.Background(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := fake.lastUpdate
		pn := in.ExpressionAttributeValues[":pn"].(*types.AttributeValueMemberS)
		if pn.Value != "ACME-001" {
			t.Fatalf("unexpected policy number guard %s", pn.Value)
		}
		written := map[string]bool{}
		for _, attr := range in.ExpressionAttributeNames {
			written[attr] = true
		}
		for _, attr := range []string{"claim_count", "created_at"} {
			if written[attr] {
				t.Fatalf("update must not rewrite %s", attr)
			}
		}
		if !written["provider_name"] || !written["is_active"] {
			t.Fatalf("mutable attributes missing from update: %v", in.ExpressionAttributeNames)
		}
		if !strings.Contains(aws.ToString(in.UpdateExpression), " REMOVE ") || !written["member_id"] {
			t.Fatalf("cleared member_id should be removed, got %s", aws.ToString(in.UpdateExpression))
		}
	})
}

func TestInsurancePolicyDynamoRepository_Delete(t *testing.T) {
	stored, err := attributevalue.MarshalMap(toPolicyItem(repoPolicy()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	getPolicy := func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: stored}, nil
	}

	t.Run("delete is conditioned on no claims", func(t *testing.T) {
		fake := &fakeDynamo{getItem: getPolicy}
		repo := NewInsurancePolicyDynamoRepository(fake, "", "")

		if err := repo.Delete(context.Background(), "pol-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := fake.lastTransact.TransactItems
		if len(items) != 2 {
			t.Fatalf("expected 2 transact items, got %d", len(items))
		}
		del := items[0].Delete
		if aws.ToString(del.ConditionExpression) != "attribute_not_exists(#claim_count) OR #claim_count = :zero" {
			t.Fatalf("unexpected delete condition %s", aws.ToString(del.ConditionExpression))
		}
		if del.ExpressionAttributeNames["#claim_count"] != "claim_count" {
			t.Fatalf("unexpected names %v", del.ExpressionAttributeNames)
		}
		if id := items[1].Delete.Key["id"].(*types.AttributeValueMemberS).Value; id != "policy_number#ACME-001" {
			t.Fatalf("unexpected marker key %s", id)
		}
	})

	t.Run("policy with claims is kept", func(t *testing.T) {
		fake := &fakeDynamo{
			getItem: getPolicy,
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, &types.TransactionCanceledException{
					CancellationReasons: []types.CancellationReason{
						{Code: aws.String("ConditionalCheckFailed")},
						{Code: aws.String("None")},
					},
				}
			},
		}
		repo := NewInsurancePolicyDynamoRepository(fake, "", "")

		if err := repo.Delete(context.Background(), "pol-1"); !errors.Is(err, interfaces.ErrPolicyReferenced) {
			t.Fatalf("expected ErrPolicyReferenced, got %v", err)
		}
	})

	t.Run("missing policy is a no-op", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewInsurancePolicyDynamoRepository(fake, "", "")

		if err := repo.Delete(context.Background(), "pol-x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.lastTransact != nil {
			t.Fatalf("nothing should be deleted")
		}
	})
}

func TestInsurancePolicyDynamoRepository_GetByID(t *testing.T) {
	stored := repoPolicy()
	av, err := attributevalue.MarshalMap(toPolicyItem(stored))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	fake := &fakeDynamo{
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: av}, nil
		},
	}
	repo := NewInsurancePolicyDynamoRepository(fake, "", "")

	got, err := repo.GetByID(context.Background(), "pol-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.ValidTo.Equal(stored.ValidTo) || got.CoverageDetails["plan"] != "gold" || !got.IsActive {
		t.Fatalf("unexpected policy %+v", got)
	}
}

func TestInsuranceClaimDynamoRepository(t *testing.T) {
	approved := decimal.RequireFromString("80")
	claim := entities.InsuranceClaim{
		ID:              "clm-1",
		InvoiceID:       "inv-1",
		PolicyID:        "pol-1",
		ClaimAmount:     decimal.RequireFromString("100"),
		ApprovedAmount:  &approved,
		Status:          entities.ClaimStatusPartiallyApproved,
		PayoutPaymentID: "pay-9",
		Version:         2,
	}
	av, err := attributevalue.MarshalMap(toClaimItem(claim))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	t.Run("list by invoice uses the invoice index", func(t *testing.T) {
		var index string
		fake := &fakeDynamo{
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				index = aws.ToString(in.IndexName)
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
			},
		}
		repo := NewInsuranceClaimDynamoRepository(fake, "")

		claims, err := repo.List(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if index != ClaimsInvoiceIDIndex {
			t.Fatalf("unexpected index %s", index)
		}
		if len(claims) != 1 || claims[0].ApprovedAmount == nil || !claims[0].ApprovedAmount.Equal(approved) || claims[0].RejectedAmount != nil {
			t.Fatalf("unexpected claims %+v", claims)
		}
	})

	t.Run("exists for policy", func(t *testing.T) {
		fake := &fakeDynamo{
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				if aws.ToString(in.IndexName) != ClaimsPolicyIDIndex || aws.ToInt32(in.Limit) != 1 {
					t.Fatalf("unexpected query %+v", in)
				}
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
			},
		}
		repo := NewInsuranceClaimDynamoRepository(fake, "")

		ok, err := repo.ExistsForPolicy(context.Background(), "pol-1")
		if err != nil || !ok {
			t.Fatalf("expected claim to exist, got %v %v", ok, err)
		}
	})
}
