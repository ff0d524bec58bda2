package repository

import (
	"context"
	"errors"
	"strconv"

	"billing_insurance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errEmptyLedgerWrite = errors.New("ledger write has no rows")

// LedgerDynamoRepository commits invoice, payment and claim rows in one
// TransactWriteItems call so balances never drift from the payment history.
type LedgerDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb DynamoAPI, tables Tables) *LedgerDynamoRepository {
	if tables.Invoices == "" {
		tables.Invoices = DefaultInvoicesTableName
	}
	if tables.Payments == "" {
		tables.Payments = DefaultPaymentsTableName
	}
	if tables.Claims == "" {
		tables.Claims = DefaultClaimsTableName
	}
	if tables.Policies == "" {
		tables.Policies = DefaultPoliciesTableName
	}
	return &LedgerDynamoRepository{ddb: ddb, tables: tables}
}

func (r *LedgerDynamoRepository) Commit(ctx context.Context, w interfaces.LedgerWrite) error {
	var items []types.TransactWriteItem
	policyIdx := -1

	if w.Invoice != nil {
		inv := *w.Invoice
		expected := inv.Version
		inv.Version = expected + 1
		av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: versionedPut(r.tables.Invoices, av, expected)})
	}

	if w.Payment != nil {
		av, err := attributevalue.MarshalMap(toPaymentItem(*w.Payment))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tables.Payments),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}

	if w.Claim != nil {
		claim := *w.Claim
		expected := claim.Version
		claim.Version = expected + 1
		av, err := attributevalue.MarshalMap(toClaimItem(claim))
		if err != nil {
			return err
		}
		if w.NewClaim {
			items = append(items, types.TransactWriteItem{Put: &types.Put{
				TableName:                aws.String(r.tables.Claims),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}})
			policyIdx = len(items)
			items = append(items, types.TransactWriteItem{Update: claimCountIncrement(r.tables.Policies, claim.PolicyID)})
		} else {
			items = append(items, types.TransactWriteItem{Put: versionedPut(r.tables.Claims, av, expected)})
		}
	}

	if len(items) == 0 {
		return errEmptyLedgerWrite
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if idx, ok := cancelledByCondition(err); ok {
			if idx == policyIdx {
				return interfaces.ErrPolicyMissing
			}
			return interfaces.ErrConcurrentModification
		}
		return err
	}
	return nil
}

// claimCountIncrement records one more claim on the policy row, which must still exist.
func claimCountIncrement(table, policyID string) *types.Update {
	return &types.Update{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: policyID},
		},
		UpdateExpression:    aws.String("ADD #claim_count :one"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#claim_count": policyClaimCountAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	}
}

// versionedPut replaces an existing row only while it is still at the expected version.
func versionedPut(table string, item map[string]types.AttributeValue, expected int64) *types.Put {
	return &types.Put{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	}
}
