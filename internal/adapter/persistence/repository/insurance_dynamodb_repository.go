package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPoliciesTableName = "insurance_policies"
	DefaultClaimsTableName   = "insurance_claims"
	DefaultCountersTableName = "billing_counters"
	PoliciesPatientIDIndex   = "patient_id-index"
	ClaimsInvoiceIDIndex     = "invoice_id-index"
	ClaimsPolicyIDIndex      = "policy_id-index"

	policyNumberMarkerPrefix = "policy_number#"
	policyClaimCountAttr     = "claim_count"
)

// Attributes dropped from a policy item when empty; Update removes them explicitly.
var policyOptionalAttrs = []string{"insurance_provider_id", "member_id", "coverage_details"}

// Attributes Update never rewrites.
var policyImmutableAttrs = map[string]bool{
	"id":                 true,
	"policy_number":      true,
	"created_at":         true,
	policyClaimCountAttr: true,
}

type policyItem struct {
	ID                  string         `dynamodbav:"id"`
	PatientID           string         `dynamodbav:"patient_id"`
	InsuranceProviderID string         `dynamodbav:"insurance_provider_id,omitempty"`
	ProviderName        string         `dynamodbav:"provider_name"`
	PolicyNumber        string         `dynamodbav:"policy_number"`
	MemberID            string         `dynamodbav:"member_id,omitempty"`
	ValidFrom           string         `dynamodbav:"valid_from"`
	ValidTo             string         `dynamodbav:"valid_to"`
	CoverageDetails     map[string]any `dynamodbav:"coverage_details,omitempty"`
	IsActive            bool           `dynamodbav:"is_active"`
	CreatedAt           string         `dynamodbav:"created_at"`
	UpdatedAt           string         `dynamodbav:"updated_at"`
}

type policyNumberMarker struct {
	ID       string `dynamodbav:"id"`
	PolicyID string `dynamodbav:"policy_id"`
}

type claimItem struct {
	ID                   string `dynamodbav:"id"`
	InvoiceID            string `dynamodbav:"invoice_id"`
	PolicyID             string `dynamodbav:"policy_id"`
	SubmissionDate       string `dynamodbav:"submission_date"`
	ClaimAmount          string `dynamodbav:"claim_amount"`
	ApprovedAmount       string `dynamodbav:"approved_amount,omitempty"`
	RejectedAmount       string `dynamodbav:"rejected_amount,omitempty"`
	Status               string `dynamodbav:"status"`
	InsurerNotes         string `dynamodbav:"insurer_notes,omitempty"`
	HospitalNotes        string `dynamodbav:"hospital_notes,omitempty"`
	ClaimReferenceNumber string `dynamodbav:"claim_reference_number,omitempty"`
	PayoutPaymentID      string `dynamodbav:"payout_payment_id,omitempty"`
	Version              int64  `dynamodbav:"version"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// InsurancePolicyDynamoRepository persists InsurancePolicy entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id)
//
// Policy numbers are kept unique by a marker item (id = "policy_number#<number>")
// in the counters table, written in the same transaction as the policy. The
// claim_count attribute is owned by LedgerDynamoRepository.
type InsurancePolicyDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	countersTable string
}

var _ interfaces.IInsurancePolicyRepository = (*InsurancePolicyDynamoRepository)(nil)

func NewInsurancePolicyDynamoRepository(ddb DynamoAPI, tableName, countersTable string) *InsurancePolicyDynamoRepository {
	if tableName == "" {
		tableName = DefaultPoliciesTableName
	}
	if countersTable == "" {
		countersTable = DefaultCountersTableName
	}
	return &InsurancePolicyDynamoRepository{ddb: ddb, tableName: tableName, countersTable: countersTable}
}

func (r *InsurancePolicyDynamoRepository) Create(ctx context.Context, p entities.InsurancePolicy) (entities.InsurancePolicy, error) {
	policyAV, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return entities.InsurancePolicy{}, err
	}
	markerAV, err := attributevalue.MarshalMap(policyNumberMarker{ID: policyNumberMarkerPrefix + p.PolicyNumber, PolicyID: p.ID})
	if err != nil {
		return entities.InsurancePolicy{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     policyAV,
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
			return entities.InsurancePolicy{}, interfaces.ErrDuplicatePolicyNumber
		}
		return entities.InsurancePolicy{}, err
	}
	return p, nil
}

func (r *InsurancePolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.InsurancePolicy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InsurancePolicy{}, err
	}
	if len(out.Item) == 0 {
		return entities.InsurancePolicy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InsurancePolicy{}, err
	}
	return fromPolicyItem(it), nil
}

func (r *InsurancePolicyDynamoRepository) List(ctx context.Context, patientID string) ([]entities.InsurancePolicy, error) {
	var raw []map[string]types.AttributeValue
	var err error
	if patientID != "" {
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(PoliciesPatientIDIndex),
			KeyConditionExpression: aws.String("patient_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: patientID},
			},
		})
	} else {
		raw, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	}
	if err != nil {
		return nil, err
	}

	policies := make([]entities.InsurancePolicy, 0, len(raw))
	for _, av := range raw {
		var it policyItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		policies = append(policies, fromPolicyItem(it))
	}
	sort.SliceStable(policies, func(i, j int) bool {
		return policies[i].ValidTo.After(policies[j].ValidTo)
	})
	return policies, nil
}

// Update rewrites the mutable policy attributes. It returns a zero policy when the
// policy does not exist or its number would change.
func (r *InsurancePolicyDynamoRepository) Update(ctx context.Context, p entities.InsurancePolicy) (entities.InsurancePolicy, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return entities.InsurancePolicy{}, err
	}

	names := map[string]string{
		"#id":            "id",
		"#policy_number": "policy_number",
	}
	values := map[string]types.AttributeValue{
		":pn": &types.AttributeValueMemberS{Value: p.PolicyNumber},
	}
	keys := make([]string, 0, len(av))
	for k := range av {
		if !policyImmutableAttrs[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	sets := make([]string, 0, len(keys))
	for i, k := range keys {
		name, value := fmt.Sprintf("#a%d", i), fmt.Sprintf(":a%d", i)
		names[name] = k
		values[value] = av[k]
		sets = append(sets, name+" = "+value)
	}
	expr := "SET " + strings.Join(sets, ", ")

	var removes []string
	for i, k := range policyOptionalAttrs {
		if _, ok := av[k]; !ok {
			name := fmt.Sprintf("#r%d", i)
			names[name] = k
			removes = append(removes, name)
		}
	}
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #policy_number = :pn"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.InsurancePolicy{}, nil
		}
		return entities.InsurancePolicy{}, err
	}
	return p, nil
}

// Delete removes the policy and releases its number. It returns ErrPolicyReferenced
// while any claim has been filed against the policy.
func (r *InsurancePolicyDynamoRepository) Delete(ctx context.Context, id string) error {
	p, err := r.GetByID(ctx, id)
	if err != nil || p.ID == "" {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: p.ID},
				},
				ConditionExpression: aws.String("attribute_not_exists(#claim_count) OR #claim_count = :zero"),
				ExpressionAttributeNames: map[string]string{
					"#claim_count": policyClaimCountAttr,
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":zero": &types.AttributeValueMemberN{Value: "0"},
				},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.countersTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: policyNumberMarkerPrefix + p.PolicyNumber},
				},
			}},
		},
	})
	if err != nil {
		if idx, ok := cancelledByCondition(err); ok && idx == 0 {
			return interfaces.ErrPolicyReferenced
		}
		return err
	}
	return nil
}

// InsuranceClaimDynamoRepository reads InsuranceClaim entities from DynamoDB. Claims
// are written by LedgerDynamoRepository.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//   - GSI: policy_id-index (PK: policy_id)
type InsuranceClaimDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInsuranceClaimRepository = (*InsuranceClaimDynamoRepository)(nil)

func NewInsuranceClaimDynamoRepository(ddb DynamoAPI, tableName string) *InsuranceClaimDynamoRepository {
	if tableName == "" {
		tableName = DefaultClaimsTableName
	}
	return &InsuranceClaimDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InsuranceClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.InsuranceClaim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InsuranceClaim{}, err
	}
	if len(out.Item) == 0 {
		return entities.InsuranceClaim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InsuranceClaim{}, err
	}
	return fromClaimItem(it), nil
}

func (r *InsuranceClaimDynamoRepository) List(ctx context.Context, invoiceID string) ([]entities.InsuranceClaim, error) {
	var raw []map[string]types.AttributeValue
	var err error
	if invoiceID != "" {
		raw, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ClaimsInvoiceIDIndex),
			KeyConditionExpression: aws.String("invoice_id = :iid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":iid": &types.AttributeValueMemberS{Value: invoiceID},
			},
		})
	} else {
		raw, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	}
	if err != nil {
		return nil, err
	}

	claims := make([]entities.InsuranceClaim, 0, len(raw))
	for _, av := range raw {
		var it claimItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		claims = append(claims, fromClaimItem(it))
	}
	sort.SliceStable(claims, func(i, j int) bool {
		return claims[i].SubmissionDate.After(claims[j].SubmissionDate)
	})
	return claims, nil
}

func (r *InsuranceClaimDynamoRepository) ExistsForPolicy(ctx context.Context, policyID string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ClaimsPolicyIDIndex),
		KeyConditionExpression: aws.String("policy_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: policyID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

func toPolicyItem(p entities.InsurancePolicy) policyItem {
	return policyItem{
		ID:                  p.ID,
		PatientID:           p.PatientID,
		InsuranceProviderID: p.InsuranceProviderID,
		ProviderName:        p.ProviderName,
		PolicyNumber:        p.PolicyNumber,
		MemberID:            p.MemberID,
		ValidFrom:           formatDate(p.ValidFrom),
		ValidTo:             formatDate(p.ValidTo),
		CoverageDetails:     p.CoverageDetails,
		IsActive:            p.IsActive,
		CreatedAt:           formatTime(p.CreatedAt),
		UpdatedAt:           formatTime(p.UpdatedAt),
	}
}

func fromPolicyItem(it policyItem) entities.InsurancePolicy {
	coverage := it.CoverageDetails
	if coverage == nil {
		coverage = map[string]any{}
	}
	return entities.InsurancePolicy{
		ID:                  it.ID,
		PatientID:           it.PatientID,
		InsuranceProviderID: it.InsuranceProviderID,
		ProviderName:        it.ProviderName,
		PolicyNumber:        it.PolicyNumber,
		MemberID:            it.MemberID,
		ValidFrom:           parseDate(it.ValidFrom),
		ValidTo:             parseDate(it.ValidTo),
		CoverageDetails:     coverage,
		IsActive:            it.IsActive,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}

func toClaimItem(c entities.InsuranceClaim) claimItem {
	it := claimItem{
		ID:                   c.ID,
		InvoiceID:            c.InvoiceID,
		PolicyID:             c.PolicyID,
		SubmissionDate:       formatTime(c.SubmissionDate),
		ClaimAmount:          moneyToString(c.ClaimAmount),
		Status:               string(c.Status),
		InsurerNotes:         c.InsurerNotes,
		HospitalNotes:        c.HospitalNotes,
		ClaimReferenceNumber: c.ClaimReferenceNumber,
		PayoutPaymentID:      c.PayoutPaymentID,
		Version:              c.Version,
		CreatedAt:            formatTime(c.CreatedAt),
		UpdatedAt:            formatTime(c.UpdatedAt),
	}
	if c.ApprovedAmount != nil {
		it.ApprovedAmount = moneyToString(*c.ApprovedAmount)
	}
	if c.RejectedAmount != nil {
		it.RejectedAmount = moneyToString(*c.RejectedAmount)
	}
	return it
}

func fromClaimItem(it claimItem) entities.InsuranceClaim {
	c := entities.InsuranceClaim{
		ID:                   it.ID,
		InvoiceID:            it.InvoiceID,
		PolicyID:             it.PolicyID,
		SubmissionDate:       parseTime(it.SubmissionDate),
		ClaimAmount:          parseDecimal(it.ClaimAmount),
		Status:               entities.ClaimStatus(it.Status),
		InsurerNotes:         it.InsurerNotes,
		HospitalNotes:        it.HospitalNotes,
		ClaimReferenceNumber: it.ClaimReferenceNumber,
		PayoutPaymentID:      it.PayoutPaymentID,
		Version:              it.Version,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	if it.ApprovedAmount != "" {
		v := parseDecimal(it.ApprovedAmount)
		c.ApprovedAmount = &v
	}
	if it.RejectedAmount != "" {
		v := parseDecimal(it.RejectedAmount)
		c.RejectedAmount = &v
	}
	return c
}
