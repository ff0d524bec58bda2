package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableAdmin is the subset of *dynamodb.Client needed to provision tables.
type TableAdmin interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableAdmin = (*dynamodb.Client)(nil)

// TableSpec describes a table keyed by "id" with optional single-key GSIs.
type TableSpec struct {
	Name    string
	Indexes map[string]string // index name -> partition key attribute
}

// CreateTables provisions the tables with pay-per-request billing. Tables that
// already exist are left untouched.
func CreateTables(ctx context.Context, admin TableAdmin, specs []TableSpec, log *zap.Logger) error {
	for _, spec := range specs {
		in := &dynamodb.CreateTableInput{
			TableName:   aws.String(spec.Name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		}

		defined := map[string]bool{"id": true}
		for index, attr := range spec.Indexes {
			if !defined[attr] {
				in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
					AttributeName: aws.String(attr),
					AttributeType: types.ScalarAttributeTypeS,
				})
				defined[attr] = true
			}
			in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
				IndexName: aws.String(index),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			})
		}

		_, err := admin.CreateTable(ctx, in)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Info("[database][dynamodb] table already exists", zap.String("table", spec.Name))
				continue
			}
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		log.Info("[database][dynamodb] table created", zap.String("table", spec.Name), zap.Int("indexes", len(spec.Indexes)))
	}
	return nil
}
