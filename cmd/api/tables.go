package main

import (
	"context"
	"fmt"

	"billing_insurance/internal/adapter/persistence/repository"
	"billing_insurance/internal/infrastructure/config"
	"billing_insurance/internal/infrastructure/database"
	"billing_insurance/internal/infrastructure/logger"
)

func runCreateTables(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return err
	}
	return database.CreateTables(ctx, ddb, tableSpecs(tablesFromConfig(cfg)), log)
}

// tableSpecs lists every table with the secondary indexes the repositories query.
func tableSpecs(t repository.Tables) []database.TableSpec {
	return []database.TableSpec{
		{Name: t.Invoices, Indexes: map[string]string{repository.InvoicesPatientIDIndex: "patient_id"}},
		{Name: t.Payments, Indexes: map[string]string{repository.PaymentsInvoiceIDIndex: "invoice_id"}},
		{Name: t.Policies, Indexes: map[string]string{repository.PoliciesPatientIDIndex: "patient_id"}},
		{Name: t.Claims, Indexes: map[string]string{
			repository.ClaimsInvoiceIDIndex: "invoice_id",
			repository.ClaimsPolicyIDIndex:  "policy_id",
		}},
		{Name: t.Counters},
	}
}
