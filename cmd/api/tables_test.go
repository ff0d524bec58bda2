package main

import (
	"testing"

	"billing_insurance/internal/adapter/persistence/repository"
)

func TestTableSpecs(t *testing.T) {
	specs := tableSpecs(repository.Tables{
		Invoices: "inv",
		Payments: "pay",
		Policies: "pol",
		Claims:   "clm",
		Counters: "cnt",
	})
	if len(specs) != 5 {
		t.Fatalf("expected 5 tables, got %d", len(specs))
	}

	byName := map[string]map[string]string{}
	for _, s := range specs {
		byName[s.Name] = s.Indexes
	}
	if byName["inv"][repository.InvoicesPatientIDIndex] != "patient_id" {
		t.Fatalf("invoices table missing patient index: %v", byName["inv"])
	}
	if byName["pay"][repository.PaymentsInvoiceIDIndex] != "invoice_id" {
		t.Fatalf("payments table missing invoice index: %v", byName["pay"])
	}
	if len(byName["clm"]) != 2 {
		t.Fatalf("claims table should have two indexes, got %v", byName["clm"])
	}
	if len(byName["cnt"]) != 0 {
		t.Fatalf("counters table should have no indexes, got %v", byName["cnt"])
	}
}
