package interfaces

import (
	"context"

	"billing_insurance/internal/domain/entities"
)

// LedgerWrite groups the rows that must change together.
//
// Invoice and Claim carry the version they were read with; the repository only
// commits when the stored version still matches and stores version+1. A nil field is
// not written. NewClaim marks Claim as an insert; the insert also requires the claim's
// policy to exist and increments its claim count.
type LedgerWrite struct {
	Invoice  *entities.Invoice
	Payment  *entities.Payment
	Claim    *entities.InsuranceClaim
	NewClaim bool
}

// ILedgerRepository commits a LedgerWrite atomically (all-or-nothing).
// It returns ErrConcurrentModification when a version condition fails and
// ErrPolicyMissing when a new claim's policy has been deleted.

type ILedgerRepository interface {
	Commit(ctx context.Context, w LedgerWrite) error
}
