package cache

import (
	"context"
	"time"

	"billing_insurance/internal/usecase/interfaces"
)

// Counters outlive their day so late retries still see the last value.
const sequenceTTL = 48 * time.Hour

// InvoiceSequence hands out per-day invoice numbers with INCR.
type InvoiceSequence struct {
	rdb Commands
}

var _ interfaces.IInvoiceNumberSequence = (*InvoiceSequence)(nil)

func NewInvoiceSequence(rdb Commands) *InvoiceSequence {
	return &InvoiceSequence{rdb: rdb}
}

func (s *InvoiceSequence) Next(ctx context.Context, day time.Time) (int64, error) {
	key := keyPrefix + "invoice_seq:" + day.UTC().Format("20060102")
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, key, sequenceTTL).Err(); err != nil {
			return 0, err
		}
	}
	return n, nil
}
