package cache

import (
	"context"
	"time"

	"billing_insurance/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// releaseScript deletes the lease only while it still holds the caller's token.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// InvoiceLocker leases an invoice to one writer with SET NX and a random token.
type InvoiceLocker struct {
	rdb Commands
	log *zap.Logger
}

var _ interfaces.IInvoiceLocker = (*InvoiceLocker)(nil)

func NewInvoiceLocker(rdb Commands, log *zap.Logger) *InvoiceLocker {
	return &InvoiceLocker{rdb: rdb, log: log}
}

func lockKey(invoiceID string) string {
	return keyPrefix + "lock:invoice:" + invoiceID
}

func (l *InvoiceLocker) TryLock(ctx context.Context, invoiceID string, ttl time.Duration) (bool, string, error) {
	token := uuid.NewString()
	acquired, err := l.rdb.SetNX(ctx, lockKey(invoiceID), token, ttl).Result()
	if err != nil {
		l.log.Error("[ledger][redis] lease acquire failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		return false, "", err
	}
	if !acquired {
		l.log.Info("[ledger][redis] lease held by another request", zap.String("invoice_id", invoiceID))
		return false, "", nil
	}
	return true, token, nil
}

func (l *InvoiceLocker) Unlock(ctx context.Context, invoiceID, token string) error {
	released, err := l.rdb.Eval(ctx, releaseScript, []string{lockKey(invoiceID)}, token).Int64()
	if err != nil {
		return err
	}
	if released == 0 {
		l.log.Warn("[ledger][redis] lease expired before release", zap.String("invoice_id", invoiceID))
	}
	return nil
}
