package jobs

import (
	"context"
	"time"

	"ecobin-backend/internal/logger"
)

// ExpireRedemptions persists the expired status for every processed
// redemption whose validity window has closed. Reads already treat those
// rows as expired; this sweep makes the stored status agree.
func (jr *JobRunner) ExpireRedemptions() {
	jr.runWithRecovery("ExpireRedemptions", func() {
		ctx := context.Background()

		count, err := jr.store.LedgerRepository.ExpireRedemptions(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to expire redemptions", "error", err)
			return
		}

		logger.Info("Expired redemptions", "count", count)
	})
}

// AuditBalances recomputes every account balance from the event history and
// reports accounts whose cached balance disagrees. Drift indicates a write
// that bypassed the ledger and needs manual investigation.
func (jr *JobRunner) AuditBalances() {
	jr.runWithRecovery("AuditBalances", func() {
		ctx := context.Background()

		drifts, err := jr.services.Admin.AuditBalances(ctx)
		if err != nil {
			logger.Error("Failed to audit balances", "error", err)
			return
		}

		if len(drifts) == 0 {
			logger.Info("Balance audit clean")
			return
		}
		logger.Warn("Balance audit found drift", "accounts", len(drifts))
	})
}
