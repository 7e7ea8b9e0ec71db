package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/logger"
	"ecobin-backend/internal/repository"

	"github.com/lib/pq"
)

type ledgerRepository struct {
	db *sql.DB
}

// retryableConflict reports whether postgres aborted the transaction for a
// reason that goes away on retry (serialization failure or deadlock).
func retryableConflict(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		name := pqErr.Code.Name()
		return name == "serialization_failure" || name == "deadlock_detected"
	}
	return false
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

// RecordSession inserts the credit event and bumps the cached balance inside
// one transaction. A session row without the matching balance increment (or
// the reverse) must never be observable.
func (r *ledgerRepository) RecordSession(ctx context.Context, s *domain.RecyclingSession) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	insert := `INSERT INTO recycling_sessions (account_id, bin_id, waste_category, points_earned, verified, photo_url, created_at)
	           VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	logger.DatabaseCall("INSERT", "recycling_sessions", "accountID", s.AccountID, "binID", s.BinID)
	err = tx.QueryRowContext(ctx, insert, s.AccountID, s.BinID, s.Category, s.PointsEarned, s.Verified, s.PhotoURL, now).Scan(&s.ID)
	if err != nil {
		return err
	}
	s.CreatedOn = now.Format("2006-01-02")

	credit := `UPDATE accounts SET total_points = total_points + $1, updated_on = $2 WHERE id = $3`
	res, err := tx.ExecContext(ctx, credit, s.PointsEarned, now, s.AccountID)
	if err != nil {
		if retryableConflict(err) {
			return repository.ErrRetryableConflict
		}
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// The session insert would have failed the FK first, but guard the
		// dual write anyway: no balance change, no session.
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// CreateRedemption performs the debit as an atomic conditional update:
// subtract N where balance >= N. Two racing redemptions cannot both pass the
// sufficiency check because the second conditional update sees the already
// decremented balance and affects zero rows.
func (r *ledgerRepository) CreateRedemption(ctx context.Context, red *domain.Redemption) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	debit := `UPDATE accounts SET total_points = total_points - $1, updated_on = $2 WHERE id = $3 AND total_points >= $1`
	logger.DatabaseCall("UPDATE", "accounts", "accountID", red.AccountID, "debit", red.PointsSpent)
	res, err := tx.ExecContext(ctx, debit, red.PointsSpent, time.Now().UTC(), red.AccountID)
	if err != nil {
		if retryableConflict(err) {
			return repository.ErrRetryableConflict
		}
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrInsufficientBalance
	}

	now := time.Now().UTC()
	red.CreatedAt = now
	red.Status = domain.RedemptionStatusProcessed
	insert := `INSERT INTO redemptions (account_id, reward_id, points_spent, redemption_code, status, expires_at, created_at)
	           VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err = tx.QueryRowContext(ctx, insert, red.AccountID, red.RewardID, red.PointsSpent, red.Code, red.Status, red.ExpiresAt, red.CreatedAt).Scan(&red.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return repository.ErrDuplicateCode
		}
		if retryableConflict(err) {
			return repository.ErrRetryableConflict
		}
		return err
	}

	return tx.Commit()
}

func (r *ledgerRepository) GetBalance(ctx context.Context, accountID int32) (int32, error) {
	var balance int32
	query := `SELECT total_points FROM accounts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&balance)
	return balance, err
}

func (r *ledgerRepository) ListSessions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.RecyclingSession, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, account_id, bin_id, waste_category, points_earned, verified, COALESCE(photo_url, ''), created_at
	          FROM recycling_sessions WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, accountID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	countQuery := `SELECT count(*) FROM recycling_sessions WHERE account_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, accountID).Scan(&count); err != nil {
		return nil, 0, err
	}

	var sessions []domain.RecyclingSession
	for rows.Next() {
		var s domain.RecyclingSession
		var createdAt time.Time
		if err := rows.Scan(&s.ID, &s.AccountID, &s.BinID, &s.Category, &s.PointsEarned, &s.Verified, &s.PhotoURL, &createdAt); err != nil {
			return nil, 0, err
		}
		s.CreatedOn = createdAt.Format("2006-01-02")
		sessions = append(sessions, s)
	}
	return sessions, count, nil
}

func (r *ledgerRepository) ListRedemptions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Redemption, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, account_id, reward_id, points_spent, redemption_code, status, expires_at, created_at
	          FROM redemptions WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, accountID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	countQuery := `SELECT count(*) FROM redemptions WHERE account_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, accountID).Scan(&count); err != nil {
		return nil, 0, err
	}

	var redemptions []domain.Redemption
	for rows.Next() {
		var red domain.Redemption
		var expiresAt sql.NullTime
		if err := rows.Scan(&red.ID, &red.AccountID, &red.RewardID, &red.PointsSpent, &red.Code, &red.Status, &expiresAt, &red.CreatedAt); err != nil {
			return nil, 0, err
		}
		if expiresAt.Valid {
			t := expiresAt.Time
			red.ExpiresAt = &t
		}
		redemptions = append(redemptions, red)
	}
	return redemptions, count, nil
}

func (r *ledgerRepository) GetRedemptionByID(ctx context.Context, id int32) (*domain.Redemption, error) {
	red := &domain.Redemption{}
	var expiresAt sql.NullTime
	query := `SELECT id, account_id, reward_id, points_spent, redemption_code, status, expires_at, created_at FROM redemptions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&red.ID, &red.AccountID, &red.RewardID, &red.PointsSpent, &red.Code, &red.Status, &expiresAt, &red.CreatedAt)
	if err != nil {
		return nil, err
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		red.ExpiresAt = &t
	}
	return red, nil
}

func (r *ledgerRepository) TransitionRedemption(ctx context.Context, id int32, to domain.RedemptionStatus) error {
	// Only processed redemptions may transition; expired and cancelled are
	// terminal.
	query := `UPDATE redemptions SET status = $1 WHERE id = $2 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, to, id, domain.RedemptionStatusProcessed)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrInvalidTransition
	}
	return nil
}

func (r *ledgerRepository) ExpireRedemptions(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE redemptions SET status = $1 WHERE status = $2 AND expires_at IS NOT NULL AND expires_at < $3`
	res, err := r.db.ExecContext(ctx, query, domain.RedemptionStatusExpired, domain.RedemptionStatusProcessed, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// AuditBalances cross-checks the cached balance against the event history:
// balance must equal sum(points_earned) - sum(points_spent) for every account.
func (r *ledgerRepository) AuditBalances(ctx context.Context) ([]domain.BalanceDrift, error) {
	query := `SELECT a.id, a.total_points, COALESCE(c.earned, 0) - COALESCE(d.spent, 0) AS ledger_balance
	          FROM accounts a
	          LEFT JOIN (SELECT account_id, SUM(points_earned) AS earned FROM recycling_sessions GROUP BY account_id) c ON c.account_id = a.id
	          LEFT JOIN (SELECT account_id, SUM(points_spent) AS spent FROM redemptions GROUP BY account_id) d ON d.account_id = a.id
	          WHERE a.total_points <> COALESCE(c.earned, 0) - COALESCE(d.spent, 0)`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drifts []domain.BalanceDrift
	for rows.Next() {
		var d domain.BalanceDrift
		if err := rows.Scan(&d.AccountID, &d.CachedBalance, &d.LedgerBalance); err != nil {
			return nil, err
		}
		drifts = append(drifts, d)
	}
	return drifts, rows.Err()
}

func (r *ledgerRepository) CategoryCounts(ctx context.Context, accountID int32) (map[domain.WasteCategory]int32, error) {
	query := `SELECT waste_category, count(*) FROM recycling_sessions WHERE account_id = $1 GROUP BY waste_category`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.WasteCategory]int32)
	for rows.Next() {
		var category domain.WasteCategory
		var count int32
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

func (r *ledgerRepository) SummarizeActivity(ctx context.Context) (*domain.ActivityReport, error) {
	report := &domain.ActivityReport{
		SessionsByCategory:  make(map[domain.WasteCategory]int32),
		RedemptionsByStatus: make(map[domain.RedemptionStatus]int32),
	}

	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM accounts`).Scan(&report.TotalAccounts); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT count(*), COALESCE(SUM(points_earned), 0) FROM recycling_sessions`).Scan(&report.TotalSessions, &report.TotalPointsAwarded); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(points_spent), 0) FROM redemptions`).Scan(&report.TotalPointsSpent); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT waste_category, count(*) FROM recycling_sessions GROUP BY waste_category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var category domain.WasteCategory
		var count int32
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		report.SessionsByCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	statusRows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM redemptions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var status domain.RedemptionStatus
		var count int32
		if err := statusRows.Scan(&status, &count); err != nil {
			return nil, err
		}
		report.RedemptionsByStatus[status] = count
	}
	return report, statusRows.Err()
}
