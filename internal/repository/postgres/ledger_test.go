package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

func TestLedgerRepository_RecordSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		session := &domain.RecyclingSession{
			AccountID:    1,
			BinID:        7,
			Category:     domain.WastePlastic,
			PointsEarned: 50,
			Verified:     true,
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO recycling_sessions").
			WithArgs(session.AccountID, session.BinID, session.Category, session.PointsEarned, session.Verified, session.PhotoURL, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectExec("UPDATE accounts SET total_points = total_points \\+").
			WithArgs(session.PointsEarned, sqlmock.AnyArg(), session.AccountID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.RecordSession(ctx, session)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), session.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingAccountRollsBack", func(t *testing.T) {
		session := &domain.RecyclingSession{AccountID: 99, BinID: 7, Category: domain.WastePaper, PointsEarned: 20}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO recycling_sessions").
			WithArgs(session.AccountID, session.BinID, session.Category, session.PointsEarned, session.Verified, session.PhotoURL, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
		mock.ExpectExec("UPDATE accounts SET total_points = total_points \\+").
			WithArgs(session.PointsEarned, sqlmock.AnyArg(), session.AccountID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.RecordSession(ctx, session)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_CreateRedemption(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		red := &domain.Redemption{
			AccountID:   1,
			RewardID:    3,
			PointsSpent: 200,
			Code:        "AbCdEf123456",
		}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET total_points = total_points -").
			WithArgs(red.PointsSpent, sqlmock.AnyArg(), red.AccountID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO redemptions").
			WithArgs(red.AccountID, red.RewardID, red.PointsSpent, red.Code, domain.RedemptionStatusProcessed, red.ExpiresAt, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectCommit()

		err := repo.CreateRedemption(ctx, red)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), red.ID)
		assert.Equal(t, domain.RedemptionStatusProcessed, red.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		red := &domain.Redemption{AccountID: 1, RewardID: 3, PointsSpent: 10000, Code: "ZzZzZz999999"}

		// The conditional debit matches zero rows when balance < debit, so
		// the redemption insert never runs.
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET total_points = total_points -").
			WithArgs(red.PointsSpent, sqlmock.AnyArg(), red.AccountID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CreateRedemption(ctx, red)
		assert.ErrorIs(t, err, repository.ErrInsufficientBalance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		red := &domain.Redemption{AccountID: 1, RewardID: 3, PointsSpent: 200, Code: "AbCdEf123456"}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET total_points = total_points -").
			WithArgs(red.PointsSpent, sqlmock.AnyArg(), red.AccountID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO redemptions").
			WithArgs(red.AccountID, red.RewardID, red.PointsSpent, red.Code, domain.RedemptionStatusProcessed, red.ExpiresAt, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreateRedemption(ctx, red)
		assert.ErrorIs(t, err, repository.ErrDuplicateCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SerializationFailureIsRetryable", func(t *testing.T) {
		red := &domain.Redemption{AccountID: 1, RewardID: 3, PointsSpent: 200, Code: "AbCdEf123456"}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET total_points = total_points -").
			WithArgs(red.PointsSpent, sqlmock.AnyArg(), red.AccountID).
			WillReturnError(&pq.Error{Code: "40001"})
		mock.ExpectRollback()

		err := repo.CreateRedemption(ctx, red)
		assert.ErrorIs(t, err, repository.ErrRetryableConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeadlockIsRetryable", func(t *testing.T) {
		red := &domain.Redemption{AccountID: 1, RewardID: 3, PointsSpent: 200, Code: "AbCdEf123456"}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET total_points = total_points -").
			WithArgs(red.PointsSpent, sqlmock.AnyArg(), red.AccountID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO redemptions").
			WithArgs(red.AccountID, red.RewardID, red.PointsSpent, red.Code, domain.RedemptionStatusProcessed, red.ExpiresAt, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "40P01"})
		mock.ExpectRollback()

		err := repo.CreateRedemption(ctx, red)
		assert.ErrorIs(t, err, repository.ErrRetryableConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_GetBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT total_points FROM accounts").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"total_points"}).AddRow(340))

		balance, err := repo.GetBalance(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(340), balance)
	})
}

func TestLedgerRepository_TransitionRedemption(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE redemptions SET status").
			WithArgs(domain.RedemptionStatusCancelled, int32(5), domain.RedemptionStatusProcessed).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.TransitionRedemption(ctx, 5, domain.RedemptionStatusCancelled)
		assert.NoError(t, err)
	})

	t.Run("TerminalStatusRejected", func(t *testing.T) {
		mock.ExpectExec("UPDATE redemptions SET status").
			WithArgs(domain.RedemptionStatusCancelled, int32(6), domain.RedemptionStatusProcessed).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.TransitionRedemption(ctx, 6, domain.RedemptionStatusCancelled)
		assert.ErrorIs(t, err, repository.ErrInvalidTransition)
	})
}

func TestLedgerRepository_ExpireRedemptions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE redemptions SET status").
		WithArgs(domain.RedemptionStatusExpired, domain.RedemptionStatusProcessed, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.ExpireRedemptions(ctx, time.Now().UTC())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestLedgerRepository_AuditBalances(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLedgerRepository(db)
	ctx := context.Background()

	t.Run("DriftReported", func(t *testing.T) {
		mock.ExpectQuery("SELECT a.id, a.total_points").
			WillReturnRows(sqlmock.NewRows([]string{"id", "total_points", "ledger_balance"}).AddRow(4, 500, 450))

		drifts, err := repo.AuditBalances(ctx)
		assert.NoError(t, err)
		assert.Len(t, drifts, 1)
		assert.Equal(t, int32(4), drifts[0].AccountID)
		assert.Equal(t, int32(500), drifts[0].CachedBalance)
		assert.Equal(t, int32(450), drifts[0].LedgerBalance)
	})

	t.Run("Clean", func(t *testing.T) {
		mock.ExpectQuery("SELECT a.id, a.total_points").
			WillReturnRows(sqlmock.NewRows([]string{"id", "total_points", "ledger_balance"}))

		drifts, err := repo.AuditBalances(ctx)
		assert.NoError(t, err)
		assert.Empty(t, drifts)
	})
}
