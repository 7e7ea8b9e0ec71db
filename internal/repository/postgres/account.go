package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (email, phone_number, password_hash, full_name, location, role, total_points, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now().Format("2006-01-02")
	a.CreatedOn = now
	a.UpdatedOn = now
	if a.Role == "" {
		a.Role = domain.AccountRoleUser
	}
	return r.db.QueryRowContext(ctx, query, a.Email, a.PhoneNumber, a.PasswordHash, a.FullName, a.Location, a.Role, a.TotalPoints, a.CreatedOn, a.UpdatedOn).Scan(&a.ID)
}

func (r *accountRepository) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	a := &domain.Account{}
	query := `SELECT id, email, COALESCE(phone_number, ''), password_hash, full_name, COALESCE(location, ''), role, total_points, created_on, updated_on FROM accounts WHERE id = $1`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Email, &a.PhoneNumber, &a.PasswordHash, &a.FullName, &a.Location, &a.Role, &a.TotalPoints, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	a.UpdatedOn = updatedOn.Format("2006-01-02")
	return a, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a := &domain.Account{}
	query := `SELECT id, email, COALESCE(phone_number, ''), password_hash, full_name, COALESCE(location, ''), role, total_points, created_on, updated_on FROM accounts WHERE LOWER(email) = LOWER($1)`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.PhoneNumber, &a.PasswordHash, &a.FullName, &a.Location, &a.Role, &a.TotalPoints, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	a.UpdatedOn = updatedOn.Format("2006-01-02")
	return a, nil
}

// Update never touches total_points. The cached balance is written only by
// the ledger repository's transactional mutations.
func (r *accountRepository) Update(ctx context.Context, a *domain.Account) error {
	query := `UPDATE accounts SET email=$1, phone_number=$2, full_name=$3, location=$4, updated_on=$5 WHERE id=$6`
	now := time.Now().Format("2006-01-02")
	a.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, a.Email, a.PhoneNumber, a.FullName, a.Location, a.UpdatedOn, a.ID)
	return err
}

func (r *accountRepository) Search(ctx context.Context, searchQuery string, page, pageSize int32) ([]domain.Account, int32, error) {
	offset := (page - 1) * pageSize
	pattern := "%" + searchQuery + "%"
	query := `SELECT id, email, COALESCE(phone_number, ''), password_hash, full_name, COALESCE(location, ''), role, total_points, created_on, updated_on
	          FROM accounts WHERE full_name ILIKE $1 OR email ILIKE $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, pattern, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	countQuery := `SELECT count(*) FROM accounts WHERE full_name ILIKE $1 OR email ILIKE $1`
	if err := r.db.QueryRowContext(ctx, countQuery, pattern).Scan(&count); err != nil {
		return nil, 0, err
	}

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&a.ID, &a.Email, &a.PhoneNumber, &a.PasswordHash, &a.FullName, &a.Location, &a.Role, &a.TotalPoints, &createdOn, &updatedOn); err != nil {
			return nil, 0, err
		}
		a.CreatedOn = createdOn.Format("2006-01-02")
		a.UpdatedOn = updatedOn.Format("2006-01-02")
		accounts = append(accounts, a)
	}
	return accounts, count, nil
}

func (r *accountRepository) Leaderboard(ctx context.Context, limit int32) ([]domain.LeaderboardEntry, error) {
	query := `SELECT id, full_name, total_points FROM accounts ORDER BY total_points DESC, id ASC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	var rank int32
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.AccountID, &e.FullName, &e.TotalPoints); err != nil {
			return nil, err
		}
		rank++
		e.Rank = rank
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *accountRepository) Rank(ctx context.Context, accountID int32) (int32, error) {
	var rank int32
	query := `SELECT count(*) + 1 FROM accounts
	          WHERE total_points > (SELECT total_points FROM accounts WHERE id = $1)`
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&rank)
	return rank, err
}
