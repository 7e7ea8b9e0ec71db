package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

type friendshipRepository struct {
	db *sql.DB
}

func NewFriendshipRepository(db *sql.DB) repository.FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(ctx context.Context, f *domain.Friendship) error {
	query := `INSERT INTO friendships (account_id, friend_id, status, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	f.CreatedOn = time.Now().Format("2006-01-02")
	if f.Status == "" {
		f.Status = domain.FriendshipStatusPending
	}
	return r.db.QueryRowContext(ctx, query, f.AccountID, f.FriendID, f.Status, f.CreatedOn).Scan(&f.ID)
}

func (r *friendshipRepository) GetByID(ctx context.Context, id int32) (*domain.Friendship, error) {
	f := &domain.Friendship{}
	var createdOn time.Time
	query := `SELECT id, account_id, friend_id, status, created_on FROM friendships WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.AccountID, &f.FriendID, &f.Status, &createdOn)
	if err != nil {
		return nil, err
	}
	f.CreatedOn = createdOn.Format("2006-01-02")
	return f, nil
}

func (r *friendshipRepository) GetByPair(ctx context.Context, accountID, friendID int32) (*domain.Friendship, error) {
	f := &domain.Friendship{}
	var createdOn time.Time
	query := `SELECT id, account_id, friend_id, status, created_on FROM friendships
	          WHERE (account_id = $1 AND friend_id = $2) OR (account_id = $2 AND friend_id = $1)`
	err := r.db.QueryRowContext(ctx, query, accountID, friendID).Scan(&f.ID, &f.AccountID, &f.FriendID, &f.Status, &createdOn)
	if err != nil {
		return nil, err
	}
	f.CreatedOn = createdOn.Format("2006-01-02")
	return f, nil
}

func (r *friendshipRepository) UpdateStatus(ctx context.Context, id int32, status domain.FriendshipStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE friendships SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *friendshipRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM friendships WHERE id = $1`, id)
	return err
}

func (r *friendshipRepository) ListByAccount(ctx context.Context, accountID int32, status string) ([]domain.Friendship, error) {
	query := `SELECT id, account_id, friend_id, status, created_on FROM friendships
	          WHERE (account_id = $1 OR friend_id = $1) AND ($2 = '' OR status = $2) ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, accountID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friendships []domain.Friendship
	for rows.Next() {
		var f domain.Friendship
		var createdOn time.Time
		if err := rows.Scan(&f.ID, &f.AccountID, &f.FriendID, &f.Status, &createdOn); err != nil {
			return nil, err
		}
		f.CreatedOn = createdOn.Format("2006-01-02")
		friendships = append(friendships, f)
	}
	return friendships, rows.Err()
}
