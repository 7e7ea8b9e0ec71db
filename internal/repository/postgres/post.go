package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, p *domain.Post) error {
	query := `INSERT INTO social_posts (account_id, content, activity_type, image_url, points_earned, likes_count, created_on)
	          VALUES ($1, $2, $3, $4, $5, 0, $6) RETURNING id`
	p.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, p.AccountID, p.Content, p.ActivityType, p.ImageURL, p.PointsEarned, p.CreatedOn).Scan(&p.ID)
}

func (r *postRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Post, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, account_id, content, COALESCE(activity_type, ''), COALESCE(image_url, ''), points_earned, likes_count, created_on
	          FROM social_posts ORDER BY created_on DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM social_posts`).Scan(&count); err != nil {
		return nil, 0, err
	}

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		var createdOn time.Time
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Content, &p.ActivityType, &p.ImageURL, &p.PointsEarned, &p.LikesCount, &createdOn); err != nil {
			return nil, 0, err
		}
		p.CreatedOn = createdOn.Format("2006-01-02")
		posts = append(posts, p)
	}
	return posts, count, nil
}

// Like inserts the like row and bumps the denormalized counter together.
func (r *postRepository) Like(ctx context.Context, postID, accountID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO post_likes (post_id, account_id, created_on) VALUES ($1, $2, $3)`, postID, accountID, time.Now()); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE social_posts SET likes_count = likes_count + 1 WHERE id = $1`, postID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *postRepository) Unlike(ctx context.Context, postID, accountID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND account_id = $2`, postID, accountID)
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
	if _, err := tx.ExecContext(ctx, `UPDATE social_posts SET likes_count = likes_count - 1 WHERE id = $1 AND likes_count > 0`, postID); err != nil {
		return err
	}
	return tx.Commit()
}
