package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

type rewardRepository struct {
	db *sql.DB
}

func NewRewardRepository(db *sql.DB) repository.RewardRepository {
	return &rewardRepository{db: db}
}

const rewardColumns = `id, title, COALESCE(description, ''), type, COALESCE(provider, ''), value, points_required, validity_days, active, created_on`

func (r *rewardRepository) Create(ctx context.Context, rw *domain.Reward) error {
	query := `INSERT INTO rewards (title, description, type, provider, value, points_required, validity_days, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	rw.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, rw.Title, rw.Description, rw.Type, rw.Provider, rw.Value, rw.PointsRequired, rw.ValidityDays, rw.Active, rw.CreatedOn).Scan(&rw.ID)
}

func (r *rewardRepository) GetByID(ctx context.Context, id int32) (*domain.Reward, error) {
	rw := &domain.Reward{}
	var createdOn time.Time
	var validityDays sql.NullInt32
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rw.ID, &rw.Title, &rw.Description, &rw.Type, &rw.Provider, &rw.Value, &rw.PointsRequired, &validityDays, &rw.Active, &createdOn)
	if err != nil {
		return nil, err
	}
	if validityDays.Valid {
		d := validityDays.Int32
		rw.ValidityDays = &d
	}
	rw.CreatedOn = createdOn.Format("2006-01-02")
	return rw, nil
}

func (r *rewardRepository) Update(ctx context.Context, rw *domain.Reward) error {
	query := `UPDATE rewards SET title=$1, description=$2, type=$3, provider=$4, value=$5, points_required=$6, validity_days=$7, active=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, rw.Title, rw.Description, rw.Type, rw.Provider, rw.Value, rw.PointsRequired, rw.ValidityDays, rw.Active, rw.ID)
	return err
}

func (r *rewardRepository) ListActive(ctx context.Context) ([]domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE active = true ORDER BY points_required`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRewards(rows)
}

func (r *rewardRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Reward, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rewardColumns + ` FROM rewards ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rewards`).Scan(&count); err != nil {
		return nil, 0, err
	}

	rewards, err := scanRewards(rows)
	if err != nil {
		return nil, 0, err
	}
	return rewards, count, nil
}

func scanRewards(rows *sql.Rows) ([]domain.Reward, error) {
	var rewards []domain.Reward
	for rows.Next() {
		var rw domain.Reward
		var createdOn time.Time
		var validityDays sql.NullInt32
		if err := rows.Scan(&rw.ID, &rw.Title, &rw.Description, &rw.Type, &rw.Provider, &rw.Value, &rw.PointsRequired, &validityDays, &rw.Active, &createdOn); err != nil {
			return nil, err
		}
		if validityDays.Valid {
			d := validityDays.Int32
			rw.ValidityDays = &d
		}
		rw.CreatedOn = createdOn.Format("2006-01-02")
		rewards = append(rewards, rw)
	}
	return rewards, rows.Err()
}
