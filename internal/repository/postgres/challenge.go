package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

type challengeRepository struct {
	db *sql.DB
}

func NewChallengeRepository(db *sql.DB) repository.ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(ctx context.Context, c *domain.Challenge) error {
	query := `INSERT INTO community_challenges (title, description, type, goal_points, rewards, start_date, end_date, is_active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	c.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, c.Title, c.Description, c.Type, c.GoalPoints, c.Rewards, c.StartDate, c.EndDate, c.IsActive, c.CreatedOn).Scan(&c.ID)
}

const challengeColumns = `id, title, COALESCE(description, ''), type, goal_points, COALESCE(rewards, ''), start_date, end_date, is_active, created_on`

func (r *challengeRepository) GetByID(ctx context.Context, id int32) (*domain.Challenge, error) {
	c := &domain.Challenge{}
	var createdOn time.Time
	query := `SELECT ` + challengeColumns + ` FROM community_challenges WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Title, &c.Description, &c.Type, &c.GoalPoints, &c.Rewards, &c.StartDate, &c.EndDate, &c.IsActive, &createdOn)
	if err != nil {
		return nil, err
	}
	c.CreatedOn = createdOn.Format("2006-01-02")
	return c, nil
}

func (r *challengeRepository) ListActive(ctx context.Context, now time.Time) ([]domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM community_challenges
	          WHERE is_active = true AND start_date <= $1 AND end_date >= $1 ORDER BY end_date`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []domain.Challenge
	for rows.Next() {
		var c domain.Challenge
		var createdOn time.Time
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Type, &c.GoalPoints, &c.Rewards, &c.StartDate, &c.EndDate, &c.IsActive, &createdOn); err != nil {
			return nil, err
		}
		c.CreatedOn = createdOn.Format("2006-01-02")
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}

func (r *challengeRepository) Join(ctx context.Context, p *domain.ChallengeParticipant) error {
	query := `INSERT INTO challenge_participants (challenge_id, account_id, points_contributed, joined_on) VALUES ($1, $2, 0, $3)`
	p.JoinedOn = time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, p.ChallengeID, p.AccountID, p.JoinedOn)
	return err
}

func (r *challengeRepository) ListParticipants(ctx context.Context, challengeID int32) ([]domain.ChallengeParticipant, error) {
	query := `SELECT challenge_id, account_id, points_contributed, joined_on FROM challenge_participants WHERE challenge_id = $1 ORDER BY points_contributed DESC`
	rows, err := r.db.QueryContext(ctx, query, challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []domain.ChallengeParticipant
	for rows.Next() {
		var p domain.ChallengeParticipant
		var joinedOn time.Time
		if err := rows.Scan(&p.ChallengeID, &p.AccountID, &p.PointsContributed, &joinedOn); err != nil {
			return nil, err
		}
		p.JoinedOn = joinedOn.Format("2006-01-02")
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// ContributeToActive folds freshly earned points into every running
// challenge the account has joined. Contributions are additive counters, not
// ledger events, so a plain increment is enough here.
func (r *challengeRepository) ContributeToActive(ctx context.Context, accountID, points int32, now time.Time) (int64, error) {
	query := `UPDATE challenge_participants SET points_contributed = points_contributed + $1
	          WHERE account_id = $2 AND challenge_id IN (
	              SELECT id FROM community_challenges WHERE is_active = true AND start_date <= $3 AND end_date >= $3)`
	res, err := r.db.ExecContext(ctx, query, points, accountID, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *challengeRepository) Progress(ctx context.Context, challengeID int32) (*domain.ChallengeProgress, error) {
	challenge, err := r.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	progress := &domain.ChallengeProgress{Challenge: *challenge}
	query := `SELECT COALESCE(SUM(points_contributed), 0), count(*) FROM challenge_participants WHERE challenge_id = $1`
	if err := r.db.QueryRowContext(ctx, query, challengeID).Scan(&progress.TotalContributed, &progress.ParticipantCount); err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *challengeRepository) CloseEnded(ctx context.Context, now time.Time) ([]domain.Challenge, error) {
	query := `UPDATE community_challenges SET is_active = false
	          WHERE is_active = true AND end_date < $1
	          RETURNING ` + challengeColumns
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var closed []domain.Challenge
	for rows.Next() {
		var c domain.Challenge
		var createdOn time.Time
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Type, &c.GoalPoints, &c.Rewards, &c.StartDate, &c.EndDate, &c.IsActive, &createdOn); err != nil {
			return nil, err
		}
		c.CreatedOn = createdOn.Format("2006-01-02")
		closed = append(closed, c)
	}
	return closed, rows.Err()
}
