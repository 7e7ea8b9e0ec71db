package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, t *domain.Team) error {
	query := `INSERT INTO teams (name, description, goal_points, is_public, created_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now().Format("2006-01-02")
	t.CreatedOn = now
	t.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, t.Name, t.Description, t.GoalPoints, t.IsPublic, t.CreatedBy, t.CreatedOn, t.UpdatedOn).Scan(&t.ID)
}

func (r *teamRepository) GetByID(ctx context.Context, id int32) (*domain.Team, error) {
	t := &domain.Team{}
	var createdOn, updatedOn time.Time
	query := `SELECT id, name, COALESCE(description, ''), goal_points, is_public, created_by, created_on, updated_on FROM teams WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Description, &t.GoalPoints, &t.IsPublic, &t.CreatedBy, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	t.CreatedOn = createdOn.Format("2006-01-02")
	t.UpdatedOn = updatedOn.Format("2006-01-02")
	return t, nil
}

func (r *teamRepository) Update(ctx context.Context, t *domain.Team) error {
	query := `UPDATE teams SET name=$1, description=$2, goal_points=$3, is_public=$4, updated_on=$5 WHERE id=$6`
	t.UpdatedOn = time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, t.Name, t.Description, t.GoalPoints, t.IsPublic, t.UpdatedOn, t.ID)
	return err
}

func (r *teamRepository) ListPublic(ctx context.Context, page, pageSize int32) ([]domain.Team, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, name, COALESCE(description, ''), goal_points, is_public, created_by, created_on, updated_on
	          FROM teams WHERE is_public = true ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM teams WHERE is_public = true`).Scan(&count); err != nil {
		return nil, 0, err
	}

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.GoalPoints, &t.IsPublic, &t.CreatedBy, &createdOn, &updatedOn); err != nil {
			return nil, 0, err
		}
		t.CreatedOn = createdOn.Format("2006-01-02")
		t.UpdatedOn = updatedOn.Format("2006-01-02")
		teams = append(teams, t)
	}
	return teams, count, nil
}

func (r *teamRepository) AddMember(ctx context.Context, m *domain.TeamMember) error {
	query := `INSERT INTO team_members (team_id, account_id, role, joined_on) VALUES ($1, $2, $3, $4)`
	m.JoinedOn = time.Now().Format("2006-01-02")
	if m.Role == "" {
		m.Role = domain.TeamRoleMember
	}
	_, err := r.db.ExecContext(ctx, query, m.TeamID, m.AccountID, m.Role, m.JoinedOn)
	return err
}

func (r *teamRepository) RemoveMember(ctx context.Context, teamID, accountID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = $1 AND account_id = $2`, teamID, accountID)
	return err
}

func (r *teamRepository) ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error) {
	query := `SELECT team_id, account_id, role, joined_on FROM team_members WHERE team_id = $1 ORDER BY joined_on`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		var joinedOn time.Time
		if err := rows.Scan(&m.TeamID, &m.AccountID, &m.Role, &joinedOn); err != nil {
			return nil, err
		}
		m.JoinedOn = joinedOn.Format("2006-01-02")
		members = append(members, m)
	}
	return members, rows.Err()
}

// TotalPoints sums the current balances of every team member. Team standings
// follow account totals; the ledger stays the single source of points.
func (r *teamRepository) TotalPoints(ctx context.Context, teamID int32) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(a.total_points), 0) FROM team_members m JOIN accounts a ON a.id = m.account_id WHERE m.team_id = $1`
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(&total)
	return total, err
}
