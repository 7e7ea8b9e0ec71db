package postgres

import (
	"context"
	"database/sql"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/repository"

	"github.com/lib/pq"
)

type binRepository struct {
	db *sql.DB
}

func NewBinRepository(db *sql.DB) repository.BinRepository {
	return &binRepository{db: db}
}

func acceptedTypes(raw []string) []domain.WasteCategory {
	types := make([]domain.WasteCategory, 0, len(raw))
	for _, t := range raw {
		types = append(types, domain.WasteCategory(t))
	}
	return types
}

func acceptedStrings(types []domain.WasteCategory) []string {
	raw := make([]string, 0, len(types))
	for _, t := range types {
		raw = append(raw, string(t))
	}
	return raw
}

func (r *binRepository) Create(ctx context.Context, b *domain.Bin) error {
	query := `INSERT INTO bins (name, location, latitude, longitude, qr_code, status, fill_level, capacity, accepted_waste_types, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now().Format("2006-01-02")
	b.CreatedOn = now
	b.UpdatedOn = now
	if b.Status == "" {
		b.Status = domain.BinStatusActive
	}
	return r.db.QueryRowContext(ctx, query, b.Name, b.Location, b.Latitude, b.Longitude, b.QRCode, b.Status, b.FillLevel, b.Capacity, pq.Array(acceptedStrings(b.AcceptedTypes)), b.CreatedOn, b.UpdatedOn).Scan(&b.ID)
}

func (r *binRepository) scanBin(row *sql.Row) (*domain.Bin, error) {
	b := &domain.Bin{}
	var createdOn, updatedOn time.Time
	var rawTypes []string
	err := row.Scan(&b.ID, &b.Name, &b.Location, &b.Latitude, &b.Longitude, &b.QRCode, &b.Status, &b.FillLevel, &b.Capacity, pq.Array(&rawTypes), &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	b.AcceptedTypes = acceptedTypes(rawTypes)
	b.CreatedOn = createdOn.Format("2006-01-02")
	b.UpdatedOn = updatedOn.Format("2006-01-02")
	return b, nil
}

const binColumns = `id, name, location, latitude, longitude, qr_code, status, fill_level, capacity, accepted_waste_types, created_on, updated_on`

func (r *binRepository) GetByID(ctx context.Context, id int32) (*domain.Bin, error) {
	query := `SELECT ` + binColumns + ` FROM bins WHERE id = $1`
	return r.scanBin(r.db.QueryRowContext(ctx, query, id))
}

func (r *binRepository) GetByQRCode(ctx context.Context, qrCode string) (*domain.Bin, error) {
	query := `SELECT ` + binColumns + ` FROM bins WHERE qr_code = $1`
	return r.scanBin(r.db.QueryRowContext(ctx, query, qrCode))
}

func (r *binRepository) Update(ctx context.Context, b *domain.Bin) error {
	query := `UPDATE bins SET name=$1, location=$2, latitude=$3, longitude=$4, status=$5, fill_level=$6, capacity=$7, accepted_waste_types=$8, updated_on=$9 WHERE id=$10`
	now := time.Now().Format("2006-01-02")
	b.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, b.Name, b.Location, b.Latitude, b.Longitude, b.Status, b.FillLevel, b.Capacity, pq.Array(acceptedStrings(b.AcceptedTypes)), b.UpdatedOn, b.ID)
	return err
}

func (r *binRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bins WHERE id = $1`, id)
	return err
}

func (r *binRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Bin, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + binColumns + ` FROM bins WHERE ($1 = '' OR status = $1) ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	countQuery := `SELECT count(*) FROM bins WHERE ($1 = '' OR status = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	var bins []domain.Bin
	for rows.Next() {
		var b domain.Bin
		var createdOn, updatedOn time.Time
		var rawTypes []string
		if err := rows.Scan(&b.ID, &b.Name, &b.Location, &b.Latitude, &b.Longitude, &b.QRCode, &b.Status, &b.FillLevel, &b.Capacity, pq.Array(&rawTypes), &createdOn, &updatedOn); err != nil {
			return nil, 0, err
		}
		b.AcceptedTypes = acceptedTypes(rawTypes)
		b.CreatedOn = createdOn.Format("2006-01-02")
		b.UpdatedOn = updatedOn.Format("2006-01-02")
		bins = append(bins, b)
	}
	return bins, count, nil
}

func (r *binRepository) UpdateStatus(ctx context.Context, id int32, status domain.BinStatus, fillLevel int32) error {
	query := `UPDATE bins SET status=$1, fill_level=$2, updated_on=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, status, fillLevel, time.Now().Format("2006-01-02"), id)
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
