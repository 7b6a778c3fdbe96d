package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"outlet-seating/internal/data/entity"
	"outlet-seating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OutletRepository interface {
	Create(ctx context.Context, outlet *entity.Outlet) error
	FindByID(ctx context.Context, id int64) (*entity.Outlet, error)
	FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Outlet, error)
	CountAll(ctx context.Context, cityFilter *string) (int64, error)
	Update(ctx context.Context, outlet *entity.Outlet) error
	SoftDelete(ctx context.Context, outlet *entity.Outlet) error
}

type outletRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOutletRepository(db database.PgxIface, log *zap.Logger) OutletRepository {
	return &outletRepository{
		db:  db,
		log: log.With(zap.String("repository", "outlet")),
	}
}

const outletColumns = `id, name, address, city, phone, status, deleted_at, created_at, updated_at, created_by, updated_by`

func (r *outletRepository) Create(ctx context.Context, outlet *entity.Outlet) error {
	query := `
		INSERT INTO outlets (name, address, city, phone, status, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		outlet.Name,
		outlet.Address,
		outlet.City,
		outlet.Phone,
		string(outlet.Status()),
		outlet.CreatedAt,
		outlet.UpdatedAt,
		outlet.CreatedBy,
		outlet.UpdatedBy,
	).Scan(&outlet.ID)

	if err != nil {
		r.log.Error("Failed to create outlet",
			zap.Error(err),
			zap.String("name", outlet.Name),
			zap.String("city", outlet.City),
		)
		return fmt.Errorf("create outlet %s: %w", outlet.Name, err)
	}

	return nil
}

func (r *outletRepository) scan(row pgx.Row) (*entity.Outlet, error) {
	var outlet entity.Outlet
	var lc lifecycleColumns
	err := row.Scan(
		&outlet.ID,
		&outlet.Name,
		&outlet.Address,
		&outlet.City,
		&outlet.Phone,
		&lc.status,
		&lc.deletedAt,
		&outlet.CreatedAt,
		&outlet.UpdatedAt,
		&outlet.CreatedBy,
		&outlet.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := lc.restore(&outlet.Base); err != nil {
		return nil, err
	}
	return &outlet, nil
}

func (r *outletRepository) FindByID(ctx context.Context, id int64) (*entity.Outlet, error) {
	query := `SELECT ` + outletColumns + ` FROM outlets WHERE id = $1 AND deleted_at IS NULL`

	outlet, err := r.scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find outlet by ID",
			zap.Error(err),
			zap.Int64("outlet_id", id),
		)
		return nil, fmt.Errorf("find outlet by ID %d: %w", id, err)
	}

	return outlet, nil
}

func (r *outletRepository) FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Outlet, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + outletColumns + ` FROM outlets WHERE deleted_at IS NULL`)

	args := []any{}
	argCount := 1

	if cityFilter != nil && *cityFilter != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND city ILIKE $%d", argCount))
		args = append(args, "%"+*cityFilter+"%")
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY city, name LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all outlets",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Stringp("city_filter", cityFilter),
		)
		return nil, fmt.Errorf("find all outlets limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var outlets []*entity.Outlet
	for rows.Next() {
		outlet, err := r.scan(rows)
		if err != nil {
			r.log.Error("Failed to scan outlet row", zap.Error(err))
			return nil, fmt.Errorf("scan outlet row: %w", err)
		}
		outlets = append(outlets, outlet)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate outlet rows: %w", err)
	}

	return outlets, nil
}

func (r *outletRepository) CountAll(ctx context.Context, cityFilter *string) (int64, error) {
	query := `SELECT COUNT(*) FROM outlets WHERE deleted_at IS NULL`
	args := []any{}

	if cityFilter != nil && *cityFilter != "" {
		query += " AND city ILIKE $1"
		args = append(args, "%"+*cityFilter+"%")
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count outlets",
			zap.Error(err),
			zap.Stringp("city_filter", cityFilter),
		)
		return 0, fmt.Errorf("count all outlets: %w", err)
	}

	return total, nil
}

func (r *outletRepository) Update(ctx context.Context, outlet *entity.Outlet) error {
	query := `
		UPDATE outlets
		SET name = $2, address = $3, city = $4, phone = $5, status = $6, updated_at = $7, updated_by = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		outlet.ID,
		outlet.Name,
		outlet.Address,
		outlet.City,
		outlet.Phone,
		string(outlet.Status()),
		outlet.UpdatedAt,
		outlet.UpdatedBy,
	)
	if err != nil {
		r.log.Error("Failed to update outlet",
			zap.Error(err),
			zap.Int64("outlet_id", outlet.ID),
		)
		return fmt.Errorf("update outlet %d: %w", outlet.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("outlet %d: %w", outlet.ID, ErrNotFound)
	}

	return nil
}

func (r *outletRepository) SoftDelete(ctx context.Context, outlet *entity.Outlet) error {
	query := `
		UPDATE outlets
		SET status = $2, deleted_at = $3, updated_at = $4, updated_by = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		outlet.ID,
		string(outlet.Status()),
		outlet.DeletedAt(),
		outlet.UpdatedAt,
		outlet.UpdatedBy,
	)
	if err != nil {
		r.log.Error("Failed to delete outlet",
			zap.Error(err),
			zap.Int64("outlet_id", outlet.ID),
		)
		return fmt.Errorf("delete outlet %d: %w", outlet.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("outlet %d: %w", outlet.ID, ErrNotFound)
	}

	r.log.Info("Outlet deleted", zap.Int64("outlet_id", outlet.ID))
	return nil
}
