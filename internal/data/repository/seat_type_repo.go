package repository

import (
	"context"
	"errors"
	"fmt"

	"outlet-seating/internal/data/entity"
	"outlet-seating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatTypeRepository interface {
	Create(ctx context.Context, seatType *entity.SeatType) error
	FindByID(ctx context.Context, id int64) (*entity.SeatType, error)
	FindByOutletID(ctx context.Context, outletID int64) ([]*entity.SeatType, error)
	Update(ctx context.Context, seatType *entity.SeatType) error
	SoftDelete(ctx context.Context, seatType *entity.SeatType) error
}

type seatTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatTypeRepository(db database.PgxIface, log *zap.Logger) SeatTypeRepository {
	return &seatTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_type")),
	}
}

const seatTypeColumns = `id, outlet_id, name, description, status, deleted_at, created_at, updated_at, created_by, updated_by`

func (r *seatTypeRepository) Create(ctx context.Context, seatType *entity.SeatType) error {
	query := `
		INSERT INTO seat_types (outlet_id, name, description, status, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		seatType.OutletID,
		seatType.Name,
		seatType.Description,
		string(seatType.Status()),
		seatType.CreatedAt,
		seatType.UpdatedAt,
		seatType.CreatedBy,
		seatType.UpdatedBy,
	).Scan(&seatType.ID)

	if err != nil {
		r.log.Error("Failed to create seat type",
			zap.Error(err),
			zap.Int64("outlet_id", seatType.OutletID),
			zap.String("name", seatType.Name),
		)
		return fmt.Errorf("create seat type %s: %w", seatType.Name, err)
	}

	return nil
}

func (r *seatTypeRepository) scan(row pgx.Row) (*entity.SeatType, error) {
	var st entity.SeatType
	var lc lifecycleColumns
	err := row.Scan(
		&st.ID,
		&st.OutletID,
		&st.Name,
		&st.Description,
		&lc.status,
		&lc.deletedAt,
		&st.CreatedAt,
		&st.UpdatedAt,
		&st.CreatedBy,
		&st.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := lc.restore(&st.Base); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *seatTypeRepository) FindByID(ctx context.Context, id int64) (*entity.SeatType, error) {
	query := `SELECT ` + seatTypeColumns + ` FROM seat_types WHERE id = $1 AND deleted_at IS NULL`

	st, err := r.scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat type by ID",
			zap.Error(err),
			zap.Int64("seat_type_id", id),
		)
		return nil, fmt.Errorf("find seat type by ID %d: %w", id, err)
	}

	return st, nil
}

func (r *seatTypeRepository) FindByOutletID(ctx context.Context, outletID int64) ([]*entity.SeatType, error) {
	query := `SELECT ` + seatTypeColumns + ` FROM seat_types
		WHERE outlet_id = $1 AND deleted_at IS NULL
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, outletID)
	if err != nil {
		r.log.Error("Failed to find seat types by outlet",
			zap.Error(err),
			zap.Int64("outlet_id", outletID),
		)
		return nil, fmt.Errorf("find seat types for outlet %d: %w", outletID, err)
	}
	defer rows.Close()

	var seatTypes []*entity.SeatType
	for rows.Next() {
		st, err := r.scan(rows)
		if err != nil {
			r.log.Error("Failed to scan seat type row", zap.Error(err))
			return nil, fmt.Errorf("scan seat type row: %w", err)
		}
		seatTypes = append(seatTypes, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seat type rows: %w", err)
	}

	return seatTypes, nil
}

func (r *seatTypeRepository) Update(ctx context.Context, seatType *entity.SeatType) error {
	query := `
		UPDATE seat_types
		SET name = $2, description = $3, status = $4, updated_at = $5, updated_by = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		seatType.ID,
		seatType.Name,
		seatType.Description,
		string(seatType.Status()),
		seatType.UpdatedAt,
		seatType.UpdatedBy,
	)
	if err != nil {
		r.log.Error("Failed to update seat type",
			zap.Error(err),
			zap.Int64("seat_type_id", seatType.ID),
		)
		return fmt.Errorf("update seat type %d: %w", seatType.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat type %d: %w", seatType.ID, ErrNotFound)
	}

	return nil
}

func (r *seatTypeRepository) SoftDelete(ctx context.Context, seatType *entity.SeatType) error {
	query := `
		UPDATE seat_types
		SET status = $2, deleted_at = $3, updated_at = $4, updated_by = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		seatType.ID,
		string(seatType.Status()),
		seatType.DeletedAt(),
		seatType.UpdatedAt,
		seatType.UpdatedBy,
	)
	if err != nil {
		r.log.Error("Failed to delete seat type",
			zap.Error(err),
			zap.Int64("seat_type_id", seatType.ID),
		)
		return fmt.Errorf("delete seat type %d: %w", seatType.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat type %d: %w", seatType.ID, ErrNotFound)
	}

	return nil
}
