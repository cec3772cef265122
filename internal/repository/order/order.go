package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/repository"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, source_type, owner_actor_id, order_code, external_code, status,
	customer_actor_id, customer_name, customer_phone, customer_email,
	pickup_location, pickup_address, pickup_time, pickup_notes,
	delivery_location, delivery_address, delivery_time, delivery_notes,
	equipment_type, container_code, seal_number, weight_kg, cbm, package_count, hazardous, temperature_c,
	currency, freight_charge, additional_charges, total_charge, driver_payment, amount_paid,
	payment_status, driver_payment_status, primary_driver_actor_id, primary_vehicle_id,
	submitted_at, assigned_at, accepted_at, started_at, picked_up_at, delivered_at, completed_at,
	cancelled_at, held_at, held_from_status, cancelled_reason,
	internal_notes, driver_notes, customer_notes, tags, idempotency_key, created_at, updated_at`

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	columns := FromDomainModify(&orderModifyEntity)

	query, args, err := qb.
		Insert("unified_orders").
		SetMap(columns).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM unified_orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM unified_orders
		WHERE idempotency_key = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbykey error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("unified_orders").
		Where(sq.Eq{"owner_actor_id": filter.OwnerActorID})

	if filter.SourceType != nil {
		builder = builder.Where(sq.Eq{"source_type": filter.SourceType.String()})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.DriverActorID != nil {
		builder = builder.Where(sq.Eq{"primary_driver_actor_id": *filter.DriverActorID})
	}
	if filter.CustomerName != nil && *filter.CustomerName != "" {
		builder = builder.Where(sq.ILike{"customer_name": "%" + *filter.CustomerName + "%"})
	}
	if filter.ContainerCode != nil && *filter.ContainerCode != "" {
		builder = builder.Where(sq.Eq{"container_code": *filter.ContainerCode})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.DateTo})
	}

	builder = builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	return r.queryOrders(ctx, builder, "list")
}

func (r *Repository) ListAssigned(ctx context.Context, driverActorID int64, status *entities.OrderStatusType) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("unified_orders").
		Where(sq.Eq{"primary_driver_actor_id": driverActorID})

	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	builder = builder.OrderBy("created_at DESC", "id DESC")

	return r.queryOrders(ctx, builder, "listassigned")
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	columns := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("unified_orders").
		SetMap(columns).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModifyEntity.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM unified_orders WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) UpdateStatusGuarded(ctx context.Context, id int64, fromStatus, toStatus entities.OrderStatusType, patch entities.OrderStatusPatch) (*entities.Order, error) {
	columns := FromDomainStatusPatch(patch)
	columns["status"] = toStatus.String()

	builder := qb.
		Update("unified_orders").
		SetMap(columns).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": fromStatus.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository status update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrStatusNotMatched
		}

		return nil, fmt.Errorf("unexpected order repository status update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) UpdatePayment(ctx context.Context, id int64, patch entities.OrderPaymentPatch) (*entities.Order, error) {
	builder := qb.Update("unified_orders")

	if patch.AmountPaid != nil {
		builder = builder.Set("amount_paid", *patch.AmountPaid)
	}
	if patch.PaymentStatus != nil {
		builder = builder.Set("payment_status", patch.PaymentStatus.String())
	}
	if patch.DriverPaymentStatus != nil {
		builder = builder.Set("driver_payment_status", patch.DriverPaymentStatus.String())
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository payment update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository payment update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) AppendHistory(ctx context.Context, historyEntity entities.OrderStatusHistory) error {
	query := `
		INSERT INTO order_status_history (order_id, from_status, to_status, changed_by_actor_id, note)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(ctx, query,
		historyEntity.OrderID,
		historyEntity.FromStatus.String(),
		historyEntity.ToStatus.String(),
		historyEntity.ChangedByActorID,
		historyEntity.Note,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository history append error: %w", err)
	}

	return nil
}

func (r *Repository) ListHistory(ctx context.Context, orderID int64) ([]entities.OrderStatusHistory, error) {
	query := `
		SELECT id, order_id, from_status, to_status, changed_by_actor_id, note, created_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository history list error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.OrderStatusHistory, 0, 8)
	for rows.Next() {
		var historyModel OrderStatusHistoryDB
		err := rows.Scan(
			&historyModel.ID,
			&historyModel.OrderID,
			&historyModel.FromStatus,
			&historyModel.ToStatus,
			&historyModel.ChangedByActorID,
			&historyModel.Note,
			&historyModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository history list error: %w", err)
		}
		result = append(result, *ToDomainHistory(&historyModel))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository history list error: %w", err)
	}

	return result, nil
}

func (r *Repository) CountActiveByOwner(ctx context.Context, ownerActorID int64) (int64, error) {
	statuses := make([]string, 0, len(entities.ActiveWorkStatuses))
	for _, status := range entities.ActiveWorkStatuses {
		statuses = append(statuses, status.String())
	}

	query, args, err := qb.
		Select("COUNT(*)").
		From("unified_orders").
		Where(sq.Eq{"owner_actor_id": ownerActorID, "status": statuses}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	var count int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) UpsertSegment(ctx context.Context, segmentEntity entities.OrderSegment) error {
	query := `
		INSERT INTO order_segments (order_id, segment_number, segment_type, driver_actor_id, vehicle_id, assigned_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (order_id, segment_number) DO UPDATE
		SET segment_type = EXCLUDED.segment_type,
			driver_actor_id = EXCLUDED.driver_actor_id,
			vehicle_id = EXCLUDED.vehicle_id,
			assigned_at = EXCLUDED.assigned_at`

	_, err := r.querier.Exec(ctx, query,
		segmentEntity.OrderID,
		segmentEntity.SegmentNumber,
		segmentEntity.SegmentType,
		segmentEntity.DriverActorID,
		segmentEntity.VehicleID,
		segmentEntity.AssignedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository segment upsert error: %w", err)
	}

	return nil
}

func (r *Repository) queryOrders(ctx context.Context, builder sq.SelectBuilder, op string) ([]entities.Order, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}

	return ToDomainList(orderModels), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.SourceType,
		&orderModel.OwnerActorID,
		&orderModel.OrderCode,
		&orderModel.ExternalCode,
		&orderModel.Status,
		&orderModel.CustomerActorID,
		&orderModel.CustomerName,
		&orderModel.CustomerPhone,
		&orderModel.CustomerEmail,
		&orderModel.PickupLocation,
		&orderModel.PickupAddress,
		&orderModel.PickupTime,
		&orderModel.PickupNotes,
		&orderModel.DeliveryLocation,
		&orderModel.DeliveryAddress,
		&orderModel.DeliveryTime,
		&orderModel.DeliveryNotes,
		&orderModel.EquipmentType,
		&orderModel.ContainerCode,
		&orderModel.SealNumber,
		&orderModel.WeightKg,
		&orderModel.CBM,
		&orderModel.PackageCount,
		&orderModel.Hazardous,
		&orderModel.TemperatureC,
		&orderModel.Currency,
		&orderModel.FreightCharge,
		&orderModel.AdditionalCharges,
		&orderModel.TotalCharge,
		&orderModel.DriverPayment,
		&orderModel.AmountPaid,
		&orderModel.PaymentStatus,
		&orderModel.DriverPaymentStatus,
		&orderModel.PrimaryDriverActorID,
		&orderModel.PrimaryVehicleID,
		&orderModel.SubmittedAt,
		&orderModel.AssignedAt,
		&orderModel.AcceptedAt,
		&orderModel.StartedAt,
		&orderModel.PickedUpAt,
		&orderModel.DeliveredAt,
		&orderModel.CompletedAt,
		&orderModel.CancelledAt,
		&orderModel.HeldAt,
		&orderModel.HeldFromStatus,
		&orderModel.CancelledReason,
		&orderModel.InternalNotes,
		&orderModel.DriverNotes,
		&orderModel.CustomerNotes,
		&orderModel.Tags,
		&orderModel.IdempotencyKey,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &orderModel, nil
}
