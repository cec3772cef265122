package relationship

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/repository"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/relationship"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const relationshipColumns = `id, actor_id, related_actor_id, type, role, status, message, permissions,
	payment_terms, total_orders_completed, total_amount_paid, total_amount_pending, rating, created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, relationshipModifyEntity entities.RelationshipModify) (*entities.Relationship, error) {
	columns := FromDomainModify(&relationshipModifyEntity)

	query, args, err := qb.
		Insert("actor_relationships").
		SetMap(columns).
		Suffix("RETURNING " + relationshipColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected relationship repository create error: %w", err)
	}

	relationshipModel, err := scanRelationship(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, relationship.ErrConflict
		}
		return nil, fmt.Errorf("unexpected relationship repository create error: %w", err)
	}

	return ToDomain(relationshipModel), nil
}

func (r *Repository) GetByIDForActor(ctx context.Context, id, actorID int64) (*entities.Relationship, error) {
	query := `SELECT ` + relationshipColumns + `
		FROM actor_relationships
		WHERE id = $1 AND (actor_id = $2 OR related_actor_id = $2)`

	relationshipModel, err := scanRelationship(r.querier.QueryRow(ctx, query, id, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, relationship.ErrRelationshipNotFound
		}

		return nil, fmt.Errorf("unexpected relationship repository getbyid error: %w", err)
	}

	return ToDomain(relationshipModel), nil
}

func (r *Repository) Update(ctx context.Context, relationshipModifyEntity entities.RelationshipModify) (*entities.Relationship, error) {
	columns := FromDomainModify(&relationshipModifyEntity)

	builder := qb.
		Update("actor_relationships").
		SetMap(columns).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": relationshipModifyEntity.ID}).
		Suffix("RETURNING " + relationshipColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected relationship repository update error: %w", err)
	}

	relationshipModel, err := scanRelationship(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, relationship.ErrRelationshipNotFound
		}

		return nil, fmt.Errorf("unexpected relationship repository update error: %w", err)
	}

	return ToDomain(relationshipModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM actor_relationships WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected relationship repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return relationship.ErrRelationshipNotFound
	}

	return nil
}

func (r *Repository) ListByActor(ctx context.Context, actorID int64, filter entities.RelationshipFilter) ([]entities.Relationship, error) {
	builder := qb.
		Select(relationshipColumns).
		From("actor_relationships")

	switch filter.Direction {
	case entities.DirectionOutgoing:
		builder = builder.Where(sq.Eq{"actor_id": actorID})
	case entities.DirectionIncoming:
		builder = builder.Where(sq.Eq{"related_actor_id": actorID})
	default:
		builder = builder.Where(sq.Or{
			sq.Eq{"actor_id": actorID},
			sq.Eq{"related_actor_id": actorID},
		})
	}

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": *filter.Type})
	}
	if filter.Role != nil {
		builder = builder.Where(sq.Eq{"role": *filter.Role})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	builder = builder.OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected relationship repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected relationship repository list error: %w", err)
	}
	defer rows.Close()

	relationshipModels := make([]RelationshipDB, 0, 8)
	for rows.Next() {
		relationshipModel, err := scanRelationship(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected relationship repository list error: %w", err)
		}
		relationshipModels = append(relationshipModels, *relationshipModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected relationship repository list error: %w", err)
	}

	return ToDomainList(relationshipModels), nil
}

func (r *Repository) ExistsActiveBetween(ctx context.Context, actorID, relatedActorID int64, types []string) (bool, error) {
	builder := qb.
		Select("1").
		From("actor_relationships").
		Where(sq.Eq{"status": entities.RelationshipActive.String()}).
		Where(sq.Or{
			sq.And{sq.Eq{"actor_id": actorID}, sq.Eq{"related_actor_id": relatedActorID}},
			sq.And{sq.Eq{"actor_id": relatedActorID}, sq.Eq{"related_actor_id": actorID}},
		})

	if len(types) > 0 {
		builder = builder.Where(sq.Eq{"type": types})
	}

	query, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected relationship repository exists error: %w", err)
	}

	var exists bool
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("unexpected relationship repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) ApplyStatsDelta(ctx context.Context, actorID, relatedActorID int64, delta entities.RelationshipStatsDelta) (int64, error) {
	query := `
		UPDATE actor_relationships
		SET total_orders_completed = total_orders_completed + $3,
			total_amount_paid = total_amount_paid + $4,
			total_amount_pending = total_amount_pending + $5,
			updated_at = NOW()
		WHERE status = 'ACTIVE'
			AND ((actor_id = $1 AND related_actor_id = $2)
				OR (actor_id = $2 AND related_actor_id = $1))`

	result, err := r.querier.Exec(ctx, query,
		actorID, relatedActorID,
		delta.OrdersCompleted, delta.AmountPaid, delta.AmountPending,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected relationship repository stats delta error: %w", err)
	}

	return result.RowsAffected(), nil
}

// ReconcileStats rebuilds the driver leg counters from completed
// orders. Only drifted rows are touched.
func (r *Repository) ReconcileStats(ctx context.Context) (int64, error) {
	query := `
		WITH agg AS (
			SELECT o.owner_actor_id,
				o.primary_driver_actor_id AS driver_actor_id,
				COUNT(*) FILTER (WHERE o.status = 'COMPLETED') AS orders_completed,
				COALESCE(SUM(o.driver_payment) FILTER (WHERE o.status = 'COMPLETED'), 0) AS amount_pending,
				COALESCE(SUM(o.driver_payment) FILTER (WHERE o.status = 'COMPLETED' AND o.driver_payment_status = 'PAID'), 0) AS amount_paid
			FROM unified_orders o
			WHERE o.primary_driver_actor_id IS NOT NULL
			GROUP BY o.owner_actor_id, o.primary_driver_actor_id
		)
		UPDATE actor_relationships r
		SET total_orders_completed = agg.orders_completed,
			total_amount_paid = agg.amount_paid,
			total_amount_pending = agg.amount_pending,
			updated_at = NOW()
		FROM agg
		WHERE ((r.actor_id = agg.owner_actor_id AND r.related_actor_id = agg.driver_actor_id)
				OR (r.actor_id = agg.driver_actor_id AND r.related_actor_id = agg.owner_actor_id))
			AND (r.total_orders_completed <> agg.orders_completed
				OR r.total_amount_paid <> agg.amount_paid
				OR r.total_amount_pending <> agg.amount_pending)`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected relationship repository reconcile error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanRelationship(row pgx.Row) (*RelationshipDB, error) {
	var relationshipModel RelationshipDB
	err := row.Scan(
		&relationshipModel.ID,
		&relationshipModel.ActorID,
		&relationshipModel.RelatedActorID,
		&relationshipModel.Type,
		&relationshipModel.Role,
		&relationshipModel.Status,
		&relationshipModel.Message,
		&relationshipModel.Permissions,
		&relationshipModel.PaymentTerms,
		&relationshipModel.TotalOrdersCompleted,
		&relationshipModel.TotalAmountPaid,
		&relationshipModel.TotalAmountPending,
		&relationshipModel.Rating,
		&relationshipModel.CreatedAt,
		&relationshipModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &relationshipModel, nil
}
