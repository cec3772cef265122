package actor

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/repository"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/actor"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const actorColumns = `id, type, status, name, COALESCE(code, ''), email, phone, address, city, country,
	tax_code, id_number, date_of_birth, gender, business_type, created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, actorModifyEntity entities.ActorModify) (*entities.Actor, error) {
	columns := FromDomainModify(&actorModifyEntity)

	query, args, err := qb.
		Insert("actors").
		SetMap(columns).
		Suffix("RETURNING " + actorColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected actor repository create error: %w", err)
	}

	actorModel, err := scanActor(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, actor.ErrConflict
		}
		return nil, fmt.Errorf("unexpected actor repository create error: %w", err)
	}

	return ToDomain(actorModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Actor, error) {
	query := `SELECT ` + actorColumns + `
		FROM actors
		WHERE id = $1`

	actorModel, err := scanActor(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, actor.ErrActorNotFound
		}

		return nil, fmt.Errorf("unexpected actor repository getbyid error: %w", err)
	}

	return ToDomain(actorModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.ActorFilter) ([]entities.Actor, error) {
	builder := qb.
		Select(actorColumns).
		From("actors").
		Where(sq.NotEq{"status": entities.ActorDeleted.String()})

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": filter.Type.String()})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"code": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"phone": pattern},
		})
	}

	builder = builder.
		OrderBy("id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected actor repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected actor repository list error: %w", err)
	}
	defer rows.Close()

	actorModels := make([]ActorDB, 0, 8)
	for rows.Next() {
		actorModel, err := scanActor(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected actor repository list error: %w", err)
		}
		actorModels = append(actorModels, *actorModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected actor repository list error: %w", err)
	}

	return ToDomainList(actorModels), nil
}

func (r *Repository) Update(ctx context.Context, actorModifyEntity entities.ActorModify) (*entities.Actor, error) {
	columns := FromDomainModify(&actorModifyEntity)

	builder := qb.
		Update("actors").
		SetMap(columns).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": actorModifyEntity.ID}).
		Where(sq.NotEq{"status": entities.ActorDeleted.String()}).
		Suffix("RETURNING " + actorColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected actor repository update error: %w", err)
	}

	actorModel, err := scanActor(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, actor.ErrActorNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, actor.ErrConflict
		}

		return nil, fmt.Errorf("unexpected actor repository update error: %w", err)
	}

	return ToDomain(actorModel), nil
}

func scanActor(row pgx.Row) (*ActorDB, error) {
	var actorModel ActorDB
	err := row.Scan(
		&actorModel.ID,
		&actorModel.Type,
		&actorModel.Status,
		&actorModel.Name,
		&actorModel.Code,
		&actorModel.Email,
		&actorModel.Phone,
		&actorModel.Address,
		&actorModel.City,
		&actorModel.Country,
		&actorModel.TaxCode,
		&actorModel.IDNumber,
		&actorModel.DateOfBirth,
		&actorModel.Gender,
		&actorModel.BusinessType,
		&actorModel.CreatedAt,
		&actorModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &actorModel, nil
}
