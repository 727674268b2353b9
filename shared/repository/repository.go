package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"

	"link/infras/otel"
	"link/infras/postgres"
	"link/internal/scope"
	"link/shared/constant"
	"link/shared/dto"
	"link/shared/failure"
	"link/shared/logger"
	"link/shared/statement"
)

// Repository runs statements for one logical table. Inserts go to the base
// table; every other statement goes through the view registered for the
// request on ctx.
type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	table   scope.Table
	entitas string
	columns []string
}

func NewRepository[T any](table scope.Table, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:      dbConnection,
		otel:    otl,
		table:   table,
		entitas: table.Name(),
		columns: getColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method)
}

func (repo *Repository[T]) view(ctx context.Context) (string, error) {
	return scope.View(ctx, repo.table)
}

// Insert writes one row to the base table and returns its generated key.
func (repo *Repository[T]) Insert(ctx context.Context, columns []string, values []any) (id int64, err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	stmt, err := statement.Insert(repo.table.Physical(), repo.table.PrimaryKey(), columns, values)
	if err != nil {
		return 0, err
	}

	return repo.returning(ctx, span, stmt)
}

// InsertDefaults writes a row made only of column defaults.
func (repo *Repository[T]) InsertDefaults(ctx context.Context) (id int64, err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("InsertDefaults"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	stmt, err := statement.InsertDefaults(repo.table.Physical(), repo.table.PrimaryKey())
	if err != nil {
		return 0, err
	}

	return repo.returning(ctx, span, stmt)
}

func (repo *Repository[T]) returning(ctx context.Context, span otel.Scope, stmt statement.Statement) (int64, error) {
	span.SetAttribute(constant.OtelQueryAttributeKey, stmt.Query)

	var id int64

	if err := repo.db.Write.QueryRowxContext(ctx, stmt.Query, stmt.Args...).Scan(&id); err != nil {
		logger.ErrorWithStack(err)

		return 0, failure.Database(err)
	}

	return id, nil
}

// Get returns the single row matching filter, NotFound when there is none.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (model T, err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	view, err := repo.view(ctx)
	if err != nil {
		return model, err
	}

	where, args := repo.BuildWhereClause(filter)
	query, bound, err := repo.bind(fmt.Sprintf("SELECT %s FROM %s%s", repo.selectList(), view, where), args)
	if err != nil {
		return model, err
	}

	span.SetAttribute(constant.OtelQueryAttributeKey, query)
	span.SetAttribute(constant.OtelViewAttributeKey, view)

	err = repo.db.Write.GetContext(ctx, &model, query, bound...)
	if errors.Is(err, sql.ErrNoRows) {
		return model, failure.NotFound(repo.entitas + " not found")
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model, failure.Database(err)
	}

	return model, nil
}

// GetAll returns one page of the rows matching filter.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) (models []T, err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	view, err := repo.view(ctx)
	if err != nil {
		return nil, err
	}

	where, args := repo.BuildWhereClause(filter)

	var ordering, pagination string

	if params.SortBy != "" {
		if !repo.hasColumn(params.SortBy) {
			return nil, failure.BadRequestFromString("cannot sort by " + params.SortBy)
		}

		dir := params.SortDir
		if dir == "" {
			dir = dto.SortDirAsc
		}

		ordering = fmt.Sprintf(" ORDER BY %s %s", params.SortBy, dir)
	}

	page := params.Page
	limit := params.Limit

	if page > 0 && limit > 0 {
		args["limit"] = limit
		args["offset"] = (page - 1) * limit

		pagination = " LIMIT :limit OFFSET :offset"
	} else if limit > 0 {
		args["limit"] = limit

		pagination = " LIMIT :limit"
	}

	query, bound, err := repo.bind(fmt.Sprintf("SELECT %s FROM %s%s%s%s", repo.selectList(), view, where, ordering, pagination), args)
	if err != nil {
		return nil, err
	}

	span.SetAttribute(constant.OtelQueryAttributeKey, query)
	span.SetAttribute(constant.OtelViewAttributeKey, view)

	models = []T{}

	if err = repo.db.Write.SelectContext(ctx, &models, query, bound...); err != nil {
		logger.ErrorWithStack(err)

		return nil, failure.Database(err)
	}

	return models, nil
}

// Find returns every row matching filter, NotFound when there is none.
func (repo *Repository[T]) Find(ctx context.Context, filter dto.FilterGroup) ([]T, error) {
	models, err := repo.GetAll(ctx, dto.QueryParams{}, filter)
	if err != nil {
		return nil, err
	}

	if len(models) == 0 {
		return nil, failure.NotFound(repo.entitas + " not found")
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (count int, err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	view, err := repo.view(ctx)
	if err != nil {
		return 0, err
	}

	where, args := repo.BuildWhereClause(filter)
	query, bound, err := repo.bind(fmt.Sprintf("SELECT COUNT(*) FROM %s%s", view, where), args)
	if err != nil {
		return 0, err
	}

	span.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Write.GetContext(ctx, &count, query, bound...); err != nil {
		logger.ErrorWithStack(err)

		return 0, failure.Database(err)
	}

	return count, nil
}

// Update sets the non-Absent candidates on the row with the given key.
func (repo *Repository[T]) Update(ctx context.Context, id int64, names []string, values []any) (err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	view, err := repo.view(ctx)
	if err != nil {
		return err
	}

	stmt, err := statement.Update(view, repo.table.PrimaryKey(), id, names, values)
	if err != nil {
		return err
	}

	return repo.exec(ctx, span, stmt)
}

// UpdateComposite is Update for tables keyed by more than one column.
func (repo *Repository[T]) UpdateComposite(ctx context.Context, keys []statement.Key, names []string, values []any) (err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("UpdateComposite"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	view, err := repo.view(ctx)
	if err != nil {
		return err
	}

	stmt, err := statement.UpdateComposite(view, keys, names, values)
	if err != nil {
		return err
	}

	return repo.exec(ctx, span, stmt)
}

// IncrementWithin adds amount to column on the row with the given key as one
// conditional statement. It reports false when no row changed, either because
// the row is not visible or because ceiling would be crossed.
func (repo *Repository[T]) IncrementWithin(ctx context.Context, id int64, column, ceiling string, amount any) (changed bool, err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("IncrementWithin"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	view, err := repo.view(ctx)
	if err != nil {
		return false, err
	}

	stmt, err := statement.IncrementWithin(view, repo.table.PrimaryKey(), id, column, ceiling, amount)
	if err != nil {
		return false, err
	}

	span.SetAttribute(constant.OtelQueryAttributeKey, stmt.Query)

	result, err := repo.db.Write.ExecContext(ctx, stmt.Query, stmt.Args...)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, failure.Database(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, failure.Database(err)
	}

	return affected > 0, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	view, err := repo.view(ctx)
	if err != nil {
		return err
	}

	stmt, err := statement.Delete(view, repo.table.PrimaryKey(), id)
	if err != nil {
		return err
	}

	return repo.exec(ctx, span, stmt)
}

func (repo *Repository[T]) DeleteComposite(ctx context.Context, keys []statement.Key) (err error) {
	ctx, span := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("DeleteComposite"))
	defer span.End()
	defer func() { span.TraceIfError(err) }()

	view, err := repo.view(ctx)
	if err != nil {
		return err
	}

	stmt, err := statement.DeleteComposite(view, keys)
	if err != nil {
		return err
	}

	return repo.exec(ctx, span, stmt)
}

func (repo *Repository[T]) exec(ctx context.Context, span otel.Scope, stmt statement.Statement) error {
	span.SetAttribute(constant.OtelQueryAttributeKey, stmt.Query)

	if _, err := repo.db.Write.ExecContext(ctx, stmt.Query, stmt.Args...); err != nil {
		logger.ErrorWithStack(err)

		return failure.Database(err)
	}

	return nil
}

// BuildWhereClause renders filter with named parameters.
func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return " WHERE " + where, args
}

// bind turns named parameters into positional ones for the driver.
func (repo *Repository[T]) bind(query string, args map[string]any) (string, []any, error) {
	named, bound, err := sqlx.Named(query, args)
	if err != nil {
		return "", nil, failure.InternalError(fmt.Errorf("failed to bind query (%s): %w", repo.entitas, err))
	}

	return repo.db.Write.Rebind(named), bound, nil
}

func (repo *Repository[T]) selectList() string {
	if len(repo.columns) == 0 {
		return "*"
	}

	return strings.Join(repo.columns, ", ")
}

func (repo *Repository[T]) hasColumn(name string) bool {
	return slices.Contains(repo.columns, strings.ToLower(name))
}

// getColumns collects the db tags of T, descending into embedded structs.
func getColumns(reflectType reflect.Type) (columns []string) {
	if reflectType == nil || reflectType.Kind() != reflect.Struct {
		return nil
	}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, dbTag)
	}

	return columns
}
