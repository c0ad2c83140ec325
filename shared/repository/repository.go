package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/logger"

	"github.com/jmoiron/sqlx"
)

// ErrMissingFilter guards writes that would otherwise touch every row.
var ErrMissingFilter = errors.New("refusing to run without a filter")

// Repository is the table gateway domain repositories embed. Columns are read
// from the db tags of T, including embedded structs such as model.Metadata.
// Get returns the zero T when nothing matches.
type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	table   string
	entity  string
	primary string
	columns []string
}

func NewRepository[T any](entity, table, primary string, db *postgres.Connection, ot otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:      db,
		otel:    ot,
		table:   table,
		entity:  entity,
		primary: primary,
		columns: dbColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) span(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		constant.OtelRepositoryScopeName+"."+repo.entity+"."+op)
}

// prepare binds a named statement on the read or write pool and records the
// query on the span.
func (repo *Repository[T]) prepare(ctx context.Context, pool *sqlx.DB, scope otel.Scope, query string) (*sqlx.NamedStmt, error) {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := pool.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare %s statement: %w", repo.entity, err)
	}

	return stmt, nil
}

func (repo *Repository[T]) Insert(ctx context.Context, row T) (err error) {
	ctx, scope := repo.span(ctx, "Insert")
	defer scope.End()
	defer scope.TraceIfError(&err)

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.NamedExecContext(ctx, query, row); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert %s: %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (exist bool, err error) {
	ctx, scope := repo.span(ctx, "Exist")
	defer scope.End()
	defer scope.TraceIfError(&err)

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, ErrMissingFilter
	}

	stmt, err := repo.prepare(ctx, repo.db.Read, scope, fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where))
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check %s existence: %w", repo.entity, err)
	}

	return exist, nil
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (row T, err error) {
	ctx, scope := repo.span(ctx, "Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	where, args := repo.BuildWhereClause(ctx, filter)

	stmt, err := repo.prepare(ctx, repo.db.Read, scope, fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", repo.selectList(columns), repo.table, where))
	if err != nil {
		return row, err
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &row, args)
	if errors.Is(err, sql.ErrNoRows) {
		return row, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return row, fmt.Errorf("failed to get %s: %w", repo.entity, err)
	}

	return row, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) (rows []T, err error) {
	ctx, scope := repo.span(ctx, "GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	where, args := repo.BuildWhereClause(ctx, filter)

	var query strings.Builder

	fmt.Fprintf(&query, "SELECT %s FROM %s%s", repo.selectList(columns), repo.table, where)

	if params.SortBy != "" && params.SortDir != "" {
		fmt.Fprintf(&query, " ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		query.WriteString(" LIMIT :limit OFFSET :offset")

		args["limit"] = params.Limit
		args["offset"] = params.Offset()
	}

	stmt, err := repo.prepare(ctx, repo.db.Read, scope, query.String())
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list %s: %w", repo.entity, err)
	}

	return rows, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (count int, err error) {
	ctx, scope := repo.span(ctx, "Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	where, args := repo.BuildWhereClause(ctx, filter)

	stmt, err := repo.prepare(ctx, repo.db.Read, scope, fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.primary, repo.table, where))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count %s: %w", repo.entity, err)
	}

	return count, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (err error) {
	ctx, scope := repo.span(ctx, "Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return ErrMissingFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete %s: %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	_, err := repo.UpdateCount(ctx, fields, filter)

	return err
}

// UpdateCount behaves like Update and reports how many rows matched the filter.
// Callers pairing it with a status filter get a compare-and-set.
func (repo *Repository[T]) UpdateCount(ctx context.Context, fields map[string]any, filter dto.FilterGroup) (affected int64, err error) {
	ctx, scope := repo.span(ctx, "Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return 0, ErrMissingFilter
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, setList(fields), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, fields)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to update %s: %w", repo.entity, err)
	}

	if affected, err = result.RowsAffected(); err != nil {
		return 0, fmt.Errorf("failed to read affected %s rows: %w", repo.entity, err)
	}

	return affected, nil
}

// SelectQuery runs a hand-written named query against the read pool.
func (repo *Repository[T]) SelectQuery(ctx context.Context, dest any, query string, args map[string]any) (err error) {
	ctx, scope := repo.span(ctx, "SelectQuery")
	defer scope.End()
	defer scope.TraceIfError(&err)

	stmt, err := repo.prepare(ctx, repo.db.Read, scope, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, dest, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to query %s: %w", repo.entity, err)
	}

	return nil
}

// WriteQuery runs a hand-written named statement on the write pool and scans
// at most one returned row into dest. found is false when nothing was returned.
func (repo *Repository[T]) WriteQuery(ctx context.Context, dest any, query string, args map[string]any) (found bool, err error) {
	ctx, scope := repo.span(ctx, "WriteQuery")
	defer scope.End()
	defer scope.TraceIfError(&err)

	stmt, err := repo.prepare(ctx, repo.db.Write, scope, query)
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, dest, args)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to write %s: %w", repo.entity, err)
	}

	return true, nil
}

// Columns lists the columns of T qualified with the table name.
func (repo *Repository[T]) Columns(_ context.Context) string {
	return repo.selectList(nil)
}

// BuildWhereClause renders filter with a leading " WHERE ", or nothing when the
// filter is empty.
func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.columns))
	for i, col := range repo.columns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
}

// selectList qualifies the requested columns, or all of them when none are
// given. Unknown names are dropped.
func (repo *Repository[T]) selectList(only []string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col) {
			continue
		}

		selected = append(selected, repo.table+"."+col)
	}

	return strings.Join(selected, ", ")
}

// setList renders the SET clause in key order so equal updates produce equal
// statements.
func setList(fields map[string]any) string {
	assignments := make([]string, 0, len(fields))
	for _, col := range slices.Sorted(maps.Keys(fields)) {
		assignments = append(assignments, col+" = :"+col)
	}

	return strings.Join(assignments, ", ")
}

func dbColumns(t reflect.Type) []string {
	var columns []string

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}
