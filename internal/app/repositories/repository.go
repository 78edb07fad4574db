package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/academies/internal/app/models"
	"github.com/yigit/academies/internal/db"
	"github.com/yigit/academies/internal/pkg/dberrors"
	"github.com/yigit/academies/internal/pkg/logger"
)

// DeletePolicy decides what happens to rows referencing a deleted record.
type DeletePolicy string

const (
	// DeleteRestrict refuses to delete a record that is still referenced.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade deletes referencing rows first, recursively.
	DeleteCascade DeletePolicy = "cascade"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository handles database operations for one entity type
type Repository[T any] struct {
	db     *db.Database
	sb     squirrel.StatementBuilderType
	schema *models.Schema[T]
	policy DeletePolicy
}

// NewRepository creates a new Repository for schema
func NewRepository[T any](database *db.Database, schema *models.Schema[T], policy DeletePolicy) *Repository[T] {
	if policy == "" {
		policy = DeleteRestrict
	}
	return &Repository[T]{
		db:     database,
		sb:     database.StatementBuilder(),
		schema: schema,
		policy: policy,
	}
}

// Schema returns the schema the repository was built for
func (r *Repository[T]) Schema() *models.Schema[T] {
	return r.schema
}

// FindAll retrieves every record ordered by id
func (r *Repository[T]) FindAll(ctx context.Context) ([]*T, error) {
	query, args, err := r.sb.Select(r.schema.SelectColumns()...).
		From(r.schema.Table).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error building find all SQL")
		return nil, fmt.Errorf("failed to build find all %s query: %w", r.schema.Plural, err)
	}

	return r.queryRecords(ctx, query, args)
}

// FindByID retrieves a record by id
func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	query, args, err := r.sb.Select(r.schema.SelectColumns()...).
		From(r.schema.Table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error building find by id SQL")
		return nil, fmt.Errorf("failed to build get %s query: %w", r.schema.Name, err)
	}

	rec := new(T)
	err = r.db.SQL.QueryRowContext(ctx, query, args...).Scan(r.schema.ScanTargets(rec)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("table", r.schema.Table).Int64("id", id).Msg("Error scanning row")
		return nil, fmt.Errorf("error getting %s by ID: %w", r.schema.Name, err)
	}
	return rec, nil
}

// FindBy retrieves the records whose column equals value, ordered by id
func (r *Repository[T]) FindBy(ctx context.Context, column string, value any) ([]*T, error) {
	if _, ok := r.schema.Column(column); !ok && column != "id" {
		return nil, fmt.Errorf("unknown %s column %q", r.schema.Name, column)
	}

	query, args, err := r.sb.Select(r.schema.SelectColumns()...).
		From(r.schema.Table).
		Where(squirrel.Eq{column: value}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error building find by column SQL")
		return nil, fmt.Errorf("failed to build find %s by %s query: %w", r.schema.Plural, column, err)
	}

	return r.queryRecords(ctx, query, args)
}

// FindByNaturalKey returns the first record sharing rec's natural key.
// Text columns are compared case-insensitively. Returns ErrNotFound when
// there is no match or the schema declares no natural key.
func (r *Repository[T]) FindByNaturalKey(ctx context.Context, rec *T) (*T, error) {
	if len(r.schema.NaturalKey) == 0 {
		return nil, ErrNotFound
	}

	values := r.schema.ValueMap(rec)
	where := squirrel.And{}
	for _, name := range r.schema.NaturalKey {
		col, ok := r.schema.Column(name)
		if !ok {
			return nil, fmt.Errorf("natural key column %q not declared on %s", name, r.schema.Name)
		}
		if col.Text {
			where = append(where, squirrel.Expr(fmt.Sprintf("LOWER(%s) = LOWER(?)", col.Name), values[col.Name]))
		} else {
			where = append(where, squirrel.Eq{col.Name: values[col.Name]})
		}
	}

	query, args, err := r.sb.Select(r.schema.SelectColumns()...).
		From(r.schema.Table).
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error building natural key SQL")
		return nil, fmt.Errorf("failed to build %s natural key query: %w", r.schema.Name, err)
	}

	found := new(T)
	err = r.db.SQL.QueryRowContext(ctx, query, args...).Scan(r.schema.ScanTargets(found)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error probing natural key")
		return nil, fmt.Errorf("error checking %s natural key: %w", r.schema.Name, err)
	}
	return found, nil
}

// ExistsByID checks if a record with id exists
func (r *Repository[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, r.db.SQL, r.schema.Table, "id", id)
}

// ReferenceExists checks if table holds a row with id. Used for foreign key probes.
func (r *Repository[T]) ReferenceExists(ctx context.Context, table string, id int64) (bool, error) {
	return r.exists(ctx, r.db.SQL, table, "id", id)
}

// Create inserts rec and stores the assigned id on it
func (r *Repository[T]) Create(ctx context.Context, rec *T) (int64, error) {
	query, args, err := r.sb.Insert(r.schema.Table).
		Columns(r.schema.ColumnNames()...).
		Values(r.schema.Values(rec)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error building create SQL")
		return 0, fmt.Errorf("failed to build create %s query: %w", r.schema.Name, err)
	}

	var id int64
	if err := r.db.SQL.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if mapped := translateWriteError(err); mapped != nil {
			return 0, mapped
		}
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error executing create query")
		return 0, fmt.Errorf("error creating %s: %w", r.schema.Name, err)
	}

	*r.schema.ID(rec) = id
	return id, nil
}

// Update overwrites every mutable column of the record with id
func (r *Repository[T]) Update(ctx context.Context, id int64, rec *T) error {
	query, args, err := r.sb.Update(r.schema.Table).
		SetMap(r.schema.ValueMap(rec)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error building update SQL")
		return fmt.Errorf("failed to build update %s query: %w", r.schema.Name, err)
	}

	result, err := r.db.SQL.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := translateWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("table", r.schema.Table).Int64("id", id).Msg("Error executing update query")
		return fmt.Errorf("error updating %s: %w", r.schema.Name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID deletes the record with id applying the repository's delete policy.
// Returns ErrNotFound when no row was deleted.
func (r *Repository[T]) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if r.policy == DeleteRestrict {
			for _, dep := range models.DependentsOf(r.schema.Table) {
				referenced, err := r.exists(ctx, tx, dep.Table, dep.Column, id)
				if err != nil {
					return err
				}
				if referenced {
					return fmt.Errorf("%w: %s.%s", ErrHasDependents, dep.Table, dep.Column)
				}
			}
		}

		affected, err := r.deleteRow(ctx, tx, r.schema.Table, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// deleteRow deletes one row, first removing the rows referencing it when the
// policy cascades.
func (r *Repository[T]) deleteRow(ctx context.Context, tx *sql.Tx, table string, id int64) (int64, error) {
	if r.policy == DeleteCascade {
		for _, dep := range models.DependentsOf(table) {
			childIDs, err := r.selectIDs(ctx, tx, dep.Table, dep.Column, id)
			if err != nil {
				return 0, err
			}
			for _, childID := range childIDs {
				if _, err := r.deleteRow(ctx, tx, dep.Table, childID); err != nil {
					return 0, err
				}
			}
		}
	}

	query, args, err := r.sb.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query for %s: %w", table, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrHasDependents, table)
		}
		logger.Error().Err(err).Str("table", table).Int64("id", id).Msg("Error executing delete query")
		return 0, fmt.Errorf("error deleting from %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected > 0 {
		logger.Debug().Str("table", table).Int64("id", id).Msg("Row deleted")
	}
	return affected, nil
}

// selectIDs reads the ids of table rows whose column equals value
func (r *Repository[T]) selectIDs(ctx context.Context, q querier, table, column string, value int64) ([]int64, error) {
	query, args, err := r.sb.Select("id").
		From(table).
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build dependent ids query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s dependents: %w", table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning %s id: %w", table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository[T]) exists(ctx context.Context, q querier, table, column string, value int64) (bool, error) {
	query, args, err := r.sb.Select("1").
		From(table).
		Where(squirrel.Eq{column: value}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building exists SQL")
		return false, fmt.Errorf("failed to build existence query: %w", err)
	}

	var exists bool
	err = q.QueryRowContext(ctx, query, args...).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.Error().Err(err).Str("table", table).Str("column", column).Int64("value", value).Msg("Error checking existence")
		return false, fmt.Errorf("error checking %s existence: %w", table, err)
	}
	return exists, nil
}

func (r *Repository[T]) queryRecords(ctx context.Context, query string, args []any) ([]*T, error) {
	rows, err := r.db.SQL.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error executing select query")
		return nil, fmt.Errorf("error querying %s: %w", r.schema.Plural, err)
	}
	defer rows.Close()

	records := []*T{}
	for rows.Next() {
		rec := new(T)
		if err := rows.Scan(r.schema.ScanTargets(rec)...); err != nil {
			logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error scanning row")
			return nil, fmt.Errorf("error scanning %s row: %w", r.schema.Name, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", r.schema.Table).Msg("Error iterating rows")
		return nil, fmt.Errorf("error iterating %s rows: %w", r.schema.Name, err)
	}
	return records, nil
}

// translateWriteError maps constraint violations to repository errors, nil otherwise
func translateWriteError(err error) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		return ErrDuplicate
	case dberrors.IsForeignKeyViolation(err):
		return ErrInvalidReference
	}
	return nil
}
