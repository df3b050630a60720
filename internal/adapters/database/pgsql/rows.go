package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/object_dto/internal/apperrors"
	"github.com/SscSPs/object_dto/pkg/objectdto"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Queries alias their columns to the entity's json keys, so a row read with
// pgx.RowToMap can be projected onto the entity shape and decoded directly.

func decodeRow[T any](rows pgx.Rows) (*T, error) {
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}
	return decodeRecord[T](row)
}

func decodeRows[T any](rows pgx.Rows) ([]T, error) {
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(maps))
	for _, row := range maps {
		v, err := decodeRecord[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func decodeRecord[T any](row map[string]any) (*T, error) {
	var v T
	rec := objectdto.Project(row, objectdto.ShapeOf[T]())
	if err := objectdto.Decode(rec, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// namedArgs binds every json key of entity as @key.
func namedArgs(entity any) pgx.NamedArgs {
	return pgx.NamedArgs(objectdto.Flatten(entity))
}

// mapError translates driver errors into application errors.
func mapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		err = apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		err = fmt.Errorf("%s: %w", pgErr.ConstraintName, apperrors.ErrDuplicate)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
