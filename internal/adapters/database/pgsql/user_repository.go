package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/object_dto/internal/apperrors"
	"github.com/SscSPs/object_dto/internal/core/domain"
	portsrepo "github.com/SscSPs/object_dto/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `
    user_id AS "userID", username, name, password_hash AS "passwordHash",
    created_at AS "createdAt", created_by AS "createdBy",
    last_updated_at AS "lastUpdatedAt", last_updated_by AS "lastUpdatedBy",
    deleted_at AS "deletedAt"`

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &userRepository{pool: pool}
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func (r *userRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by)
        VALUES (@userID, @username, @name, @passwordHash, @createdAt, @createdBy, @lastUpdatedAt, @lastUpdatedBy);
    `
	_, err := r.pool.Exec(ctx, query, namedArgs(user))
	return mapError(err, "failed to save user %s", user.UserID)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err, "failed to query user %s", userID)
	}
	user, err := decodeRow[domain.User](rows)
	if err != nil {
		return nil, mapError(err, "failed to find user by ID %s", userID)
	}
	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1) AND deleted_at IS NULL;`
	rows, err := r.pool.Query(ctx, query, username)
	if err != nil {
		return nil, mapError(err, "failed to query username %q", username)
	}
	user, err := decodeRow[domain.User](rows)
	if err != nil {
		return nil, mapError(err, "failed to find user by username %q", username)
	}
	return user, nil
}

func (r *userRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE deleted_at IS NULL
        ORDER BY created_at, user_id
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to query users")
	}
	users, err := decodeRows[domain.User](rows)
	if err != nil {
		return nil, mapError(err, "failed to scan user rows")
	}
	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET name = @name, last_updated_at = @lastUpdatedAt, last_updated_by = @lastUpdatedBy
        WHERE user_id = @userID AND deleted_at IS NULL;
    `
	cmdTag, err := r.pool.Exec(ctx, query, namedArgs(user))
	if err != nil {
		return mapError(err, "failed to execute update user query")
	}
	if cmdTag.RowsAffected() == 0 {
		return mapError(apperrors.ErrNotFound, "user %s not found or already deleted", user.UserID)
	}
	return nil
}

func (r *userRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE users
        SET deleted_at = @deletedAt, last_updated_at = @deletedAt, last_updated_by = @deletedBy
        WHERE user_id = @userID AND deleted_at IS NULL;
    `
	cmdTag, err := r.pool.Exec(ctx, query, pgx.NamedArgs{
		"userID":    userID,
		"deletedAt": deletedAt,
		"deletedBy": deletedBy,
	})
	if err != nil {
		return mapError(err, "failed to mark user as deleted")
	}
	if cmdTag.RowsAffected() == 0 {
		return mapError(apperrors.ErrNotFound, "user %s not found or already deleted", userID)
	}
	return nil
}
