package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/object_dto/internal/apperrors"
	"github.com/SscSPs/object_dto/internal/core/domain"
	portsrepo "github.com/SscSPs/object_dto/internal/core/ports/repositories"
)

type userRepository struct {
	docs *documentStore[domain.User]
}

// NewUserRepository creates an in-memory user repository.
func NewUserRepository() portsrepo.UserRepositoryFacade {
	return &userRepository{docs: newDocumentStore[domain.User]()}
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func (r *userRepository) SaveUser(ctx context.Context, user domain.User) error {
	if r.docs.exists(user.UserID) {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrDuplicate)
	}
	if _, err := r.FindUserByUsername(ctx, user.Username); err == nil {
		return fmt.Errorf("username %q: %w", user.Username, apperrors.ErrDuplicate)
	}
	r.docs.put(user.UserID, user)
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := r.docs.get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	if user.IsDeleted() {
		return nil, fmt.Errorf("user %s is deleted: %w", userID, apperrors.ErrNotFound)
	}
	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := r.docs.scan(func(u domain.User) bool {
		return !u.IsDeleted() && strings.EqualFold(u.Username, username)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("username %q: %w", username, apperrors.ErrNotFound)
	}
	return &users[0], nil
}

func (r *userRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	users, err := r.docs.scan(func(u domain.User) bool { return !u.IsDeleted() })
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return page(users, limit, offset), nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user domain.User) error {
	err := r.docs.update(user.UserID, func(stored *domain.User) error {
		if stored.IsDeleted() {
			return apperrors.ErrNotFound
		}
		stored.Name = user.Name
		stored.LastUpdatedAt = user.LastUpdatedAt
		stored.LastUpdatedBy = user.LastUpdatedBy
		return nil
	})
	if err != nil {
		return fmt.Errorf("user not found or already deleted: %w", err)
	}
	return nil
}

func (r *userRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	err := r.docs.update(userID, func(stored *domain.User) error {
		if stored.IsDeleted() {
			return apperrors.ErrNotFound
		}
		stored.DeletedAt = &deletedAt
		stored.Touch(deletedBy, deletedAt)
		return nil
	})
	if err != nil {
		return fmt.Errorf("user not found or already deleted: %w", err)
	}
	return nil
}
