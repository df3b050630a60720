package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/object_dto/internal/apperrors"
	"github.com/SscSPs/object_dto/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(id, username string) domain.User {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return domain.User{
		UserID:       id,
		Username:     username,
		Name:         "Name " + id,
		PasswordHash: "hash",
		AuditFields:  domain.NewAuditFields(id, now),
	}
}

func TestUserRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	user := newUser("u1", "ann")

	require.NoError(t, repo.SaveUser(ctx, user))

	got, err := repo.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user, *got)

	byName, err := repo.FindUserByUsername(ctx, "ANN")
	require.NoError(t, err)
	assert.Equal(t, "u1", byName.UserID)
}

func TestUserRepository_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.SaveUser(ctx, newUser("u1", "ann")))

	got, err := repo.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	got.Name = "changed"

	again, err := repo.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Name u1", again.Name)
}

func TestUserRepository_Duplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.SaveUser(ctx, newUser("u1", "ann")))

	assert.ErrorIs(t, repo.SaveUser(ctx, newUser("u1", "other")), apperrors.ErrDuplicate)
	assert.ErrorIs(t, repo.SaveUser(ctx, newUser("u2", "ann")), apperrors.ErrDuplicate)
}

func TestUserRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.SaveUser(ctx, newUser("u1", "ann")))
	require.NoError(t, repo.SaveUser(ctx, newUser("u2", "bob")))

	require.NoError(t, repo.MarkUserDeleted(ctx, "u1", time.Now(), "admin"))

	_, err := repo.FindUserByID(ctx, "u1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.FindUserByUsername(ctx, "ann")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	users, err := repo.FindUsers(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u2", users[0].UserID)

	assert.ErrorIs(t, repo.MarkUserDeleted(ctx, "u1", time.Now(), "admin"), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateUser(ctx, newUser("u1", "ann")), apperrors.ErrNotFound)
}

func TestUserRepository_UpdateUser(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.SaveUser(ctx, newUser("u1", "ann")))

	changed := newUser("u1", "ignored")
	changed.Name = "Ann Lee"
	changed.Touch("u9", changed.CreatedAt.Add(time.Hour))
	require.NoError(t, repo.UpdateUser(ctx, changed))

	got, err := repo.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", got.Name)
	assert.Equal(t, "ann", got.Username)
	assert.Equal(t, "u9", got.LastUpdatedBy)
}

func TestUserRepository_FindUsersPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	for _, id := range []string{"u1", "u2", "u3"} {
		require.NoError(t, repo.SaveUser(ctx, newUser(id, "user-"+id)))
	}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []string
	}{
		{name: "first page", limit: 2, offset: 0, want: []string{"u1", "u2"}},
		{name: "second page", limit: 2, offset: 2, want: []string{"u3"}},
		{name: "past the end", limit: 2, offset: 5, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.FindUsers(ctx, tt.limit, tt.offset)
			require.NoError(t, err)
			ids := []string{}
			for _, u := range users {
				ids = append(ids, u.UserID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	account := domain.Account{
		AccountID:    "a1",
		OwnerID:      "u1",
		Name:         "Wallet",
		AccountType:  domain.Asset,
		CurrencyCode: "INR",
		IsActive:     true,
		Balance:      decimal.RequireFromString("10.25"),
		AuditFields:  domain.NewAuditFields("u1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, repo.SaveAccount(ctx, account))
	require.NoError(t, repo.SaveAccount(ctx, domain.Account{AccountID: "a2", OwnerID: "u2"}))
	assert.ErrorIs(t, repo.SaveAccount(ctx, account), apperrors.ErrDuplicate)

	got, err := repo.FindAccountByID(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(account.Balance))
	assert.Equal(t, account.AuditFields, got.AuditFields)
	assert.Equal(t, domain.Asset, got.AccountType)

	_, err = repo.FindAccountByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	owned, err := repo.ListAccountsByOwner(ctx, "u1", 20, 0)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "a1", owned[0].AccountID)
}
