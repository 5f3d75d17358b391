package credstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/tablekeeper/internal/domain/user"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCreateAndAuthenticate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, user.RoleCustomer, "alice", "s3cret"))

	assert.NoError(t, store.Authenticate(ctx, user.RoleCustomer, "alice", "s3cret"))
	assert.ErrorIs(t, store.Authenticate(ctx, user.RoleCustomer, "alice", "wrong"), ErrBadCredentials)
	assert.ErrorIs(t, store.Authenticate(ctx, user.RoleCustomer, "nobody", "s3cret"), ErrNotFound)
	// Accounts are role-scoped.
	assert.ErrorIs(t, store.Authenticate(ctx, user.RoleReceptionist, "alice", "s3cret"), ErrNotFound)
}

func TestDuplicateUsername(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, user.RoleCustomer, "alice", "one"))
	assert.ErrorIs(t, store.Create(ctx, user.RoleCustomer, "alice", "two"), ErrExists)
	// Same username under another role is a different account.
	assert.NoError(t, store.Create(ctx, user.RoleReceptionist, "alice", "three"))
}

func TestExists(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	ok, err := store.Exists(ctx, user.RoleCustomer, "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Create(ctx, user.RoleCustomer, "alice", "pw"))
	ok, err = store.Exists(ctx, user.RoleCustomer, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEnsureAdmin(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureAdmin(ctx, "admin", "admin123"))
	assert.NoError(t, store.Authenticate(ctx, user.RoleAdmin, "admin", "admin123"))

	// A second seed with a different password must not rotate credentials.
	require.NoError(t, store.EnsureAdmin(ctx, "admin", "other"))
	assert.NoError(t, store.Authenticate(ctx, user.RoleAdmin, "admin", "admin123"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}
