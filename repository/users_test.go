package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/store"
)

func TestUsersCreateAndAuthenticate(t *testing.T) {
	users := NewUsers(store.NewMemStore())

	created, err := users.Create("Ann", "ann@x.com", "pw")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ann", created.Name)
	assert.False(t, created.IsAdmin)
	assert.Empty(t, created.Wishlist)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := users.Authenticate("ann@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = users.Authenticate("ann@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUsersCreateRequiresAllFields(t *testing.T) {
	users := NewUsers(store.NewMemStore())
	for _, tc := range []struct{ name, email, password string }{
		{"", "a@x.com", "pw"},
		{"Ann", "", "pw"},
		{"Ann", "a@x.com", ""},
	} {
		_, err := users.Create(tc.name, tc.email, tc.password)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	}
}

func TestUsersDuplicateEmail(t *testing.T) {
	users := NewUsers(store.NewMemStore())
	_, err := users.Create("Ann", "ann@x.com", "pw")
	require.NoError(t, err)

	_, err = users.Create("Other", "ann@x.com", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	all, err := users.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUsersUpdateProfile(t *testing.T) {
	users := NewUsers(store.NewMemStore())
	created, err := users.Create("Ann", "ann@x.com", "pw")
	require.NoError(t, err)

	name := "Anna"
	empty := ""
	updated, err := users.UpdateProfile(created.ID, ProfilePatch{Name: &name, Email: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)
	// a supplied empty email means "not supplied"
	assert.Equal(t, "ann@x.com", updated.Email)

	avatar := "/uploads/me.png"
	updated, err = users.UpdateProfile(created.ID, ProfilePatch{Avatar: &avatar})
	require.NoError(t, err)
	assert.Equal(t, avatar, updated.Avatar)

	// avatar, unlike the other fields, can be cleared
	updated, err = users.UpdateProfile(created.ID, ProfilePatch{Avatar: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Avatar)

	_, err = users.UpdateProfile(999, ProfilePatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersToggleWishlistInvolution(t *testing.T) {
	users := NewUsers(store.NewMemStore())
	created, err := users.Create("Ann", "ann@x.com", "pw")
	require.NoError(t, err)

	list, err := users.ToggleWishlist(created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, list)

	list, err = users.ToggleWishlist(created.ID, 42)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = users.ToggleWishlist(123, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersListIsMasked(t *testing.T) {
	users := NewUsers(store.NewMemStore())
	created, err := users.Create("Ann", "ann@x.com", "pw")
	require.NoError(t, err)

	all, err := users.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "Ann", all[0].Name)
	assert.Equal(t, "ann@x.com", all[0].Email)
	assert.Equal(t, created.CreatedAt, all[0].CreatedAt)
}

func TestUsersDeleteIdempotent(t *testing.T) {
	users := NewUsers(store.NewMemStore())
	created, err := users.Create("Ann", "ann@x.com", "pw")
	require.NoError(t, err)

	require.NoError(t, users.Delete(created.ID))
	// deleting an absent id is still a success and changes nothing
	require.NoError(t, users.Delete(created.ID))

	all, err := users.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUsersConcurrentCreateUniqueIDs(t *testing.T) {
	users := NewUsers(store.NewMemStore())

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := users.Create(fmt.Sprintf("u%d", i), fmt.Sprintf("u%d@x.com", i), "pw")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := users.List()
	require.NoError(t, err)
	require.Len(t, all, n)
	seen := make(map[int64]bool, n)
	for _, u := range all {
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}

func TestUsersEnsureInitialized(t *testing.T) {
	mem := store.NewMemStore()
	users := NewUsers(mem)

	require.NoError(t, users.EnsureInitialized())
	assert.True(t, mem.Exists("users"))

	var docs []any
	require.NoError(t, mem.Load("users", &docs))
	assert.Empty(t, docs)
}

func TestUsersEnsureInitializedKeepsExistingAccounts(t *testing.T) {
	users := NewUsers(store.NewMemStore())
	_, err := users.Create("Ann", "ann@x.com", "pw")
	require.NoError(t, err)

	require.NoError(t, users.EnsureInitialized())
	list, err := users.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
