package repo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MisterMaks/tinyapp/internal/user"
)

func TestNewUserRepoInmem(t *testing.T) {
	assert.Equal(t, &UserRepoInmem{users: []*user.User{}, mu: sync.RWMutex{}}, NewUserRepoInmem())
}

func TestUserRepoInmem_CreateUser(t *testing.T) {
	existed := &user.User{ID: "userRandomID", Email: "user@example.com", Password: "hash"}

	tests := []struct {
		name      string
		u         *user.User
		wantErr   error
		wantCount int
	}{
		{
			name:      "new user",
			u:         &user.User{ID: "user2RandomID", Email: "user2@example.com", Password: "hash"},
			wantErr:   nil,
			wantCount: 2,
		},
		{
			name:      "duplicate email",
			u:         &user.User{ID: "user2RandomID", Email: "user@example.com", Password: "other"},
			wantErr:   user.ErrDuplicateEmail,
			wantCount: 1,
		},
		{
			name:      "duplicate ID",
			u:         &user.User{ID: "userRandomID", Email: "user2@example.com", Password: "hash"},
			wantErr:   user.ErrUserExists,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri := &UserRepoInmem{users: []*user.User{existed}}
			err := uri.CreateUser(tt.u)
			assert.ErrorIs(t, err, tt.wantErr)

			count, err := uri.GetCountUsers()
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestUserRepoInmem_GetUserByEmail(t *testing.T) {
	uri := NewUserRepoInmem()
	require.NoError(t, uri.CreateUser(&user.User{ID: "a", Email: "a@example.com", Password: "hash"}))

	u, err := uri.GetUserByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, &user.User{ID: "a", Email: "a@example.com", Password: "hash"}, u)

	_, err = uri.GetUserByEmail("A@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepoInmem_GetUserByID(t *testing.T) {
	uri := NewUserRepoInmem()
	require.NoError(t, uri.CreateUser(&user.User{ID: "a", Email: "a@example.com", Password: "hash"}))

	u, err := uri.GetUserByID("a")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)

	u.Email = "changed@example.com"
	stored, err := uri.GetUserByID("a")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", stored.Email)

	_, err = uri.GetUserByID("b")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepoInmem_ConcurrentRegistration(t *testing.T) {
	uri := NewUserRepoInmem()

	const workers = 50
	errs := make(chan error, workers)
	wg := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- uri.CreateUser(&user.User{ID: string(rune('a' + i)), Email: "same@example.com"})
		}(i)
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, user.ErrDuplicateEmail)
	}
	assert.Equal(t, 1, created)
}
