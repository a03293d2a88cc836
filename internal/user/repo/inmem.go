package repo

import (
	"sync"

	"github.com/MisterMaks/tinyapp/internal/user"
)

// UserRepoInmem in-memory data storage for users.
type UserRepoInmem struct {
	users []*user.User
	mu    sync.RWMutex
}

// NewUserRepoInmem creates *UserRepoInmem.
func NewUserRepoInmem() *UserRepoInmem {
	return &UserRepoInmem{
		users: []*user.User{},
		mu:    sync.RWMutex{},
	}
}

func copyUser(u *user.User) *user.User {
	c := *u
	return &c
}

// CreateUser stores u. Both ID and email must be unused.
func (uri *UserRepoInmem) CreateUser(u *user.User) error {
	uri.mu.Lock()
	defer uri.mu.Unlock()

	for _, existed := range uri.users {
		if existed.ID == u.ID {
			return user.ErrUserExists
		}
		if existed.Email == u.Email {
			return user.ErrDuplicateEmail
		}
	}
	uri.users = append(uri.users, copyUser(u))
	return nil
}

// GetUserByEmail returns the first user with the given email.
func (uri *UserRepoInmem) GetUserByEmail(email string) (*user.User, error) {
	uri.mu.RLock()
	defer uri.mu.RUnlock()

	for _, u := range uri.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, user.ErrUserNotFound
}

// GetUserByID returns the user with the given ID.
func (uri *UserRepoInmem) GetUserByID(id string) (*user.User, error) {
	uri.mu.RLock()
	defer uri.mu.RUnlock()

	for _, u := range uri.users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return nil, user.ErrUserNotFound
}

// GetCountUsers get count users.
func (uri *UserRepoInmem) GetCountUsers() (int, error) {
	uri.mu.RLock()
	defer uri.mu.RUnlock()

	return len(uri.users), nil
}
