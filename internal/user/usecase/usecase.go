package usecase

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MisterMaks/tinyapp/internal/idgen"
	"github.com/MisterMaks/tinyapp/internal/user"
)

// Parameters of user ID generation.
const (
	CountRegenerationsForUserID uint = 5
	LengthUserID                     = idgen.DefaultLength
	MaxLengthUserID             uint = 20
)

// Errors of NewUserUsecase.
var (
	ErrInvalidBcryptCost  = errors.New("invalid bcrypt cost")
	ErrUnknownSessionMode = errors.New("unknown session mode")
	ErrEmptySecretKey     = errors.New("empty secret key")
	ErrEmptyCookieName    = errors.New("empty session cookie name")
	ErrInvalidSessionTTL  = errors.New("session TTL must be positive")
)

// UserRepoInterface contains the necessary functions for storage.
//
//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks
type UserRepoInterface interface {
	CreateUser(u *user.User) error
	GetUserByEmail(email string) (*user.User, error)
	GetUserByID(id string) (*user.User, error)
	GetCountUsers() (int, error) // get count users
}

// UserUsecase business logic struct.
type UserUsecase struct {
	UserRepo UserRepoInterface

	BcryptCost int

	SessionMode SessionMode
	SecretKey   string
	CookieName  string
	SessionTTL  time.Duration

	roller *idgen.Roller
}

// NewUserUsecase creates *UserUsecase.
func NewUserUsecase(
	userRepo UserRepoInterface,
	bcryptCost int,
	sessionMode SessionMode,
	sk string,
	cookieName string,
	sessionTTL time.Duration,
) (*UserUsecase, error) {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, ErrInvalidBcryptCost
	}
	switch sessionMode {
	case SessionModeSigned:
		if sk == "" {
			return nil, ErrEmptySecretKey
		}
	case SessionModePlain:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSessionMode, sessionMode)
	}
	if cookieName == "" {
		return nil, ErrEmptyCookieName
	}
	if sessionTTL <= 0 {
		return nil, ErrInvalidSessionTTL
	}

	roller, err := idgen.NewRoller(CountRegenerationsForUserID, LengthUserID, MaxLengthUserID)
	if err != nil {
		return nil, err
	}

	return &UserUsecase{
		UserRepo: userRepo,

		BcryptCost: bcryptCost,

		SessionMode: sessionMode,
		SecretKey:   sk,
		CookieName:  cookieName,
		SessionTTL:  sessionTTL,

		roller: roller,
	}, nil
}

func (uu *UserUsecase) hashPassword(password string) (string, error) {
	if len(password) > user.MaxPasswordLength {
		return "", user.ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uu.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Register creates a user with a generated ID.
func (uu *UserUsecase) Register(email, password string) (*user.User, error) {
	if email == "" || password == "" {
		return nil, user.ErrMissingField
	}
	if len(password) > user.MaxPasswordLength {
		return nil, user.ErrPasswordTooLong
	}
	if _, err := uu.UserRepo.GetUserByEmail(email); err == nil {
		return nil, user.ErrDuplicateEmail
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	hash, err := uu.hashPassword(password)
	if err != nil {
		return nil, err
	}

	var u *user.User
	_, err = uu.roller.Roll(func(id string) error {
		candidate := &user.User{ID: id, Email: email, Password: hash}
		if err := uu.UserRepo.CreateUser(candidate); err != nil {
			return err
		}
		u = candidate
		return nil
	}, user.ErrUserExists)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ImportUser creates a user with a fixed ID. The password is hashed like in Register.
func (uu *UserUsecase) ImportUser(id, email, password string) (*user.User, error) {
	if id == "" || email == "" || password == "" {
		return nil, user.ErrMissingField
	}
	hash, err := uu.hashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &user.User{ID: id, Email: email, Password: hash}
	if err = uu.UserRepo.CreateUser(u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByEmail gets user by email.
func (uu *UserUsecase) GetUserByEmail(email string) (*user.User, error) {
	return uu.UserRepo.GetUserByEmail(email)
}

// GetUserByID gets user by ID.
func (uu *UserUsecase) GetUserByID(id string) (*user.User, error) {
	return uu.UserRepo.GetUserByID(id)
}

// Verify checks password against the stored hash of u.
func (uu *UserUsecase) Verify(password string, u *user.User) bool {
	if u == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// Authenticate finds the user by email and verifies password.
func (uu *UserUsecase) Authenticate(email, password string) (*user.User, error) {
	u, err := uu.UserRepo.GetUserByEmail(email)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, user.ErrEmailNotFound
	}
	if err != nil {
		return nil, err
	}
	if !uu.Verify(password, u) {
		return nil, user.ErrBadPassword
	}
	return u, nil
}

// GetCountUsers get count users.
func (uu *UserUsecase) GetCountUsers() (int, error) {
	return uu.UserRepo.GetCountUsers()
}
