package usecase

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/MisterMaks/tinyapp/internal/app"
	"github.com/MisterMaks/tinyapp/internal/idgen"
)

// ShortURLPrefix is the path under which short codes are resolved.
const ShortURLPrefix = "u/"

var (
	ErrInvalidBaseURL      = errors.New("invalid Base URL")
	ErrMaxLengthIDExceeded = idgen.ErrMaxLengthExceeded
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks
type AppRepoInterface interface {
	CreateURL(url *app.URL) error
	GetURL(id string) (*app.URL, error)
	GetURLs() ([]*app.URL, error)
	GetUserURLs(userID string) ([]*app.URL, error)
	UpdateURL(id, rawURL string, check func(*app.URL) error) error
	DeleteURL(id string, check func(*app.URL) error) error
}

type AppUsecase struct {
	AppRepo AppRepoInterface
	BaseURL string

	roller *idgen.Roller
}

func NewAppUsecase(appRepo AppRepoInterface, baseURL string, countRegenerationsForLengthID, lengthID, maxLengthID uint) (*AppUsecase, error) {
	roller, err := idgen.NewRoller(countRegenerationsForLengthID, lengthID, maxLengthID)
	if err != nil {
		return nil, err
	}
	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, err
	}
	if u.Path == "" {
		return nil, ErrInvalidBaseURL
	}
	return &AppUsecase{
		AppRepo: appRepo,
		BaseURL: baseURL,
		roller:  roller,
	}, nil
}

// LengthID returns the length of codes generated now.
func (au *AppUsecase) LengthID() uint {
	return au.roller.Length()
}

// CreateURL stores rawURL under a fresh code owned by userID.
func (au *AppUsecase) CreateURL(rawURL, userID string) (*app.URL, error) {
	if userID == "" {
		return nil, app.ErrNotAuthenticated
	}
	if rawURL == "" {
		return nil, app.ErrEmptyURL
	}

	var url *app.URL
	_, err := au.roller.Roll(func(id string) error {
		candidate, err := app.NewURL(id, rawURL, userID)
		if err != nil {
			return err
		}
		if err = au.AppRepo.CreateURL(candidate); err != nil {
			return err
		}
		url = candidate
		return nil
	}, app.ErrURLExists)
	if err != nil {
		return nil, fmt.Errorf("create url: %w", err)
	}
	return url, nil
}

// ImportURL stores a URL with a fixed code.
func (au *AppUsecase) ImportURL(id, rawURL, userID string) (*app.URL, error) {
	url, err := app.NewURL(id, rawURL, userID)
	if err != nil {
		return nil, err
	}
	if err = au.AppRepo.CreateURL(url); err != nil {
		return nil, err
	}
	return url, nil
}

func (au *AppUsecase) GetURL(id string) (*app.URL, error) {
	return au.AppRepo.GetURL(id)
}

func (au *AppUsecase) GetURLs() ([]*app.URL, error) {
	return au.AppRepo.GetURLs()
}

func (au *AppUsecase) GetUserURLs(userID string) ([]*app.URL, error) {
	if userID == "" {
		return nil, app.ErrNotAuthenticated
	}
	return au.AppRepo.GetUserURLs(userID)
}

// GetUserURL returns the URL if userID may see it.
func (au *AppUsecase) GetUserURL(id, userID string) (*app.URL, error) {
	if userID == "" {
		return nil, app.ErrNotAuthenticated
	}
	url, err := au.AppRepo.GetURL(id)
	if err != nil && !errors.Is(err, app.ErrURLNotFound) {
		return nil, err
	}
	if err = app.CheckAccess(userID, url); err != nil {
		return nil, err
	}
	return url, nil
}

// UpdateUserURL changes the destination. Access is checked before the new destination.
func (au *AppUsecase) UpdateUserURL(id, rawURL, userID string) error {
	return au.AppRepo.UpdateURL(id, rawURL, func(url *app.URL) error {
		if err := app.CheckAccess(userID, url); err != nil {
			return err
		}
		if rawURL == "" {
			return app.ErrEmptyURL
		}
		return nil
	})
}

func (au *AppUsecase) DeleteUserURL(id, userID string) error {
	return au.AppRepo.DeleteURL(id, func(url *app.URL) error {
		return app.CheckAccess(userID, url)
	})
}

// Resolve returns the destination of a code. No session needed.
func (au *AppUsecase) Resolve(id string) (string, error) {
	url, err := au.AppRepo.GetURL(id)
	if err != nil {
		return "", err
	}
	return url.URL, nil
}

func (au *AppUsecase) GenerateShortURL(id string) string {
	return au.BaseURL + ShortURLPrefix + id
}
