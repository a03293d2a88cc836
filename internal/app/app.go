package app

import "errors"

var (
	ErrURLNotFound      = errors.New("url not found")
	ErrURLExists        = errors.New("url ID already exists")
	ErrEmptyURL         = errors.New("empty url")
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrUnauthorized     = errors.New("user is not the owner of the url")
)

// URL is a short code bound to its destination and owner.
type URL struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	UserID string `json:"user_id"`
}

// NewURL creates *URL. The destination is stored as is, only emptiness is rejected.
func NewURL(id, rawURL, userID string) (*URL, error) {
	if rawURL == "" {
		return nil, ErrEmptyURL
	}
	return &URL{ID: id, URL: rawURL, UserID: userID}, nil
}
