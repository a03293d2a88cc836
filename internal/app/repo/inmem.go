package repo

import (
	"sync"

	"github.com/thoas/go-funk"

	"github.com/MisterMaks/tinyapp/internal/app"
)

// AppRepoInmem keeps URLs in insertion order behind a single lock.
type AppRepoInmem struct {
	urls []*app.URL
	mu   sync.RWMutex
}

func NewAppRepoInmem() *AppRepoInmem {
	return &AppRepoInmem{
		urls: []*app.URL{},
		mu:   sync.RWMutex{},
	}
}

func copyURL(url *app.URL) *app.URL {
	c := *url
	return &c
}

func (ari *AppRepoInmem) find(id string) (int, *app.URL) {
	for i, url := range ari.urls {
		if id == url.ID {
			return i, url
		}
	}
	return -1, nil
}

// CreateURL stores url. The ID must not be taken yet.
func (ari *AppRepoInmem) CreateURL(url *app.URL) error {
	ari.mu.Lock()
	defer ari.mu.Unlock()
	if _, existed := ari.find(url.ID); existed != nil {
		return app.ErrURLExists
	}
	ari.urls = append(ari.urls, copyURL(url))
	return nil
}

func (ari *AppRepoInmem) GetURL(id string) (*app.URL, error) {
	ari.mu.RLock()
	defer ari.mu.RUnlock()
	_, url := ari.find(id)
	if url == nil {
		return nil, app.ErrURLNotFound
	}
	return copyURL(url), nil
}

func (ari *AppRepoInmem) GetURLs() ([]*app.URL, error) {
	ari.mu.RLock()
	defer ari.mu.RUnlock()
	urls := make([]*app.URL, 0, len(ari.urls))
	for _, url := range ari.urls {
		urls = append(urls, copyURL(url))
	}
	return urls, nil
}

func (ari *AppRepoInmem) GetUserURLs(userID string) ([]*app.URL, error) {
	ari.mu.RLock()
	defer ari.mu.RUnlock()
	owned := funk.Filter(ari.urls, func(url *app.URL) bool {
		return url.UserID == userID
	}).([]*app.URL)
	urls := make([]*app.URL, 0, len(owned))
	for _, url := range owned {
		urls = append(urls, copyURL(url))
	}
	return urls, nil
}

// UpdateURL replaces the destination of the URL with the given ID.
// check runs under the same lock before anything changes and gets nil for a missing URL.
func (ari *AppRepoInmem) UpdateURL(id, rawURL string, check func(*app.URL) error) error {
	ari.mu.Lock()
	defer ari.mu.Unlock()
	_, url := ari.find(id)
	if err := check(url); err != nil {
		return err
	}
	if url == nil {
		return app.ErrURLNotFound
	}
	url.URL = rawURL
	return nil
}

// DeleteURL removes the URL with the given ID. check works as in UpdateURL.
func (ari *AppRepoInmem) DeleteURL(id string, check func(*app.URL) error) error {
	ari.mu.Lock()
	defer ari.mu.Unlock()
	i, url := ari.find(id)
	if err := check(url); err != nil {
		return err
	}
	if url == nil {
		return app.ErrURLNotFound
	}
	ari.urls = append(ari.urls[:i], ari.urls[i+1:]...)
	return nil
}
