// Package seed imports demo users and URLs from JSON-lines files at startup.
package seed

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MisterMaks/tinyapp/internal/app"
	"github.com/MisterMaks/tinyapp/internal/user"
)

var ErrUnknownOwner = errors.New("url owner does not exist")

// UserRecord is one line of the users file. Password is plaintext and gets hashed on import.
type UserRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// URLRecord is one line of the URLs file.
type URLRecord struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	UserID string `json:"user_id"`
}

type UserImporterInterface interface {
	ImportUser(id, email, password string) (*user.User, error)
	GetUserByID(id string) (*user.User, error)
}

type URLImporterInterface interface {
	ImportURL(id, rawURL, userID string) (*app.URL, error)
}

type consumer struct {
	filename string
	file     *os.File
	scanner  *bufio.Scanner
	line     int
}

func newConsumer(filename string) (*consumer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return &consumer{
		filename: filename,
		file:     file,
		scanner:  bufio.NewScanner(file),
	}, nil
}

func (c *consumer) close() error {
	return c.file.Close()
}

// next decodes the next non-empty line into v. It returns false at the end of the file.
func (c *consumer) next(v any) (bool, error) {
	for c.scanner.Scan() {
		c.line++
		data := c.scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		if err := json.Unmarshal(data, v); err != nil {
			return false, c.wrap(err)
		}
		return true, nil
	}
	return false, c.scanner.Err()
}

func (c *consumer) wrap(err error) error {
	return fmt.Errorf("%s:%d: %w", c.filename, c.line, err)
}

// LoadUsers imports every user of the file and returns how many were imported.
func LoadUsers(filename string, users UserImporterInterface) (int, error) {
	c, err := newConsumer(filename)
	if err != nil {
		return 0, err
	}
	defer func() { _ = c.close() }()

	count := 0
	for {
		record := UserRecord{}
		ok, err := c.next(&record)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
		if _, err = users.ImportUser(record.ID, record.Email, record.Password); err != nil {
			return count, c.wrap(err)
		}
		count++
	}
}

// LoadURLs imports every URL of the file. Each owner must already exist.
func LoadURLs(filename string, users UserImporterInterface, urls URLImporterInterface) (int, error) {
	c, err := newConsumer(filename)
	if err != nil {
		return 0, err
	}
	defer func() { _ = c.close() }()

	count := 0
	for {
		record := URLRecord{}
		ok, err := c.next(&record)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
		if _, err = users.GetUserByID(record.UserID); errors.Is(err, user.ErrUserNotFound) {
			return count, c.wrap(fmt.Errorf("%w: %q", ErrUnknownOwner, record.UserID))
		} else if err != nil {
			return count, c.wrap(err)
		}
		if _, err = urls.ImportURL(record.ID, record.URL, record.UserID); err != nil {
			return count, c.wrap(err)
		}
		count++
	}
}
