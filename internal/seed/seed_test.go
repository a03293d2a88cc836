package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MisterMaks/tinyapp/internal/app"
	appRepo "github.com/MisterMaks/tinyapp/internal/app/repo"
	appUsecase "github.com/MisterMaks/tinyapp/internal/app/usecase"
	"github.com/MisterMaks/tinyapp/internal/user"
	userRepo "github.com/MisterMaks/tinyapp/internal/user/repo"
	userUsecase "github.com/MisterMaks/tinyapp/internal/user/usecase"
)

const (
	TestUsersSeedPath string = "../../seed/users.jsonl"
	TestURLsSeedPath  string = "../../seed/urls.jsonl"
)

func newUsecases(t *testing.T) (*userUsecase.UserUsecase, *appUsecase.AppUsecase) {
	uu, err := userUsecase.NewUserUsecase(userRepo.NewUserRepoInmem(), bcrypt.MinCost, userUsecase.SessionModeSigned, "secretkey", userUsecase.DefaultCookieName, time.Hour)
	require.NoError(t, err)
	au, err := appUsecase.NewAppUsecase(appRepo.NewAppRepoInmem(), "http://localhost:8080/", 5, 6, 20)
	require.NoError(t, err)
	return uu, au
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DemoFiles(t *testing.T) {
	uu, au := newUsecases(t)

	count, err := LoadUsers(TestUsersSeedPath, uu)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = LoadURLs(TestURLsSeedPath, uu, au)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	u, err := uu.Authenticate("user@example.com", "purple-monkey-dinosaur")
	require.NoError(t, err)
	assert.Equal(t, "userRandomID", u.ID)

	u, err = uu.Authenticate("user2@example.com", "dishwasher-funk")
	require.NoError(t, err)
	assert.Equal(t, "user2RandomID", u.ID)

	destination, err := au.Resolve("b2xVn2")
	require.NoError(t, err)
	assert.Equal(t, "http://www.lighthouselabs.ca", destination)

	urls, err := au.GetUserURLs("user2RandomID")
	require.NoError(t, err)
	assert.Equal(t, []*app.URL{{ID: "9sm5xK", URL: "http://www.google.com", UserID: "user2RandomID"}}, urls)
}

func TestLoadUsers_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
		wantErr   error
	}{
		{
			name:      "blank lines",
			content:   "\n{\"id\":\"a\",\"email\":\"a@example.com\",\"password\":\"p\"}\n\n",
			wantCount: 1,
		},
		{
			name:      "duplicate email",
			content:   "{\"id\":\"a\",\"email\":\"a@example.com\",\"password\":\"p\"}\n{\"id\":\"b\",\"email\":\"a@example.com\",\"password\":\"p\"}\n",
			wantCount: 1,
			wantErr:   user.ErrDuplicateEmail,
		},
		{
			name:      "missing password",
			content:   "{\"id\":\"a\",\"email\":\"a@example.com\"}\n",
			wantCount: 0,
			wantErr:   user.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uu, _ := newUsecases(t)
			count, err := LoadUsers(writeFile(t, tt.content), uu)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestLoadUsers_BadJSON(t *testing.T) {
	uu, _ := newUsecases(t)
	path := writeFile(t, "{\"id\":\"a\",\"email\":\"a@example.com\",\"password\":\"p\"}\nnot json\n")

	count, err := LoadUsers(path, uu)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path+":2:")
	assert.Equal(t, 1, count)
}

func TestLoadUsers_MissingFile(t *testing.T) {
	uu, _ := newUsecases(t)
	_, err := LoadUsers(filepath.Join(t.TempDir(), "nothing.jsonl"), uu)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadURLs_UnknownOwner(t *testing.T) {
	uu, au := newUsecases(t)
	_, err := LoadUsers(TestUsersSeedPath, uu)
	require.NoError(t, err)

	path := writeFile(t, "{\"id\":\"b2xVn2\",\"url\":\"http://www.lighthouselabs.ca\",\"user_id\":\"ghost\"}\n")
	count, err := LoadURLs(path, uu, au)
	assert.ErrorIs(t, err, ErrUnknownOwner)
	assert.Equal(t, 0, count)

	_, err = au.Resolve("b2xVn2")
	assert.ErrorIs(t, err, app.ErrURLNotFound)
}

func TestLoadURLs_DuplicateCode(t *testing.T) {
	uu, au := newUsecases(t)
	_, err := LoadUsers(TestUsersSeedPath, uu)
	require.NoError(t, err)

	path := writeFile(t, "{\"id\":\"b2xVn2\",\"url\":\"http://a.com\",\"user_id\":\"userRandomID\"}\n{\"id\":\"b2xVn2\",\"url\":\"http://b.com\",\"user_id\":\"user2RandomID\"}\n")
	count, err := LoadURLs(path, uu, au)
	assert.ErrorIs(t, err, app.ErrURLExists)
	assert.Equal(t, 1, count)
}
