package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MisterMaks/tinyapp/internal/user"
)

func TestBuildJWTStringAndGetUserID(t *testing.T) {
	uu := newTestUserUsecase(t, SessionModeSigned)

	jwtString, err := uu.buildJWTString("userRandomID")
	require.NoError(t, err)

	actualUserID, err := uu.getUserID(jwtString)
	require.NoError(t, err)
	assert.Equal(t, "userRandomID", actualUserID)
}

func TestGetUserID_Rejected(t *testing.T) {
	uu := newTestUserUsecase(t, SessionModeSigned)

	other := newTestUserUsecase(t, SessionModeSigned)
	other.SecretKey = "anotherkey"
	foreign, err := other.buildJWTString("userRandomID")
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: "userRandomID",
	}).SignedString([]byte(TestSecretKey))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "userRandomID"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte(TestSecretKey))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "foreign key", token: foreign},
		{name: "expired", token: expired},
		{name: "alg none", token: unsigned},
		{name: "no user ID", token: noUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := uu.getUserID(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Empty(t, userID)
		})
	}
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestUserUsecase_LoginAndSession(t *testing.T) {
	for _, mode := range []SessionMode{SessionModeSigned, SessionModePlain} {
		t.Run(string(mode), func(t *testing.T) {
			uu := newTestUserUsecase(t, mode)
			u, err := uu.Register(TestEmail, TestPassword)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			require.NoError(t, uu.Login(w, u.ID))
			cookie := sessionCookie(t, w)
			assert.Equal(t, DefaultCookieName, cookie.Name)
			assert.Equal(t, "/", cookie.Path)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
			assert.Equal(t, int(DefaultSessionTTL.Seconds()), cookie.MaxAge)
			if mode == SessionModePlain {
				assert.Equal(t, u.ID, cookie.Value)
			} else {
				assert.NotEqual(t, u.ID, cookie.Value)
			}

			r := httptest.NewRequest(http.MethodGet, "/urls", nil)
			r.AddCookie(cookie)
			sessionUser, err := uu.GetSessionUser(r)
			require.NoError(t, err)
			assert.Equal(t, u.ID, sessionUser.ID)
		})
	}
}

func TestUserUsecase_Logout(t *testing.T) {
	uu := newTestUserUsecase(t, SessionModeSigned)

	w := httptest.NewRecorder()
	uu.Logout(w)
	cookie := sessionCookie(t, w)
	assert.Equal(t, DefaultCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestUserUsecase_AuthenticateSession(t *testing.T) {
	uu := newTestUserUsecase(t, SessionModeSigned)
	u, err := uu.Register(TestEmail, TestPassword)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, uu.Login(w, u.ID))
	validCookie := sessionCookie(t, w)

	unknownUserToken, err := uu.buildJWTString("deleted")
	require.NoError(t, err)

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantUserID string
	}{
		{name: "valid session", cookie: validCookie, wantUserID: u.ID},
		{name: "no cookie", cookie: nil, wantUserID: ""},
		{name: "tampered cookie", cookie: &http.Cookie{Name: DefaultCookieName, Value: validCookie.Value + "x"}, wantUserID: ""},
		{name: "unknown user", cookie: &http.Cookie{Name: DefaultCookieName, Value: unknownUserToken}, wantUserID: ""},
		{name: "plain user ID in signed mode", cookie: &http.Cookie{Name: DefaultCookieName, Value: u.ID}, wantUserID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var actualUserID string
			called := false
			h := uu.AuthenticateSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				actualUserID = GetContextUserID(r.Context())
			}))

			r := httptest.NewRequest(http.MethodGet, "/urls", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			h.ServeHTTP(httptest.NewRecorder(), r)

			assert.True(t, called)
			assert.Equal(t, tt.wantUserID, actualUserID)
		})
	}
}

func TestGetContextUser(t *testing.T) {
	var ctx context.Context

	u, err := GetContextUser(ctx)
	assert.Error(t, err)
	assert.Nil(t, u)
	assert.Empty(t, GetContextUserID(ctx))

	ctx = context.Background()

	u, err = GetContextUser(ctx)
	assert.Error(t, err)
	assert.Nil(t, u)

	testUser := &user.User{ID: "userRandomID", Email: TestEmail}
	ctx = context.WithValue(context.Background(), UserKey, testUser)

	u, err = GetContextUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, testUser, u)
	assert.Equal(t, "userRandomID", GetContextUserID(ctx))
}
