package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/MisterMaks/tinyapp/internal/logger"
	"github.com/MisterMaks/tinyapp/internal/user"
)

// SessionMode selects what the session cookie carries.
type SessionMode string

// Session modes.
const (
	// SessionModeSigned stores an HS256 JWT with the user ID.
	SessionModeSigned SessionMode = "signed"
	// SessionModePlain stores the raw user ID. Anyone can forge it.
	SessionModePlain SessionMode = "plain"
)

// UserKeyType is type for UserKey constant.
type UserKeyType string

// Constants for usecase.
const (
	UserKey           UserKeyType = "user"
	UserIDKey         string      = "user_id"
	DefaultCookieName string      = "my_session"
	DefaultSessionTTL             = 24 * time.Hour
)

// Session errors.
var (
	ErrNoSession    = errors.New("no session")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is jwt.RegisteredClaims with UserID field.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// buildJWTString creates token and return it in string format.
func (uu *UserUsecase) buildJWTString(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(uu.SessionTTL)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(uu.SecretKey))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (uu *UserUsecase) getUserID(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uu.SecretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

func (uu *UserUsecase) sessionValue(userID string) (string, error) {
	if uu.SessionMode == SessionModePlain {
		return userID, nil
	}
	return uu.buildJWTString(userID)
}

func (uu *UserUsecase) sessionUserID(value string) (string, error) {
	if value == "" {
		return "", ErrNoSession
	}
	if uu.SessionMode == SessionModePlain {
		return value, nil
	}
	return uu.getUserID(value)
}

// Login binds the response to userID by setting the session cookie.
func (uu *UserUsecase) Login(w http.ResponseWriter, userID string) error {
	value, err := uu.sessionValue(userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     uu.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(uu.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout expires the session cookie.
func (uu *UserUsecase) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     uu.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetSessionUser resolves the session cookie of r to an existing user.
func (uu *UserUsecase) GetSessionUser(r *http.Request) (*user.User, error) {
	cookie, err := r.Cookie(uu.CookieName)
	if err != nil {
		return nil, ErrNoSession
	}
	userID, err := uu.sessionUserID(cookie.Value)
	if err != nil {
		return nil, err
	}
	return uu.UserRepo.GetUserByID(userID)
}

// AuthenticateSession puts the session user into the request context.
// Requests without a valid session pass through anonymous.
func (uu *UserUsecase) AuthenticateSession(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger := logger.GetContextLogger(r.Context())

		u, err := uu.GetSessionUser(r)
		if err != nil {
			if !errors.Is(err, ErrNoSession) {
				ctxLogger.Debug("Rejected session", zap.Error(err))
			}
			h.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, u)
		ctx = logger.WithUserID(ctx, u.ID)

		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetContextUser gets user from context.
func GetContextUser(ctx context.Context) (*user.User, error) {
	if ctx == nil {
		return nil, fmt.Errorf("no context")
	}
	u, ok := ctx.Value(UserKey).(*user.User)
	if !ok || u == nil {
		return nil, fmt.Errorf("no %v", UserKey)
	}
	return u, nil
}

// GetContextUserID gets user ID from context. Empty string means anonymous.
func GetContextUserID(ctx context.Context) string {
	u, err := GetContextUser(ctx)
	if err != nil {
		return ""
	}
	return u.ID
}
