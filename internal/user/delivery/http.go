package delivery

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/MisterMaks/tinyapp/internal/logger"
	"github.com/MisterMaks/tinyapp/internal/user"
	"github.com/MisterMaks/tinyapp/internal/user/usecase"
	"github.com/MisterMaks/tinyapp/internal/view"
)

const (
	ContentTypeKey string = "Content-Type"
	TextPlainKey   string = "text/plain; charset=utf-8"
	TextHTMLKey    string = "text/html; charset=utf-8"

	EmailFormKey    string = "email"
	PasswordFormKey string = "password"

	EmailKey string = "email"
	PageKey  string = "page"
)

// Plain-text replies.
const (
	MissingFieldsMsg   string = "Insert your email and password"
	PasswordTooLongMsg string = "Password must be at most 72 bytes"
	EmailExistsMsg     string = "Email already exists"
	EmailNotFoundMsg   string = "Email not found"
	BadPasswordMsg     string = "Incorrect password"
	InternalErrorMsg   string = "Internal server error"
	AfterLoginPath     string = "/urls"
	AfterLogoutPath    string = "/login"
)

//go:generate mockgen -source=http.go -destination=mocks/mock_delivery.go -package=mocks
type UserUsecaseInterface interface {
	Register(email, password string) (*user.User, error)
	Authenticate(email, password string) (*user.User, error)
	Login(w http.ResponseWriter, userID string) error
	Logout(w http.ResponseWriter)
}

type RendererInterface interface {
	Render(w io.Writer, page string, data any) error
}

type UserHandler struct {
	UserUsecase UserUsecaseInterface
	Renderer    RendererInterface

	validate *validator.Validate
}

func NewUserHandler(userUsecase UserUsecaseInterface, renderer RendererInterface) *UserHandler {
	return &UserHandler{
		UserUsecase: userUsecase,
		Renderer:    renderer,
		validate:    validator.New(),
	}
}

type credentialsForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func parseCredentials(r *http.Request) credentialsForm {
	return credentialsForm{
		Email:    r.PostFormValue(EmailFormKey),
		Password: r.PostFormValue(PasswordFormKey),
	}
}

func writeText(w http.ResponseWriter, statusCode int, msg string) {
	w.Header().Set(ContentTypeKey, TextPlainKey)
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(msg))
}

func (uh *UserHandler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set(ContentTypeKey, TextHTMLKey)
	if err := uh.Renderer.Render(w, page, data); err != nil {
		logger.GetContextLogger(r.Context()).Error("Failed to render page",
			zap.String(PageKey, page),
			zap.Error(err),
		)
		writeText(w, http.StatusInternalServerError, InternalErrorMsg)
	}
}

func (uh *UserHandler) login(w http.ResponseWriter, r *http.Request, u *user.User) {
	ctxLogger := logger.GetContextLogger(r.Context())
	if err := uh.UserUsecase.Login(w, u.ID); err != nil {
		ctxLogger.Error("Failed to bind session", zap.Error(err))
		writeText(w, http.StatusInternalServerError, InternalErrorMsg)
		return
	}
	ctxLogger.Info("User logged in", zap.String(usecase.UserIDKey, u.ID))
	http.Redirect(w, r, AfterLoginPath, http.StatusSeeOther)
}

// RegisterForm godoc
//
//	@Summary	Registration form
//	@Tags		users
//	@Produce	html
//	@Success	200	{string}	string
//	@Success	302	{string}	string	"Redirect to /urls for logged in users"
//	@Router		/register [get]
func (uh *UserHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if usecase.GetContextUserID(r.Context()) != "" {
		http.Redirect(w, r, AfterLoginPath, http.StatusFound)
		return
	}
	uh.render(w, r, view.PageRegister, view.Register{})
}

// LoginForm godoc
//
//	@Summary	Login form
//	@Tags		users
//	@Produce	html
//	@Success	200	{string}	string
//	@Success	302	{string}	string	"Redirect to /urls for logged in users"
//	@Router		/login [get]
func (uh *UserHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if usecase.GetContextUserID(r.Context()) != "" {
		http.Redirect(w, r, AfterLoginPath, http.StatusFound)
		return
	}
	uh.render(w, r, view.PageLogin, view.Login{})
}

// Register godoc
//
//	@Summary	Create an account and log in
//	@Tags		users
//	@Accept		x-www-form-urlencoded
//	@Param		email		formData	string	true	"Email"
//	@Param		password	formData	string	true	"Password"
//	@Success	303			{string}	string	"Redirect to /urls"
//	@Failure	400			{string}	string	"Insert your email and password, or Password must be at most 72 bytes"
//	@Router		/register [post]
func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	form := parseCredentials(r)
	if err := uh.validate.Struct(form); err != nil {
		ctxLogger.Warn("Invalid registration form", zap.Error(err))
		writeText(w, http.StatusBadRequest, MissingFieldsMsg)
		return
	}

	u, err := uh.UserUsecase.Register(form.Email, form.Password)
	switch {
	case errors.Is(err, user.ErrMissingField):
		ctxLogger.Warn("Invalid registration form", zap.Error(err))
		writeText(w, http.StatusBadRequest, MissingFieldsMsg)
		return
	case errors.Is(err, user.ErrPasswordTooLong):
		ctxLogger.Warn("Password too long", zap.String(EmailKey, form.Email))
		writeText(w, http.StatusBadRequest, PasswordTooLongMsg)
		return
	case errors.Is(err, user.ErrDuplicateEmail):
		ctxLogger.Warn("Email already registered", zap.String(EmailKey, form.Email))
		writeText(w, http.StatusBadRequest, EmailExistsMsg)
		return
	case err != nil:
		ctxLogger.Error("Failed to register user", zap.Error(err))
		writeText(w, http.StatusInternalServerError, InternalErrorMsg)
		return
	}

	ctxLogger.Info("User registered", zap.String(usecase.UserIDKey, u.ID))
	uh.login(w, r, u)
}

// Login godoc
//
//	@Summary	Log in
//	@Tags		users
//	@Accept		x-www-form-urlencoded
//	@Param		email		formData	string	true	"Email"
//	@Param		password	formData	string	true	"Password"
//	@Success	303			{string}	string	"Redirect to /urls"
//	@Failure	403			{string}	string	"Email not found"
//	@Router		/login [post]
func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	form := parseCredentials(r)
	u, err := uh.UserUsecase.Authenticate(form.Email, form.Password)
	switch {
	case errors.Is(err, user.ErrEmailNotFound):
		ctxLogger.Warn("Login with unknown email", zap.String(EmailKey, form.Email))
		writeText(w, http.StatusForbidden, EmailNotFoundMsg)
		return
	case errors.Is(err, user.ErrBadPassword):
		ctxLogger.Warn("Login with incorrect password", zap.String(EmailKey, form.Email))
		writeText(w, http.StatusForbidden, BadPasswordMsg)
		return
	case err != nil:
		ctxLogger.Error("Failed to authenticate user", zap.Error(err))
		writeText(w, http.StatusInternalServerError, InternalErrorMsg)
		return
	}

	uh.login(w, r, u)
}

// Logout godoc
//
//	@Summary	Log out
//	@Tags		users
//	@Success	303	{string}	string	"Redirect to /login"
//	@Router		/logout [post]
func (uh *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	uh.UserUsecase.Logout(w)
	logger.GetContextLogger(r.Context()).Info("User logged out")
	http.Redirect(w, r, AfterLogoutPath, http.StatusSeeOther)
}
