// TinyApp is a small URL shortener with user accounts.
//
//	@title			TinyApp
//	@version		1.0
//	@description	URL shortener with user accounts, sessions and per-user ownership of short URLs.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/MisterMaks/tinyapp/docs"
	appDeliveryInternal "github.com/MisterMaks/tinyapp/internal/app/delivery"
	appRepoInternal "github.com/MisterMaks/tinyapp/internal/app/repo"
	appUsecaseInternal "github.com/MisterMaks/tinyapp/internal/app/usecase"
	"github.com/MisterMaks/tinyapp/internal/gzip"
	"github.com/MisterMaks/tinyapp/internal/idgen"
	"github.com/MisterMaks/tinyapp/internal/logger"
	"github.com/MisterMaks/tinyapp/internal/qr"
	"github.com/MisterMaks/tinyapp/internal/seed"
	userDeliveryInternal "github.com/MisterMaks/tinyapp/internal/user/delivery"
	userRepoInternal "github.com/MisterMaks/tinyapp/internal/user/repo"
	userUsecaseInternal "github.com/MisterMaks/tinyapp/internal/user/usecase"
	"github.com/MisterMaks/tinyapp/internal/view"
)

const (
	CountRegenerationsForLengthID uint = 5
	LengthID                      uint = idgen.DefaultLength
	MaxLengthID                   uint = 20

	ReadHeaderTimeout time.Duration = 5 * time.Second
	ShutdownTimeout   time.Duration = 10 * time.Second

	SwaggerDocURL string = "/swagger/doc.json"
)

type AppHandlerInterface interface {
	Hello(w http.ResponseWriter, r *http.Request)
	HelloHTML(w http.ResponseWriter, r *http.Request)
	GetURLsJSON(w http.ResponseWriter, r *http.Request)
	GetUserURLs(w http.ResponseWriter, r *http.Request)
	NewURLForm(w http.ResponseWriter, r *http.Request)
	GetUserURL(w http.ResponseWriter, r *http.Request)
	RedirectToURL(w http.ResponseWriter, r *http.Request)
	CreateURL(w http.ResponseWriter, r *http.Request)
	UpdateUserURL(w http.ResponseWriter, r *http.Request)
	DeleteUserURL(w http.ResponseWriter, r *http.Request)
}

type UserHandlerInterface interface {
	RegisterForm(w http.ResponseWriter, r *http.Request)
	LoginForm(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type Middlewares struct {
	RequestLogger       func(http.Handler) http.Handler
	Recoverer           func(http.Handler) http.Handler
	GzipMiddleware      func(http.Handler) http.Handler
	AuthenticateSession func(http.Handler) http.Handler
}

func tinyappRouter(appHandler AppHandlerInterface, userHandler UserHandlerInterface, middlewares *Middlewares) chi.Router {
	r := chi.NewRouter()
	r.Use(
		middlewares.RequestLogger,
		middlewares.Recoverer,
		middlewares.GzipMiddleware,
		middlewares.AuthenticateSession,
	)

	r.Get(`/`, appHandler.Hello)
	r.Get(`/hello`, appHandler.HelloHTML)
	r.Get(`/urls.json`, appHandler.GetURLsJSON)
	r.Route(`/urls`, func(r chi.Router) {
		r.Get(`/`, appHandler.GetUserURLs)
		r.Post(`/`, appHandler.CreateURL)
		r.Get(`/new`, appHandler.NewURLForm)
		r.Get(`/{id}`, appHandler.GetUserURL)
		r.Post(`/{id}`, appHandler.UpdateUserURL)
		r.Post(`/{id}/delete`, appHandler.DeleteUserURL)
	})
	r.Get(`/u/{id}`, appHandler.RedirectToURL)

	r.Get(`/register`, userHandler.RegisterForm)
	r.Post(`/register`, userHandler.Register)
	r.Get(`/login`, userHandler.LoginForm)
	r.Post(`/login`, userHandler.Login)
	r.Post(`/logout`, userHandler.Logout)

	r.Get(`/swagger/*`, httpSwagger.Handler(httpSwagger.URL(SwaggerDocURL)))

	return r
}

// App owns the stores, usecases and HTTP server of a running TinyApp.
type App struct {
	Config      *Config
	AppUsecase  *appUsecaseInternal.AppUsecase
	UserUsecase *userUsecaseInternal.UserUsecase
	Handler     http.Handler
}

func loadSeeds(config *Config, userUsecase *userUsecaseInternal.UserUsecase, appUsecase *appUsecaseInternal.AppUsecase) error {
	if config.UsersSeedPath != "" {
		count, err := seed.LoadUsers(config.UsersSeedPath, userUsecase)
		if err != nil {
			return err
		}
		logger.Log.Info("Users imported", zap.String("path", config.UsersSeedPath), zap.Int("count", count))
	}
	if config.URLsSeedPath != "" {
		count, err := seed.LoadURLs(config.URLsSeedPath, userUsecase, appUsecase)
		if err != nil {
			return err
		}
		logger.Log.Info("URLs imported", zap.String("path", config.URLsSeedPath), zap.Int("count", count))
	}
	return nil
}

// NewApp wires stores, usecases, handlers and middlewares, then imports seed files.
func NewApp(config *Config) (*App, error) {
	appRepo := appRepoInternal.NewAppRepoInmem()
	appUsecase, err := appUsecaseInternal.NewAppUsecase(
		appRepo,
		config.BaseURL,
		CountRegenerationsForLengthID,
		LengthID,
		MaxLengthID,
	)
	if err != nil {
		return nil, err
	}

	userRepo := userRepoInternal.NewUserRepoInmem()
	userUsecase, err := userUsecaseInternal.NewUserUsecase(
		userRepo,
		config.BcryptCost,
		userUsecaseInternal.SessionMode(config.SessionMode),
		config.SecretKey,
		config.SessionCookieName,
		config.SessionTTL,
	)
	if err != nil {
		return nil, err
	}

	if err = loadSeeds(config, userUsecase, appUsecase); err != nil {
		return nil, err
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	appHandler := appDeliveryInternal.NewAppHandler(appUsecase, renderer, qr.NewCoder(qr.DefaultSize))
	userHandler := userDeliveryInternal.NewUserHandler(userUsecase, renderer)

	middlewares := &Middlewares{
		RequestLogger:       logger.RequestLogger,
		Recoverer:           middleware.Recoverer,
		GzipMiddleware:      gzip.GzipMiddleware,
		AuthenticateSession: userUsecase.AuthenticateSession,
	}

	return &App{
		Config:      config,
		AppUsecase:  appUsecase,
		UserUsecase: userUsecase,
		Handler:     tinyappRouter(appHandler, userHandler, middlewares),
	}, nil
}

// Run serves HTTP until ctx is done, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.Config.ServerAddress,
		Handler:           a.Handler,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("address", a.Config.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func main() {
	config, err := NewConfig()
	if err != nil {
		log.Fatalln("CRITICAL\tFailed to create config. Error:", err)
	}

	if err = logger.Initialize(config.LogLevel); err != nil {
		log.Fatalln("CRITICAL\tFailed to initialize logger. Error:", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if config.SecretKeyGenerated {
		logger.Log.Warn("Secret key is not set, sessions will not survive a restart")
	}

	app, err := NewApp(config)
	if err != nil {
		logger.Log.Fatal("Failed to create app", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		logger.Log.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Log.Info("Server stopped")
}
