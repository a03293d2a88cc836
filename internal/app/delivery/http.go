package delivery

import (
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/MisterMaks/tinyapp/internal/app"
	"github.com/MisterMaks/tinyapp/internal/logger"
	userUsecase "github.com/MisterMaks/tinyapp/internal/user/usecase"
	"github.com/MisterMaks/tinyapp/internal/view"
)

const (
	ContentTypeKey     string = "Content-Type"
	TextPlainKey       string = "text/plain; charset=utf-8"
	TextHTMLKey        string = "text/html; charset=utf-8"
	ApplicationJSONKey string = "application/json"

	LongURLFormKey string = "longURL"
	IDParam        string = "id"

	URLIDKey    string = "url_id"
	URLKey      string = "url"
	ShortURLKey string = "short_url"
	PageKey     string = "page"
)

// Plain-text replies.
const (
	HelloMsg            string = "Hello!"
	HelloHTML           string = "<html><body>Hello <b>World</b></body></html>"
	MustLoginListMsg    string = "You must login/register first"
	MustLoginCreateMsg  string = "You must login"
	URLNotExistMsg      string = "URL doesn't exist"
	NotAuthorizedMsg    string = "Not authorized to access this page"
	ShortURLNotFoundMsg string = "URL not found"
	EmptyURLMsg         string = "Insert a URL"
	InternalErrorMsg    string = "Internal server error"
)

//go:generate mockgen -source=http.go -destination=mocks/mock_delivery.go -package=mocks
type AppUsecaseInterface interface {
	CreateURL(rawURL, userID string) (*app.URL, error)
	GetURLs() ([]*app.URL, error)
	GetUserURLs(userID string) ([]*app.URL, error)
	GetUserURL(id, userID string) (*app.URL, error)
	UpdateUserURL(id, rawURL, userID string) error
	DeleteUserURL(id, userID string) error
	Resolve(id string) (string, error)
	GenerateShortURL(id string) string
}

type RendererInterface interface {
	Render(w io.Writer, page string, data any) error
}

type QRCoderInterface interface {
	MakeBase64(text string) (string, error)
}

type AppHandler struct {
	AppUsecase AppUsecaseInterface
	Renderer   RendererInterface
	QRCoder    QRCoderInterface
}

func NewAppHandler(appUsecase AppUsecaseInterface, renderer RendererInterface, qrCoder QRCoderInterface) *AppHandler {
	return &AppHandler{AppUsecase: appUsecase, Renderer: renderer, QRCoder: qrCoder}
}

// URLJSON is one entry of /urls.json.
type URLJSON struct {
	LongURL string `json:"longURL"`
	UserID  string `json:"userID"`
}

func writeText(w http.ResponseWriter, statusCode int, msg string) {
	w.Header().Set(ContentTypeKey, TextPlainKey)
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(msg))
}

func header(r *http.Request) view.Header {
	u, err := userUsecase.GetContextUser(r.Context())
	if err != nil {
		return view.Header{}
	}
	return view.Header{Email: u.Email}
}

func (ah *AppHandler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set(ContentTypeKey, TextHTMLKey)
	if err := ah.Renderer.Render(w, page, data); err != nil {
		logger.GetContextLogger(r.Context()).Error("Failed to render page",
			zap.String(PageKey, page),
			zap.Error(err),
		)
		writeText(w, http.StatusInternalServerError, InternalErrorMsg)
	}
}

func (ah *AppHandler) viewURL(url *app.URL) view.URL {
	return view.URL{ID: url.ID, LongURL: url.URL, ShortURL: ah.AppUsecase.GenerateShortURL(url.ID)}
}

// writeAccessError maps policy errors to replies.
func writeAccessError(w http.ResponseWriter, ctxLogger *zap.Logger, id string, err error) {
	switch {
	case errors.Is(err, app.ErrNotAuthenticated):
		ctxLogger.Warn("Anonymous access", zap.String(URLIDKey, id))
		writeText(w, http.StatusForbidden, MustLoginListMsg)
	case errors.Is(err, app.ErrURLNotFound):
		ctxLogger.Warn("URL not found", zap.String(URLIDKey, id))
		writeText(w, http.StatusNotFound, URLNotExistMsg)
	case errors.Is(err, app.ErrUnauthorized):
		ctxLogger.Warn("Access to a foreign URL", zap.String(URLIDKey, id))
		writeText(w, http.StatusForbidden, NotAuthorizedMsg)
	case errors.Is(err, app.ErrEmptyURL):
		ctxLogger.Warn("Empty URL", zap.String(URLIDKey, id))
		writeText(w, http.StatusBadRequest, EmptyURLMsg)
	default:
		ctxLogger.Error("Internal error", zap.String(URLIDKey, id), zap.Error(err))
		writeText(w, http.StatusInternalServerError, InternalErrorMsg)
	}
}

// Hello godoc
//
//	@Summary	Greeting
//	@Tags		misc
//	@Produce	plain
//	@Success	200	{string}	string	"Hello!"
//	@Router		/ [get]
func (ah *AppHandler) Hello(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, HelloMsg)
}

// HelloHTML godoc
//
//	@Summary	Greeting page
//	@Tags		misc
//	@Produce	html
//	@Success	200	{string}	string
//	@Router		/hello [get]
func (ah *AppHandler) HelloHTML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentTypeKey, TextHTMLKey)
	_, _ = w.Write([]byte(HelloHTML))
}

// GetURLsJSON godoc
//
//	@Summary	Whole URL directory
//	@Tags		urls
//	@Produce	json
//	@Success	200	{object}	map[string]delivery.URLJSON
//	@Failure	500	{string}	string	"Internal server error"
//	@Router		/urls.json [get]
func (ah *AppHandler) GetURLsJSON(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	urls, err := ah.AppUsecase.GetURLs()
	if err != nil {
		ctxLogger.Error("Failed to get URLs", zap.Error(err))
		writeText(w, http.StatusInternalServerError, InternalErrorMsg)
		return
	}

	resp := make(map[string]URLJSON, len(urls))
	for _, url := range urls {
		resp[url.ID] = URLJSON{LongURL: url.URL, UserID: url.UserID}
	}

	w.Header().Set(ContentTypeKey, ApplicationJSONKey)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		ctxLogger.Error("Failed to encode URLs", zap.Error(err))
	}
}

// GetUserURLs godoc
//
//	@Summary	Page with the URLs of the logged in user
//	@Tags		urls
//	@Produce	html
//	@Success	200	{string}	string
//	@Failure	403	{string}	string	"You must login/register first"
//	@Router		/urls [get]
func (ah *AppHandler) GetUserURLs(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	userID := userUsecase.GetContextUserID(r.Context())
	urls, err := ah.AppUsecase.GetUserURLs(userID)
	if err != nil {
		writeAccessError(w, ctxLogger, "", err)
		return
	}

	data := view.URLsIndex{Header: header(r), URLs: make([]view.URL, 0, len(urls))}
	for _, url := range urls {
		data.URLs = append(data.URLs, ah.viewURL(url))
	}
	ah.render(w, r, view.PageURLsIndex, data)
}

// NewURLForm godoc
//
//	@Summary	Form for a new short URL
//	@Tags		urls
//	@Produce	html
//	@Success	200	{string}	string
//	@Success	302	{string}	string	"Redirect to /login for anonymous users"
//	@Router		/urls/new [get]
func (ah *AppHandler) NewURLForm(w http.ResponseWriter, r *http.Request) {
	if userUsecase.GetContextUserID(r.Context()) == "" {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	ah.render(w, r, view.PageURLsNew, view.URLsNew{Header: header(r)})
}

// GetUserURL godoc
//
//	@Summary	Detail page of a short URL with its QR code
//	@Tags		urls
//	@Produce	html
//	@Param		id	path		string	true	"Short URL ID"
//	@Success	200	{string}	string
//	@Failure	403	{string}	string	"You must login/register first"
//	@Failure	404	{string}	string	"URL doesn't exist"
//	@Router		/urls/{id} [get]
func (ah *AppHandler) GetUserURL(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	id := chi.URLParam(r, IDParam)
	url, err := ah.AppUsecase.GetUserURL(id, userUsecase.GetContextUserID(r.Context()))
	if err != nil {
		writeAccessError(w, ctxLogger, id, err)
		return
	}

	data := view.URLsShow{Header: header(r), URL: ah.viewURL(url)}
	qrCode, err := ah.QRCoder.MakeBase64(data.URL.ShortURL)
	if err != nil {
		ctxLogger.Warn("Failed to make QR code",
			zap.String(ShortURLKey, data.URL.ShortURL),
			zap.Error(err),
		)
	} else {
		data.QRCode = template.URL(qrCode)
	}
	ah.render(w, r, view.PageURLsShow, data)
}

// RedirectToURL godoc
//
//	@Summary	Follow a short URL
//	@Tags		urls
//	@Param		id	path	string	true	"Short URL ID"
//	@Success	302	{string}	string	"Redirect to the destination"
//	@Failure	404	{string}	string	"URL not found"
//	@Router		/u/{id} [get]
func (ah *AppHandler) RedirectToURL(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	id := chi.URLParam(r, IDParam)
	destination, err := ah.AppUsecase.Resolve(id)
	if errors.Is(err, app.ErrURLNotFound) {
		ctxLogger.Warn("Short URL not found", zap.String(URLIDKey, id))
		writeText(w, http.StatusNotFound, ShortURLNotFoundMsg)
		return
	}
	if err != nil {
		ctxLogger.Error("Failed to resolve short URL", zap.String(URLIDKey, id), zap.Error(err))
		writeText(w, http.StatusInternalServerError, InternalErrorMsg)
		return
	}

	ctxLogger.Info("Found short URL",
		zap.String(URLIDKey, id),
		zap.String(URLKey, destination),
	)
	http.Redirect(w, r, destination, http.StatusFound)
}

// CreateURL godoc
//
//	@Summary	Create a short URL
//	@Tags		urls
//	@Accept		x-www-form-urlencoded
//	@Param		longURL	formData	string	true	"Destination URL"
//	@Success	303		{string}	string	"Redirect to /urls/{id}"
//	@Failure	400		{string}	string	"Insert a URL"
//	@Failure	403		{string}	string	"You must login"
//	@Router		/urls [post]
func (ah *AppHandler) CreateURL(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	userID := userUsecase.GetContextUserID(r.Context())
	if userID == "" {
		ctxLogger.Warn("Anonymous user tried to create URL")
		writeText(w, http.StatusForbidden, MustLoginCreateMsg)
		return
	}

	url, err := ah.AppUsecase.CreateURL(r.PostFormValue(LongURLFormKey), userID)
	if err != nil {
		writeAccessError(w, ctxLogger, "", err)
		return
	}

	ctxLogger.Info("Short URL created",
		zap.String(URLIDKey, url.ID),
		zap.String(URLKey, url.URL),
	)
	http.Redirect(w, r, "/urls/"+url.ID, http.StatusSeeOther)
}

// UpdateUserURL godoc
//
//	@Summary	Change the destination of a short URL
//	@Tags		urls
//	@Accept		x-www-form-urlencoded
//	@Param		id		path		string	true	"Short URL ID"
//	@Param		longURL	formData	string	true	"New destination URL"
//	@Success	303		{string}	string	"Redirect to /urls"
//	@Failure	400		{string}	string	"Insert a URL"
//	@Failure	403		{string}	string	"Not authorized to access this page"
//	@Failure	404		{string}	string	"URL doesn't exist"
//	@Router		/urls/{id} [post]
func (ah *AppHandler) UpdateUserURL(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	id := chi.URLParam(r, IDParam)
	rawURL := r.PostFormValue(LongURLFormKey)
	err := ah.AppUsecase.UpdateUserURL(id, rawURL, userUsecase.GetContextUserID(r.Context()))
	if err != nil {
		writeAccessError(w, ctxLogger, id, err)
		return
	}

	ctxLogger.Info("Short URL updated",
		zap.String(URLIDKey, id),
		zap.String(URLKey, rawURL),
	)
	http.Redirect(w, r, "/urls", http.StatusSeeOther)
}

// DeleteUserURL godoc
//
//	@Summary	Delete a short URL
//	@Tags		urls
//	@Param		id	path		string	true	"Short URL ID"
//	@Success	303	{string}	string	"Redirect to /urls"
//	@Failure	403	{string}	string	"Not authorized to access this page"
//	@Failure	404	{string}	string	"URL doesn't exist"
//	@Router		/urls/{id}/delete [post]
func (ah *AppHandler) DeleteUserURL(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.GetContextLogger(r.Context())

	id := chi.URLParam(r, IDParam)
	err := ah.AppUsecase.DeleteUserURL(id, userUsecase.GetContextUserID(r.Context()))
	if err != nil {
		writeAccessError(w, ctxLogger, id, err)
		return
	}

	ctxLogger.Info("Short URL deleted", zap.String(URLIDKey, id))
	http.Redirect(w, r, "/urls", http.StatusSeeOther)
}
