// Package logger holds the process-wide zap logger and the per-request logging middleware.
package logger

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It discards everything until Initialize.
var Log *zap.Logger = zap.NewNop()

type LoggerKeyType string

// Log field names.
const (
	MethodKey            string = "method"
	URIKey               string = "uri"
	RouteKey             string = "route"
	RequestIDKey         string = "request_id"
	UserIDKey            string = "user_id"
	ExecutionDurationKey string = "execution_duration"
	StatusCodeKey        string = "status_code"
	ResponseBodySizeBKey string = "response_body_size_B"
)

const (
	LoggerKey  LoggerKeyType = "logger_key"
	requestKey LoggerKeyType = "request_key"
)

// Initialize replaces Log with a production logger of the given level.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl
	return nil
}

// Sync flushes buffered log entries.
func Sync() error {
	return Log.Sync()
}

// requestRecord collects what the finish line of a request reports.
type requestRecord struct {
	userID string
}

// statusRecorder remembers the status code and body size of a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (sr *statusRecorder) WriteHeader(statusCode int) {
	if sr.status == 0 {
		sr.status = statusCode
	}
	sr.ResponseWriter.WriteHeader(statusCode)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

// RequestLogger gives every request an ID and a context logger carrying it,
// and logs one line per finished request.
func RequestLogger(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctxLogger := Log.With(zap.String(RequestIDKey, requestID))
		ctxLogger.Debug("Request started",
			zap.String(MethodKey, r.Method),
			zap.String(URIKey, r.RequestURI),
		)

		record := &requestRecord{}
		ctx := context.WithValue(r.Context(), LoggerKey, ctxLogger)
		ctx = context.WithValue(ctx, requestKey, record)

		sr := &statusRecorder{ResponseWriter: w}
		start := time.Now()
		h.ServeHTTP(sr, r.WithContext(ctx))

		fields := []zap.Field{
			zap.String(MethodKey, r.Method),
			zap.String(URIKey, r.RequestURI),
			zap.String(RouteKey, routePattern(r)),
			zap.Int(StatusCodeKey, sr.status),
			zap.Int(ResponseBodySizeBKey, sr.size),
			zap.Duration(ExecutionDurationKey, time.Since(start)),
		}
		if record.userID != "" {
			fields = append(fields, zap.String(UserIDKey, record.userID))
		}
		ctxLogger.Info("Request finished", fields...)
	})
}

// WithUserID marks the request of ctx as made by userID: the context logger
// gets a user_id field and the finish line of RequestLogger reports it.
func WithUserID(ctx context.Context, userID string) context.Context {
	if record, ok := ctx.Value(requestKey).(*requestRecord); ok {
		record.userID = userID
	}
	return context.WithValue(ctx, LoggerKey, GetContextLogger(ctx).With(zap.String(UserIDKey, userID)))
}

// GetContextLogger returns the request logger of ctx, or Log outside a request.
func GetContextLogger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return Log
	}
	logger, ok := ctx.Value(LoggerKey).(*zap.Logger)
	if !ok || logger == nil {
		return Log
	}
	return logger
}
