package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zap.DebugLevel)
	Log = zap.New(core)
	t.Cleanup(func() { Log = zap.NewNop() })
	return logs
}

func TestInitialize(t *testing.T) {
	defer func() { Log = zap.NewNop() }()

	require.NoError(t, Initialize("DEBUG"))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize("WARN"))
	assert.False(t, Log.Core().Enabled(zap.InfoLevel))

	assert.Error(t, Initialize("LOUD"))
}

func TestRequestLogger(t *testing.T) {
	logs := observe(t)

	var ctxLogger *zap.Logger
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Get("/urls/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = GetContextLogger(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("Hello"))
		_, _ = w.Write([]byte("!"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/urls/b2xVn2", nil))

	require.NotNil(t, ctxLogger)
	assert.NotSame(t, Log, ctxLogger)

	entries := logs.All()
	require.Len(t, entries, 2)
	started := entries[0].ContextMap()
	finished := entries[1].ContextMap()
	assert.Equal(t, started[RequestIDKey], finished[RequestIDKey])
	assert.Equal(t, http.MethodGet, finished[MethodKey])
	assert.Equal(t, "/urls/b2xVn2", finished[URIKey])
	assert.Equal(t, "/urls/{id}", finished[RouteKey])
	assert.EqualValues(t, http.StatusTeapot, finished[StatusCodeKey])
	assert.EqualValues(t, 6, finished[ResponseBodySizeBKey])
	assert.NotContains(t, finished, UserIDKey)
}

func TestRequestLogger_UserID(t *testing.T) {
	logs := observe(t)

	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithUserID(r.Context(), "userRandomID")
		GetContextLogger(ctx).Info("inside")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/urls", nil))

	entries := logs.FilterMessage("inside").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "userRandomID", entries[0].ContextMap()[UserIDKey])

	entries = logs.FilterMessage("Request finished").All()
	require.Len(t, entries, 1)
	finished := entries[0].ContextMap()
	assert.Equal(t, "userRandomID", finished[UserIDKey])
	assert.EqualValues(t, 0, finished[StatusCodeKey])
	assert.Equal(t, "", finished[RouteKey])
}

func TestWithUserID_OutsideRequest(t *testing.T) {
	logs := observe(t)

	ctx := WithUserID(context.Background(), "userRandomID")
	GetContextLogger(ctx).Info("outside")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "userRandomID", entries[0].ContextMap()[UserIDKey])
}

func TestStatusRecorder_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec}
	_, err := sr.Write([]byte("ok"))
	require.NoError(t, err)
	sr.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, sr.status)
	assert.Equal(t, 2, sr.size)
	assert.Same(t, rec, sr.Unwrap())
}

func TestGetContextLogger(t *testing.T) {
	var ctx context.Context
	assert.Equal(t, Log, GetContextLogger(ctx))
	assert.Equal(t, Log, GetContextLogger(context.Background()))

	l := zap.NewExample()
	assert.Equal(t, l, GetContextLogger(context.WithValue(context.Background(), LoggerKey, l)))
}
