package gzip

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/MisterMaks/tinyapp/internal/logger"
)

// Used constants.
const (
	ContentTypeKey     string = "Content-Type"
	ContentLengthKey   string = "Content-Length"
	TextPlainKey       string = "text/plain"
	TextHTMLKey        string = "text/html"
	ApplicationJSONKey string = "application/json"
	GzipKey            string = "gzip"
	ContentEncodingKey string = "Content-Encoding"
	AcceptEncodingKey  string = "Accept-Encoding"
	VaryKey            string = "Vary"
)

var compressibleContentTypes = []string{TextPlainKey, TextHTMLKey, ApplicationJSONKey}

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		w, _ := gzip.NewWriterLevel(nil, gzip.BestSpeed)
		return w
	},
}

func compressible(contentType string) bool {
	for _, ct := range compressibleContentTypes {
		if strings.Contains(contentType, ct) {
			return true
		}
	}
	return false
}

// compressWriter decides on the first write whether the response is worth compressing:
// successful responses of a text or JSON type only.
type compressWriter struct {
	w           http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func newCompressWriter(w http.ResponseWriter) *compressWriter {
	return &compressWriter{w: w}
}

// Header return response header.
func (c *compressWriter) Header() http.Header {
	return c.w.Header()
}

// WriteHeader write header.
func (c *compressWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true

	h := c.w.Header()
	if statusCode < 300 && h.Get(ContentEncodingKey) == "" && compressible(h.Get(ContentTypeKey)) {
		h.Set(ContentEncodingKey, GzipKey)
		h.Add(VaryKey, AcceptEncodingKey)
		h.Del(ContentLengthKey)
		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(c.w)
		c.zw = zw
	}
	c.w.WriteHeader(statusCode)
}

// Write write data.
func (c *compressWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.zw == nil {
		return c.w.Write(p)
	}
	return c.zw.Write(p)
}

// Close flushes compressed data and returns the writer to the pool.
func (c *compressWriter) Close() error {
	if c.zw == nil {
		return nil
	}
	err := c.zw.Close()
	gzipWriterPool.Put(c.zw)
	c.zw = nil
	return err
}

// compressReader реализует интерфейс io.ReadCloser и позволяет прозрачно для сервера
// декомпрессировать получаемые от клиента данные
type compressReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

func newCompressReader(r io.ReadCloser) (*compressReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &compressReader{
		r:  r,
		zr: zr,
	}, nil
}

// Read read data.
func (c compressReader) Read(p []byte) (n int, err error) {
	return c.zr.Read(p)
}

// Close close reader.
func (c *compressReader) Close() error {
	if err := c.r.Close(); err != nil {
		return err
	}
	return c.zr.Close()
}

// GzipMiddleware middleware for zip data in response and unzip data from request.
func GzipMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger := logger.GetContextLogger(r.Context())

		ow := w

		acceptEncoding := r.Header.Get(AcceptEncodingKey)
		supportsGzip := strings.Contains(acceptEncoding, GzipKey)
		if supportsGzip {
			cw := newCompressWriter(w)
			ow = cw
			defer func() {
				if err := cw.Close(); err != nil {
					ctxLogger.Warn("Failed to close compressWriter", zap.Error(err))
				}
			}()
		}

		contentEncoding := r.Header.Get(ContentEncodingKey)
		sendsGzip := strings.Contains(contentEncoding, GzipKey)
		if sendsGzip {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				ctxLogger.Warn("Bad gzip request body", zap.Error(err))
				http.Error(w, "Invalid gzip body", http.StatusBadRequest)
				return
			}
			r.Body = cr
			defer func() {
				err = cr.Close()
				if err != nil {
					ctxLogger.Warn("Failed to close compressReader", zap.Error(err))
				}
			}()
		}

		h.ServeHTTP(ow, r)
	})
}
