package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const redactedBody = "[redacted]"

// bodies under these prefixes carry credentials
var sensitivePaths = []string{"/api/user/"}

func Log() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			if slog.Default().Enabled(r.Context(), slog.LevelDebug) {
				logBody, err := peekBody(r)
				if err != nil {
					slog.Error(
						"error reading request body",
						slog.Any("error", err),
					)
					http.Error(
						w,
						http.StatusText(http.StatusInternalServerError),
						http.StatusInternalServerError,
					)
					return
				}

				slog.Debug("request details",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("query", r.URL.RawQuery),
					slog.String("user_agent", r.UserAgent()),
					slog.Int("content_length", int(r.ContentLength)),
					slog.String("body", logBody),
				)
			}

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			slog.Info("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.statusCode),
				slog.Int("resp_size", ww.size),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

// peekBody reads the request body for logging and puts it back.
func peekBody(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", nil
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	for _, p := range sensitivePaths {
		if strings.HasPrefix(r.URL.Path, p) {
			return redactedBody, nil
		}
	}

	if r.Header.Get("Content-Encoding") == "gzip" && len(bodyBytes) > 0 {
		gz, err := gzip.NewReader(bytes.NewReader(bodyBytes))
		if err == nil {
			decompressed, _ := io.ReadAll(gz)
			gz.Close()
			if len(decompressed) > 0 {
				return string(decompressed), nil
			}
		}
	}

	return string(bodyBytes), nil
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size

	return size, err
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
