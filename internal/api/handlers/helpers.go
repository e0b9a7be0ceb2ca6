package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Message string `json:"message"`
}

// ValidateParseJSONRequest decodes a single JSON object from the request
// body into data. On failure it writes the error response and returns false.
func ValidateParseJSONRequest(
	w http.ResponseWriter,
	r *http.Request,
	data any,
) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		slog.Error(
			"request with an empty or unsupported content type",
			slog.String("content_type", r.Header.Get("Content-Type")),
		)
		http.Error(
			w,
			http.StatusText(http.StatusUnsupportedMediaType),
			http.StatusUnsupportedMediaType,
		)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(data); err != nil {
		var mberr *http.MaxBytesError
		slog.Warn("invalid JSON", slog.Any("error", err))
		if errors.As(err, &mberr) {
			http.Error(
				w,
				"request body too large",
				http.StatusRequestEntityTooLarge,
			)
			return false
		}
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		slog.Warn("invalid JSON", slog.Any("error", err))
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to marshal json response", slog.Any("error", err))
		http.Error(
			w,
			http.StatusText(http.StatusInternalServerError),
			http.StatusInternalServerError,
		)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(b); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
	}
}

func writeJSONError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{Message: message})
}
