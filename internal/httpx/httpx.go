package httpx

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type apiError struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// JSON encodes v before writing the header, so a value that cannot be
// encoded becomes a 500 instead of a truncated success.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("encode response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(apiError{Error: "Internal error"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func Error(w http.ResponseWriter, status int, msg string, fields ...FieldError) {
	JSON(w, status, apiError{Error: msg, Fields: fields})
}

// Decode reads a JSON body into v, answering 400 itself on failure.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.WithError(err).WithField("path", r.URL.Path).Warn("bad request payload")
		Error(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}
