// Package httperr is the single point where domain errors become HTTP
// responses. Handlers return or build these; nothing else writes error JSON.
package httperr

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Write translates err into the JSON error shape. Unrecognized errors are
// logged and reported as a generic 500 so store failures never leak detail.
func Write(w http.ResponseWriter, err error) {
	var httpErr *Error
	if !errors.As(err, &httpErr) {
		log.Printf("httperr: unexpected error: %v", err)
		httpErr = Internal("Something went wrong")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Status)
	json.NewEncoder(w).Encode(errorBody{Status: "error", Message: httpErr.Message})
}
