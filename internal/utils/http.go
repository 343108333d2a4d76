package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes bounds request bodies. Sign docs are the largest payloads
// and stay far below it.
const maxBodyBytes = 1 << 20

// ErrInvalidJSON is returned by ReadJSON for a body that is not a single
// JSON value of the expected shape.
var ErrInvalidJSON = errors.New("invalid JSON was passed")

// WriteJSON serializes data and writes it with statusCode. If marshaling
// fails it responds 500 and returns the error.
//
//	WriteJSON(w, models.CountResponse{Count: 2}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes the request body into dst. Unknown fields and trailing
// data are rejected.
func ReadJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}
	return nil
}
