package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data as JSON and writes it with the given status
// code and an application/json content type. Every response body of the
// board vault, success or error, goes through here so clients see exactly
// one serialization.
//
// A marshal failure answers 500 and returns a wrapped error; the
// bytes-written count is returned for logging middleware.
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
