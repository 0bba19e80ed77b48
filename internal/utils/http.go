package utils

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
)

// Every body the daemon sends holds personal data, so none of it may be
// cached by the client or an intermediary.
const cacheControlNoStore = "no-store"

// WriteJSON marshals data and writes it with statusCode. A value that cannot
// be marshalled is answered with 500 and the error is returned to the caller.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return write(w, "application/json", body, statusCode)
}

// WriteText writes text as a UTF-8 plain text body.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	return write(w, "text/plain; charset=utf-8", []byte(text), statusCode)
}

// WriteAttachment sends data as a download named fileName.
func WriteAttachment(w http.ResponseWriter, contentType, fileName string, data []byte) (int, error) {
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	return write(w, contentType, data, http.StatusOK)
}

func write(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", cacheControlNoStore)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
