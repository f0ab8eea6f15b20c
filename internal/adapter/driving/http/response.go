package httphandler

import (
	"encoding/json"
	"net/http"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ReadTimeRequest is the JSON body for the read-time endpoint.
type ReadTimeRequest struct {
	Text string `json:"text"`
}

// ReadTimeResponse is the JSON representation of a read-time estimate.
type ReadTimeResponse struct {
	WordCount int    `json:"word_count"`
	ReadTime  string `json:"read_time"`
}

// SetColorRequest is the JSON body for the color update endpoint.
type SetColorRequest struct {
	Color string `json:"color"`
}

// ColorResponse is the JSON representation of a visitor's color widget.
// Persistent is false when the value is not backed by the preference store,
// either because the request carried no visitor ID or persistence is off.
type ColorResponse struct {
	Color      string `json:"color"`
	Style      string `json:"style"`
	Persistent bool   `json:"persistent"`
}
