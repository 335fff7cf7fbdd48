package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"country-bonds/logging"
)

// getIntParam retrieves an integer query parameter with default value and optional range validation
func getIntParam(r *http.Request, key string, defaultVal int, minVal, maxVal *int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}

	if minVal != nil && val < *minVal {
		return defaultVal
	}
	if maxVal != nil && val > *maxVal {
		return defaultVal
	}

	return val
}

func intPtr(v int) *int { return &v }

// respondJSON writes v as JSON with the given status
func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.GetLogger().Warn().Err(err).Msg("Failed to encode response")
	}
}

// respondWithError logs the error and sends a JSON error response
// Use this to avoid exposing internal errors while still logging them
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	event := logging.GetLogger().Warn().Int("status", code)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(message)
	respondJSON(w, code, map[string]string{"error": message})
}
