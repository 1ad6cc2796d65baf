package handler

import (
	"encoding/json"
	"net/http"
)

// Wire-level detail messages. msgStoreNotConfigured is returned by
// every data-path handler when no document store is connected; the
// other two capitalize the service sentinels at the boundary.
const (
	msgStoreNotConfigured = "Database not configured"
	msgEmailTaken         = "Email already registered"
	msgInvalidCredentials = "Invalid credentials"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"detail": msg}
}
