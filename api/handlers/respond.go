package handlers

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response messages existing clients string-match on; do not rephrase.
const (
	msgNewBlock      = "Congratulation! New block is found"
	msgInvalidProof  = "Invalid Proof. Unsuccessful Try again."
	msgMissingFields = "Missing required fields."
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
