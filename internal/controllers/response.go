package controllers

import (
	json "github.com/goccy/go-json"
	"net/http"
)

const maxRequestBodySize = 5 << 20 // 5 MB, the usual localStorage budget

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}
