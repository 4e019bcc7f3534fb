package handler

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/kdduha/sceramath/internal/models"
)

// writeJSON encodes before touching the header so an encode failure can still become a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = sonic.Marshal(models.ErrorResponse{Error: msgEngineFailed})
	}

	writeRaw(w, status, data)
}

// writeRaw sends an already encoded JSON document.
func writeRaw(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
