package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/leadmarket/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeUseCaseError maps a use case failure onto an HTTP status. Domain
// errors carry a code the client can branch on; anything else is a 500.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		switch de.Code {
		case "NOT_FOUND":
			status = http.StatusNotFound
		case "DUPLICATE", "TRANSITION":
			status = http.StatusConflict
		case "ADMISSION":
			status = http.StatusUnprocessableEntity
		}
		writeErrorResponse(w, status, de.Code, de.Message)
		return
	}

	log.Printf("internal error: %v", err)
	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
}
