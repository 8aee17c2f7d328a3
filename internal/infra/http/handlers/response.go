package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gaspartv/api-whatsapp-fake/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Message string `json:"message"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors"`
}

// writeValidationErrors devolve 400 antes de qualquer efeito colateral.
func writeValidationErrors(w http.ResponseWriter, errs []usecase.ValidationError) {
	out := validationResponse{Message: "validation failed"}
	for _, e := range errs {
		out.Errors = append(out.Errors, fieldError{Field: e.Field, Message: e.Message})
	}
	writeJSON(w, http.StatusBadRequest, out)
}

// writeUseCaseError traduz a taxonomia de erro em status HTTP.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if usecase.IsDomainError(err) {
		de := err.(*usecase.DomainError)
		status := http.StatusBadRequest
		if de.Code == "GUEST_NOT_FOUND" {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Message: de.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}
