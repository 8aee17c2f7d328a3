package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gaspartv/api-whatsapp-fake/internal/usecase"
)

type GuestHandler struct {
	RegisterUC *usecase.RegisterGuestsUseCase
	ReportUC   *usecase.ConfirmationReportUseCase
	ConfirmUC  *usecase.ConfirmGuestUseCase
	Repo       usecase.GuestRepositoryInterface
}

func NewGuestHandler(
	registerUC *usecase.RegisterGuestsUseCase,
	reportUC *usecase.ConfirmationReportUseCase,
	confirmUC *usecase.ConfirmGuestUseCase,
	repo usecase.GuestRepositoryInterface,
) *GuestHandler {
	return &GuestHandler{
		RegisterUC: registerUC,
		ReportUC:   reportUC,
		ConfirmUC:  confirmUC,
		Repo:       repo,
	}
}

// Register (POST /guests): import em massa, pulando telefones repetidos.
func (h *GuestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var inputs []usecase.GuestInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "JSON inválido: " + err.Error()})
		return
	}

	var errs []usecase.ValidationError
	for i, input := range inputs {
		for _, e := range usecase.ValidateGuestInput(input) {
			e.Field = fmt.Sprintf("[%d].%s", i, e.Field)
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	guests, err := h.RegisterUC.Execute(r.Context(), inputs)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, guests)
}

// List (GET /guests)
func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	guests, err := h.Repo.ListAll(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

// Report (GET /guests/confirmed)
// Responde 201 mesmo sendo leitura: a API original fazia assim e os
// clientes dela dependem disso.
func (h *GuestHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.ReportUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

// Confirm (PATCH /guests/confirm)
func (h *GuestHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var input usecase.ConfirmGuestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "JSON inválido: " + err.Error()})
		return
	}

	if input.Phone == "" {
		writeValidationErrors(w, []usecase.ValidationError{{Field: "phone", Message: "is required"}})
		return
	}

	guest, err := h.ConfirmUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, guest)
}
