package handlers

import (
	"net/http"

	"github.com/gaspartv/api-whatsapp-fake/internal/infra/broadcast"
	"github.com/gaspartv/api-whatsapp-fake/internal/usecase"
)

type BroadcastHandler struct {
	BroadcastUC *usecase.BroadcastInvitationsUseCase
	Broadcaster *broadcast.Broadcaster
}

func NewBroadcastHandler(uc *usecase.BroadcastInvitationsUseCase, b *broadcast.Broadcaster) *BroadcastHandler {
	return &BroadcastHandler{BroadcastUC: uc, Broadcaster: b}
}

// Trigger (GET /invitations/send): agenda e responde na hora, os envios
// seguem em background nos minutos seguintes.
func (h *BroadcastHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	output, err := h.BroadcastUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, output)
}

// Status (GET /invitations/status): retrato do último disparo. Só existe
// em memória — reiniciou o processo, perdeu.
func (h *BroadcastHandler) Status(w http.ResponseWriter, r *http.Request) {
	report := h.Broadcaster.Snapshot()
	if report == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "nenhum disparo realizado"})
		return
	}
	writeJSON(w, http.StatusOK, report)
}
